package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/services"
)

// WorkerPool manages the queue workers and the orphan recovery loop for
// one process.
type WorkerPool struct {
	podID     string
	jobs      *services.JobService
	runner    JobRunner
	publisher *events.Publisher
	config    *config.QueueConfig
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Active job registry: job_id → cancel function, for shutdown escalation.
	activeJobs map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	// Orphan recovery state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. podID distinguishes replicas;
// worker identities are derived from it.
func NewWorkerPool(podID string, jobs *services.JobService, runner JobRunner, publisher *events.Publisher, cfg *config.QueueConfig) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		jobs:       jobs,
		runner:     runner,
		publisher:  publisher,
		config:     cfg,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
	}
}

// Start recovers this pod's stale claims, spawns the workers, and begins
// periodic orphan recovery. It is safe to call multiple times; subsequent
// calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	// A restarted pod reuses its worker identities, so anything still
	// claimed under them belongs to a dead incarnation.
	if n, err := p.jobs.RecoverWorkerJobs(ctx, p.workerPrefix()); err != nil {
		slog.Error("Startup claim recovery failed", "pod_id", p.podID, "error", err)
	} else if n > 0 {
		slog.Warn("Recovered jobs from previous run", "pod_id", p.podID, "count", n)
	}
	p.sweepOrphans(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s%d", p.workerPrefix(), i)
		worker := NewWorker(workerID, p.jobs, p.runner, p.publisher, p.config, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanRecovery(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current jobs. Past GracefulShutdownTimeout the active job contexts are
// cancelled so the engine checkpoints and pauses at its next quiescent
// point instead of holding up shutdown.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully", "pod_id", p.podID)

	active := p.getActiveJobIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to finish",
			"count", len(active),
			"job_ids", active)
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	for _, worker := range p.workers {
		worker.Signal()
	}

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Wait()
		}
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timed out, cancelling active jobs",
			"job_ids", p.getActiveJobIDs())
		p.cancelActiveJobs()
		<-done
	}

	slog.Info("Worker pool stopped")
}

// RegisterJob stores a cancel function so shutdown can interrupt the job.
func (p *WorkerPool) RegisterJob(jobID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeJobs[jobID] = cancel
}

// UnregisterJob removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterJob(jobID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeJobs, jobID)
}

// cancelActiveJobs cancels the contexts of all jobs still being processed.
func (p *WorkerPool) cancelActiveJobs() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, cancel := range p.activeJobs {
		cancel()
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.jobs.CountPending(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	running, errR := p.jobs.CountRunning(ctx)
	if errR != nil {
		slog.Error("Failed to query running jobs for health check",
			"pod_id", p.podID,
			"error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && running <= p.config.MaxConcurrentJobs && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastScan
	orphansRecovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errR != nil {
			dbError = fmt.Sprintf("running jobs query failed: %v", errR)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		RunningJobs:      running,
		MaxConcurrent:    p.config.MaxConcurrentJobs,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// workerPrefix is the claimed_by prefix shared by this pod's workers.
func (p *WorkerPool) workerPrefix() string {
	return p.podID + "-worker-"
}

// getActiveJobIDs returns IDs of jobs currently being processed (for logging).
func (p *WorkerPool) getActiveJobIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	jobs := make([]string, 0, len(p.activeJobs))
	for id := range p.activeJobs {
		jobs = append(jobs, id)
	}
	return jobs
}

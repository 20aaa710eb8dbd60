package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// resumeLimitErrorKind is the terminal error_kind for jobs that paused more
// times than max_resumes allows.
const resumeLimitErrorKind = "resume_limit_exceeded"

// JobRegistry is the subset of WorkerPool used by Worker to register the
// cancel function of the job it is processing.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// Worker is a single queue worker that polls for, claims, and runs jobs.
type Worker struct {
	id        string
	jobs      *services.JobService
	runner    JobRunner
	publisher *events.Publisher
	config    *config.QueueConfig
	pool      JobRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id string, jobs *services.JobService, runner JobRunner, publisher *events.Publisher, cfg *config.QueueConfig, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		jobs:         jobs,
		runner:       runner,
		publisher:    publisher,
		config:       cfg,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Signal tells the worker to stop after its current job, without waiting.
// It is safe to call Signal multiple times.
func (w *Worker) Signal() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// Wait blocks until the worker loop has exited.
func (w *Worker) Wait() {
	w.wg.Wait()
}

// Stop signals the worker to stop and waits for it to finish.
func (w *Worker) Stop() {
	w.Signal()
	w.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and runs it to its next
// outcome.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// The global capacity check is best-effort: racy with concurrent
	// workers, but the overshoot is bounded by WorkerCount and claims are
	// smoothed by poll jitter.
	running, err := w.jobs.CountRunning(ctx)
	if err != nil {
		return fmt.Errorf("checking running jobs: %w", err)
	}
	if running >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	job, err := w.jobs.ClaimNextJob(ctx, w.id)
	if err != nil {
		return fmt.Errorf("claiming job: %w", err)
	}
	if job == nil {
		return ErrNoJobsAvailable
	}

	log := slog.With("job_id", job.ID, "zone", job.ZoneName, "worker_id", w.id)
	log.Info("Job claimed", "resume_count", job.ResumeCount)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// Register for shutdown escalation: past the graceful window the pool
	// cancels the context and the engine pauses at its next quiescent point.
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID, cancelJob)

	outcome, runErr := w.runner.Run(jobCtx, job)
	cancelHeartbeat()

	// Scheduling writes must land even when jobCtx is cancelled or timed out.
	switch {
	case runErr != nil:
		// Setup failures never ran a step; the claim attempt counts as a
		// pause so the job retries after backoff.
		log.Warn("Job setup failed, scheduling resume", "error", runErr)
		w.scheduleResume(context.Background(), job, log)
	case outcome == pipeline.OutcomePaused:
		if w.stopping() || ctx.Err() != nil {
			// A shutdown interruption is not the job's fault: hand the
			// claim straight back instead of consuming a resume.
			w.releaseJob(context.Background(), job, log)
		} else {
			w.scheduleResume(context.Background(), job, log)
		}
	default:
		// Completed, failed, and cancelled were finalized by the engine.
		log.Info("Job finished", "outcome", string(outcome))
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// scheduleResume releases a paused job back to the queue with backoff, or
// fails it once the resume budget is spent. job carries the resume_count
// read at claim time; nothing else increments it while the claim is held.
func (w *Worker) scheduleResume(ctx context.Context, job *ent.ResearchJob, log *slog.Logger) {
	if job.ResumeCount >= w.config.MaxResumes {
		msg := fmt.Sprintf("resumed %d times without completing, limit is %d",
			job.ResumeCount, w.config.MaxResumes)
		if err := w.jobs.FailJob(ctx, job.ID, resumeLimitErrorKind, msg); err != nil {
			log.Error("Failed to finalize job at resume limit", "error", err)
			return
		}
		w.publisher.PublishJobFailed(ctx, job.ID, events.JobFailedPayload{
			ZoneName:  job.ZoneName,
			ErrorKind: resumeLimitErrorKind,
			Message:   msg,
		})
		log.Warn("Job failed at resume limit", "resume_count", job.ResumeCount)
		return
	}

	delay := w.config.ResumeDelay(job.ResumeCount)
	resumeAt := time.Now().Add(delay)
	if err := w.jobs.ScheduleResume(ctx, job.ID, w.id, resumeAt); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Orphan recovery took the claim; whoever holds the job now
			// owns its scheduling.
			log.Warn("Claim lost before resume could be scheduled")
			return
		}
		log.Error("Failed to schedule resume", "error", err)
		return
	}
	log.Info("Job resume scheduled",
		"resume_at", resumeAt.Format(time.RFC3339), "delay", delay)
}

// releaseJob returns the claim to pending so another replica can pick the
// job up immediately.
func (w *Worker) releaseJob(ctx context.Context, job *ent.ResearchJob, log *slog.Logger) {
	if err := w.jobs.ReleaseJob(ctx, job.ID, w.id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Claim lost before job could be released")
			return
		}
		log.Error("Failed to release job", "error", err)
		return
	}
	log.Info("Job released for another worker")
}

// stopping reports whether the worker has been told to shut down.
func (w *Worker) stopping() bool {
	select {
	case <-w.stopCh:
		return true
	default:
		return false
	}
}

// runHeartbeat refreshes the claim while the job runs. A lost claim means
// orphan recovery reassigned the job, so the job context is cancelled to
// stop work this worker can no longer persist.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string, cancelJob context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.jobs.UpdateHeartbeat(ctx, jobID, w.id)
			if errors.Is(err, services.ErrNotFound) {
				slog.Warn("Claim lost, abandoning job",
					"job_id", jobID, "worker_id", w.id)
				cancelJob()
				return
			}
			if err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

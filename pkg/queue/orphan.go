package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanRecovery periodically returns running jobs with stale heartbeats
// to pending. All pods run this independently; the sweep is idempotent.
func (p *WorkerPool) runOrphanRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.sweepOrphans(ctx)
		}
	}
}

// sweepOrphans runs one recovery pass. Recovered jobs become claimable
// immediately: the checkpoint holds their progress, so the next claim
// resumes from the last completed step rather than starting over.
func (p *WorkerPool) sweepOrphans(ctx context.Context) {
	n, err := p.jobs.RecoverOrphanedJobs(ctx, p.config.OrphanThreshold)
	if err != nil {
		slog.Error("Orphan recovery failed", "pod_id", p.podID, "error", err)
		return
	}
	if n > 0 {
		slog.Warn("Recovered orphaned jobs", "pod_id", p.podID, "count", n)
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += n
	p.orphans.mu.Unlock()
}

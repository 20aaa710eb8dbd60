// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal jobs past job_retention_days (children cascade)
//   - Deletes finished jobs' checkpoints past checkpoint_ttl
//   - Removes Event rows past their TTL
//
// A zero TTL disables the corresponding sweep. All operations are
// idempotent and safe to run from multiple pods.
type Service struct {
	config            *config.RetentionConfig
	jobService        *services.JobService
	checkpointService *services.CheckpointService
	eventService      *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	jobService *services.JobService,
	checkpointService *services.CheckpointService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:            cfg,
		jobService:        jobService,
		checkpointService: checkpointService,
		eventService:      eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"checkpoint_ttl", s.config.CheckpointTTL,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldJobs(ctx)
	s.deleteTerminalCheckpoints(ctx)
	s.deleteOldEvents(ctx)
}

func (s *Service) deleteOldJobs(ctx context.Context) {
	if s.config.JobRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.JobRetentionDays)
	count, err := s.jobService.DeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old jobs", "count", count)
	}
}

func (s *Service) deleteTerminalCheckpoints(ctx context.Context) {
	if s.config.CheckpointTTL <= 0 {
		return
	}
	count, err := s.checkpointService.DeleteTerminalBefore(ctx, time.Now().Add(-s.config.CheckpointTTL))
	if err != nil {
		slog.Error("Retention: checkpoint cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted terminal checkpoints", "count", count)
	}
}

func (s *Service) deleteOldEvents(ctx context.Context) {
	if s.config.EventTTL <= 0 {
		return
	}
	count, err := s.eventService.DeleteBefore(ctx, time.Now().Add(-s.config.EventTTL))
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}

// Package queue runs the worker pool that claims research jobs from the
// database and drives them through the pipeline.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobRunner drives a claimed job to its next outcome. zone.Runner is the
// production implementation.
//
// The contract follows pipeline.Engine.Run: the runner persists checkpoints
// and terminal job status itself, so the worker only handles claiming, the
// heartbeat, and scheduling paused jobs for resume. A non-nil error means
// setup failed before any step ran and the attempt counts as a pause.
type JobRunner interface {
	Run(ctx context.Context, job *ent.ResearchJob) (pipeline.Outcome, error)
}

// PoolHealth is the worker pool section of the health endpoint.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	RunningJobs      int            `json:"running_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

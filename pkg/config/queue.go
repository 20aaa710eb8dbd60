package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrent jobs being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking runnable jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a job can be processed in one claim.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at
	// on its claimed job. Must be well under OrphanThreshold.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to checkpoint and pause during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxResumes caps automatic resumes of a paused job before it is
	// marked failed.
	MaxResumes int `yaml:"max_resumes"`

	// ResumeBackoff is the delay schedule between automatic resumes.
	// The last entry repeats once the schedule is exhausted.
	ResumeBackoff []time.Duration `yaml:"resume_backoff"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentJobs:       3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Hour,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MaxResumes:              5,
		ResumeBackoff: []time.Duration{
			1 * time.Minute,
			4 * time.Minute,
			15 * time.Minute,
			60 * time.Minute,
		},
	}
}

// ResumeDelay returns the backoff before the n-th automatic resume
// (zero-based). Past the end of the schedule the last entry repeats.
func (c *QueueConfig) ResumeDelay(n int) time.Duration {
	if len(c.ResumeBackoff) == 0 {
		return 1 * time.Minute
	}
	if n < 0 {
		n = 0
	}
	if n >= len(c.ResumeBackoff) {
		n = len(c.ResumeBackoff) - 1
	}
	return c.ResumeBackoff[n]
}

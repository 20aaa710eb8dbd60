package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// JobRetentionDays is how many days to keep finished jobs and their
	// packages before deletion. Zero keeps them forever.
	JobRetentionDays int `yaml:"job_retention_days"`

	// CheckpointTTL is the maximum age of a finished job's checkpoint.
	// Checkpoints carry the full working state and dominate storage, so
	// they can be dropped ahead of the job rows. Zero keeps them forever.
	CheckpointTTL time.Duration `yaml:"checkpoint_ttl"`

	// EventTTL is the maximum age of Event rows before deletion.
	// Events only serve live notification catch-up, so this stays short.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays: 0,
		CheckpointTTL:    0,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}

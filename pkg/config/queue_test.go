package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResumeDelay(t *testing.T) {
	cfg := DefaultQueueConfig()

	tests := []struct {
		name   string
		resume int
		want   time.Duration
	}{
		{name: "first resume", resume: 0, want: 1 * time.Minute},
		{name: "second resume", resume: 1, want: 4 * time.Minute},
		{name: "third resume", resume: 2, want: 15 * time.Minute},
		{name: "fourth resume", resume: 3, want: 60 * time.Minute},
		{name: "past schedule repeats last entry", resume: 9, want: 60 * time.Minute},
		{name: "negative clamps to first entry", resume: -1, want: 1 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.ResumeDelay(tt.resume))
		})
	}
}

func TestResumeDelay_EmptySchedule(t *testing.T) {
	cfg := &QueueConfig{}

	assert.Equal(t, 1*time.Minute, cfg.ResumeDelay(0))
}

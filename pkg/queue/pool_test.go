package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelJobs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel1)
	pool.RegisterJob("job-2", cancel2)

	pool.cancelActiveJobs()
	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)
	pool.UnregisterJob("job-1")

	pool.cancelActiveJobs()
	assert.NoError(t, ctx.Err(), "unregistered job should not be cancelled")
	cancel()
}

func TestPoolGetActiveJobIDs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveJobIDs()
	assert.Empty(t, ids)

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterJob("job-a", cancel1)
	pool.RegisterJob("job-b", cancel2)

	ids = pool.getActiveJobIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "job-a")
	assert.Contains(t, ids, "job-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		config:     testQueueConfig(),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

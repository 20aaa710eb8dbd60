package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/services"
	testdb "github.com/loreweave/loreweave/test/database"
)

// scriptedRunner stands in for zone.Runner, honoring the engine contract:
// terminal outcomes are finalized on the job row before Run returns, while
// a paused outcome leaves the row to the worker.
type scriptedRunner struct {
	jobs *services.JobService

	mu          sync.Mutex
	script      []scriptedOutcome
	ran         []string
	hadDeadline bool
}

type scriptedOutcome struct {
	outcome pipeline.Outcome
	err     error
}

func (r *scriptedRunner) Run(ctx context.Context, job *ent.ResearchJob) (pipeline.Outcome, error) {
	r.mu.Lock()
	r.ran = append(r.ran, job.ID)
	_, r.hadDeadline = ctx.Deadline()
	next := scriptedOutcome{outcome: pipeline.OutcomeCompleted}
	if len(r.script) > 0 {
		next = r.script[0]
		r.script = r.script[1:]
	}
	r.mu.Unlock()

	if next.err != nil {
		return next.outcome, next.err
	}
	switch next.outcome {
	case pipeline.OutcomeCompleted:
		if err := r.jobs.CompleteJob(ctx, job.ID); err != nil {
			return pipeline.OutcomePaused, err
		}
	case pipeline.OutcomeFailed:
		if err := r.jobs.FailJob(ctx, job.ID, "permanent_internal", "scripted failure"); err != nil {
			return pipeline.OutcomePaused, err
		}
	case pipeline.OutcomeCancelled:
		if err := r.jobs.MarkCancelled(ctx, job.ID); err != nil {
			return pipeline.OutcomePaused, err
		}
	}
	return next.outcome, nil
}

func (r *scriptedRunner) runOrder() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ran...)
}

// blockingRunner announces the claimed job and then holds it until the job
// context is cancelled.
type blockingRunner struct {
	claimed chan string
}

func (r *blockingRunner) Run(ctx context.Context, job *ent.ResearchJob) (pipeline.Outcome, error) {
	r.claimed <- job.ID
	<-ctx.Done()
	return pipeline.OutcomePaused, nil
}

func queueJobRequest() models.CreateJobRequest {
	return models.CreateJobRequest{
		JobID:        uuid.New().String(),
		ZoneName:     "Emberfall Reach",
		Depth:        0,
		BudgetTokens: 100_000,
	}
}

func newTestWorker(t *testing.T, runner JobRunner) (*Worker, *services.JobService, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	publisher := events.NewPublisher(client.DB(), "queue-test")
	pool := &WorkerPool{activeJobs: make(map[string]context.CancelFunc)}
	worker := NewWorker("pod-a-worker-0", jobs, runner, publisher, testQueueConfig(), pool)
	return worker, jobs, client
}

func TestWorker_RunsJobToCompletion(t *testing.T) {
	runner := &scriptedRunner{}
	worker, jobs, client := newTestWorker(t, runner)
	runner.jobs = jobs
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)

	require.NoError(t, worker.pollAndProcess(ctx))

	row, err := client.ResearchJob.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusCompleted, row.Status)
	assert.Nil(t, row.ClaimedBy)

	assert.Equal(t, []string{created.ID}, runner.runOrder())
	assert.True(t, runner.hadDeadline, "runner should see the job timeout deadline")
	assert.Equal(t, 1, worker.Health().JobsProcessed)

	// Nothing left to claim.
	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrNoJobsAvailable)
}

func TestWorker_PausedSchedulesResumeWithBackoff(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedOutcome{{outcome: pipeline.OutcomePaused}}}
	worker, jobs, client := newTestWorker(t, runner)
	runner.jobs = jobs
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)

	require.NoError(t, worker.pollAndProcess(ctx))

	row, err := client.ResearchJob.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPaused, row.Status)
	assert.Equal(t, 1, row.ResumeCount)
	assert.Nil(t, row.ClaimedBy)
	require.NotNil(t, row.ResumeAt)
	assert.WithinDuration(t, time.Now().Add(1*time.Minute), *row.ResumeAt, 10*time.Second)
}

func TestWorker_SetupErrorCountsAsPause(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedOutcome{{
		outcome: pipeline.OutcomePaused,
		err:     errors.New("resolving model: ANTHROPIC_API_KEY is not set"),
	}}}
	worker, jobs, client := newTestWorker(t, runner)
	runner.jobs = jobs
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)

	require.NoError(t, worker.pollAndProcess(ctx))

	row, err := client.ResearchJob.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPaused, row.Status)
	assert.Equal(t, 1, row.ResumeCount)
	require.NotNil(t, row.ResumeAt)
}

func TestWorker_ResumeLimitFailsJob(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedOutcome{{outcome: pipeline.OutcomePaused}}}
	worker, jobs, client := newTestWorker(t, runner)
	runner.jobs = jobs
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)
	require.NoError(t, client.ResearchJob.UpdateOneID(created.ID).
		SetResumeCount(5).
		Exec(ctx))

	require.NoError(t, worker.pollAndProcess(ctx))

	row, err := client.ResearchJob.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, resumeLimitErrorKind, *row.ErrorKind)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "limit is 5")

	eventLog := services.NewEventService(client.Client)
	published, err := eventLog.GetJobEvents(ctx, created.ID)
	require.NoError(t, err)
	var found bool
	for _, ev := range published {
		if ev.Payload["event"] == events.EventJobFailed {
			found = true
			assert.Equal(t, resumeLimitErrorKind, ev.Payload["error_kind"])
		}
	}
	assert.True(t, found, "expected a job_failed event")
}

func TestWorker_AtCapacity(t *testing.T) {
	runner := &scriptedRunner{}
	worker, jobs, client := newTestWorker(t, runner)
	runner.jobs = jobs
	worker.config.MaxConcurrentJobs = 1
	ctx := context.Background()

	_, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)
	claimed, err := jobs.ClaimNextJob(ctx, "pod-a-worker-9")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	waiting, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrAtCapacity)
	assert.Empty(t, runner.runOrder())

	row, err := client.ResearchJob.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPending, row.Status)
}

func TestWorker_HeartbeatLossAbandonsJob(t *testing.T) {
	runner := &blockingRunner{claimed: make(chan string, 1)}
	worker, jobs, client := newTestWorker(t, runner)
	worker.config.HeartbeatInterval = 20 * time.Millisecond
	ctx := context.Background()

	_, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- worker.pollAndProcess(ctx) }()

	var jobID string
	select {
	case jobID = <-runner.claimed:
	case <-time.After(5 * time.Second):
		t.Fatal("worker never claimed the job")
	}

	// Orphan recovery elsewhere hands the job to another worker.
	require.NoError(t, client.ResearchJob.UpdateOneID(jobID).
		SetClaimedBy("pod-b-worker-0").
		Exec(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not abandon the job after losing the claim")
	}

	// The loser must not touch the new owner's row.
	row, err := client.ResearchJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusRunning, row.Status)
	require.NotNil(t, row.ClaimedBy)
	assert.Equal(t, "pod-b-worker-0", *row.ClaimedBy)
	assert.Equal(t, 0, row.ResumeCount)
}

func TestWorker_ShutdownReleasesClaim(t *testing.T) {
	runner := &blockingRunner{claimed: make(chan string, 1)}
	worker, jobs, client := newTestWorker(t, runner)
	ctx := context.Background()

	_, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- worker.pollAndProcess(ctx) }()

	var jobID string
	select {
	case jobID = <-runner.claimed:
	case <-time.After(5 * time.Second):
		t.Fatal("worker never claimed the job")
	}

	// Shutdown: stop signal first, then the pool escalation cancels the job.
	worker.Signal()
	worker.pool.(*WorkerPool).cancelActiveJobs()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not finish after escalation")
	}

	row, err := client.ResearchJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPending, row.Status)
	assert.Equal(t, 0, row.ResumeCount, "shutdown must not consume a resume")
	assert.Nil(t, row.ClaimedBy)
}

func TestPool_RecoversClaimsAndProcesses(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	publisher := events.NewPublisher(client.DB(), "queue-test")
	runner := &scriptedRunner{jobs: jobs}

	cfg := testQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	ctx := context.Background()

	// A previous incarnation of this pod died holding a claim.
	created, err := jobs.CreateJob(ctx, queueJobRequest())
	require.NoError(t, err)
	require.NoError(t, client.ResearchJob.UpdateOneID(created.ID).
		SetStatus(researchjob.StatusRunning).
		SetClaimedBy("pod-a-worker-0").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	pool := NewWorkerPool("pod-a", jobs, runner, publisher, cfg)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		row, err := client.ResearchJob.Get(ctx, created.ID)
		return err == nil && row.Status == researchjob.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond, "recovered job should be reclaimed and completed")

	health := pool.Health()
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.True(t, health.DBReachable)
	assert.True(t, health.IsHealthy)
	assert.False(t, health.LastOrphanScan.IsZero(), "startup sweep should stamp the scan time")
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/models"
	testdb "github.com/loreweave/loreweave/test/database"
)

func newJobRequest() models.CreateJobRequest {
	return models.CreateJobRequest{
		JobID:        uuid.New().String(),
		ZoneName:     "Emberfall Reach",
		Depth:        1,
		BudgetTokens: 500_000,
	}
}

func TestJobService_CreateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("creates pending job", func(t *testing.T) {
		req := newJobRequest()
		requestedBy := "gm@example.com"
		req.RequestedBy = &requestedBy

		job, err := service.CreateJob(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.JobID, job.ID)
		assert.Equal(t, "Emberfall Reach", job.ZoneName)
		assert.Equal(t, 1, job.Depth)
		assert.Equal(t, int64(500_000), job.BudgetTokens)
		assert.Equal(t, researchjob.StatusPending, job.Status)
		assert.False(t, job.CancelRequested)
		assert.Equal(t, 0, job.ResumeCount)
		require.NotNil(t, job.RequestedBy)
		assert.Equal(t, "gm@example.com", *job.RequestedBy)
		assert.Nil(t, job.StartedAt)
	})

	t.Run("generates job id when omitted", func(t *testing.T) {
		req := newJobRequest()
		req.JobID = ""

		job, err := service.CreateJob(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, job.ID)
	})

	t.Run("rejects duplicate job id", func(t *testing.T) {
		req := newJobRequest()
		_, err := service.CreateJob(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateJob(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		req := newJobRequest()
		req.ZoneName = ""
		_, err := service.CreateJob(ctx, req)
		assert.True(t, IsValidationError(err))

		req = newJobRequest()
		req.Depth = -1
		_, err = service.CreateJob(ctx, req)
		assert.True(t, IsValidationError(err))

		req = newJobRequest()
		req.BudgetTokens = 0
		_, err = service.CreateJob(ctx, req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("records parentage of discovered zones", func(t *testing.T) {
		parent, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		req := newJobRequest()
		req.ZoneName = "Hollowmere"
		req.ParentJobID = &parent.ID

		child, err := service.CreateJob(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, child.ParentJobID)
		assert.Equal(t, parent.ID, *child.ParentJobID)
	})
}

func TestJobService_GetJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	created, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	t.Run("returns job by id", func(t *testing.T) {
		job, err := service.GetJob(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.ID, job.ID)
	})

	t.Run("loads checkpoint and step runs with edges", func(t *testing.T) {
		checkpoints := NewCheckpointService(client.Client)
		require.NoError(t, checkpoints.Save(ctx, models.NewCheckpoint(created.ID)))

		steps := NewStepRunService(client.Client)
		_, err := steps.Begin(ctx, created.ID, "zone_overview_research", 0)
		require.NoError(t, err)

		job, err := service.GetJob(ctx, created.ID, true)
		require.NoError(t, err)
		require.NotNil(t, job.Edges.Checkpoint)
		assert.Equal(t, created.ID, job.Edges.Checkpoint.JobID)
		require.Len(t, job.Edges.StepRuns, 1)
		assert.Equal(t, "zone_overview_research", job.Edges.StepRuns[0].StepName)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := service.GetJob(ctx, uuid.New().String(), false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_ListJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	mk := func(zone string, status researchjob.Status) *ent.ResearchJob {
		req := newJobRequest()
		req.ZoneName = zone
		job, err := service.CreateJob(ctx, req)
		require.NoError(t, err)
		if status != researchjob.StatusPending {
			job, err = client.ResearchJob.UpdateOneID(job.ID).SetStatus(status).Save(ctx)
			require.NoError(t, err)
		}
		return job
	}

	mk("Emberfall Reach", researchjob.StatusPending)
	mk("Emberfall Reach", researchjob.StatusCompleted)
	mk("Hollowmere", researchjob.StatusFailed)

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListJobs(ctx, models.JobFilters{Status: []string{"completed", "failed"}})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Pagination.TotalItems)
	})

	t.Run("filters by zone", func(t *testing.T) {
		zone := "Hollowmere"
		resp, err := service.ListJobs(ctx, models.JobFilters{ZoneName: &zone})
		require.NoError(t, err)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, "Hollowmere", resp.Jobs[0].ZoneName)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := service.ListJobs(ctx, models.JobFilters{Status: []string{"sleeping"}})
		assert.True(t, IsValidationError(err))
	})

	t.Run("paginates newest first", func(t *testing.T) {
		resp, err := service.ListJobs(ctx, models.JobFilters{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Jobs, 2)
		assert.Equal(t, 3, resp.Pagination.TotalItems)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})
}

func TestJobService_RequestCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("pending job cancels immediately", func(t *testing.T) {
		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		job, err = service.RequestCancel(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusCancelled, job.Status)
		assert.True(t, job.CancelRequested)
		assert.NotNil(t, job.CompletedAt)
	})

	t.Run("paused job cancels immediately and drops resume schedule", func(t *testing.T) {
		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		_, err = client.ResearchJob.UpdateOneID(job.ID).
			SetStatus(researchjob.StatusPaused).
			SetResumeAt(time.Now().Add(time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		job, err = service.RequestCancel(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusCancelled, job.Status)
		assert.Nil(t, job.ResumeAt)
	})

	t.Run("running job only flags cancel_requested", func(t *testing.T) {
		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		_, err = client.ResearchJob.UpdateOneID(job.ID).
			SetStatus(researchjob.StatusRunning).
			Save(ctx)
		require.NoError(t, err)

		job, err = service.RequestCancel(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusRunning, job.Status)
		assert.True(t, job.CancelRequested)
		assert.Nil(t, job.CompletedAt)
	})

	t.Run("terminal job returns ErrInvalidState", func(t *testing.T) {
		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		require.NoError(t, service.CompleteJob(ctx, job.ID))

		_, err = service.RequestCancel(ctx, job.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown job returns ErrNotFound", func(t *testing.T) {
		_, err := service.RequestCancel(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_ResumeJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("clears resume_at on paused job", func(t *testing.T) {
		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		_, err = client.ResearchJob.UpdateOneID(job.ID).
			SetStatus(researchjob.StatusPaused).
			SetResumeAt(time.Now().Add(time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		job, err = service.ResumeJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusPaused, job.Status)
		assert.Nil(t, job.ResumeAt)
	})

	t.Run("rejects non-paused jobs", func(t *testing.T) {
		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		_, err = service.ResumeJob(ctx, job.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestJobService_ClaimNextJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("returns nil when nothing claimable", func(t *testing.T) {
		job, err := service.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		assert.Nil(t, job)
	})

	t.Run("claims the oldest pending job", func(t *testing.T) {
		mk := func(age time.Duration) *ent.ResearchJob {
			job, err := client.ResearchJob.Create().
				SetID(uuid.New().String()).
				SetZoneName("Emberfall Reach").
				SetDepth(1).
				SetBudgetTokens(500_000).
				SetCreatedAt(time.Now().Add(-age)).
				Save(ctx)
			require.NoError(t, err)
			return job
		}
		older := mk(2 * time.Hour)
		newer := mk(1 * time.Hour)

		claimed, err := service.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, older.ID, claimed.ID)
		assert.Equal(t, researchjob.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.ClaimedBy)
		assert.Equal(t, "worker-1", *claimed.ClaimedBy)
		require.NotNil(t, claimed.LastHeartbeatAt)
		assert.WithinDuration(t, time.Now(), *claimed.LastHeartbeatAt, 5*time.Second)
		require.NotNil(t, claimed.StartedAt)

		// the second claim gets the newer job, not the one already running
		claimed2, err := service.ClaimNextJob(ctx, "worker-2")
		require.NoError(t, err)
		require.NotNil(t, claimed2)
		assert.Equal(t, newer.ID, claimed2.ID)
	})

	t.Run("paused job with future resume_at is not claimable", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewJobService(client.Client)

		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		_, err = client.ResearchJob.UpdateOneID(job.ID).
			SetStatus(researchjob.StatusPaused).
			SetResumeAt(time.Now().Add(time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := service.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("paused job with elapsed resume_at is claimed and keeps started_at", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewJobService(client.Client)

		job, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		firstStart := time.Now().Add(-time.Hour)
		_, err = client.ResearchJob.UpdateOneID(job.ID).
			SetStatus(researchjob.StatusPaused).
			SetResumeAt(time.Now().Add(-time.Minute)).
			SetStartedAt(firstStart).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := service.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, job.ID, claimed.ID)
		assert.Equal(t, researchjob.StatusRunning, claimed.Status)
		assert.Nil(t, claimed.ResumeAt)
		require.NotNil(t, claimed.StartedAt)
		assert.WithinDuration(t, firstStart, *claimed.StartedAt, time.Second)
	})
}

func TestJobService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	job, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	claimed, err := service.ClaimNextJob(ctx, "worker-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, job.ID, claimed.ID)

	t.Run("refreshes heartbeat for the claim holder", func(t *testing.T) {
		require.NoError(t, service.UpdateHeartbeat(ctx, job.ID, "worker-1"))
	})

	t.Run("reports lost claim to other workers", func(t *testing.T) {
		err := service.UpdateHeartbeat(ctx, job.ID, "worker-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_ScheduleResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	job, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = service.ClaimNextJob(ctx, "worker-1")
	require.NoError(t, err)

	resumeAt := time.Now().Add(4 * time.Minute)
	require.NoError(t, service.ScheduleResume(ctx, job.ID, "worker-1", resumeAt))

	row, err := client.ResearchJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPaused, row.Status)
	require.NotNil(t, row.ResumeAt)
	assert.WithinDuration(t, resumeAt, *row.ResumeAt, time.Second)
	assert.Equal(t, 1, row.ResumeCount)
	assert.Nil(t, row.ClaimedBy)
	assert.Nil(t, row.LastHeartbeatAt)

	t.Run("rejects a worker that lost the claim", func(t *testing.T) {
		err := service.ScheduleResume(ctx, job.ID, "worker-2", resumeAt)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_ReleaseJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	job, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = service.ClaimNextJob(ctx, "worker-1")
	require.NoError(t, err)

	require.NoError(t, service.ReleaseJob(ctx, job.ID, "worker-1"))

	row, err := client.ResearchJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPending, row.Status)
	assert.Equal(t, 0, row.ResumeCount)
	assert.Nil(t, row.ClaimedBy)
	assert.Nil(t, row.LastHeartbeatAt)

	t.Run("rejects a worker that lost the claim", func(t *testing.T) {
		assert.ErrorIs(t, service.ReleaseJob(ctx, job.ID, "worker-1"), ErrNotFound)
	})
}

func TestJobService_Finalize(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	start := func() *ent.ResearchJob {
		_, err := service.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		claimed, err := service.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		return claimed
	}

	t.Run("complete releases claim and stamps completion", func(t *testing.T) {
		job := start()
		require.NoError(t, service.CompleteJob(ctx, job.ID))

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusCompleted, row.Status)
		assert.NotNil(t, row.CompletedAt)
		assert.Nil(t, row.ClaimedBy)
	})

	t.Run("fail records terminal error", func(t *testing.T) {
		job := start()
		require.NoError(t, service.FailJob(ctx, job.ID, "permanent_budget", "token budget exhausted"))

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorKind)
		assert.Equal(t, "permanent_budget", *row.ErrorKind)
		require.NotNil(t, row.ErrorMessage)
		assert.Equal(t, "token budget exhausted", *row.ErrorMessage)
	})

	t.Run("mark cancelled finalizes engine-noticed cancellation", func(t *testing.T) {
		job := start()
		require.NoError(t, service.MarkCancelled(ctx, job.ID))

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusCancelled, row.Status)
		assert.NotNil(t, row.CompletedAt)
	})
}

func TestJobService_RecoverOrphanedJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	stale, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = client.ResearchJob.UpdateOneID(stale.ID).
		SetStatus(researchjob.StatusRunning).
		SetClaimedBy("worker-dead").
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = client.ResearchJob.UpdateOneID(fresh.ID).
		SetStatus(researchjob.StatusRunning).
		SetClaimedBy("worker-alive").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	n, err := service.RecoverOrphanedJobs(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	staleRow, err := client.ResearchJob.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPending, staleRow.Status)
	assert.Nil(t, staleRow.ClaimedBy)

	freshRow, err := client.ResearchJob.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusRunning, freshRow.Status)
}

func TestJobService_RecoverWorkerJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	mine, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = client.ResearchJob.UpdateOneID(mine.ID).
		SetStatus(researchjob.StatusRunning).
		SetClaimedBy("pod-1-worker-2").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	other, err := service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = client.ResearchJob.UpdateOneID(other.ID).
		SetStatus(researchjob.StatusRunning).
		SetClaimedBy("pod-2-worker-0").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// Recovers this pod's jobs even with a fresh heartbeat.
	n, err := service.RecoverWorkerJobs(ctx, "pod-1-worker-")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mineRow, err := client.ResearchJob.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusPending, mineRow.Status)
	assert.Nil(t, mineRow.ClaimedBy)

	otherRow, err := client.ResearchJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusRunning, otherRow.Status)
	require.NotNil(t, otherRow.ClaimedBy)
	assert.Equal(t, "pod-2-worker-0", *otherRow.ClaimedBy)
}

func TestJobService_Counts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	running, err := service.CountRunning(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, running)

	_, err = service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = service.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	claimed, err := service.ClaimNextJob(ctx, "worker-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	running, err = service.CountRunning(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, running)

	pending, err := service.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

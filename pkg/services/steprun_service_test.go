package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/pkg/models"
	testdb "github.com/loreweave/loreweave/test/database"
)

func TestStepRunService_Begin(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewStepRunService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	t.Run("first attempt of a step is attempt 1", func(t *testing.T) {
		run, err := service.Begin(ctx, job.ID, "zone_overview_research", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, run.Attempt)
		assert.Equal(t, steprun.StatusRunning, run.Status)
		assert.False(t, run.StartedAt.IsZero())
		assert.Nil(t, run.CompletedAt)
	})

	t.Run("retry after resume gets attempt 2", func(t *testing.T) {
		run, err := service.Begin(ctx, job.ID, "zone_overview_research", 0)
		require.NoError(t, err)
		assert.Equal(t, 2, run.Attempt)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.Begin(ctx, "", "npc_research", 1)
		assert.True(t, IsValidationError(err))
		_, err = service.Begin(ctx, job.ID, "", 1)
		assert.True(t, IsValidationError(err))
	})
}

func TestStepRunService_Complete(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewStepRunService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	run, err := service.Begin(ctx, job.ID, "npc_research", 1)
	require.NoError(t, err)

	done, err := service.Complete(ctx, run.ID, models.StepRunMetrics{
		DurationMS:   12_400,
		TokensUsed:   38_000,
		SourcesAdded: 5,
		ContentBytes: 20_480,
	})
	require.NoError(t, err)
	assert.Equal(t, steprun.StatusCompleted, done.Status)
	require.NotNil(t, done.DurationMs)
	assert.Equal(t, 12_400, *done.DurationMs)
	require.NotNil(t, done.TokensUsed)
	assert.Equal(t, int64(38_000), *done.TokensUsed)
	require.NotNil(t, done.SourcesAdded)
	assert.Equal(t, 5, *done.SourcesAdded)
	require.NotNil(t, done.CompletedAt)
	assert.WithinDuration(t, time.Now(), *done.CompletedAt, 5*time.Second)
}

func TestStepRunService_Fail(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewStepRunService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	t.Run("records transient failure", func(t *testing.T) {
		run, err := service.Begin(ctx, job.ID, "lore_research", 3)
		require.NoError(t, err)

		failed, err := service.Fail(ctx, run.ID, steprun.StatusFailedTransient,
			"transient_rate_limit", "429 from provider", 8_200)
		require.NoError(t, err)
		assert.Equal(t, steprun.StatusFailedTransient, failed.Status)
		require.NotNil(t, failed.ErrorKind)
		assert.Equal(t, "transient_rate_limit", *failed.ErrorKind)
		assert.NotNil(t, failed.CompletedAt)
	})

	t.Run("records permanent failure", func(t *testing.T) {
		run, err := service.Begin(ctx, job.ID, "extract_all", 5)
		require.NoError(t, err)

		failed, err := service.Fail(ctx, run.ID, steprun.StatusFailedPermanent,
			"permanent_schema", "extraction invalid after repair", 31_000)
		require.NoError(t, err)
		assert.Equal(t, steprun.StatusFailedPermanent, failed.Status)
	})

	t.Run("rejects non-failure statuses", func(t *testing.T) {
		run, err := service.Begin(ctx, job.ID, "faction_research", 2)
		require.NoError(t, err)

		_, err = service.Fail(ctx, run.ID, steprun.StatusCompleted, "x", "y", 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown step run returns ErrNotFound", func(t *testing.T) {
		_, err := service.Fail(ctx, "missing", steprun.StatusFailedTransient, "k", "m", 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStepRunService_Skip(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewStepRunService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	run, err := service.Skip(ctx, job.ID, "discover_connected_zones", 7)
	require.NoError(t, err)
	assert.Equal(t, steprun.StatusSkipped, run.Status)
	assert.Equal(t, 7, run.StepIndex)
	assert.Equal(t, 1, run.Attempt)
	assert.NotNil(t, run.CompletedAt)
}

func TestStepRunService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewStepRunService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	other, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	_, err = service.Begin(ctx, job.ID, "zone_overview_research", 0)
	require.NoError(t, err)
	_, err = service.Begin(ctx, job.ID, "npc_research", 1)
	require.NoError(t, err)
	_, err = service.Begin(ctx, other.ID, "zone_overview_research", 0)
	require.NoError(t, err)

	runs, err := service.List(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "zone_overview_research", runs[0].StepName)
	assert.Equal(t, "npc_research", runs[1].StepName)
}

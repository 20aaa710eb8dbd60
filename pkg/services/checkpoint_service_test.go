package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/pkg/models"
	testdb "github.com/loreweave/loreweave/test/database"
)

func TestCheckpointService_SaveAndLoad(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewCheckpointService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	cp := models.NewCheckpoint(job.ID)
	cp.CompletedStepNames = []string{"zone_overview_research", "npc_research"}
	cp.CurrentStepIndex = 2
	cp.AppendContent("npc", "Maro keeps the lighthouse.", "Sable trades in rumors.")
	cp.MergeSources("npc", []models.SourceRef{
		{URI: "wiki/emberfall/maro", Tier: models.TierOfficial},
		{URI: "forum/thread/9921", Tier: models.TierTertiary},
	})
	cp.TopicSummaries["npc"] = "Two named inhabitants, both tied to the lighthouse."
	cp.PartialExtractions["npcs"] = map[string]any{"count": 2}
	cp.RecordError("npc_research", "transient_timeout", "step exceeded 10m")
	cp.TokensUsed = 42_000

	require.NoError(t, service.Save(ctx, cp))

	loaded, err := service.Load(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, loaded.JobID)
	assert.Equal(t, 2, loaded.CurrentStepIndex)
	assert.Equal(t, []string{"zone_overview_research", "npc_research"}, loaded.CompletedStepNames)
	assert.Equal(t, []string{"Maro keeps the lighthouse.", "Sable trades in rumors."}, loaded.AccumulatedContent["npc"])
	require.Len(t, loaded.AccumulatedSources["npc"], 2)
	assert.Equal(t, models.TierOfficial, loaded.AccumulatedSources["npc"][0].Tier)
	assert.Equal(t, "Two named inhabitants, both tied to the lighthouse.", loaded.TopicSummaries["npc"])
	require.Len(t, loaded.StepErrors, 1)
	assert.Equal(t, "transient_timeout", loaded.StepErrors[0].Kind)
	assert.Equal(t, int64(42_000), loaded.TokensUsed)
	assert.Equal(t, "running", loaded.Status)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestCheckpointService_Save(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewCheckpointService(client.Client)
	ctx := context.Background()

	t.Run("mirrors status onto the job row", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		cp := models.NewCheckpoint(job.ID)
		cp.Status = "paused"
		require.NoError(t, service.Save(ctx, cp))

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "paused", string(row.Status))

		cp.Status = "completed"
		require.NoError(t, service.Save(ctx, cp))

		row, err = client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", string(row.Status))
	})

	t.Run("second save replaces the document in place", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		cp := models.NewCheckpoint(job.ID)
		require.NoError(t, service.Save(ctx, cp))

		cp.CompletedStepNames = append(cp.CompletedStepNames, "zone_overview_research")
		cp.CurrentStepIndex = 1
		cp.TokensUsed = 9000
		require.NoError(t, service.Save(ctx, cp))

		count, err := client.Checkpoint.Query().
			Where(checkpoint.JobIDEQ(job.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		loaded, err := service.Load(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.CurrentStepIndex)
		assert.Equal(t, int64(9000), loaded.TokensUsed)
	})

	t.Run("rejects index out of step with completed names", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		cp := models.NewCheckpoint(job.ID)
		cp.CurrentStepIndex = 3 // no completed steps recorded
		err = service.Save(ctx, cp)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		cp := models.NewCheckpoint(job.ID)
		cp.Status = "cancelled" // a job status, never a checkpoint status
		err = service.Save(ctx, cp)
		assert.True(t, IsValidationError(err))
	})

	t.Run("fails when the job row is missing", func(t *testing.T) {
		cp := models.NewCheckpoint(uuid.New().String())
		assert.Error(t, service.Save(ctx, cp))
	})
}

func TestCheckpointService_Load(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewCheckpointService(client.Client)
	ctx := context.Background()

	t.Run("missing checkpoint returns ErrNotFound", func(t *testing.T) {
		_, err := service.Load(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("tolerates unknown fields in stored sources", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		require.NoError(t, service.Save(ctx, models.NewCheckpoint(job.ID)))

		// simulate a row written by a newer schema version
		err = client.Checkpoint.Update().
			Where(checkpoint.JobIDEQ(job.ID)).
			SetAccumulatedSources(map[string]interface{}{
				"lore": []interface{}{
					map[string]interface{}{"uri": "wiki/emberfall/founding", "tier": "primary", "retrieved_at": "2026-08-25"},
				},
			}).
			Exec(ctx)
		require.NoError(t, err)

		loaded, err := service.Load(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, loaded.AccumulatedSources["lore"], 1)
		assert.Equal(t, "wiki/emberfall/founding", loaded.AccumulatedSources["lore"][0].URI)
		assert.Equal(t, models.TierPrimary, loaded.AccumulatedSources["lore"][0].Tier)
	})

	t.Run("normalizes empty columns to usable collections", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		require.NoError(t, service.Save(ctx, models.NewCheckpoint(job.ID)))

		loaded, err := service.Load(ctx, job.ID)
		require.NoError(t, err)
		assert.NotNil(t, loaded.AccumulatedContent)
		assert.NotNil(t, loaded.AccumulatedSources)
		assert.NotNil(t, loaded.TopicSummaries)
		assert.NotNil(t, loaded.PartialExtractions)
		assert.NotNil(t, loaded.StepErrors)

		// appends must work without guards
		loaded.AppendContent("npc", "block")
		loaded.MergeSources("npc", []models.SourceRef{{URI: "x", Tier: models.TierTertiary}})
	})
}

func TestCheckpointService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewCheckpointService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	require.NoError(t, service.Save(ctx, models.NewCheckpoint(job.ID)))

	require.NoError(t, service.Delete(ctx, job.ID))
	_, err = service.Load(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, job.ID), ErrNotFound)
}

func TestCheckpointService_DeleteTerminalBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewCheckpointService(client.Client)
	ctx := context.Background()

	save := func(status string, age time.Duration) string {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		cp := models.NewCheckpoint(job.ID)
		cp.Status = status
		require.NoError(t, service.Save(ctx, cp))
		if age > 0 {
			err = client.Checkpoint.Update().
				Where(checkpoint.JobIDEQ(job.ID)).
				SetUpdatedAt(time.Now().Add(-age)).
				Exec(ctx)
			require.NoError(t, err)
		}
		return job.ID
	}

	oldCompleted := save("completed", 48*time.Hour)
	oldRunning := save("running", 48*time.Hour)
	newFailed := save("failed", 0)

	n, err := service.DeleteTerminalBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.Load(ctx, oldCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	// a running job keeps its checkpoint no matter how stale
	_, err = service.Load(ctx, oldRunning)
	assert.NoError(t, err)
	_, err = service.Load(ctx, newFailed)
	assert.NoError(t, err)
}

func TestCheckpointService_SaveWithRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewCheckpointService(client.Client)
	ctx := context.Background()

	t.Run("saves on first success", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		require.NoError(t, service.SaveWithRetry(ctx, models.NewCheckpoint(job.ID)))
	})

	t.Run("validation errors short-circuit the backoff", func(t *testing.T) {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)

		cp := models.NewCheckpoint(job.ID)
		cp.CurrentStepIndex = 5

		start := time.Now()
		err = service.SaveWithRetry(ctx, cp)
		assert.True(t, IsValidationError(err))
		assert.Less(t, time.Since(start), saveBackoffBase)
	})
}

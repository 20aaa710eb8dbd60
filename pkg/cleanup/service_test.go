package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/services"
	testdb "github.com/loreweave/loreweave/test/database"
)

func setupServices(t *testing.T) (*database.Client, *Service, *config.RetentionConfig) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		JobRetentionDays: 365,
		CheckpointTTL:    0,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
	svc := NewService(
		cfg,
		services.NewJobService(client.Client),
		services.NewCheckpointService(client.Client),
		services.NewEventService(client.Client),
	)
	return client, svc, cfg
}

func createFinishedJob(t *testing.T, client *database.Client, finishedAt time.Time) *ent.ResearchJob {
	t.Helper()
	ctx := context.Background()
	jobs := services.NewJobService(client.Client)

	job, err := jobs.CreateJob(ctx, models.CreateJobRequest{
		ZoneName:     "Emberfall Reach",
		BudgetTokens: 100_000,
	})
	require.NoError(t, err)

	err = client.ResearchJob.UpdateOneID(job.ID).
		SetStatus(researchjob.StatusCompleted).
		SetCompletedAt(finishedAt).
		Exec(ctx)
	require.NoError(t, err)
	return job
}

func TestService_DeletesOldTerminalJobs(t *testing.T) {
	client, svc, _ := setupServices(t)
	ctx := context.Background()

	old := createFinishedJob(t, client, time.Now().Add(-400*24*time.Hour))

	cp := models.NewCheckpoint(old.ID)
	cp.Status = "completed"
	require.NoError(t, services.NewCheckpointService(client.Client).Save(ctx, cp))

	svc.runAll(ctx)

	_, err := client.ResearchJob.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "job past retention should be deleted")

	count, err := client.Checkpoint.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "checkpoint should cascade with its job")
}

func TestService_PreservesRecentJobs(t *testing.T) {
	client, svc, _ := setupServices(t)
	ctx := context.Background()

	recent := createFinishedJob(t, client, time.Now())

	svc.runAll(ctx)

	_, err := client.ResearchJob.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestService_ZeroRetentionKeepsJobsForever(t *testing.T) {
	client, svc, cfg := setupServices(t)
	cfg.JobRetentionDays = 0
	ctx := context.Background()

	old := createFinishedJob(t, client, time.Now().Add(-10*365*24*time.Hour))

	svc.runAll(ctx)

	_, err := client.ResearchJob.Get(ctx, old.ID)
	assert.NoError(t, err)
}

func TestService_DeletesTerminalCheckpointsPastTTL(t *testing.T) {
	client, svc, cfg := setupServices(t)
	cfg.CheckpointTTL = 1 * time.Hour
	ctx := context.Background()

	job := createFinishedJob(t, client, time.Now())
	cp := models.NewCheckpoint(job.ID)
	cp.Status = "completed"
	require.NoError(t, services.NewCheckpointService(client.Client).Save(ctx, cp))

	// Age the checkpoint without touching the job row.
	_, err := client.Checkpoint.Update().
		SetUpdatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	count, err := client.Checkpoint.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "terminal checkpoint past TTL should be deleted")

	_, err = client.ResearchJob.Get(ctx, job.ID)
	assert.NoError(t, err, "the job row outlives its checkpoint")
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, svc, _ := setupServices(t)
	ctx := context.Background()

	jobID := uuid.New().String()

	_, err := client.Event.Create().
		SetJobID(jobID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetJobID(jobID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	events, err := services.NewEventService(client.Client).GetEventsSince(ctx, "test", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

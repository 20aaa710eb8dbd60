package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/pkg/models"
	testdb "github.com/loreweave/loreweave/test/database"
)

// TestIntegration_JobLifecycle walks a job through the same sequence of
// service calls a worker makes: claim, run steps with checkpoint saves and
// audit rows, publish the package, finalize.
func TestIntegration_JobLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	jobs := NewJobService(client.Client)
	checkpoints := NewCheckpointService(client.Client)
	stepRuns := NewStepRunService(client.Client)
	interactions := NewInteractionService(client.Client)
	packages := NewPackageService(client.Client)

	req := newJobRequest()
	req.Depth = 0
	created, err := jobs.CreateJob(ctx, req)
	require.NoError(t, err)

	claimed, err := jobs.ClaimNextJob(ctx, "worker-itest")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, created.ID, claimed.ID)

	// first step
	cp := models.NewCheckpoint(created.ID)
	run, err := stepRuns.Begin(ctx, created.ID, "zone_overview_research", 0)
	require.NoError(t, err)

	total := int64(21_000)
	_, err = interactions.RecordLLMCall(ctx, models.LLMCallRecord{
		JobID:       created.ID,
		StepName:    "zone_overview_research",
		Purpose:     "research",
		Provider:    "anthropic",
		Model:       "claude-sonnet-4-5",
		TotalTokens: &total,
	})
	require.NoError(t, err)
	_, err = interactions.RecordToolCall(ctx, models.ToolCallRecord{
		JobID:     created.ID,
		StepName:  "zone_overview_research",
		ToolSet:   "search",
		ToolName:  "web_search",
		Arguments: map[string]any{"query": "Emberfall Reach overview"},
	})
	require.NoError(t, err)

	cp.AppendContent("overview", "A storm-wracked coastal province.")
	cp.MergeSources("overview", []models.SourceRef{{URI: "wiki/emberfall", Tier: models.TierOfficial}})
	cp.CompletedStepNames = append(cp.CompletedStepNames, "zone_overview_research")
	cp.CurrentStepIndex = 1
	cp.TokensUsed += total
	require.NoError(t, checkpoints.SaveWithRetry(ctx, cp))

	_, err = stepRuns.Complete(ctx, run.ID, models.StepRunMetrics{
		DurationMS: 9_000, TokensUsed: total, SourcesAdded: 1, ContentBytes: 38,
	})
	require.NoError(t, err)

	// depth 0: discovery is guard-skipped but still audited and counted
	_, err = stepRuns.Skip(ctx, created.ID, "discover_connected_zones", 7)
	require.NoError(t, err)
	cp.CompletedStepNames = append(cp.CompletedStepNames, "discover_connected_zones")
	cp.CurrentStepIndex = 2
	require.NoError(t, checkpoints.SaveWithRetry(ctx, cp))

	// final step publishes the package and completes the job
	doc := testPackageDocument(created.ID, created.ZoneName)
	doc.TokensUsed = cp.TokensUsed
	_, err = packages.Publish(ctx, doc)
	require.NoError(t, err)

	cp.Status = "completed"
	require.NoError(t, checkpoints.SaveWithRetry(ctx, cp))
	require.NoError(t, jobs.CompleteJob(ctx, created.ID))

	// the detail view a status endpoint would serve
	detail, err := jobs.GetJob(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, researchjob.StatusCompleted, detail.Status)
	assert.NotNil(t, detail.CompletedAt)
	require.NotNil(t, detail.Edges.Checkpoint)
	assert.Equal(t, int64(21_000), detail.Edges.Checkpoint.TokensUsed)
	assert.Equal(t, []string{"zone_overview_research", "discover_connected_zones"},
		detail.Edges.Checkpoint.CompletedStepNames)

	require.Len(t, detail.Edges.StepRuns, 2)
	assert.Equal(t, steprun.StatusCompleted, detail.Edges.StepRuns[0].Status)
	assert.Equal(t, steprun.StatusSkipped, detail.Edges.StepRuns[1].Status)

	pkg, err := packages.GetByJobID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ZoneName, pkg.ZoneName)
}

// TestIntegration_PauseAndResume exercises the transient-failure path:
// checkpoint saved as paused without advancing, resume schedule set, job
// claimed again after the backoff elapses.
func TestIntegration_PauseAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	jobs := NewJobService(client.Client)
	checkpoints := NewCheckpointService(client.Client)
	stepRuns := NewStepRunService(client.Client)

	created, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = jobs.ClaimNextJob(ctx, "worker-a")
	require.NoError(t, err)

	// step 0 succeeds, step 1 hits a transient failure
	cp := models.NewCheckpoint(created.ID)
	run0, err := stepRuns.Begin(ctx, created.ID, "zone_overview_research", 0)
	require.NoError(t, err)
	cp.CompletedStepNames = append(cp.CompletedStepNames, "zone_overview_research")
	cp.CurrentStepIndex = 1
	require.NoError(t, checkpoints.SaveWithRetry(ctx, cp))
	_, err = stepRuns.Complete(ctx, run0.ID, models.StepRunMetrics{})
	require.NoError(t, err)

	run1, err := stepRuns.Begin(ctx, created.ID, "npc_research", 1)
	require.NoError(t, err)
	_, err = stepRuns.Fail(ctx, run1.ID, steprun.StatusFailedTransient,
		"transient_rate_limit", "429 from provider", 3_000)
	require.NoError(t, err)

	cp.RecordError("npc_research", "transient_rate_limit", "429 from provider")
	cp.Status = "paused"
	require.NoError(t, checkpoints.SaveWithRetry(ctx, cp))
	require.NoError(t, jobs.ScheduleResume(ctx, created.ID, "worker-a", time.Now().Add(-time.Second)))

	// a different worker picks the job up once resume_at elapses
	reclaimed, err := jobs.ClaimNextJob(ctx, "worker-b")
	require.NoError(t, err)
	require.NotNil(t, reclaimed)
	assert.Equal(t, created.ID, reclaimed.ID)
	assert.Equal(t, 1, reclaimed.ResumeCount)

	// the checkpoint still points at the failed step, not past it
	loaded, err := checkpoints.Load(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.CurrentStepIndex)
	assert.Equal(t, []string{"zone_overview_research"}, loaded.CompletedStepNames)
	require.NotNil(t, loaded.LastError())
	assert.Equal(t, "transient_rate_limit", loaded.LastError().Kind)

	// the retry gets a fresh attempt row
	run1b, err := stepRuns.Begin(ctx, created.ID, "npc_research", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, run1b.Attempt)
}

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/services"
	testdb "github.com/loreweave/loreweave/test/database"
)

type engineHarness struct {
	t           *testing.T
	client      *database.Client
	jobs        *services.JobService
	checkpoints *services.CheckpointService
	stepRuns    *services.StepRunService
	eventLog    *services.EventService
	publisher   *events.Publisher
	cfg         *config.PipelineConfig
}

func newEngineHarness(t *testing.T) *engineHarness {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultPipelineConfig()
	cfg.ResearchStepTimeout = 2 * time.Second
	cfg.ExtractionStepTimeout = 2 * time.Second
	cfg.TransformStepTimeout = 2 * time.Second
	cfg.MaxStepRetries = 1
	cfg.RetryBackoffBase = time.Millisecond
	cfg.RetryBackoffMax = 4 * time.Millisecond
	return &engineHarness{
		t:           t,
		client:      client,
		jobs:        services.NewJobService(client.Client),
		checkpoints: services.NewCheckpointService(client.Client),
		stepRuns:    services.NewStepRunService(client.Client),
		eventLog:    services.NewEventService(client.Client),
		publisher:   events.NewPublisher(client.DB(), "engine-test"),
		cfg:         cfg,
	}
}

func (h *engineHarness) newEngine(steps ...Step) *Engine {
	h.t.Helper()
	registry, err := NewRegistry(steps...)
	require.NoError(h.t, err)
	return NewEngine(registry, h.jobs, h.checkpoints, h.stepRuns, h.publisher, h.cfg)
}

// startJob creates a job and claims it, mirroring what the queue worker
// does before invoking the engine.
func (h *engineHarness) startJob(depth int, budgetTokens int64) *ent.ResearchJob {
	h.t.Helper()
	ctx := context.Background()
	_, err := h.jobs.CreateJob(ctx, models.CreateJobRequest{
		JobID:        uuid.New().String(),
		ZoneName:     "Emberfall Reach",
		Depth:        depth,
		BudgetTokens: budgetTokens,
	})
	require.NoError(h.t, err)
	job, err := h.jobs.ClaimNextJob(ctx, "engine-test-worker")
	require.NoError(h.t, err)
	require.NotNil(h.t, job)
	return job
}

func (h *engineHarness) reloadJob(jobID string) *ent.ResearchJob {
	h.t.Helper()
	job, err := h.jobs.GetJob(context.Background(), jobID, false)
	require.NoError(h.t, err)
	return job
}

func (h *engineHarness) loadCheckpoint(jobID string) *models.Checkpoint {
	h.t.Helper()
	cp, err := h.checkpoints.Load(context.Background(), jobID)
	require.NoError(h.t, err)
	return cp
}

func (h *engineHarness) listRuns(jobID string) []*ent.StepRun {
	h.t.Helper()
	runs, err := h.stepRuns.List(context.Background(), jobID)
	require.NoError(h.t, err)
	return runs
}

func (h *engineHarness) eventNames(jobID string) []string {
	h.t.Helper()
	rows, err := h.eventLog.GetJobEvents(context.Background(), jobID)
	require.NoError(h.t, err)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Payload["event"].(string))
	}
	return names
}

func (h *engineHarness) lastEvent(jobID, eventName string) map[string]interface{} {
	h.t.Helper()
	rows, err := h.eventLog.GetJobEvents(context.Background(), jobID)
	require.NoError(h.t, err)
	var found map[string]interface{}
	for _, row := range rows {
		if row.Payload["event"] == eventName {
			found = row.Payload
		}
	}
	require.NotNil(h.t, found, "no %s event for job %s", eventName, jobID)
	return found
}

// spend charges tokens to the ledger the way a handler settling a provider
// call would.
func spend(t *testing.T, sc *StepContext, tokens int64) {
	t.Helper()
	r, err := sc.Ledger.Reserve(tokens)
	require.NoError(t, err)
	sc.Ledger.Settle(r, tokens)
}

func TestEngine_RunCompletesAllSteps(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	var researchCalls, extractCalls, packageCalls int
	eng := h.newEngine(
		Step{
			Name: "zone_overview_research",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, sc *StepContext) (StepResult, error) {
				researchCalls++
				sc.Checkpoint.AppendContent("overview", "The reach spans three river valleys.")
				added := sc.Checkpoint.MergeSources("overview", []models.SourceRef{
					{URI: "https://wiki.example/emberfall", Tier: models.TierOfficial},
				})
				spend(t, sc, 12_000)
				return StepResult{SourcesAdded: added, ContentBytes: 38}, nil
			},
		},
		Step{
			Name: "extract_all",
			Kind: StepKindExtraction,
			Handler: func(_ context.Context, sc *StepContext) (StepResult, error) {
				extractCalls++
				sc.Checkpoint.PartialExtractions["overview"] = map[string]interface{}{"name": "Emberfall Reach"}
				spend(t, sc, 6_000)
				return StepResult{}, nil
			},
		},
		Step{
			Name: "package_and_send",
			Kind: StepKindTransform,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				packageCalls++
				return StepResult{Summary: &events.PackageSummary{
					Categories:  map[string]int{"overview": 1},
					SourceCount: 1,
				}}, nil
			},
		},
	)
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, 1, researchCalls)
	assert.Equal(t, 1, extractCalls)
	assert.Equal(t, 1, packageCalls)

	cp := h.loadCheckpoint(job.ID)
	assert.Equal(t, models.CheckpointCompleted, cp.Status)
	assert.Equal(t, 3, cp.CurrentStepIndex)
	assert.Equal(t, []string{"zone_overview_research", "extract_all", "package_and_send"}, cp.CompletedStepNames)
	assert.Equal(t, int64(18_000), cp.TokensUsed)
	assert.Empty(t, cp.StepErrors)

	row := h.reloadJob(job.ID)
	assert.Equal(t, researchjob.StatusCompleted, row.Status)
	assert.NotNil(t, row.CompletedAt)
	assert.Nil(t, row.ClaimedBy)

	runs := h.listRuns(job.ID)
	require.Len(t, runs, 3)
	for _, run := range runs {
		assert.Equal(t, steprun.StatusCompleted, run.Status)
		assert.Equal(t, 1, run.Attempt)
	}
	require.NotNil(t, runs[0].TokensUsed)
	assert.Equal(t, int64(12_000), *runs[0].TokensUsed)
	require.NotNil(t, runs[0].SourcesAdded)
	assert.Equal(t, 1, *runs[0].SourcesAdded)

	assert.Equal(t, []string{
		"step_started", "step_completed",
		"step_started", "step_completed",
		"step_started", "step_completed",
		"job_completed",
	}, h.eventNames(job.ID))

	completed := h.lastEvent(job.ID, "job_completed")
	assert.Equal(t, "Emberfall Reach", completed["zone_name"])
	assert.Equal(t, float64(18_000), completed["tokens_used"])
	summary, ok := completed["package_summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["source_count"])
}

func TestEngine_GuardSkipsStep(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	var discoveryCalls int
	eng := h.newEngine(
		Step{
			Name: "lore_research",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				return StepResult{}, nil
			},
		},
		Step{
			Name:  "discover_connected_zones",
			Kind:  StepKindExtraction,
			Guard: func(sc *StepContext) bool { return sc.Job.Depth > 0 },
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				discoveryCalls++
				return StepResult{}, nil
			},
		},
		Step{
			Name: "package_and_send",
			Kind: StepKindTransform,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				return StepResult{}, nil
			},
		},
	)
	job := h.startJob(0, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, 0, discoveryCalls)

	// The skipped step still occupies its slot in the completed names.
	cp := h.loadCheckpoint(job.ID)
	assert.Equal(t, []string{"lore_research", "discover_connected_zones", "package_and_send"}, cp.CompletedStepNames)
	assert.Equal(t, 3, cp.CurrentStepIndex)

	runs := h.listRuns(job.ID)
	require.Len(t, runs, 3)
	assert.Equal(t, steprun.StatusSkipped, runs[1].Status)
	assert.NotNil(t, runs[1].CompletedAt)

	assert.Equal(t, []string{
		"step_started", "step_completed",
		"step_started", "step_completed",
		"step_started", "step_completed",
		"job_completed",
	}, h.eventNames(job.ID))

	rows, err := h.eventLog.GetJobEvents(ctx, job.ID)
	require.NoError(t, err)
	skipped := rows[3].Payload
	assert.Equal(t, "step_completed", skipped["event"])
	assert.Equal(t, "discover_connected_zones", skipped["step_name"])
	metrics, ok := skipped["metrics"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, metrics["skipped"])
}

func TestEngine_ResumeDoesNotRerunCompletedSteps(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	var alphaCalls, betaCalls int
	eng := h.newEngine(
		Step{
			Name: "alpha",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				alphaCalls++
				return StepResult{}, nil
			},
		},
		Step{
			Name: "beta",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, sc *StepContext) (StepResult, error) {
				betaCalls++
				spend(t, sc, 5_000)
				return StepResult{}, nil
			},
		},
	)
	job := h.startJob(1, 500_000)

	// A previous lifetime already completed alpha and spent 7k tokens.
	prior := models.NewCheckpoint(job.ID)
	prior.Advance("alpha")
	prior.TokensUsed = 7_000
	prior.Status = models.CheckpointPaused
	require.NoError(t, h.checkpoints.Save(ctx, prior))

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, 0, alphaCalls)
	assert.Equal(t, 1, betaCalls)

	cp := h.loadCheckpoint(job.ID)
	assert.Equal(t, []string{"alpha", "beta"}, cp.CompletedStepNames)
	assert.Equal(t, int64(12_000), cp.TokensUsed)
}

func TestEngine_TransientFailurePausesWithoutAdvancing(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	rateLimited := &llm.ProviderError{
		Provider:   "anthropic",
		Operation:  "generate",
		StatusCode: 429,
		Retryable:  true,
		Err:        llm.ErrRateLimited,
	}
	var alphaCalls, betaCalls int
	var betaHealthy bool
	eng := h.newEngine(
		Step{
			Name: "alpha",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				alphaCalls++
				return StepResult{}, nil
			},
		},
		Step{
			Name: "beta",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, sc *StepContext) (StepResult, error) {
				betaCalls++
				if !betaHealthy {
					return StepResult{}, rateLimited
				}
				spend(t, sc, 3_000)
				return StepResult{}, nil
			},
		},
	)
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomePaused, outcome)
	assert.Equal(t, 1, alphaCalls)
	// One in-process retry (MaxStepRetries = 1), then the pause.
	assert.Equal(t, 2, betaCalls)

	cp := h.loadCheckpoint(job.ID)
	assert.Equal(t, models.CheckpointPaused, cp.Status)
	assert.Equal(t, 1, cp.CurrentStepIndex)
	assert.Equal(t, []string{"alpha"}, cp.CompletedStepNames)
	require.Len(t, cp.StepErrors, 2)
	for _, stepErr := range cp.StepErrors {
		assert.Equal(t, "beta", stepErr.Step)
		assert.Equal(t, KindTransientRateLimit, stepErr.Kind)
	}

	assert.Equal(t, researchjob.StatusPaused, h.reloadJob(job.ID).Status)

	runs := h.listRuns(job.ID)
	require.Len(t, runs, 3)
	assert.Equal(t, steprun.StatusCompleted, runs[0].Status)
	for i, run := range runs[1:] {
		assert.Equal(t, steprun.StatusFailedTransient, run.Status)
		assert.Equal(t, i+1, run.Attempt)
		require.NotNil(t, run.ErrorKind)
		assert.Equal(t, KindTransientRateLimit, *run.ErrorKind)
	}

	assert.Equal(t, []string{
		"step_started", "step_completed",
		"step_started", "step_failed_transient", "step_failed_transient",
	}, h.eventNames(job.ID))
	failedEvent := h.lastEvent(job.ID, "step_failed_transient")
	assert.Equal(t, "beta", failedEvent["step_name"])
	assert.Equal(t, float64(2), failedEvent["attempt"])

	// The provider recovers; a second run finishes the job without
	// touching the completed step.
	betaHealthy = true
	outcome, err = eng.Run(ctx, h.reloadJob(job.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, 1, alphaCalls)
	assert.Equal(t, 3, betaCalls)

	runs = h.listRuns(job.ID)
	require.Len(t, runs, 4)
	assert.Equal(t, steprun.StatusCompleted, runs[3].Status)
	assert.Equal(t, 3, runs[3].Attempt)
}

func TestEngine_TimeoutPausesImmediately(t *testing.T) {
	h := newEngineHarness(t)
	h.cfg.TransformStepTimeout = 50 * time.Millisecond
	h.cfg.MaxStepRetries = 3
	ctx := context.Background()

	var calls int
	eng := h.newEngine(Step{
		Name: "slow_assemble",
		Kind: StepKindTransform,
		Handler: func(stepCtx context.Context, _ *StepContext) (StepResult, error) {
			calls++
			select {
			case <-time.After(2 * time.Second):
				return StepResult{}, nil
			case <-stepCtx.Done():
				return StepResult{}, stepCtx.Err()
			}
		},
	})
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomePaused, outcome)
	// Timeouts pause without in-process retries.
	assert.Equal(t, 1, calls)

	cp := h.loadCheckpoint(job.ID)
	require.Len(t, cp.StepErrors, 1)
	assert.Equal(t, KindTransientTimeout, cp.StepErrors[0].Kind)

	runs := h.listRuns(job.ID)
	require.Len(t, runs, 1)
	assert.Equal(t, steprun.StatusFailedTransient, runs[0].Status)
	require.NotNil(t, runs[0].ErrorKind)
	assert.Equal(t, KindTransientTimeout, *runs[0].ErrorKind)
}

func TestEngine_UnclassifiedEscalatesOnImmediateRepeat(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	eng := h.newEngine(Step{
		Name: "faction_research",
		Kind: StepKindResearch,
		Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
			return StepResult{}, errors.New("exploded while parsing a wiki table")
		},
	})
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomePaused, outcome)
	cp := h.loadCheckpoint(job.ID)
	require.Len(t, cp.StepErrors, 1)
	assert.Equal(t, KindTransientInternal, cp.StepErrors[0].Kind)

	// The same step failing the same way right after the resume is no
	// longer treated as recoverable.
	outcome, err = eng.Run(ctx, h.reloadJob(job.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)

	cp = h.loadCheckpoint(job.ID)
	assert.Equal(t, models.CheckpointFailed, cp.Status)
	require.Len(t, cp.StepErrors, 2)
	assert.Equal(t, KindPermanentInternal, cp.StepErrors[1].Kind)

	row := h.reloadJob(job.ID)
	assert.Equal(t, researchjob.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, KindPermanentInternal, *row.ErrorKind)

	runs := h.listRuns(job.ID)
	require.Len(t, runs, 2)
	assert.Equal(t, steprun.StatusFailedTransient, runs[0].Status)
	assert.Equal(t, steprun.StatusFailedPermanent, runs[1].Status)

	failed := h.lastEvent(job.ID, "job_failed")
	assert.Equal(t, KindPermanentInternal, failed["error_kind"])
	assert.Equal(t, "faction_research", failed["failed_step"])
}

func TestEngine_PermanentErrorFailsWithoutRetry(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	var calls int
	eng := h.newEngine(Step{
		Name: "extract_all",
		Kind: StepKindExtraction,
		Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
			calls++
			return StepResult{}, NewError(KindPermanentSchema, errors.New("missing required field zone.name"))
		},
	})
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, 1, calls)

	row := h.reloadJob(job.ID)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, KindPermanentSchema, *row.ErrorKind)

	assert.Equal(t, []string{"step_started", "job_failed"}, h.eventNames(job.ID))
}

func TestEngine_BudgetPreflightFailsJob(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	var betaCalls int
	eng := h.newEngine(
		Step{
			Name: "alpha",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, sc *StepContext) (StepResult, error) {
				spend(t, sc, 9_000)
				return StepResult{}, nil
			},
		},
		Step{
			Name: "beta",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				betaCalls++
				return StepResult{}, nil
			},
		},
	)
	job := h.startJob(1, 10_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, 0, betaCalls)

	cp := h.loadCheckpoint(job.ID)
	assert.Equal(t, models.CheckpointFailed, cp.Status)
	assert.Equal(t, []string{"alpha"}, cp.CompletedStepNames)
	require.Len(t, cp.StepErrors, 1)
	assert.Equal(t, "beta", cp.StepErrors[0].Step)
	assert.Equal(t, KindPermanentBudget, cp.StepErrors[0].Kind)

	row := h.reloadJob(job.ID)
	assert.Equal(t, researchjob.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, KindPermanentBudget, *row.ErrorKind)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "beta")

	runs := h.listRuns(job.ID)
	require.Len(t, runs, 2)
	assert.Equal(t, steprun.StatusFailedPermanent, runs[1].Status)
	require.NotNil(t, runs[1].DurationMs)
	assert.Equal(t, 0, *runs[1].DurationMs)

	assert.Equal(t, []string{
		"step_started", "step_completed",
		"step_started", "job_failed",
	}, h.eventNames(job.ID))
}

func TestEngine_CancelBetweenSteps(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	var betaCalls int
	eng := h.newEngine(
		Step{
			Name: "alpha",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, sc *StepContext) (StepResult, error) {
				// A cancel request lands while the step is executing.
				_, err := h.jobs.RequestCancel(context.Background(), sc.Job.ID)
				require.NoError(t, err)
				return StepResult{}, nil
			},
		},
		Step{
			Name: "beta",
			Kind: StepKindResearch,
			Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
				betaCalls++
				return StepResult{}, nil
			},
		},
	)
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)
	assert.Equal(t, 0, betaCalls)

	cp := h.loadCheckpoint(job.ID)
	assert.Equal(t, models.CheckpointPaused, cp.Status)
	assert.Equal(t, []string{"alpha"}, cp.CompletedStepNames)

	row := h.reloadJob(job.ID)
	assert.Equal(t, researchjob.StatusCancelled, row.Status)
	assert.NotNil(t, row.CompletedAt)

	assert.Equal(t, []string{
		"step_started", "step_completed",
		"job_cancelled",
	}, h.eventNames(job.ID))
}

func TestEngine_PanicBecomesUnclassifiedFailure(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	eng := h.newEngine(Step{
		Name: "npc_research",
		Kind: StepKindResearch,
		Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
			panic("nil entry in crawl queue")
		},
	})
	job := h.startJob(1, 500_000)

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomePaused, outcome)

	cp := h.loadCheckpoint(job.ID)
	require.Len(t, cp.StepErrors, 1)
	assert.Equal(t, KindTransientInternal, cp.StepErrors[0].Kind)
	assert.Contains(t, cp.StepErrors[0].Message, "panicked")
}

func TestEngine_CheckpointBeyondRegistryFailsJob(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()

	eng := h.newEngine(
		Step{Name: "alpha", Kind: StepKindResearch, Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
			return StepResult{}, nil
		}},
		Step{Name: "beta", Kind: StepKindResearch, Handler: func(_ context.Context, _ *StepContext) (StepResult, error) {
			return StepResult{}, nil
		}},
	)
	job := h.startJob(1, 500_000)

	stale := models.NewCheckpoint(job.ID)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		stale.Advance(name)
	}
	stale.Status = models.CheckpointPaused
	require.NoError(t, h.checkpoints.Save(ctx, stale))

	outcome, err := eng.Run(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)

	row := h.reloadJob(job.ID)
	assert.Equal(t, researchjob.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, KindPermanentInternal, *row.ErrorKind)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "pipeline has 2 steps")
}

// Package pipeline runs research jobs step by step against a durable
// checkpoint. The engine owns step ordering, budget pre-flight, failure
// classification, and the pause/fail/cancel transitions; the steps
// themselves are supplied by the domain as a Registry.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/services"
)

// Outcome is how one engine invocation of a job ended. OutcomePaused is
// the only outcome the dispatcher acts on (schedule a resume or give the
// job up); the other three are terminal.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomePaused    Outcome = "paused"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// Engine drives jobs through the step registry. It is stateless across
// runs: everything a resumed job needs lives in the checkpoint row.
type Engine struct {
	registry    *Registry
	jobs        *services.JobService
	checkpoints *services.CheckpointService
	stepRuns    *services.StepRunService
	publisher   *events.Publisher
	cfg         *config.PipelineConfig
	logger      *slog.Logger
}

// NewEngine creates an engine over the given step registry. A nil cfg
// falls back to the built-in pipeline defaults.
func NewEngine(registry *Registry, jobs *services.JobService, checkpoints *services.CheckpointService, stepRuns *services.StepRunService, publisher *events.Publisher, cfg *config.PipelineConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultPipelineConfig()
	}
	return &Engine{
		registry:    registry,
		jobs:        jobs,
		checkpoints: checkpoints,
		stepRuns:    stepRuns,
		publisher:   publisher,
		cfg:         cfg,
		logger:      slog.Default().With("component", "pipeline_engine"),
	}
}

// Run executes job from its checkpoint until it completes, pauses, fails,
// or is cancelled. Completed steps are never re-executed: execution picks
// up at the persisted current_step_index, so running a paused job again
// continues exactly where the previous lifetime stopped. The returned
// error is non-nil only when the engine could not establish the job's
// state at all; the dispatcher treats that like a pause.
func (e *Engine) Run(ctx context.Context, job *ent.ResearchJob) (Outcome, error) {
	logger := e.logger.With("job_id", job.ID, "zone", job.ZoneName)

	cp, err := e.checkpoints.Load(ctx, job.ID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		cp = models.NewCheckpoint(job.ID)
	case err != nil:
		return OutcomePaused, fmt.Errorf("failed to load checkpoint for %s: %w", job.ID, err)
	}
	cp.Status = models.CheckpointRunning

	steps := e.registry.Steps()
	if cp.CurrentStepIndex > len(steps) {
		msg := fmt.Sprintf("checkpoint is at step %d but the pipeline has %d steps", cp.CurrentStepIndex, len(steps))
		return *e.failJob(ctx, job, cp, "", KindPermanentInternal, msg), nil
	}

	ledger := budget.NewLedger(job.BudgetTokens, cp.TokensUsed)
	logger.InfoContext(ctx, "Running job",
		"from_step", cp.CurrentStepIndex,
		"total_steps", len(steps),
		"tokens_used", cp.TokensUsed,
		"budget_tokens", job.BudgetTokens)

	var summary *events.PackageSummary
	for cp.CurrentStepIndex < len(steps) {
		if stop := e.cancelIfRequested(ctx, job, cp); stop != nil {
			return *stop, nil
		}

		index := cp.CurrentStepIndex
		step := steps[index]
		sc := &StepContext{Job: job, Checkpoint: cp, Ledger: ledger}

		if step.Guard != nil && !step.Guard(sc) {
			if stop := e.skipStep(ctx, job, cp, step, index); stop != nil {
				return *stop, nil
			}
			continue
		}

		e.publisher.PublishStepStarted(ctx, job.ID, events.StepStartedPayload{
			StepName:   step.Name,
			StepIndex:  index,
			TotalSteps: len(steps),
		})

		stepSummary, stop := e.runStep(ctx, job, cp, sc, step, index)
		if stop != nil {
			return *stop, nil
		}
		if stepSummary != nil {
			summary = stepSummary
		}
	}

	cp.Status = models.CheckpointCompleted
	if err := e.checkpoints.SaveWithRetry(ctx, cp); err != nil {
		logger.ErrorContext(ctx, "Failed to save completed checkpoint", "error", err)
		return OutcomePaused, nil
	}
	if err := e.jobs.CompleteJob(ctx, job.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to finalize completed job", "error", err)
	}
	e.publisher.PublishJobCompleted(ctx, job.ID, events.JobCompletedPayload{
		ZoneName:       job.ZoneName,
		TokensUsed:     cp.TokensUsed,
		PackageSummary: summary,
	})
	logger.InfoContext(ctx, "Job completed", "tokens_used", cp.TokensUsed)
	return OutcomeCompleted, nil
}

// runStep executes one step through its in-process attempt budget. It
// returns the packaging summary (nil for every other step) and a non-nil
// outcome when the run must stop.
func (e *Engine) runStep(ctx context.Context, job *ent.ResearchJob, cp *models.Checkpoint, sc *StepContext, step Step, index int) (*events.PackageSummary, *Outcome) {
	maxAttempts := 1 + e.cfg.MaxStepRetries
	for attempt := 1; ; attempt++ {
		if remaining := sc.Ledger.Remaining(); remaining < e.cfg.MinimumHeadroomTokens {
			msg := fmt.Sprintf("%d tokens left of %d, below the %d headroom needed to start %s",
				remaining, job.BudgetTokens, e.cfg.MinimumHeadroomTokens, step.Name)
			run := e.beginRun(ctx, job, step, index)
			e.failRun(ctx, run, steprun.StatusFailedPermanent, KindPermanentBudget, msg, 0)
			cp.RecordError(step.Name, KindPermanentBudget, msg)
			return nil, e.failJob(ctx, job, cp, step.Name, KindPermanentBudget, msg)
		}

		run := e.beginRun(ctx, job, step, index)

		stepCtx, cancel := context.WithTimeout(ctx, e.stepTimeout(step.Kind))
		started := time.Now()
		usedBefore := sc.Ledger.Used()
		result, err := e.invoke(stepCtx, step, sc)
		cancel()
		durationMS := int(time.Since(started).Milliseconds())
		stepTokens := sc.Ledger.Used() - usedBefore
		cp.TokensUsed = sc.Ledger.Used()

		if err == nil {
			cp.Advance(step.Name)
			if saveErr := e.checkpoints.SaveWithRetry(ctx, cp); saveErr != nil {
				return nil, e.pauseUnsaved(ctx, job, cp, run, step, durationMS, saveErr)
			}
			e.completeRun(ctx, run, models.StepRunMetrics{
				DurationMS:   durationMS,
				TokensUsed:   stepTokens,
				SourcesAdded: result.SourcesAdded,
				ContentBytes: result.ContentBytes,
			})
			e.publisher.PublishStepCompleted(ctx, job.ID, events.StepCompletedPayload{
				StepName:   step.Name,
				StepIndex:  index,
				DurationMS: int64(durationMS),
				TokensUsed: cp.TokensUsed,
				Metrics: map[string]any{
					"step_tokens":   stepTokens,
					"sources_added": result.SourcesAdded,
					"content_bytes": result.ContentBytes,
				},
			})
			e.logger.InfoContext(ctx, "Step completed",
				"job_id", job.ID, "step", step.Name, "attempt", runAttempt(run, attempt),
				"duration_ms", durationMS, "step_tokens", stepTokens)
			return result.Summary, nil
		}

		if ctx.Err() != nil {
			// The worker is going away; this is not a step failure.
			e.failRun(ctx, run, steprun.StatusFailedTransient, KindTransientInternal,
				"run interrupted: "+ctx.Err().Error(), durationMS)
			return nil, e.pause(ctx, job, cp, "shutdown during "+step.Name)
		}

		kind := Escalate(Classify(err), step.Name, cp)
		msg := err.Error()
		cp.RecordError(step.Name, kind, msg)

		if !IsTransient(kind) {
			e.failRun(ctx, run, steprun.StatusFailedPermanent, kind, msg, durationMS)
			return nil, e.failJob(ctx, job, cp, step.Name, kind, msg)
		}

		e.failRun(ctx, run, steprun.StatusFailedTransient, kind, msg, durationMS)
		e.publisher.PublishStepFailedTransient(ctx, job.ID, events.StepFailedTransientPayload{
			StepName:  step.Name,
			ErrorKind: kind,
			Message:   msg,
			Attempt:   runAttempt(run, attempt),
		})

		if attempt < maxAttempts && retriesInProcess(kind) {
			e.logger.WarnContext(ctx, "Step failed, retrying",
				"job_id", job.ID, "step", step.Name, "error_kind", kind,
				"attempt", attempt, "error", err)
			if e.waitRetry(ctx, attempt) {
				continue
			}
			return nil, e.pause(ctx, job, cp, "shutdown while waiting to retry "+step.Name)
		}

		e.logger.WarnContext(ctx, "Step failed, pausing",
			"job_id", job.ID, "step", step.Name, "error_kind", kind, "error", err)
		return nil, e.pause(ctx, job, cp, kind)
	}
}

// skipStep records a guard-skipped step and advances past it. Skipped
// steps still occupy their slot in completed_step_names so the resume
// index stays aligned with the registry, and they still emit the
// started/completed event pair so consumers see every step.
func (e *Engine) skipStep(ctx context.Context, job *ent.ResearchJob, cp *models.Checkpoint, step Step, index int) *Outcome {
	e.publisher.PublishStepStarted(ctx, job.ID, events.StepStartedPayload{
		StepName:   step.Name,
		StepIndex:  index,
		TotalSteps: e.registry.Len(),
	})
	if _, err := e.stepRuns.Skip(ctx, job.ID, step.Name, index); err != nil {
		e.logger.WarnContext(ctx, "Failed to record skipped step",
			"job_id", job.ID, "step", step.Name, "error", err)
	}
	cp.Advance(step.Name)
	if err := e.checkpoints.SaveWithRetry(ctx, cp); err != nil {
		return e.pauseUnsaved(ctx, job, cp, nil, step, 0, err)
	}
	e.publisher.PublishStepCompleted(ctx, job.ID, events.StepCompletedPayload{
		StepName:   step.Name,
		StepIndex:  index,
		TokensUsed: cp.TokensUsed,
		Metrics:    map[string]any{"skipped": true},
	})
	e.logger.InfoContext(ctx, "Step skipped",
		"job_id", job.ID, "step", step.Name, "step_index", index)
	return nil
}

// cancelIfRequested reloads the job row at a quiescent point between steps
// and, when a cancel has been requested, persists the paused checkpoint,
// finalizes the job as cancelled, and stops the run.
func (e *Engine) cancelIfRequested(ctx context.Context, job *ent.ResearchJob, cp *models.Checkpoint) *Outcome {
	fresh, err := e.jobs.GetJob(ctx, job.ID, false)
	if err != nil {
		e.logger.WarnContext(ctx, "Cancel check failed, continuing",
			"job_id", job.ID, "error", err)
		return nil
	}
	if !fresh.CancelRequested {
		return nil
	}

	cp.Status = models.CheckpointPaused
	if err := e.checkpoints.SaveWithRetry(ctx, cp); err != nil {
		e.logger.ErrorContext(ctx, "Failed to save checkpoint during cancel",
			"job_id", job.ID, "error", err)
	}
	if err := e.jobs.MarkCancelled(ctx, job.ID); err != nil {
		e.logger.ErrorContext(ctx, "Failed to finalize cancelled job",
			"job_id", job.ID, "error", err)
	}
	e.publisher.PublishJobCancelled(ctx, job.ID, events.JobCancelledPayload{ZoneName: job.ZoneName})
	e.logger.InfoContext(ctx, "Job cancelled",
		"job_id", job.ID, "at_step", cp.CurrentStepIndex)
	return stopWith(OutcomeCancelled)
}

// pause persists the paused checkpoint without advancing. The caller has
// already written the checkpoint error history; reason is for the log.
func (e *Engine) pause(ctx context.Context, job *ent.ResearchJob, cp *models.Checkpoint, reason string) *Outcome {
	cp.Status = models.CheckpointPaused
	if err := e.checkpoints.SaveWithRetry(ctx, cp); err != nil {
		e.logger.ErrorContext(ctx, "Failed to save paused checkpoint",
			"job_id", job.ID, "error", err)
	}
	e.logger.InfoContext(ctx, "Job paused",
		"job_id", job.ID, "step_index", cp.CurrentStepIndex, "reason", reason)
	return stopWith(OutcomePaused)
}

// pauseUnsaved handles a checkpoint save failure after a successful or
// skipped step. The in-memory advance is rolled back so the resumed job
// runs the step again; the engine never advances past an unsaved step.
func (e *Engine) pauseUnsaved(ctx context.Context, job *ent.ResearchJob, cp *models.Checkpoint, run *ent.StepRun, step Step, durationMS int, saveErr error) *Outcome {
	cp.CompletedStepNames = cp.CompletedStepNames[:len(cp.CompletedStepNames)-1]
	cp.CurrentStepIndex = len(cp.CompletedStepNames)

	msg := fmt.Sprintf("checkpoint save failed: %v", saveErr)
	cp.RecordError(step.Name, KindTransientTransport, msg)
	cp.Status = models.CheckpointPaused

	// One more direct attempt; SaveWithRetry already spent its budget.
	if err := e.checkpoints.Save(ctx, cp); err != nil {
		e.logger.ErrorContext(ctx, "Failed to save paused checkpoint after save failure",
			"job_id", job.ID, "step", step.Name, "error", err)
	}
	e.failRun(ctx, run, steprun.StatusFailedTransient, KindTransientTransport, msg, durationMS)
	e.publisher.PublishStepFailedTransient(ctx, job.ID, events.StepFailedTransientPayload{
		StepName:  step.Name,
		ErrorKind: KindTransientTransport,
		Message:   msg,
		Attempt:   runAttempt(run, 1),
	})
	e.logger.ErrorContext(ctx, "Pausing without advancing",
		"job_id", job.ID, "step", step.Name, "error", saveErr)
	return stopWith(OutcomePaused)
}

// failJob persists the terminal failure on the checkpoint and the job row
// and publishes job_failed. The caller has already recorded the error in
// the checkpoint history where one applies.
func (e *Engine) failJob(ctx context.Context, job *ent.ResearchJob, cp *models.Checkpoint, stepName, kind, msg string) *Outcome {
	cp.Status = models.CheckpointFailed
	if err := e.checkpoints.SaveWithRetry(ctx, cp); err != nil {
		e.logger.ErrorContext(ctx, "Failed to save failed checkpoint",
			"job_id", job.ID, "error", err)
	}
	if err := e.jobs.FailJob(ctx, job.ID, kind, msg); err != nil {
		e.logger.ErrorContext(ctx, "Failed to finalize failed job",
			"job_id", job.ID, "error", err)
	}
	e.publisher.PublishJobFailed(ctx, job.ID, events.JobFailedPayload{
		ZoneName:   job.ZoneName,
		ErrorKind:  kind,
		Message:    msg,
		FailedStep: stepName,
	})
	e.logger.ErrorContext(ctx, "Job failed",
		"job_id", job.ID, "step", stepName, "error_kind", kind, "message", msg)
	return stopWith(OutcomeFailed)
}

// invoke runs the handler, converting a panic into an error so a broken
// step classifies like any other unclassified failure.
func (e *Engine) invoke(ctx context.Context, step Step, sc *StepContext) (result StepResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("step %s panicked: %v", step.Name, r)
		}
	}()
	return step.Handler(ctx, sc)
}

// waitRetry sleeps the backoff before retrying the given 1-based attempt,
// doubling from the configured base with up to 25% jitter. Returns false
// when the context ended first.
func (e *Engine) waitRetry(ctx context.Context, attempt int) bool {
	delay := e.cfg.RetryBackoffBase << (attempt - 1)
	if delay <= 0 || delay > e.cfg.RetryBackoffMax {
		delay = e.cfg.RetryBackoffMax
	}
	delay += time.Duration(rand.Int64N(int64(delay)/4 + 1))
	select {
	case <-time.After(delay):
		return true
	case <-ctx.Done():
		return false
	}
}

func (e *Engine) stepTimeout(kind StepKind) time.Duration {
	switch kind {
	case StepKindResearch:
		return e.cfg.ResearchStepTimeout
	case StepKindExtraction:
		return e.cfg.ExtractionStepTimeout
	default:
		return e.cfg.TransformStepTimeout
	}
}

// retriesInProcess reports whether a transient kind is retried inside the
// same run. Timeouts already consumed a full step window and unclassified
// failures escalate on repeat, so both pause instead.
func retriesInProcess(kind string) bool {
	return kind == KindTransientTransport || kind == KindTransientRateLimit
}

// beginRun opens the step_runs audit row. Audit failures never stop the
// pipeline; a nil run disables the matching completion or failure update.
func (e *Engine) beginRun(ctx context.Context, job *ent.ResearchJob, step Step, index int) *ent.StepRun {
	run, err := e.stepRuns.Begin(ctx, job.ID, step.Name, index)
	if err != nil {
		e.logger.WarnContext(ctx, "Failed to record step start",
			"job_id", job.ID, "step", step.Name, "error", err)
		return nil
	}
	return run
}

func (e *Engine) completeRun(ctx context.Context, run *ent.StepRun, metrics models.StepRunMetrics) {
	if run == nil {
		return
	}
	if _, err := e.stepRuns.Complete(ctx, run.ID, metrics); err != nil {
		e.logger.WarnContext(ctx, "Failed to record step completion",
			"step_run_id", run.ID, "error", err)
	}
}

func (e *Engine) failRun(ctx context.Context, run *ent.StepRun, status steprun.Status, kind, msg string, durationMS int) {
	if run == nil {
		return
	}
	if _, err := e.stepRuns.Fail(ctx, run.ID, status, kind, msg, durationMS); err != nil {
		e.logger.WarnContext(ctx, "Failed to record step failure",
			"step_run_id", run.ID, "error", err)
	}
}

func runAttempt(run *ent.StepRun, fallback int) int {
	if run == nil {
		return fallback
	}
	return run.Attempt
}

func stopWith(o Outcome) *Outcome {
	return &o
}

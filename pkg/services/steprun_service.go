package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/pkg/models"
)

// StepRunService writes the per-attempt audit trail of pipeline steps.
type StepRunService struct {
	client *ent.Client
}

// NewStepRunService creates a new StepRunService
func NewStepRunService(client *ent.Client) *StepRunService {
	return &StepRunService{client: client}
}

// Begin records a step attempt entering execution. The attempt number is
// derived from prior attempts of the same step; the unique index on
// (job_id, step_index, attempt) rejects duplicates.
func (s *StepRunService) Begin(ctx context.Context, jobID, stepName string, stepIndex int) (*ent.StepRun, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if stepName == "" {
		return nil, NewValidationError("step_name", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prior, err := s.client.StepRun.Query().
		Where(
			steprun.JobIDEQ(jobID),
			steprun.StepIndexEQ(stepIndex),
		).
		Count(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior attempts: %w", err)
	}

	run, err := s.client.StepRun.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetStepName(stepName).
		SetStepIndex(stepIndex).
		SetAttempt(prior + 1).
		SetStatus(steprun.StatusRunning).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create step run: %w", err)
	}
	return run, nil
}

// Complete marks a step attempt successful with its metrics.
func (s *StepRunService) Complete(ctx context.Context, stepRunID string, metrics models.StepRunMetrics) (*ent.StepRun, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run, err := s.client.StepRun.UpdateOneID(stepRunID).
		SetStatus(steprun.StatusCompleted).
		SetDurationMs(metrics.DurationMS).
		SetTokensUsed(metrics.TokensUsed).
		SetSourcesAdded(metrics.SourcesAdded).
		SetContentBytes(metrics.ContentBytes).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete step run: %w", err)
	}
	return run, nil
}

// Fail marks a step attempt failed. Status must be failed_transient or
// failed_permanent.
func (s *StepRunService) Fail(ctx context.Context, stepRunID string, status steprun.Status, errorKind, errorMessage string, durationMS int) (*ent.StepRun, error) {
	if status != steprun.StatusFailedTransient && status != steprun.StatusFailedPermanent {
		return nil, NewValidationError("status", fmt.Sprintf("%q is not a failure status", status))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run, err := s.client.StepRun.UpdateOneID(stepRunID).
		SetStatus(status).
		SetErrorKind(errorKind).
		SetErrorMessage(errorMessage).
		SetDurationMs(durationMS).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record step failure: %w", err)
	}
	return run, nil
}

// Skip records a guard-skipped step so the audit trail shows every index.
func (s *StepRunService) Skip(ctx context.Context, jobID, stepName string, stepIndex int) (*ent.StepRun, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prior, err := s.client.StepRun.Query().
		Where(
			steprun.JobIDEQ(jobID),
			steprun.StepIndexEQ(stepIndex),
		).
		Count(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior attempts: %w", err)
	}

	run, err := s.client.StepRun.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetStepName(stepName).
		SetStepIndex(stepIndex).
		SetAttempt(prior + 1).
		SetStatus(steprun.StatusSkipped).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record skipped step: %w", err)
	}
	return run, nil
}

// List returns all step runs for a job in execution order.
func (s *StepRunService) List(ctx context.Context, jobID string) ([]*ent.StepRun, error) {
	runs, err := s.client.StepRun.Query().
		Where(steprun.JobIDEQ(jobID)).
		Order(ent.Asc(steprun.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step runs: %w", err)
	}
	return runs, nil
}

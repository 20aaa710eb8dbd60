package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/models"
)

// Checkpoint save retry schedule. The engine treats an exhausted retry
// budget as a transient store failure and pauses without advancing.
const (
	saveAttempts    = 5
	saveBackoffBase = 500 * time.Millisecond
	saveBackoffCap  = 8 * time.Second
)

// CheckpointService persists the per-job checkpoint document. Every save
// replaces the whole row in one transaction, together with the job-row
// status mirror, so readers never observe a torn checkpoint or a job whose
// status disagrees with its checkpoint.
type CheckpointService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{
		client: client,
		logger: slog.Default().With("component", "checkpoint_service"),
	}
}

// Load retrieves the checkpoint for a job
func (s *CheckpointService) Load(ctx context.Context, jobID string) (*models.Checkpoint, error) {
	row, err := s.client.Checkpoint.Query().
		Where(checkpoint.JobIDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return checkpointFromRow(row)
}

// Save upserts the full checkpoint document and mirrors its status onto the
// job row in the same transaction. The write runs on a background context:
// a pause-on-cancellation save must land even when the caller's context is
// already done.
func (s *CheckpointService) Save(ctx context.Context, cp *models.Checkpoint) error {
	if cp.JobID == "" {
		return NewValidationError("job_id", "required")
	}
	if err := checkpoint.StatusValidator(checkpoint.Status(cp.Status)); err != nil {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", cp.Status))
	}
	if cp.CurrentStepIndex != len(cp.CompletedStepNames) {
		return NewValidationError("current_step_index",
			fmt.Sprintf("index %d does not match %d completed steps", cp.CurrentStepIndex, len(cp.CompletedStepNames)))
	}

	var sources map[string]interface{}
	if err := remarshal(cp.AccumulatedSources, &sources); err != nil {
		return fmt.Errorf("failed to encode accumulated sources: %w", err)
	}
	var stepErrors []map[string]interface{}
	if err := remarshal(cp.StepErrors, &stepErrors); err != nil {
		return fmt.Errorf("failed to encode step errors: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start checkpoint transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	existing, err := tx.Checkpoint.Query().
		Where(checkpoint.JobIDEQ(cp.JobID)).
		Only(writeCtx)
	switch {
	case err == nil:
		err = tx.Checkpoint.UpdateOneID(existing.ID).
			SetCurrentStepIndex(cp.CurrentStepIndex).
			SetCompletedStepNames(cp.CompletedStepNames).
			SetAccumulatedContent(cp.AccumulatedContent).
			SetAccumulatedSources(sources).
			SetTopicSummaries(cp.TopicSummaries).
			SetPartialExtractions(cp.PartialExtractions).
			SetStepErrors(stepErrors).
			SetTokensUsed(cp.TokensUsed).
			SetStatus(checkpoint.Status(cp.Status)).
			SetSchemaVersion(cp.SchemaVersion).
			SetUpdatedAt(now).
			Exec(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to update checkpoint: %w", err)
		}
	case ent.IsNotFound(err):
		err = tx.Checkpoint.Create().
			SetID(uuid.New().String()).
			SetJobID(cp.JobID).
			SetCurrentStepIndex(cp.CurrentStepIndex).
			SetCompletedStepNames(cp.CompletedStepNames).
			SetAccumulatedContent(cp.AccumulatedContent).
			SetAccumulatedSources(sources).
			SetTopicSummaries(cp.TopicSummaries).
			SetPartialExtractions(cp.PartialExtractions).
			SetStepErrors(stepErrors).
			SetTokensUsed(cp.TokensUsed).
			SetStatus(checkpoint.Status(cp.Status)).
			SetSchemaVersion(cp.SchemaVersion).
			Exec(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to create checkpoint: %w", err)
		}
	default:
		return fmt.Errorf("failed to query checkpoint: %w", err)
	}

	// Status mirror: the queue claims by job status, so it must move in the
	// same transaction as the checkpoint.
	err = tx.ResearchJob.UpdateOneID(cp.JobID).
		SetStatus(researchjob.Status(cp.Status)).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("job %s vanished during checkpoint save: %w", cp.JobID, ErrNotFound)
		}
		return fmt.Errorf("failed to mirror status onto job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkpoint: %w", err)
	}
	return nil
}

// SaveWithRetry saves with exponential backoff. Returns the last save error
// after the attempt budget is spent; the caller pauses the job without
// advancing when that happens.
func (s *CheckpointService) SaveWithRetry(ctx context.Context, cp *models.Checkpoint) error {
	backoff := saveBackoffBase
	var lastErr error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		lastErr = s.Save(ctx, cp)
		if lastErr == nil {
			return nil
		}
		if IsValidationError(lastErr) {
			return lastErr // retrying cannot fix a malformed document
		}
		if attempt == saveAttempts {
			break
		}
		s.logger.WarnContext(ctx, "Checkpoint save failed, retrying",
			"job_id", cp.JobID, "attempt", attempt, "backoff", backoff, "error", lastErr)
		select {
		case <-ctx.Done():
			return fmt.Errorf("checkpoint save interrupted after %d attempts: %w", attempt, lastErr)
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, saveBackoffCap)
	}
	return fmt.Errorf("checkpoint save failed after %d attempts: %w", saveAttempts, lastErr)
}

// Delete removes the checkpoint for a job
func (s *CheckpointService) Delete(ctx context.Context, jobID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Checkpoint.Delete().
		Where(checkpoint.JobIDEQ(jobID)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTerminalBefore removes checkpoints of terminal jobs last updated
// before the cutoff. Used by retention sweeps.
func (s *CheckpointService) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Checkpoint.Delete().
		Where(
			checkpoint.UpdatedAtLT(cutoff),
			checkpoint.HasJobWith(researchjob.StatusIn(
				researchjob.StatusCompleted,
				researchjob.StatusFailed,
				researchjob.StatusCancelled,
			)),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete terminal checkpoints: %w", err)
	}
	return n, nil
}

// checkpointFromRow converts a stored row to the typed document. JSON
// columns round-trip through encoding/json so stored documents with extra
// fields (older or newer writers) still load.
func checkpointFromRow(row *ent.Checkpoint) (*models.Checkpoint, error) {
	cp := &models.Checkpoint{
		JobID:              row.JobID,
		CurrentStepIndex:   row.CurrentStepIndex,
		CompletedStepNames: row.CompletedStepNames,
		AccumulatedContent: row.AccumulatedContent,
		TopicSummaries:     row.TopicSummaries,
		PartialExtractions: row.PartialExtractions,
		TokensUsed:         row.TokensUsed,
		Status:             string(row.Status),
		SchemaVersion:      row.SchemaVersion,
		UpdatedAt:          row.UpdatedAt,
	}
	if err := remarshal(row.AccumulatedSources, &cp.AccumulatedSources); err != nil {
		return nil, fmt.Errorf("failed to decode accumulated sources: %w", err)
	}
	if err := remarshal(row.StepErrors, &cp.StepErrors); err != nil {
		return nil, fmt.Errorf("failed to decode step errors: %w", err)
	}

	// Normalize storage nils so callers can append without guards.
	if cp.CompletedStepNames == nil {
		cp.CompletedStepNames = []string{}
	}
	if cp.AccumulatedContent == nil {
		cp.AccumulatedContent = map[string][]string{}
	}
	if cp.AccumulatedSources == nil {
		cp.AccumulatedSources = map[string][]models.SourceRef{}
	}
	if cp.TopicSummaries == nil {
		cp.TopicSummaries = map[string]string{}
	}
	if cp.PartialExtractions == nil {
		cp.PartialExtractions = map[string]any{}
	}
	if cp.StepErrors == nil {
		cp.StepErrors = []models.StepError{}
	}
	return cp, nil
}

// remarshal converts between JSON-compatible shapes by round-tripping
// through encoding/json.
func remarshal(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, to)
}

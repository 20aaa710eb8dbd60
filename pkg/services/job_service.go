package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/pkg/models"
)

// JobService manages the research job lifecycle: submission, claiming by
// workers, cancellation, resume scheduling, and terminal transitions.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJob creates a pending research job. A client-supplied job ID makes
// submission idempotent: resubmitting the same ID returns ErrAlreadyExists.
func (s *JobService) CreateJob(httpCtx context.Context, req models.CreateJobRequest) (*ent.ResearchJob, error) {
	if req.ZoneName == "" {
		return nil, NewValidationError("zone_name", "required")
	}
	if req.Depth < 0 {
		return nil, NewValidationError("depth", "must be non-negative")
	}
	if req.BudgetTokens <= 0 {
		return nil, NewValidationError("budget_tokens", "must be positive")
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ResearchJob.Create().
		SetID(jobID).
		SetZoneName(req.ZoneName).
		SetDepth(req.Depth).
		SetBudgetTokens(req.BudgetTokens).
		SetStatus(researchjob.StatusPending)

	if req.Model != nil && *req.Model != "" {
		builder.SetModel(*req.Model)
	}
	if req.RequestedBy != nil {
		builder.SetRequestedBy(*req.RequestedBy)
	}
	if req.ParentJobID != nil {
		builder.SetParentJobID(*req.ParentJobID)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// GetJob retrieves a job by ID with optional edge loading
func (s *JobService) GetJob(ctx context.Context, jobID string, withEdges bool) (*ent.ResearchJob, error) {
	query := s.client.ResearchJob.Query().Where(researchjob.IDEQ(jobID))

	if withEdges {
		query = query.
			WithCheckpoint().
			WithStepRuns(func(q *ent.StepRunQuery) {
				q.Order(ent.Asc(steprun.FieldStartedAt))
			})
	}

	job, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}

// ListJobs lists jobs with filtering and pagination
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	query := s.client.ResearchJob.Query()

	if len(filters.Status) > 0 {
		statuses := make([]researchjob.Status, 0, len(filters.Status))
		for _, st := range filters.Status {
			status := researchjob.Status(st)
			if err := researchjob.StatusValidator(status); err != nil {
				return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", st))
			}
			statuses = append(statuses, status)
		}
		query = query.Where(researchjob.StatusIn(statuses...))
	}
	if filters.ZoneName != nil && *filters.ZoneName != "" {
		query = query.Where(researchjob.ZoneNameEQ(*filters.ZoneName))
	}
	if filters.ParentJobID != nil && *filters.ParentJobID != "" {
		query = query.Where(researchjob.ParentJobIDEQ(*filters.ParentJobID))
	}

	totalItems, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	page := filters.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	jobs, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(researchjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	items := make([]models.JobListItem, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, models.NewJobListItem(job))
	}

	totalPages := (totalItems + pageSize - 1) / pageSize

	return &models.JobListResponse{
		Jobs: items,
		Pagination: models.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: totalItems,
		},
	}, nil
}

// RequestCancel requests cancellation of a job. Jobs that are not executing
// (pending, paused) transition to cancelled immediately; running jobs get
// cancel_requested set and the engine stops at the next quiescent point.
// Terminal jobs return ErrInvalidState. The returned row reflects the
// transition: callers publish the cancellation event only when Status is
// already cancelled.
func (s *JobService) RequestCancel(httpCtx context.Context, jobID string) (*ent.ResearchJob, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Row lock so a concurrent claim or terminal transition serializes with us.
	job, err := tx.ResearchJob.Query().
		Where(researchjob.IDEQ(jobID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job for cancel: %w", err)
	}

	switch job.Status {
	case researchjob.StatusCompleted, researchjob.StatusFailed, researchjob.StatusCancelled:
		return nil, ErrInvalidState
	case researchjob.StatusPending, researchjob.StatusPaused:
		job, err = tx.ResearchJob.UpdateOneID(jobID).
			SetStatus(researchjob.StatusCancelled).
			SetCancelRequested(true).
			SetCompletedAt(time.Now()).
			ClearResumeAt().
			Save(ctx)
	case researchjob.StatusRunning:
		job, err = tx.ResearchJob.UpdateOneID(jobID).
			SetCancelRequested(true).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to request cancel: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}

	return job, nil
}

// ResumeJob clears a paused job's resume_at so the next claim picks it up
// immediately instead of waiting out the backoff.
func (s *JobService) ResumeJob(httpCtx context.Context, jobID string) (*ent.ResearchJob, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, err := s.client.ResearchJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job for resume: %w", err)
	}
	if job.Status != researchjob.StatusPaused {
		return nil, ErrInvalidState
	}

	job, err = s.client.ResearchJob.UpdateOneID(jobID).
		ClearResumeAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume job: %w", err)
	}

	return job, nil
}

// CountRunning returns the number of jobs currently claimed across all
// workers and replicas. The queue checks it against max_concurrent_jobs
// before claiming.
func (s *JobService) CountRunning(ctx context.Context) (int, error) {
	n, err := s.client.ResearchJob.Query().
		Where(researchjob.StatusEQ(researchjob.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running jobs: %w", err)
	}
	return n, nil
}

// CountPending returns the queue depth: jobs waiting for a first claim.
func (s *JobService) CountPending(ctx context.Context) (int, error) {
	n, err := s.client.ResearchJob.Query().
		Where(researchjob.StatusEQ(researchjob.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending jobs: %w", err)
	}
	return n, nil
}

// ClaimNextJob atomically claims the oldest runnable job: pending, or paused
// with resume_at unset or in the past. FOR UPDATE SKIP LOCKED lets workers
// race claims without blocking each other. Returns (nil, nil) when nothing
// is claimable.
func (s *JobService) ClaimNextJob(ctx context.Context, workerID string) (*ent.ResearchJob, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	job, err := tx.ResearchJob.Query().
		Where(
			researchjob.Or(
				researchjob.StatusEQ(researchjob.StatusPending),
				researchjob.And(
					researchjob.StatusEQ(researchjob.StatusPaused),
					researchjob.Or(
						researchjob.ResumeAtIsNil(),
						researchjob.ResumeAtLTE(now),
					),
				),
			),
		).
		Order(ent.Asc(researchjob.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // nothing claimable
		}
		return nil, fmt.Errorf("failed to query claimable job: %w", err)
	}

	update := tx.ResearchJob.UpdateOneID(job.ID).
		SetStatus(researchjob.StatusRunning).
		SetClaimedBy(workerID).
		SetLastHeartbeatAt(now).
		ClearResumeAt()
	if job.StartedAt == nil {
		update.SetStartedAt(now)
	}

	job, err = update.Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// UpdateHeartbeat refreshes the claim heartbeat. ErrNotFound means the
// claim was lost (orphan recovery reassigned the job); the worker must
// stop executing it.
func (s *JobService) UpdateHeartbeat(ctx context.Context, jobID, workerID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.ResearchJob.Update().
		Where(
			researchjob.IDEQ(jobID),
			researchjob.ClaimedByEQ(workerID),
			researchjob.StatusEQ(researchjob.StatusRunning),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ScheduleResume releases a paused job back to the queue with a resume
// time, incrementing resume_count. Like UpdateHeartbeat, ErrNotFound means
// the claim was lost and the job row belongs to someone else now.
func (s *JobService) ScheduleResume(ctx context.Context, jobID, workerID string, resumeAt time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.ResearchJob.Update().
		Where(
			researchjob.IDEQ(jobID),
			researchjob.ClaimedByEQ(workerID),
			researchjob.StatusEQ(researchjob.StatusRunning),
		).
		SetStatus(researchjob.StatusPaused).
		SetResumeAt(resumeAt).
		AddResumeCount(1).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to schedule resume: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReleaseJob returns a claimed job to pending without consuming a resume.
// Shutdown uses it so an interrupted job is immediately claimable by
// another replica; the backoff schedule is reserved for jobs that pause on
// their own account. ErrNotFound means the claim was already lost.
func (s *JobService) ReleaseJob(ctx context.Context, jobID, workerID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.ResearchJob.Update().
		Where(
			researchjob.IDEQ(jobID),
			researchjob.ClaimedByEQ(workerID),
			researchjob.StatusEQ(researchjob.StatusRunning),
		).
		SetStatus(researchjob.StatusPending).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to release job: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CompleteJob marks a job completed and releases the claim.
func (s *JobService) CompleteJob(ctx context.Context, jobID string) error {
	return s.finalize(jobID, researchjob.StatusCompleted, nil, nil)
}

// FailJob marks a job failed with its terminal error and releases the claim.
func (s *JobService) FailJob(ctx context.Context, jobID, errorKind, errorMessage string) error {
	return s.finalize(jobID, researchjob.StatusFailed, &errorKind, &errorMessage)
}

// MarkCancelled finalizes a cancellation the engine noticed mid-run.
func (s *JobService) MarkCancelled(ctx context.Context, jobID string) error {
	return s.finalize(jobID, researchjob.StatusCancelled, nil, nil)
}

func (s *JobService) finalize(jobID string, status researchjob.Status, errorKind, errorMessage *string) error {
	// Terminal transitions must land even when the caller's context is gone.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.ResearchJob.UpdateOneID(jobID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		ClearResumeAt()
	if errorKind != nil {
		update.SetErrorKind(*errorKind)
	}
	if errorMessage != nil {
		update.SetErrorMessage(*errorMessage)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize job as %s: %w", status, err)
	}
	return nil
}

// RecoverOrphanedJobs returns running jobs with stale heartbeats to pending.
// Safe because checkpoints hold all step progress: the next claim resumes
// from the last completed step.
func (s *JobService) RecoverOrphanedJobs(ctx context.Context, heartbeatTTL time.Duration) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-heartbeatTTL)
	n, err := s.client.ResearchJob.Update().
		Where(
			researchjob.StatusEQ(researchjob.StatusRunning),
			researchjob.LastHeartbeatAtNotNil(),
			researchjob.LastHeartbeatAtLT(cutoff),
		).
		SetStatus(researchjob.StatusPending).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned jobs: %w", err)
	}
	return n, nil
}

// RecoverWorkerJobs returns running jobs held by workers with the given
// identity prefix to pending, regardless of heartbeat age. A restarting
// process calls this for its own prefix: nothing its previous incarnation
// claimed can still be executing.
func (s *JobService) RecoverWorkerJobs(ctx context.Context, workerPrefix string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.ResearchJob.Update().
		Where(
			researchjob.StatusEQ(researchjob.StatusRunning),
			researchjob.ClaimedByHasPrefix(workerPrefix),
		).
		SetStatus(researchjob.StatusPending).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover jobs for %s: %w", workerPrefix, err)
	}
	return n, nil
}

// DeleteTerminalBefore removes terminal jobs that finished before the
// cutoff. Checkpoints, step runs, call records, and packages go with them
// through the cascade; event rows age out separately. Used by retention
// sweeps.
func (s *JobService) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.ResearchJob.Delete().
		Where(
			researchjob.StatusIn(
				researchjob.StatusCompleted,
				researchjob.StatusFailed,
				researchjob.StatusCancelled,
			),
			researchjob.CompletedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old jobs: %w", err)
	}
	return n, nil
}

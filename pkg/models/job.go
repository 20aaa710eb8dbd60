package models

import (
	"time"

	"github.com/loreweave/loreweave/ent"
)

// CreateJobRequest contains fields for submitting a new research job
type CreateJobRequest struct {
	JobID        string  `json:"job_id,omitempty"` // client-supplied for idempotent submission; generated when empty
	ZoneName     string  `json:"zone_name"`
	Depth        int     `json:"depth"`
	BudgetTokens int64   `json:"budget_tokens"`
	Model        *string `json:"model,omitempty"` // "provider:model", defaults to the configured pipeline model
	RequestedBy  *string `json:"requested_by,omitempty"`
	ParentJobID  *string `json:"parent_job_id,omitempty"` // set on jobs spawned by zone discovery
}

// JobFilters contains the supported filters for listing research jobs
type JobFilters struct {
	Status      []string `form:"status"`
	ZoneName    *string  `form:"zone"`
	ParentJobID *string  `form:"parent_job_id"`
	Page        int      `form:"page"`
	PageSize    int      `form:"page_size"`
}

// JobResponse wraps a ResearchJob with optional loaded edges
type JobResponse struct {
	*ent.ResearchJob
}

// JobDetailResponse is the full response for GET /api/v1/jobs/:id
type JobDetailResponse struct {
	*ent.ResearchJob
	Progress *JobProgress      `json:"progress,omitempty"`
	StepRuns []StepRunListItem `json:"step_runs,omitempty"`
}

// JobProgress summarizes checkpoint position for status endpoints.
type JobProgress struct {
	CurrentStepIndex int      `json:"current_step_index"`
	CompletedSteps   []string `json:"completed_steps"`
	TotalSteps       int      `json:"total_steps"`
	TokensUsed       int64    `json:"tokens_used"`
	BudgetTokens     int64    `json:"budget_tokens"`
}

// StepRunListItem contains step run metadata for collapsed list view.
type StepRunListItem struct {
	ID           string  `json:"id"`
	StepName     string  `json:"step_name"`
	StepIndex    int     `json:"step_index"`
	Attempt      int     `json:"attempt"`
	Status       string  `json:"status"`
	DurationMs   *int    `json:"duration_ms,omitempty"`
	TokensUsed   *int64  `json:"tokens_used,omitempty"`
	ErrorKind    *string `json:"error_kind,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

// JobListResponse is the paginated response for GET /api/v1/jobs
type JobListResponse struct {
	Jobs       []JobListItem      `json:"jobs"`
	Pagination PaginationResponse `json:"pagination"`
}

// JobListItem contains job metadata for list view (no checkpoint payloads).
type JobListItem struct {
	ID           string  `json:"job_id"`
	ZoneName     string  `json:"zone_name"`
	Depth        int     `json:"depth"`
	Status       string  `json:"status"`
	BudgetTokens int64   `json:"budget_tokens"`
	ParentJobID  *string `json:"parent_job_id,omitempty"`
	ErrorKind    *string `json:"error_kind,omitempty"`
	CreatedAt    string  `json:"created_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

// NewJobListItem converts a job row to its list view.
func NewJobListItem(job *ent.ResearchJob) JobListItem {
	item := JobListItem{
		ID:           job.ID,
		ZoneName:     job.ZoneName,
		Depth:        job.Depth,
		Status:       string(job.Status),
		BudgetTokens: job.BudgetTokens,
		ParentJobID:  job.ParentJobID,
		ErrorKind:    job.ErrorKind,
		CreatedAt:    job.CreatedAt.UTC().Format(time.RFC3339),
	}
	if job.CompletedAt != nil {
		completed := job.CompletedAt.UTC().Format(time.RFC3339)
		item.CompletedAt = &completed
	}
	return item
}

// NewStepRunListItem converts a step run row to its list view.
func NewStepRunListItem(run *ent.StepRun) StepRunListItem {
	return StepRunListItem{
		ID:           run.ID,
		StepName:     run.StepName,
		StepIndex:    run.StepIndex,
		Attempt:      run.Attempt,
		Status:       string(run.Status),
		DurationMs:   run.DurationMs,
		TokensUsed:   run.TokensUsed,
		ErrorKind:    run.ErrorKind,
		ErrorMessage: run.ErrorMessage,
	}
}

// NewJobProgress summarizes a checkpoint for status responses. The budget
// comes from the job row because checkpoints track only consumption.
func NewJobProgress(cp *Checkpoint, budgetTokens int64, totalSteps int) *JobProgress {
	return &JobProgress{
		CurrentStepIndex: cp.CurrentStepIndex,
		CompletedSteps:   cp.CompletedStepNames,
		TotalSteps:       totalSteps,
		TokensUsed:       cp.TokensUsed,
		BudgetTokens:     budgetTokens,
	}
}

// PaginationResponse contains pagination metadata
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

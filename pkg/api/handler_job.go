package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/zone"
)

// createJobHandler handles POST /api/v1/jobs. A zero budget falls back to
// the configured default; a client-supplied job_id makes submission
// idempotent (duplicates get 409).
func (s *Server) createJobHandler(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if req.BudgetTokens == 0 {
		req.BudgetTokens = s.cfg.Budget.DefaultJobBudgetTokens
	}

	job, err := s.jobs.CreateJob(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	s.publisher.PublishJobQueued(c.Request.Context(), job.ID, events.JobQueuedPayload{
		ZoneName: job.ZoneName,
		Depth:    job.Depth,
	})

	c.JSON(http.StatusCreated, SubmitJobResponse{
		JobID:   job.ID,
		Status:  string(job.Status),
		Message: "research job accepted",
	})
}

// listJobsHandler handles GET /api/v1/jobs. Supports status (repeated or
// comma-separated), zone, parent_job_id, page, and page_size parameters.
func (s *Server) listJobsHandler(c *gin.Context) {
	var filters models.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		badRequest(c, "invalid query parameters: "+err.Error())
		return
	}
	filters.Status = splitStatuses(filters.Status)

	resp, err := s.jobs.ListJobs(c.Request.Context(), filters)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// splitStatuses expands comma-separated status values. Validation happens
// in the service so unknown values still map to one 400 path.
func splitStatuses(raw []string) []string {
	statuses := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, st := range strings.Split(entry, ",") {
			if st = strings.TrimSpace(st); st != "" {
				statuses = append(statuses, st)
			}
		}
	}
	return statuses
}

// getJobHandler handles GET /api/v1/jobs/:id. The response carries the job
// row plus checkpoint progress and the step run history; checkpoint
// payloads themselves never leave the database through this endpoint.
func (s *Server) getJobHandler(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		badRequest(c, "job id is required")
		return
	}
	ctx := c.Request.Context()

	job, err := s.jobs.GetJob(ctx, jobID, false)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := models.JobDetailResponse{ResearchJob: job}

	cp, err := s.checkpoints.Load(ctx, jobID)
	switch {
	case err == nil:
		resp.Progress = models.NewJobProgress(cp, job.BudgetTokens, len(zone.StepNames()))
	case !errors.Is(err, services.ErrNotFound):
		serviceError(c, err)
		return
	}

	runs, err := s.stepRuns.List(ctx, jobID)
	if err != nil {
		serviceError(c, err)
		return
	}
	for _, run := range runs {
		resp.StepRuns = append(resp.StepRuns, models.NewStepRunListItem(run))
	}

	c.JSON(http.StatusOK, resp)
}

// cancelJobHandler handles POST /api/v1/jobs/:id/cancel. Pending and paused
// jobs cancel immediately (200); running jobs get the request flag and stop
// at the next step boundary (202). Terminal jobs return 409.
func (s *Server) cancelJobHandler(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		badRequest(c, "job id is required")
		return
	}

	job, err := s.jobs.RequestCancel(c.Request.Context(), jobID)
	if err != nil {
		serviceError(c, err)
		return
	}

	if job.Status == researchjob.StatusCancelled {
		s.publisher.PublishJobCancelled(c.Request.Context(), job.ID, events.JobCancelledPayload{
			ZoneName: job.ZoneName,
		})
		c.JSON(http.StatusOK, CancelResponse{
			JobID:   job.ID,
			Status:  string(job.Status),
			Message: "job cancelled",
		})
		return
	}

	c.JSON(http.StatusAccepted, CancelResponse{
		JobID:   job.ID,
		Status:  string(job.Status),
		Message: "cancellation requested, the job stops at the next step boundary",
	})
}

// resumeJobHandler handles POST /api/v1/jobs/:id/resume. Clears a paused
// job's backoff so the next worker poll can claim it without waiting out
// resume_at. Non-paused jobs return 409.
func (s *Server) resumeJobHandler(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		badRequest(c, "job id is required")
		return
	}

	job, err := s.jobs.ResumeJob(c.Request.Context(), jobID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResumeResponse{
		JobID:   job.ID,
		Status:  string(job.Status),
		Message: "resume backoff cleared, job is eligible on the next poll",
	})
}

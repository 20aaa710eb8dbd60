package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/zone"
	testdb "github.com/loreweave/loreweave/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds a Server over a fresh test database. Tests reach
// into the unexported service fields to seed rows directly.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.Config{Budget: config.DefaultBudgetConfig()}
	srv := NewServer(
		cfg,
		client,
		services.NewJobService(client.Client),
		services.NewCheckpointService(client.Client),
		services.NewStepRunService(client.Client),
		services.NewPackageService(client.Client),
		events.NewPublisher(client.DB(), "api-test"),
		nil,
	)
	return srv, client
}

// doRequest drives the full router. A string body is sent raw; anything
// else is marshalled as JSON.
func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func jobEventNames(t *testing.T, client *database.Client, jobID string) []string {
	t.Helper()
	rows, err := services.NewEventService(client.Client).GetJobEvents(context.Background(), jobID)
	require.NoError(t, err)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if name, ok := row.Payload["event"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

func TestCreateJobHandler(t *testing.T) {
	srv, client := newTestServer(t)
	handler := srv.Handler()
	ctx := context.Background()

	t.Run("accepts a submission and fills the default budget", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs", gin.H{
			"zone_name": "Emberfall Reach",
			"depth":     1,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		jobID, _ := body["job_id"].(string)
		require.NotEmpty(t, jobID)
		assert.Equal(t, "pending", body["status"])

		job, err := client.ResearchJob.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, "Emberfall Reach", job.ZoneName)
		assert.Equal(t, 1, job.Depth)
		assert.Equal(t, config.DefaultBudgetConfig().DefaultJobBudgetTokens, job.BudgetTokens)

		assert.Contains(t, jobEventNames(t, client, jobID), "job_queued")
	})

	t.Run("client-supplied id makes submission idempotent", func(t *testing.T) {
		jobID := uuid.New().String()
		req := gin.H{"job_id": jobID, "zone_name": "Sablemarsh", "budget_tokens": 100_000}

		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs", req)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(t, handler, http.MethodPost, "/api/v1/jobs", req)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("missing zone_name returns 400", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs", gin.H{"depth": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "zone_name")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestListJobsHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()
	ctx := context.Background()

	zones := []string{"Emberfall Reach", "Sablemarsh", "Gloamwood"}
	ids := make([]string, 0, len(zones))
	for _, zoneName := range zones {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     zoneName,
			BudgetTokens: 100_000,
		})
		require.NoError(t, err)
		ids = append(ids, job.ID)
	}
	_, err := srv.jobs.RequestCancel(ctx, ids[2])
	require.NoError(t, err)

	t.Run("lists all jobs with pagination metadata", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		jobs, _ := body["jobs"].([]any)
		assert.Len(t, jobs, 3)

		pagination, _ := body["pagination"].(map[string]any)
		require.NotNil(t, pagination)
		assert.Equal(t, float64(3), pagination["total_items"])
		assert.Equal(t, float64(1), pagination["page"])
	})

	t.Run("filters by comma-separated statuses", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs?status=pending", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		jobs, _ := body["jobs"].([]any)
		assert.Len(t, jobs, 2)

		w = doRequest(t, handler, http.MethodGet, "/api/v1/jobs?status=pending,cancelled", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body = decodeBody(t, w)
		jobs, _ = body["jobs"].([]any)
		assert.Len(t, jobs, 3)
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown status")
	})

	t.Run("page_size caps the page", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs?page_size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		jobs, _ := body["jobs"].([]any)
		assert.Len(t, jobs, 2)

		pagination, _ := body["pagination"].(map[string]any)
		require.NotNil(t, pagination)
		assert.Equal(t, float64(2), pagination["total_pages"])
	})

	t.Run("filters by zone", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs?zone=Sablemarsh", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		jobs, _ := body["jobs"].([]any)
		require.Len(t, jobs, 1)
		first, _ := jobs[0].(map[string]any)
		assert.Equal(t, "Sablemarsh", first["zone_name"])
	})
}

func TestGetJobHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()
	ctx := context.Background()

	t.Run("unknown job returns 404", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns progress and step runs once the job has them", func(t *testing.T) {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     "Emberfall Reach",
			BudgetTokens: 400_000,
		})
		require.NoError(t, err)

		cp := models.NewCheckpoint(job.ID)
		cp.CurrentStepIndex = 2
		cp.CompletedStepNames = []string{zone.StepZoneOverview, zone.StepNPCs}
		cp.TokensUsed = 120_000
		cp.Status = "running"
		require.NoError(t, srv.checkpoints.Save(ctx, cp))

		run, err := srv.stepRuns.Begin(ctx, job.ID, zone.StepZoneOverview, 0)
		require.NoError(t, err)
		_, err = srv.stepRuns.Complete(ctx, run.ID, models.StepRunMetrics{
			DurationMS: 5200, TokensUsed: 60_000, SourcesAdded: 4,
		})
		require.NoError(t, err)

		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs/"+job.ID, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, job.ID, body["id"])
		assert.Equal(t, "running", body["status"])

		progress, _ := body["progress"].(map[string]any)
		require.NotNil(t, progress, "progress should be present once a checkpoint exists")
		assert.Equal(t, float64(2), progress["current_step_index"])
		assert.Equal(t, float64(len(zone.StepNames())), progress["total_steps"])
		assert.Equal(t, float64(120_000), progress["tokens_used"])
		assert.Equal(t, float64(400_000), progress["budget_tokens"])

		runs, _ := body["step_runs"].([]any)
		require.Len(t, runs, 1)
		first, _ := runs[0].(map[string]any)
		assert.Equal(t, zone.StepZoneOverview, first["step_name"])
		assert.Equal(t, "completed", first["status"])
	})

	t.Run("fresh job has no progress block", func(t *testing.T) {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     "Gloamwood",
			BudgetTokens: 100_000,
		})
		require.NoError(t, err)

		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs/"+job.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Nil(t, body["progress"])
	})
}

func TestCancelJobHandler(t *testing.T) {
	srv, client := newTestServer(t)
	handler := srv.Handler()
	ctx := context.Background()

	t.Run("pending job cancels immediately", func(t *testing.T) {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     "Emberfall Reach",
			BudgetTokens: 100_000,
		})
		require.NoError(t, err)

		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "cancelled", body["status"])

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusCancelled, row.Status)

		assert.Contains(t, jobEventNames(t, client, job.ID), "job_cancelled")

		w = doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code, "terminal jobs are not cancellable")
	})

	t.Run("running job gets the cooperative flag", func(t *testing.T) {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     "Sablemarsh",
			BudgetTokens: 100_000,
		})
		require.NoError(t, err)
		claimed, err := srv.jobs.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, job.ID, claimed.ID)

		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", nil)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusRunning, row.Status)
		assert.True(t, row.CancelRequested)

		names := jobEventNames(t, client, job.ID)
		assert.NotContains(t, names, "job_cancelled", "the engine publishes once the cancel lands")
	})

	t.Run("unknown job returns 404", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+uuid.New().String()+"/cancel", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResumeJobHandler(t *testing.T) {
	srv, client := newTestServer(t)
	handler := srv.Handler()
	ctx := context.Background()

	t.Run("clears the backoff on a paused job", func(t *testing.T) {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     "Emberfall Reach",
			BudgetTokens: 100_000,
		})
		require.NoError(t, err)
		claimed, err := srv.jobs.ClaimNextJob(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.NoError(t, srv.jobs.ScheduleResume(ctx, job.ID, "worker-1", time.Now().Add(time.Hour)))

		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+job.ID+"/resume", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		row, err := client.ResearchJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, researchjob.StatusPaused, row.Status)
		assert.Nil(t, row.ResumeAt, "resume_at must be cleared so the next poll claims it")
	})

	t.Run("pending job returns 409", func(t *testing.T) {
		job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
			ZoneName:     "Gloamwood",
			BudgetTokens: 100_000,
		})
		require.NoError(t, err)

		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+job.ID+"/resume", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown job returns 404", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodPost, "/api/v1/jobs/"+uuid.New().String()+"/resume", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

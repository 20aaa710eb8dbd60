package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/models"
)

func TestGetJobPackageHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()
	ctx := context.Background()

	job, err := srv.jobs.CreateJob(ctx, models.CreateJobRequest{
		ZoneName:     "Emberfall Reach",
		BudgetTokens: 100_000,
	})
	require.NoError(t, err)

	t.Run("404 before the job publishes", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs/"+job.ID+"/package", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns the published document", func(t *testing.T) {
		_, err := srv.packages.Publish(ctx, &models.PackageDocument{
			JobID:       job.ID,
			ZoneName:    job.ZoneName,
			GeneratedAt: time.Now().UTC(),
			Categories: map[string]any{
				"overview": map[string]any{"name": job.ZoneName},
			},
			SourcesByTier:        map[string][]string{"official": {"wiki/emberfall"}},
			ConfidenceByCategory: map[string]float64{"overview": 0.9},
			Errors:               []models.StepError{},
			TokensUsed:           90_000,
		})
		require.NoError(t, err)

		w := doRequest(t, handler, http.MethodGet, "/api/v1/jobs/"+job.ID+"/package", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.NotEmpty(t, body["package_id"])
		assert.Equal(t, job.ID, body["job_id"])
		assert.Equal(t, job.ZoneName, body["zone_name"])

		doc, _ := body["document"].(map[string]any)
		require.NotNil(t, doc)
		assert.Contains(t, doc, "categories")
	})
}

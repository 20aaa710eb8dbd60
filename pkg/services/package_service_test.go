package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/models"
	testdb "github.com/loreweave/loreweave/test/database"
)

func testPackageDocument(jobID, zoneName string) *models.PackageDocument {
	return &models.PackageDocument{
		JobID:       jobID,
		ZoneName:    zoneName,
		Model:       "anthropic:claude-sonnet-4-5",
		GeneratedAt: time.Now().UTC(),
		Categories: map[string]any{
			"overview": map[string]any{"name": zoneName, "confidence": 0.9},
			"npcs": []any{
				map[string]any{"name": "Maro", "role": "lighthouse keeper"},
			},
		},
		SourcesByTier: map[string][]string{
			"official": {"wiki/emberfall/maro"},
		},
		ConfidenceByCategory: map[string]float64{"overview": 0.9, "npcs": 0.75},
		Errors:               []models.StepError{},
		TokensUsed:           310_000,
	}
}

func TestPackageService_PublishAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewPackageService(client.Client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)

	t.Run("publishes and retrieves the document", func(t *testing.T) {
		pkg, err := service.Publish(ctx, testPackageDocument(job.ID, job.ZoneName))
		require.NoError(t, err)
		assert.Equal(t, job.ID, pkg.JobID)
		assert.Equal(t, job.ZoneName, pkg.ZoneName)
		assert.False(t, pkg.PublishedAt.IsZero())

		got, err := service.GetByJobID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, pkg.ID, got.ID)
		assert.Equal(t, job.ID, got.Document["job_id"])
		categories, ok := got.Document["categories"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, categories, "npcs")
	})

	t.Run("republish replaces the earlier package", func(t *testing.T) {
		doc := testPackageDocument(job.ID, job.ZoneName)
		doc.TokensUsed = 999_999
		_, err := service.Publish(ctx, doc)
		require.NoError(t, err)

		count, err := client.LorePackage.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := service.GetByJobID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(999_999), got.Document["tokens_used"])
	})

	t.Run("missing package returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetByJobID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates the document", func(t *testing.T) {
		doc := testPackageDocument("", "Emberfall Reach")
		_, err := service.Publish(ctx, doc)
		assert.True(t, IsValidationError(err))

		doc = testPackageDocument(job.ID, "")
		_, err = service.Publish(ctx, doc)
		assert.True(t, IsValidationError(err))
	})
}

func TestPackageService_LatestForZone(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewPackageService(client.Client)
	ctx := context.Background()

	// published_at is immutable, so older packages are seeded directly
	publish := func(zone string, age time.Duration) *ent.LorePackage {
		job, err := jobs.CreateJob(ctx, newJobRequest())
		require.NoError(t, err)
		var document map[string]interface{}
		require.NoError(t, remarshal(testPackageDocument(job.ID, zone), &document))
		pkg, err := client.LorePackage.Create().
			SetID(uuid.New().String()).
			SetJobID(job.ID).
			SetZoneName(zone).
			SetDocument(document).
			SetPublishedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
		return pkg
	}

	publish("Emberfall Reach", 48*time.Hour)
	latest := publish("Emberfall Reach", 0)
	publish("Hollowmere", 0)

	got, err := service.LatestForZone(ctx, "Emberfall Reach")
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)

	_, err = service.LatestForZone(ctx, "Gloamwood")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPackageService_FindContaining(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	service := NewPackageService(client.Client)
	ctx := context.Background()

	jobA, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	_, err = service.Publish(ctx, testPackageDocument(jobA.ID, "Emberfall Reach"))
	require.NoError(t, err)

	jobB, err := jobs.CreateJob(ctx, newJobRequest())
	require.NoError(t, err)
	docB := testPackageDocument(jobB.ID, "Hollowmere")
	docB.Categories["npcs"] = []any{
		map[string]any{"name": "Sable", "role": "fence"},
	}
	_, err = service.Publish(ctx, docB)
	require.NoError(t, err)

	t.Run("finds packages by nested fragment", func(t *testing.T) {
		found, err := service.FindContaining(ctx, map[string]any{
			"categories": map[string]any{
				"npcs": []any{map[string]any{"name": "Maro"}},
			},
		}, 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, jobA.ID, found[0].JobID)
	})

	t.Run("finds by top-level field", func(t *testing.T) {
		found, err := service.FindContaining(ctx, map[string]any{"zone_name": "Hollowmere"}, 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, jobB.ID, found[0].JobID)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		found, err := service.FindContaining(ctx, map[string]any{"zone_name": "Gloamwood"}, 0)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("empty fragment is rejected", func(t *testing.T) {
		_, err := service.FindContaining(ctx, map[string]any{}, 0)
		assert.True(t, IsValidationError(err))
	})
}

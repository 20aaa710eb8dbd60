package zone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/services"
)

// seedPackageInputs fills the checkpoint with everything the nine steps
// leave behind for the assembler.
func seedPackageInputs(t *testing.T, sc *pipeline.StepContext) {
	t.Helper()
	seedExtractions(t, sc)

	crossRef, err := toJSONMap(map[string]any{
		"is_consistent": false,
		"conflicts": []map[string]any{{
			"categories":  []string{CategoryNPCs, CategoryFactions},
			"entities":    []string{"Warden Maro"},
			"description": "conflicting role",
		}},
		"adjustments": []map[string]any{{"category": CategoryNPCs, "drop": 0.3}},
		"confidence_by_category": map[string]float64{
			CategoryOverview:       0.9,
			CategoryNPCs:           0.5,
			CategoryFactions:       0.7,
			CategoryLore:           0.6,
			CategoryNarrativeItems: 0.5,
		},
	})
	require.NoError(t, err)
	sc.Checkpoint.PartialExtractions[crossReferenceKey] = crossRef
	sc.Checkpoint.PartialExtractions[discoveredZonesKey] = map[string]any{"zones": []any{"Gloomvale"}}

	sc.Checkpoint.MergeSources(CategoryNPCs, []models.SourceRef{
		{URI: "https://lore.example/emberfall", Tier: models.TierOfficial},
		{URI: "https://wiki.example/maro", Tier: models.TierTertiary},
	})
	sc.Checkpoint.MergeSources(CategoryLore, []models.SourceRef{
		{URI: "https://lore.example/emberfall", Tier: models.TierTertiary},
	})
	sc.Checkpoint.RecordError(StepExtractAll, pipeline.KindSchemaRepair, "missing required field")

	res, err := sc.Ledger.Reserve(100)
	require.NoError(t, err)
	sc.Ledger.Settle(res, 2400)
}

func TestPackageAndSend_PublishesDocument(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	job := h.startJob("Emberfall Reach", 0, 100_000)

	storage := &fakeStorage{connected: false}
	steps := h.newSteps(&scriptedProvider{}, storage)
	sc := h.stepContext(job)
	seedPackageInputs(t, sc)

	step := stepByName(t, steps, StepPackageAndSend)
	result, err := step.Handler(ctx, sc)
	require.NoError(t, err)

	require.NotNil(t, result.Summary)
	assert.Equal(t, map[string]int{
		CategoryOverview:       1,
		CategoryNPCs:           2,
		CategoryFactions:       1,
		CategoryLore:           1,
		CategoryNarrativeItems: 1,
	}, result.Summary.Categories)
	assert.Equal(t, 2, result.Summary.SourceCount)
	assert.Equal(t, 1, result.Summary.ErrorCount)
	assert.InDelta(t, 0.5, result.Summary.ConfidenceByCategory[CategoryNPCs], 1e-9)

	row, err := h.packages.GetByJobID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emberfall Reach", row.ZoneName)

	doc := row.Document
	assert.Equal(t, "anthropic:claude-sonnet-4-5", doc["model"])
	assert.Equal(t, float64(2400), doc["tokens_used"])
	assert.NotEmpty(t, doc["generated_at"])

	categories := doc["categories"].(map[string]any)
	assert.Contains(t, categories, CategoryNarrativeItems)

	// Same URI under two topics lands once, at its highest tier.
	tiers := doc["sources_by_tier"].(map[string]any)
	assert.Equal(t, []any{"https://lore.example/emberfall"}, tiers["official"])
	assert.Equal(t, []any{"https://wiki.example/maro"}, tiers["tertiary"])

	confidence := doc["confidence_by_category"].(map[string]any)
	assert.InDelta(t, 0.5, confidence[CategoryNPCs].(float64), 1e-9)

	assert.Equal(t, []any{"Gloomvale"}, doc["discovered_zones"])
	assert.Len(t, doc["errors"].([]any), 1)

	// Storage is not connected, so the package stays database-only.
	assert.Empty(t, storage.calls)

	// Republishing replaces the row instead of duplicating it.
	_, err = step.Handler(ctx, sc)
	require.NoError(t, err)
	_, err = h.packages.GetByJobID(ctx, job.ID)
	require.NoError(t, err)
}

func TestPackageAndSend_FallsBackToExtractionConfidence(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	job := h.startJob("Emberfall Reach", 0, 100_000)

	steps := h.newSteps(&scriptedProvider{}, nil)
	sc := h.stepContext(job)
	seedExtractions(t, sc)

	step := stepByName(t, steps, StepPackageAndSend)
	result, err := step.Handler(ctx, sc)
	require.NoError(t, err)

	// No cross-reference record: the extraction's own scores stand.
	assert.InDelta(t, 0.8, result.Summary.ConfidenceByCategory[CategoryNPCs], 1e-9)
	assert.InDelta(t, 0.9, result.Summary.ConfidenceByCategory[CategoryOverview], 1e-9)
}

func TestPackageAndSend_NoExtractionsIsPermanent(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	job := h.startJob("Emberfall Reach", 0, 100_000)

	steps := h.newSteps(&scriptedProvider{}, nil)
	sc := h.stepContext(job)

	step := stepByName(t, steps, StepPackageAndSend)
	_, err := step.Handler(ctx, sc)
	require.Error(t, err)
	assert.Equal(t, pipeline.KindPermanentInternal, pipeline.Classify(err))

	_, err = h.packages.GetByJobID(ctx, job.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPackageAndSend_UpsertsToStorage(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	job := h.startJob("Emberfall Reach", 0, 100_000)

	storage := &fakeStorage{connected: true}
	steps := h.newSteps(&scriptedProvider{}, storage)
	sc := h.stepContext(job)
	seedPackageInputs(t, sc)

	step := stepByName(t, steps, StepPackageAndSend)
	_, err := step.Handler(ctx, sc)
	require.NoError(t, err)

	require.Len(t, storage.calls, 1)
	call := storage.calls[0]
	assert.Equal(t, storageToolSet, call.set)
	assert.Equal(t, "upsert", call.tool)
	assert.Equal(t, "lore_packages", call.args["namespace"])
	assert.Equal(t, "Emberfall Reach", call.args["key"])
	document, ok := call.args["document"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Emberfall Reach", document["zone_name"])
}

func TestPackageAndSend_StorageFailureIsSwallowed(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	job := h.startJob("Emberfall Reach", 0, 100_000)

	storage := &fakeStorage{connected: true, err: errors.New("vector store offline")}
	steps := h.newSteps(&scriptedProvider{}, storage)
	sc := h.stepContext(job)
	seedPackageInputs(t, sc)

	step := stepByName(t, steps, StepPackageAndSend)
	_, err := step.Handler(ctx, sc)
	require.NoError(t, err)

	require.Len(t, storage.calls, 1)
	_, err = h.packages.GetByJobID(ctx, job.ID)
	require.NoError(t, err)
}

func TestDiscoveredZones_ReadsRecord(t *testing.T) {
	cp := models.NewCheckpoint("job")
	assert.Nil(t, discoveredZones(cp))

	cp.PartialExtractions[discoveredZonesKey] = map[string]any{"zones": []any{"Gloomvale", ""}}
	assert.Equal(t, []string{"Gloomvale"}, discoveredZones(cp))
}

package zone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/pipeline"
)

// seedExtractions stores validExtraction's category documents the way
// extract_all does, normalized to the JSON round-trip shape.
func seedExtractions(t *testing.T, sc *pipeline.StepContext) {
	t.Helper()
	extraction := validExtraction()
	for category, doc := range extraction.categoryDocs() {
		normalized, err := toJSONMap(doc)
		require.NoError(t, err)
		sc.Checkpoint.PartialExtractions[category] = normalized
	}
}

func TestCrossReference_AdjustsConfidence(t *testing.T) {
	check := mustJSON(t, CrossReferenceResult{
		// The model's own flag contradicts its conflict list; the stored
		// record must follow the conflicts.
		IsConsistent: true,
		Conflicts: []Conflict{{
			Categories:  []string{CategoryNPCs, CategoryFactions},
			Entities:    []string{"Warden Maro"},
			Description: "Maro is listed as Emberguard warden and as an exile",
		}},
		Adjustments: []ConfidenceAdjustment{
			{Category: CategoryNPCs, Drop: 0.3, Reason: "conflicting role"},
			{Category: CategoryLore, Drop: 1.0, Reason: "single uncorroborated account"},
			{Category: "settlements", Drop: 0.2},
		},
	})
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(check, 600)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedExtractions(t, sc)

	step := stepByName(t, steps, StepCrossReference)
	_, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	record, ok := sc.Checkpoint.PartialExtractions[crossReferenceKey].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, record["is_consistent"])

	conflicts, ok := record["conflicts"].([]any)
	require.True(t, ok)
	assert.Len(t, conflicts, 1)

	confidence, ok := record["confidence_by_category"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.5, confidence[CategoryNPCs], 1e-9)
	assert.InDelta(t, 0.9, confidence[CategoryOverview], 1e-9)
	assert.InDelta(t, 0.0, confidence[CategoryLore], 1e-9)
	assert.NotContains(t, confidence, "settlements")

	require.Len(t, provider.calls, 1)
	prompt := provider.calls[0].Messages[0].Content
	assert.Contains(t, prompt, "Warden Maro")
	assert.Contains(t, prompt, `"npcs"`)
}

func TestCrossReference_ConsistentResult(t *testing.T) {
	check := mustJSON(t, CrossReferenceResult{
		IsConsistent: true,
		Conflicts:    []Conflict{},
		Adjustments:  []ConfidenceAdjustment{},
	})
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(check, 300)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedExtractions(t, sc)

	step := stepByName(t, steps, StepCrossReference)
	_, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	record := sc.Checkpoint.PartialExtractions[crossReferenceKey].(map[string]any)
	assert.Equal(t, true, record["is_consistent"])

	confidence := record["confidence_by_category"].(map[string]any)
	assert.InDelta(t, 0.8, confidence[CategoryNPCs], 1e-9)
	assert.InDelta(t, 0.5, confidence[CategoryNarrativeItems], 1e-9)
}

func TestCrossReference_NoExtractionsIsPermanent(t *testing.T) {
	provider := &scriptedProvider{}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepCrossReference)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.Equal(t, pipeline.KindPermanentInternal, pipeline.Classify(err))
	assert.Empty(t, provider.calls)
}

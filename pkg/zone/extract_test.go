package zone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

func seedResearchContent(sc *pipeline.StepContext) {
	sc.Checkpoint.AppendContent(CategoryOverview, "Emberfall Reach is a volcanic highland in the Cinder Marches.")
	sc.Checkpoint.AppendContent(CategoryNPCs, "Warden Maro commands the Emberguard garrison. Sel sells maps at the gate.")
	sc.Checkpoint.AppendContent(CategoryLore, "The Sundering split the Reach three centuries ago.")
}

func TestExtractAll_WritesAllCategories(t *testing.T) {
	extraction := mustJSON(t, validExtraction())
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(extraction, 1500)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedResearchContent(sc)

	step := stepByName(t, steps, StepExtractAll)
	result, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, len(extraction), result.ContentBytes)

	for _, category := range Categories() {
		doc, ok := sc.Checkpoint.PartialExtractions[category].(map[string]any)
		require.True(t, ok, "category %s missing or mistyped", category)
		assert.NotEmpty(t, doc)
	}

	npcs := sc.Checkpoint.PartialExtractions[CategoryNPCs].(map[string]any)
	entries, ok := npcs["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 2)
	confidence, ok := confidenceOf(npcs)
	require.True(t, ok)
	assert.InDelta(t, 0.8, confidence, 1e-9)

	overview := sc.Checkpoint.PartialExtractions[CategoryOverview].(map[string]any)
	assert.Equal(t, "Emberfall Reach", overview["name"])

	assert.Empty(t, sc.Checkpoint.StepErrors)
	assert.Equal(t, int64(1500), sc.Ledger.Used())

	require.Len(t, provider.calls, 1)
	call := provider.calls[0]
	assert.NotNil(t, call.ResponseSchema)
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, "overview, npcs, factions, lore, narrative_items")
	assert.Contains(t, prompt, "# npcs")
	assert.Contains(t, prompt, "Warden Maro commands the Emberguard garrison.")
}

func TestExtractAll_RepairsInvalidOutput(t *testing.T) {
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(`{"overview": {"name": "Emberfall Reach"}}`, 400)},
		{resp: textResponse(mustJSON(t, validExtraction()), 1200)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedResearchContent(sc)

	step := stepByName(t, steps, StepExtractAll)
	_, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	require.Len(t, provider.calls, 2)
	repairPrompt := provider.calls[1].Messages[0].Content
	assert.Contains(t, repairPrompt, "failed validation")
	assert.Contains(t, repairPrompt, `{"overview": {"name": "Emberfall Reach"}}`)

	// The repaired document is stored; the detour stays on the record.
	assert.Contains(t, sc.Checkpoint.PartialExtractions, CategoryFactions)
	require.Len(t, sc.Checkpoint.StepErrors, 1)
	assert.Equal(t, StepExtractAll, sc.Checkpoint.StepErrors[0].Step)
	assert.Equal(t, pipeline.KindSchemaRepair, sc.Checkpoint.StepErrors[0].Kind)

	assert.Equal(t, int64(1600), sc.Ledger.Used())
}

func TestExtractAll_RepeatedSchemaFailureIsPermanent(t *testing.T) {
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse("not even json", 200)},
		{resp: textResponse(`{"wrong": true}`, 200)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedResearchContent(sc)

	step := stepByName(t, steps, StepExtractAll)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.Equal(t, pipeline.KindPermanentSchema, pipeline.Classify(err))

	require.Len(t, provider.calls, 2)
	assert.NotContains(t, sc.Checkpoint.PartialExtractions, CategoryOverview)
	assert.Empty(t, sc.Checkpoint.StepErrors)
	assert.Equal(t, int64(400), sc.Ledger.Used())
}

func TestExtractAll_NoMaterialIsPermanent(t *testing.T) {
	provider := &scriptedProvider{}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepExtractAll)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.Equal(t, pipeline.KindPermanentInternal, pipeline.Classify(err))
	assert.Empty(t, provider.calls)
}

func TestExtractAll_CompressesOversizedMaterial(t *testing.T) {
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse("Maro leads. Sel sells maps.", 150)},
		{resp: textResponse(mustJSON(t, validExtraction()), 1000)},
	}}
	cfg := &config.Config{Extraction: &config.ExtractionConfig{MaxInputTokens: 10, RepairAttempts: 1}}
	steps := newTestSteps(t, provider, nil, cfg)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedResearchContent(sc)

	step := stepByName(t, steps, StepExtractAll)
	_, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	require.Len(t, provider.calls, 2)
	compressPrompt := provider.calls[0].Messages[0].Content
	assert.Contains(t, compressPrompt, "Warden Maro commands the Emberguard garrison.")
	assert.Contains(t, compressPrompt, "entries.name")

	extractPrompt := provider.calls[1].Messages[0].Content
	assert.Contains(t, extractPrompt, "Maro leads. Sel sells maps.")
	assert.NotContains(t, extractPrompt, "Warden Maro commands the Emberguard garrison.")

	// Both the compression call and the extraction call settle.
	assert.Equal(t, int64(1150), sc.Ledger.Used())
}

func TestExtractAll_BudgetGatesTheCall(t *testing.T) {
	provider := &scriptedProvider{}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	seedResearchContent(sc)
	sc.Ledger = budget.NewLedger(5, 0)

	step := stepByName(t, steps, StepExtractAll)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrBudgetExhausted)
	assert.Empty(t, provider.calls)
}

func TestAssembleMaterial(t *testing.T) {
	cp := newStepContext("z", 0, 1000).Checkpoint
	cp.AppendContent(CategoryLore, "second")
	cp.AppendContent(CategoryOverview, "first a", "first b")

	material := assembleMaterial(cp)
	assert.Equal(t, "# overview\n\nfirst a\n\nfirst b\n\n# lore\n\nsecond", material)
}

func TestAssembleMaterial_Empty(t *testing.T) {
	cp := newStepContext("z", 0, 1000).Checkpoint
	assert.Empty(t, assembleMaterial(cp))
}

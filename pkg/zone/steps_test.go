package zone

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

func TestRegistry_NineStepsInOrder(t *testing.T) {
	steps := newTestSteps(t, &scriptedProvider{}, nil, nil)
	registry, err := steps.Registry()
	require.NoError(t, err)

	assert.Equal(t, []string{
		StepZoneOverview,
		StepNPCs,
		StepFactions,
		StepLore,
		StepNarrativeItems,
		StepExtractAll,
		StepCrossReference,
		StepDiscoverZones,
		StepPackageAndSend,
	}, registry.Names())

	kinds := map[string]pipeline.StepKind{}
	var guarded []string
	for _, step := range registry.Steps() {
		kinds[step.Name] = step.Kind
		if step.Guard != nil {
			guarded = append(guarded, step.Name)
		}
	}
	assert.Equal(t, pipeline.StepKindResearch, kinds[StepZoneOverview])
	assert.Equal(t, pipeline.StepKindResearch, kinds[StepNarrativeItems])
	assert.Equal(t, pipeline.StepKindExtraction, kinds[StepExtractAll])
	assert.Equal(t, pipeline.StepKindExtraction, kinds[StepCrossReference])
	assert.Equal(t, pipeline.StepKindExtraction, kinds[StepDiscoverZones])
	assert.Equal(t, pipeline.StepKindTransform, kinds[StepPackageAndSend])

	// Discovery is the only conditional step.
	assert.Equal(t, []string{StepDiscoverZones}, guarded)
}

func TestNewSteps_DefaultsConfigSections(t *testing.T) {
	s := NewSteps(StepDeps{})
	require.NotNil(t, s.cfg.Pipeline)
	require.NotNil(t, s.cfg.Budget)
	require.NotNil(t, s.cfg.Extraction)

	caller := &config.Config{Extraction: &config.ExtractionConfig{MaxInputTokens: 123, RepairAttempts: 2}}
	s = NewSteps(StepDeps{Config: caller})
	assert.Equal(t, 123, s.cfg.Extraction.MaxInputTokens)
	assert.Equal(t, int64(500_000), s.cfg.Budget.DefaultJobBudgetTokens)

	// Defaulting happens on a copy.
	assert.Nil(t, caller.Pipeline)
	assert.Nil(t, caller.Budget)
}

func TestClampText(t *testing.T) {
	assert.Equal(t, "short", clampText("short", 10))

	long := strings.Repeat("é", 10)
	cut := clampText(long, 5)
	assert.Equal(t, "éé", cut)
	assert.True(t, utf8.ValidString(cut))
}

package zone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

// stepByName pulls one handler out of the built registry so tests exercise
// the same wiring the engine runs.
func stepByName(t *testing.T, s *Steps, name string) pipeline.Step {
	t.Helper()
	registry, err := s.Registry()
	require.NoError(t, err)
	for _, step := range registry.Steps() {
		if step.Name == name {
			return step
		}
	}
	t.Fatalf("step %q not in registry", name)
	return pipeline.Step{}
}

func TestResearch_AccumulatesReport(t *testing.T) {
	report := mustJSON(t, models.ResearchReport{
		Findings: "## Warden Maro\n\nCommands the Emberguard garrison at the caldera gate.",
		Summary:  "Two named NPCs anchor the zone's main quest chain.",
		Sources: []models.ReportSource{
			{URI: "https://lore.example/emberfall/npcs", Tier: "official"},
			{URI: "https://wiki.example/maro", Tier: "tertiary"},
		},
	})
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(report, 900)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)
	sc.Checkpoint.TopicSummaries[CategoryOverview] = "A volcanic highland in the Cinder Marches."

	step := stepByName(t, steps, StepNPCs)
	result, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SourcesAdded)
	assert.Positive(t, result.ContentBytes)
	require.Len(t, sc.Checkpoint.AccumulatedContent[CategoryNPCs], 1)
	assert.Contains(t, sc.Checkpoint.AccumulatedContent[CategoryNPCs][0], "Warden Maro")
	assert.Equal(t, "Two named NPCs anchor the zone's main quest chain.", sc.Checkpoint.TopicSummaries[CategoryNPCs])

	sources := sc.Checkpoint.AccumulatedSources[CategoryNPCs]
	require.Len(t, sources, 2)
	assert.Equal(t, models.TierOfficial, sources[0].Tier)

	// Actual usage is charged even though the reservation was an estimate.
	assert.Equal(t, int64(900), sc.Ledger.Used())

	require.Len(t, provider.calls, 1)
	call := provider.calls[0]
	assert.Contains(t, call.System, "expert game-world researcher")
	assert.Contains(t, call.System, "Emberfall Reach")
	require.Len(t, call.Messages, 1)
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, "notable NPCs")
	assert.Contains(t, prompt, "overview: A volcanic highland in the Cinder Marches.")
	assert.Contains(t, prompt, "Finish your reply with a single JSON object")
}

func TestResearch_KeepsNonJSONOutputVerbatim(t *testing.T) {
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse("The zone's history is dominated by the Sundering.\n", 300)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepLore)
	result, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	assert.Zero(t, result.SourcesAdded)
	require.Len(t, sc.Checkpoint.AccumulatedContent[CategoryLore], 1)
	assert.Equal(t, "The zone's history is dominated by the Sundering.",
		sc.Checkpoint.AccumulatedContent[CategoryLore][0])
	assert.Empty(t, sc.Checkpoint.TopicSummaries[CategoryLore])
}

func TestResearch_EmptyOutputIsTransient(t *testing.T) {
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse("   ", 40)},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepZoneOverview)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.Equal(t, pipeline.KindTransientInternal, pipeline.Classify(err))

	// The call happened, so its tokens count against the budget.
	assert.Equal(t, int64(40), sc.Ledger.Used())
	assert.Empty(t, sc.Checkpoint.AccumulatedContent)
}

func TestResearch_RateLimitClassifiesTransient(t *testing.T) {
	provider := &scriptedProvider{responses: []scripted{
		{err: &llm.ProviderError{
			Provider:   "anthropic",
			Operation:  "generate",
			StatusCode: 429,
			Retryable:  true,
			Err:        llm.ErrRateLimited,
		}},
	}}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepFactions)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.Equal(t, pipeline.KindTransientRateLimit, pipeline.Classify(err))

	// The failed call reported no usage; the reservation must not stick.
	assert.Equal(t, int64(0), sc.Ledger.Used())
	assert.Equal(t, int64(100_000), sc.Ledger.Remaining())
	res, reserveErr := sc.Ledger.Reserve(90_000)
	require.NoError(t, reserveErr)
	sc.Ledger.Release(res)
}

func TestResearch_ToolLoop(t *testing.T) {
	report := mustJSON(t, models.ResearchReport{
		Findings: "The Ashen Coast borders the Reach to the west.",
		Summary:  "One bordering region documented.",
		Sources:  []models.ReportSource{{URI: "https://lore.example/reach", Tier: "primary"}},
	})
	provider := &scriptedProvider{responses: []scripted{
		{resp: &llm.Response{
			ToolCalls: []llm.ToolCall{{ID: "t1", Name: "search.query", Args: map[string]any{"q": "Emberfall Reach borders"}}},
			Usage:     llm.Usage{TotalTokens: 500},
		}},
		{resp: textResponse(report, 700)},
	}}
	executor := &scriptedExecutor{
		tools:   []llm.ToolDefinition{{Name: "search.query", Description: "Search indexed lore sources"}},
		results: map[string]string{"search.query": "1. The Ashen Coast (west)"},
	}
	steps := newTestSteps(t, provider, executor, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepZoneOverview)
	result, err := step.Handler(context.Background(), sc)
	require.NoError(t, err)

	require.Len(t, executor.executed, 1)
	assert.Equal(t, "search.query", executor.executed[0].Name)
	require.Len(t, provider.calls, 2)

	// The second call sees the tool result in the transcript.
	second := provider.calls[1]
	require.Len(t, second.Messages, 3)
	require.NotNil(t, second.Messages[2].ToolResult)
	assert.Contains(t, second.Messages[2].ToolResult.Content, "Ashen Coast")

	assert.Equal(t, 1, result.SourcesAdded)
	assert.Equal(t, int64(1200), sc.Ledger.Used())
}

func TestResearch_BudgetExhaustedBeforeCall(t *testing.T) {
	provider := &scriptedProvider{}
	steps := newTestSteps(t, provider, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 1000)
	sc.Ledger = budget.NewLedger(10, 0)

	step := stepByName(t, steps, StepNarrativeItems)
	_, err := step.Handler(context.Background(), sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrBudgetExhausted)
	assert.Equal(t, pipeline.KindPermanentBudget, pipeline.Classify(err))
	assert.Empty(t, provider.calls)
}

func TestParseReport(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		result := parseReport("```json\n{\"findings\": \"detail\", \"summary\": \"short\", \"sources\": []}\n```")
		assert.Equal(t, []string{"detail"}, result.RawContent)
		assert.Equal(t, "short", result.Summary)
	})
	t.Run("unknown tier normalized", func(t *testing.T) {
		result := parseReport(`{"findings": "x", "summary": "", "sources": [{"uri": "u", "tier": "blog"}]}`)
		require.Len(t, result.Sources, 1)
		assert.Equal(t, models.TierTertiary, result.Sources[0].Tier)
	})
	t.Run("plain text kept verbatim", func(t *testing.T) {
		result := parseReport("  just prose  ")
		assert.Equal(t, []string{"just prose"}, result.RawContent)
		assert.Empty(t, result.Summary)
	})
	t.Run("empty", func(t *testing.T) {
		result := parseReport("")
		assert.Empty(t, result.RawContent)
	})
}

func TestKnownContext_OrderedByCategory(t *testing.T) {
	cp := models.NewCheckpoint("job")
	cp.TopicSummaries[CategoryLore] = "ancient history"
	cp.TopicSummaries[CategoryOverview] = "volcanic highland"

	ctx := knownContext(cp)
	assert.Equal(t, "overview: volcanic highland\n\nlore: ancient history", ctx)
}

func TestKnownContext_Empty(t *testing.T) {
	assert.Empty(t, knownContext(models.NewCheckpoint("job")))
}

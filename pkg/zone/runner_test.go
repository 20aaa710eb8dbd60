package zone

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/prompts"
)

func TestRunner_PausesWhenModelUnresolvable(t *testing.T) {
	cfg := &config.Config{LLMProviderRegistry: config.NewLLMProviderRegistry(nil)}
	runner := NewRunner(RunnerDeps{
		Router:  llm.NewRouter(cfg),
		Library: prompts.MustLoad(),
		Config:  cfg,
	})

	job := &ent.ResearchJob{ID: uuid.New().String(), ZoneName: "Emberfall Reach", BudgetTokens: 1000}
	outcome, err := runner.Run(context.Background(), job)
	require.Error(t, err)
	assert.Equal(t, pipeline.OutcomePaused, outcome)
	assert.Contains(t, err.Error(), "resolving model")
}

func TestRunner_ConfiguredToolSets(t *testing.T) {
	registry := config.NewToolSetRegistry(map[string]*config.ToolSetConfig{
		"search":  {},
		"storage": {},
		"ticket":  {},
	})
	runner := NewRunner(RunnerDeps{Config: &config.Config{ToolSetRegistry: registry}})

	sets := runner.configuredToolSets()
	assert.Equal(t, []string{"search", "storage"}, sets)

	// Storage never reaches the research agent's tool surface.
	assert.Equal(t, []string{"search"}, runner.agentToolSets(sets))
}

func TestRunner_NoToolSetsConfigured(t *testing.T) {
	runner := NewRunner(RunnerDeps{})
	assert.Empty(t, runner.configuredToolSets())
}

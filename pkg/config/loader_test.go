package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearAmbientEnv blanks every env var the loader consults so tests are
// insulated from the developer's shell. t.Setenv restores them afterwards.
func clearAmbientEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GOOGLE_API_KEY",
		"TOOL_SEARCH_URL", "TOOL_CRAWLER_URL", "TOOL_STORAGE_URL", "TOOL_SUMMARIZER_URL",
		"LLM_MODEL", "DAILY_TOKEN_BUDGET",
	} {
		t.Setenv(key, "")
	}
}

// setupTestConfigDir creates a temp config directory with valid config files.
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()

	loreweaveYAML := `
tools:
  search:
    endpoint: ${TEST_SEARCH_URL}
    timeout: 20
  crawler:
    endpoint: http://crawler:9202/mcp
    read_timeout: 240

pipeline:
  max_tool_iterations: 8
  research_step_timeout: 5m

summarizer:
  chunk_size: 2000

queue:
  worker_count: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "loreweave.yaml"), []byte(loreweaveYAML), 0644))

	llmProvidersYAML := `
llm_providers:
  anthropic-fast:
    type: anthropic
    model: claude-haiku-4-5
    api_key_env: ANTHROPIC_API_KEY
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(llmProvidersYAML), 0644))

	return configDir
}

func TestInitialize(t *testing.T) {
	clearAmbientEnv(t)
	configDir := setupTestConfigDir(t)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("TEST_SEARCH_URL", "http://search:9201/mcp")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registries are populated
	assert.NotNil(t, cfg.ToolSetRegistry)
	assert.NotNil(t, cfg.LLMProviderRegistry)

	// User-defined tool sets loaded, env references expanded
	search, err := cfg.GetToolSet("search")
	require.NoError(t, err)
	assert.Equal(t, "http://search:9201/mcp", search.Endpoint)
	assert.Equal(t, 20*time.Second, search.RequestTimeout())

	crawler, err := cfg.GetToolSet("crawler")
	require.NoError(t, err)
	assert.Equal(t, 240*time.Second, crawler.ResultTimeout())

	// Built-in anthropic provider activated by ANTHROPIC_API_KEY,
	// user-defined provider loaded alongside it
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic"))
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic-fast"))

	// User pipeline values merged over defaults
	assert.Equal(t, 8, cfg.Pipeline.MaxToolIterations)
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.ResearchStepTimeout)
	// Untouched defaults survive the merge
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.ExtractionStepTimeout)
	assert.Equal(t, 5, cfg.Pipeline.MaxConcurrentLLMCalls)

	assert.Equal(t, 2000, cfg.Summarizer.ChunkSize)
	assert.Equal(t, 200, cfg.Summarizer.ChunkOverlap)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Queue.MaxResumes)

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.ToolSets)
	assert.Equal(t, 2, stats.LLMProviders)
}

func TestInitialize_NoYAMLFallsBackToBuiltin(t *testing.T) {
	clearAmbientEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("TOOL_SEARCH_URL", "http://search:9201/mcp")
	t.Setenv("TOOL_STORAGE_URL", "http://storage:9203/mcp")

	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)

	assert.True(t, cfg.ToolSetRegistry.Has("search"))
	assert.True(t, cfg.ToolSetRegistry.Has("storage"))
	assert.False(t, cfg.ToolSetRegistry.Has("crawler"), "crawler endpoint env not set")

	provider, model, err := cfg.ResolveModel("")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeAnthropic, provider.Type)
	assert.Equal(t, "claude-sonnet-4-5", model)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	clearAmbientEnv(t)
	configDir := setupTestConfigDir(t)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("TEST_SEARCH_URL", "http://search:9201/mcp")
	t.Setenv("LLM_MODEL", "anthropic-fast:claude-haiku-4-5")
	t.Setenv("DAILY_TOKEN_BUDGET", "2000000")

	cfg, err := Initialize(context.Background(), configDir)

	require.NoError(t, err)
	assert.Equal(t, "anthropic-fast:claude-haiku-4-5", cfg.Pipeline.DefaultModel)
	assert.Equal(t, int64(2_000_000), cfg.Budget.DefaultJobBudgetTokens)
}

func TestInitialize_InvalidDailyBudget(t *testing.T) {
	clearAmbientEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("DAILY_TOKEN_BUDGET", "lots")

	_, err := Initialize(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILY_TOKEN_BUDGET")
}

func TestInitialize_NoProvidersFailsValidation(t *testing.T) {
	clearAmbientEnv(t)
	// No API key env vars, no YAML: the default model cannot resolve.
	_, err := Initialize(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	clearAmbientEnv(t)
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "loreweave.yaml"), []byte("tools: ["), 0644))

	_, err := Initialize(context.Background(), configDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/config"
)

func testRouterConfig() *config.Config {
	return &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"anthropic": {
				Type:            config.LLMProviderTypeAnthropic,
				Model:           "claude-sonnet-4-5",
				APIKeyEnv:       "ANTHROPIC_API_KEY",
				MaxOutputTokens: 8192,
			},
			"openai": {
				Type:      config.LLMProviderTypeOpenAI,
				Model:     "gpt-4o",
				APIKeyEnv: "OPENAI_API_KEY",
			},
			"google": {
				Type:      config.LLMProviderTypeGoogle,
				Model:     "gemini-2.5-flash",
				APIKeyEnv: "GEMINI_API_KEY",
			},
			"local": {
				Type:    config.LLMProviderTypeOpenAI,
				Model:   "qwen-32b",
				BaseURL: "http://localhost:8000/v1",
			},
		}),
	}
}

func TestRouter_ResolveDefaultModel(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	r := NewRouter(testRouterConfig())

	p, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
	assert.Equal(t, "claude-sonnet-4-5", p.Model())
}

func TestRouter_ResolveBareProviderUsesDefaultModel(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	r := NewRouter(testRouterConfig())

	p, err := r.Resolve("google")
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())
	assert.Equal(t, "gemini-2.5-flash", p.Model())
}

func TestRouter_ResolveQualifiedRef(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	r := NewRouter(testRouterConfig())

	p, err := r.Resolve("anthropic:claude-haiku-4")
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4", p.Model())
}

func TestRouter_CachesPerProviderModelPair(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	r := NewRouter(testRouterConfig())

	a, err := r.Resolve("anthropic")
	require.NoError(t, err)
	b, err := r.Resolve("anthropic:claude-sonnet-4-5")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := r.Resolve("anthropic:claude-haiku-4")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestRouter_MissingAPIKeyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	r := NewRouter(testRouterConfig())

	_, err := r.Resolve("openai")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestRouter_KeylessBaseURLProvider(t *testing.T) {
	r := NewRouter(testRouterConfig())

	p, err := r.Resolve("local")
	require.NoError(t, err)
	assert.Equal(t, "local", p.Name())
	assert.Equal(t, "qwen-32b", p.Model())
}

func TestRouter_UnknownProvider(t *testing.T) {
	r := NewRouter(testRouterConfig())

	_, err := r.Resolve("mistral:large")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLLMProviderNotFound)
}

func TestRouter_UnsupportedProviderType(t *testing.T) {
	cfg := &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"weird": {Type: "cohere", Model: "command-r"},
		}),
	}
	r := NewRouter(cfg)

	_, err := r.Resolve("weird")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

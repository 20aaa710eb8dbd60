package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a fully valid Config for mutation in tests.
func validTestConfig() *Config {
	return &Config{
		Pipeline:   DefaultPipelineConfig(),
		Budget:     DefaultBudgetConfig(),
		Summarizer: DefaultSummarizerConfig(),
		Extraction: DefaultExtractionConfig(),
		Queue:      DefaultQueueConfig(),
		Retention:  DefaultRetentionConfig(),
		ToolSetRegistry: NewToolSetRegistry(map[string]*ToolSetConfig{
			"search": {Endpoint: "http://search:9201/mcp"},
		}),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"anthropic": {Type: LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5"},
		}),
	}
}

func TestValidateAll_ValidConfig(t *testing.T) {
	cfg := validTestConfig()

	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateToolSets(t *testing.T) {
	tests := []struct {
		name    string
		toolSet *ToolSetConfig
		wantErr string
	}{
		{
			name:    "missing endpoint",
			toolSet: &ToolSetConfig{},
			wantErr: "endpoint required",
		},
		{
			name:    "endpoint without scheme",
			toolSet: &ToolSetConfig{Endpoint: "search:9201"},
			wantErr: "invalid URL",
		},
		{
			name:    "invalid transport",
			toolSet: &ToolSetConfig{Endpoint: "http://search:9201/mcp", Transport: "grpc"},
			wantErr: "invalid transport type",
		},
		{
			name:    "stdio missing command",
			toolSet: &ToolSetConfig{Transport: TransportTypeStdio},
			wantErr: "command required",
		},
		{
			name:    "negative timeout",
			toolSet: &ToolSetConfig{Endpoint: "http://search:9201/mcp", Timeout: -5},
			wantErr: "must not be negative",
		},
		{
			name:    "bearer token env not set",
			toolSet: &ToolSetConfig{Endpoint: "http://search:9201/mcp", BearerTokenEnv: "LOREWEAVE_TEST_UNSET_TOKEN"},
			wantErr: "LOREWEAVE_TEST_UNSET_TOKEN is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.ToolSetRegistry = NewToolSetRegistry(map[string]*ToolSetConfig{
				"broken": tt.toolSet,
			})

			err := NewValidator(cfg).ValidateAll()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "tool_set", valErr.Component)
			assert.Equal(t, "broken", valErr.ID)
		})
	}
}

func TestValidateToolSets_StdioWithCommand(t *testing.T) {
	cfg := validTestConfig()
	cfg.ToolSetRegistry = NewToolSetRegistry(map[string]*ToolSetConfig{
		"local": {Transport: TransportTypeStdio, Command: "npx", Args: []string{"-y", "search-mcp"}},
	})

	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name     string
		provider *LLMProviderConfig
		wantErr  string
	}{
		{
			name:     "invalid type",
			provider: &LLMProviderConfig{Type: "mistral", Model: "m"},
			wantErr:  "invalid provider type",
		},
		{
			name:     "missing model",
			provider: &LLMProviderConfig{Type: LLMProviderTypeOpenAI},
			wantErr:  "model required",
		},
		{
			name:     "api key env not set",
			provider: &LLMProviderConfig{Type: LLMProviderTypeOpenAI, Model: "gpt-5", APIKeyEnv: "LOREWEAVE_TEST_UNSET_KEY"},
			wantErr:  "LOREWEAVE_TEST_UNSET_KEY is not set",
		},
		{
			name:     "tool result limit too small",
			provider: &LLMProviderConfig{Type: LLMProviderTypeOpenAI, Model: "gpt-5", MaxToolResultTokens: 500},
			wantErr:  "must be at least 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
				"anthropic": {Type: LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5"},
				"broken":    tt.provider,
			})

			err := NewValidator(cfg).ValidateAll()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePipeline(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PipelineConfig)
		wantErr string
	}{
		{
			name:    "unknown default model provider",
			mutate:  func(p *PipelineConfig) { p.DefaultModel = "mistral:large" },
			wantErr: "LLM provider not found",
		},
		{
			name:    "zero tool iterations",
			mutate:  func(p *PipelineConfig) { p.MaxToolIterations = 0 },
			wantErr: "max_tool_iterations",
		},
		{
			name:    "zero research timeout",
			mutate:  func(p *PipelineConfig) { p.ResearchStepTimeout = 0 },
			wantErr: "research_step_timeout",
		},
		{
			name:    "backoff max below base",
			mutate:  func(p *PipelineConfig) { p.RetryBackoffMax = p.RetryBackoffBase / 2 },
			wantErr: "retry_backoff",
		},
		{
			name:    "zero concurrency",
			mutate:  func(p *PipelineConfig) { p.MaxConcurrentLLMCalls = 0 },
			wantErr: "max_concurrent_llm_calls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Pipeline)

			err := NewValidator(cfg).ValidateAll()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSummarizer(t *testing.T) {
	cfg := validTestConfig()
	cfg.Summarizer.Strategy = "recursive"

	err := NewValidator(cfg).ValidateAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid chunk strategy")
}

func TestValidateQueue(t *testing.T) {
	cfg := validTestConfig()
	cfg.Queue.WorkerCount = 0

	err := NewValidator(cfg).ValidateAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestValidateQueue_HeartbeatMustBeatOrphanThreshold(t *testing.T) {
	cfg := validTestConfig()
	cfg.Queue.HeartbeatInterval = cfg.Queue.OrphanThreshold

	err := NewValidator(cfg).ValidateAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "heartbeat_interval")
}

func TestValidateRetention(t *testing.T) {
	t.Run("negative retention days", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Retention.JobRetentionDays = -1

		err := NewValidator(cfg).ValidateAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "job_retention_days")
	})

	t.Run("zero TTLs disable sweeps and validate fine", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Retention.CheckpointTTL = 0
		cfg.Retention.EventTTL = 0

		assert.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("cleanup interval must be positive", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Retention.CleanupInterval = 0

		err := NewValidator(cfg).ValidateAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cleanup_interval")
	})
}

func TestParseModelRef(t *testing.T) {
	tests := []struct {
		name         string
		ref          string
		wantProvider string
		wantModel    string
		wantErr      bool
	}{
		{name: "provider and model", ref: "anthropic:claude-sonnet-4-5", wantProvider: "anthropic", wantModel: "claude-sonnet-4-5"},
		{name: "bare provider", ref: "anthropic", wantProvider: "anthropic", wantModel: ""},
		{name: "model with colon", ref: "openai:ft:gpt-5:org", wantProvider: "openai", wantModel: "ft:gpt-5:org"},
		{name: "empty", ref: "", wantErr: true},
		{name: "leading colon", ref: ":model", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, model, err := ParseModelRef(tt.ref)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidModelRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, provider)
			assert.Equal(t, tt.wantModel, model)
		})
	}
}

func TestResolveModel(t *testing.T) {
	cfg := validTestConfig()

	t.Run("empty ref uses pipeline default", func(t *testing.T) {
		provider, model, err := cfg.ResolveModel("")
		require.NoError(t, err)
		assert.Equal(t, LLMProviderTypeAnthropic, provider.Type)
		assert.Equal(t, "claude-sonnet-4-5", model)
	})

	t.Run("bare provider uses provider default model", func(t *testing.T) {
		provider, model, err := cfg.ResolveModel("anthropic")
		require.NoError(t, err)
		assert.Equal(t, LLMProviderTypeAnthropic, provider.Type)
		assert.Equal(t, "claude-sonnet-4-5", model)
	})

	t.Run("explicit model overrides provider default", func(t *testing.T) {
		_, model, err := cfg.ResolveModel("anthropic:claude-haiku-4-5")
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4-5", model)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, _, err := cfg.ResolveModel("mistral:large")
		require.ErrorIs(t, err, ErrLLMProviderNotFound)
	})
}

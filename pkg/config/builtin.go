package config

import "os"

// BuiltinConfig holds all built-in configuration data.
// This provides default tool sets and LLM providers so a deployment with
// only environment variables set needs no YAML at all.
type BuiltinConfig struct {
	ToolSets     map[string]ToolSetConfig
	LLMProviders map[string]LLMProviderConfig
}

// builtinToolSetEnvVars maps built-in tool set names to the env var
// carrying their endpoint. A tool set is only registered when its
// endpoint env var is set; user YAML can always define more.
var builtinToolSetEnvVars = map[string]string{
	"search":     "TOOL_SEARCH_URL",
	"crawler":    "TOOL_CRAWLER_URL",
	"storage":    "TOOL_STORAGE_URL",
	"summarizer": "TOOL_SUMMARIZER_URL",
}

// GetBuiltinConfig returns the built-in configuration. Rebuilt on every
// call because tool set presence depends on the environment.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		ToolSets:     initBuiltinToolSets(),
		LLMProviders: initBuiltinLLMProviders(),
	}
}

func initBuiltinToolSets() map[string]ToolSetConfig {
	toolSets := make(map[string]ToolSetConfig)
	for name, envVar := range builtinToolSetEnvVars {
		endpoint := os.Getenv(envVar)
		if endpoint == "" {
			continue
		}
		cfg := ToolSetConfig{
			Endpoint:  endpoint,
			Transport: TransportTypeStreamableHTTP,
		}
		if name == "crawler" {
			// Crawls routinely outlast the default read timeout.
			cfg.ReadTimeout = 300
		}
		toolSets[name] = cfg
	}
	return toolSets
}

// initBuiltinLLMProviders returns default provider entries. Only providers
// whose API key env var is set are registered, so a single-key deployment
// passes validation without YAML overrides.
func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	all := map[string]LLMProviderConfig{
		"anthropic": {
			Type:                LLMProviderTypeAnthropic,
			Model:               "claude-sonnet-4-5",
			APIKeyEnv:           "ANTHROPIC_API_KEY",
			MaxOutputTokens:     8192,
			MaxToolResultTokens: 150000, // Conservative for 200K context
		},
		"openai": {
			Type:                LLMProviderTypeOpenAI,
			Model:               "gpt-5",
			APIKeyEnv:           "OPENAI_API_KEY",
			MaxOutputTokens:     8192,
			MaxToolResultTokens: 250000, // Conservative for 272K context
		},
		"google": {
			Type:                LLMProviderTypeGoogle,
			Model:               "gemini-2.5-pro",
			APIKeyEnv:           "GOOGLE_API_KEY",
			MaxOutputTokens:     8192,
			MaxToolResultTokens: 950000, // Conservative for 1M context
		},
	}

	providers := make(map[string]LLMProviderConfig)
	for name, cfg := range all {
		if os.Getenv(cfg.APIKeyEnv) == "" {
			continue
		}
		providers[name] = cfg
	}
	return providers
}

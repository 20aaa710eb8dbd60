package config

import "fmt"

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Per-concern settings
	Pipeline   *PipelineConfig
	Budget     *BudgetConfig
	Summarizer *SummarizerConfig
	Extraction *ExtractionConfig
	Queue      *QueueConfig
	Retention  *RetentionConfig

	// Component registries
	ToolSetRegistry     *ToolSetRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	ToolSets     int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ToolSetRegistry != nil {
		s.ToolSets = c.ToolSetRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetToolSet retrieves a tool set configuration by name.
// This is a convenience method that wraps ToolSetRegistry.Get().
func (c *Config) GetToolSet(name string) (*ToolSetConfig, error) {
	return c.ToolSetRegistry.Get(name)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// AllToolSetNames returns a sorted list of all configured tool set names.
func (c *Config) AllToolSetNames() []string {
	return c.ToolSetRegistry.Names()
}

// ResolveModel resolves a "provider:model" reference against the provider
// registry. An empty ref falls back to the pipeline default model; a bare
// provider name falls back to that provider's default model.
func (c *Config) ResolveModel(ref string) (*LLMProviderConfig, string, error) {
	if ref == "" {
		ref = c.Pipeline.DefaultModel
	}
	providerName, model, err := ParseModelRef(ref)
	if err != nil {
		return nil, "", err
	}
	provider, err := c.GetLLMProvider(providerName)
	if err != nil {
		return nil, "", fmt.Errorf("resolving model %q: %w", ref, err)
	}
	if model == "" {
		model = provider.Model
	}
	return provider, model, nil
}

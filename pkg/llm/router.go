package llm

import (
	"fmt"
	"os"
	"sync"

	"github.com/loreweave/loreweave/pkg/config"
)

// ProviderOptions carries the per-provider settings shared by all
// constructors. API keys come from the environment, never from files.
type ProviderOptions struct {
	APIKey          string
	BaseURL         string
	MaxOutputTokens int
}

// Router builds provider clients from configuration on demand and caches
// them per provider/model pair. Safe for concurrent use.
type Router struct {
	cfg *config.Config

	mu    sync.Mutex
	cache map[string]Provider
}

// NewRouter creates a router over the given configuration.
func NewRouter(cfg *config.Config) *Router {
	return &Router{
		cfg:   cfg,
		cache: make(map[string]Provider),
	}
}

// Resolve returns the provider for a "provider:model" reference. An empty
// reference falls back to the configured default model; a bare provider name
// falls back to that provider's default model.
func (r *Router) Resolve(ref string) (Provider, error) {
	if ref == "" {
		ref = r.cfg.Pipeline.DefaultModel
	}
	providerName, modelID, err := config.ParseModelRef(ref)
	if err != nil {
		return nil, err
	}
	pcfg, err := r.cfg.GetLLMProvider(providerName)
	if err != nil {
		return nil, fmt.Errorf("resolving model %q: %w", ref, err)
	}
	if modelID == "" {
		modelID = pcfg.Model
	}

	key := providerName + ":" + modelID
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.cache[key]; ok {
		return p, nil
	}
	p, err := buildProvider(providerName, modelID, pcfg)
	if err != nil {
		return nil, err
	}
	r.cache[key] = p
	return p, nil
}

func buildProvider(name, modelID string, pcfg *config.LLMProviderConfig) (Provider, error) {
	opts := ProviderOptions{
		BaseURL:         pcfg.BaseURL,
		MaxOutputTokens: pcfg.MaxOutputTokens,
	}
	if pcfg.APIKeyEnv != "" {
		opts.APIKey = os.Getenv(pcfg.APIKeyEnv)
		if opts.APIKey == "" {
			return nil, fmt.Errorf("llm provider %q: environment variable %s is not set", name, pcfg.APIKeyEnv)
		}
	}

	switch pcfg.Type {
	case config.LLMProviderTypeAnthropic:
		return NewAnthropicProvider(name, modelID, opts)
	case config.LLMProviderTypeOpenAI:
		return NewOpenAIProvider(name, modelID, opts)
	case config.LLMProviderTypeGoogle:
		return NewGeminiProvider(name, modelID, opts)
	default:
		return nil, fmt.Errorf("llm provider %q: unsupported type %q", name, pcfg.Type)
	}
}

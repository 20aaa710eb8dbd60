package config

import "time"

// PipelineConfig contains research pipeline execution configuration.
// These values control step timeouts, retries, and LLM concurrency.
type PipelineConfig struct {
	// DefaultModel is the "provider:model" reference used when a job
	// does not specify its own model.
	DefaultModel string `yaml:"default_model"`

	// MaxToolIterations caps agent tool-call rounds within one step.
	MaxToolIterations int `yaml:"max_tool_iterations"`

	// ResearchStepTimeout bounds research steps (web search + crawling).
	ResearchStepTimeout time.Duration `yaml:"research_step_timeout"`

	// ExtractionStepTimeout bounds extraction steps.
	ExtractionStepTimeout time.Duration `yaml:"extraction_step_timeout"`

	// TransformStepTimeout bounds transform steps (no LLM calls).
	TransformStepTimeout time.Duration `yaml:"transform_step_timeout"`

	// MaxStepRetries is the number of in-process retries for a step
	// failing with a transient error, before the job pauses.
	MaxStepRetries int `yaml:"max_step_retries"`

	// RetryBackoffBase is the initial retry backoff; doubles per attempt.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`

	// RetryBackoffMax caps the retry backoff.
	RetryBackoffMax time.Duration `yaml:"retry_backoff_max"`

	// MinimumHeadroomTokens is the budget headroom required before
	// starting an LLM-classified step.
	MinimumHeadroomTokens int64 `yaml:"minimum_headroom_tokens"`

	// MaxConcurrentLLMCalls is the process-wide ceiling on in-flight
	// LLM requests, shared between pipeline steps and the summarizer.
	MaxConcurrentLLMCalls int `yaml:"max_concurrent_llm_calls"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		DefaultModel:          "anthropic:claude-sonnet-4-5",
		MaxToolIterations:     12,
		ResearchStepTimeout:   10 * time.Minute,
		ExtractionStepTimeout: 5 * time.Minute,
		TransformStepTimeout:  30 * time.Second,
		MaxStepRetries:        3,
		RetryBackoffBase:      2 * time.Second,
		RetryBackoffMax:       30 * time.Second,
		MinimumHeadroomTokens: 2000,
		MaxConcurrentLLMCalls: 5,
	}
}

package config

import (
	"fmt"
	"net/url"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: tool sets → LLM providers → pipeline → the rest
	// This ensures dependencies are validated before dependents

	if err := v.validateToolSets(); err != nil {
		return fmt.Errorf("tool set validation failed: %w", err)
	}

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateBudget(); err != nil {
		return fmt.Errorf("budget validation failed: %w", err)
	}

	if err := v.validateSummarizer(); err != nil {
		return fmt.Errorf("summarizer validation failed: %w", err)
	}

	if err := v.validateExtraction(); err != nil {
		return fmt.Errorf("extraction validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateToolSets() error {
	for name, toolSet := range v.cfg.ToolSetRegistry.GetAll() {
		if toolSet.Transport != "" && !toolSet.Transport.IsValid() {
			return NewValidationError("tool_set", name, "transport", fmt.Errorf("invalid transport type: %s", toolSet.Transport))
		}

		if toolSet.TransportOrDefault() == TransportTypeStdio {
			if toolSet.Command == "" {
				return NewValidationError("tool_set", name, "command", fmt.Errorf("command required for stdio transport"))
			}
		} else {
			if toolSet.Endpoint == "" {
				return NewValidationError("tool_set", name, "endpoint", fmt.Errorf("endpoint required"))
			}
			parsed, err := url.Parse(toolSet.Endpoint)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return NewValidationError("tool_set", name, "endpoint", fmt.Errorf("invalid URL: %s", toolSet.Endpoint))
			}
		}

		if toolSet.Timeout < 0 {
			return NewValidationError("tool_set", name, "timeout", fmt.Errorf("must not be negative"))
		}
		if toolSet.ReadTimeout < 0 {
			return NewValidationError("tool_set", name, "read_timeout", fmt.Errorf("must not be negative"))
		}

		// Secrets are env-only: a named token env var must actually be set
		if toolSet.BearerTokenEnv != "" {
			if value := os.Getenv(toolSet.BearerTokenEnv); value == "" {
				return NewValidationError("tool_set", name, "bearer_token_env", fmt.Errorf("environment variable %s is not set", toolSet.BearerTokenEnv))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		// Validate provider type
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		// Validate model is not empty
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		// Validate API key environment variable is set (if specified)
		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		if provider.MaxOutputTokens < 0 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must not be negative"))
		}

		// Validate max tool result tokens (if specified)
		if provider.MaxToolResultTokens != 0 && provider.MaxToolResultTokens < 1000 {
			return NewValidationError("llm_provider", name, "max_tool_result_tokens", fmt.Errorf("must be at least 1000"))
		}
	}

	return nil
}

func (v *ConfigValidator) validatePipeline() error {
	p := v.cfg.Pipeline

	// The default model must resolve against the provider registry
	if _, _, err := v.cfg.ResolveModel(p.DefaultModel); err != nil {
		return NewValidationError("pipeline", "pipeline", "default_model", err)
	}

	if p.MaxToolIterations < 1 {
		return NewValidationError("pipeline", "pipeline", "max_tool_iterations", fmt.Errorf("must be at least 1"))
	}
	if p.ResearchStepTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "research_step_timeout", fmt.Errorf("must be positive"))
	}
	if p.ExtractionStepTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "extraction_step_timeout", fmt.Errorf("must be positive"))
	}
	if p.TransformStepTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "transform_step_timeout", fmt.Errorf("must be positive"))
	}
	if p.MaxStepRetries < 0 {
		return NewValidationError("pipeline", "pipeline", "max_step_retries", fmt.Errorf("must not be negative"))
	}
	if p.RetryBackoffBase <= 0 || p.RetryBackoffMax < p.RetryBackoffBase {
		return NewValidationError("pipeline", "pipeline", "retry_backoff", fmt.Errorf("base must be positive and max must not be below base"))
	}
	if p.MinimumHeadroomTokens < 0 {
		return NewValidationError("pipeline", "pipeline", "minimum_headroom_tokens", fmt.Errorf("must not be negative"))
	}
	if p.MaxConcurrentLLMCalls < 1 {
		return NewValidationError("pipeline", "pipeline", "max_concurrent_llm_calls", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateBudget() error {
	b := v.cfg.Budget

	if b.DefaultJobBudgetTokens < 1 {
		return NewValidationError("budget", "budget", "default_job_budget_tokens", fmt.Errorf("must be at least 1"))
	}
	if b.ExpectedCompletionTokens < 1 {
		return NewValidationError("budget", "budget", "expected_completion_tokens", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateSummarizer() error {
	s := v.cfg.Summarizer

	if !s.Strategy.IsValid() {
		return NewValidationError("summarizer", "summarizer", "strategy", fmt.Errorf("invalid chunk strategy: %s", s.Strategy))
	}
	if s.ChunkSize < 1 {
		return NewValidationError("summarizer", "summarizer", "chunk_size", fmt.Errorf("must be at least 1"))
	}
	if s.ChunkOverlap < 0 {
		return NewValidationError("summarizer", "summarizer", "chunk_overlap", fmt.Errorf("must not be negative"))
	}
	if s.TargetTokens < 1 {
		return NewValidationError("summarizer", "summarizer", "target_tokens", fmt.Errorf("must be at least 1"))
	}
	if s.MaxReducePasses < 1 {
		return NewValidationError("summarizer", "summarizer", "max_reduce_passes", fmt.Errorf("must be at least 1"))
	}
	if s.MinChunkOutputTokens < 1 {
		return NewValidationError("summarizer", "summarizer", "min_chunk_output_tokens", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateExtraction() error {
	e := v.cfg.Extraction

	if e.MaxInputTokens < 1 {
		return NewValidationError("extraction", "extraction", "max_input_tokens", fmt.Errorf("must be at least 1"))
	}
	if e.RepairAttempts < 0 {
		return NewValidationError("extraction", "extraction", "repair_attempts", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentJobs < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_jobs", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "queue", "job_timeout", fmt.Errorf("must be positive"))
	}
	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "queue", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}
	if q.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "queue", "orphan_detection_interval", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "queue", "orphan_threshold", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "queue", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return NewValidationError("queue", "queue", "heartbeat_interval", fmt.Errorf("must be shorter than orphan_threshold"))
	}
	if q.MaxResumes < 0 {
		return NewValidationError("queue", "queue", "max_resumes", fmt.Errorf("must not be negative"))
	}
	for i, delay := range q.ResumeBackoff {
		if delay <= 0 {
			return NewValidationError("queue", "queue", fmt.Sprintf("resume_backoff[%d]", i), fmt.Errorf("must be positive"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	// Zero disables a sweep; only negatives are configuration mistakes.
	if r.JobRetentionDays < 0 {
		return NewValidationError("retention", "retention", "job_retention_days", fmt.Errorf("must not be negative"))
	}
	if r.CheckpointTTL < 0 {
		return NewValidationError("retention", "retention", "checkpoint_ttl", fmt.Errorf("must not be negative"))
	}
	if r.EventTTL < 0 {
		return NewValidationError("retention", "retention", "event_ttl", fmt.Errorf("must not be negative"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

package config

// ExtractionConfig controls structured extraction of accumulated research.
type ExtractionConfig struct {
	// MaxInputTokens is the ceiling on extraction input; accumulated
	// content larger than this is summarized down before extraction.
	MaxInputTokens int `yaml:"max_input_tokens"`

	// RepairAttempts is how many times a schema-invalid LLM response is
	// sent back for repair before the step fails permanently.
	RepairAttempts int `yaml:"repair_attempts"`
}

// DefaultExtractionConfig returns the built-in extraction defaults.
func DefaultExtractionConfig() *ExtractionConfig {
	return &ExtractionConfig{
		MaxInputTokens: 20000,
		RepairAttempts: 1,
	}
}

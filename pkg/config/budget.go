package config

// BudgetConfig controls token budget accounting.
type BudgetConfig struct {
	// DefaultJobBudgetTokens is used when a job request omits its budget.
	// Overridable via the DAILY_TOKEN_BUDGET environment variable.
	DefaultJobBudgetTokens int64 `yaml:"default_job_budget_tokens"`

	// ExpectedCompletionTokens is the completion-size assumption added to
	// the counted prompt tokens when reserving budget before an LLM call.
	ExpectedCompletionTokens int64 `yaml:"expected_completion_tokens"`
}

// DefaultBudgetConfig returns the built-in budget defaults.
func DefaultBudgetConfig() *BudgetConfig {
	return &BudgetConfig{
		DefaultJobBudgetTokens:   500_000,
		ExpectedCompletionTokens: 4000,
	}
}

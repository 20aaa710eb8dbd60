package models

// StepRunMetrics carries the measurements reported when a step attempt
// completes. They feed the step_completed event and the step_runs audit row.
type StepRunMetrics struct {
	DurationMS   int
	TokensUsed   int64
	SourcesAdded int
	ContentBytes int
}

// LLMCallRecord captures one provider call for the audit trail. A set
// ErrorMessage marks the call failed.
type LLMCallRecord struct {
	JobID            string
	StepName         string
	Purpose          string // research, extraction, repair, cross_reference, discovery, summarize_map, summarize_reduce
	Provider         string
	Model            string
	PromptTokens     *int64
	CompletionTokens *int64
	TotalTokens      *int64
	DurationMS       *int
	ErrorMessage     *string
}

// ToolCallRecord captures one remote tool invocation for the audit trail.
// ResultText must already be truncated to the storage token budget.
type ToolCallRecord struct {
	JobID      string
	StepName   string
	ToolSet    string
	ToolName   string
	Arguments  map[string]any
	ResultText *string
	IsError    bool
	DurationMS *int
}

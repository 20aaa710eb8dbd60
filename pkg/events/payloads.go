package events

import "time"

// Envelope carries the routing fields every event payload shares. The
// publisher stamps it; callers fill only the event-specific fields.
type Envelope struct {
	Event     string `json:"event"`
	JobID     string `json:"job_id"`
	AgentID   string `json:"agent_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano, UTC
}

// stamp fills the envelope. Promoted to every payload struct that embeds
// Envelope, which is how the publisher stamps payloads generically.
func (e *Envelope) stamp(event, jobID, agentID string) {
	e.Event = event
	e.JobID = jobID
	e.AgentID = agentID
	e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
}

// JobQueuedPayload announces a newly accepted research job.
type JobQueuedPayload struct {
	Envelope
	ZoneName string `json:"zone_name"`
	Depth    int    `json:"depth"`
}

// StepStartedPayload marks a pipeline step entering execution.
type StepStartedPayload struct {
	Envelope
	StepName   string `json:"step_name"`
	StepIndex  int    `json:"step_index"` // 0-based position in the sequence
	TotalSteps int    `json:"total_steps"`
}

// StepCompletedPayload marks a step finishing successfully.
type StepCompletedPayload struct {
	Envelope
	StepName   string         `json:"step_name"`
	StepIndex  int            `json:"step_index"`
	DurationMS int64          `json:"duration_ms"`
	TokensUsed int64          `json:"tokens_used"` // job total after the step
	Metrics    map[string]any `json:"metrics,omitempty"`
}

// StepFailedTransientPayload marks a recoverable step failure. The engine
// will retry or pause; this event exists so dashboards can show the churn.
type StepFailedTransientPayload struct {
	Envelope
	StepName  string `json:"step_name"`
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
	Attempt   int    `json:"attempt"` // 1-based attempt that failed
}

// PackageSummary condenses the assembled research package for the
// completion event. Full documents live in the lore_packages table.
type PackageSummary struct {
	Categories           map[string]int     `json:"categories"` // entity count per category
	SourceCount          int                `json:"source_count"`
	ConfidenceByCategory map[string]float64 `json:"confidence_by_category,omitempty"`
	ErrorCount           int                `json:"error_count"`
}

// JobCompletedPayload marks a job reaching the terminal completed state.
type JobCompletedPayload struct {
	Envelope
	ZoneName       string          `json:"zone_name"`
	TokensUsed     int64           `json:"tokens_used"`
	PackageSummary *PackageSummary `json:"package_summary,omitempty"`
}

// JobFailedPayload marks a job reaching the terminal failed state.
type JobFailedPayload struct {
	Envelope
	ZoneName   string `json:"zone_name,omitempty"`
	ErrorKind  string `json:"error_kind"`
	Message    string `json:"message"`
	FailedStep string `json:"failed_step,omitempty"`
}

// JobCancelledPayload marks a cooperative cancellation taking effect.
type JobCancelledPayload struct {
	Envelope
	ZoneName string `json:"zone_name,omitempty"`
}

// ZoneDiscoveredPayload announces a connected zone found during discovery.
// JobID in the envelope is the parent job doing the discovering.
type ZoneDiscoveredPayload struct {
	Envelope
	ZoneName       string `json:"zone_name"`        // zone under research
	DiscoveredZone string `json:"discovered_zone"`  // connected zone found
	ChildJobID     string `json:"child_job_id"`     // job created for it
	ChildDepth     int    `json:"child_depth"`      // parent depth - 1
}

package models

import (
	"sort"
	"time"
)

// SourceTier ranks the trustworthiness of a research source.
type SourceTier string

const (
	TierOfficial SourceTier = "official"
	TierPrimary  SourceTier = "primary"
	TierTertiary SourceTier = "tertiary"
)

// tierRank orders tiers for dedup: higher wins when the same URI
// appears under multiple tiers.
var tierRank = map[SourceTier]int{
	TierOfficial: 3,
	TierPrimary:  2,
	TierTertiary: 1,
}

// Rank returns the ordering weight of the tier. Unknown tiers rank
// below tertiary so malformed agent output never displaces a real tier.
func (t SourceTier) Rank() int {
	return tierRank[t]
}

// Valid reports whether the tier is one of the known values.
func (t SourceTier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// SourceRef is a single research source reference.
type SourceRef struct {
	URI  string     `json:"uri"`
	Tier SourceTier `json:"tier"`
}

// StepError records one step failure in the checkpoint error history.
type StepError struct {
	Step    string    `json:"step"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// MaxContentBlocksPerTopic caps accumulated raw content per topic;
// the oldest block is dropped when a new one would exceed the cap.
const MaxContentBlocksPerTopic = 10

// Checkpoint lifecycle statuses. Cancellation is a job status only: a
// cancelled job leaves its checkpoint paused.
const (
	CheckpointRunning   = "running"
	CheckpointPaused    = "paused"
	CheckpointCompleted = "completed"
	CheckpointFailed    = "failed"
)

// Checkpoint is the typed working state of a research job. It mirrors the
// persisted row one-to-one; CheckpointService converts between the two, and
// writers must treat every save as a full replacement of this document.
type Checkpoint struct {
	JobID              string                 `json:"job_id"`
	CurrentStepIndex   int                    `json:"current_step_index"`
	CompletedStepNames []string               `json:"completed_step_names"`
	AccumulatedContent map[string][]string    `json:"accumulated_content"`
	AccumulatedSources map[string][]SourceRef `json:"accumulated_sources"`
	TopicSummaries     map[string]string      `json:"topic_summaries"`
	PartialExtractions map[string]any         `json:"partial_extractions"`
	StepErrors         []StepError            `json:"step_errors"`
	TokensUsed         int64                  `json:"tokens_used"`
	Status             string                 `json:"status"` // "running", "paused", "completed", "failed"
	SchemaVersion      int                    `json:"schema_version"`
	UpdatedAt          time.Time              `json:"updated_at,omitempty"`
}

// NewCheckpoint returns the initial checkpoint for a freshly started job.
func NewCheckpoint(jobID string) *Checkpoint {
	return &Checkpoint{
		JobID:              jobID,
		CurrentStepIndex:   0,
		CompletedStepNames: []string{},
		AccumulatedContent: map[string][]string{},
		AccumulatedSources: map[string][]SourceRef{},
		TopicSummaries:     map[string]string{},
		PartialExtractions: map[string]any{},
		StepErrors:         []StepError{},
		Status:             CheckpointRunning,
		SchemaVersion:      1,
	}
}

// AppendContent appends raw content blocks under a topic, evicting the
// oldest blocks so the topic never holds more than MaxContentBlocksPerTopic.
func (c *Checkpoint) AppendContent(topic string, blocks ...string) {
	if len(blocks) == 0 {
		return
	}
	if c.AccumulatedContent == nil {
		c.AccumulatedContent = map[string][]string{}
	}
	merged := append(c.AccumulatedContent[topic], blocks...)
	if over := len(merged) - MaxContentBlocksPerTopic; over > 0 {
		merged = merged[over:]
	}
	c.AccumulatedContent[topic] = merged
}

// MergeSources merges source references into a topic, deduplicating by URI.
// When the same URI arrives under a different tier the higher tier wins.
// Order of first appearance is preserved. Returns the number of URIs newly
// added (tier upgrades of existing URIs don't count).
func (c *Checkpoint) MergeSources(topic string, refs []SourceRef) int {
	if c.AccumulatedSources == nil {
		c.AccumulatedSources = map[string][]SourceRef{}
	}
	existing := c.AccumulatedSources[topic]
	byURI := make(map[string]int, len(existing))
	for i, ref := range existing {
		byURI[ref.URI] = i
	}
	added := 0
	for _, ref := range refs {
		if ref.URI == "" {
			continue
		}
		if i, ok := byURI[ref.URI]; ok {
			if ref.Tier.Rank() > existing[i].Tier.Rank() {
				existing[i].Tier = ref.Tier
			}
			continue
		}
		existing = append(existing, ref)
		byURI[ref.URI] = len(existing) - 1
		added++
	}
	c.AccumulatedSources[topic] = existing
	return added
}

// Advance records stepName as completed and moves the step index. The
// index always equals the number of completed step names.
func (c *Checkpoint) Advance(stepName string) {
	c.CompletedStepNames = append(c.CompletedStepNames, stepName)
	c.CurrentStepIndex = len(c.CompletedStepNames)
}

// RecordError appends a step failure to the error history.
func (c *Checkpoint) RecordError(step, kind, message string) {
	c.StepErrors = append(c.StepErrors, StepError{
		Step:    step,
		Kind:    kind,
		Message: message,
		At:      time.Now().UTC(),
	})
}

// LastError returns the most recent recorded step error, or nil.
func (c *Checkpoint) LastError() *StepError {
	if len(c.StepErrors) == 0 {
		return nil
	}
	return &c.StepErrors[len(c.StepErrors)-1]
}

// AllSources flattens accumulated sources across topics, deduplicating by
// URI with the same highest-tier-wins rule used per topic.
func (c *Checkpoint) AllSources() []SourceRef {
	var flat []SourceRef
	byURI := map[string]int{}
	for _, topic := range sortedKeys(c.AccumulatedSources) {
		for _, ref := range c.AccumulatedSources[topic] {
			if i, ok := byURI[ref.URI]; ok {
				if ref.Tier.Rank() > flat[i].Tier.Rank() {
					flat[i].Tier = ref.Tier
				}
				continue
			}
			flat = append(flat, ref)
			byURI[ref.URI] = len(flat) - 1
		}
	}
	return flat
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

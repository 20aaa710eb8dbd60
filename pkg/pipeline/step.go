package pipeline

import (
	"context"
	"fmt"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
)

// StepKind selects the execution timeout class for a step.
type StepKind string

const (
	// StepKindResearch marks agent steps that search and crawl.
	StepKindResearch StepKind = "research"
	// StepKindExtraction marks structured-output LLM steps.
	StepKindExtraction StepKind = "extraction"
	// StepKindTransform marks local steps without tool loops.
	StepKindTransform StepKind = "transform"
)

// StepContext is the per-job state a handler works against. Handlers
// accumulate results by mutating Checkpoint (AppendContent, MergeSources,
// TopicSummaries, PartialExtractions) and settle token spend against
// Ledger. The engine persists the checkpoint after the handler returns;
// partial mutations from a failed handler are kept for diagnostics but the
// step is not marked complete.
type StepContext struct {
	Job        *ent.ResearchJob
	Checkpoint *models.Checkpoint
	Ledger     *budget.Ledger
}

// StepResult reports what a successful handler produced. Duration and
// token spend are measured by the engine.
type StepResult struct {
	// SourcesAdded counts source URIs newly merged into the checkpoint.
	SourcesAdded int

	// ContentBytes is the size of content appended by the step.
	ContentBytes int

	// Summary is set by the packaging step so the job completion event can
	// carry a digest of the published document.
	Summary *events.PackageSummary
}

// Handler executes one pipeline step.
type Handler func(ctx context.Context, sc *StepContext) (StepResult, error)

// Step is one named unit of the pipeline.
type Step struct {
	// Name is the registry-unique name recorded in checkpoints, step_runs
	// rows, and events.
	Name string

	// Kind selects the timeout class.
	Kind StepKind

	// Guard, when set and false for a job, skips the step: it is recorded
	// as skipped and the pipeline advances without invoking Handler.
	Guard func(sc *StepContext) bool

	Handler Handler
}

// Registry is the ordered step sequence for a pipeline. The order is
// frozen at construction; checkpoints index into it, so reordering steps
// while jobs are in flight corrupts their resume position.
type Registry struct {
	steps []Step
}

// NewRegistry validates and freezes the step sequence.
func NewRegistry(steps ...Step) (*Registry, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("a pipeline needs at least one step")
	}
	seen := make(map[string]struct{}, len(steps))
	for i, s := range steps {
		if s.Name == "" {
			return nil, fmt.Errorf("step %d has no name", i)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("duplicate step name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Handler == nil {
			return nil, fmt.Errorf("step %q has no handler", s.Name)
		}
		switch s.Kind {
		case StepKindResearch, StepKindExtraction, StepKindTransform:
		default:
			return nil, fmt.Errorf("step %q has unknown kind %q", s.Name, s.Kind)
		}
	}
	return &Registry{steps: append([]Step(nil), steps...)}, nil
}

// Steps returns the ordered step sequence.
func (r *Registry) Steps() []Step {
	return r.steps
}

// Len returns the number of steps.
func (r *Registry) Len() int {
	return len(r.steps)
}

// Names returns the step names in execution order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.Name
	}
	return names
}

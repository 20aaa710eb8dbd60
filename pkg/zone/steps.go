package zone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/agent"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/prompts"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/summarize"
)

// maxMalformedQuoteBytes caps how much of a schema-invalid response the
// repair prompt quotes back, so one oversized reply cannot double the
// repair call's input.
const maxMalformedQuoteBytes = 16 * 1024

// ToolCaller is the direct tool-call surface the assembler pushes packages
// through. Implemented by mcp.Client.
type ToolCaller interface {
	Call(ctx context.Context, setName, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error)
	HasSession(setName string) bool
}

// StepDeps bundles what the step handlers work with. Runtime, Summarizer,
// and Counter are bound to one job's model; the services and publisher are
// process-wide. Storage may be nil when no storage tool set is configured.
type StepDeps struct {
	Runtime    *agent.Runtime
	Summarizer *summarize.Engine
	Counter    *budget.Counter
	Library    *prompts.Library
	Storage    ToolCaller
	Jobs       *services.JobService
	Packages   *services.PackageService
	Publisher  *events.Publisher
	Config     *config.Config
}

// Steps builds the zone pipeline's step registry and carries the shared
// dependencies its handlers close over.
type Steps struct {
	runtime    *agent.Runtime
	summarizer *summarize.Engine
	counter    *budget.Counter
	library    *prompts.Library
	storage    ToolCaller
	jobs       *services.JobService
	packages   *services.PackageService
	publisher  *events.Publisher
	cfg        *config.Config
	logger     *slog.Logger
}

// NewSteps creates the step set. Missing config sections fall back to their
// defaults on a copy, leaving the caller's config untouched.
func NewSteps(deps StepDeps) *Steps {
	cfg := config.Config{}
	if deps.Config != nil {
		cfg = *deps.Config
	}
	if cfg.Pipeline == nil {
		cfg.Pipeline = config.DefaultPipelineConfig()
	}
	if cfg.Budget == nil {
		cfg.Budget = config.DefaultBudgetConfig()
	}
	if cfg.Extraction == nil {
		cfg.Extraction = config.DefaultExtractionConfig()
	}

	return &Steps{
		runtime:    deps.Runtime,
		summarizer: deps.Summarizer,
		counter:    deps.Counter,
		library:    deps.Library,
		storage:    deps.Storage,
		jobs:       deps.Jobs,
		packages:   deps.Packages,
		publisher:  deps.Publisher,
		cfg:        &cfg,
		logger:     slog.Default().With("component", "zone_steps"),
	}
}

// Registry returns the ordered nine-step zone pipeline.
func (s *Steps) Registry() (*pipeline.Registry, error) {
	steps := make([]pipeline.Step, 0, len(researchSteps)+4)
	for _, rs := range researchSteps {
		steps = append(steps, s.researchStep(rs.step, rs.category, rs.template))
	}
	steps = append(steps,
		pipeline.Step{Name: StepExtractAll, Kind: pipeline.StepKindExtraction, Handler: s.extractAll},
		pipeline.Step{Name: StepCrossReference, Kind: pipeline.StepKindExtraction, Handler: s.crossReference},
		pipeline.Step{
			Name:    StepDiscoverZones,
			Kind:    pipeline.StepKindExtraction,
			Guard:   func(sc *pipeline.StepContext) bool { return sc.Job.Depth > 0 },
			Handler: s.discoverZones,
		},
		pipeline.Step{Name: StepPackageAndSend, Kind: pipeline.StepKindTransform, Handler: s.packageAndSend},
	)
	return pipeline.NewRegistry(steps...)
}

// runStructured makes one schema-constrained provider call, settling the
// job ledger at actual usage. A failed reservation surfaces the budget
// sentinel for the engine to classify.
func (s *Steps) runStructured(ctx context.Context, sc *pipeline.StepContext, stepName, purpose, prompt string, schema map[string]any) (*agent.RunResult, error) {
	reservation, err := sc.Ledger.Reserve(s.counter.EstimateCall(prompt, s.cfg.Budget.ExpectedCompletionTokens))
	if err != nil {
		return nil, err
	}
	out, runErr := s.runtime.Run(ctx, agent.RunInput{
		JobID:    sc.Job.ID,
		StepName: stepName,
		Purpose:  purpose,
		Prompt:   prompt,
		Schema:   schema,
	})
	sc.Ledger.Settle(reservation, out.Usage.TotalTokens)
	return out, runErr
}

// runRepairable is runStructured plus the configured repair rounds: a
// schema-invalid response is sent back with the validation error and the
// quoted malformed output. Repairs that lead to a valid document are
// recorded in the checkpoint error history as schema_repair; a violation
// with no rounds left propagates and fails the job permanently.
func (s *Steps) runRepairable(ctx context.Context, sc *pipeline.StepContext, stepName, purpose, prompt string, schema map[string]any, repairVars map[string]string) (*agent.RunResult, error) {
	out, err := s.runStructured(ctx, sc, stepName, purpose, prompt, schema)

	var repaired []*agent.SchemaViolationError
	for attempt := 0; err != nil && attempt < s.cfg.Extraction.RepairAttempts; attempt++ {
		var violation *agent.SchemaViolationError
		if !errors.As(err, &violation) {
			return nil, err
		}

		vars := map[string]string{
			"malformed_response": clampText(violation.Raw, maxMalformedQuoteBytes),
			"validation_error":   violation.Err.Error(),
		}
		for k, v := range repairVars {
			vars[k] = v
		}
		repairPrompt, renderErr := s.library.Render("extraction_repair", vars)
		if renderErr != nil {
			return nil, pipeline.NewError(pipeline.KindPermanentInternal, fmt.Errorf("rendering repair prompt: %w", renderErr))
		}

		s.logger.WarnContext(ctx, "structured output failed validation, attempting repair",
			"step", stepName, "attempt", attempt+1, "error", violation.Err)
		repaired = append(repaired, violation)
		out, err = s.runStructured(ctx, sc, stepName, "repair", repairPrompt, schema)
	}
	if err != nil {
		return nil, err
	}

	for _, violation := range repaired {
		sc.Checkpoint.RecordError(stepName, pipeline.KindSchemaRepair, violation.Err.Error())
	}
	if len(repaired) > 0 {
		s.logger.InfoContext(ctx, "schema repair succeeded", "step", stepName, "rounds", len(repaired))
	}
	return out, nil
}

// clampText truncates s to at most max bytes on a rune boundary.
func clampText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

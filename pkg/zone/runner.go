package zone

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/agent"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/mcp"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/prompts"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/summarize"
)

// RunnerDeps are the process-wide dependencies a Runner wires per-job
// components from. Semaphore is the shared summarizer map-phase gate.
type RunnerDeps struct {
	Router       *llm.Router
	Tools        *mcp.Factory
	Interactions *services.InteractionService
	Jobs         *services.JobService
	Checkpoints  *services.CheckpointService
	StepRuns     *services.StepRunService
	Packages     *services.PackageService
	Publisher    *events.Publisher
	Library      *prompts.Library
	Config       *config.Config
	Semaphore    *semaphore.Weighted
}

// Runner executes one claimed job at a time through the zone pipeline. For
// each job it resolves the job's provider, connects the configured tool
// sets, and hands a fresh engine the step registry; everything job-scoped
// is torn down when Run returns.
type Runner struct {
	deps   RunnerDeps
	logger *slog.Logger
}

// NewRunner creates a runner over the given dependencies. Missing config
// sections and a missing semaphore fall back to their defaults.
func NewRunner(deps RunnerDeps) *Runner {
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
	if cfg.Summarizer == nil {
		cfg.Summarizer = config.DefaultSummarizerConfig()
	}
	if cfg.Extraction == nil {
		cfg.Extraction = config.DefaultExtractionConfig()
	}
	deps.Config = &cfg
	if deps.Semaphore == nil {
		deps.Semaphore = summarize.NewSemaphore()
	}
	return &Runner{
		deps:   deps,
		logger: slog.Default().With("component", "zone_runner"),
	}
}

// Run drives job to its next outcome. Like pipeline.Engine.Run, a non-nil
// error means the job could not be set up at all and the dispatcher should
// treat the attempt as a pause.
func (r *Runner) Run(ctx context.Context, job *ent.ResearchJob) (pipeline.Outcome, error) {
	modelRef := job.Model
	if modelRef == "" {
		modelRef = r.deps.Config.Pipeline.DefaultModel
	}
	provider, err := r.deps.Router.Resolve(modelRef)
	if err != nil {
		return pipeline.OutcomePaused, fmt.Errorf("resolving model %q: %w", modelRef, err)
	}

	var (
		client   *mcp.Client
		executor agent.ToolExecutor
		storage  ToolCaller
	)
	if sets := r.configuredToolSets(); len(sets) > 0 {
		client, err = r.deps.Tools.CreateClient(ctx, sets)
		if err != nil {
			return pipeline.OutcomePaused, fmt.Errorf("connecting tool sets: %w", err)
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				r.logger.Warn("closing tool sessions", "job_id", job.ID, "error", closeErr)
			}
		}()
		executor = mcp.NewExecutor(client, r.deps.Config.ToolSetRegistry, r.agentToolSets(sets))
		if client.HasSession(storageToolSet) {
			storage = client
		}
	}

	counter := budget.NewCounter(provider.Model())
	steps := NewSteps(StepDeps{
		Runtime:    agent.NewRuntime(provider, executor, r.deps.Interactions, r.deps.Library),
		Summarizer: summarize.NewEngine(provider, counter, r.deps.Library, r.deps.Config.Summarizer, r.deps.Semaphore),
		Counter:    counter,
		Library:    r.deps.Library,
		Storage:    storage,
		Jobs:       r.deps.Jobs,
		Packages:   r.deps.Packages,
		Publisher:  r.deps.Publisher,
		Config:     r.deps.Config,
	})
	registry, err := steps.Registry()
	if err != nil {
		return pipeline.OutcomePaused, fmt.Errorf("building step registry: %w", err)
	}

	engine := pipeline.NewEngine(registry, r.deps.Jobs, r.deps.Checkpoints, r.deps.StepRuns, r.deps.Publisher, r.deps.Config.Pipeline)
	return engine.Run(ctx, job)
}

// configuredToolSets intersects the sets the pipeline can use with what the
// registry actually configures. Missing sets degrade the run rather than
// block it: research works without a summarizer tool, packaging without a
// vector store.
func (r *Runner) configuredToolSets() []string {
	registry := r.deps.Config.ToolSetRegistry
	if registry == nil {
		return nil
	}
	var sets []string
	for _, name := range append(append([]string{}, agentToolSets...), storageToolSet) {
		if registry.Has(name) {
			sets = append(sets, name)
		}
	}
	return sets
}

// agentToolSets filters the connected sets down to the ones advertised to
// the research agent. Storage stays assembler-only.
func (r *Runner) agentToolSets(connected []string) []string {
	var sets []string
	for _, name := range connected {
		if name != storageToolSet {
			sets = append(sets, name)
		}
	}
	return sets
}

package zone

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loreweave/loreweave/pkg/agent"
	llmschema "github.com/loreweave/loreweave/pkg/llm/schema"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

// researchStep builds one agent-driven research step. The handler renders
// the shared system prompt plus the step's focus template, lets the agent
// search and crawl until it reports, and folds the parsed report into the
// checkpoint under the step's category.
func (s *Steps) researchStep(stepName, category, template string) pipeline.Step {
	return pipeline.Step{
		Name: stepName,
		Kind: pipeline.StepKindResearch,
		Handler: func(ctx context.Context, sc *pipeline.StepContext) (pipeline.StepResult, error) {
			return s.research(ctx, sc, stepName, category, template)
		},
	}
}

func (s *Steps) research(ctx context.Context, sc *pipeline.StepContext, stepName, category, template string) (pipeline.StepResult, error) {
	system, err := s.library.Render("research_system", map[string]string{
		"zone_name": sc.Job.ZoneName,
	})
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}
	// Every focus template gets the same var set; Render ignores the vars
	// a template does not reference.
	focus, err := s.library.Render(template, map[string]string{
		"zone_name":     sc.Job.ZoneName,
		"known_context": knownContext(sc.Checkpoint),
	})
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}
	reportShape, err := s.library.Render("research_report", nil)
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}
	prompt := focus + "\n\n" + reportShape

	reservation, err := sc.Ledger.Reserve(s.counter.EstimateCall(system+prompt, s.cfg.Budget.ExpectedCompletionTokens))
	if err != nil {
		return pipeline.StepResult{}, err
	}
	out, runErr := s.runtime.Run(ctx, agent.RunInput{
		JobID:             sc.Job.ID,
		StepName:          stepName,
		Purpose:           "research",
		SystemPrompt:      system,
		Prompt:            prompt,
		MaxToolIterations: s.cfg.Pipeline.MaxToolIterations,
	})
	sc.Ledger.Settle(reservation, out.Usage.TotalTokens)
	if runErr != nil {
		return pipeline.StepResult{}, runErr
	}

	result := parseReport(out.Output)
	if len(result.RawContent) == 0 && result.Summary == "" {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindTransientInternal,
			fmt.Errorf("step %s produced no usable output", stepName))
	}

	added := sc.Checkpoint.MergeSources(category, result.Sources)
	sc.Checkpoint.AppendContent(category, result.RawContent...)
	if result.Summary != "" {
		if sc.Checkpoint.TopicSummaries == nil {
			sc.Checkpoint.TopicSummaries = map[string]string{}
		}
		sc.Checkpoint.TopicSummaries[category] = result.Summary
	}

	contentBytes := 0
	for _, block := range result.RawContent {
		contentBytes += len(block)
	}
	s.logger.InfoContext(ctx, "research step gathered content",
		"step", stepName,
		"blocks", len(result.RawContent),
		"sources_added", added,
		"tool_calls", out.ToolCalls)
	return pipeline.StepResult{SourcesAdded: added, ContentBytes: contentBytes}, nil
}

// parseReport decodes the JSON report research agents are instructed to
// finish with. Output that does not decode is kept verbatim as a single
// content block: research feeds a schema-validated extraction later, so a
// lenient parse here loses nothing.
func parseReport(output string) models.ResearchResult {
	cleaned := llmschema.CleanJSON(output)
	var report models.ResearchReport
	if err := json.Unmarshal([]byte(cleaned), &report); err == nil {
		result := report.ToResult()
		if len(result.RawContent) > 0 || len(result.Sources) > 0 || result.Summary != "" {
			return result
		}
	}
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return models.ResearchResult{}
	}
	return models.ResearchResult{RawContent: []string{trimmed}}
}

// knownContext assembles the summaries of earlier topics so later research
// steps build on what the job already knows.
func knownContext(cp *models.Checkpoint) string {
	var b strings.Builder
	for _, category := range Categories() {
		summary := cp.TopicSummaries[category]
		if summary == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s: %s", category, summary)
	}
	return b.String()
}

// Package summarize compresses oversized text to a target token size with
// map-reduce summarization: content is chunked, chunks are summarized
// concurrently, and the summaries are merged until they fit. The Engine
// surfaces errors to in-process callers; the Service wraps it at the tool
// boundary and degrades to returning input unchanged.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/chunk"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/prompts"
)

// MaxConcurrentLLMCalls bounds map-phase fan-out. The semaphore is created
// once per process and shared across every Engine instance, acting as
// back-pressure on the LLM provider across concurrent jobs.
const MaxConcurrentLLMCalls = 5

// NewSemaphore creates the process-wide map-phase gate. Called once in main;
// every Engine in the process shares the returned semaphore.
func NewSemaphore() *semaphore.Weighted {
	return semaphore.NewWeighted(MaxConcurrentLLMCalls)
}

// summarySeparator joins chunk summaries between reduce passes.
const summarySeparator = "\n\n---\n\n"

// Request describes one summarization. Zero-value fields fall back to the
// engine configuration.
type Request struct {
	// Content is the full text to compress.
	Content string

	// MaxOutputTokens is the target size. Zero uses the configured default.
	MaxOutputTokens int

	// FocusAreas bias compression toward the named topics.
	FocusAreas []string

	// Strategy overrides the configured chunking strategy.
	Strategy config.ChunkStrategy

	// SchemaHint, when set, switches the per-chunk prompt to the
	// extraction-targeted variant so fields the downstream extraction needs
	// survive compression.
	SchemaHint string

	// Ledger, when set, gates every LLM call with reserve/settle against the
	// owning job's budget. In-process callers pass the job ledger; the
	// remote tool server passes nil (its spend belongs to no job).
	Ledger *budget.Ledger
}

// Engine implements map-reduce summarization. Safe for concurrent use; all
// map-phase calls across all engines in the process share one semaphore.
type Engine struct {
	provider llm.Provider
	counter  *budget.Counter
	library  *prompts.Library
	cfg      *config.SummarizerConfig
	sem      *semaphore.Weighted
	logger   *slog.Logger
}

// NewEngine builds an engine over the given provider. The provider is
// wrapped with the standard transient-failure retry policy here — the map
// phase owns its retry budget, unlike pipeline steps where the engine does.
func NewEngine(provider llm.Provider, counter *budget.Counter, library *prompts.Library, cfg *config.SummarizerConfig, sem *semaphore.Weighted) *Engine {
	return &Engine{
		provider: llm.WithRetry(provider, llm.DefaultRetryConfig()),
		counter:  counter,
		library:  library,
		cfg:      cfg,
		sem:      sem,
		logger:   slog.Default().With("component", "summarizer"),
	}
}

// Summarize compresses req.Content to at most the target token count.
// Content already at or under the target is returned byte-identical with no
// LLM call. Content still over the target after the final reduce pass is
// returned as-is; downstream consumers handle overlong output.
func (e *Engine) Summarize(ctx context.Context, req Request) (string, error) {
	target := req.MaxOutputTokens
	if target <= 0 {
		target = e.cfg.TargetTokens
	}

	// Bypass: already small enough (this also covers empty input).
	if e.counter.Count(req.Content) <= target {
		return req.Content, nil
	}

	strategy := req.Strategy
	if !strategy.IsValid() {
		strategy = e.cfg.Strategy
	}
	chunks := chunk.Split(req.Content, chunk.Options{
		Strategy:  strategy,
		ChunkSize: e.cfg.ChunkSize,
		Overlap:   e.cfg.ChunkOverlap,
		Counter:   e.counter,
	})
	if len(chunks) == 0 {
		return req.Content, nil
	}

	focus, err := e.focusInstructions(req.FocusAreas)
	if err != nil {
		return "", err
	}

	summaries, err := e.mapPhase(ctx, chunks, target, focus, req)
	if err != nil {
		return "", err
	}

	return e.reducePhase(ctx, summaries, target, focus, req.Ledger)
}

// mapPhase summarizes every chunk concurrently, bounded by the shared
// semaphore. Results keep chunk order. The first failing chunk cancels the
// rest.
func (e *Engine) mapPhase(ctx context.Context, chunks []string, target int, focus string, req Request) ([]string, error) {
	// Per-chunk output allotment: divide the target across chunks, floored
	// so no chunk is squeezed into a uselessly small summary.
	allotment := target / len(chunks)
	if allotment < e.cfg.MinChunkOutputTokens {
		allotment = e.cfg.MinChunkOutputTokens
	}

	e.logger.InfoContext(ctx, "Summarization map phase starting",
		"chunks", len(chunks), "target_tokens", target, "chunk_allotment", allotment)

	summaries := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)

	for i, c := range chunks {
		g.Go(func() error {
			if err := e.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer e.sem.Release(1)

			prompt, err := e.chunkPrompt(c, allotment, focus, req.SchemaHint)
			if err != nil {
				return err
			}
			text, err := e.generate(gctx, prompt, allotment, req.Ledger)
			if err != nil {
				return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
			}
			summaries[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// reducePhase joins the chunk summaries and merges them down until they fit
// the target or the pass budget runs out.
func (e *Engine) reducePhase(ctx context.Context, summaries []string, target int, focus string, ledger *budget.Ledger) (string, error) {
	joined := strings.Join(summaries, summarySeparator)

	for pass := 0; pass < e.cfg.MaxReducePasses; pass++ {
		if e.counter.Count(joined) <= target {
			return joined, nil
		}

		e.logger.InfoContext(ctx, "Summarization reduce pass",
			"pass", pass+1, "input_tokens", e.counter.Count(joined), "target_tokens", target)

		prompt, err := e.library.Render("merge_summaries", map[string]string{
			"summaries":          joined,
			"max_tokens":         fmt.Sprintf("%d", target),
			"focus_instructions": focus,
		})
		if err != nil {
			return "", err
		}
		merged, err := e.generate(ctx, prompt, target, ledger)
		if err != nil {
			return "", fmt.Errorf("reduce pass %d: %w", pass+1, err)
		}
		joined = merged
	}

	// Still over target after the last pass: hand back what we have.
	if over := e.counter.Count(joined) - target; over > 0 {
		e.logger.WarnContext(ctx, "Summary still over target after final reduce pass",
			"over_by_tokens", over, "target_tokens", target)
	}
	return joined, nil
}

// generate runs one LLM call, gated by the ledger when one is attached.
func (e *Engine) generate(ctx context.Context, prompt string, maxOutput int, ledger *budget.Ledger) (string, error) {
	var reservation budget.Reservation
	if ledger != nil {
		var err error
		reservation, err = ledger.Reserve(e.counter.EstimateCall(prompt, int64(maxOutput)))
		if err != nil {
			return "", err
		}
		defer ledger.Release(reservation)
	}

	resp, err := e.provider.Generate(ctx, &llm.Request{
		Messages:        []llm.Message{llm.UserMessage(prompt)},
		MaxOutputTokens: maxOutput,
	})
	if err != nil {
		return "", err
	}

	if ledger != nil {
		ledger.Settle(reservation, resp.Usage.TotalTokens)
	}
	return strings.TrimSpace(resp.Text), nil
}

// chunkPrompt renders the per-chunk map prompt. A schema hint switches to
// the extraction-targeted template.
func (e *Engine) chunkPrompt(content string, allotment int, focus, schemaHint string) (string, error) {
	if schemaHint != "" {
		return e.library.Render("summarize_for_extraction", map[string]string{
			"content":     content,
			"schema_hint": schemaHint,
			"max_tokens":  fmt.Sprintf("%d", allotment),
		})
	}
	return e.library.Render("chunk_summary", map[string]string{
		"content":            content,
		"max_tokens":         fmt.Sprintf("%d", allotment),
		"focus_instructions": focus,
	})
}

// focusInstructions renders the focus-area block, or returns an empty string
// when the request has no focus areas.
func (e *Engine) focusInstructions(areas []string) (string, error) {
	if len(areas) == 0 {
		return "", nil
	}
	return e.library.Render("focus_areas", map[string]string{
		"focus_areas": strings.Join(areas, ", "),
	})
}

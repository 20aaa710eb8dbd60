package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/prompts"
)

// fakeProvider scripts responses by inspecting the prompt and records every
// request, tracking peak in-flight calls for fan-out assertions.
type fakeProvider struct {
	mu       sync.Mutex
	requests []*llm.Request
	inflight int
	peak     int

	// hold keeps each call open so concurrent calls overlap observably.
	hold time.Duration

	// respond builds the reply for one call. Nil responds with a small
	// fixed summary.
	respond func(req *llm.Request) (*llm.Response, error)
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) Generate(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.inflight++
	if f.inflight > f.peak {
		f.peak = f.inflight
	}
	hold := f.hold
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inflight--
		f.mu.Unlock()
	}()

	if hold > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(hold):
		}
	}

	if f.respond != nil {
		return f.respond(req)
	}
	return &llm.Response{
		Text:       "compressed section",
		StopReason: llm.StopReasonEndTurn,
		Usage:      llm.Usage{PromptTokens: 9, CompletionTokens: 3, TotalTokens: 12},
	}, nil
}

func (f *fakeProvider) calls() []*llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*llm.Request(nil), f.requests...)
}

func (f *fakeProvider) peakInflight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.peak
}

func promptOf(req *llm.Request) string { return req.Messages[0].Content }

// splitCalls separates map-phase requests from reduce-phase merges by the
// template each prompt was rendered from.
func splitCalls(reqs []*llm.Request) (mapReqs, mergeReqs []*llm.Request) {
	for _, r := range reqs {
		if strings.Contains(promptOf(r), "Merge the following section summaries") {
			mergeReqs = append(mergeReqs, r)
		} else {
			mapReqs = append(mapReqs, r)
		}
	}
	return mapReqs, mergeReqs
}

func testCfg() *config.SummarizerConfig {
	return &config.SummarizerConfig{
		Strategy:             config.ChunkStrategyParagraph,
		ChunkSize:            30,
		ChunkOverlap:         0,
		TargetTokens:         40,
		MaxReducePasses:      3,
		MinChunkOutputTokens: 5,
	}
}

// newTestEngine wires an engine over the fake with a nil counter, pinning
// the four-chars-per-token estimate so chunk and bypass decisions are
// deterministic.
func newTestEngine(f *fakeProvider, cfg *config.SummarizerConfig, sem *semaphore.Weighted) *Engine {
	if cfg == nil {
		cfg = testCfg()
	}
	if sem == nil {
		sem = NewSemaphore()
	}
	var counter *budget.Counter
	return NewEngine(f, counter, prompts.MustLoad(), cfg, sem)
}

// zoneParagraph builds a paragraph of roughly 24 estimated tokens carrying
// one unique marker, so each chunk maps back to its source paragraph.
func zoneParagraph(marker string) string {
	return strings.TrimSpace(strings.Repeat(marker+" ridge settlement chronicle ", 3))
}

func markedContent(markers ...string) string {
	paras := make([]string, len(markers))
	for i, m := range markers {
		paras[i] = zoneParagraph(m)
	}
	return strings.Join(paras, "\n\n")
}

func TestEngine_BypassUnderTarget(t *testing.T) {
	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	content := "The Emberfall Reach overlook, in brief."
	out, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 20})

	require.NoError(t, err)
	assert.Equal(t, content, out)
	assert.Empty(t, f.calls())
}

func TestEngine_BypassUsesConfiguredTargetDefault(t *testing.T) {
	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	// One paragraph: 24 estimated tokens, under the configured 40.
	content := zoneParagraph("alpha")
	out, err := e.Summarize(context.Background(), Request{Content: content})

	require.NoError(t, err)
	assert.Equal(t, content, out)
	assert.Empty(t, f.calls())
}

func TestEngine_EmptyInputNoCall(t *testing.T) {
	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	out, err := e.Summarize(context.Background(), Request{Content: "", MaxOutputTokens: 100})

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, f.calls())
}

func TestEngine_MapPhaseKeepsChunkOrder(t *testing.T) {
	markers := []string{"alpha", "beta", "gamma", "delta"}
	content := markedContent(markers...)

	f := &fakeProvider{respond: func(req *llm.Request) (*llm.Response, error) {
		for _, m := range markers {
			if strings.Contains(promptOf(req), m) {
				return &llm.Response{Text: strings.ToUpper(m), Usage: llm.Usage{TotalTokens: 10}}, nil
			}
		}
		return nil, fmt.Errorf("prompt matched no chunk marker")
	}}
	e := newTestEngine(f, nil, nil)

	out, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40})
	require.NoError(t, err)

	mapReqs, mergeReqs := splitCalls(f.calls())
	assert.Len(t, mapReqs, len(markers))
	assert.Empty(t, mergeReqs)

	// Summaries come back in chunk order regardless of completion order.
	assert.Equal(t, "ALPHA\n\n---\n\nBETA\n\n---\n\nGAMMA\n\n---\n\nDELTA", out)

	// Each map call carries the per-chunk allotment, not the full target.
	for _, r := range mapReqs {
		assert.Equal(t, 10, r.MaxOutputTokens)
	}
}

func TestEngine_ChunkAllotmentFloored(t *testing.T) {
	// Eight chunks against a target of 40 would allot 5 tokens each; the
	// floor lifts every chunk to a usable size.
	cfg := testCfg()
	cfg.MinChunkOutputTokens = 25
	content := markedContent("alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta")

	f := &fakeProvider{}
	e := newTestEngine(f, cfg, nil)

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40})
	require.NoError(t, err)

	mapReqs, mergeReqs := splitCalls(f.calls())
	require.Len(t, mapReqs, 8)
	for _, r := range mapReqs {
		assert.Equal(t, 25, r.MaxOutputTokens)
	}

	// Eight small summaries joined still exceed the target, so one merge
	// runs, at the full target size.
	require.Len(t, mergeReqs, 1)
	assert.Equal(t, 40, mergeReqs[0].MaxOutputTokens)
}

func TestEngine_ReduceMergesOversizedSummaries(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")
	longSummary := strings.TrimSpace(strings.Repeat("stretched chronicle fact ", 12))

	f := &fakeProvider{respond: func(req *llm.Request) (*llm.Response, error) {
		if strings.Contains(promptOf(req), "Merge the following section summaries") {
			return &llm.Response{Text: "merged zone chronicle", Usage: llm.Usage{TotalTokens: 15}}, nil
		}
		return &llm.Response{Text: longSummary, Usage: llm.Usage{TotalTokens: 80}}, nil
	}}
	e := newTestEngine(f, nil, nil)

	out, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40})
	require.NoError(t, err)
	assert.Equal(t, "merged zone chronicle", out)

	mapReqs, mergeReqs := splitCalls(f.calls())
	assert.Len(t, mapReqs, 4)
	require.Len(t, mergeReqs, 1)
	assert.Equal(t, 40, mergeReqs[0].MaxOutputTokens)
	assert.Contains(t, promptOf(mergeReqs[0]), longSummary)
}

func TestEngine_ReduceCapReturnsOversized(t *testing.T) {
	cfg := testCfg()
	cfg.MaxReducePasses = 2
	content := markedContent("alpha", "beta", "gamma", "delta")
	longSummary := strings.TrimSpace(strings.Repeat("stretched chronicle fact ", 12))

	// Every call, map or merge, comes back oversized.
	f := &fakeProvider{respond: func(_ *llm.Request) (*llm.Response, error) {
		return &llm.Response{Text: longSummary, Usage: llm.Usage{TotalTokens: 80}}, nil
	}}
	e := newTestEngine(f, cfg, nil)

	out, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40})

	// Never an error: the pass cap hands back the best effort.
	require.NoError(t, err)
	assert.Equal(t, longSummary, out)

	_, mergeReqs := splitCalls(f.calls())
	assert.Len(t, mergeReqs, 2)
}

func TestEngine_MapFanOutBoundedBySemaphore(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta", "epsilon",
		"zeta", "eta", "theta", "iota", "kappa")

	f := &fakeProvider{hold: 25 * time.Millisecond}
	e := newTestEngine(f, nil, NewSemaphore())

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 100})
	require.NoError(t, err)

	mapReqs, _ := splitCalls(f.calls())
	require.Len(t, mapReqs, 10)
	assert.LessOrEqual(t, f.peakInflight(), MaxConcurrentLLMCalls)
	assert.Greater(t, f.peakInflight(), 1, "map phase should overlap calls")
}

func TestEngine_MapSerializedByWeightOneSemaphore(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")

	f := &fakeProvider{hold: 10 * time.Millisecond}
	e := newTestEngine(f, nil, semaphore.NewWeighted(1))

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40})
	require.NoError(t, err)
	assert.Equal(t, 1, f.peakInflight())
}

func TestEngine_MapFailurePropagates(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")

	refusal := &llm.ProviderError{Provider: "fake", Operation: "generate", StatusCode: 400, Retryable: false, Err: errors.New("content policy refusal")}
	f := &fakeProvider{respond: func(req *llm.Request) (*llm.Response, error) {
		if strings.Contains(promptOf(req), "gamma") {
			return nil, refusal
		}
		return &llm.Response{Text: "compressed section", Usage: llm.Usage{TotalTokens: 12}}, nil
	}}
	e := newTestEngine(f, nil, nil)

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk")

	var pe *llm.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 400, pe.StatusCode)
}

func TestEngine_LedgerExhaustionStopsBeforeCall(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")
	ledger := budget.NewLedger(10, 0)

	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40, Ledger: ledger})
	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrBudgetExhausted)

	// Reservation happens before the provider call, so nothing was spent.
	assert.Empty(t, f.calls())
}

func TestEngine_LedgerSettlesActualUsage(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")
	ledger := budget.NewLedger(100_000, 0)

	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40, Ledger: ledger})
	require.NoError(t, err)

	// Every call settled at the provider-reported 12 tokens, not the
	// reservation estimate.
	calls := f.calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, int64(12*len(calls)), ledger.Used())
	assert.Equal(t, int64(100_000)-ledger.Used(), ledger.Remaining())
}

func TestEngine_FocusAreasRenderedIntoPrompts(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")

	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	_, err := e.Summarize(context.Background(), Request{
		Content:         content,
		MaxOutputTokens: 40,
		FocusAreas:      []string{"ancient history", "faction politics"},
	})
	require.NoError(t, err)

	mapReqs, _ := splitCalls(f.calls())
	require.NotEmpty(t, mapReqs)
	for _, r := range mapReqs {
		assert.Contains(t, promptOf(r), "Give extra weight to these focus areas: ancient history, faction politics")
	}
}

func TestEngine_SchemaHintSwitchesTemplate(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")
	hint := `{"npcs": [{"name": "string", "role": "string"}]}`

	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	_, err := e.Summarize(context.Background(), Request{Content: content, MaxOutputTokens: 40, SchemaHint: hint})
	require.NoError(t, err)

	mapReqs, _ := splitCalls(f.calls())
	require.NotEmpty(t, mapReqs)
	for _, r := range mapReqs {
		assert.Contains(t, promptOf(r), hint)
		assert.Contains(t, promptOf(r), "structured extraction")
		assert.NotContains(t, promptOf(r), "Summarize the following content section")
	}
}

func TestEngine_InvalidStrategyFallsBack(t *testing.T) {
	content := markedContent("alpha", "beta", "gamma", "delta")

	f := &fakeProvider{}
	e := newTestEngine(f, nil, nil)

	out, err := e.Summarize(context.Background(), Request{
		Content:         content,
		MaxOutputTokens: 40,
		Strategy:        config.ChunkStrategy("recursive"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.NotEmpty(t, f.calls())
}

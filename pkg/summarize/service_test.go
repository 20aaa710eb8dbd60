package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/llm"
)

func unavailableProvider() *fakeProvider {
	outage := &llm.ProviderError{Provider: "fake", Operation: "generate", StatusCode: 401, Retryable: false, Err: errors.New("invalid api key")}
	return &fakeProvider{respond: func(_ *llm.Request) (*llm.Response, error) {
		return nil, outage
	}}
}

func TestService_SummarizeDelegatesToEngine(t *testing.T) {
	f := &fakeProvider{}
	svc := NewService(newTestEngine(f, nil, nil))

	content := markedContent("alpha", "beta", "gamma", "delta")
	out := svc.Summarize(context.Background(), content, 40, nil, "")

	expected := strings.Join([]string{
		"compressed section", "compressed section", "compressed section", "compressed section",
	}, "\n\n---\n\n")
	assert.Equal(t, expected, out)
	assert.Len(t, f.calls(), 4)
}

func TestService_SummarizeBypassSmallContent(t *testing.T) {
	f := &fakeProvider{}
	svc := NewService(newTestEngine(f, nil, nil))

	content := "The Emberfall Reach overlook, in brief."
	out := svc.Summarize(context.Background(), content, 50, nil, "")

	assert.Equal(t, content, out)
	assert.Empty(t, f.calls())
}

func TestService_SummarizeFailOpenReturnsInput(t *testing.T) {
	f := unavailableProvider()
	svc := NewService(newTestEngine(f, nil, nil))

	content := markedContent("alpha", "beta", "gamma", "delta")
	out := svc.Summarize(context.Background(), content, 40, []string{"history"}, "semantic")

	// Tool boundary degrades instead of failing: input comes back verbatim.
	assert.Equal(t, content, out)
	assert.NotEmpty(t, f.calls())
}

func TestService_SummarizeForExtraction(t *testing.T) {
	f := &fakeProvider{}
	svc := NewService(newTestEngine(f, nil, nil))

	content := markedContent("alpha", "beta", "gamma", "delta")
	hint := `{"factions": [{"name": "string", "alignment": "string"}]}`
	out := svc.SummarizeForExtraction(context.Background(), content, hint, 40)

	require.NotEmpty(t, out)
	mapReqs, _ := splitCalls(f.calls())
	require.NotEmpty(t, mapReqs)
	for _, r := range mapReqs {
		assert.Contains(t, promptOf(r), hint)
	}
}

func TestService_SummarizeForExtractionFailOpen(t *testing.T) {
	svc := NewService(newTestEngine(unavailableProvider(), nil, nil))

	content := markedContent("alpha", "beta", "gamma", "delta")
	out := svc.SummarizeForExtraction(context.Background(), content, `{"npcs": []}`, 40)

	assert.Equal(t, content, out)
}

func TestService_UnknownStrategyStringFallsBack(t *testing.T) {
	f := &fakeProvider{}
	svc := NewService(newTestEngine(f, nil, nil))

	content := markedContent("alpha", "beta", "gamma", "delta")
	out := svc.Summarize(context.Background(), content, 40, nil, "recursive")

	assert.NotEmpty(t, out)
	assert.NotEqual(t, content, out)
}

package summarize

import (
	"context"
	"strings"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startSummarizerSession runs the summarizer MCP server over an in-memory
// transport and returns a connected client session.
func startSummarizerSession(t *testing.T, service *Service) *mcpsdk.ClientSession {
	t.Helper()

	server := NewServer(service)
	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = server.Run(ctx, serverTransport) }()

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "loreweave-test", Version: "test"}, nil)
	session, err := sdkClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func textOf(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestServer_ListsSummarizationTools(t *testing.T) {
	session := startSummarizerSession(t, NewService(newTestEngine(&fakeProvider{}, nil, nil)))

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.Contains(t, names, "summarize")
	assert.Contains(t, names, "summarize_for_extraction")
}

func TestServer_SummarizeBypassUnderTarget(t *testing.T) {
	f := &fakeProvider{}
	session := startSummarizerSession(t, NewService(newTestEngine(f, nil, nil)))

	content := "The Emberfall Reach overlook, in brief."
	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "summarize",
		Arguments: map[string]any{"content": content, "max_output_tokens": 50},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, content, textOf(t, result))
	assert.Empty(t, f.calls())
}

func TestServer_SummarizeMapReduce(t *testing.T) {
	f := &fakeProvider{}
	session := startSummarizerSession(t, NewService(newTestEngine(f, nil, nil)))

	content := markedContent("alpha", "beta", "gamma", "delta")
	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name: "summarize",
		Arguments: map[string]any{
			"content":           content,
			"max_output_tokens": 40,
			"focus_areas":       []string{"settlement history"},
			"strategy":          "paragraph",
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	expected := strings.Join([]string{
		"compressed section", "compressed section", "compressed section", "compressed section",
	}, "\n\n---\n\n")
	assert.Equal(t, expected, textOf(t, result))

	mapReqs, _ := splitCalls(f.calls())
	require.NotEmpty(t, mapReqs)
	for _, r := range mapReqs {
		assert.Contains(t, promptOf(r), "settlement history")
	}
}

func TestServer_SummarizeForExtraction(t *testing.T) {
	f := &fakeProvider{}
	session := startSummarizerSession(t, NewService(newTestEngine(f, nil, nil)))

	content := markedContent("alpha", "beta", "gamma", "delta")
	hint := `{"npcs": [{"name": "string", "location": "string"}]}`
	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name: "summarize_for_extraction",
		Arguments: map[string]any{
			"content":           content,
			"schema_hint":       hint,
			"max_output_tokens": 40,
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.NotEmpty(t, textOf(t, result))

	mapReqs, _ := splitCalls(f.calls())
	require.NotEmpty(t, mapReqs)
	for _, r := range mapReqs {
		assert.Contains(t, promptOf(r), hint)
	}
}

func TestServer_FailOpenReturnsContentVerbatim(t *testing.T) {
	session := startSummarizerSession(t, NewService(newTestEngine(unavailableProvider(), nil, nil)))

	content := markedContent("alpha", "beta", "gamma", "delta")
	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "summarize",
		Arguments: map[string]any{"content": content, "max_output_tokens": 40},
	})
	require.NoError(t, err)

	// Degradation is invisible to the caller: a normal result carrying the
	// original content.
	assert.False(t, result.IsError)
	assert.Equal(t, content, textOf(t, result))
}

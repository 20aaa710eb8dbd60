package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/llm"
)

// TestIntegration_E2E_ToolExecution tests the full tool execution pipeline:
// Executor.Execute → SplitToolName → Client.Call → result.
func TestIntegration_E2E_ToolExecution(t *testing.T) {
	// Create an in-memory MCP server with a tool that echoes its arguments
	ts := startTestServer(t, "search", map[string]mcpsdk.ToolHandler{
		"web_search": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			// Parse the arguments to echo them back
			args := req.Params.Arguments
			var parsed map[string]any
			if err := json.Unmarshal(args, &parsed); err != nil {
				return &mcpsdk.CallToolResult{
					Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "parse error: " + err.Error()}},
					IsError: true,
				}, nil
			}

			query, _ := parsed["query"].(string)
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{
					Text: "results for " + query + ": wiki.example/emberfall, lore.example/reach",
				}},
			}, nil
		},
	})

	// Wire up executor
	executor := newTestExecutorFromTransport(t, "search", ts.clientTransport)

	// Execute with decoded arguments
	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-e2e-1",
		Name: "search.web_search",
		Args: map[string]any{"query": "Emberfall Reach"},
	})

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content, "results for Emberfall Reach")
	assert.Contains(t, result.Content, "wiki.example/emberfall")

	// Execute with a raw payload (parsing cascade)
	result, err = executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-e2e-2",
		Name: "search.web_search",
		Args: map[string]any{"raw": "query: Hollow Spire"},
	})

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content, "results for Hollow Spire")
}

// TestIntegration_MultiSet_Routing tests tool discovery and routing across
// multiple tool sets.
func TestIntegration_MultiSet_Routing(t *testing.T) {
	// Create two in-memory MCP servers
	searchServer := startTestServer(t, "search", map[string]mcpsdk.ToolHandler{
		"web_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "search: results"}},
			}, nil
		},
	})

	crawlerServer := startTestServer(t, "crawler", map[string]mcpsdk.ToolHandler{
		"crawl_page": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "crawler: page body"}},
			}, nil
		},
	})

	// Build multi-set executor
	registry := config.NewToolSetRegistry(nil)
	client := newClient(registry)
	wireSession(t, client, "search", searchServer.clientTransport)
	wireSession(t, client, "crawler", crawlerServer.clientTransport)

	executor := NewExecutor(client, registry, []string{"search", "crawler"})
	t.Cleanup(func() { _ = executor.Close() })

	// List tools should show both sets' tools
	tools, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "search.web_search")
	assert.Contains(t, names, "crawler.crawl_page")

	// Route to search
	r1, err := executor.Execute(context.Background(), llm.ToolCall{
		ID: "r1", Name: "search.web_search", Args: map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "search: results", r1.Content)

	// Route to crawler
	r2, err := executor.Execute(context.Background(), llm.ToolCall{
		ID: "r2", Name: "crawler.crawl_page", Args: map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "crawler: page body", r2.Content)
}

// TestIntegration_ListToolsCanonicalFormat verifies tool names stay in
// canonical "tool_set.tool" format. The LLM adapters handle provider-specific
// encoding (e.g. sanitized names for Gemini) and map responses back.
func TestIntegration_ListToolsCanonicalFormat(t *testing.T) {
	ts := startTestServer(t, "search", map[string]mcpsdk.ToolHandler{
		"web_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "ok"}}}, nil
		},
	})

	executor := newTestExecutorFromTransport(t, "search", ts.clientTransport)

	tools, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "search.web_search", tools[0].Name)
}

// TestIntegration_PerRunIsolation tests that two concurrent executors over the
// same registry operate independently.
func TestIntegration_PerRunIsolation(t *testing.T) {
	ts1 := startTestServer(t, "summarizer", map[string]mcpsdk.ToolHandler{
		"summarize": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "from run 1"}},
			}, nil
		},
	})

	ts2 := startTestServer(t, "summarizer", map[string]mcpsdk.ToolHandler{
		"summarize": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "from run 2"}},
			}, nil
		},
	})

	// Create two independent executors
	registry := config.NewToolSetRegistry(nil)

	client1 := newClient(registry)
	wireSession(t, client1, "summarizer", ts1.clientTransport)
	exec1 := NewExecutor(client1, registry, []string{"summarizer"})
	t.Cleanup(func() { _ = exec1.Close() })

	client2 := newClient(registry)
	wireSession(t, client2, "summarizer", ts2.clientTransport)
	exec2 := NewExecutor(client2, registry, []string{"summarizer"})
	t.Cleanup(func() { _ = exec2.Close() })

	// Execute on each
	r1, err := exec1.Execute(context.Background(), llm.ToolCall{
		ID: "iso-1", Name: "summarizer.summarize", Args: map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "from run 1", r1.Content)

	r2, err := exec2.Execute(context.Background(), llm.ToolCall{
		ID: "iso-2", Name: "summarizer.summarize", Args: map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "from run 2", r2.Content)
}

// TestIntegration_TestFactory exercises the factory seam end to end:
// CreateExecutor over an injected in-memory session.
func TestIntegration_TestFactory(t *testing.T) {
	ts := startTestServer(t, "search", map[string]mcpsdk.ToolHandler{
		"web_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "factory-wired"}},
			}, nil
		},
	})

	registry := config.NewToolSetRegistry(nil)
	factory := NewTestFactory(registry, func(c *Client) {
		wireSession(t, c, "search", ts.clientTransport)
	})

	executor, err := factory.CreateExecutor(context.Background(), []string{"search"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = executor.Close() })

	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID: "tf-1", Name: "search.web_search", Args: map[string]any{},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "factory-wired", result.Content)
}

// TestIntegration_FailedToolSets tests failed tool set tracking through the
// pipeline.
func TestIntegration_FailedToolSets(t *testing.T) {
	registry := config.NewToolSetRegistry(nil)
	client := newClient(registry)

	// Initialize with an unconfigured set (failures recorded, not returned)
	_ = client.Initialize(context.Background(), []string{"broken-set"})

	failed := client.FailedToolSets()
	assert.Contains(t, failed, "broken-set")
	assert.NotEmpty(t, failed["broken-set"])
}

// --- Test helpers ---

// newTestExecutorFromTransport creates a single-set Executor for testing.
func newTestExecutorFromTransport(t *testing.T, setName string, transport *mcpsdk.InMemoryTransport) *Executor {
	t.Helper()

	registry := config.NewToolSetRegistry(nil)
	client := newClient(registry)
	wireSession(t, client, setName, transport)

	executor := NewExecutor(client, registry, []string{setName})
	t.Cleanup(func() { _ = executor.Close() })
	return executor
}

// wireSession connects a client to an in-memory transport and registers the session.
func wireSession(t *testing.T, client *Client, setName string, transport *mcpsdk.InMemoryTransport) {
	t.Helper()

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "loreweave-test", Version: "test",
	}, nil)
	session, err := sdkClient.Connect(context.Background(), transport, nil)
	require.NoError(t, err)

	client.mu.Lock()
	client.sessions[setName] = session
	client.clients[setName] = sdkClient
	client.mu.Unlock()
}

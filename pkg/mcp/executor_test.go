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

// newTestExecutor creates an Executor with in-memory MCP servers, one per
// tool set, using the default (empty) registry.
func newTestExecutor(t *testing.T, sets map[string]map[string]mcpsdk.ToolHandler) *Executor {
	t.Helper()
	return newTestExecutorWithRegistry(t, config.NewToolSetRegistry(nil), sets)
}

func newTestExecutorWithRegistry(t *testing.T, registry *config.ToolSetRegistry, sets map[string]map[string]mcpsdk.ToolHandler) *Executor {
	t.Helper()

	client := newClient(registry)
	var setNames []string

	for setName, tools := range sets {
		ts := startTestServer(t, setName, tools)
		setNames = append(setNames, setName)

		// Directly wire up the client session
		sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
			Name: "loreweave-test", Version: "test",
		}, nil)
		session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
		require.NoError(t, err)

		client.mu.Lock()
		client.sessions[setName] = session
		client.clients[setName] = sdkClient
		client.mu.Unlock()
	}

	executor := NewExecutor(client, registry, setNames)
	t.Cleanup(func() { _ = executor.Close() })
	return executor
}

// echoHandler returns a handler that echoes one named argument back.
func echoHandler(key string) mcpsdk.ToolHandler {
	return func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var parsed map[string]any
		if err := json.Unmarshal(req.Params.Arguments, &parsed); err != nil {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "parse error: " + err.Error()}},
				IsError: true,
			}, nil
		}
		value, _ := parsed[key].(string)
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: key + "=" + value}},
		}, nil
	}
}

func okHandler(text string) mcpsdk.ToolHandler {
	return func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		}, nil
	}
}

func TestExecutor_Execute(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": echoHandler("query"),
		},
	})

	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-1",
		Name: "search.web_search",
		Args: map[string]any{"query": "Emberfall Reach history"},
	})

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "query=Emberfall Reach history", result.Content)
	assert.Equal(t, "call-1", result.ToolCallID)
	assert.Equal(t, "search.web_search", result.Name)
}

func TestExecutor_Execute_RawArgumentSalvage(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": echoHandler("query"),
		},
	})

	// Providers wrap undecodable payloads as {"raw": "..."}; the executor
	// runs them through the salvage cascade before dispatch.
	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-2",
		Name: "search.web_search",
		Args: map[string]any{"raw": "query: Emberfall Reach"},
	})

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "query=Emberfall Reach", result.Content)
}

func TestExecutor_Execute_UnknownToolSet(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": okHandler("ok"),
		},
	})

	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-3",
		Name: "nonexistent.web_search",
		Args: map[string]any{},
	})

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "not available")
	assert.Contains(t, result.Content, "search")
}

func TestExecutor_Execute_InvalidToolName(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": okHandler("ok"),
		},
	})

	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-4",
		Name: "just_a_tool",
		Args: map[string]any{},
	})

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "invalid tool name")
}

func TestExecutor_Execute_ToolErrorResult(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"crawler": {
			"crawl_page": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return &mcpsdk.CallToolResult{
					Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "fetch failed: 404"}},
					IsError: true,
				}, nil
			},
		},
	})

	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-5",
		Name: "crawler.crawl_page",
		Args: map[string]any{"url": "https://wiki.example/missing"},
	})

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "fetch failed: 404")
}

func TestExecutor_Execute_NilArgs(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": okHandler("ok"),
		},
	})

	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-6",
		Name: "search.web_search",
		Args: nil,
	})

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "ok", result.Content)
}

func TestExecutor_ListTools(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search":  okHandler("ok"),
			"site_search": okHandler("ok"),
		},
	})

	tools, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "search.web_search")
	assert.Contains(t, names, "search.site_search")

	// Schemas survive the round trip in map form.
	for _, tool := range tools {
		assert.Equal(t, "object", tool.InputSchema["type"])
	}
}

func TestExecutor_ListTools_MultiSet(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": okHandler("ok"),
		},
		"crawler": {
			"crawl_page": okHandler("ok"),
		},
	})

	tools, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "search.web_search")
	assert.Contains(t, names, "crawler.crawl_page")
}

func TestExecutor_ToolPrefixOverride(t *testing.T) {
	registry := config.NewToolSetRegistry(map[string]*config.ToolSetConfig{
		"lore-search-eu": {
			Endpoint:   "http://localhost:9100/mcp",
			ToolPrefix: "search",
		},
	})

	executor := newTestExecutorWithRegistry(t, registry, map[string]map[string]mcpsdk.ToolHandler{
		"lore-search-eu": {
			"web_search": echoHandler("query"),
		},
	})

	// Listed under the declared prefix, not the set name
	tools, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "search.web_search", tools[0].Name)

	// And callable under it
	result, err := executor.Execute(context.Background(), llm.ToolCall{
		ID:   "call-7",
		Name: "search.web_search",
		Args: map[string]any{"query": "ruins"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "query=ruins", result.Content)
}

func TestExecutor_Instructions(t *testing.T) {
	registry := config.NewToolSetRegistry(map[string]*config.ToolSetConfig{
		"search": {
			Endpoint:     "http://localhost:9100/mcp",
			Instructions: "Prefer site_search for known wikis.",
		},
		"crawler": {
			Endpoint: "http://localhost:9101/mcp",
		},
	})

	executor := newTestExecutorWithRegistry(t, registry, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": okHandler("ok"),
		},
		"crawler": {
			"crawl_page": okHandler("ok"),
		},
	})

	instructions := executor.Instructions()
	assert.Contains(t, instructions, "## search Tools")
	assert.Contains(t, instructions, "Prefer site_search for known wikis.")
	// Sets without instructions contribute nothing
	assert.NotContains(t, instructions, "crawler")
}

func TestExecutor_Close(t *testing.T) {
	executor := newTestExecutor(t, map[string]map[string]mcpsdk.ToolHandler{
		"search": {
			"web_search": okHandler("ok"),
		},
	})

	err := executor.Close()
	assert.NoError(t, err)
}

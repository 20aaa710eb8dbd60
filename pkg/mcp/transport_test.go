package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/config"
)

func TestCreateTransport_Streamable(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Endpoint: "https://search-mcp.example.com/mcp",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
	require.True(t, ok)
	assert.Equal(t, "https://search-mcp.example.com/mcp", httpTransport.Endpoint)

	// The HTTP client always carries the result-wait timeout
	require.NotNil(t, httpTransport.HTTPClient)
	assert.Equal(t, config.DefaultToolReadTimeout, httpTransport.HTTPClient.Timeout)
}

func TestCreateTransport_Streamable_ReadTimeout(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Endpoint:    "https://search-mcp.example.com/mcp",
		ReadTimeout: 300,
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
	require.True(t, ok)
	require.NotNil(t, httpTransport.HTTPClient)
	assert.Equal(t, 300*time.Second, httpTransport.HTTPClient.Timeout)
}

func TestCreateTransport_Streamable_MissingEndpoint(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Transport: config.TransportTypeStreamableHTTP,
	}

	_, err := createTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires endpoint")
}

func TestCreateTransport_Streamable_BearerToken(t *testing.T) {
	t.Setenv("SEARCH_MCP_TOKEN", "secret-token")

	cfg := &config.ToolSetConfig{
		Endpoint:       "https://search-mcp.example.com/mcp",
		BearerTokenEnv: "SEARCH_MCP_TOKEN",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
	require.True(t, ok)
	require.NotNil(t, httpTransport.HTTPClient)

	// The wrapped round tripper injects the Authorization header
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	resp, err := httpTransport.HTTPClient.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestCreateTransport_SSE(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Transport: config.TransportTypeSSE,
		Endpoint:  "https://lore-mcp.example.com/sse",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	sseTransport, ok := transport.(*mcpsdk.SSEClientTransport)
	require.True(t, ok)
	assert.Equal(t, "https://lore-mcp.example.com/sse", sseTransport.Endpoint)
	// No overall client timeout: the event stream must outlive single calls
	assert.Nil(t, sseTransport.HTTPClient)
}

func TestCreateTransport_SSE_WithBearerToken(t *testing.T) {
	t.Setenv("LORE_MCP_TOKEN", "sse-token")

	cfg := &config.ToolSetConfig{
		Transport:      config.TransportTypeSSE,
		Endpoint:       "https://lore-mcp.example.com/sse",
		BearerTokenEnv: "LORE_MCP_TOKEN",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	sseTransport, ok := transport.(*mcpsdk.SSEClientTransport)
	require.True(t, ok)
	require.NotNil(t, sseTransport.HTTPClient)
	// Auth client for SSE still has no overall timeout
	assert.Zero(t, sseTransport.HTTPClient.Timeout)
}

func TestCreateTransport_SSE_MissingEndpoint(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Transport: config.TransportTypeSSE,
	}

	_, err := createTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires endpoint")
}

func TestCreateTransport_Stdio(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Transport: config.TransportTypeStdio,
		Command:   "npx",
		Args:      []string{"-y", "lore-search-mcp@1.2.0"},
		Env:       map[string]string{"SEARCH_INDEX_DIR": "/var/lib/loreweave/index"},
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	cmdTransport, ok := transport.(*mcpsdk.CommandTransport)
	require.True(t, ok)
	// exec.Command resolves the full path, so check the basename
	assert.Contains(t, cmdTransport.Command.Path, "npx")
	assert.Contains(t, cmdTransport.Command.Args, "-y")
	assert.Contains(t, cmdTransport.Command.Args, "lore-search-mcp@1.2.0")

	// Check env override is present
	found := false
	for _, e := range cmdTransport.Command.Env {
		if e == "SEARCH_INDEX_DIR=/var/lib/loreweave/index" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected SEARCH_INDEX_DIR env override in command environment")
}

func TestCreateTransport_Stdio_MissingCommand(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Transport: config.TransportTypeStdio,
	}

	_, err := createTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires command")
}

func TestCreateTransport_DefaultsToStreamable(t *testing.T) {
	// No transport declared: streamable HTTP is the default
	cfg := &config.ToolSetConfig{
		Endpoint: "https://search-mcp.example.com/mcp",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	_, ok := transport.(*mcpsdk.StreamableClientTransport)
	assert.True(t, ok)
}

func TestCreateTransport_UnknownType(t *testing.T) {
	cfg := &config.ToolSetConfig{
		Transport: "grpc",
		Endpoint:  "https://mcp.example.com",
	}

	_, err := createTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

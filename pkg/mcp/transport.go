package mcp

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/config"
)

// createTransport creates an MCP SDK transport from a tool set config.
func createTransport(cfg *config.ToolSetConfig) (mcpsdk.Transport, error) {
	switch cfg.TransportOrDefault() {
	case config.TransportTypeStreamableHTTP:
		return createStreamableTransport(cfg)
	case config.TransportTypeSSE:
		return createSSETransport(cfg)
	case config.TransportTypeStdio:
		return createStdioTransport(cfg)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Transport)
	}
}

func createStreamableTransport(cfg *config.ToolSetConfig) (*mcpsdk.StreamableClientTransport, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("streamable_http transport requires endpoint")
	}
	return &mcpsdk.StreamableClientTransport{
		Endpoint: cfg.Endpoint,
		// The HTTP client's overall timeout carries read_timeout: it bounds
		// waiting for a complete tool result on each request.
		HTTPClient: buildHTTPClient(cfg, true),
	}, nil
}

func createSSETransport(cfg *config.ToolSetConfig) (*mcpsdk.SSEClientTransport, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("sse transport requires endpoint")
	}
	transport := &mcpsdk.SSEClientTransport{
		Endpoint: cfg.Endpoint,
	}
	// No overall timeout for SSE: the event stream must outlive any single
	// call. Per-call deadlines still bound result waits at the call site.
	if cfg.BearerTokenEnv != "" {
		transport.HTTPClient = buildHTTPClient(cfg, false)
	}
	return transport, nil
}

func createStdioTransport(cfg *config.ToolSetConfig) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("stdio transport requires command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)

	// Inherit parent environment + config overrides. Env values are already
	// expanded by the config loader.
	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

// buildHTTPClient creates an http.Client with auth and timeout settings.
// Bearer tokens are resolved from the environment at connect time, never
// stored in config structs.
func buildHTTPClient(cfg *config.ToolSetConfig, withTimeout bool) *http.Client {
	client := &http.Client{}

	if cfg.BearerTokenEnv != "" {
		if token := os.Getenv(cfg.BearerTokenEnv); token != "" {
			client.Transport = &bearerTokenTransport{
				base:  http.DefaultTransport,
				token: token,
			}
		}
	}

	if withTimeout {
		client.Timeout = cfg.ResultTimeout()
	}

	return client
}

// bearerTokenTransport wraps an http.RoundTripper to add Authorization headers.
type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

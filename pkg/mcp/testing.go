package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/config"
)

// InjectSession injects a pre-connected MCP SDK session into the Client.
// This is intended for test infrastructure that needs to wire in-memory MCP
// servers without going through the real Initialize() transport creation path.
func (c *Client) InjectSession(setName string, sdkClient *mcpsdk.Client, session *mcpsdk.ClientSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[setName] = session
	c.clients[setName] = sdkClient
}

// NewTestFactory creates a Factory that uses injectFn to wire sessions into
// each new Client instead of calling Initialize(). Each CreateClient /
// CreateExecutor call invokes injectFn on the freshly-created Client, allowing
// tests to inject in-memory MCP sessions.
func NewTestFactory(registry *config.ToolSetRegistry, injectFn func(c *Client)) *Factory {
	return &Factory{
		registry: registry,
		createClientFn: func(_ context.Context, _ []string) (*Client, error) {
			c := newClient(registry)
			injectFn(c)
			return c, nil
		},
	}
}

package mcp

import (
	"context"

	"github.com/loreweave/loreweave/pkg/config"
)

// Factory creates Client and Executor instances scoped to a run.
type Factory struct {
	registry *config.ToolSetRegistry

	// createClientFn overrides client construction; used by test
	// infrastructure to inject in-memory sessions.
	createClientFn func(ctx context.Context, setNames []string) (*Client, error)
}

// NewFactory creates a factory over the configured tool sets.
func NewFactory(registry *config.ToolSetRegistry) *Factory {
	return &Factory{registry: registry}
}

// CreateClient connects a new Client to the named tool sets. Connection
// failures degrade to FailedToolSets rather than aborting; the caller decides
// whether partial availability is acceptable. The caller owns Close().
func (f *Factory) CreateClient(ctx context.Context, setNames []string) (*Client, error) {
	if f.createClientFn != nil {
		return f.createClientFn(ctx, setNames)
	}
	client := newClient(f.registry)
	if err := client.Initialize(ctx, setNames); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// CreateExecutor creates a fully-wired Executor for a step run. The executor
// owns the underlying client; closing the executor closes its sessions.
func (f *Factory) CreateExecutor(ctx context.Context, setNames []string) (*Executor, error) {
	client, err := f.CreateClient(ctx, setNames)
	if err != nil {
		return nil, err
	}
	return NewExecutor(client, f.registry, setNames), nil
}

// Package mcp maintains MCP (Model Context Protocol) sessions to the
// configured tool sets and routes qualified tool calls to them.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/version"
)

// Client manages MCP SDK sessions for the configured tool sets.
// A Client instance is scoped to one pipeline run (or one summarizer
// connection). Thread-safe: the summarizer's map phase calls tools from
// multiple goroutines.
type Client struct {
	registry *config.ToolSetRegistry

	mu         sync.RWMutex
	sessions   map[string]*mcpsdk.ClientSession // tool set → session
	clients    map[string]*mcpsdk.Client        // tool set → client (for reconnection)
	failedSets map[string]string                // tool set → error message

	// Tool cache (populated on first ListTools, never invalidated — each
	// Client instance lives for one run, so the cache is naturally fresh)
	toolCache   map[string][]*mcpsdk.Tool
	toolCacheMu sync.RWMutex

	// Per-set mutex for session recreation to prevent thundering herd
	reinitMu sync.Map // tool set → *sync.Mutex

	logger *slog.Logger
}

// newClient creates a new Client.
func newClient(registry *config.ToolSetRegistry) *Client {
	return &Client{
		registry:   registry,
		sessions:   make(map[string]*mcpsdk.ClientSession),
		clients:    make(map[string]*mcpsdk.Client),
		failedSets: make(map[string]string),
		toolCache:  make(map[string][]*mcpsdk.Tool),
		logger:     slog.Default(),
	}
}

// Initialize connects to all named tool sets. Sets that fail to connect are
// recorded in failedSets rather than aborting: a research run degrades to the
// tool sets that did come up, and the caller decides whether that is fatal
// (startup checks FailedToolSets and refuses to serve; per-run clients accept
// partial availability).
func (c *Client) Initialize(ctx context.Context, setNames []string) error {
	for _, name := range setNames {
		if err := c.InitializeToolSet(ctx, name); err != nil {
			c.mu.Lock()
			c.failedSets[name] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("Tool set failed to initialize",
				"tool_set", name, "error", err)
		}
	}
	return nil
}

// InitializeToolSet connects to a single tool set. Returns nil if already
// connected. Uses a per-set mutex so concurrent initialization attempts for
// the same set serialize.
func (c *Client) InitializeToolSet(ctx context.Context, name string) error {
	muI, _ := c.reinitMu.LoadOrStore(name, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return c.initializeToolSetLocked(ctx, name)
}

// initializeToolSetLocked performs the actual connection.
// Caller must hold the per-set reinitMu lock.
func (c *Client) initializeToolSetLocked(ctx context.Context, name string) error {
	// Check if already connected (under per-set lock, no TOCTOU race)
	c.mu.RLock()
	if _, exists := c.sessions[name]; exists {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	setCfg, err := c.registry.Get(name)
	if err != nil {
		return fmt.Errorf("tool set %q not configured: %w", name, err)
	}

	transport, err := createTransport(setCfg)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", name, err)
	}

	// Connect within the set's request timeout
	initCtx, cancel := context.WithTimeout(ctx, setCfg.RequestTimeout())
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it implements io.Closer to avoid leaking
		// resources (e.g., stdio child processes). The SDK closes the
		// underlying connection on most failure paths; this guards the rest.
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", name, err)
	}

	c.mu.Lock()
	c.sessions[name] = session
	c.clients[name] = client
	delete(c.failedSets, name)
	c.mu.Unlock()

	c.logger.Info("Tool set connected", "tool_set", name)
	return nil
}

// timeouts resolves the connect/dispatch and result-wait deadlines for a set.
// Falls back to package defaults when the set is not in the registry (test
// sessions are injected without registry entries).
func (c *Client) timeouts(name string) (request, result time.Duration) {
	setCfg, err := c.registry.Get(name)
	if err != nil {
		return config.DefaultToolTimeout, config.DefaultToolReadTimeout
	}
	return setCfg.RequestTimeout(), setCfg.ResultTimeout()
}

// ListTools returns the tools a set exposes. Uses cache if available.
func (c *Client) ListTools(ctx context.Context, name string) ([]*mcpsdk.Tool, error) {
	// Check cache first
	// Lock ordering: never acquire c.mu while holding toolCacheMu.
	c.toolCacheMu.RLock()
	if cached, ok := c.toolCache[name]; ok {
		c.toolCacheMu.RUnlock()
		return cached, nil
	}
	c.toolCacheMu.RUnlock()

	c.mu.RLock()
	session, exists := c.sessions[name]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for tool set %q", name)
	}

	requestTimeout, _ := c.timeouts(name)
	opCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", name, err)
	}

	// Cache a non-nil slice so cache hits never return nil to callers.
	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.toolCacheMu.Lock()
	c.toolCache[name] = tools
	c.toolCacheMu.Unlock()

	return tools, nil
}

// ListAllTools returns tools from all connected sets.
// Returns partial results if some sets fail (logs errors, does not abort).
// Returns an error only when every set fails.
func (c *Client) ListAllTools(ctx context.Context) (map[string][]*mcpsdk.Tool, error) {
	c.mu.RLock()
	setNames := make([]string, 0, len(c.sessions))
	for name := range c.sessions {
		setNames = append(setNames, name)
	}
	c.mu.RUnlock()

	result := make(map[string][]*mcpsdk.Tool)
	var lastErr error
	for _, name := range setNames {
		tools, err := c.ListTools(ctx, name)
		if err != nil {
			lastErr = err
			c.logger.Warn("Failed to list tools from tool set",
				"tool_set", name, "error", err)
			continue
		}
		result[name] = tools
	}

	if len(result) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all tool sets failed to list tools: %w", lastErr)
	}
	return result, nil
}

// Call executes a tool on the named set. The result wait is bounded by the
// set's read_timeout. On transport failure the session is recreated and the
// call retried exactly once after a jittered backoff; if the retry also fails
// the error is returned to the caller.
func (c *Client) Call(ctx context.Context, setName, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	params := &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	}

	result, err := c.callOnce(ctx, setName, params)
	if err == nil {
		return result, nil
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	c.logger.Info("Tool call failed, retrying",
		"tool_set", setName, "tool", toolName,
		"action", action, "error", err)

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == RetryNewSession {
		if err := c.recreateSession(ctx, setName); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", setName, err)
		}
	}

	result, err = c.callOnce(ctx, setName, params)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %s.%s: %w", setName, toolName, err)
	}
	return result, nil
}

// callOnce performs a single CallTool attempt.
func (c *Client) callOnce(ctx context.Context, setName string, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	c.mu.RLock()
	session, exists := c.sessions[setName]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for tool set %q", setName)
	}

	_, resultTimeout := c.timeouts(setName)
	opCtx, cancel := context.WithTimeout(ctx, resultTimeout)
	defer cancel()

	return session.CallTool(opCtx, params)
}

// recreateSession tears down and recreates the session for a tool set.
// Uses the per-set mutex to prevent concurrent recreation.
//
// Note: if two goroutines race into recreateSession, the second tears down
// the freshly recreated session and creates another. The cost is one extra
// recreation, accepted for simplicity; a per-set generation counter would
// avoid it if this ever becomes a hot path.
func (c *Client) recreateSession(ctx context.Context, setName string) error {
	muI, _ := c.reinitMu.LoadOrStore(setName, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if session, exists := c.sessions[setName]; exists {
		_ = session.Close()
		delete(c.sessions, setName)
		delete(c.clients, setName)
	}
	c.mu.Unlock()

	c.InvalidateToolCache(setName)

	// Reinitialize with timeout (use locked variant — we already hold reinitMu)
	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()

	return c.initializeToolSetLocked(reinitCtx, setName)
}

// Close shuts down all sessions and transports gracefully.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for name, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", name, err)
		}
	}

	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.clients = make(map[string]*mcpsdk.Client)
	c.failedSets = make(map[string]string)

	// Lock ordering note: mu → toolCacheMu is safe here because no other
	// code path holds toolCacheMu while acquiring mu.
	c.toolCacheMu.Lock()
	c.toolCache = make(map[string][]*mcpsdk.Tool)
	c.toolCacheMu.Unlock()

	return firstErr
}

// InvalidateToolCache removes the cached tool list for a set, forcing the
// next ListTools call to re-probe the server.
// Lock ordering: never acquire c.mu while holding toolCacheMu.
func (c *Client) InvalidateToolCache(setName string) {
	c.toolCacheMu.Lock()
	delete(c.toolCache, setName)
	c.toolCacheMu.Unlock()
}

// HasSession checks if a tool set has an active session.
func (c *Client) HasSession(setName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.sessions[setName]
	return exists
}

// FailedToolSets returns the map of tool sets that failed to initialize.
func (c *Client) FailedToolSets() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedSets))
	for k, v := range c.failedSets {
		result[k] = v
	}
	return result
}

package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ToolSetConfig defines one remote tool server the research agent can call.
// Tools exposed by the server are addressed as "<tool_set>.<tool_name>".
type ToolSetConfig struct {
	// Endpoint URL of the MCP server (required for HTTP transports)
	Endpoint string `yaml:"endpoint,omitempty"`

	// Transport type; defaults to streamable_http
	Transport TransportType `yaml:"transport,omitempty"`

	// Command to spawn for stdio transports (required when transport is stdio)
	Command string `yaml:"command,omitempty"`

	// Args passed to the stdio command
	Args []string `yaml:"args,omitempty"`

	// Env overrides for the stdio command, merged over the parent environment
	Env map[string]string `yaml:"env,omitempty"`

	// Timeout bounds the initial connection and request dispatch (seconds)
	Timeout int `yaml:"timeout,omitempty"`

	// ReadTimeout bounds waiting for the full tool result (seconds).
	// Long-running tools like crawlers need this larger than Timeout.
	ReadTimeout int `yaml:"read_timeout,omitempty"`

	// ToolPrefix overrides the tool set name used in qualified tool names
	ToolPrefix string `yaml:"tool_prefix,omitempty"`

	// Instructions for the LLM when using this tool set
	Instructions string `yaml:"instructions,omitempty"`

	// BearerTokenEnv names the env var holding an auth token, if any
	BearerTokenEnv string `yaml:"bearer_token_env,omitempty"`
}

// Default timeouts applied when a tool set omits them.
const (
	DefaultToolTimeout     = 30 * time.Second
	DefaultToolReadTimeout = 120 * time.Second
)

// RequestTimeout returns the configured connect/dispatch timeout.
func (c *ToolSetConfig) RequestTimeout() time.Duration {
	if c.Timeout > 0 {
		return time.Duration(c.Timeout) * time.Second
	}
	return DefaultToolTimeout
}

// ResultTimeout returns the configured result-wait timeout.
func (c *ToolSetConfig) ResultTimeout() time.Duration {
	if c.ReadTimeout > 0 {
		return time.Duration(c.ReadTimeout) * time.Second
	}
	return DefaultToolReadTimeout
}

// Prefix returns the qualified-name prefix for this tool set.
func (c *ToolSetConfig) Prefix(name string) string {
	if c.ToolPrefix != "" {
		return c.ToolPrefix
	}
	return name
}

// TransportOrDefault returns the transport type, defaulting to streamable HTTP.
func (c *ToolSetConfig) TransportOrDefault() TransportType {
	if c.Transport != "" {
		return c.Transport
	}
	return TransportTypeStreamableHTTP
}

// ToolSetRegistry stores tool set configurations in memory with thread-safe access
type ToolSetRegistry struct {
	toolSets map[string]*ToolSetConfig
	mu       sync.RWMutex
}

// NewToolSetRegistry creates a new tool set registry
func NewToolSetRegistry(toolSets map[string]*ToolSetConfig) *ToolSetRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ToolSetConfig, len(toolSets))
	for k, v := range toolSets {
		copied[k] = v
	}
	return &ToolSetRegistry{
		toolSets: copied,
	}
}

// Get retrieves a tool set configuration by name (thread-safe)
func (r *ToolSetRegistry) Get(name string) (*ToolSetConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	toolSet, exists := r.toolSets[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolSetNotFound, name)
	}
	return toolSet, nil
}

// GetAll returns all tool set configurations (thread-safe, returns copy)
func (r *ToolSetRegistry) GetAll() map[string]*ToolSetConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ToolSetConfig, len(r.toolSets))
	for k, v := range r.toolSets {
		result[k] = v
	}
	return result
}

// Has checks if a tool set exists in the registry (thread-safe)
func (r *ToolSetRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.toolSets[name]
	return exists
}

// Names returns a sorted list of all configured tool set names.
func (r *ToolSetRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.toolSets))
	for name := range r.toolSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tool sets in the registry (thread-safe)
func (r *ToolSetRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.toolSets)
}

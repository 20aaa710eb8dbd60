// Package llm provides a provider-neutral client surface over the Anthropic,
// OpenAI, and Gemini APIs. A Router builds provider clients from
// configuration and resolves "provider:model" references; WithRetry adds
// transient-failure retries with exponential backoff on top of any Provider.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Stop reasons normalized across providers. Providers that use different
// vocabulary (OpenAI "stop"/"length", Gemini "STOP"/"MAX_TOKENS") are mapped
// into these; unrecognized reasons pass through verbatim.
const (
	StopReasonEndTurn      = "end_turn"
	StopReasonMaxTokens    = "max_tokens"
	StopReasonToolUse      = "tool_use"
	StopReasonStopSequence = "stop_sequence"
)

// defaultMaxOutputTokens bounds completions when neither the request nor the
// provider configuration sets a cap.
const defaultMaxOutputTokens = 4096

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult carries the outcome of a tool call back to the model.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Name       string `json:"name,omitempty"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}

// Message is one turn of a conversation. Assistant turns may carry tool
// calls; tool turns carry exactly one tool result.
type Message struct {
	Role       Role        `json:"role"`
	Content    string      `json:"content,omitempty"`
	ToolCalls  []ToolCall  `json:"tool_calls,omitempty"`
	ToolResult *ToolResult `json:"tool_result,omitempty"`
}

// UserMessage builds a user text turn.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantMessage builds an assistant turn with optional tool calls.
func AssistantMessage(text string, calls ...ToolCall) Message {
	return Message{Role: RoleAssistant, Content: text, ToolCalls: calls}
}

// ToolResultMessage builds a tool turn answering the given tool call.
func ToolResultMessage(callID, name, content string, isError bool) Message {
	return Message{Role: RoleTool, ToolResult: &ToolResult{
		ToolCallID: callID,
		Name:       name,
		Content:    content,
		IsError:    isError,
	}}
}

// ToolDefinition describes a tool advertised to the model. InputSchema is a
// JSON Schema for the tool arguments.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema,omitempty"`
}

// Usage reports token consumption for one completion.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Add returns the element-wise sum of two usage records.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// Request is a provider-neutral completion request.
type Request struct {
	// System is the system prompt for the call.
	System string

	// Messages is the conversation so far. At least one message is required.
	Messages []Message

	// Tools advertised for this call. Tool names may contain dots
	// ("tool_set.name"); providers that reject dots see a sanitized alias
	// and responses are translated back to the canonical names.
	Tools []ToolDefinition

	// MaxOutputTokens caps the completion length. Zero falls back to the
	// provider configuration, then to a built-in default.
	MaxOutputTokens int

	// Temperature, when positive, overrides the provider default.
	Temperature float64

	// ResponseSchema, when set, constrains the reply to a single JSON
	// object conforming to this JSON Schema. Gemini enforces it natively;
	// Anthropic and OpenAI receive the schema as a system directive
	// (OpenAI additionally in JSON mode). Callers still validate the
	// decoded reply.
	ResponseSchema map[string]any
}

// Response is a provider-neutral completion result.
type Response struct {
	Text       string     `json:"text,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	StopReason string     `json:"stop_reason,omitempty"`
	Usage      Usage      `json:"usage"`
}

// HasToolCalls reports whether the model requested tool invocations.
func (r *Response) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// Provider executes completion requests against one configured model.
// Implementations are safe for concurrent use.
type Provider interface {
	// Name returns the configured provider name (registry key).
	Name() string

	// Model returns the concrete model identifier.
	Model() string

	// Generate executes one completion request.
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// ErrRateLimited marks provider rate limiting (HTTP 429 and overload
// responses). Wrapped into returned errors so callers can test with
// errors.Is.
var ErrRateLimited = errors.New("llm: rate limited")

// ProviderError wraps a failed provider call with enough context for retry
// and error-classification decisions upstream.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Provider, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether a failed call is worth repeating. Rate limits
// and transport failures are; cancellation and provider 4xx rejections are
// not. Unknown errors default to retryable so flaky networks do not fail
// jobs permanently.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return true
}

// sanitizeToolName maps a canonical tool name to a provider-safe identifier.
// Anthropic and OpenAI constrain tool names to [a-zA-Z0-9_-]{1,64}, which
// excludes the dot separating a tool set prefix from the tool name.
func sanitizeToolName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if len(s) > 64 {
		s = s[:64]
	}
	if s == "" {
		s = "tool"
	}
	return s
}

// toolNameMaps builds the canonical-to-provider and provider-to-canonical
// name maps for a tool list. Two tools collapsing onto the same sanitized
// name is a configuration error surfaced before any request is sent.
func toolNameMaps(defs []ToolDefinition) (canonToProv, provToCanon map[string]string, err error) {
	if len(defs) == 0 {
		return nil, nil, nil
	}
	canonToProv = make(map[string]string, len(defs))
	provToCanon = make(map[string]string, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, nil, errors.New("llm: tool definition missing name")
		}
		sanitized := sanitizeToolName(def.Name)
		if prev, ok := provToCanon[sanitized]; ok && prev != def.Name {
			return nil, nil, fmt.Errorf("llm: tools %q and %q collide on sanitized name %q", prev, def.Name, sanitized)
		}
		canonToProv[def.Name] = sanitized
		provToCanon[sanitized] = def.Name
	}
	return canonToProv, provToCanon, nil
}

// schemaDirective renders the response-format instruction used by providers
// without native JSON Schema enforcement.
func schemaDirective(schema map[string]any) (string, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("marshaling response schema: %w", err)
	}
	return "Respond with a single JSON object conforming to this JSON Schema. " +
		"Output only the JSON object, with no surrounding prose and no code fences.\n\n" + string(data), nil
}

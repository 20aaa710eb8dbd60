package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/llm"
)

// Executor resolves qualified tool calls from the model against the tool sets
// scoped to a single run and executes them through the shared MCP client.
//
// Tool failures are returned as error results (IsError=true), never as Go
// errors: the model sees the failure text and can adjust, while the step
// keeps running. Only the transport layer underneath retries.
type Executor struct {
	client   *Client
	registry *config.ToolSetRegistry
	setNames []string

	// prefixToSet maps the qualified-name prefix back to the tool set it
	// belongs to. Usually identity, unless a set declares tool_prefix.
	prefixToSet map[string]string

	logger *slog.Logger
}

// NewExecutor scopes an executor to the given tool sets. The executor takes
// ownership of the client: Close tears down its sessions.
func NewExecutor(client *Client, registry *config.ToolSetRegistry, setNames []string) *Executor {
	prefixToSet := make(map[string]string, len(setNames))
	for _, setName := range setNames {
		prefix := setName
		if cfg, err := registry.Get(setName); err == nil {
			prefix = cfg.Prefix(setName)
		}
		if existing, ok := prefixToSet[prefix]; ok && existing != setName {
			slog.Warn("duplicate tool prefix, later tool set shadows earlier",
				"prefix", prefix, "kept", setName, "shadowed", existing)
		}
		prefixToSet[prefix] = setName
	}
	return &Executor{
		client:      client,
		registry:    registry,
		setNames:    setNames,
		prefixToSet: prefixToSet,
		logger:      slog.Default().With("component", "tool_executor"),
	}
}

// ListTools returns the qualified tool definitions across all scoped tool
// sets, in the form the LLM providers advertise to the model. Tool sets that
// fail to list are skipped with a warning so one degraded set does not take
// the whole step down.
func (e *Executor) ListTools(ctx context.Context) ([]llm.ToolDefinition, error) {
	var defs []llm.ToolDefinition
	var failed []string

	for _, setName := range e.setNames {
		tools, err := e.client.ListTools(ctx, setName)
		if err != nil {
			e.logger.WarnContext(ctx, "failed to list tools, skipping tool set",
				"tool_set", setName, "error", err)
			failed = append(failed, setName)
			continue
		}
		prefix := e.prefixFor(setName)
		for _, tool := range tools {
			defs = append(defs, llm.ToolDefinition{
				Name:        QualifyToolName(prefix, tool.Name),
				Description: tool.Description,
				InputSchema: schemaToMap(tool.InputSchema),
			})
		}
	}

	if len(defs) == 0 && len(failed) > 0 {
		return nil, fmt.Errorf("no tools available: all tool sets failed (%s)", strings.Join(failed, ", "))
	}
	return defs, nil
}

// Execute runs a single qualified tool call and returns its result. All
// failures (bad name, unknown set, transport errors, tool-side errors) come
// back as IsError results with a nil Go error.
func (e *Executor) Execute(ctx context.Context, call llm.ToolCall) (*llm.ToolResult, error) {
	prefix, toolName, err := SplitToolName(call.Name)
	if err != nil {
		return e.errorResult(call, err.Error()), nil
	}

	setName, ok := e.prefixToSet[prefix]
	if !ok {
		return e.errorResult(call, fmt.Sprintf(
			"tool set %q is not available for this step. Available tool sets: %s",
			prefix, strings.Join(e.prefixes(), ", "))), nil
	}

	args := resolveArgs(call.Args)

	result, err := e.client.Call(ctx, setName, toolName, args)
	if err != nil {
		e.logger.WarnContext(ctx, "tool call failed",
			"tool_set", setName, "tool", toolName, "error", err)
		return e.errorResult(call, fmt.Sprintf("tool call failed: %s", err)), nil
	}

	return &llm.ToolResult{
		ToolCallID: call.ID,
		Name:       call.Name,
		Content:    extractTextContent(result),
		IsError:    result.IsError,
	}, nil
}

// Instructions composes the per-tool-set usage guidance from configuration
// into sections ready to append to a step's system prompt. Empty when no
// scoped set declares instructions.
func (e *Executor) Instructions() string {
	var sections []string
	for _, setName := range e.setNames {
		cfg, err := e.registry.Get(setName)
		if err != nil || cfg.Instructions == "" {
			continue
		}
		sections = append(sections, "## "+setName+" Tools\n\n"+strings.TrimSpace(cfg.Instructions))
	}
	return strings.Join(sections, "\n\n")
}

// SetNames returns the tool sets this executor is scoped to.
func (e *Executor) SetNames() []string {
	return e.setNames
}

// Close tears down the underlying client sessions.
func (e *Executor) Close() error {
	return e.client.Close()
}

func (e *Executor) errorResult(call llm.ToolCall, msg string) *llm.ToolResult {
	return &llm.ToolResult{
		ToolCallID: call.ID,
		Name:       call.Name,
		Content:    msg,
		IsError:    true,
	}
}

func (e *Executor) prefixFor(setName string) string {
	if cfg, err := e.registry.Get(setName); err == nil {
		return cfg.Prefix(setName)
	}
	return setName
}

func (e *Executor) prefixes() []string {
	out := make([]string, 0, len(e.prefixToSet))
	for prefix := range e.prefixToSet {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out
}

// resolveArgs normalizes model-emitted arguments. Providers hand us a
// decoded object in the common case; the single-key {"raw": "..."} shape
// carries a payload that failed strict decoding and goes through the
// salvage cascade.
func resolveArgs(args map[string]any) map[string]any {
	if len(args) == 1 {
		if raw, ok := args["raw"].(string); ok {
			parsed, _ := ParseArguments(raw)
			return parsed
		}
	}
	if args == nil {
		return map[string]any{}
	}
	return args
}

// extractTextContent flattens a tool result into the text the model sees.
// Non-text content blocks are skipped; MCP tools in this system return text.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcpsdk.TextContent); ok {
			parts = append(parts, text.Text)
		} else {
			slog.Debug("skipping non-text content block in tool result",
				"type", fmt.Sprintf("%T", content))
		}
	}
	return strings.Join(parts, "\n")
}

// schemaToMap converts an SDK-provided input schema into the generic map
// shape the LLM adapters serialize. Unusable schemas degrade to a permissive
// object so the tool stays callable.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	if m, ok := schema.(map[string]any); ok {
		return m
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{"type": "object"}
	}
	return m
}

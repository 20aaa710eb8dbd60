// Package agent drives one LLM run: assemble the conversation, let the model
// call tools until it stops, and return the final output with usage totals.
// Each run is stateless — steps that need prior context pass it in the prompt.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/llm"
	llmschema "github.com/loreweave/loreweave/pkg/llm/schema"
	"github.com/loreweave/loreweave/pkg/mcp"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/prompts"
)

// DefaultMaxToolIterations bounds the tool-calling loop when the input does
// not set its own cap.
const DefaultMaxToolIterations = 12

// ToolExecutor is the capability surface the runtime drives tools through.
// Implemented by mcp.Executor; the interface keeps provider-independent tests
// possible and the package free of a transport dependency at its core.
type ToolExecutor interface {
	// ListTools returns the qualified tool definitions advertised to the model.
	ListTools(ctx context.Context) ([]llm.ToolDefinition, error)

	// Execute runs one tool call. Tool failures come back as IsError results,
	// not Go errors.
	Execute(ctx context.Context, call llm.ToolCall) (*llm.ToolResult, error)

	// Instructions returns usage guidance published by the tool servers,
	// appended to the system prompt when present.
	Instructions() string
}

// Recorder persists call audit rows. Satisfied by services.InteractionService.
// Recording is best-effort: failures are logged and the run continues.
type Recorder interface {
	RecordLLMCall(ctx context.Context, rec models.LLMCallRecord) (*ent.LLMCall, error)
	RecordToolCall(ctx context.Context, rec models.ToolCallRecord) (*ent.ToolCall, error)
}

// RunInput describes one agent run.
type RunInput struct {
	// JobID and StepName identify the run in audit rows and events.
	JobID    string
	StepName string

	// Purpose categorizes the audit rows ("research", "extraction", ...).
	Purpose string

	// SystemPrompt and Prompt are rendered by the caller from templates.
	SystemPrompt string
	Prompt       string

	// Schema, when set, requests a single structured completion: no tools,
	// one call, response validated against the schema.
	Schema map[string]any

	// MaxToolIterations caps the tool loop. Zero means the default.
	MaxToolIterations int
}

// RunResult is the outcome of a completed run.
type RunResult struct {
	// Output is the model's final text.
	Output string

	// Structured is the cleaned JSON payload of a schema run.
	Structured json.RawMessage

	// Usage sums token consumption across every call in the run.
	Usage llm.Usage

	// ToolCalls counts executed tool invocations.
	ToolCalls int

	// Messages is the full exchange, for debugging and token accounting.
	Messages []llm.Message
}

// SchemaViolationError reports a structured run whose output failed schema
// validation. Raw carries the model text so a repair pass can quote it; the
// wrapped error names the failing property and constraint.
type SchemaViolationError struct {
	Raw string
	Err error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("response failed schema validation: %v", e.Err)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Err
}

// Runtime executes agent runs against one provider. Construct one per job:
// the provider is already resolved to the job's model, and the executor is
// scoped to the tool sets the job's steps may use.
type Runtime struct {
	provider llm.Provider
	executor ToolExecutor
	recorder Recorder
	library  *prompts.Library
	logger   *slog.Logger
}

// NewRuntime creates a runtime. executor may be nil for runs that never call
// tools; recorder may be nil to disable auditing.
func NewRuntime(provider llm.Provider, executor ToolExecutor, recorder Recorder, library *prompts.Library) *Runtime {
	return &Runtime{
		provider: provider,
		executor: executor,
		recorder: recorder,
		library:  library,
		logger:   slog.Default().With("component", "agent_runtime"),
	}
}

// Run executes one agent run to completion.
//
// Schema runs make exactly one provider call and validate the reply;
// validation failure returns a SchemaViolationError for the caller's repair
// pass. Tool runs loop until the model stops calling tools or the iteration
// cap forces a conclusion.
//
// When Run returns an error the result is still non-nil and carries the
// usage and messages accumulated before the failure, so callers can settle
// token ledgers at actual consumption.
func (r *Runtime) Run(ctx context.Context, input RunInput) (*RunResult, error) {
	if input.Prompt == "" {
		return &RunResult{}, fmt.Errorf("run input missing prompt")
	}

	if input.Schema != nil {
		return r.runStructured(ctx, input)
	}
	return r.runWithTools(ctx, input)
}

func (r *Runtime) runStructured(ctx context.Context, input RunInput) (*RunResult, error) {
	messages := []llm.Message{llm.UserMessage(input.Prompt)}

	resp, err := r.generate(ctx, input, &llm.Request{
		System:         input.SystemPrompt,
		Messages:       messages,
		ResponseSchema: input.Schema,
	})
	if err != nil {
		return &RunResult{Messages: messages}, err
	}
	messages = append(messages, llm.AssistantMessage(resp.Text))

	result := &RunResult{
		Output:   resp.Text,
		Usage:    resp.Usage,
		Messages: messages,
	}

	cleaned := llmschema.CleanJSON(resp.Text)
	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return result, &SchemaViolationError{Raw: resp.Text, Err: fmt.Errorf("parsing response JSON: %w", err)}
	}
	if err := llmschema.Validate(input.Schema, doc); err != nil {
		return result, &SchemaViolationError{Raw: resp.Text, Err: err}
	}
	result.Structured = json.RawMessage(cleaned)
	return result, nil
}

func (r *Runtime) runWithTools(ctx context.Context, input RunInput) (*RunResult, error) {
	maxIter := input.MaxToolIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxToolIterations
	}

	system := input.SystemPrompt
	var tools []llm.ToolDefinition
	if r.executor != nil {
		var err error
		tools, err = r.executor.ListTools(ctx)
		if err != nil {
			return &RunResult{}, fmt.Errorf("listing tools: %w", err)
		}
		if instructions := r.executor.Instructions(); instructions != "" {
			system = system + "\n\n" + instructions
		}
	}

	messages := []llm.Message{llm.UserMessage(input.Prompt)}
	result := &RunResult{}

	for iteration := 0; iteration < maxIter; iteration++ {
		resp, err := r.generate(ctx, input, &llm.Request{
			System:   system,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			result.Messages = messages
			return result, err
		}
		result.Usage = result.Usage.Add(resp.Usage)

		if !resp.HasToolCalls() {
			messages = append(messages, llm.AssistantMessage(resp.Text))
			result.Output = resp.Text
			result.Messages = messages
			return result, nil
		}

		messages = append(messages, llm.AssistantMessage(resp.Text, resp.ToolCalls...))
		for _, call := range resp.ToolCalls {
			content, isError := r.executeTool(ctx, input, call)
			result.ToolCalls++
			messages = append(messages, llm.ToolResultMessage(call.ID, call.Name, content, isError))
		}
	}

	// Iteration cap: one final call without tools forces a text conclusion.
	conclusion, err := r.library.Render("conclude", map[string]string{
		"iterations": strconv.Itoa(maxIter),
	})
	if err != nil {
		result.Messages = messages
		return result, fmt.Errorf("rendering conclusion prompt: %w", err)
	}
	messages = append(messages, llm.UserMessage(conclusion))

	resp, err := r.generate(ctx, input, &llm.Request{
		System:   system,
		Messages: messages,
	})
	if err != nil {
		result.Messages = messages
		return result, err
	}
	result.Usage = result.Usage.Add(resp.Usage)
	messages = append(messages, llm.AssistantMessage(resp.Text))
	result.Output = resp.Text
	result.Messages = messages
	return result, nil
}

// generate makes one provider call and records it.
func (r *Runtime) generate(ctx context.Context, input RunInput, req *llm.Request) (*llm.Response, error) {
	start := time.Now()
	resp, err := r.provider.Generate(ctx, req)
	duration := int(time.Since(start).Milliseconds())

	rec := models.LLMCallRecord{
		JobID:      input.JobID,
		StepName:   input.StepName,
		Purpose:    input.Purpose,
		Provider:   r.provider.Name(),
		Model:      r.provider.Model(),
		DurationMS: &duration,
	}
	if err != nil {
		msg := err.Error()
		rec.ErrorMessage = &msg
	} else {
		rec.PromptTokens = &resp.Usage.PromptTokens
		rec.CompletionTokens = &resp.Usage.CompletionTokens
		rec.TotalTokens = &resp.Usage.TotalTokens
	}
	r.record(ctx, rec)

	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}
	return resp, nil
}

// executeTool runs one tool call and records it. Failures become error
// results the model sees; they never abort the run.
func (r *Runtime) executeTool(ctx context.Context, input RunInput, call llm.ToolCall) (content string, isError bool) {
	start := time.Now()

	var result *llm.ToolResult
	if r.executor == nil {
		result = &llm.ToolResult{
			ToolCallID: call.ID,
			Name:       call.Name,
			Content:    fmt.Sprintf("Tool %q is not available in this run.", call.Name),
			IsError:    true,
		}
	} else {
		var err error
		result, err = r.executor.Execute(ctx, call)
		if err != nil {
			result = &llm.ToolResult{
				ToolCallID: call.ID,
				Name:       call.Name,
				Content:    fmt.Sprintf("Tool execution failed: %v", err),
				IsError:    true,
			}
		}
	}
	duration := int(time.Since(start).Milliseconds())

	toolSet, toolName, splitErr := mcp.SplitToolName(call.Name)
	if splitErr != nil {
		toolSet, toolName = "unknown", call.Name
	}
	truncated := mcp.TruncateForAudit(result.Content)
	r.recordTool(ctx, models.ToolCallRecord{
		JobID:      input.JobID,
		StepName:   input.StepName,
		ToolSet:    toolSet,
		ToolName:   toolName,
		Arguments:  call.Args,
		ResultText: &truncated,
		IsError:    result.IsError,
		DurationMS: &duration,
	})

	return result.Content, result.IsError
}

func (r *Runtime) record(ctx context.Context, rec models.LLMCallRecord) {
	if r.recorder == nil {
		return
	}
	if _, err := r.recorder.RecordLLMCall(ctx, rec); err != nil {
		r.logger.WarnContext(ctx, "Failed to record LLM call",
			"job_id", rec.JobID, "step", rec.StepName, "error", err)
	}
}

func (r *Runtime) recordTool(ctx context.Context, rec models.ToolCallRecord) {
	if r.recorder == nil {
		return
	}
	if _, err := r.recorder.RecordToolCall(ctx, rec); err != nil {
		r.logger.WarnContext(ctx, "Failed to record tool call",
			"job_id", rec.JobID, "step", rec.StepName, "error", err)
	}
}

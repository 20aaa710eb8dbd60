package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/prompts"
)

type fakeResponse struct {
	resp *llm.Response
	err  error
}

// fakeProvider returns scripted responses in order and captures every
// request, with the message slice snapshotted at call time.
type fakeProvider struct {
	responses []fakeResponse
	calls     []*llm.Request
}

func (f *fakeProvider) Name() string  { return "anthropic" }
func (f *fakeProvider) Model() string { return "claude-sonnet-4-5" }

func (f *fakeProvider) Generate(_ context.Context, req *llm.Request) (*llm.Response, error) {
	idx := len(f.calls)
	snapshot := *req
	snapshot.Messages = append([]llm.Message(nil), req.Messages...)
	f.calls = append(f.calls, &snapshot)

	if idx >= len(f.responses) {
		return nil, fmt.Errorf("no scripted response for call %d", idx+1)
	}
	fr := f.responses[idx]
	if fr.err != nil {
		return nil, fr.err
	}
	return fr.resp, nil
}

type fakeExecutor struct {
	tools        []llm.ToolDefinition
	results      map[string]*llm.ToolResult
	instructions string
	listErr      error
	executed     []llm.ToolCall
}

func (f *fakeExecutor) ListTools(context.Context) ([]llm.ToolDefinition, error) {
	return f.tools, f.listErr
}

func (f *fakeExecutor) Execute(_ context.Context, call llm.ToolCall) (*llm.ToolResult, error) {
	f.executed = append(f.executed, call)
	if res, ok := f.results[call.Name]; ok {
		out := *res
		out.ToolCallID = call.ID
		return &out, nil
	}
	return &llm.ToolResult{
		ToolCallID: call.ID,
		Name:       call.Name,
		Content:    fmt.Sprintf("unknown tool %q", call.Name),
		IsError:    true,
	}, nil
}

func (f *fakeExecutor) Instructions() string { return f.instructions }

type fakeRecorder struct {
	llmCalls  []models.LLMCallRecord
	toolCalls []models.ToolCallRecord
	fail      bool
}

func (f *fakeRecorder) RecordLLMCall(_ context.Context, rec models.LLMCallRecord) (*ent.LLMCall, error) {
	f.llmCalls = append(f.llmCalls, rec)
	if f.fail {
		return nil, errors.New("audit store down")
	}
	return nil, nil
}

func (f *fakeRecorder) RecordToolCall(_ context.Context, rec models.ToolCallRecord) (*ent.ToolCall, error) {
	f.toolCalls = append(f.toolCalls, rec)
	if f.fail {
		return nil, errors.New("audit store down")
	}
	return nil, nil
}

func textResponse(text string, tokens int64) *llm.Response {
	return &llm.Response{
		Text:       text,
		StopReason: llm.StopReasonEndTurn,
		Usage:      llm.Usage{PromptTokens: tokens, CompletionTokens: tokens / 2, TotalTokens: tokens + tokens/2},
	}
}

func toolResponse(calls ...llm.ToolCall) *llm.Response {
	return &llm.Response{
		ToolCalls:  calls,
		StopReason: llm.StopReasonToolUse,
		Usage:      llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}
}

func researchInput() RunInput {
	return RunInput{
		JobID:        "job-1",
		StepName:     "npc_research",
		Purpose:      "research",
		SystemPrompt: "You research game zones.",
		Prompt:       "Research the NPCs of Emberfall Reach.",
	}
}

func TestRuntime_Run_TextCompletion(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: textResponse("Maro keeps the lighthouse.", 200)},
	}}
	recorder := &fakeRecorder{}
	runtime := NewRuntime(provider, nil, recorder, prompts.MustLoad())

	result, err := runtime.Run(context.Background(), researchInput())
	require.NoError(t, err)
	assert.Equal(t, "Maro keeps the lighthouse.", result.Output)
	assert.Equal(t, int64(300), result.Usage.TotalTokens)
	assert.Zero(t, result.ToolCalls)

	require.Len(t, result.Messages, 2)
	assert.Equal(t, llm.RoleUser, result.Messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, result.Messages[1].Role)

	require.Len(t, recorder.llmCalls, 1)
	rec := recorder.llmCalls[0]
	assert.Equal(t, "job-1", rec.JobID)
	assert.Equal(t, "research", rec.Purpose)
	assert.Equal(t, "anthropic", rec.Provider)
	require.NotNil(t, rec.TotalTokens)
	assert.Equal(t, int64(300), *rec.TotalTokens)
	assert.Nil(t, rec.ErrorMessage)
}

func TestRuntime_Run_ToolLoop(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: toolResponse(
			llm.ToolCall{ID: "tc-1", Name: "search.web_search", Args: map[string]any{"query": "Emberfall NPCs"}},
			llm.ToolCall{ID: "tc-2", Name: "search.fetch_page", Args: map[string]any{"uri": "wiki/emberfall"}},
		)},
		{resp: textResponse("Report: two NPCs found.", 400)},
	}}
	executor := &fakeExecutor{
		tools: []llm.ToolDefinition{
			{Name: "search.web_search", Description: "Search indexed lore"},
			{Name: "search.fetch_page", Description: "Fetch a page"},
		},
		results: map[string]*llm.ToolResult{
			"search.web_search": {Name: "search.web_search", Content: "3 results"},
			"search.fetch_page": {Name: "search.fetch_page", Content: "page unavailable", IsError: true},
		},
	}
	recorder := &fakeRecorder{}
	runtime := NewRuntime(provider, executor, recorder, prompts.MustLoad())

	result, err := runtime.Run(context.Background(), researchInput())
	require.NoError(t, err)
	assert.Equal(t, "Report: two NPCs found.", result.Output)
	assert.Equal(t, 2, result.ToolCalls)
	// 150 from the tool turn + 600 from the final turn
	assert.Equal(t, int64(750), result.Usage.TotalTokens)

	// conversation: user, assistant+calls, two tool results, final assistant
	require.Len(t, result.Messages, 5)
	assert.Equal(t, llm.RoleTool, result.Messages[2].Role)
	require.NotNil(t, result.Messages[2].ToolResult)
	assert.Equal(t, "3 results", result.Messages[2].ToolResult.Content)
	require.NotNil(t, result.Messages[3].ToolResult)
	assert.True(t, result.Messages[3].ToolResult.IsError)

	// both provider calls advertised the tool surface
	require.Len(t, provider.calls, 2)
	assert.Len(t, provider.calls[0].Tools, 2)
	assert.Len(t, provider.calls[1].Tools, 2)

	// executor saw canonical qualified names
	require.Len(t, executor.executed, 2)
	assert.Equal(t, "search.web_search", executor.executed[0].Name)

	// audit: two provider calls, two tool calls with split set/tool names
	assert.Len(t, recorder.llmCalls, 2)
	require.Len(t, recorder.toolCalls, 2)
	assert.Equal(t, "search", recorder.toolCalls[0].ToolSet)
	assert.Equal(t, "web_search", recorder.toolCalls[0].ToolName)
	assert.False(t, recorder.toolCalls[0].IsError)
	assert.True(t, recorder.toolCalls[1].IsError)
}

func TestRuntime_Run_IterationCapForcesConclusion(t *testing.T) {
	call := llm.ToolCall{ID: "tc", Name: "search.web_search", Args: map[string]any{"query": "more"}}
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: toolResponse(call)},
		{resp: toolResponse(call)},
		{resp: textResponse("Concluding with what I have.", 100)},
	}}
	executor := &fakeExecutor{
		tools:   []llm.ToolDefinition{{Name: "search.web_search"}},
		results: map[string]*llm.ToolResult{"search.web_search": {Content: "result"}},
	}
	runtime := NewRuntime(provider, executor, &fakeRecorder{}, prompts.MustLoad())

	input := researchInput()
	input.MaxToolIterations = 2

	result, err := runtime.Run(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Concluding with what I have.", result.Output)
	assert.Equal(t, 2, result.ToolCalls)

	// the conclusion call goes out without tools, after an extra user turn
	require.Len(t, provider.calls, 3)
	assert.Empty(t, provider.calls[2].Tools)
	last := provider.calls[2].Messages[len(provider.calls[2].Messages)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.NotEmpty(t, last.Content)
}

func TestRuntime_Run_Structured(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: textResponse("```json\n{\"name\": \"Emberfall Reach\"}\n```", 120)},
	}}
	runtime := NewRuntime(provider, nil, &fakeRecorder{}, prompts.MustLoad())

	input := researchInput()
	input.Purpose = "extraction"
	input.Schema = map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"name": map[string]any{"type": "string"}},
		"required":             []any{"name"},
		"additionalProperties": false,
	}

	result, err := runtime.Run(context.Background(), input)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Emberfall Reach"}`, string(result.Structured))

	// structured runs are a single call with the schema and no tools
	require.Len(t, provider.calls, 1)
	assert.NotNil(t, provider.calls[0].ResponseSchema)
	assert.Empty(t, provider.calls[0].Tools)
}

func TestRuntime_Run_StructuredViolation(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: textResponse(`{"wrong": true}`, 80)},
	}}
	runtime := NewRuntime(provider, nil, &fakeRecorder{}, prompts.MustLoad())

	input := researchInput()
	input.Purpose = "extraction"
	input.Schema = map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"name": map[string]any{"type": "string"}},
		"required":             []any{"name"},
		"additionalProperties": false,
	}

	result, err := runtime.Run(context.Background(), input)
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, `{"wrong": true}`, violation.Raw)

	// the result still carries what the run consumed, for budget settling
	require.NotNil(t, result)
	assert.Equal(t, int64(120), result.Usage.TotalTokens)
	assert.Nil(t, result.Structured)
}

func TestRuntime_Run_ProviderError(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{err: &llm.ProviderError{Provider: "anthropic", Operation: "generate", StatusCode: 529, Retryable: true, Err: errors.New("overloaded")}},
	}}
	recorder := &fakeRecorder{}
	runtime := NewRuntime(provider, nil, recorder, prompts.MustLoad())

	result, err := runtime.Run(context.Background(), researchInput())
	require.Error(t, err)
	require.NotNil(t, result)

	var pe *llm.ProviderError
	assert.ErrorAs(t, err, &pe)

	// the failed call is still audited, with its error message
	require.Len(t, recorder.llmCalls, 1)
	require.NotNil(t, recorder.llmCalls[0].ErrorMessage)
	assert.Nil(t, recorder.llmCalls[0].TotalTokens)
}

func TestRuntime_Run_RecorderFailuresDoNotAbort(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: toolResponse(llm.ToolCall{ID: "tc", Name: "search.web_search"})},
		{resp: textResponse("done", 50)},
	}}
	executor := &fakeExecutor{
		tools:   []llm.ToolDefinition{{Name: "search.web_search"}},
		results: map[string]*llm.ToolResult{"search.web_search": {Content: "ok"}},
	}
	runtime := NewRuntime(provider, executor, &fakeRecorder{fail: true}, prompts.MustLoad())

	result, err := runtime.Run(context.Background(), researchInput())
	require.NoError(t, err)
	assert.Equal(t, "done", result.Output)
}

func TestRuntime_Run_AppendsExecutorInstructions(t *testing.T) {
	provider := &fakeProvider{responses: []fakeResponse{
		{resp: textResponse("report", 50)},
	}}
	executor := &fakeExecutor{
		tools:        []llm.ToolDefinition{{Name: "search.web_search"}},
		instructions: "Rate limit: one search per second.",
	}
	runtime := NewRuntime(provider, executor, nil, prompts.MustLoad())

	input := researchInput()
	_, err := runtime.Run(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, provider.calls, 1)
	assert.Contains(t, provider.calls[0].System, input.SystemPrompt)
	assert.Contains(t, provider.calls[0].System, "Rate limit: one search per second.")
}

func TestRuntime_Run_ListToolsFailure(t *testing.T) {
	provider := &fakeProvider{}
	executor := &fakeExecutor{listErr: errors.New("tool server unreachable")}
	runtime := NewRuntime(provider, executor, nil, prompts.MustLoad())

	_, err := runtime.Run(context.Background(), researchInput())
	require.Error(t, err)
	assert.Empty(t, provider.calls)
}

func TestRuntime_Run_RequiresPrompt(t *testing.T) {
	runtime := NewRuntime(&fakeProvider{}, nil, nil, prompts.MustLoad())
	_, err := runtime.Run(context.Background(), RunInput{JobID: "job-1"})
	assert.Error(t, err)
}

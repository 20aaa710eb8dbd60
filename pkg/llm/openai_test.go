package llm

import (
	"context"
	"errors"
	"testing"

	oa "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatAPI struct {
	lastReq oa.ChatCompletionRequest
	resp    oa.ChatCompletionResponse
	err     error
	calls   int
}

func (f *fakeChatAPI) CreateChatCompletion(_ context.Context, req oa.ChatCompletionRequest) (oa.ChatCompletionResponse, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

func newTestOpenAI(fake *fakeChatAPI) *OpenAIProvider {
	return &OpenAIProvider{api: fake, name: "openai", model: "gpt-4o", maxTokens: 256}
}

func textCompletion(text string, reason oa.FinishReason) oa.ChatCompletionResponse {
	return oa.ChatCompletionResponse{
		Choices: []oa.ChatCompletionChoice{{
			Message:      oa.ChatCompletionMessage{Role: oa.ChatMessageRoleAssistant, Content: text},
			FinishReason: reason,
		}},
		Usage: oa.Usage{PromptTokens: 30, CompletionTokens: 8, TotalTokens: 38},
	}
}

func TestOpenAIGenerate_TextOnly(t *testing.T) {
	fake := &fakeChatAPI{resp: textCompletion("world", oa.FinishReasonStop)}
	p := newTestOpenAI(fake)

	resp, err := p.Generate(context.Background(), &Request{
		System:   "You are a researcher.",
		Messages: []Message{UserMessage("hello")},
	})
	require.NoError(t, err)

	assert.Equal(t, "world", resp.Text)
	assert.Equal(t, StopReasonEndTurn, resp.StopReason)
	assert.Equal(t, int64(30), resp.Usage.PromptTokens)
	assert.Equal(t, int64(8), resp.Usage.CompletionTokens)
	assert.Equal(t, int64(38), resp.Usage.TotalTokens)

	assert.Equal(t, "gpt-4o", fake.lastReq.Model)
	assert.Equal(t, 256, fake.lastReq.MaxTokens)
	require.Len(t, fake.lastReq.Messages, 2)
	assert.Equal(t, oa.ChatMessageRoleSystem, fake.lastReq.Messages[0].Role)
	assert.Equal(t, "You are a researcher.", fake.lastReq.Messages[0].Content)
	assert.Equal(t, oa.ChatMessageRoleUser, fake.lastReq.Messages[1].Role)
}

func TestOpenAIGenerate_ToolRoundTrip(t *testing.T) {
	fake := &fakeChatAPI{resp: oa.ChatCompletionResponse{
		Choices: []oa.ChatCompletionChoice{{
			Message: oa.ChatCompletionMessage{
				Role: oa.ChatMessageRoleAssistant,
				ToolCalls: []oa.ToolCall{{
					ID:       "call_9",
					Type:     oa.ToolTypeFunction,
					Function: oa.FunctionCall{Name: "search_web_search", Arguments: `{"query":"factions"}`},
				}},
			},
			FinishReason: oa.FinishReasonToolCalls,
		}},
		Usage: oa.Usage{PromptTokens: 50, CompletionTokens: 20, TotalTokens: 70},
	}}
	p := newTestOpenAI(fake)

	resp, err := p.Generate(context.Background(), &Request{
		Messages: []Message{
			UserMessage("research"),
			AssistantMessage("", ToolCall{ID: "call_1", Name: "search.web_search", Args: map[string]any{"query": "npcs"}}),
			ToolResultMessage("call_1", "search.web_search", "three results", false),
		},
		Tools: []ToolDefinition{{
			Name:        "search.web_search",
			Description: "Web search",
			InputSchema: map[string]any{"type": "object"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, fake.lastReq.Tools, 1)
	require.NotNil(t, fake.lastReq.Tools[0].Function)
	assert.Equal(t, "search_web_search", fake.lastReq.Tools[0].Function.Name)

	require.Len(t, fake.lastReq.Messages, 3)
	assistant := fake.lastReq.Messages[1]
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "search_web_search", assistant.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"query":"npcs"}`, assistant.ToolCalls[0].Function.Arguments)
	toolMsg := fake.lastReq.Messages[2]
	assert.Equal(t, oa.ChatMessageRoleTool, toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	assert.Equal(t, "three results", toolMsg.Content)

	assert.Equal(t, StopReasonToolUse, resp.StopReason)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_9", resp.ToolCalls[0].ID)
	assert.Equal(t, "search.web_search", resp.ToolCalls[0].Name)
	assert.Equal(t, "factions", resp.ToolCalls[0].Args["query"])
}

func TestOpenAIGenerate_SchemaEnablesJSONMode(t *testing.T) {
	fake := &fakeChatAPI{resp: textCompletion(`{"name":"x"}`, oa.FinishReasonStop)}
	p := newTestOpenAI(fake)

	_, err := p.Generate(context.Background(), &Request{
		Messages:       []Message{UserMessage("extract")},
		ResponseSchema: map[string]any{"type": "object"},
	})
	require.NoError(t, err)

	require.NotNil(t, fake.lastReq.ResponseFormat)
	assert.Equal(t, oa.ChatCompletionResponseFormatTypeJSONObject, fake.lastReq.ResponseFormat.Type)
	require.NotEmpty(t, fake.lastReq.Messages)
	assert.Equal(t, oa.ChatMessageRoleSystem, fake.lastReq.Messages[0].Role)
	assert.Contains(t, fake.lastReq.Messages[0].Content, "single JSON object")
}

func TestOpenAIGenerate_LengthStop(t *testing.T) {
	fake := &fakeChatAPI{resp: textCompletion("truncat", oa.FinishReasonLength)}
	p := newTestOpenAI(fake)

	resp, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.NoError(t, err)
	assert.Equal(t, StopReasonMaxTokens, resp.StopReason)
}

func TestParseToolArguments(t *testing.T) {
	args := parseToolArguments(`{"query":"lore","limit":3}`)
	assert.Equal(t, "lore", args["query"])
	assert.Equal(t, float64(3), args["limit"])

	assert.Empty(t, parseToolArguments(""))

	malformed := parseToolArguments(`{"query": unterminated`)
	assert.Equal(t, `{"query": unterminated`, malformed["raw"])
}

func TestOpenAIGenerate_NoChoicesFails(t *testing.T) {
	fake := &fakeChatAPI{resp: oa.ChatCompletionResponse{}}
	p := newTestOpenAI(fake)

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIGenerate_ErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		rateLimited bool
		retryable   bool
	}{
		{
			name:        "429 is rate limited",
			err:         &oa.APIError{HTTPStatusCode: 429, Message: "slow down"},
			rateLimited: true,
			retryable:   true,
		},
		{
			name:      "400 is permanent",
			err:       &oa.APIError{HTTPStatusCode: 400, Message: "bad request"},
			retryable: false,
		},
		{
			name:      "503 is retryable",
			err:       &oa.APIError{HTTPStatusCode: 503, Message: "overloaded"},
			retryable: true,
		},
		{
			name:      "transport error is retryable",
			err:       errors.New("connection refused"),
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeChatAPI{err: tt.err}
			p := newTestOpenAI(fake)

			_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
			require.Error(t, err)
			assert.Equal(t, tt.rateLimited, errors.Is(err, ErrRateLimited))
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestNewOpenAIProvider_AllowsKeylessBaseURL(t *testing.T) {
	_, err := NewOpenAIProvider("local", "llama3", ProviderOptions{})
	require.Error(t, err)

	p, err := NewOpenAIProvider("local", "llama3", ProviderOptions{BaseURL: "http://localhost:11434/v1"})
	require.NoError(t, err)
	assert.Equal(t, "local", p.Name())
	assert.Equal(t, "llama3", p.Model())
}

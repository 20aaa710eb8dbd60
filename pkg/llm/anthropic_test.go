package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagesAPI struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
	calls      int
}

func (f *fakeMessagesAPI) New(_ context.Context, params sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	f.calls++
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestAnthropic(fake *fakeMessagesAPI) *AnthropicProvider {
	return &AnthropicProvider{api: fake, name: "anthropic", model: "claude-sonnet-4-5", maxTokens: 128}
}

func textMessage(text string) *sdk.Message {
	return &sdk.Message{
		Content:    []sdk.ContentBlockUnion{{Type: "text", Text: text}},
		StopReason: sdk.StopReasonEndTurn,
		Usage:      sdk.Usage{InputTokens: 10, OutputTokens: 5},
	}
}

func TestAnthropicGenerate_TextOnly(t *testing.T) {
	fake := &fakeMessagesAPI{resp: textMessage("world")}
	p := newTestAnthropic(fake)

	resp, err := p.Generate(context.Background(), &Request{
		System:   "You are a researcher.",
		Messages: []Message{UserMessage("hello")},
	})
	require.NoError(t, err)

	assert.Equal(t, "world", resp.Text)
	assert.Empty(t, resp.ToolCalls)
	assert.Equal(t, StopReasonEndTurn, resp.StopReason)
	assert.Equal(t, int64(10), resp.Usage.PromptTokens)
	assert.Equal(t, int64(5), resp.Usage.CompletionTokens)
	assert.Equal(t, int64(15), resp.Usage.TotalTokens)

	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), fake.lastParams.Model)
	assert.Equal(t, int64(128), fake.lastParams.MaxTokens)
	require.Len(t, fake.lastParams.System, 1)
	assert.Equal(t, "You are a researcher.", fake.lastParams.System[0].Text)
	require.Len(t, fake.lastParams.Messages, 1)
}

func TestAnthropicGenerate_MaxTokensPrecedence(t *testing.T) {
	fake := &fakeMessagesAPI{resp: textMessage("ok")}
	p := newTestAnthropic(fake)

	_, err := p.Generate(context.Background(), &Request{
		Messages:        []Message{UserMessage("hi")},
		MaxOutputTokens: 64,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(64), fake.lastParams.MaxTokens)

	p.maxTokens = 0
	_, err = p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.NoError(t, err)
	assert.Equal(t, int64(defaultMaxOutputTokens), fake.lastParams.MaxTokens)
}

func TestAnthropicGenerate_SchemaDirectiveAppendedToSystem(t *testing.T) {
	fake := &fakeMessagesAPI{resp: textMessage(`{"name":"Ashenvale"}`)}
	p := newTestAnthropic(fake)

	_, err := p.Generate(context.Background(), &Request{
		System:   "Extract entities.",
		Messages: []Message{UserMessage("go")},
		ResponseSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"name": map[string]any{"type": "string"}},
		},
	})
	require.NoError(t, err)

	require.Len(t, fake.lastParams.System, 2)
	assert.Equal(t, "Extract entities.", fake.lastParams.System[0].Text)
	assert.Contains(t, fake.lastParams.System[1].Text, "single JSON object")
	assert.Contains(t, fake.lastParams.System[1].Text, `"name"`)
}

func TestAnthropicGenerate_ToolRoundTrip(t *testing.T) {
	input, err := json.Marshal(map[string]any{"query": "ashenvale ruins"})
	require.NoError(t, err)

	fake := &fakeMessagesAPI{resp: &sdk.Message{
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "Searching."},
			{Type: "tool_use", ID: "toolu_1", Name: "search_web_search", Input: json.RawMessage(input)},
		},
		StopReason: sdk.StopReasonToolUse,
		Usage:      sdk.Usage{InputTokens: 20, OutputTokens: 12},
	}}
	p := newTestAnthropic(fake)

	resp, err := p.Generate(context.Background(), &Request{
		Messages: []Message{UserMessage("research the zone")},
		Tools: []ToolDefinition{{
			Name:        "search.web_search",
			Description: "Web search",
			InputSchema: map[string]any{"type": "object"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, fake.lastParams.Tools, 1)
	require.NotNil(t, fake.lastParams.Tools[0].OfTool)
	assert.Equal(t, "search_web_search", fake.lastParams.Tools[0].OfTool.Name)

	assert.Equal(t, "Searching.", resp.Text)
	assert.Equal(t, StopReasonToolUse, resp.StopReason)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "toolu_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "search.web_search", resp.ToolCalls[0].Name, "sanitized name translates back")
	assert.Equal(t, "ashenvale ruins", resp.ToolCalls[0].Args["query"])
}

func TestAnthropicGenerate_CoalescesToolResults(t *testing.T) {
	fake := &fakeMessagesAPI{resp: textMessage("done")}
	p := newTestAnthropic(fake)

	calls := []ToolCall{
		{ID: "toolu_1", Name: "search.web_search", Args: map[string]any{"query": "npcs"}},
		{ID: "toolu_2", Name: "crawl.fetch_page", Args: map[string]any{"url": "https://example.com"}},
	}
	_, err := p.Generate(context.Background(), &Request{
		Messages: []Message{
			UserMessage("research"),
			AssistantMessage("", calls...),
			ToolResultMessage("toolu_1", "search.web_search", "results", false),
			ToolResultMessage("toolu_2", "crawl.fetch_page", "page body", false),
			UserMessage("continue"),
		},
		Tools: []ToolDefinition{
			{Name: "search.web_search", Description: "search", InputSchema: map[string]any{"type": "object"}},
			{Name: "crawl.fetch_page", Description: "fetch", InputSchema: map[string]any{"type": "object"}},
		},
	})
	require.NoError(t, err)

	// user, assistant, one coalesced tool-result user message, user.
	require.Len(t, fake.lastParams.Messages, 4)
	assert.Equal(t, "user", string(fake.lastParams.Messages[0].Role))
	assert.Equal(t, "assistant", string(fake.lastParams.Messages[1].Role))
	assert.Equal(t, "user", string(fake.lastParams.Messages[2].Role))
	assert.Len(t, fake.lastParams.Messages[2].Content, 2)
	assert.Equal(t, "user", string(fake.lastParams.Messages[3].Role))
}

func TestAnthropicGenerate_SystemMessagesJoinSystemPrompt(t *testing.T) {
	fake := &fakeMessagesAPI{resp: textMessage("ok")}
	p := newTestAnthropic(fake)

	_, err := p.Generate(context.Background(), &Request{
		System: "base",
		Messages: []Message{
			{Role: RoleSystem, Content: "extra"},
			UserMessage("hi"),
		},
	})
	require.NoError(t, err)

	require.Len(t, fake.lastParams.System, 2)
	assert.Equal(t, "base", fake.lastParams.System[0].Text)
	assert.Equal(t, "extra", fake.lastParams.System[1].Text)
	require.Len(t, fake.lastParams.Messages, 1)
}

func TestAnthropicGenerate_EmptyMessagesFails(t *testing.T) {
	p := newTestAnthropic(&fakeMessagesAPI{})

	_, err := p.Generate(context.Background(), &Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messages are required")
}

func TestAnthropicGenerate_RateLimitedPassthrough(t *testing.T) {
	fake := &fakeMessagesAPI{err: fmt.Errorf("upstream: %w", ErrRateLimited)}
	p := newTestAnthropic(fake)

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.True(t, IsRetryable(err))
}

func TestAnthropicGenerate_TransportErrorRetryable(t *testing.T) {
	fake := &fakeMessagesAPI{err: errors.New("connection reset")}
	p := newTestAnthropic(fake)

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "anthropic", pe.Provider)
	assert.True(t, pe.Retryable)
}

func TestNewAnthropicProvider_RequiresKeyAndModel(t *testing.T) {
	_, err := NewAnthropicProvider("anthropic", "claude-sonnet-4-5", ProviderOptions{})
	require.Error(t, err)

	_, err = NewAnthropicProvider("anthropic", "", ProviderOptions{APIKey: "test-key"})
	require.Error(t, err)

	p, err := NewAnthropicProvider("anthropic", "claude-sonnet-4-5", ProviderOptions{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
	assert.Equal(t, "claude-sonnet-4-5", p.Model())
}

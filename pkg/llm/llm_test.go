package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeToolName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name unchanged",
			input:    "web_search",
			expected: "web_search",
		},
		{
			name:     "tool set prefix dot replaced",
			input:    "search.web_search",
			expected: "search_web_search",
		},
		{
			name:     "spaces and slashes replaced",
			input:    "fetch page/content now",
			expected: "fetch_page_content_now",
		},
		{
			name:     "hyphens kept",
			input:    "lore-archive.dig",
			expected: "lore-archive_dig",
		},
		{
			name:     "empty falls back",
			input:    "",
			expected: "tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeToolName(tt.input))
		})
	}
}

func TestSanitizeToolName_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := sanitizeToolName(long)
	assert.Len(t, got, 64)
}

func TestToolNameMaps(t *testing.T) {
	canonToProv, provToCanon, err := toolNameMaps([]ToolDefinition{
		{Name: "search.web_search", Description: "search"},
		{Name: "crawl.fetch_page", Description: "fetch"},
	})
	require.NoError(t, err)

	assert.Equal(t, "search_web_search", canonToProv["search.web_search"])
	assert.Equal(t, "crawl_fetch_page", canonToProv["crawl.fetch_page"])
	assert.Equal(t, "search.web_search", provToCanon["search_web_search"])
	assert.Equal(t, "crawl.fetch_page", provToCanon["crawl_fetch_page"])
}

func TestToolNameMaps_CollisionFails(t *testing.T) {
	_, _, err := toolNameMaps([]ToolDefinition{
		{Name: "search.web", Description: "a"},
		{Name: "search_web", Description: "b"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collide")
}

func TestToolNameMaps_MissingNameFails(t *testing.T) {
	_, _, err := toolNameMaps([]ToolDefinition{{Description: "anonymous"}})
	require.Error(t, err)
}

func TestToolNameMaps_EmptyListIsNil(t *testing.T) {
	canonToProv, provToCanon, err := toolNameMaps(nil)
	require.NoError(t, err)
	assert.Nil(t, canonToProv)
	assert.Nil(t, provToCanon)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "cancellation is not retryable",
			err:      context.Canceled,
			expected: false,
		},
		{
			name:     "deadline expiry is retryable",
			err:      context.DeadlineExceeded,
			expected: true,
		},
		{
			name:     "rate limit is retryable",
			err:      errors.Join(ErrRateLimited, errors.New("429")),
			expected: true,
		},
		{
			name:     "provider rejection is not retryable",
			err:      &ProviderError{Provider: "openai", StatusCode: 400, Retryable: false, Err: errors.New("bad request")},
			expected: false,
		},
		{
			name:     "provider outage is retryable",
			err:      &ProviderError{Provider: "openai", StatusCode: 503, Retryable: true, Err: errors.New("unavailable")},
			expected: true,
		},
		{
			name:     "unknown transport error is retryable",
			err:      errors.New("connection reset by peer"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}

func TestProviderError_Message(t *testing.T) {
	withStatus := &ProviderError{Provider: "anthropic", Operation: "messages.new", StatusCode: 429, Err: errors.New("slow down")}
	assert.Equal(t, "anthropic messages.new: status 429: slow down", withStatus.Error())

	withoutStatus := &ProviderError{Provider: "gemini", Operation: "models.generate_content", Err: errors.New("dial tcp")}
	assert.Equal(t, "gemini models.generate_content: dial tcp", withoutStatus.Error())

	assert.ErrorIs(t, withStatus, withStatus.Err)
}

func TestUsage_Add(t *testing.T) {
	total := Usage{PromptTokens: 100, CompletionTokens: 40, TotalTokens: 140}.
		Add(Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})

	assert.Equal(t, int64(110), total.PromptTokens)
	assert.Equal(t, int64(45), total.CompletionTokens)
	assert.Equal(t, int64(155), total.TotalTokens)
}

func TestMessageConstructors(t *testing.T) {
	user := UserMessage("hello")
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, "hello", user.Content)

	call := ToolCall{ID: "call-1", Name: "search.web_search", Args: map[string]any{"query": "ashenvale"}}
	assistant := AssistantMessage("searching", call)
	assert.Equal(t, RoleAssistant, assistant.Role)
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "call-1", assistant.ToolCalls[0].ID)

	result := ToolResultMessage("call-1", "search.web_search", "ten results", false)
	assert.Equal(t, RoleTool, result.Role)
	require.NotNil(t, result.ToolResult)
	assert.Equal(t, "call-1", result.ToolResult.ToolCallID)
	assert.False(t, result.ToolResult.IsError)
}

func TestSchemaDirective(t *testing.T) {
	directive, err := schemaDirective(map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	})
	require.NoError(t, err)

	assert.Contains(t, directive, "single JSON object")
	assert.Contains(t, directive, `"type":"object"`)
	assert.Contains(t, directive, `"name"`)
}

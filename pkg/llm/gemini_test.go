package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerateAPI struct {
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
	resp         *genai.GenerateContentResponse
	err          error
	calls        int
}

func (f *fakeGenerateAPI) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastModel = model
	f.lastContents = contents
	f.lastConfig = config
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestGemini(fake *fakeGenerateAPI) *GeminiProvider {
	return &GeminiProvider{api: fake, name: "google", model: "gemini-2.5-flash", maxTokens: 512}
}

func textCandidates(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
			FinishReason: genai.FinishReasonStop,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     40,
			CandidatesTokenCount: 9,
			TotalTokenCount:      49,
		},
	}
}

func TestGeminiGenerate_TextOnly(t *testing.T) {
	fake := &fakeGenerateAPI{resp: textCandidates("world")}
	p := newTestGemini(fake)

	resp, err := p.Generate(context.Background(), &Request{
		System:   "You are a researcher.",
		Messages: []Message{UserMessage("hello")},
	})
	require.NoError(t, err)

	assert.Equal(t, "world", resp.Text)
	assert.Equal(t, StopReasonEndTurn, resp.StopReason)
	assert.Equal(t, int64(40), resp.Usage.PromptTokens)
	assert.Equal(t, int64(9), resp.Usage.CompletionTokens)
	assert.Equal(t, int64(49), resp.Usage.TotalTokens)

	assert.Equal(t, "gemini-2.5-flash", fake.lastModel)
	require.Len(t, fake.lastContents, 1)
	assert.Equal(t, "user", fake.lastContents[0].Role)
	require.NotNil(t, fake.lastConfig.SystemInstruction)
	require.Len(t, fake.lastConfig.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a researcher.", fake.lastConfig.SystemInstruction.Parts[0].Text)
	assert.Equal(t, int32(512), fake.lastConfig.MaxOutputTokens)
}

func TestGeminiGenerate_ToolRoundTrip(t *testing.T) {
	fake := &fakeGenerateAPI{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{
				{FunctionCall: &genai.FunctionCall{Name: "search_web_search", Args: map[string]any{"query": "lore"}}},
			}},
			FinishReason: genai.FinishReasonStop,
		}},
	}}
	p := newTestGemini(fake)

	resp, err := p.Generate(context.Background(), &Request{
		Messages: []Message{
			UserMessage("research"),
			AssistantMessage("", ToolCall{ID: "call_1", Name: "search.web_search", Args: map[string]any{"query": "npcs"}}),
			ToolResultMessage("call_1", "search.web_search", "two results", false),
		},
		Tools: []ToolDefinition{{
			Name:        "search.web_search",
			Description: "Web search",
			InputSchema: map[string]any{"type": "object"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, fake.lastConfig.Tools, 1)
	require.Len(t, fake.lastConfig.Tools[0].FunctionDeclarations, 1)
	assert.Equal(t, "search_web_search", fake.lastConfig.Tools[0].FunctionDeclarations[0].Name)

	require.Len(t, fake.lastContents, 3)
	assert.Equal(t, "model", fake.lastContents[1].Role)
	require.NotNil(t, fake.lastContents[1].Parts[0].FunctionCall)
	assert.Equal(t, "search_web_search", fake.lastContents[1].Parts[0].FunctionCall.Name)
	require.NotNil(t, fake.lastContents[2].Parts[0].FunctionResponse)
	assert.Equal(t, map[string]any{"result": "two results"}, fake.lastContents[2].Parts[0].FunctionResponse.Response)

	assert.Equal(t, StopReasonToolUse, resp.StopReason)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "search.web_search", resp.ToolCalls[0].Name)
	assert.Equal(t, "lore", resp.ToolCalls[0].Args["query"])
	assert.Equal(t, "call_1", resp.ToolCalls[0].ID, "missing call ID is synthesized")
}

func TestGeminiGenerate_ErrorResultUsesErrorKey(t *testing.T) {
	fake := &fakeGenerateAPI{resp: textCandidates("ok")}
	p := newTestGemini(fake)

	_, err := p.Generate(context.Background(), &Request{
		Messages: []Message{
			UserMessage("go"),
			AssistantMessage("", ToolCall{ID: "call_1", Name: "crawl.fetch_page"}),
			ToolResultMessage("call_1", "crawl.fetch_page", "timeout fetching page", true),
		},
	})
	require.NoError(t, err)

	require.Len(t, fake.lastContents, 3)
	fr := fake.lastContents[2].Parts[0].FunctionResponse
	require.NotNil(t, fr)
	assert.Equal(t, map[string]any{"error": "timeout fetching page"}, fr.Response)
}

func TestGeminiGenerate_NativeResponseSchema(t *testing.T) {
	fake := &fakeGenerateAPI{resp: textCandidates(`{"name":"x"}`)}
	p := newTestGemini(fake)

	_, err := p.Generate(context.Background(), &Request{
		Messages: []Message{UserMessage("extract")},
		ResponseSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"name": map[string]any{"type": "string"}},
			"required":   []any{"name"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", fake.lastConfig.ResponseMIMEType)
	require.NotNil(t, fake.lastConfig.ResponseSchema)
	assert.Equal(t, genai.Type("object"), fake.lastConfig.ResponseSchema.Type)
	assert.Equal(t, []string{"name"}, fake.lastConfig.ResponseSchema.Required)
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(map[string]any{
		"type":        "object",
		"description": "an npc",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"tier": map[string]any{"type": "string", "enum": []any{"official", "primary", "tertiary"}},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"name", "tier"},
	})

	require.NotNil(t, s)
	assert.Equal(t, genai.Type("object"), s.Type)
	assert.Equal(t, "an npc", s.Description)
	assert.ElementsMatch(t, []string{"name", "tier"}, s.Required)
	require.Contains(t, s.Properties, "tier")
	assert.Equal(t, []string{"official", "primary", "tertiary"}, s.Properties["tier"].Enum)
	require.Contains(t, s.Properties, "tags")
	require.NotNil(t, s.Properties["tags"].Items)
	assert.Equal(t, genai.Type("string"), s.Properties["tags"].Items.Type)

	assert.Nil(t, toGenaiSchema(nil))
}

func TestGeminiGenerate_MaxTokensFinish(t *testing.T) {
	resp := textCandidates("partial")
	resp.Candidates[0].FinishReason = genai.FinishReasonMaxTokens
	fake := &fakeGenerateAPI{resp: resp}
	p := newTestGemini(fake)

	out, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.NoError(t, err)
	assert.Equal(t, StopReasonMaxTokens, out.StopReason)
}

func TestGeminiGenerate_NoCandidatesFails(t *testing.T) {
	fake := &fakeGenerateAPI{resp: &genai.GenerateContentResponse{}}
	p := newTestGemini(fake)

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiGenerate_ErrorClassification(t *testing.T) {
	quota := genai.APIError{Code: 429, Message: "quota exceeded"}
	fake := &fakeGenerateAPI{err: quota}
	p := newTestGemini(fake)

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)

	fake.err = errors.New("dial tcp: connection refused")
	_, err = p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.Retryable)
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// generateAPI is the slice of the genai client surface the provider uses.
// *genai.Models satisfies it; tests substitute a fake.
type generateAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider adapts the Gemini API to the Provider interface. Structured
// output uses the API's native response schema support.
type GeminiProvider struct {
	api       generateAPI
	name      string
	model     string
	maxTokens int
}

// NewGeminiProvider builds a provider for the given model.
func NewGeminiProvider(name, model string, opts ProviderOptions) (*GeminiProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		return nil, errors.New("gemini: model is required")
	}
	cc := &genai.ClientConfig{APIKey: opts.APIKey}
	if opts.BaseURL != "" {
		cc.HTTPOptions.BaseURL = opts.BaseURL
	}
	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiProvider{
		api:       client.Models,
		name:      name,
		model:     model,
		maxTokens: opts.MaxOutputTokens,
	}, nil
}

func (p *GeminiProvider) Name() string  { return p.name }
func (p *GeminiProvider) Model() string { return p.model }

// Generate executes one completion request.
func (p *GeminiProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	contents, config, provToCanon, err := p.buildRequest(req)
	if err != nil {
		return nil, err
	}
	genResp, err := p.api.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return translateGeminiResponse(genResp, provToCanon)
}

func (p *GeminiProvider) buildRequest(req *Request) ([]*genai.Content, *genai.GenerateContentConfig, map[string]string, error) {
	if len(req.Messages) == 0 {
		return nil, nil, nil, errors.New("gemini: messages are required")
	}
	canonToProv, provToCanon, err := toolNameMaps(req.Tools)
	if err != nil {
		return nil, nil, nil, err
	}

	systemParts := make([]*genai.Part, 0, 2)
	if req.System != "" {
		systemParts = append(systemParts, &genai.Part{Text: req.System})
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for i := range req.Messages {
		m := &req.Messages[i]
		switch m.Role {
		case RoleSystem:
			if m.Content != "" {
				systemParts = append(systemParts, &genai.Part{Text: m.Content})
			}
		case RoleUser:
			if m.Content == "" {
				continue
			}
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		case RoleAssistant:
			parts := make([]*genai.Part, 0, len(m.ToolCalls)+1)
			if m.Content != "" {
				parts = append(parts, &genai.Part{Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				name := canonToProv[tc.Name]
				if name == "" {
					name = sanitizeToolName(tc.Name)
				}
				args := tc.Args
				if args == nil {
					args = map[string]any{}
				}
				parts = append(parts, &genai.Part{FunctionCall: &genai.FunctionCall{
					ID:   tc.ID,
					Name: name,
					Args: args,
				}})
			}
			if len(parts) == 0 {
				continue
			}
			contents = append(contents, &genai.Content{Role: "model", Parts: parts})
		case RoleTool:
			if m.ToolResult == nil {
				continue
			}
			key := "result"
			if m.ToolResult.IsError {
				key = "error"
			}
			name := canonToProv[m.ToolResult.Name]
			if name == "" {
				name = sanitizeToolName(m.ToolResult.Name)
			}
			contents = append(contents, &genai.Content{
				Role: "user",
				Parts: []*genai.Part{{FunctionResponse: &genai.FunctionResponse{
					ID:       m.ToolResult.ToolCallID,
					Name:     name,
					Response: map[string]any{key: m.ToolResult.Content},
				}}},
			})
		default:
			return nil, nil, nil, fmt.Errorf("gemini: unsupported message role %q", m.Role)
		}
	}
	if len(contents) == 0 {
		return nil, nil, nil, errors.New("gemini: no non-system messages to send")
	}

	maxTokens := req.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxOutputTokens
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}
	if len(systemParts) > 0 {
		config.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if len(req.Tools) > 0 {
		tools := make([]*genai.Tool, 0, len(req.Tools))
		for _, def := range req.Tools {
			if def.Description == "" {
				return nil, nil, nil, fmt.Errorf("gemini: tool %q is missing description", def.Name)
			}
			tools = append(tools, &genai.Tool{
				FunctionDeclarations: []*genai.FunctionDeclaration{{
					Name:        canonToProv[def.Name],
					Description: def.Description,
					Parameters:  toGenaiSchema(def.InputSchema),
				}},
			})
		}
		config.Tools = tools
	}
	if req.ResponseSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenaiSchema(req.ResponseSchema)
	}

	return contents, config, provToCanon, nil
}

// toGenaiSchema converts a JSON Schema map to the genai schema type. Only the
// subset the API understands is carried over.
func toGenaiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}
	s := &genai.Schema{}
	if t, ok := schema["type"].(string); ok {
		s.Type = genai.Type(t)
	}
	if desc, ok := schema["description"].(string); ok {
		s.Description = desc
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			if propMap, ok := prop.(map[string]any); ok {
				s.Properties[name] = toGenaiSchema(propMap)
			}
		}
	}
	if required, ok := schema["required"].([]any); ok {
		for _, r := range required {
			if rs, ok := r.(string); ok {
				s.Required = append(s.Required, rs)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		s.Items = toGenaiSchema(items)
	}
	if enum, ok := schema["enum"].([]any); ok {
		for _, e := range enum {
			if es, ok := e.(string); ok {
				s.Enum = append(s.Enum, es)
			}
		}
	}
	return s
}

func translateGeminiResponse(genResp *genai.GenerateContentResponse, provToCanon map[string]string) (*Response, error) {
	if genResp == nil || len(genResp.Candidates) == 0 {
		return nil, errors.New("gemini: response has no candidates")
	}
	candidate := genResp.Candidates[0]

	out := &Response{}
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.Text != "" && !part.Thought {
				text.WriteString(part.Text)
			}
			if part.FunctionCall != nil {
				fc := part.FunctionCall
				id := fc.ID
				if id == "" {
					// The API frequently omits call IDs; synthesize stable
					// ones so results can be correlated.
					id = fmt.Sprintf("call_%d", len(out.ToolCalls)+1)
				}
				name := fc.Name
				if canonical, ok := provToCanon[name]; ok && canonical != "" {
					name = canonical
				}
				args := fc.Args
				if args == nil {
					args = map[string]any{}
				}
				out.ToolCalls = append(out.ToolCalls, ToolCall{ID: id, Name: name, Args: args})
			}
		}
	}
	out.Text = text.String()

	switch candidate.FinishReason {
	case genai.FinishReasonStop:
		out.StopReason = StopReasonEndTurn
	case genai.FinishReasonMaxTokens:
		out.StopReason = StopReasonMaxTokens
	default:
		out.StopReason = string(candidate.FinishReason)
	}
	if len(out.ToolCalls) > 0 {
		out.StopReason = StopReasonToolUse
	}

	if um := genResp.UsageMetadata; um != nil {
		out.Usage = Usage{
			PromptTokens:     int64(um.PromptTokenCount),
			CompletionTokens: int64(um.CandidatesTokenCount),
			TotalTokens:      int64(um.TotalTokenCount),
		}
		if out.Usage.TotalTokens == 0 {
			out.Usage.TotalTokens = out.Usage.PromptTokens + out.Usage.CompletionTokens
		}
	}
	return out, nil
}

func (p *GeminiProvider) wrapErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, ErrRateLimited) {
		return err
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Code
		pe := &ProviderError{
			Provider:   p.name,
			Operation:  "models.generate_content",
			StatusCode: status,
			Retryable:  status >= http.StatusInternalServerError,
			Err:        err,
		}
		if status == http.StatusTooManyRequests {
			pe.Retryable = true
			return errors.Join(ErrRateLimited, pe)
		}
		return pe
	}
	return &ProviderError{Provider: p.name, Operation: "models.generate_content", Retryable: true, Err: err}
}

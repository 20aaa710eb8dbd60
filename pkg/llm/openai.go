package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	oa "github.com/sashabaranov/go-openai"
)

// chatAPI is the slice of the go-openai client surface the provider uses.
// *oa.Client satisfies it; tests substitute a fake.
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req oa.ChatCompletionRequest) (oa.ChatCompletionResponse, error)
}

// OpenAIProvider adapts the OpenAI chat completions API (and compatible
// endpoints via BaseURL) to the Provider interface.
type OpenAIProvider struct {
	api       chatAPI
	name      string
	model     string
	maxTokens int
}

// NewOpenAIProvider builds a provider for the given model. A BaseURL without
// an API key is allowed for self-hosted OpenAI-compatible endpoints.
func NewOpenAIProvider(name, model string, opts ProviderOptions) (*OpenAIProvider, error) {
	if opts.APIKey == "" && opts.BaseURL == "" {
		return nil, errors.New("openai: api key is required")
	}
	if model == "" {
		return nil, errors.New("openai: model is required")
	}
	cfg := oa.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &OpenAIProvider{
		api:       oa.NewClientWithConfig(cfg),
		name:      name,
		model:     model,
		maxTokens: opts.MaxOutputTokens,
	}, nil
}

func (p *OpenAIProvider) Name() string  { return p.name }
func (p *OpenAIProvider) Model() string { return p.model }

// Generate executes one completion request.
func (p *OpenAIProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	chatReq, provToCanon, err := p.buildRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := p.api.CreateChatCompletion(ctx, *chatReq)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return translateOpenAIResponse(&resp, provToCanon)
}

func (p *OpenAIProvider) buildRequest(req *Request) (*oa.ChatCompletionRequest, map[string]string, error) {
	if len(req.Messages) == 0 {
		return nil, nil, errors.New("openai: messages are required")
	}
	canonToProv, provToCanon, err := toolNameMaps(req.Tools)
	if err != nil {
		return nil, nil, err
	}

	msgs := make([]oa.ChatCompletionMessage, 0, len(req.Messages)+2)
	if req.System != "" {
		msgs = append(msgs, oa.ChatCompletionMessage{Role: oa.ChatMessageRoleSystem, Content: req.System})
	}
	if req.ResponseSchema != nil {
		directive, err := schemaDirective(req.ResponseSchema)
		if err != nil {
			return nil, nil, err
		}
		msgs = append(msgs, oa.ChatCompletionMessage{Role: oa.ChatMessageRoleSystem, Content: directive})
	}

	for i := range req.Messages {
		m := &req.Messages[i]
		switch m.Role {
		case RoleSystem:
			if m.Content != "" {
				msgs = append(msgs, oa.ChatCompletionMessage{Role: oa.ChatMessageRoleSystem, Content: m.Content})
			}
		case RoleUser:
			if m.Content != "" {
				msgs = append(msgs, oa.ChatCompletionMessage{Role: oa.ChatMessageRoleUser, Content: m.Content})
			}
		case RoleAssistant:
			am := oa.ChatCompletionMessage{Role: oa.ChatMessageRoleAssistant, Content: m.Content}
			for _, tc := range m.ToolCalls {
				name := canonToProv[tc.Name]
				if name == "" {
					name = sanitizeToolName(tc.Name)
				}
				args := tc.Args
				if args == nil {
					args = map[string]any{}
				}
				data, err := json.Marshal(args)
				if err != nil {
					return nil, nil, fmt.Errorf("openai: marshaling arguments for tool %q: %w", tc.Name, err)
				}
				am.ToolCalls = append(am.ToolCalls, oa.ToolCall{
					ID:       tc.ID,
					Type:     oa.ToolTypeFunction,
					Function: oa.FunctionCall{Name: name, Arguments: string(data)},
				})
			}
			if am.Content == "" && len(am.ToolCalls) == 0 {
				continue
			}
			msgs = append(msgs, am)
		case RoleTool:
			if m.ToolResult == nil {
				continue
			}
			msgs = append(msgs, oa.ChatCompletionMessage{
				Role:       oa.ChatMessageRoleTool,
				Content:    m.ToolResult.Content,
				ToolCallID: m.ToolResult.ToolCallID,
			})
		default:
			return nil, nil, fmt.Errorf("openai: unsupported message role %q", m.Role)
		}
	}

	maxTokens := req.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxOutputTokens
	}

	chatReq := oa.ChatCompletionRequest{
		Model:     p.model,
		Messages:  msgs,
		MaxTokens: maxTokens,
	}
	if req.Temperature > 0 {
		chatReq.Temperature = float32(req.Temperature)
	}
	if len(req.Tools) > 0 {
		tools := make([]oa.Tool, 0, len(req.Tools))
		for _, def := range req.Tools {
			if def.Description == "" {
				return nil, nil, fmt.Errorf("openai: tool %q is missing description", def.Name)
			}
			params, err := json.Marshal(def.InputSchema)
			if err != nil {
				return nil, nil, fmt.Errorf("openai: marshaling schema for tool %q: %w", def.Name, err)
			}
			tools = append(tools, oa.Tool{
				Type: oa.ToolTypeFunction,
				Function: &oa.FunctionDefinition{
					Name:        canonToProv[def.Name],
					Description: def.Description,
					Parameters:  json.RawMessage(params),
				},
			})
		}
		chatReq.Tools = tools
	}
	if req.ResponseSchema != nil {
		chatReq.ResponseFormat = &oa.ChatCompletionResponseFormat{
			Type: oa.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	return &chatReq, provToCanon, nil
}

func translateOpenAIResponse(resp *oa.ChatCompletionResponse, provToCanon map[string]string) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai: response has no choices")
	}
	choice := resp.Choices[0]
	out := &Response{
		Text:       choice.Message.Content,
		StopReason: openaiStopReason(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     int64(resp.Usage.PromptTokens),
			CompletionTokens: int64(resp.Usage.CompletionTokens),
			TotalTokens:      int64(resp.Usage.TotalTokens),
		},
	}
	for _, call := range choice.Message.ToolCalls {
		name := call.Function.Name
		if canonical, ok := provToCanon[name]; ok && canonical != "" {
			name = canonical
		}
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:   call.ID,
			Name: name,
			Args: parseToolArguments(call.Function.Arguments),
		})
	}
	return out, nil
}

// parseToolArguments decodes a tool-call arguments payload. Providers
// occasionally emit malformed JSON; the raw text is preserved so the tool
// layer can surface a useful error.
func parseToolArguments(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil || args == nil {
		return map[string]any{"raw": raw}
	}
	return args
}

func openaiStopReason(reason oa.FinishReason) string {
	switch reason {
	case oa.FinishReasonStop:
		return StopReasonEndTurn
	case oa.FinishReasonLength:
		return StopReasonMaxTokens
	case oa.FinishReasonToolCalls:
		return StopReasonToolUse
	default:
		return string(reason)
	}
}

func (p *OpenAIProvider) wrapErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, ErrRateLimited) {
		return err
	}
	status := 0
	var apiErr *oa.APIError
	var reqErr *oa.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		return &ProviderError{Provider: p.name, Operation: "chat.completion", Retryable: true, Err: err}
	}
	pe := &ProviderError{
		Provider:   p.name,
		Operation:  "chat.completion",
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

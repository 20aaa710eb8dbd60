package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicOverloadedStatus is returned by the API when it is temporarily
// overloaded; treated like a rate limit.
const anthropicOverloadedStatus = 529

// messagesAPI is the slice of the Anthropic SDK surface the provider uses.
// *sdk.MessageService satisfies it; tests substitute a fake.
type messagesAPI interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicProvider adapts the Anthropic Messages API to the Provider
// interface.
type AnthropicProvider struct {
	api       messagesAPI
	name      string
	model     string
	maxTokens int
}

// NewAnthropicProvider builds a provider for the given model. The name is the
// configuration registry key this provider was built from.
func NewAnthropicProvider(name, model string, opts ProviderOptions) (*AnthropicProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("anthropic: api key is required")
	}
	if model == "" {
		return nil, errors.New("anthropic: model is required")
	}
	ro := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		ro = append(ro, option.WithBaseURL(opts.BaseURL))
	}
	client := sdk.NewClient(ro...)
	return &AnthropicProvider{
		api:       &client.Messages,
		name:      name,
		model:     model,
		maxTokens: opts.MaxOutputTokens,
	}, nil
}

func (p *AnthropicProvider) Name() string  { return p.name }
func (p *AnthropicProvider) Model() string { return p.model }

// Generate executes one completion request.
func (p *AnthropicProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	params, provToCanon, err := p.buildParams(req)
	if err != nil {
		return nil, err
	}
	msg, err := p.api.New(ctx, *params)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return translateAnthropicResponse(msg, provToCanon)
}

func (p *AnthropicProvider) buildParams(req *Request) (*sdk.MessageNewParams, map[string]string, error) {
	if len(req.Messages) == 0 {
		return nil, nil, errors.New("anthropic: messages are required")
	}
	canonToProv, provToCanon, err := toolNameMaps(req.Tools)
	if err != nil {
		return nil, nil, err
	}

	system := make([]sdk.TextBlockParam, 0, 2)
	if req.System != "" {
		system = append(system, sdk.TextBlockParam{Text: req.System})
	}
	if req.ResponseSchema != nil {
		directive, err := schemaDirective(req.ResponseSchema)
		if err != nil {
			return nil, nil, err
		}
		system = append(system, sdk.TextBlockParam{Text: directive})
	}

	msgs := make([]sdk.MessageParam, 0, len(req.Messages))
	// Tool results answering one assistant turn must share a single user
	// message, so consecutive tool turns are coalesced.
	var pendingResults []sdk.ContentBlockParamUnion
	flushResults := func() {
		if len(pendingResults) > 0 {
			msgs = append(msgs, sdk.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for i := range req.Messages {
		m := &req.Messages[i]
		switch m.Role {
		case RoleSystem:
			if m.Content != "" {
				system = append(system, sdk.TextBlockParam{Text: m.Content})
			}
		case RoleUser:
			flushResults()
			if m.Content == "" {
				continue
			}
			msgs = append(msgs, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		case RoleAssistant:
			flushResults()
			blocks := make([]sdk.ContentBlockParamUnion, 0, len(m.ToolCalls)+1)
			if m.Content != "" {
				blocks = append(blocks, sdk.NewTextBlock(m.Content))
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
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, args, name))
			}
			if len(blocks) == 0 {
				continue
			}
			msgs = append(msgs, sdk.NewAssistantMessage(blocks...))
		case RoleTool:
			if m.ToolResult == nil {
				continue
			}
			pendingResults = append(pendingResults,
				sdk.NewToolResultBlock(m.ToolResult.ToolCallID, m.ToolResult.Content, m.ToolResult.IsError))
		default:
			return nil, nil, fmt.Errorf("anthropic: unsupported message role %q", m.Role)
		}
	}
	flushResults()
	if len(msgs) == 0 {
		return nil, nil, errors.New("anthropic: no non-system messages to send")
	}

	maxTokens := req.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxOutputTokens
	}

	params := sdk.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages:  msgs,
		Model:     sdk.Model(p.model),
	}
	if len(system) > 0 {
		params.System = system
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	if len(req.Tools) > 0 {
		tools := make([]sdk.ToolUnionParam, 0, len(req.Tools))
		for _, def := range req.Tools {
			if def.Description == "" {
				return nil, nil, fmt.Errorf("anthropic: tool %q is missing description", def.Name)
			}
			schema := sdk.ToolInputSchemaParam{ExtraFields: def.InputSchema}
			u := sdk.ToolUnionParamOfTool(schema, canonToProv[def.Name])
			if u.OfTool != nil {
				u.OfTool.Description = sdk.String(def.Description)
			}
			tools = append(tools, u)
		}
		params.Tools = tools
	}

	return &params, provToCanon, nil
}

func translateAnthropicResponse(msg *sdk.Message, provToCanon map[string]string) (*Response, error) {
	if msg == nil {
		return nil, errors.New("anthropic: response message is nil")
	}
	resp := &Response{
		StopReason: string(msg.StopReason),
		Usage: Usage{
			PromptTokens:     msg.Usage.InputTokens,
			CompletionTokens: msg.Usage.OutputTokens,
			TotalTokens:      msg.Usage.InputTokens + msg.Usage.OutputTokens,
		},
	}
	var text strings.Builder
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			args := map[string]any{}
			if len(block.Input) > 0 {
				if err := json.Unmarshal(block.Input, &args); err != nil {
					args = map[string]any{"raw": string(block.Input)}
				}
			}
			name := block.Name
			if canonical, ok := provToCanon[name]; ok && canonical != "" {
				name = canonical
			}
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{ID: block.ID, Name: name, Args: args})
		}
	}
	resp.Text = text.String()
	return resp, nil
}

func (p *AnthropicProvider) wrapErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, ErrRateLimited) {
		return err
	}
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		pe := &ProviderError{
			Provider:   p.name,
			Operation:  "messages.new",
			StatusCode: status,
			Retryable:  status >= http.StatusInternalServerError,
			Err:        err,
		}
		if status == http.StatusTooManyRequests || status == anthropicOverloadedStatus {
			pe.Retryable = true
			return errors.Join(ErrRateLimited, pe)
		}
		return pe
	}
	return &ProviderError{Provider: p.name, Operation: "messages.new", Retryable: true, Err: err}
}

package summarize

import (
	"context"
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/version"
)

const summarizeInputSchema = `{
  "type": "object",
  "properties": {
    "content": {"type": "string", "description": "Text to compress"},
    "max_output_tokens": {"type": "integer", "description": "Target size of the summary in tokens"},
    "focus_areas": {"type": "array", "items": {"type": "string"}, "description": "Topics that must survive compression"},
    "strategy": {"type": "string", "enum": ["semantic", "paragraph", "token"], "description": "Chunking strategy override"}
  },
  "required": ["content"]
}`

const summarizeForExtractionInputSchema = `{
  "type": "object",
  "properties": {
    "content": {"type": "string", "description": "Text to compress"},
    "schema_hint": {"type": "string", "description": "Extraction schema whose fields the summary must preserve"},
    "max_output_tokens": {"type": "integer", "description": "Target size of the summary in tokens"}
  },
  "required": ["content"]
}`

type summarizeParams struct {
	Content         string   `json:"content"`
	MaxOutputTokens int      `json:"max_output_tokens"`
	FocusAreas      []string `json:"focus_areas"`
	Strategy        string   `json:"strategy"`
}

type summarizeForExtractionParams struct {
	Content         string `json:"content"`
	SchemaHint      string `json:"schema_hint"`
	MaxOutputTokens int    `json:"max_output_tokens"`
}

// NewServer builds an MCP server exposing the summarization tools. Agents
// reach it through the summarizer tool set; content flows in as tool
// arguments and the compressed text comes back as a single text block.
func NewServer(service *Service) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "loreweave-summarizer",
		Version: version.GitCommit,
	}, nil)
	RegisterTools(server, service)
	return server
}

// RegisterTools adds the summarize and summarize_for_extraction tools to an
// existing MCP server.
func RegisterTools(server *mcpsdk.Server, service *Service) {
	server.AddTool(&mcpsdk.Tool{
		Name:        "summarize",
		Description: "Compress text toward a token target, keeping material on the given focus areas",
		InputSchema: json.RawMessage(summarizeInputSchema),
	}, handleSummarize(service))

	server.AddTool(&mcpsdk.Tool{
		Name:        "summarize_for_extraction",
		Description: "Compress text for structured extraction, preserving fields named by the schema hint",
		InputSchema: json.RawMessage(summarizeForExtractionInputSchema),
	}, handleSummarizeForExtraction(service))
}

func handleSummarize(service *Service) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var params summarizeParams
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return toolError(fmt.Sprintf("invalid summarize arguments: %s", err)), nil
		}
		out := service.Summarize(ctx, params.Content, params.MaxOutputTokens, params.FocusAreas, params.Strategy)
		return toolText(out), nil
	}
}

func handleSummarizeForExtraction(service *Service) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var params summarizeForExtractionParams
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return toolError(fmt.Sprintf("invalid summarize_for_extraction arguments: %s", err)), nil
		}
		out := service.SummarizeForExtraction(ctx, params.Content, params.SchemaHint, params.MaxOutputTokens)
		return toolText(out), nil
	}
}

func toolText(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

func toolError(message string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: message}},
		IsError: true,
	}
}

package config

// TransportType defines tool server transport types
type TransportType string

const (
	// TransportTypeStreamableHTTP uses MCP streamable HTTP (default)
	TransportTypeStreamableHTTP TransportType = "streamable_http"
	// TransportTypeSSE uses Server-Sent Events
	TransportTypeSSE TransportType = "sse"
	// TransportTypeStdio spawns a subprocess speaking MCP over stdin/stdout,
	// for local development tool servers
	TransportTypeStdio TransportType = "stdio"
)

// IsValid checks if the transport type is valid
func (t TransportType) IsValid() bool {
	return t == TransportTypeStreamableHTTP || t == TransportTypeSSE || t == TransportTypeStdio
}

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeGoogle is Google Gemini API
	LLMProviderTypeGoogle LLMProviderType = "google"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeAnthropic,
		LLMProviderTypeOpenAI,
		LLMProviderTypeGoogle:
		return true
	default:
		return false
	}
}

// ChunkStrategy defines how the summarizer splits oversized content
type ChunkStrategy string

const (
	// ChunkStrategySemantic splits on markdown structure, falling back to
	// paragraphs and then token windows per segment
	ChunkStrategySemantic ChunkStrategy = "semantic"
	// ChunkStrategyParagraph splits on blank-line paragraph boundaries
	ChunkStrategyParagraph ChunkStrategy = "paragraph"
	// ChunkStrategyToken splits on fixed-size token windows with overlap
	ChunkStrategyToken ChunkStrategy = "token"
)

// IsValid checks if the chunk strategy is valid
func (s ChunkStrategy) IsValid() bool {
	return s == ChunkStrategySemantic || s == ChunkStrategyParagraph || s == ChunkStrategyToken
}

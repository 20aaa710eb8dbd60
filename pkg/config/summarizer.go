package config

// SummarizerConfig controls map-reduce summarization of oversized content.
type SummarizerConfig struct {
	// Strategy selects how content is chunked before the map phase.
	Strategy ChunkStrategy `yaml:"strategy"`

	// ChunkSize is the target chunk size in tokens.
	ChunkSize int `yaml:"chunk_size"`

	// ChunkOverlap is the token overlap between adjacent window chunks.
	// Clamped to ChunkSize-1 when misconfigured larger.
	ChunkOverlap int `yaml:"chunk_overlap"`

	// TargetTokens is the default summary size when a request omits it.
	TargetTokens int `yaml:"target_tokens"`

	// MaxReducePasses caps reduce rounds; content still over target after
	// the last pass is returned as-is.
	MaxReducePasses int `yaml:"max_reduce_passes"`

	// MinChunkOutputTokens floors the per-chunk output allotment when the
	// target is divided across many chunks.
	MinChunkOutputTokens int `yaml:"min_chunk_output_tokens"`
}

// DefaultSummarizerConfig returns the built-in summarizer defaults.
func DefaultSummarizerConfig() *SummarizerConfig {
	return &SummarizerConfig{
		Strategy:             ChunkStrategySemantic,
		ChunkSize:            4000,
		ChunkOverlap:         200,
		TargetTokens:         2000,
		MaxReducePasses:      3,
		MinChunkOutputTokens: 500,
	}
}

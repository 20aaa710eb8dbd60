package summarize

import (
	"context"
	"log/slog"

	"github.com/loreweave/loreweave/pkg/config"
)

// Service wraps the Engine at the tool boundary. Every failure is absorbed:
// the caller gets the original content back and a warning is logged, so the
// pipeline never crashes on summarization failure. In-process callers that
// need to see errors (extraction input routing) use the Engine directly.
type Service struct {
	engine *Engine
	logger *slog.Logger
}

// NewService wraps an engine for tool-boundary use.
func NewService(engine *Engine) *Service {
	return &Service{
		engine: engine,
		logger: slog.Default().With("component", "summarizer_service"),
	}
}

// Summarize compresses content toward maxOutputTokens, biased by focusAreas.
// On any internal failure the original content is returned unchanged.
func (s *Service) Summarize(ctx context.Context, content string, maxOutputTokens int, focusAreas []string, strategy string) string {
	return s.run(ctx, Request{
		Content:         content,
		MaxOutputTokens: maxOutputTokens,
		FocusAreas:      focusAreas,
		Strategy:        config.ChunkStrategy(strategy),
	})
}

// SummarizeForExtraction compresses content while preserving the fields the
// given schema hint names. On any internal failure the original content is
// returned unchanged.
func (s *Service) SummarizeForExtraction(ctx context.Context, content, schemaHint string, maxOutputTokens int) string {
	return s.run(ctx, Request{
		Content:         content,
		MaxOutputTokens: maxOutputTokens,
		SchemaHint:      schemaHint,
	})
}

func (s *Service) run(ctx context.Context, req Request) string {
	out, err := s.engine.Summarize(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "Summarization failed, returning content unchanged",
			"content_tokens", s.engine.counter.Count(req.Content), "error", err)
		return req.Content
	}
	return out
}

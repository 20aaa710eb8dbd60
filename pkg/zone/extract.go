package zone

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/summarize"
)

// extractAll turns everything the research steps accumulated into the
// typed ZoneExtraction document. Oversized material is compressed through
// the summarizer with a hint listing the schema's fields; the structured
// call then gets the configured repair rounds before a schema failure
// becomes permanent. Category documents land in partial_extractions.
func (s *Steps) extractAll(ctx context.Context, sc *pipeline.StepContext) (pipeline.StepResult, error) {
	material := assembleMaterial(sc.Checkpoint)
	if material == "" {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal,
			fmt.Errorf("no accumulated research content to extract"))
	}

	maxInput := s.cfg.Extraction.MaxInputTokens
	if tokens := s.counter.Count(material); tokens > maxInput {
		s.logger.InfoContext(ctx, "compressing research material for extraction",
			"tokens", tokens, "max_input_tokens", maxInput)
		compressed, err := s.summarizer.Summarize(ctx, summarize.Request{
			Content:         material,
			MaxOutputTokens: maxInput,
			SchemaHint:      extractionSchemaHint(),
			Ledger:          sc.Ledger,
		})
		if err != nil {
			return pipeline.StepResult{}, err
		}
		material = compressed
	}

	categories := strings.Join(Categories(), ", ")
	prompt, err := s.library.Render("extraction", map[string]string{
		"category":  categories,
		"zone_name": sc.Job.ZoneName,
		"content":   material,
	})
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}

	out, err := s.runRepairable(ctx, sc, StepExtractAll, "extraction", prompt, extractionSchema, map[string]string{
		"category":  categories,
		"zone_name": sc.Job.ZoneName,
		"content":   material,
	})
	if err != nil {
		return pipeline.StepResult{}, err
	}

	var extraction ZoneExtraction
	if err := json.Unmarshal(out.Structured, &extraction); err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentSchema,
			fmt.Errorf("decoding validated extraction: %w", err))
	}

	if sc.Checkpoint.PartialExtractions == nil {
		sc.Checkpoint.PartialExtractions = map[string]any{}
	}
	for category, doc := range extraction.categoryDocs() {
		normalized, err := toJSONMap(doc)
		if err != nil {
			return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
		}
		sc.Checkpoint.PartialExtractions[category] = normalized
	}

	s.logger.InfoContext(ctx, "extraction complete",
		"npcs", len(extraction.NPCs.Entries),
		"factions", len(extraction.Factions.Entries),
		"lore_entries", len(extraction.Lore.Entries),
		"narrative_items", len(extraction.NarrativeItems.Entries))
	return pipeline.StepResult{ContentBytes: len(out.Structured)}, nil
}

// assembleMaterial concatenates accumulated content as topic-labelled
// sections in canonical category order.
func assembleMaterial(cp *models.Checkpoint) string {
	var b strings.Builder
	for _, category := range Categories() {
		blocks := cp.AccumulatedContent[category]
		if len(blocks) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "# %s\n\n%s", category, strings.Join(blocks, "\n\n"))
	}
	return strings.TrimSpace(b.String())
}

package zone

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/loreweave/loreweave/pkg/pipeline"
)

// crossReference runs the LLM-assisted consistency check over the
// extracted categories. Reported conflicts lower the confidence of the
// categories they implicate, floored at zero, and the whole record lands
// under partial_extractions so the assembler and auditors can read it.
func (s *Steps) crossReference(ctx context.Context, sc *pipeline.StepContext) (pipeline.StepResult, error) {
	extractions := map[string]any{}
	for _, category := range Categories() {
		if doc, ok := sc.Checkpoint.PartialExtractions[category]; ok {
			extractions[category] = doc
		}
	}
	if len(extractions) == 0 {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal,
			fmt.Errorf("no extractions to cross-reference"))
	}

	blob, err := json.MarshalIndent(extractions, "", "  ")
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal,
			fmt.Errorf("encoding extractions: %w", err))
	}

	prompt, err := s.library.Render("cross_reference", map[string]string{
		"zone_name":   sc.Job.ZoneName,
		"extractions": string(blob),
	})
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}

	out, err := s.runRepairable(ctx, sc, StepCrossReference, "cross_reference", prompt, crossReferenceSchema, map[string]string{
		"category":  crossReferenceKey,
		"zone_name": sc.Job.ZoneName,
		"content":   string(blob),
	})
	if err != nil {
		return pipeline.StepResult{}, err
	}

	var result CrossReferenceResult
	if err := json.Unmarshal(out.Structured, &result); err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentSchema,
			fmt.Errorf("decoding validated cross-reference: %w", err))
	}

	confidence := s.adjustedConfidence(ctx, sc, result.Adjustments)
	record, err := toJSONMap(result)
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}
	// Conflicts are the ground truth; the model's own flag is normalized
	// against them.
	record["is_consistent"] = len(result.Conflicts) == 0
	record["confidence_by_category"] = confidence
	record, err = toJSONMap(record)
	if err != nil {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal, err)
	}
	sc.Checkpoint.PartialExtractions[crossReferenceKey] = record

	s.logger.InfoContext(ctx, "cross-reference complete",
		"consistent", len(result.Conflicts) == 0,
		"conflicts", len(result.Conflicts),
		"adjustments", len(result.Adjustments))
	return pipeline.StepResult{ContentBytes: len(out.Structured)}, nil
}

// adjustedConfidence applies the check's downward corrections to the
// extraction's self-reported category confidences.
func (s *Steps) adjustedConfidence(ctx context.Context, sc *pipeline.StepContext, adjustments []ConfidenceAdjustment) map[string]float64 {
	confidence := map[string]float64{}
	for _, category := range Categories() {
		doc, ok := sc.Checkpoint.PartialExtractions[category].(map[string]any)
		if !ok {
			continue
		}
		if value, ok := confidenceOf(doc); ok {
			confidence[category] = value
		}
	}

	for _, adj := range adjustments {
		current, ok := confidence[adj.Category]
		if !ok {
			s.logger.WarnContext(ctx, "confidence adjustment names unknown category",
				"category", adj.Category)
			continue
		}
		drop := adj.Drop
		if drop < 0 {
			continue
		}
		adjusted := current - drop
		if adjusted < 0 {
			adjusted = 0
		}
		confidence[adj.Category] = adjusted
	}
	return confidence
}

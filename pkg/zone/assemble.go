package zone

import (
	"context"
	"fmt"
	"time"

	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
)

// packageAndSend assembles the final lore package from everything the
// earlier steps left in the checkpoint and publishes it. The database row
// is the delivery that matters; the vector-store upsert is best-effort.
// The returned summary rides the job_completed event.
func (s *Steps) packageAndSend(ctx context.Context, sc *pipeline.StepContext) (pipeline.StepResult, error) {
	cp := sc.Checkpoint

	categories := map[string]any{}
	counts := map[string]int{}
	for _, category := range Categories() {
		doc, ok := cp.PartialExtractions[category].(map[string]any)
		if !ok {
			continue
		}
		categories[category] = doc
		counts[category] = entityCount(doc)
	}
	if len(categories) == 0 {
		return pipeline.StepResult{}, pipeline.NewError(pipeline.KindPermanentInternal,
			fmt.Errorf("no extracted categories to package"))
	}

	crossRef, _ := cp.PartialExtractions[crossReferenceKey].(map[string]any)
	confidence := packageConfidence(crossRef, categories)
	sources := cp.AllSources()

	model := sc.Job.Model
	if model == "" {
		model = s.cfg.Pipeline.DefaultModel
	}
	doc := &models.PackageDocument{
		JobID:                sc.Job.ID,
		ZoneName:             sc.Job.ZoneName,
		Model:                model,
		GeneratedAt:          time.Now().UTC(),
		Categories:           categories,
		CrossReference:       crossRef,
		SourcesByTier:        models.GroupSourcesByTier(sources),
		ConfidenceByCategory: confidence,
		Errors:               cp.StepErrors,
		TokensUsed:           sc.Ledger.Used(),
		DiscoveredZones:      discoveredZones(cp),
	}

	if _, err := s.packages.Publish(ctx, doc); err != nil {
		return pipeline.StepResult{}, err
	}
	s.upsertToStorage(ctx, doc)

	s.logger.InfoContext(ctx, "lore package published",
		"zone", sc.Job.ZoneName,
		"categories", len(categories),
		"sources", len(sources),
		"errors", len(cp.StepErrors))
	return pipeline.StepResult{
		Summary: &events.PackageSummary{
			Categories:           counts,
			SourceCount:          len(sources),
			ConfidenceByCategory: confidence,
			ErrorCount:           len(cp.StepErrors),
		},
	}, nil
}

// packageConfidence takes the cross-reference step's adjusted confidences
// when that step recorded them, the extraction's own otherwise.
func packageConfidence(crossRef map[string]any, categories map[string]any) map[string]float64 {
	if adjusted, ok := crossRef["confidence_by_category"].(map[string]any); ok {
		confidence := make(map[string]float64, len(adjusted))
		for category, value := range adjusted {
			if f, ok := value.(float64); ok {
				confidence[category] = f
			}
		}
		if len(confidence) > 0 {
			return confidence
		}
	}

	confidence := map[string]float64{}
	for category, doc := range categories {
		m, ok := doc.(map[string]any)
		if !ok {
			continue
		}
		if value, ok := confidenceOf(m); ok {
			confidence[category] = value
		}
	}
	return confidence
}

// discoveredZones reads the names the discovery step recorded, nil when the
// step was skipped.
func discoveredZones(cp *models.Checkpoint) []string {
	record, ok := cp.PartialExtractions[discoveredZonesKey].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := record["zones"].([]any)
	if !ok {
		return nil
	}
	zones := make([]string, 0, len(raw))
	for _, v := range raw {
		if name, ok := v.(string); ok && name != "" {
			zones = append(zones, name)
		}
	}
	if len(zones) == 0 {
		return nil
	}
	return zones
}

// upsertToStorage mirrors the package into the vector store keyed by zone
// name, when a storage tool set is connected. Failures are logged and
// swallowed: the database row is the package of record.
func (s *Steps) upsertToStorage(ctx context.Context, doc *models.PackageDocument) {
	if s.storage == nil || !s.storage.HasSession(storageToolSet) {
		return
	}
	document, err := toJSONMap(doc)
	if err != nil {
		s.logger.WarnContext(ctx, "storage upsert skipped", "error", err)
		return
	}
	result, err := s.storage.Call(ctx, storageToolSet, "upsert", map[string]any{
		"namespace": "lore_packages",
		"key":       doc.ZoneName,
		"document":  document,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "storage upsert failed", "zone", doc.ZoneName, "error", err)
		return
	}
	if result != nil && result.IsError {
		s.logger.WarnContext(ctx, "storage upsert rejected", "zone", doc.ZoneName)
	}
}

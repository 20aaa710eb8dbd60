package models

import (
	"time"

	"github.com/loreweave/loreweave/ent"
)

// PackageDocument is the assembled lore package for a completed job.
// Categories holds the extracted documents keyed by category name
// (overview, npcs, factions, lore, narrative_items); the engine treats
// their inner shape as opaque.
type PackageDocument struct {
	JobID                string              `json:"job_id"`
	ZoneName             string              `json:"zone_name"`
	Model                string              `json:"model,omitempty"`
	GeneratedAt          time.Time           `json:"generated_at"`
	Categories           map[string]any      `json:"categories"`
	CrossReference       map[string]any      `json:"cross_reference,omitempty"`
	SourcesByTier        map[string][]string `json:"sources_by_tier"`
	ConfidenceByCategory map[string]float64  `json:"confidence_by_category"`
	Errors               []StepError         `json:"errors"`
	TokensUsed           int64               `json:"tokens_used"`
	DiscoveredZones      []string            `json:"discovered_zones,omitempty"`
}

// GroupSourcesByTier buckets deduplicated source URIs under their tier
// name, preserving first-appearance order within each bucket.
func GroupSourcesByTier(refs []SourceRef) map[string][]string {
	grouped := map[string][]string{}
	for _, ref := range refs {
		tier := ref.Tier
		if !tier.Valid() {
			tier = TierTertiary
		}
		grouped[string(tier)] = append(grouped[string(tier)], ref.URI)
	}
	return grouped
}

// PackageResponse wraps a LorePackage row
type PackageResponse struct {
	*ent.LorePackage
}

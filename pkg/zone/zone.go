// Package zone implements the game-world lore pipeline: five agent-driven
// research steps, a schema-validated extraction pass, an LLM-assisted
// cross-reference check, depth-gated discovery of connected zones, and the
// terminal package assembly. The package owns the step registry handed to
// pipeline.Engine; the engine itself never sees zone semantics.
package zone

// Step names in pipeline order. Persisted checkpoints index into this
// sequence, so the names and their order are part of the storage contract.
const (
	StepZoneOverview   = "zone_overview_research"
	StepNPCs           = "npc_research"
	StepFactions       = "faction_research"
	StepLore           = "lore_research"
	StepNarrativeItems = "narrative_items_research"
	StepExtractAll     = "extract_all"
	StepCrossReference = "cross_reference"
	StepDiscoverZones  = "discover_connected_zones"
	StepPackageAndSend = "package_and_send"
)

// Extraction categories. The same keys name checkpoint content topics, the
// top-level properties of the extraction schema, and the category section of
// the published package.
const (
	CategoryOverview       = "overview"
	CategoryNPCs           = "npcs"
	CategoryFactions       = "factions"
	CategoryLore           = "lore"
	CategoryNarrativeItems = "narrative_items"
)

// Checkpoint partial_extractions slots that are not categories.
const (
	crossReferenceKey  = "cross_reference"
	discoveredZonesKey = "discovered_zones"
)

// Tool sets the research agent drives, and the one the assembler pushes
// packages to. Only the sets present in the tool registry are connected.
var agentToolSets = []string{"search", "crawler", "summarizer"}

const storageToolSet = "storage"

// Categories returns the extraction categories in canonical order.
func Categories() []string {
	return []string{
		CategoryOverview,
		CategoryNPCs,
		CategoryFactions,
		CategoryLore,
		CategoryNarrativeItems,
	}
}

// StepNames returns the step names in pipeline order. Status endpoints use
// it to report progress against the full sequence.
func StepNames() []string {
	names := make([]string, 0, len(researchSteps)+4)
	for _, rs := range researchSteps {
		names = append(names, rs.step)
	}
	return append(names, StepExtractAll, StepCrossReference, StepDiscoverZones, StepPackageAndSend)
}

// researchSteps pairs each research step with the focus template it renders
// and the category its findings accumulate under.
var researchSteps = []struct {
	step     string
	category string
	template string
}{
	{StepZoneOverview, CategoryOverview, "zone_overview_research"},
	{StepNPCs, CategoryNPCs, "npc_research"},
	{StepFactions, CategoryFactions, "faction_research"},
	{StepLore, CategoryLore, "lore_research"},
	{StepNarrativeItems, CategoryNarrativeItems, "narrative_items_research"},
}

package zone

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	llmschema "github.com/loreweave/loreweave/pkg/llm/schema"
)

// ZoneExtraction is the structured document extract_all asks the model for.
// Every category carries its own confidence so cross-reference and the
// published package can score categories independently.
type ZoneExtraction struct {
	Overview       OverviewExtraction `json:"overview"`
	NPCs           NPCExtraction      `json:"npcs"`
	Factions       FactionExtraction  `json:"factions"`
	Lore           LoreExtraction     `json:"lore"`
	NarrativeItems ItemExtraction     `json:"narrative_items"`
}

// OverviewExtraction captures zone-level metadata.
type OverviewExtraction struct {
	Name           string   `json:"name" jsonschema:"description=Zone name exactly as sources give it"`
	Region         string   `json:"region,omitempty" jsonschema:"description=Wider region or continent the zone belongs to"`
	LevelRange     string   `json:"level_range,omitempty" jsonschema:"description=Intended level range or difficulty band when sources state one"`
	Climate        string   `json:"climate,omitempty" jsonschema:"description=Terrain and climate in one or two sentences"`
	Description    string   `json:"description" jsonschema:"description=Narrative role and overall character of the zone"`
	Landmarks      []string `json:"landmarks,omitempty" jsonschema:"description=Notable named locations inside the zone"`
	BorderingZones []string `json:"bordering_zones,omitempty" jsonschema:"description=Zones the material names as adjacent or directly reachable"`
	Confidence     float64  `json:"confidence" jsonschema:"minimum=0,maximum=1,description=How completely the material covers this category"`
}

// NPC is one extracted character entry.
type NPC struct {
	Name          string   `json:"name"`
	Titles        []string `json:"titles,omitempty" jsonschema:"description=Titles or aliases the material gives the character"`
	Role          string   `json:"role,omitempty" jsonschema:"description=Quest giver vendor boss or flavor character"`
	Location      string   `json:"location,omitempty" jsonschema:"description=Where in the zone the character is found"`
	Faction       string   `json:"faction,omitempty" jsonschema:"description=Faction affiliation when the material states one"`
	Backstory     string   `json:"backstory,omitempty" jsonschema:"description=Personality and backstory the material supports"`
	Relationships []string `json:"relationships,omitempty" jsonschema:"description=Named relationships to other characters"`
}

// NPCExtraction lists the zone's notable characters.
type NPCExtraction struct {
	Entries    []NPC   `json:"entries"`
	Confidence float64 `json:"confidence" jsonschema:"minimum=0,maximum=1,description=How completely the material covers this category"`
}

// Faction is one extracted faction entry.
type Faction struct {
	Name         string   `json:"name"`
	Goals        string   `json:"goals,omitempty" jsonschema:"description=Goals and ideology as the material describes them"`
	Territory    []string `json:"territory,omitempty" jsonschema:"description=Strongholds camps or areas held inside the zone"`
	Leaders      []string `json:"leaders,omitempty" jsonschema:"description=Leadership figures named by the material"`
	Allies       []string `json:"allies,omitempty"`
	Rivals       []string `json:"rivals,omitempty"`
	PlayerStance string   `json:"player_stance,omitempty" jsonschema:"description=How a player interacts with the faction: reputation questlines hostility"`
}

// FactionExtraction lists the factions active in the zone.
type FactionExtraction struct {
	Entries    []Faction `json:"entries"`
	Confidence float64   `json:"confidence" jsonschema:"minimum=0,maximum=1,description=How completely the material covers this category"`
}

// LoreEntry is one extracted historical event, era, or legend.
type LoreEntry struct {
	Title        string   `json:"title"`
	Era          string   `json:"era,omitempty" jsonschema:"description=Named era or date when the material anchors the entry to one"`
	Account      string   `json:"account" jsonschema:"description=What happened per the material"`
	IsMyth       bool     `json:"is_myth,omitempty" jsonschema:"description=True when the material flags this as in-world belief rather than established fact"`
	Participants []string `json:"participants,omitempty" jsonschema:"description=People or factions the entry involves"`
}

// LoreExtraction lists the zone's history and legends in timeline order.
type LoreExtraction struct {
	Entries    []LoreEntry `json:"entries"`
	Confidence float64     `json:"confidence" jsonschema:"minimum=0,maximum=1,description=How completely the material covers this category"`
}

// NarrativeItem is one extracted story-bearing object.
type NarrativeItem struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind,omitempty" jsonschema:"description=Relic readable book quest object or legendary equipment"`
	Story      string   `json:"story,omitempty" jsonschema:"description=The story the item tells or participates in"`
	Location   string   `json:"location,omitempty" jsonschema:"description=Where the item is found and how it is obtained"`
	FlavorText string   `json:"flavor_text,omitempty" jsonschema:"description=Inscription or flavor text quoted verbatim"`
	References []string `json:"references,omitempty" jsonschema:"description=Characters factions or events the item references"`
}

// ItemExtraction lists the zone's narrative items.
type ItemExtraction struct {
	Entries    []NarrativeItem `json:"entries"`
	Confidence float64         `json:"confidence" jsonschema:"minimum=0,maximum=1,description=How completely the material covers this category"`
}

// Conflict is one internal inconsistency the cross-reference check found.
type Conflict struct {
	Categories  []string `json:"categories" jsonschema:"description=Categories that disagree"`
	Entities    []string `json:"entities" jsonschema:"description=Entities involved in the disagreement"`
	Description string   `json:"description" jsonschema:"description=What the disagreement is"`
}

// ConfidenceAdjustment is a downward correction the cross-reference check
// proposes for one category.
type ConfidenceAdjustment struct {
	Category string  `json:"category"`
	Drop     float64 `json:"drop" jsonschema:"minimum=0,maximum=1,description=Amount to subtract from the category confidence"`
	Reason   string  `json:"reason,omitempty"`
}

// CrossReferenceResult is the structured outcome of the consistency check.
type CrossReferenceResult struct {
	IsConsistent bool                   `json:"is_consistent"`
	Conflicts    []Conflict             `json:"conflicts"`
	Adjustments  []ConfidenceAdjustment `json:"adjustments"`
}

// ConnectedZone is one zone the discovery step found a traversal or
// storyline link to.
type ConnectedZone struct {
	Name       string `json:"name" jsonschema:"description=Connected zone name exactly as sources give it"`
	Connection string `json:"connection,omitempty" jsonschema:"description=Nature of the connection in one line"`
}

// ZoneDiscovery is the structured outcome of the discovery step.
type ZoneDiscovery struct {
	ConnectedZones []ConnectedZone `json:"connected_zones"`
}

var (
	extractionSchema     = llmschema.MustDerive[ZoneExtraction]()
	crossReferenceSchema = llmschema.MustDerive[CrossReferenceResult]()
	discoverySchema      = llmschema.MustDerive[ZoneDiscovery]()
)

// ConfidenceByCategory collects each category's self-reported confidence.
func (e *ZoneExtraction) ConfidenceByCategory() map[string]float64 {
	return map[string]float64{
		CategoryOverview:       e.Overview.Confidence,
		CategoryNPCs:           e.NPCs.Confidence,
		CategoryFactions:       e.Factions.Confidence,
		CategoryLore:           e.Lore.Confidence,
		CategoryNarrativeItems: e.NarrativeItems.Confidence,
	}
}

// categoryDocs returns the per-category documents keyed for checkpoint
// storage, in canonical category order.
func (e *ZoneExtraction) categoryDocs() map[string]any {
	return map[string]any{
		CategoryOverview:       e.Overview,
		CategoryNPCs:           e.NPCs,
		CategoryFactions:       e.Factions,
		CategoryLore:           e.Lore,
		CategoryNarrativeItems: e.NarrativeItems,
	}
}

// extractionSchemaHint renders the category set and its fields as the
// compression target handed to the summarizer, so a summarization pass
// ahead of extraction keeps exactly the values the schema asks for.
func extractionSchemaHint() string {
	props, _ := extractionSchema["properties"].(map[string]any)
	var b strings.Builder
	for _, category := range Categories() {
		fields := schemaFieldNames(props[category])
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", category, strings.Join(fields, ", "))
	}
	return b.String()
}

// schemaFieldNames lists the leaf property names of a category schema. For
// list categories the entry fields matter more than the wrapper, so entries
// are descended into.
func schemaFieldNames(categorySchema any) []string {
	m, ok := categorySchema.(map[string]any)
	if !ok {
		return nil
	}
	props, ok := m["properties"].(map[string]any)
	if !ok {
		return nil
	}

	var names []string
	for name, sub := range props {
		if name == "entries" {
			entry, _ := sub.(map[string]any)
			items, _ := entry["items"].(map[string]any)
			for _, inner := range schemaFieldNames(items) {
				names = append(names, "entries."+inner)
			}
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toJSONMap normalizes a value into the plain-map form a JSON round-trip
// produces. Checkpoint partial_extractions always hold this form, so the
// in-memory document matches what a resumed process reads back.
func toJSONMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding extraction document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding extraction document: %w", err)
	}
	return m, nil
}

// entityCount counts what a category document contributes to the package
// summary: entries for list categories, one for a populated overview.
func entityCount(doc map[string]any) int {
	if entries, ok := doc["entries"].([]any); ok {
		return len(entries)
	}
	if len(doc) == 0 {
		return 0
	}
	return 1
}

// confidenceOf reads the confidence field of a category document. JSON
// round-trips decode numbers as float64, so that is the only shape stored.
func confidenceOf(doc map[string]any) (float64, bool) {
	v, ok := doc["confidence"].(float64)
	return v, ok
}

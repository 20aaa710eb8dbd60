package zone

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmschema "github.com/loreweave/loreweave/pkg/llm/schema"
)

func TestCategories_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []string{
		CategoryOverview,
		CategoryNPCs,
		CategoryFactions,
		CategoryLore,
		CategoryNarrativeItems,
	}, Categories())
}

func TestExtractionSchema_RequiresEveryCategory(t *testing.T) {
	required, ok := extractionSchema["required"].([]any)
	require.True(t, ok)
	for _, category := range Categories() {
		assert.Contains(t, required, category)
	}

	doc := map[string]any{"overview": map[string]any{"name": "x"}}
	assert.Error(t, llmschema.Validate(extractionSchema, doc))

	var full any
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, validExtraction())), &full))
	assert.NoError(t, llmschema.Validate(extractionSchema, full))
}

func TestExtractionSchemaHint_ListsEntryFields(t *testing.T) {
	hint := extractionSchemaHint()

	for _, category := range Categories() {
		assert.Contains(t, hint, category+": ")
	}
	assert.Contains(t, hint, "entries.name")
	assert.Contains(t, hint, "entries.faction")
	assert.Contains(t, hint, "entries.flavor_text")
	assert.Contains(t, hint, "bordering_zones")
	assert.Contains(t, hint, "confidence")
}

func TestEntityCount(t *testing.T) {
	assert.Equal(t, 3, entityCount(map[string]any{"entries": []any{1, 2, 3}}))
	assert.Equal(t, 0, entityCount(map[string]any{"entries": []any{}}))
	assert.Equal(t, 1, entityCount(map[string]any{"name": "x", "confidence": 0.5}))
	assert.Equal(t, 0, entityCount(map[string]any{}))
}

func TestToJSONMap_NormalizesNumbers(t *testing.T) {
	m, err := toJSONMap(NPCExtraction{Entries: []NPC{{Name: "Maro"}}, Confidence: 1})
	require.NoError(t, err)

	value, ok := confidenceOf(m)
	require.True(t, ok)
	assert.Equal(t, 1.0, value)

	entries, ok := m["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Maro", entries[0].(map[string]any)["name"])
}

func TestConfidenceOf_MissingField(t *testing.T) {
	_, ok := confidenceOf(map[string]any{"entries": []any{}})
	assert.False(t, ok)
}

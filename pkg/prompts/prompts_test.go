package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllTemplatesPresent(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	expected := []string{
		"chunk_summary",
		"conclude",
		"cross_reference",
		"discover_connected_zones",
		"extraction",
		"extraction_repair",
		"faction_research",
		"focus_areas",
		"lore_research",
		"merge_summaries",
		"narrative_items_research",
		"npc_research",
		"research_report",
		"research_system",
		"summarize_for_extraction",
		"zone_overview_research",
	}
	assert.Equal(t, expected, lib.Names())
}

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	lib := MustLoad()

	rendered, err := lib.Render("chunk_summary", map[string]string{
		"content":            "The Ashen Spire overlooks the valley.",
		"focus_instructions": "Focus on named locations.",
		"max_tokens":         "750",
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "The Ashen Spire overlooks the valley.")
	assert.Contains(t, rendered, "Focus on named locations.")
	assert.Contains(t, rendered, "at most 750 tokens")
	assert.NotContains(t, rendered, "{content}")
	assert.NotContains(t, rendered, "{max_tokens}")
}

func TestRender_MissingPlaceholderFails(t *testing.T) {
	lib := MustLoad()

	_, err := lib.Render("chunk_summary", map[string]string{
		"content": "some text",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPlaceholder)
	assert.Contains(t, err.Error(), "focus_instructions")
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestRender_UnknownTemplateFails(t *testing.T) {
	lib := MustLoad()

	_, err := lib.Render("no_such_template", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRender_ExtraVarsIgnored(t *testing.T) {
	lib := MustLoad()

	rendered, err := lib.Render("zone_overview_research", map[string]string{
		"zone_name": "Duskmire",
		"unused":    "ignored",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "Duskmire")
}

func TestPlaceholders(t *testing.T) {
	lib := MustLoad()

	tests := []struct {
		template string
		want     []string
	}{
		{"research_system", []string{"zone_name"}},
		{"zone_overview_research", []string{"zone_name"}},
		{"npc_research", []string{"known_context", "zone_name"}},
		{"extraction", []string{"category", "content", "zone_name"}},
		{"extraction_repair", []string{"category", "content", "malformed_response", "validation_error", "zone_name"}},
		{"cross_reference", []string{"extractions", "zone_name"}},
		{"chunk_summary", []string{"content", "focus_instructions", "max_tokens"}},
		{"merge_summaries", []string{"focus_instructions", "max_tokens", "summaries"}},
		{"summarize_for_extraction", []string{"content", "max_tokens", "schema_hint"}},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got, err := lib.Placeholders(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every template must render cleanly when all of its placeholders are
// supplied — no placeholder may survive substitution.
func TestRender_AllTemplatesRenderClean(t *testing.T) {
	lib := MustLoad()

	for _, name := range lib.Names() {
		t.Run(name, func(t *testing.T) {
			placeholders, err := lib.Placeholders(name)
			require.NoError(t, err)

			vars := make(map[string]string, len(placeholders))
			for _, p := range placeholders {
				vars[p] = "VALUE-" + strings.ToUpper(p)
			}

			rendered, err := lib.Render(name, vars)
			require.NoError(t, err)
			assert.Empty(t, placeholderPattern.FindAllString(rendered, -1))
			for _, p := range placeholders {
				assert.Contains(t, rendered, "VALUE-"+strings.ToUpper(p))
			}
		})
	}
}

package schema

import (
	"encoding/json"
	"testing"

	jsv "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type creature struct {
	Name  string   `json:"name" jsonschema:"description=Creature display name"`
	Level int      `json:"level"`
	Tags  []string `json:"tags,omitempty"`
}

func TestDerive_CreatureSchema(t *testing.T) {
	m, err := Derive[creature]()
	require.NoError(t, err)

	assert.Equal(t, "object", m["type"])
	assert.NotContains(t, m, "$schema")
	assert.NotContains(t, m, "$id")

	props, ok := m["properties"].(map[string]any)
	require.True(t, ok, "properties should be a map")
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "level")
	assert.Contains(t, props, "tags")

	name := props["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "Creature display name", name["description"])

	level := props["level"].(map[string]any)
	assert.Equal(t, "integer", level["type"])

	// omitempty fields stay optional; everything else is required.
	assert.ElementsMatch(t, []any{"name", "level"}, m["required"])
	assert.Equal(t, false, m["additionalProperties"])
}

func TestMustDerive_DoesNotPanicForValidType(t *testing.T) {
	assert.NotPanics(t, func() {
		m := MustDerive[creature]()
		assert.Equal(t, "object", m["type"])
	})
}

func TestValidate(t *testing.T) {
	schema := MustDerive[creature]()

	decode := func(t *testing.T, raw string) any {
		t.Helper()
		var doc any
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))
		return doc
	}

	t.Run("valid document passes", func(t *testing.T) {
		err := Validate(schema, decode(t, `{"name": "Gorb", "level": 3, "tags": ["swamp"]}`))
		assert.NoError(t, err)
	})

	t.Run("missing required property fails", func(t *testing.T) {
		err := Validate(schema, decode(t, `{"name": "Gorb"}`))
		require.Error(t, err)

		var ve *jsv.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, err.Error(), "level")
	})

	t.Run("wrong type fails", func(t *testing.T) {
		err := Validate(schema, decode(t, `{"name": "Gorb", "level": "three"}`))
		assert.Error(t, err)
	})

	t.Run("unknown property fails", func(t *testing.T) {
		err := Validate(schema, decode(t, `{"name": "Gorb", "level": 3, "alignment": "chaotic"}`))
		assert.Error(t, err)
	})
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object unchanged",
			in:   `{"x":1}`,
			want: `{"x":1}`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "plain fence with array",
			in:   "```\n[1, 2]\n```",
			want: `[1, 2]`,
		},
		{
			name: "prose around object",
			in:   "Here is the result:\n{\"ok\": true}\nLet me know!",
			want: `{"ok": true}`,
		},
		{
			name: "trailing prose after nested object",
			in:   `{"a": {"b": 2}} and that is everything`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "no json returns trimmed input",
			in:   "  I could not find anything.  ",
			want: "I could not find anything.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.in))
		})
	}
}

func TestUnmarshal(t *testing.T) {
	schema := MustDerive[creature]()

	t.Run("fenced response decodes", func(t *testing.T) {
		out, err := Unmarshal[creature](schema, "```json\n{\"name\": \"Gorb\", \"level\": 3}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Gorb", out.Name)
		assert.Equal(t, 3, out.Level)
	})

	t.Run("validation failure names the property", func(t *testing.T) {
		_, err := Unmarshal[creature](schema, `{"name": "Gorb"}`)
		require.Error(t, err)

		var ve *jsv.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, err.Error(), "level")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Unmarshal[creature](schema, `{"name": `)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing response JSON")
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := Unmarshal[creature](schema, "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no JSON")
	})

	t.Run("nil schema skips validation", func(t *testing.T) {
		out, err := Unmarshal[creature](nil, `{"name": "Gorb", "level": 2}`)
		require.NoError(t, err)
		assert.Equal(t, 2, out.Level)
	})
}

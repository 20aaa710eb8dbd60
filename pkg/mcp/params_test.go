package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments_Empty(t *testing.T) {
	result, err := ParseArguments("")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, result)
}

func TestParseArguments_Whitespace(t *testing.T) {
	result, err := ParseArguments("   \n  ")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, result)
}

func TestParseArguments_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:  "json object",
			input: `{"query": "emberfall reach", "limit": 10}`,
			expected: map[string]any{
				"query": "emberfall reach",
				"limit": float64(10),
			},
		},
		{
			name:  "json object with nested",
			input: `{"filter": {"tier": "official"}, "query": "patch notes"}`,
			expected: map[string]any{
				"filter": map[string]any{"tier": "official"},
				"query":  "patch notes",
			},
		},
		{
			name:  "json array wraps in input",
			input: `["page1", "page2"]`,
			expected: map[string]any{
				"input": []any{"page1", "page2"},
			},
		},
		{
			name:  "json string wraps in input",
			input: `"hello world"`,
			expected: map[string]any{
				"input": "hello world",
			},
		},
		{
			name:  "json number wraps in input",
			input: `42`,
			expected: map[string]any{
				"input": float64(42),
			},
		},
		{
			name:  "json boolean wraps in input",
			input: `true`,
			expected: map[string]any{
				"input": true,
			},
		},
		{
			name:  "json false wraps in input",
			input: `false`,
			expected: map[string]any{
				"input": false,
			},
		},
		{
			name:  "json null wraps in input",
			input: `null`,
			expected: map[string]any{
				"input": nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseArguments(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseArguments_YAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name: "yaml with nested list",
			input: `urls:
  - https://wiki.example/emberfall
  - https://lore.example/reach
depth: full`,
			expected: map[string]any{
				"urls":  []any{"https://wiki.example/emberfall", "https://lore.example/reach"},
				"depth": "full",
			},
		},
		{
			name: "yaml with nested map",
			input: `filter:
  tier: official
  lang: en`,
			expected: map[string]any{
				"filter": map[string]any{
					"tier": "official",
					"lang": "en",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseArguments(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseArguments_KeyValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:  "colon separated",
			input: "query: emberfall",
			expected: map[string]any{
				"query": "emberfall",
			},
		},
		{
			name:  "equals separated",
			input: "query=emberfall",
			expected: map[string]any{
				"query": "emberfall",
			},
		},
		{
			name:  "comma separated multiple",
			input: "query: emberfall, limit: 10",
			expected: map[string]any{
				"query": "emberfall",
				"limit": int64(10),
			},
		},
		{
			name:  "newline separated multiple",
			input: "query: emberfall\nlimit: 10",
			expected: map[string]any{
				"query": "emberfall",
				"limit": int64(10),
			},
		},
		{
			name:  "mixed separators",
			input: "query: emberfall, strict=true\nlimit: 5",
			expected: map[string]any{
				"query":  "emberfall",
				"strict": true,
				"limit":  int64(5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseArguments(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseArguments_RawString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:  "plain text",
			input: "find every named blacksmith in the zone",
			expected: map[string]any{
				"input": "find every named blacksmith in the zone",
			},
		},
		{
			name:  "single word",
			input: "emberfall",
			expected: map[string]any{
				"input": "emberfall",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseArguments(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "true", input: "true", expected: true},
		{name: "True", input: "True", expected: true},
		{name: "TRUE", input: "TRUE", expected: true},
		{name: "false", input: "false", expected: false},
		{name: "False", input: "False", expected: false},
		{name: "null", input: "null", expected: nil},
		{name: "none", input: "none", expected: nil},
		{name: "None", input: "None", expected: nil},
		{name: "integer", input: "42", expected: int64(42)},
		{name: "negative integer", input: "-5", expected: int64(-5)},
		{name: "float", input: "3.14", expected: 3.14},
		{name: "NaN stays string", input: "NaN", expected: "NaN"},
		{name: "Inf stays string", input: "Inf", expected: "Inf"},
		{name: "-Inf stays string", input: "-Inf", expected: "-Inf"},
		{name: "+Inf stays string", input: "+Inf", expected: "+Inf"},
		{name: "string", input: "hello", expected: "hello"},
		{name: "whitespace", input: "  hello  ", expected: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := coerceValue(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseArguments_JSONPriority(t *testing.T) {
	// JSON with colon-separated values should parse as JSON, not key-value
	input := `{"key": "value"}`
	result, err := ParseArguments(input)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"key": "value"}, result)
}

func TestParseArguments_SimpleYAMLFallsToKeyValue(t *testing.T) {
	// Simple key: value without complex structures should be handled by
	// key-value parser, not YAML, to avoid false positives
	input := "query: emberfall"
	result, err := ParseArguments(input)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"query": "emberfall"}, result)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "braced substitution",
			input: "api_key: ${API_KEY}",
			env:   map[string]string{"API_KEY": "secret123"},
			want:  "api_key: secret123",
		},
		{
			name:  "bare substitution",
			input: "host: $DB_HOST",
			env:   map[string]string{"DB_HOST": "localhost"},
			want:  "host: localhost",
		},
		{
			name:  "multiple substitutions in one line",
			input: "url: ${PROTOCOL}://${HOST}:${PORT}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "example.com",
				"PORT":     "443",
			},
			want: "url: https://example.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: ${MISSING_VAR}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "default used when variable unset",
			input: "endpoint: ${MISSING_VAR:-http://localhost:9201}",
			env:   map[string]string{},
			want:  "endpoint: http://localhost:9201",
		},
		{
			name:  "default used when variable set but empty",
			input: "model: ${LLM_MODEL:-anthropic:claude-sonnet-4-5}",
			env:   map[string]string{"LLM_MODEL": ""},
			want:  "model: anthropic:claude-sonnet-4-5",
		},
		{
			name:  "default ignored when variable set",
			input: "model: ${LLM_MODEL:-anthropic:claude-sonnet-4-5}",
			env:   map[string]string{"LLM_MODEL": "openai:gpt-5"},
			want:  "model: openai:gpt-5",
		},
		{
			name:  "empty default",
			input: "token: ${MISSING:-}",
			env:   map[string]string{},
			want:  "token: ",
		},
		{
			name:  "default containing colon and slash",
			input: "url: ${SEARCH_URL:-http://search:9201/mcp}",
			env:   map[string]string{},
			want:  "url: http://search:9201/mcp",
		},
		{
			name:  "escaped dollar is preserved",
			input: "pattern: ^secret.*$$",
			env:   map[string]string{},
			want:  "pattern: ^secret.*$",
		},
		{
			name:  "escaped reference is not expanded",
			input: "literal: $${NOT_A_VAR}",
			env:   map[string]string{"NOT_A_VAR": "value"},
			want:  "literal: ${NOT_A_VAR}",
		},
		{
			name:  "no substitution when no references",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "references in YAML array",
			input: "args:\n  - ${ARG1}\n  - ${ARG2}",
			env: map[string]string{
				"ARG1": "value1",
				"ARG2": "value2",
			},
			want: "args:\n  - value1\n  - value2",
		},
		{
			name:  "references in nested YAML structure",
			input: "config:\n  host: ${HOST}\n  port: ${PORT}",
			env: map[string]string{
				"HOST": "localhost",
				"PORT": "5432",
			},
			want: "config:\n  host: localhost\n  port: 5432",
		},
		{
			name:  "special characters in expanded value",
			input: "password: ${PASSWORD}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#%"},
			want:  "password: p@ssw0rd!#%",
		},
		{
			name:  "lone dollar before non-name character untouched",
			input: "price: $5",
			env:   map[string]string{},
			want:  "price: $5",
		},
		{
			name:  "underscore names",
			input: "endpoint: ${TOOL_SEARCH_URL}",
			env:   map[string]string{"TOOL_SEARCH_URL": "http://search:9201/mcp"},
			want:  "endpoint: http://search:9201/mcp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExpandEnv_ResultStaysValidYAML(t *testing.T) {
	t.Setenv("ENDPOINT", "http://search:9201/mcp")
	t.Setenv("TIMEOUT", "30")

	input := []byte(`
tools:
  search:
    endpoint: ${ENDPOINT}
    timeout: ${TIMEOUT}
    read_timeout: ${MISSING_READ_TIMEOUT:-60}
`)

	expanded := ExpandEnv(input)

	var parsed struct {
		Tools map[string]ToolSetConfig `yaml:"tools"`
	}
	require.NoError(t, yaml.Unmarshal(expanded, &parsed))

	search := parsed.Tools["search"]
	assert.Equal(t, "http://search:9201/mcp", search.Endpoint)
	assert.Equal(t, 30, search.Timeout)
	assert.Equal(t, 60, search.ReadTimeout)
}

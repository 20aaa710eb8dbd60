package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifyToolName(t *testing.T) {
	assert.Equal(t, "search.web_search", QualifyToolName("search", "web_search"))
	assert.Equal(t, "lore-archive.lookup", QualifyToolName("lore-archive", "lookup"))
}

func TestQualifyThenSplitRoundTrip(t *testing.T) {
	qualified := QualifyToolName("crawler", "crawl_page")
	set, tool, err := SplitToolName(qualified)
	require.NoError(t, err)
	assert.Equal(t, "crawler", set)
	assert.Equal(t, "crawl_page", tool)
}

func TestSplitToolName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSet  string
		wantTool string
		wantErr  bool
	}{
		{
			name:     "valid simple",
			input:    "search.web_search",
			wantSet:  "search",
			wantTool: "web_search",
		},
		{
			name:     "valid with hyphens",
			input:    "lore-archive.get-page",
			wantSet:  "lore-archive",
			wantTool: "get-page",
		},
		{
			name:     "valid with numbers",
			input:    "search1.tool2",
			wantSet:  "search1",
			wantTool: "tool2",
		},
		{
			name:     "valid with underscores",
			input:    "my_set.my_tool",
			wantSet:  "my_set",
			wantTool: "my_tool",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no dot",
			input:   "search_web_search",
			wantErr: true,
		},
		{
			name:    "multiple dots",
			input:   "set.tool.extra",
			wantErr: true,
		},
		{
			name:    "dot at start",
			input:   ".tool",
			wantErr: true,
		},
		{
			name:    "dot at end",
			input:   "search.",
			wantErr: true,
		},
		{
			name:    "only dot",
			input:   ".",
			wantErr: true,
		},
		{
			name:    "spaces in name",
			input:   "my set.my tool",
			wantErr: true,
		},
		{
			name:    "starts with hyphen",
			input:   "-set.tool",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, tool, err := SplitToolName(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, set)
				assert.Empty(t, tool)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, set)
			assert.Equal(t, tt.wantTool, tool)
		})
	}
}

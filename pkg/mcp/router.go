package mcp

import (
	"fmt"
	"regexp"
)

// toolNameRegex validates the "tool_set.tool" format. Both parts must start
// with a word character and contain only word characters and hyphens.
var toolNameRegex = regexp.MustCompile(`^([\w][\w-]*)\.([\w][\w-]*)$`)

// QualifyToolName joins a tool set prefix and a tool name into the qualified
// form the model sees.
func QualifyToolName(prefix, tool string) string {
	return prefix + "." + tool
}

// SplitToolName splits "tool_set.tool" into (toolSet, tool, error).
// Validates format with a strict regex: both parts must be word characters
// and hyphens, non-empty.
func SplitToolName(name string) (toolSet, tool string, err error) {
	matches := toolNameRegex.FindStringSubmatch(name)
	if matches == nil {
		return "", "", fmt.Errorf(
			"invalid tool name %q: must be in 'tool_set.tool' format "+
				"(e.g., 'search.web_search')", name)
	}
	return matches[1], matches[2], nil
}

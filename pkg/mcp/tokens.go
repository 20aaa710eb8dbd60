package mcp

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charsPerToken is the approximate number of characters per token for English
// text. Used for threshold estimation only — not exact token counting.
const charsPerToken = 4

// DefaultAuditMaxTokens is the maximum token count for tool output stored on
// audit rows. Protects readers (and the events table) from massive text blobs.
const DefaultAuditMaxTokens = 8000

// EstimateTokens returns an approximate token count for the given text using
// the ~4 characters per token heuristic. Exact counts live in pkg/budget;
// here the threshold is a soft limit, so the cheap estimate is enough.
//
// Note: len(text) counts bytes, not Unicode characters. For multi-byte UTF-8
// content this overestimates, which errs in the safe direction — truncation
// triggers slightly earlier than necessary.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken // Round up
}

// TruncateToTokens cuts content to approximately maxTokens, at the last line
// boundary before the limit. maxTokens <= 0 disables truncation.
func TruncateToTokens(content string, maxTokens int, marker string) string {
	if maxTokens <= 0 {
		return content
	}
	return truncateAtLineBoundary(content, maxTokens*charsPerToken, marker)
}

// TruncateForAudit truncates tool output destined for audit rows (tool_calls,
// interaction records). Applied to all raw results regardless of size checks
// elsewhere.
func TruncateForAudit(content string) string {
	return truncateAtLineBoundary(content, DefaultAuditMaxTokens*charsPerToken,
		"output exceeded audit storage limit")
}

// truncateAtLineBoundary is the shared truncation logic. It cuts at the last
// newline before the limit to avoid splitting mid-line — important when the
// content is indented JSON, YAML, or crawled page text.
//
// maxChars is a byte limit (consistent with EstimateTokens using len()). The
// cut point is adjusted backwards to avoid splitting multi-byte UTF-8
// characters, then further adjusted to the last newline when possible.
func truncateAtLineBoundary(content string, maxChars int, marker string) string {
	if maxChars <= 0 || len(content) <= maxChars {
		return content
	}
	// Ensure we don't split a multi-byte UTF-8 character
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: %s. Original size: %s, limit: %s]",
		marker, formatSize(len(content)), formatSize(maxChars),
	)
}

// formatSize returns a human-readable size string. Uses bytes for values
// under 1KB to avoid confusing "0KB" output on small content.
func formatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	return fmt.Sprintf("%dKB", bytes/1024)
}

package config

import (
	"bytes"
	"os"
	"regexp"
)

// envPattern matches, in order: an escaped dollar ($$), a braced reference
// with optional default (${VAR} / ${VAR:-default}), and a bare reference
// ($VAR). Group 1 is the braced name, group 2 the default, group 3 the
// bare name.
var envPattern = regexp.MustCompile(`\$\$|\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// ExpandEnv expands environment variable references in YAML content.
//
// Supported forms:
//   - ${VAR}           → value of VAR, empty string when unset
//   - ${VAR:-default}  → value of VAR, or default when unset or empty
//   - $VAR             → value of VAR, empty string when unset
//   - $$               → literal $
//
// Literal dollar signs in config values (regex patterns, passwords) must be
// escaped as $$. Missing variables without a default expand to empty string;
// validation catches required fields that end up empty.
func ExpandEnv(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		if string(match) == "$$" {
			return []byte("$")
		}
		groups := envPattern.FindSubmatch(match)
		name := string(groups[1])
		if name == "" {
			name = string(groups[3])
		}
		value := os.Getenv(name)
		// Variable names cannot contain ':', so ":-" in the match means a
		// default was supplied.
		if value == "" && bytes.Contains(match, []byte(":-")) {
			return groups[2]
		}
		return []byte(value)
	})
}

// Package schema derives JSON Schemas from Go types and validates model
// output against them. Derived schemas are plain maps so they can be embedded
// in provider requests; validation errors carry enough detail to drive a
// repair prompt.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	jsv "github.com/santhosh-tekuri/jsonschema/v6"
)

// Derive builds a JSON Schema for T as a plain map. Fields follow json and
// jsonschema struct tags; fields without omitempty are required, and object
// schemas reject unknown properties.
func Derive[T any]() (map[string]any, error) {
	reflector := &jsonschema.Reflector{
		// Inline nested definitions so the schema is self-contained; the
		// Gemini schema conversion cannot resolve $ref.
		ExpandedStruct: true,
		DoNotReference: true,
	}
	s := reflector.Reflect(new(T))

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling derived schema: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding derived schema: %w", err)
	}
	delete(m, "$schema")
	delete(m, "$id")
	return m, nil
}

// MustDerive is Derive for package-level schema variables.
func MustDerive[T any]() map[string]any {
	m, err := Derive[T]()
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks a decoded JSON document (the result of json.Unmarshal into
// any) against a schema map.
func Validate(schema map[string]any, doc any) error {
	compiler := jsv.NewCompiler()
	if err := compiler.AddResource("schema.json", schema); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	return compiled.Validate(doc)
}

// CleanJSON strips the decoration models wrap around JSON output: markdown
// code fences and prose before or after the outermost object or array.
func CleanJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end > start {
		return s[start : end+1]
	}
	return s
}

// Unmarshal cleans, parses, validates, and decodes a model response into T.
// The returned error text is suitable for a repair prompt: it names the
// failing property and constraint.
func Unmarshal[T any](schema map[string]any, raw string) (*T, error) {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return nil, errors.New("response contains no JSON")
	}

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("parsing response JSON: %w", err)
	}
	if schema != nil {
		if err := Validate(schema, doc); err != nil {
			return nil, err
		}
	}

	var out T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}

// Package prompts loads the prompt templates baked into the binary and
// renders them with named-placeholder substitution. Templates live under
// templates/ as markdown; code never carries prompt literals, so prompt
// iteration is a file edit, not a rebuild of call sites.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed templates
var templateFS embed.FS

var (
	ErrTemplateNotFound   = errors.New("prompt template not found")
	ErrMissingPlaceholder = errors.New("missing placeholder value")
)

// placeholderPattern matches {name} references. Names are lowercase with
// underscores, which keeps JSON braces in template examples from matching.
var placeholderPattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Library holds the loaded templates keyed by file name without extension.
type Library struct {
	templates map[string]string
}

// Load reads every markdown template from the embedded filesystem.
func Load() (*Library, error) {
	templates := make(map[string]string)

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		data, err := templateFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read embedded template %s: %w", path, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return fmt.Errorf("embedded template %s is empty", path)
		}

		name := strings.TrimSuffix(d.Name(), ".md")
		templates[name] = string(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, errors.New("no prompt templates embedded")
	}

	return &Library{templates: templates}, nil
}

// MustLoad loads the embedded templates and panics on error. Use at startup
// where a missing template is unrecoverable.
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt templates: %v", err))
	}
	return lib
}

// Names returns the loaded template names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template with the given name is loaded.
func (l *Library) Has(name string) bool {
	_, ok := l.templates[name]
	return ok
}

// Render substitutes vars into the named template. Every placeholder in
// the template must have a value; unused vars are ignored.
func (l *Library) Render(name string, vars map[string]string) (string, error) {
	tmpl, ok := l.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var missing []string
	rendered := placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := vars[key]
		if !ok {
			missing = append(missing, key)
			return match
		}
		return value
	})
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("%w: template %s needs %s",
			ErrMissingPlaceholder, name, strings.Join(dedupe(missing), ", "))
	}

	return rendered, nil
}

// Placeholders returns the sorted unique placeholder names the template
// references. Useful for validating call sites in tests.
func (l *Library) Placeholders(name string) ([]string, error) {
	tmpl, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		names = append(names, m[1])
	}
	sort.Strings(names)
	return dedupe(names), nil
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

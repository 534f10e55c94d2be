package render

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cbroglie/mustache"
)

//go:embed templates/*.mustache
var builtins embed.FS

// Formats returns the base names of the bundled templates, sorted.
func Formats() []string {
	entries, err := builtins.ReadDir("templates")
	if err != nil {
		return nil
	}
	formats := make([]string, 0, len(entries))
	for _, entry := range entries {
		formats = append(formats, strings.TrimSuffix(entry.Name(), ".mustache"))
	}
	sort.Strings(formats)
	return formats
}

// Resolve maps a template selector to a renderer. The literal "json" selects
// raw JSON output; a bundled format name selects the corresponding built-in
// template; anything else is read from disk as an external template file.
func Resolve(selector string) (Renderer, error) {
	if selector == "json" {
		return JSON{}, nil
	}

	for _, format := range Formats() {
		if selector == format {
			source, err := builtins.ReadFile("templates/" + format + ".mustache")
			if err != nil {
				return nil, fmt.Errorf("%s: %w", selector, err)
			}
			return &Template{
				Name:     selector,
				Source:   string(source),
				Partials: builtinPartials(),
			}, nil
		}
	}

	source, err := os.ReadFile(selector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", selector, err)
	}
	return &Template{
		Name:   selector,
		Source: string(source),
		Partials: &mustache.FileProvider{
			Paths:      []string{filepath.Dir(selector)},
			Extensions: []string{"", ".mustache"},
		},
	}, nil
}

// builtinPartials exposes every bundled template as a partial so built-in
// formats can reference each other.
func builtinPartials() mustache.PartialProvider {
	partials := make(map[string]string)
	for _, format := range Formats() {
		source, err := builtins.ReadFile("templates/" + format + ".mustache")
		if err != nil {
			continue
		}
		partials[format] = string(source)
	}
	return &mustache.StaticProvider{Partials: partials}
}

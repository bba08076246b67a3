// Package seed parses structural seed documents into the closed variant
// set templates accept: maps, lists, and scalars. Parsing is in-memory
// only; callers own any file handling.
package seed

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-prototype/pkg/container"
)

// Parse decodes a YAML (or JSON) document into seed data suitable for
// template.WithSeed. The document root must be a mapping or a sequence.
func Parse(data []byte) (container.Value, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed: parse document: %w", err)
	}
	switch doc.(type) {
	case nil, map[string]any, map[any]any, []any:
		return doc, nil
	}
	return nil, fmt.Errorf("seed: document root must be a map or list, got %T", doc)
}

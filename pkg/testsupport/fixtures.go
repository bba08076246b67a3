// Package testsupport hosts fixture helpers shared by contract tests.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-prototype/pkg/container"
	"github.com/goliatone/go-prototype/pkg/seed"
	"github.com/goliatone/go-prototype/pkg/template"
)

// SeedDoc parses an inline YAML seed document, failing the test on error.
func SeedDoc(t *testing.T, doc string) container.Value {
	t.Helper()

	parsed, err := seed.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	return parsed
}

// NewContainer instantiates a bare container from an inline YAML seed.
func NewContainer(t *testing.T, doc string) *container.Container {
	t.Helper()

	tmpl, err := template.FromSeed(SeedDoc(t, doc))
	if err != nil {
		t.Fatalf("template from seed: %v", err)
	}
	c, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create container: %v", err)
	}
	return c
}

// Entries drains a container's enumeration into a plain map so tests can
// diff it structurally.
func Entries(t *testing.T, c *container.Container) map[container.Value]container.Value {
	t.Helper()

	seq, err := c.All()
	if err != nil {
		t.Fatalf("enumerate container: %v", err)
	}
	out := map[container.Value]container.Value{}
	for key, value := range seq {
		out[key] = value
	}
	return out
}

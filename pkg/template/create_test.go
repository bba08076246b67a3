package template_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-prototype/pkg/container"
	"github.com/goliatone/go-prototype/pkg/template"
	"github.com/goliatone/go-prototype/pkg/testsupport"
)

func TestCreateInstancesAreIndependent(t *testing.T) {
	tmpl, err := template.FromSeed(map[string]any{"items": []any{"a"}})
	if err != nil {
		t.Fatalf("from seed: %v", err)
	}

	first, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := first.Set("items", "replaced"); err != nil {
		t.Fatalf("mutate first: %v", err)
	}
	items, err := second.Get("items")
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if diff := cmp.Diff([]any{"a"}, items); diff != "" {
		t.Fatalf("instances share state (-want +got):\n%s", diff)
	}
}

func TestCreateAdoptsBaseContents(t *testing.T) {
	base := testsupport.NewContainer(t, "existing: kept")
	tmpl, err := template.Make(container.Spec{"x-flag": true}, template.WithSeed(map[string]any{"seeded": true}))
	if err != nil {
		t.Fatalf("make: %v", err)
	}

	decorated, err := tmpl.Create(base)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if decorated != base {
		t.Fatalf("base must be adopted, not replaced")
	}
	value, err := decorated.Get("existing")
	if err != nil || value != "kept" {
		t.Fatalf("prior contents must survive decoration, got %v (%v)", value, err)
	}
	if _, ok := decorated.RawGet("seeded"); ok {
		t.Fatalf("seed must not apply when a base is supplied")
	}
	if entry, ok := decorated.Trap("x-flag"); !ok || entry != true {
		t.Fatalf("expected spec attached to base, got %v (%v)", entry, ok)
	}
}

func TestCreateWithoutSeedStartsEmpty(t *testing.T) {
	tmpl, err := template.Make(nil)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	c, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := c.RawLen(); got != 0 {
		t.Fatalf("expected empty container, got %d entries", got)
	}
}

func TestCreateFromListSeedKeepsOrder(t *testing.T) {
	tmpl, err := template.FromSeed([]any{"a", "b", "c"})
	if err != nil {
		t.Fatalf("from seed: %v", err)
	}
	c, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var values []container.Value
	indexed, err := c.Indexed()
	if err != nil {
		t.Fatalf("indexed: %v", err)
	}
	for _, value := range indexed {
		values = append(values, value)
	}
	if diff := cmp.Diff([]container.Value{"a", "b", "c"}, values); diff != "" {
		t.Fatalf("ordered seed mismatch (-want +got):\n%s", diff)
	}
}

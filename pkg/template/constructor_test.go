package template_test

import (
	"testing"

	"github.com/goliatone/go-prototype/pkg/container"
	"github.com/goliatone/go-prototype/pkg/template"
)

func TestWrapConstructorFinalizesResult(t *testing.T) {
	ctor := template.WrapConstructor(func(args ...container.Value) *template.Template {
		merged, err := template.AutoZero().CombineWith(template.AutoNested())
		if err != nil {
			t.Fatalf("combine: %v", err)
		}
		return merged
	})

	tmpl, err := ctor()
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	c, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// AutoNested registered last, so its read trap wins.
	value, err := c.Get("missing")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, ok := value.(*container.Container); !ok {
		t.Fatalf("expected later trap to win, got %T", value)
	}
}

func TestWrapConstructorRejectsNilResult(t *testing.T) {
	ctor := template.WrapConstructor(func(args ...container.Value) *template.Template {
		return nil
	})
	if _, err := ctor(); err == nil {
		t.Fatalf("expected error for nil factory result")
	}
}

func TestWrapConstructorCopiesSuppliedSeed(t *testing.T) {
	seed := map[string]any{"k": 1}
	ctor := template.WrapConstructor(func(args ...container.Value) *template.Template {
		tmpl, err := template.FromSeed(seed)
		if err != nil {
			t.Fatalf("from seed: %v", err)
		}
		return tmpl
	})

	tmpl, err := ctor()
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	seed["k"] = 99
	copied, _ := tmpl.Seed()
	if got := copied.(map[string]any)["k"]; got != 1 {
		t.Fatalf("finalized template aliases factory seed: got %v", got)
	}
}

func TestRegisterConstructorLookup(t *testing.T) {
	template.RegisterConstructor("counting", func(args ...container.Value) *template.Template {
		return template.AutoZero()
	})

	ctor, ok := template.LookupConstructor("counting")
	if !ok {
		t.Fatalf("expected registered constructor")
	}
	tmpl, err := ctor()
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	c, err := tmpl.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if value, err := c.Get("n"); err != nil || value != 0 {
		t.Fatalf("expected auto-zero behavior, got %v (%v)", value, err)
	}

	if _, ok := template.LookupConstructor("unregistered"); ok {
		t.Fatalf("unexpected constructor for unknown name")
	}
}

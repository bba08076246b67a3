package clone_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-prototype/internal/clone"
)

func TestAnyCopiesNestedStructures(t *testing.T) {
	original := map[string]any{
		"scalar": 1,
		"list":   []any{"a", map[any]any{"x": true}},
		"nested": map[string]any{"inner": []any{1, 2}},
	}

	copied, err := clone.Any(original)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if diff := cmp.Diff(original, copied); diff != "" {
		t.Fatalf("copy differs (-want +got):\n%s", diff)
	}

	original["nested"].(map[string]any)["inner"].([]any)[0] = 99
	got := copied.(map[string]any)["nested"].(map[string]any)["inner"].([]any)[0]
	if got != 1 {
		t.Fatalf("copy aliases original nested slice: got %v", got)
	}
}

func TestAnyPassesScalarsAndFunctionsThrough(t *testing.T) {
	fn := func() {}
	copied, err := clone.Any([]any{1, "s", fn})
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	items := copied.([]any)
	if items[0] != 1 || items[1] != "s" || items[2] == nil {
		t.Fatalf("unexpected scalar copy: %v", items)
	}
}

func TestAnyDetectsMapCycle(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	if _, err := clone.Any(cyclic); !errors.Is(err, clone.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestAnyDetectsSliceCycle(t *testing.T) {
	cyclic := []any{nil}
	cyclic[0] = cyclic

	if _, err := clone.Any(cyclic); !errors.Is(err, clone.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestAnyAllowsSharedSiblings(t *testing.T) {
	shared := map[string]any{"k": 1}
	value := []any{shared, shared}

	copied, err := clone.Any(value)
	if err != nil {
		t.Fatalf("shared siblings are not a cycle: %v", err)
	}
	if diff := cmp.Diff(value, copied); diff != "" {
		t.Fatalf("copy differs (-want +got):\n%s", diff)
	}
}

// Package clone provides the recursive structural copy used to keep
// template seeds and instantiated containers from aliasing each other.
package clone

import (
	"errors"
	"reflect"
)

// ErrCycle is returned when the input structure references itself. Cyclic
// seeds cannot be copied and are rejected rather than looped on.
var ErrCycle = errors.New("clone: cyclic structure")

// Any deep-copies a structural value. The supported variants are the seed
// closed set: generic and string-keyed maps, slices, and scalars. Scalars
// and values outside the closed set (functions, containers) pass through
// by reference, so they carry no copy guarantee when smuggled into a seed.
func Any(value any) (any, error) {
	return walk(value, make(map[uintptr]struct{}))
}

func walk(value any, seen map[uintptr]struct{}) (any, error) {
	switch data := value.(type) {
	case map[any]any:
		release, err := visit(data, seen)
		if err != nil {
			return nil, err
		}
		defer release()
		out := make(map[any]any, len(data))
		for key, entry := range data {
			copied, err := walk(entry, seen)
			if err != nil {
				return nil, err
			}
			out[key] = copied
		}
		return out, nil
	case map[string]any:
		release, err := visit(data, seen)
		if err != nil {
			return nil, err
		}
		defer release()
		out := make(map[string]any, len(data))
		for key, entry := range data {
			copied, err := walk(entry, seen)
			if err != nil {
				return nil, err
			}
			out[key] = copied
		}
		return out, nil
	case []any:
		if len(data) == 0 {
			return []any{}, nil
		}
		release, err := visit(data, seen)
		if err != nil {
			return nil, err
		}
		defer release()
		out := make([]any, len(data))
		for i, entry := range data {
			copied, err := walk(entry, seen)
			if err != nil {
				return nil, err
			}
			out[i] = copied
		}
		return out, nil
	default:
		return value, nil
	}
}

// visit records the identity of a map or slice for the duration of its
// traversal so self-references surface as ErrCycle.
func visit(value any, seen map[uintptr]struct{}) (func(), error) {
	ptr := reflect.ValueOf(value).Pointer()
	if _, ok := seen[ptr]; ok {
		return nil, ErrCycle
	}
	seen[ptr] = struct{}{}
	return func() { delete(seen, ptr) }, nil
}

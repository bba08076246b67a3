package template

import (
	"errors"
	"strings"
	"sync"

	"github.com/goliatone/go-prototype/pkg/container"
)

// Factory is a user-supplied template builder.
type Factory func(args ...container.Value) *Template

// Constructor is a finalized factory: its result is normalised into a
// proper template with copy semantics before being handed back.
type Constructor func(args ...container.Value) (*Template, error)

var (
	ctorMu sync.RWMutex
	ctors  = map[string]Constructor{}
)

// WrapConstructor wraps a user factory so each result is finalized: a nil
// spec becomes an empty one and the spec and seed are re-copied, giving the
// result the same aliasing guarantees as Make. A factory returning nil
// surfaces as an error from the constructor.
func WrapConstructor(factory Factory) Constructor {
	return func(args ...container.Value) (*Template, error) {
		t := factory(args...)
		if t == nil {
			return nil, errors.New("template: constructor returned nil template")
		}
		opts := []Option{}
		if t.hasSeed {
			opts = append(opts, WithSeed(t.seed))
		}
		if t.intercepts {
			opts = append(opts, WithIntercept())
		}
		return Make(t.spec, opts...)
	}
}

// RegisterConstructor wraps factory and registers it under name for lookup.
// The latest registration for a name wins. An empty name wraps without
// registering.
func RegisterConstructor(name string, factory Factory) Constructor {
	wrapped := WrapConstructor(factory)
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return wrapped
	}
	ctorMu.Lock()
	ctors[trimmed] = wrapped
	ctorMu.Unlock()
	return wrapped
}

// LookupConstructor resolves a registered constructor by name.
func LookupConstructor(name string) (Constructor, bool) {
	ctorMu.RLock()
	ctor, ok := ctors[strings.TrimSpace(name)]
	ctorMu.RUnlock()
	return ctor, ok
}

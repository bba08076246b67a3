package template

import (
	"fmt"

	"github.com/goliatone/go-prototype/internal/clone"
	"github.com/goliatone/go-prototype/pkg/container"
)

// Template is the fundamental unit: a trap spec, an optional structural
// seed, and an interception flag. Templates are immutable after
// construction; combination always produces a new one, and the spec and
// seed held by a template never alias another template or an instantiated
// container.
type Template struct {
	spec       container.Spec
	seed       container.Value
	hasSeed    bool
	intercepts bool
}

// Option configures template construction.
type Option func(*Template)

// WithSeed attaches structural seed data used to pre-populate instantiated
// containers. The seed is deep-copied by the constructor.
func WithSeed(seed container.Value) Option {
	return func(t *Template) {
		t.seed = seed
		t.hasSeed = true
	}
}

// WithIntercept marks the template as instantiating through the proxy
// protocol. Most callers want MakeIntercepting, which also rewrites
// handlers; the raw option exists for specs that are already wrapped.
func WithIntercept() Option {
	return func(t *Template) {
		t.intercepts = true
	}
}

// Make constructs a template from a trap spec. The spec and any seed are
// copied; trap names are not validated, so unrecognised traps become
// host-defined behavior on the instantiated container. A nil spec yields a
// template with an empty spec.
func Make(spec container.Spec, opts ...Option) (*Template, error) {
	t := &Template{spec: spec.Clone()}
	for _, opt := range opts {
		opt(t)
	}
	if t.hasSeed {
		copied, err := clone.Any(t.seed)
		if err != nil {
			return nil, fmt.Errorf("template: copy seed: %w", err)
		}
		t.seed = copied
	}
	return t, nil
}

// FromSeed is shorthand for a template with an empty spec and the given
// seed.
func FromSeed(seed container.Value) (*Template, error) {
	return Make(nil, WithSeed(seed))
}

// Spec returns a copy of the template's trap spec.
func (t *Template) Spec() container.Spec {
	return t.spec.Clone()
}

// Seed returns a copy of the template's seed and whether one is present.
func (t *Template) Seed() (container.Value, bool) {
	if !t.hasSeed {
		return nil, false
	}
	// The seed was proven acyclic at construction, so the copy cannot fail.
	copied, _ := clone.Any(t.seed)
	return copied, true
}

// Intercepts reports whether instantiation follows the proxy protocol.
func (t *Template) Intercepts() bool {
	return t.intercepts
}

// Package prototype composes behavior templates for dynamic key-value
// containers: reusable specs of how a container reacts to reads, writes,
// size queries, and iteration, merged through a last-write-wins algebra
// and instantiated into concrete containers, optionally behind a proxy
// handle that intercepts every access.
package prototype

import (
	"github.com/goliatone/go-prototype/pkg/container"
	"github.com/goliatone/go-prototype/pkg/proxy"
	"github.com/goliatone/go-prototype/pkg/seed"
	"github.com/goliatone/go-prototype/pkg/template"
)

// Error kinds surfaced by the library: policy violations on read-only
// writes, invalid retention-mode tokens, and internal-consistency failures
// when a proxy handle has lost its backing container.
var (
	ErrReadOnly     = template.ErrReadOnly
	ErrInvalidMode  = container.ErrInvalidMode
	ErrUnregistered = proxy.ErrUnregistered
)

// Template is a behavior template; aliased via the root package for
// convenience.
type Template = template.Template

// Container is the dynamic key-value container templates instantiate.
type Container = container.Container

// Spec maps trap names to handlers or sentinel values.
type Spec = container.Spec

// Value is the universal key/value type.
type Value = container.Value

// Option configures template construction.
type Option = template.Option

// Make constructs a template from a trap spec; see template.Make.
func Make(spec Spec, opts ...Option) (*Template, error) {
	return template.Make(spec, opts...)
}

// FromSeed constructs a template with an empty spec and the given seed.
func FromSeed(value Value) (*Template, error) {
	return template.FromSeed(value)
}

// WithSeed attaches seed data to a template under construction.
func WithSeed(value Value) Option {
	return template.WithSeed(value)
}

// Combine merges templates last-write-wins; see template.Combine.
func Combine(templates ...*Template) (*Template, error) {
	return template.Combine(templates...)
}

// AutoZero returns a template whose reads of missing keys synthesize zero.
func AutoZero() *Template {
	return template.AutoZero()
}

// AutoNested returns a template whose reads of missing keys materialize a
// stored sub-container.
func AutoNested(sub ...*Template) *Template {
	return template.AutoNested(sub...)
}

// Weak returns a template carrying the memoized weak-retention fragment
// for mode ("key", "value", "key-and-value", or "value-and-key").
func Weak(mode string) (*Template, error) {
	return template.Weak(mode)
}

// MakeIntercepting constructs a proxy-instantiating template; see
// template.MakeIntercepting.
func MakeIntercepting(spec Spec, opts ...Option) (*Template, error) {
	return template.MakeIntercepting(spec, opts...)
}

// ReadOnly returns an intercepting template that rejects writes while
// allowing reads, size queries, and iteration.
func ReadOnly() *Template {
	return template.ReadOnly()
}

// RegisterConstructor wraps a user factory so its results are finalized
// into proper templates, registering it under name for lookup.
func RegisterConstructor(name string, factory template.Factory) template.Constructor {
	return template.RegisterConstructor(name, factory)
}

// ParseSeed decodes a YAML or JSON seed document into template seed data.
func ParseSeed(data []byte) (Value, error) {
	return seed.Parse(data)
}

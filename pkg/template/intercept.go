package template

import (
	"errors"
	"iter"

	"github.com/goliatone/go-prototype/pkg/container"
	"github.com/goliatone/go-prototype/pkg/proxy"
)

// ErrReadOnly rejects writes against read-only containers. No mutation is
// performed when it is returned.
var ErrReadOnly = errors.New("template: cannot write to read-only container")

// MakeIntercepting constructs a template that instantiates through the
// proxy protocol. Handler-valued spec entries must use the proxy handler
// types; each is rewritten so that, invoked on the proxy handle, it
// receives the registry-resolved real container as a leading argument.
// Non-handler entries pass through unmodified, still copied per Make.
func MakeIntercepting(spec container.Spec, opts ...Option) (*Template, error) {
	opts = append(opts, WithIntercept())
	return Make(proxy.WrapSpec(spec), opts...)
}

// ReadOnly returns an intercepting template that allows reads and
// iteration against the real container but rejects every write with
// ErrReadOnly. Iteration produces a fresh lazy sequence over the real
// container's entries each time it begins; mutating the real container
// mid-sequence has the usual live-iteration caveats, but a new iteration
// always reflects the latest state.
func ReadOnly() *Template {
	spec := proxy.WrapSpec(container.Spec{
		container.TrapRead: proxy.ReadFunc(func(real, _ *container.Container, key container.Value) (container.Value, error) {
			return real.Get(key)
		}),
		container.TrapWrite: proxy.WriteFunc(func(_, _ *container.Container, _, _ container.Value) error {
			return ErrReadOnly
		}),
		container.TrapLen: proxy.LenFunc(func(real, _ *container.Container) (int, error) {
			return real.Len()
		}),
		container.TrapIter: proxy.IterFunc(func(real, _ *container.Container) (iter.Seq2[container.Value, container.Value], error) {
			return real.All()
		}),
		container.TrapIndexIter: proxy.IndexIterFunc(func(real, _ *container.Container) (iter.Seq2[int, container.Value], error) {
			return real.Indexed()
		}),
	})
	return &Template{spec: spec, intercepts: true}
}

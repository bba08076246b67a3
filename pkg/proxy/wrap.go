package proxy

import (
	"iter"

	"github.com/goliatone/go-prototype/pkg/container"
)

// Handler types for intercepting specs. Each receives the resolved real
// container ahead of the handle the trap fired on; WrapSpec produces the
// plain container handlers that perform the resolution.
type (
	ReadFunc      func(real, handle *container.Container, key container.Value) (container.Value, error)
	WriteFunc     func(real, handle *container.Container, key, value container.Value) error
	LenFunc       func(real, handle *container.Container) (int, error)
	IterFunc      func(real, handle *container.Container) (iter.Seq2[container.Value, container.Value], error)
	IndexIterFunc func(real, handle *container.Container) (iter.Seq2[int, container.Value], error)
)

// WrapSpec rewrites every handler-valued entry of spec so that, invoked
// with a proxy handle as receiver, the handler instead receives the
// registry-resolved real container as an implicit leading argument.
// Non-handler entries pass through unmodified.
func WrapSpec(spec container.Spec) container.Spec {
	out := make(container.Spec, len(spec))
	for trap, entry := range spec {
		switch handler := entry.(type) {
		case ReadFunc:
			out[trap] = container.ReadFunc(func(handle *container.Container, key container.Value) (container.Value, error) {
				real, err := Resolve(handle)
				if err != nil {
					return nil, err
				}
				return handler(real, handle, key)
			})
		case WriteFunc:
			out[trap] = container.WriteFunc(func(handle *container.Container, key, value container.Value) error {
				real, err := Resolve(handle)
				if err != nil {
					return err
				}
				return handler(real, handle, key, value)
			})
		case LenFunc:
			out[trap] = container.LenFunc(func(handle *container.Container) (int, error) {
				real, err := Resolve(handle)
				if err != nil {
					return 0, err
				}
				return handler(real, handle)
			})
		case IterFunc:
			out[trap] = container.IterFunc(func(handle *container.Container) (iter.Seq2[container.Value, container.Value], error) {
				real, err := Resolve(handle)
				if err != nil {
					return nil, err
				}
				return handler(real, handle)
			})
		case IndexIterFunc:
			out[trap] = container.IndexIterFunc(func(handle *container.Container) (iter.Seq2[int, container.Value], error) {
				real, err := Resolve(handle)
				if err != nil {
					return nil, err
				}
				return handler(real, handle)
			})
		default:
			out[trap] = entry
		}
	}
	return out
}

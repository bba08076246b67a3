package template

import (
	"fmt"

	"github.com/goliatone/go-prototype/pkg/container"
)

// AutoZero returns a template whose read trap synthesizes the number zero
// for keys with no entry. The zero is transient: a pure read never mutates
// the container, so the key set is unchanged until something writes.
func AutoZero() *Template {
	return &Template{spec: container.Spec{
		container.TrapRead: container.ReadFunc(func(_ *container.Container, _ container.Value) (container.Value, error) {
			return 0, nil
		}),
	}}
}

// AutoNested returns a template whose read trap materializes a
// sub-container for missing keys: the first read of a missing key
// instantiates one (from sub when given, else bare), stores it raw at the
// key, and returns it, so repeated reads observe the same sub-container.
// Unlike AutoZero, the first read is a deliberate mutating side effect.
func AutoNested(sub ...*Template) *Template {
	var child *Template
	if len(sub) > 0 {
		child = sub[0]
	}
	return &Template{spec: container.Spec{
		container.TrapRead: container.ReadFunc(func(self *container.Container, key container.Value) (container.Value, error) {
			nested, err := materialize(child)
			if err != nil {
				return nil, err
			}
			if err := self.RawSet(key, nested); err != nil {
				return nil, fmt.Errorf("template: materialize nested entry: %w", err)
			}
			return nested, nil
		}),
	}}
}

func materialize(child *Template) (*container.Container, error) {
	if child == nil {
		return container.New(), nil
	}
	return child.Create()
}

package template

import (
	"fmt"

	"github.com/goliatone/go-prototype/internal/clone"
	"github.com/goliatone/go-prototype/pkg/container"
	"github.com/goliatone/go-prototype/pkg/proxy"
)

// Create instantiates a container from the template. An optional base
// container is adopted as the working value with its prior contents
// preserved, decorating caller-supplied data; otherwise a seed copy (or an
// empty container) starts fresh. Intercepting templates return a distinct
// proxy handle registered against the working value; everything else
// returns the working value itself with the spec attached. Containers
// produced by separate calls share no mutable state.
func (t *Template) Create(base ...*container.Container) (*container.Container, error) {
	working, err := t.working(base)
	if err != nil {
		return nil, err
	}
	spec := t.spec.Clone()
	if t.intercepts {
		handle := container.New()
		proxy.Register(handle, working)
		handle.ApplySpec(spec)
		return handle, nil
	}
	working.ApplySpec(spec)
	return working, nil
}

func (t *Template) working(base []*container.Container) (*container.Container, error) {
	if len(base) > 0 && base[0] != nil {
		return base[0], nil
	}
	if !t.hasSeed {
		return container.New(), nil
	}
	seed, err := clone.Any(t.seed)
	if err != nil {
		return nil, fmt.Errorf("template: copy seed: %w", err)
	}
	c, err := container.FromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("template: instantiate seed: %w", err)
	}
	return c, nil
}

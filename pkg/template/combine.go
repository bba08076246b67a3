package template

import (
	"fmt"

	"github.com/goliatone/go-prototype/internal/clone"
	"github.com/goliatone/go-prototype/pkg/container"
)

// Combine merges templates into a new one. Spec entries merge
// last-write-wins: for identical trap names, later arguments override
// earlier ones. The result's seed is the most recent non-absent seed among
// the inputs; a later input without a seed does not clear an earlier
// selection. The interception flag is not propagated — only the
// proxy-aware constructors set it. Zero inputs yield a valid template with
// an empty spec and no seed.
//
// Combination is associative for a fixed left-to-right order but not
// commutative: swapping inputs with conflicting trap names changes the
// winner.
func Combine(templates ...*Template) (*Template, error) {
	out := &Template{spec: container.Spec{}}
	for _, t := range templates {
		if t == nil {
			continue
		}
		for trap, entry := range t.spec {
			out.spec[trap] = entry
		}
		if t.hasSeed {
			out.seed = t.seed
			out.hasSeed = true
		}
	}
	if out.hasSeed {
		copied, err := clone.Any(out.seed)
		if err != nil {
			return nil, fmt.Errorf("template: copy seed: %w", err)
		}
		out.seed = copied
	}
	return out, nil
}

// CombineWith is the method form of Combine with the receiver as the first
// input.
func (t *Template) CombineWith(others ...*Template) (*Template, error) {
	return Combine(append([]*Template{t}, others...)...)
}

package template

import (
	"sync"

	"github.com/goliatone/go-prototype/pkg/container"
)

// Weak-mode fragments are memoized per canonical mode for process
// lifetime; three slots, never evicted. Population is lazy and guarded
// because the cache is shared package state.
var (
	weakMu    sync.Mutex
	weakCache = map[container.RetentionMode]container.Spec{}
)

// Weak returns a template carrying the weak-retention fragment for mode.
// The paired spellings "key-and-value" and "value-and-key" share one
// canonical fragment; tokens outside the recognised spellings fail with
// container.ErrInvalidMode. The cached fragment is copied into the
// returned template, so callers never alias cache state.
func Weak(mode string) (*Template, error) {
	canonical, err := container.ParseRetention(mode)
	if err != nil {
		return nil, err
	}
	weakMu.Lock()
	fragment, ok := weakCache[canonical]
	if !ok {
		fragment = container.Spec{container.TrapRetention: canonical}
		weakCache[canonical] = fragment
	}
	weakMu.Unlock()
	return Make(fragment)
}

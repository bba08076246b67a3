package proxy

import (
	"errors"
	"runtime"
	"sync"

	"github.com/goliatone/go-prototype/pkg/container"
)

// ErrUnregistered reports a proxy handle whose real-container mapping is
// gone. Under correct use the mapping persists exactly as long as the
// handle is reachable, so hitting this indicates a lifecycle bug rather
// than a user error.
var ErrUnregistered = errors.New("proxy: no backing container registered for handle")

var (
	mu      sync.Mutex
	backing = map[uint64]*container.Container{}
)

// Register records handle → real in the process-wide registry. The entry is
// keyed by the handle's token, never by the handle itself, so the registry
// cannot keep the handle alive; a runtime cleanup removes the entry once
// the handle becomes unreachable.
func Register(handle, real *container.Container) {
	mu.Lock()
	backing[handle.Token()] = real
	mu.Unlock()
	runtime.AddCleanup(handle, Deregister, handle.Token())
}

// Deregister removes the entry for a handle token. The runtime invokes it
// automatically on collection; hosts without automatic reclamation of a
// handle can call it explicitly when discarding one.
func Deregister(token uint64) {
	mu.Lock()
	delete(backing, token)
	mu.Unlock()
}

// Resolve returns the real container behind a handle, or ErrUnregistered
// when no mapping exists.
func Resolve(handle *container.Container) (*container.Container, error) {
	mu.Lock()
	real, ok := backing[handle.Token()]
	mu.Unlock()
	if !ok {
		return nil, ErrUnregistered
	}
	return real, nil
}

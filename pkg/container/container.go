package container

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"sync/atomic"
)

// ErrNilKey is returned when a caller reads or writes the nil key.
var ErrNilKey = errors.New("container: nil key")

var nextToken atomic.Uint64

// Container is a dynamic key-value store with an ordered part addressed by
// 1-based integer keys and a keyed part for everything else. Behavior is
// plain map/list access until a spec is attached via ApplySpec.
type Container struct {
	token uint64
	list  []Value
	hash  map[Value]Value
	spec  Spec
}

// New returns an empty container with no attached behavior.
func New() *Container {
	return &Container{token: nextToken.Add(1)}
}

// FromSeed builds a container pre-populated from structural seed data: a
// list seeds the ordered part, a map seeds the keyed part, nil seeds an
// empty container. The seed is adopted, not copied; callers that need copy
// semantics clone before calling.
func FromSeed(seed Value) (*Container, error) {
	c := New()
	switch data := seed.(type) {
	case nil:
	case []Value:
		c.list = data
	case map[Value]Value:
		if err := c.seedFromMap(data); err != nil {
			return nil, err
		}
	case map[string]Value:
		for key, value := range data {
			if err := c.RawSet(key, value); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("container: seed must be a map or list, got %T", seed)
	}
	return c, nil
}

// seedFromMap inserts integer keys in ascending order before the rest so a
// dense 1..n run always seeds the ordered part, independent of map
// iteration order.
func (c *Container) seedFromMap(data map[Value]Value) error {
	indexes := make([]int, 0, len(data))
	for key := range data {
		if idx, ok := key.(int); ok {
			indexes = append(indexes, idx)
		}
	}
	sort.Ints(indexes)
	for _, idx := range indexes {
		if err := c.RawSet(idx, data[idx]); err != nil {
			return err
		}
	}
	for key, value := range data {
		if _, ok := key.(int); ok {
			continue
		}
		if err := c.RawSet(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Token reports the container's process-unique identity. Indirection layers
// key side tables by token so they never retain the container itself.
func (c *Container) Token() uint64 {
	return c.token
}

// ApplySpec attaches behavior. Instantiation is the only intended caller;
// the spec is adopted as-is.
func (c *Container) ApplySpec(spec Spec) {
	c.spec = spec
}

// Trap exposes the spec entry for a trap name, including unrecognised traps
// carried through combination.
func (c *Container) Trap(name Trap) (any, bool) {
	entry, ok := c.spec[name]
	return entry, ok
}

// Retention reports the weak-retention sentinel attached to the container,
// or the empty mode when none is set.
func (c *Container) Retention() RetentionMode {
	mode, _ := c.spec[TrapRetention].(RetentionMode)
	return mode
}

// Get returns the value at key. Raw entries win; missing keys consult the
// read trap; with no trap installed a miss yields nil without error.
func (c *Container) Get(key Value) (Value, error) {
	if key == nil {
		return nil, ErrNilKey
	}
	if value, ok := c.RawGet(key); ok {
		return value, nil
	}
	if handler, ok := c.spec[TrapRead].(ReadFunc); ok {
		return handler(c, key)
	}
	return nil, nil
}

// Set stores value at key. Keys already present raw are overwritten
// directly; missing keys consult the write trap, which fully owns the
// outcome; with no trap the write lands raw.
func (c *Container) Set(key, value Value) error {
	if key == nil {
		return ErrNilKey
	}
	if _, ok := c.RawGet(key); ok {
		return c.RawSet(key, value)
	}
	if handler, ok := c.spec[TrapWrite].(WriteFunc); ok {
		return handler(c, key, value)
	}
	return c.RawSet(key, value)
}

// Len reports the number of entries, honouring the len trap when installed.
func (c *Container) Len() (int, error) {
	if handler, ok := c.spec[TrapLen].(LenFunc); ok {
		return handler(c)
	}
	return c.RawLen(), nil
}

// All enumerates entries, honouring the iter trap when installed. Each call
// yields a fresh lazy sequence; entries added after iteration begins have
// undefined visibility within that sequence.
func (c *Container) All() (iter.Seq2[Value, Value], error) {
	if handler, ok := c.spec[TrapIter].(IterFunc); ok {
		return handler(c)
	}
	return c.RawAll(), nil
}

// Indexed enumerates the ordered part, honouring the index-iter trap when
// installed.
func (c *Container) Indexed() (iter.Seq2[int, Value], error) {
	if handler, ok := c.spec[TrapIndexIter].(IndexIterFunc); ok {
		return handler(c)
	}
	return c.RawIndexed(), nil
}

// RawGet bypasses traps. Integer keys within the ordered part resolve
// there; the first ordered element is at key 1.
func (c *Container) RawGet(key Value) (Value, bool) {
	if idx, ok := key.(int); ok && idx >= 1 && idx <= len(c.list) {
		return c.list[idx-1], true
	}
	value, ok := c.hash[key]
	return value, ok
}

// RawSet bypasses traps. An integer key exactly one past the ordered part
// appends to it; other keys land in the keyed part.
func (c *Container) RawSet(key, value Value) error {
	if key == nil {
		return ErrNilKey
	}
	if idx, ok := key.(int); ok {
		switch {
		case idx >= 1 && idx <= len(c.list):
			c.list[idx-1] = value
			return nil
		case idx == len(c.list)+1:
			c.list = append(c.list, value)
			return nil
		}
	}
	if c.hash == nil {
		c.hash = make(map[Value]Value)
	}
	c.hash[key] = value
	return nil
}

// RawLen bypasses the len trap.
func (c *Container) RawLen() int {
	return len(c.list) + len(c.hash)
}

// RawAll bypasses the iter trap. Ordered entries come first, keyed entries
// follow in map order.
func (c *Container) RawAll() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for i, value := range c.list {
			if !yield(i+1, value) {
				return
			}
		}
		for key, value := range c.hash {
			if !yield(key, value) {
				return
			}
		}
	}
}

// RawIndexed bypasses the index-iter trap.
func (c *Container) RawIndexed() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, value := range c.list {
			if !yield(i+1, value) {
				return
			}
		}
	}
}

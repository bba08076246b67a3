package container

import "iter"

// Trap identifies a single interceptable container operation. Unknown trap
// names are not validated; they are stored and carried through combination
// unchanged, observable via Container.Trap.
type Trap string

// Traps recognised by the container runtime.
const (
	TrapRead      Trap = "read"
	TrapWrite     Trap = "write"
	TrapLen       Trap = "len"
	TrapIter      Trap = "iter"
	TrapIndexIter Trap = "index-iter"
	TrapRetention Trap = "retention"
)

// Value is the universal key/value type. Keys must be comparable.
type Value = any

// ReadFunc handles reads of keys that have no raw entry. The synthesized
// value is returned to the caller without being stored unless the handler
// stores it itself.
type ReadFunc func(self *Container, key Value) (Value, error)

// WriteFunc handles writes to keys that have no raw entry. Returning an
// error rejects the write; the container performs no mutation of its own
// when a write trap is installed.
type WriteFunc func(self *Container, key, value Value) error

// LenFunc overrides the size query.
type LenFunc func(self *Container) (int, error)

// IterFunc overrides unordered entry enumeration. Each call produces a
// fresh lazy sequence.
type IterFunc func(self *Container) (iter.Seq2[Value, Value], error)

// IndexIterFunc overrides ordered enumeration of the indexed part.
type IndexIterFunc func(self *Container) (iter.Seq2[int, Value], error)

// Spec maps trap names to handlers or sentinel values. Entries whose value
// is not one of the handler types above are carried as opaque sentinels.
type Spec map[Trap]any

// Clone returns an independent copy of the spec. Handler values are shared
// by reference; sentinel values are carried as-is. A nil receiver yields an
// empty, usable spec.
func (s Spec) Clone() Spec {
	out := make(Spec, len(s))
	for trap, entry := range s {
		out[trap] = entry
	}
	return out
}

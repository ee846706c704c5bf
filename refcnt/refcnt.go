// Package refcnt provides intrusive reference counters that can be embedded
// in objects whose lifetime is shared between several owners.
//
// Two variants exist and are picked explicitly at every use site:
// AtomicRefCounter may be shared between goroutines, PlainRefCounter must be
// confined to a single goroutine (or externally synchronized) and pays no
// synchronization cost.
package refcnt

import "fmt"

// RefCountable is an object that is reference counted.
type RefCountable interface {
	// IncRef increments the reference count.
	IncRef()

	// DecRef decrements the reference count.
	// When the reference count goes to zero,
	// an optional callback is executed.
	DecRef()
}

// RefCounted is a reference counted object whose count can be inspected.
type RefCounted interface {
	RefCountable

	// RefCount returns the current reference count. The value is a snapshot
	// and may be stale by the time it is returned.
	RefCount() int32

	// IsUniqueRef returns true if the reference count is exactly one.
	IsUniqueRef() bool
}

// OnZeroRefCountFn is a callback that gets called when the reference
// count of an object goes to zero.
type OnZeroRefCountFn func()

// Trackable is a counter that can be registered with a Tracker.
// It is implemented by the counters of this package and by every
// type embedding one of them.
type Trackable interface {
	setTracker(t *Tracker) bool
}

// noCopy lets `go vet` flag counters that are copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func invalidRefCountError(n int32) error {
	return fmt.Errorf("invalid ref count %d", n)
}

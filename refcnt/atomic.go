package refcnt

import "sync/atomic"

// AtomicRefCounter is a reference counter that is safe for concurrent use.
//
// The zero value holds a single reference, so every object embedding an
// AtomicRefCounter starts with a count of one however it is constructed.
// The counter belongs to the address of the object: a counter copied by
// value is detected on its first use and starts over as a new identity
// with a single reference, no release callback and no tracker.
type AtomicRefCounter struct {
	_ noCopy

	// self is the address the counter was first used at.
	self atomic.Pointer[AtomicRefCounter]

	// n is the number of references minus one.
	n        int32
	onZeroFn OnZeroRefCountFn
	tracker  *Tracker
}

// NewAtomicRefCounter creates a new reference counter, with an initial
// refcount of 1.
func NewAtomicRefCounter(fn OnZeroRefCountFn) *AtomicRefCounter {
	c := &AtomicRefCounter{onZeroFn: fn}
	c.self.Store(c)
	return c
}

// SetOnZeroRefCount sets the callback executed when the reference count
// goes to zero. It must be set before the counter is shared.
func (c *AtomicRefCounter) SetOnZeroRefCount(fn OnZeroRefCountFn) {
	c.copyCheck()
	c.onZeroFn = fn
}

// IncRef increments the ref count.
func (c *AtomicRefCounter) IncRef() {
	c.copyCheck()
	n := atomic.AddInt32(&c.n, 1) + 1
	if n > 1 {
		return
	}
	panic(invalidRefCountError(n))
}

// DecRef decrements the ref count, and executes the callback when the
// count goes to zero. Only the decrement observing the transition to zero
// runs the callback, so it is executed exactly once.
func (c *AtomicRefCounter) DecRef() {
	c.copyCheck()
	n := atomic.AddInt32(&c.n, -1) + 1
	if n > 0 {
		return
	}
	if n == 0 {
		c.release()
		return
	}
	panic(invalidRefCountError(n))
}

// RefCount returns the current ref count.
func (c *AtomicRefCounter) RefCount() int32 {
	c.copyCheck()
	return atomic.LoadInt32(&c.n) + 1
}

// IsUniqueRef returns true if there is exactly one reference.
func (c *AtomicRefCounter) IsUniqueRef() bool {
	c.copyCheck()
	return atomic.LoadInt32(&c.n) == 0
}

// Reinit resets a released counter back to a single reference so that a
// pooled object can be handed out again. It panics if the counter has not
// been released.
func (c *AtomicRefCounter) Reinit() {
	c.copyCheck()
	if !atomic.CompareAndSwapInt32(&c.n, -1, 0) {
		panic(invalidRefCountError(atomic.LoadInt32(&c.n) + 1))
	}
	if c.tracker != nil {
		c.tracker.track()
	}
}

func (c *AtomicRefCounter) setTracker(t *Tracker) bool {
	c.copyCheck()
	if c.tracker != nil {
		return false
	}
	c.tracker = t
	return true
}

// copyCheck binds the counter to its address on first use, and resets a
// counter that was copied from another one to a fresh identity.
func (c *AtomicRefCounter) copyCheck() {
	self := c.self.Load()
	if self == c {
		return
	}
	if self == nil && c.self.CompareAndSwap(nil, c) {
		return
	}
	if c.self.Load() == c {
		return
	}
	atomic.StoreInt32(&c.n, 0)
	c.onZeroFn = nil
	c.tracker = nil
	c.self.Store(c)
}

func (c *AtomicRefCounter) release() {
	if c.tracker != nil {
		c.tracker.untrack()
	}
	if c.onZeroFn != nil {
		c.onZeroFn()
	}
}

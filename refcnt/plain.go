package refcnt

// PlainRefCounter is a reference counter without any synchronization.
// All references to an object embedding a PlainRefCounter must be
// manipulated from a single goroutine at a time.
//
// Like AtomicRefCounter, the zero value holds a single reference and a
// copied counter starts over as a new identity on its first use.
type PlainRefCounter struct {
	_ noCopy

	self *PlainRefCounter

	// n is the number of references minus one.
	n        int32
	onZeroFn OnZeroRefCountFn
	tracker  *Tracker
}

// NewPlainRefCounter creates a new reference counter, with an initial
// refcount of 1.
func NewPlainRefCounter(fn OnZeroRefCountFn) *PlainRefCounter {
	c := &PlainRefCounter{onZeroFn: fn}
	c.self = c
	return c
}

// SetOnZeroRefCount sets the callback executed when the reference count
// goes to zero.
func (c *PlainRefCounter) SetOnZeroRefCount(fn OnZeroRefCountFn) {
	c.copyCheck()
	c.onZeroFn = fn
}

// IncRef increments the ref count.
func (c *PlainRefCounter) IncRef() {
	c.copyCheck()
	c.n++
	if n := c.n + 1; n <= 1 {
		panic(invalidRefCountError(n))
	}
}

// DecRef decrements the ref count, and executes the callback when the
// count goes to zero.
func (c *PlainRefCounter) DecRef() {
	c.copyCheck()
	c.n--
	n := c.n + 1
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
func (c *PlainRefCounter) RefCount() int32 {
	c.copyCheck()
	return c.n + 1
}

// IsUniqueRef returns true if there is exactly one reference.
func (c *PlainRefCounter) IsUniqueRef() bool {
	c.copyCheck()
	return c.n == 0
}

// Reinit resets a released counter back to a single reference.
// It panics if the counter has not been released.
func (c *PlainRefCounter) Reinit() {
	c.copyCheck()
	if c.n != -1 {
		panic(invalidRefCountError(c.n + 1))
	}
	c.n = 0
	if c.tracker != nil {
		c.tracker.track()
	}
}

func (c *PlainRefCounter) setTracker(t *Tracker) bool {
	c.copyCheck()
	if c.tracker != nil {
		return false
	}
	c.tracker = t
	return true
}

func (c *PlainRefCounter) copyCheck() {
	if c.self == c {
		return
	}
	if c.self != nil {
		c.n = 0
		c.onZeroFn = nil
		c.tracker = nil
	}
	c.self = c
}

func (c *PlainRefCounter) release() {
	if c.tracker != nil {
		c.tracker.untrack()
	}
	if c.onZeroFn != nil {
		c.onZeroFn()
	}
}

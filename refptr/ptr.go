// Package refptr provides Ptr, a handle that owns one reference to an
// intrusively reference counted object.
//
// A Ptr is either empty or owns exactly one reference to its pointee. The
// reference is dropped by Reset, by reassigning the handle, or by moving
// it out; Go has no destructors, so a handle that goes out of scope without
// being reset keeps its reference.
//
// A single Ptr is not safe for concurrent mutation. Distinct handles that
// share an object counted by refcnt.AtomicRefCounter may be used from
// different goroutines.
package refptr

import (
	"reflect"

	"github.com/xichen2020/foundation/refcnt"
)

// AcquireT is the type of Acquire.
type AcquireT struct{}

// TransferT is the type of Transfer.
type TransferT struct{}

func (AcquireT) String() string  { return "acquire" }
func (TransferT) String() string { return "transfer" }

var (
	// Acquire adds a reference to the wrapped object. The caller keeps
	// the reference it already holds.
	Acquire AcquireT

	// Transfer adopts a reference the caller already holds without adding
	// one. A freshly constructed object must be wrapped with Transfer.
	Transfer TransferT
)

// Ownership determines whether wrapping an object adds a reference to it.
type Ownership interface {
	AcquireT | TransferT
}

// Ptr is a reference counted handle. The zero value is an empty handle.
type Ptr[T refcnt.RefCountable] struct {
	_ noCopy

	ptr T
	ok  bool
}

// NewPtr wraps p in a new handle. Wrapping a nil value yields an empty
// handle and leaves no count changed.
func NewPtr[T refcnt.RefCountable, O Ownership](p T, o O) *Ptr[T] {
	h := &Ptr[T]{}
	if isNil(p) {
		return h
	}
	if _, acquire := any(o).(AcquireT); acquire {
		p.IncRef()
	}
	h.ptr, h.ok = p, true
	return h
}

// Make allocates a new object, runs the optional init function on it and
// wraps it with Transfer, so the returned handle holds the sole reference.
func Make[E any, P interface {
	*E
	refcnt.RefCountable
}](initFn func(P)) *Ptr[P] {
	p := P(new(E))
	if initFn != nil {
		initFn(p)
	}
	return NewPtr(p, Transfer)
}

// Get returns the object without affecting its count. The result is only
// valid while a reference is held.
func (p *Ptr[T]) Get() T {
	if p == nil {
		var zero T
		return zero
	}
	return p.ptr
}

// Valid returns true if the handle owns an object.
func (p *Ptr[T]) Valid() bool { return p != nil && p.ok }

// IsNil returns true if the handle is empty.
func (p *Ptr[T]) IsNil() bool { return !p.Valid() }

// Extract empties the handle without dropping its reference and returns
// the object. The caller now owns that reference.
func (p *Ptr[T]) Extract() T {
	v, _ := p.take()
	return v
}

// Reset drops the reference held by the handle, if any, and empties it.
func (p *Ptr[T]) Reset() {
	if v, ok := p.take(); ok {
		v.DecRef()
	}
}

// Clone returns a new handle sharing the object, adding a reference.
func (p *Ptr[T]) Clone() *Ptr[T] {
	h := &Ptr[T]{}
	h.CopyFrom(p)
	return h
}

// CopyFrom makes the handle share the object of src. The reference on the
// source object is added before the previous object is released, so
// assigning a handle to itself or to another handle of the same object
// never drops the count to zero.
func (p *Ptr[T]) CopyFrom(src *Ptr[T]) {
	var (
		v  T
		ok = src.Valid()
	)
	if ok {
		v = src.ptr
		v.IncRef()
	}
	old, oldOK := p.ptr, p.ok
	p.ptr, p.ok = v, ok
	if oldOK {
		old.DecRef()
	}
}

// Move returns a new handle owning the reference of p and empties p.
func (p *Ptr[T]) Move() *Ptr[T] {
	h := &Ptr[T]{}
	h.MoveFrom(p)
	return h
}

// MoveFrom releases the previous object of the handle and takes over the
// reference held by src, leaving src empty. Moving a handle into itself is
// a no-op.
func (p *Ptr[T]) MoveFrom(src *Ptr[T]) {
	if p == src {
		return
	}
	if p.ok {
		p.ptr.DecRef()
	}
	p.ptr, p.ok = src.take()
}

func (p *Ptr[T]) take() (T, bool) {
	var zero T
	if p == nil || !p.ok {
		return zero, false
	}
	v := p.ptr
	p.ptr, p.ok = zero, false
	return v, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// noCopy lets `go vet` flag handles copied by value, which would duplicate
// a reference without counting it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

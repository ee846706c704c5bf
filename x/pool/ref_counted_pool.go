package pool

import (
	"errors"
	"fmt"

	"github.com/xichen2020/foundation/refcnt"
)

var (
	errPutReferencedValue = errors.New("put of a value that is still referenced")
)

// RefCountedValue is a reference counted value that can be kept in a
// RefCountedPool. Embedding refcnt.AtomicRefCounter implements it.
type RefCountedValue interface {
	refcnt.RefCounted
	refcnt.Trackable

	SetOnZeroRefCount(fn refcnt.OnZeroRefCountFn)
	Reinit()
}

// RefCountedPool is a pool of reference counted values. Pooled values are
// kept released, with a count of zero. Get revives a value with a single
// reference owned by the caller, and a value goes back to the pool on its
// own when its last reference is dropped.
type RefCountedPool[V RefCountedValue] struct {
	values  *Pool[V]
	reset   func(V)
	tracker *refcnt.Tracker
}

// NewRefCountedPool creates a new pool of reference counted values.
func NewRefCountedPool[V RefCountedValue](opts *Options) *RefCountedPool[V] {
	if opts == nil {
		opts = NewOptions()
	}
	return &RefCountedPool[V]{
		values:  NewPool[V](opts),
		tracker: opts.Tracker(),
	}
}

// Init initializes the pool. The values returned by alloc must hold a
// single reference and have no release callback, which the pool installs.
// If reset is not nil it is called on every released value before the
// value goes back to the pool.
func (p *RefCountedPool[V]) Init(alloc func() V, reset func(V)) {
	p.reset = reset
	p.values.Init(func() V {
		v := alloc()
		v.DecRef()
		v.SetOnZeroRefCount(func() { p.recycle(v) })
		return v
	})
}

// Get returns a value holding a single reference owned by the caller.
func (p *RefCountedPool[V]) Get() V {
	v := p.values.Get()
	v.Reinit()
	if p.tracker != nil {
		p.tracker.Track(v)
	}
	return v
}

// put keeps a released value in the pool.
func (p *RefCountedPool[V]) put(v V) {
	if n := v.RefCount(); n != 0 {
		panic(fmt.Errorf("%w: ref count %d", errPutReferencedValue, n))
	}
	p.values.Put(v)
}

// Len returns the number of released values kept by the pool.
func (p *RefCountedPool[V]) Len() int { return p.values.Len() }

func (p *RefCountedPool[V]) recycle(v V) {
	if p.reset != nil {
		p.reset(v)
	}
	p.put(v)
}

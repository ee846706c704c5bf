package pool

import "github.com/xichen2020/foundation/refcnt"

// BucketizedArrayPool is a pool of arrays bucketized by capacity.
type BucketizedArrayPool[T any] interface {
	Get(capacity int) []T
	Put(values []T, capacity int)
}

// RefCountedPooledArray is an array whose backing storage comes from a
// pool. Snapshots share the storage, which goes back to the pool once the
// array and all of its snapshots are closed.
//
// A RefCountedPooledArray is not safe for concurrent mutation, but
// snapshots of the same storage may be closed from different goroutines.
type RefCountedPooledArray[T any] struct {
	storage *arrayStorage[T]
	vals    []T
}

// arrayStorage is the backing storage shared by an array and its snapshots.
type arrayStorage[T any] struct {
	refcnt.AtomicRefCounter

	vals    []T
	pool    BucketizedArrayPool[T]
	resetFn func(values []T)
}

func newArrayStorage[T any](
	vals []T,
	pool BucketizedArrayPool[T],
	resetFn func(values []T),
) *arrayStorage[T] {
	s := &arrayStorage[T]{vals: vals, pool: pool, resetFn: resetFn}
	s.SetOnZeroRefCount(s.release)
	return s
}

func (s *arrayStorage[T]) release() {
	vals := s.vals[:cap(s.vals)]
	if s.resetFn != nil {
		s.resetFn(vals)
	}
	s.pool.Put(vals[:0], cap(vals))
	s.vals = nil
}

// NewRefCountedPooledArray creates a new refcounted array over vals, which
// were taken from p. If resetFn is not nil, it is called on the whole
// backing array before the array goes back to the pool.
func NewRefCountedPooledArray[T any](
	vals []T,
	p BucketizedArrayPool[T],
	resetFn func(values []T),
) *RefCountedPooledArray[T] {
	return &RefCountedPooledArray[T]{
		storage: newArrayStorage(vals, p, resetFn),
		vals:    vals,
	}
}

// Get returns the values of the array. The result is only valid until the
// array is appended to or closed.
func (rv *RefCountedPooledArray[T]) Get() []T { return rv.vals }

// Len returns the number of values in the array.
func (rv *RefCountedPooledArray[T]) Len() int { return len(rv.vals) }

// Snapshot returns an array sharing the backing storage. Values appended
// to either array afterwards are invisible to the other one.
func (rv *RefCountedPooledArray[T]) Snapshot() *RefCountedPooledArray[T] {
	rv.storage.IncRef()
	return &RefCountedPooledArray[T]{
		storage: rv.storage,
		vals:    rv.vals,
	}
}

// Append appends values to the array. When the backing storage is full,
// the values are moved to a larger array from the pool and the reference
// to the previous storage is dropped.
func (rv *RefCountedPooledArray[T]) Append(vals ...T) {
	if n := len(rv.vals) + len(vals); n > cap(rv.vals) {
		rv.grow(n)
	}
	rv.vals = append(rv.vals, vals...)
}

// Close drops the reference of the array to its storage. Closing an array
// more than once is a no-op.
func (rv *RefCountedPooledArray[T]) Close() {
	if rv.storage == nil {
		return
	}
	rv.storage.DecRef()
	rv.storage = nil
	rv.vals = nil
}

func (rv *RefCountedPooledArray[T]) grow(n int) {
	var (
		old      = rv.storage
		capacity = growCapacity(cap(rv.vals))
	)
	for capacity < n {
		capacity = growCapacity(capacity)
	}
	vals := old.pool.Get(capacity)
	vals = append(vals[:0], rv.vals...)
	rv.storage = newArrayStorage(vals, old.pool, old.resetFn)
	rv.vals = vals
	old.DecRef()
}

func growCapacity(n int) int {
	if n == 0 {
		return 1
	}
	return n * 2
}

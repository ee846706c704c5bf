package pool

import (
	"errors"
	"testing"

	"github.com/xichen2020/foundation/refcnt"

	"github.com/stretchr/testify/require"
)

type testRefCounted struct {
	refcnt.AtomicRefCounter

	payload int
}

func newTestRefCountedPool(opts *Options, reset func(*testRefCounted)) *RefCountedPool[*testRefCounted] {
	p := NewRefCountedPool[*testRefCounted](opts)
	p.Init(func() *testRefCounted { return &testRefCounted{} }, reset)
	return p
}

func TestRefCountedPoolKeepsValuesReleased(t *testing.T) {
	var (
		tracker = refcnt.NewTracker(nil)
		resets  int
	)
	p := newTestRefCountedPool(NewOptions().SetSize(1).SetTracker(tracker), func(v *testRefCounted) {
		resets++
		v.payload = 0
	})
	require.Equal(t, 1, p.Len())

	v := p.Get()
	require.Equal(t, int32(1), v.RefCount())
	require.Equal(t, int64(1), tracker.Live())
	require.Equal(t, 0, p.Len())

	v.payload = 42
	v.IncRef()
	v.DecRef()
	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, resets)

	v.DecRef()
	require.Equal(t, 1, resets)
	require.Equal(t, 0, v.payload)
	require.Equal(t, int32(0), v.RefCount())
	require.Equal(t, 1, p.Len())
	require.Equal(t, int64(0), tracker.Live())

	require.True(t, v == p.Get())
	require.Equal(t, int32(1), v.RefCount())
	require.Equal(t, int64(1), tracker.Live())
	v.DecRef()
	require.NoError(t, tracker.CheckLeaks())
}

func TestRefCountedPoolAllocatesReleasedValuesWhenEmpty(t *testing.T) {
	p := newTestRefCountedPool(NewOptions().SetSize(1), nil)

	a := p.Get()
	b := p.Get()
	require.True(t, a != b)
	require.Equal(t, int32(1), b.RefCount())

	a.DecRef()
	b.DecRef()
	require.Equal(t, 1, p.Len())
}

func TestRefCountedPoolRejectsReferencedValues(t *testing.T) {
	p := newTestRefCountedPool(NewOptions().SetSize(1), nil)
	v := p.Get()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, errPutReferencedValue))
		v.DecRef()
		require.Equal(t, 1, p.Len())
	}()
	p.put(v)
}

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefCountedPooledBytesArray(t *testing.T) {
	buckets := []Bucket{
		{Capacity: 4, Count: 1},
		{Capacity: 8, Count: 1},
	}
	pool := NewBucketizedPool[[][]byte](buckets, nil)
	pool.Init(func(capacity int) [][]byte { return make([][]byte, 0, capacity) })

	vals := pool.Get(4)
	arr := NewRefCountedPooledArray[[]byte](vals, pool, nil)
	require.Equal(t, int32(1), arr.storage.RefCount())
	require.Equal(t, 0, len(arr.Get()))
	require.Equal(t, 4, cap(arr.Get()))

	arr.Append([]byte("foo"))
	arr.Append([]byte("bar"))
	arr.Append([]byte("baz"))
	arr.Append([]byte("cat"))
	require.Equal(t, int32(1), arr.storage.RefCount())
	require.Equal(t, 4, len(arr.Get()))

	arr2 := arr.Snapshot()
	require.Equal(t, int32(2), arr.storage.RefCount())
	require.Equal(t, 4, len(arr.Get()))
	require.Equal(t, int32(2), arr2.storage.RefCount())
	require.Equal(t, 4, len(arr2.Get()))
	expected1 := [][]byte{[]byte("foo"), []byte("bar"), []byte("baz"), []byte("cat")}
	assertReturnedToPool(t, pool, expected1, false)

	arr.Append([]byte("rand"))
	require.Equal(t, int32(1), arr.storage.RefCount())
	require.Equal(t, 5, len(arr.Get()))
	require.Equal(t, int32(1), arr2.storage.RefCount())
	require.Equal(t, 4, len(arr2.Get()))
	assertReturnedToPool(t, pool, expected1, false)
	expected2 := [][]byte{[]byte("foo"), []byte("bar"), []byte("baz"), []byte("cat"), []byte("rand")}
	assertReturnedToPool(t, pool, expected2, false)

	arr.Close()
	assertReturnedToPool(t, pool, expected1, false)
	assertReturnedToPool(t, pool, expected2, true)

	arr2.Close()
	assertReturnedToPool(t, pool, expected1, true)
}

func TestRefCountedPooledStringArrayResetOnRelease(t *testing.T) {
	buckets := []Bucket{
		{Capacity: 4, Count: 1},
	}
	pool := NewBucketizedPool[[]string](buckets, nil)
	pool.Init(func(capacity int) []string { return make([]string, 0, capacity) })

	var numResets int
	resetFn := func(values []string) {
		numResets++
		for i := range values {
			values[i] = ""
		}
	}
	arr := NewRefCountedPooledArray[string](pool.Get(4), pool, resetFn)
	arr.Append("foo")
	arr.Append("bar")

	snapshot := arr.Snapshot()
	arr.Close()
	arr.Close()
	require.Equal(t, 0, numResets)
	require.Equal(t, []string{"foo", "bar"}, snapshot.Get())

	snapshot.Close()
	require.Equal(t, 1, numResets)
	require.Equal(t, []string{"", ""}, pool.Get(4)[:2])
}

func TestRefCountedPooledArrayAppendGrowsPastDoubling(t *testing.T) {
	buckets := []Bucket{
		{Capacity: 2, Count: 1},
		{Capacity: 8, Count: 1},
	}
	pool := NewBucketizedPool[[]int](buckets, nil)
	pool.Init(func(capacity int) []int { return make([]int, 0, capacity) })

	arr := NewRefCountedPooledArray[int](pool.Get(2), pool, nil)
	arr.Append(0, 1, 2, 3, 4)
	require.Equal(t, []int{0, 1, 2, 3, 4}, arr.Get())
	require.Equal(t, 5, arr.Len())
	require.Equal(t, 8, cap(arr.Get()))

	// The first array went back to its bucket.
	require.Equal(t, 2, cap(pool.Get(2)))

	arr.Close()
	arr.Close()
	require.Nil(t, arr.Get())
	require.Equal(t, []int{0, 1, 2, 3, 4}, pool.Get(8)[:5])
}

func assertReturnedToPool[T any](
	t *testing.T,
	p *BucketizedPool[[]T],
	expected []T,
	shouldReturn bool,
) {
	toCheck := p.Get(len(expected))[:len(expected)]
	if shouldReturn {
		require.Equal(t, expected, toCheck)
	} else {
		require.NotEqual(t, expected, toCheck)
	}
}

package pool

import (
	"testing"
	"time"

	"github.com/m3db/m3/src/x/instrument"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
)

func TestPoolGetPut(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	opts := NewOptions().
		SetSize(2).
		SetInstrumentOptions(instrument.NewOptions().SetMetricsScope(scope))

	var numAllocs int
	p := NewPool[*int](opts)
	p.Init(func() *int {
		numAllocs++
		v := numAllocs
		return &v
	})
	require.Equal(t, 2, numAllocs)

	a := p.Get()
	b := p.Get()
	c := p.Get()
	require.Equal(t, 3, numAllocs)
	require.NotEqual(t, a, b)

	p.Put(a)
	p.Put(b)
	p.Put(c)
	require.Equal(t, a, p.Get())

	counters := make(map[string]int64)
	for _, counter := range scope.Snapshot().Counters() {
		counters[counter.Name()] = counter.Value()
	}
	require.Equal(t, int64(1), counters["get-on-empty"])
	require.Equal(t, int64(1), counters["put-on-full"])
}

func TestPoolUseBeforeInitPanics(t *testing.T) {
	p := NewPool[int](NewOptions().SetSize(1))
	require.Panics(t, func() { p.Get() })
	require.Panics(t, func() { p.Put(1) })

	p.Init(func() int { return 1 })
	require.Panics(t, func() { p.Init(func() int { return 2 }) })
}

func TestBucketizedPoolGetPut(t *testing.T) {
	buckets := []Bucket{
		{Capacity: 8, Count: 1},
		{Capacity: 2, Count: 1},
	}
	p := NewBucketizedPool[[]int](buckets, nil)
	p.Init(func(capacity int) []int { return make([]int, 0, capacity) })

	require.Equal(t, 2, cap(p.Get(1)))
	require.Equal(t, 8, cap(p.Get(3)))
	require.Equal(t, 16, cap(p.Get(16)))

	arr := make([]int, 0, 8)
	p.Put(arr, 8)
	got := p.Get(5)
	require.Equal(t, 8, cap(got))
	got = append(got, 42)
	require.Equal(t, 42, arr[:1][0])

	p.Put(make([]int, 0, 32), 32)
}

func TestPoolRefillsBetweenWatermarks(t *testing.T) {
	opts := NewOptions().
		SetSize(4).
		SetRefillLowWatermark(0.5).
		SetRefillHighWatermark(1.0)
	p := NewPool[[]byte](opts)
	p.Init(func() []byte { return make([]byte, 8) })
	require.Equal(t, 4, p.Len())

	p.Get()
	require.Equal(t, 3, p.Len())
	p.Get()
	require.Eventually(t, func() bool { return p.Len() == 4 }, time.Second, time.Millisecond)
}

func TestBucketizedPoolPutRouting(t *testing.T) {
	buckets := []Bucket{
		{Capacity: 4, Count: 1},
		{Capacity: 16, Count: 1},
	}
	p := NewBucketizedPool[[]int](buckets, nil)
	p.Init(func(capacity int) []int { return make([]int, 0, capacity) })
	p.Get(4)
	p.Get(16)

	// Too small for any bucket, and too large for every bucket.
	p.Put(make([]int, 0, 2), 2)
	p.Put(make([]int, 0, 64), 64)
	require.Equal(t, 4, cap(p.Get(3)))
	require.Equal(t, 16, cap(p.Get(10)))

	// An array of capacity 8 can serve the bucket of capacity 4.
	p.Put(make([]int, 0, 8), 8)
	require.Equal(t, 8, cap(p.Get(4)))
}

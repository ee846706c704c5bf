package pool

import (
	"sort"
	"strconv"

	"github.com/uber-go/tally"
)

// Bucket specifies a bucket.
type Bucket struct {
	// Capacity is the size of each element in the bucket.
	Capacity int

	// Count is the number of fixed elements in the bucket.
	Count int

	// Options is an optional override to specify options to use for a bucket,
	// specify nil to use the options specified to the bucketized pool
	// constructor for this bucket.
	Options *Options
}

type bucket[V any] struct {
	capacity int
	values   *Pool[V]
}

// BucketizedPool is a pool of values of varying capacity, with one Pool
// per bucket. A value of a given capacity is served by the smallest bucket
// that can hold it; larger requests are allocated and never pooled.
type BucketizedPool[V any] struct {
	specs        []Bucket
	opts         *Options
	buckets      []bucket[V]
	alloc        func(capacity int) V
	allocTooLong tally.Counter
}

// NewBucketizedPool creates a bucketized pool.
func NewBucketizedPool[V any](specs []Bucket, opts *Options) *BucketizedPool[V] {
	if opts == nil {
		opts = NewOptions()
	}
	sorted := append([]Bucket(nil), specs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})
	return &BucketizedPool[V]{
		specs:        sorted,
		opts:         opts,
		allocTooLong: opts.InstrumentOptions().MetricsScope().Counter("alloc-max"),
	}
}

// Init initializes every bucket with values from alloc.
func (p *BucketizedPool[V]) Init(alloc func(capacity int) V) {
	buckets := make([]bucket[V], 0, len(p.specs))
	for _, spec := range p.specs {
		capacity := spec.Capacity
		values := NewPool[V](p.bucketOptions(spec))
		values.Init(func() V { return alloc(capacity) })
		buckets = append(buckets, bucket[V]{capacity: capacity, values: values})
	}
	p.alloc = alloc
	p.buckets = buckets
}

// Get returns a value with room for at least capacity elements.
func (p *BucketizedPool[V]) Get(capacity int) V {
	i := sort.Search(len(p.buckets), func(i int) bool {
		return p.buckets[i].capacity >= capacity
	})
	if i == len(p.buckets) {
		p.allocTooLong.Inc(1)
		return p.alloc(capacity)
	}
	return p.buckets[i].values.Get()
}

// Put returns a value of the given capacity to the largest bucket it can
// serve. Values larger than every bucket or smaller than all of them
// are dropped.
func (p *BucketizedPool[V]) Put(v V, capacity int) {
	n := len(p.buckets)
	if n == 0 || capacity > p.buckets[n-1].capacity {
		return
	}
	i := sort.Search(n, func(i int) bool {
		return p.buckets[i].capacity > capacity
	})
	if i == 0 {
		return
	}
	p.buckets[i-1].values.Put(v)
}

func (p *BucketizedPool[V]) bucketOptions(spec Bucket) *Options {
	opts := p.opts
	if spec.Options != nil {
		opts = spec.Options
	}
	iOpts := opts.InstrumentOptions()
	scope := iOpts.MetricsScope().Tagged(map[string]string{
		"bucket-capacity": strconv.Itoa(spec.Capacity),
	})
	return opts.
		SetSize(spec.Count).
		SetInstrumentOptions(iOpts.SetMetricsScope(scope))
}

// Package pool provides bounded object pools, pools of reference counted
// values that keep their values released while pooled, and reference
// counted arrays whose storage goes back to a pool.
package pool

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/uber-go/tally"
)

const (
	gaugeSampleRate = 100
)

var (
	errPoolAlreadyInitialized = errors.New("pool is already initialized")
	errGetBeforeInit          = errors.New("get before pool is initialized")
	errPutBeforeInit          = errors.New("put before pool is initialized")
)

type poolMetrics struct {
	free       tally.Gauge
	total      tally.Gauge
	getOnEmpty tally.Counter
	putOnFull  tally.Counter
}

func newPoolMetrics(scope tally.Scope) poolMetrics {
	return poolMetrics{
		free:       scope.Gauge("free"),
		total:      scope.Gauge("total"),
		getOnEmpty: scope.Counter("get-on-empty"),
		putOnFull:  scope.Counter("put-on-full"),
	}
}

// watermarks are the refill thresholds of a pool in number of values.
type watermarks struct {
	low  int
	high int
}

func newWatermarks(opts *Options) watermarks {
	scaled := func(fraction float64) int {
		return int(math.Ceil(fraction * float64(opts.Size())))
	}
	return watermarks{
		low:  scaled(opts.RefillLowWatermark()),
		high: scaled(opts.RefillHighWatermark()),
	}
}

func (w watermarks) shouldRefill(free int) bool {
	return w.low > 0 && free <= w.low
}

// Pool keeps up to a fixed number of values in a buffered channel. Get
// allocates when the pool is empty and Put drops values when it is full.
type Pool[V any] struct {
	free      chan V
	alloc     func() V
	marks     watermarks
	claimed   atomic.Bool
	ready     atomic.Bool
	refilling atomic.Bool
	ops       atomic.Uint32
	metrics   poolMetrics
}

// NewPool creates a new pool. The pool must be initialized before use.
func NewPool[V any](opts *Options) *Pool[V] {
	if opts == nil {
		opts = NewOptions()
	}
	p := &Pool[V]{
		free:    make(chan V, opts.Size()),
		marks:   newWatermarks(opts),
		metrics: newPoolMetrics(opts.InstrumentOptions().MetricsScope()),
	}
	p.updateGauges()
	return p
}

// Init fills the pool with values from alloc, which is also used to
// allocate when the pool runs empty.
func (p *Pool[V]) Init(alloc func() V) {
	if !p.claimed.CompareAndSwap(false, true) {
		panic(errPoolAlreadyInitialized)
	}
	p.alloc = alloc
	for len(p.free) < cap(p.free) {
		p.free <- alloc()
	}
	p.ready.Store(true)
	p.updateGauges()
}

// Get takes a value from the pool, allocating one if the pool is empty.
func (p *Pool[V]) Get() V {
	if !p.ready.Load() {
		panic(errGetBeforeInit)
	}
	v, ok := p.take()
	if !ok {
		p.metrics.getOnEmpty.Inc(1)
		v = p.alloc()
	}
	p.sampleGauges()
	if p.marks.shouldRefill(len(p.free)) {
		p.refill()
	}
	return v
}

// Put gives a value back to the pool, dropping it if the pool is full.
func (p *Pool[V]) Put(v V) {
	if !p.ready.Load() {
		panic(errPutBeforeInit)
	}
	if !p.offer(v) {
		p.metrics.putOnFull.Inc(1)
	}
	p.sampleGauges()
}

// Len returns the number of values currently kept by the pool.
func (p *Pool[V]) Len() int { return len(p.free) }

func (p *Pool[V]) take() (V, bool) {
	select {
	case v := <-p.free:
		return v, true
	default:
		var zero V
		return zero, false
	}
}

func (p *Pool[V]) offer(v V) bool {
	select {
	case p.free <- v:
		return true
	default:
		return false
	}
}

// refill tops the pool up to the high watermark in the background, unless
// a refill is already running.
func (p *Pool[V]) refill() {
	if !p.refilling.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.refilling.Store(false)
		for len(p.free) < p.marks.high && p.offer(p.alloc()) {
		}
	}()
}

func (p *Pool[V]) sampleGauges() {
	if p.ops.Add(1)%gaugeSampleRate == 0 {
		p.updateGauges()
	}
}

func (p *Pool[V]) updateGauges() {
	p.metrics.free.Update(float64(len(p.free)))
	p.metrics.total.Update(float64(cap(p.free)))
}

package refcnt

import (
	"fmt"
	"sync/atomic"

	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

type trackerMetrics struct {
	live     tally.Gauge
	tracked  tally.Counter
	released tally.Counter
}

func newTrackerMetrics(scope tally.Scope) trackerMetrics {
	return trackerMetrics{
		live:     scope.Gauge("live"),
		tracked:  scope.Counter("tracked"),
		released: scope.Counter("released"),
	}
}

// Tracker counts the live reference counted instances registered with it.
// An instance is live from the moment it is tracked until its count drops
// to zero. Trackers are meant for leak detection in tests and debug builds
// and are only paid for by the counters registered with them.
type Tracker struct {
	live    int64
	logger  *zap.Logger
	metrics trackerMetrics
}

// NewTracker creates a new tracker.
func NewTracker(opts *TrackerOptions) *Tracker {
	if opts == nil {
		opts = NewTrackerOptions()
	}
	instrumentOpts := opts.InstrumentOptions()
	return &Tracker{
		logger:  instrumentOpts.Logger(),
		metrics: newTrackerMetrics(instrumentOpts.MetricsScope()),
	}
}

// Track registers a counter with the tracker. Counters must be tracked
// before they are shared. Tracking an already tracked counter is a no-op.
func (t *Tracker) Track(c Trackable) {
	if c.setTracker(t) {
		t.track()
	}
}

// Live returns the number of tracked instances that have not been released.
func (t *Tracker) Live() int64 {
	return atomic.LoadInt64(&t.live)
}

// CheckLeaks returns an error if any tracked instance is still live.
func (t *Tracker) CheckLeaks() error {
	n := t.Live()
	if n == 0 {
		return nil
	}
	t.logger.Error("reference counted instances still live", zap.Int64("live", n))
	return fmt.Errorf("%d reference counted instances still live", n)
}

func (t *Tracker) track() {
	n := atomic.AddInt64(&t.live, 1)
	t.metrics.tracked.Inc(1)
	t.metrics.live.Update(float64(n))
}

func (t *Tracker) untrack() {
	n := atomic.AddInt64(&t.live, -1)
	t.metrics.released.Inc(1)
	t.metrics.live.Update(float64(n))
}

package pool

import (
	"github.com/xichen2020/foundation/refcnt"

	"github.com/m3db/m3/src/x/instrument"
)

const (
	defaultSize = 4096
)

// Options provide a set of options for pools.
type Options struct {
	instrumentOpts      instrument.Options
	size                int
	refillLowWatermark  float64
	refillHighWatermark float64
	tracker             *refcnt.Tracker
}

// NewOptions create a new set of pool options.
func NewOptions() *Options {
	return &Options{
		instrumentOpts: instrument.NewOptions(),
		size:           defaultSize,
	}
}

// SetInstrumentOptions sets the instrument options.
func (o *Options) SetInstrumentOptions(v instrument.Options) *Options {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *Options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetSize sets the number of values the pool keeps.
func (o *Options) SetSize(v int) *Options {
	opts := *o
	opts.size = v
	return &opts
}

// Size returns the number of values the pool keeps.
func (o *Options) Size() int { return o.size }

// SetRefillLowWatermark sets the fraction of the size at or below which
// the pool starts refilling in the background, zero to never refill.
func (o *Options) SetRefillLowWatermark(v float64) *Options {
	opts := *o
	opts.refillLowWatermark = v
	return &opts
}

// RefillLowWatermark returns the low refill watermark.
func (o *Options) RefillLowWatermark() float64 { return o.refillLowWatermark }

// SetRefillHighWatermark sets the fraction of the size a refill stops at.
func (o *Options) SetRefillHighWatermark(v float64) *Options {
	opts := *o
	opts.refillHighWatermark = v
	return &opts
}

// RefillHighWatermark returns the high refill watermark.
func (o *Options) RefillHighWatermark() float64 { return o.refillHighWatermark }

// SetTracker sets the tracker values handed out by a RefCountedPool are
// registered with, nil to disable.
func (o *Options) SetTracker(v *refcnt.Tracker) *Options {
	opts := *o
	opts.tracker = v
	return &opts
}

// Tracker returns the tracker of reference counted values.
func (o *Options) Tracker() *refcnt.Tracker { return o.tracker }

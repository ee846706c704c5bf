package refcnt

import "github.com/m3db/m3/src/x/instrument"

// TrackerOptions provide a set of options for the tracker.
type TrackerOptions struct {
	instrumentOpts instrument.Options
}

// NewTrackerOptions create a new set of tracker options.
func NewTrackerOptions() *TrackerOptions {
	return &TrackerOptions{
		instrumentOpts: instrument.NewOptions(),
	}
}

// SetInstrumentOptions sets the instrument options.
func (o *TrackerOptions) SetInstrumentOptions(v instrument.Options) *TrackerOptions {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *TrackerOptions) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

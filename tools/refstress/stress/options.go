package stress

import (
	"github.com/xichen2020/foundation/geom"

	"github.com/m3db/m3/src/x/instrument"
)

const (
	defaultNumWorkers    = 8
	defaultNumIterations = 10000
	checkCtxEvery        = 128
)

// Options provide a set of options for stress runs.
type Options struct {
	instrumentOpts instrument.Options
	numWorkers     int
	numIterations  int
	meshPoolOpts   *geom.MeshPoolOptions
}

// NewOptions create a new set of stress options.
func NewOptions() *Options {
	return &Options{
		instrumentOpts: instrument.NewOptions(),
		numWorkers:     defaultNumWorkers,
		numIterations:  defaultNumIterations,
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

// SetNumWorkers sets the number of goroutines sharing the object.
func (o *Options) SetNumWorkers(v int) *Options {
	opts := *o
	opts.numWorkers = v
	return &opts
}

// NumWorkers returns the number of goroutines sharing the object.
func (o *Options) NumWorkers() int {
	return o.numWorkers
}

// SetNumIterations sets the number of acquire and release cycles per worker.
func (o *Options) SetNumIterations(v int) *Options {
	opts := *o
	opts.numIterations = v
	return &opts
}

// NumIterations returns the number of acquire and release cycles per worker.
func (o *Options) NumIterations() int {
	return o.numIterations
}

// SetMeshPoolOptions sets the mesh pool options. When set, every worker
// also cycles pooled meshes through copy-on-write transforms.
func (o *Options) SetMeshPoolOptions(v *geom.MeshPoolOptions) *Options {
	opts := *o
	opts.meshPoolOpts = v
	return &opts
}

// MeshPoolOptions returns the mesh pool options.
func (o *Options) MeshPoolOptions() *geom.MeshPoolOptions {
	return o.meshPoolOpts
}

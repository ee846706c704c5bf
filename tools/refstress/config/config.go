package config

import (
	"time"

	"github.com/xichen2020/foundation/geom"
	"github.com/xichen2020/foundation/tools/refstress/stress"

	"github.com/m3db/m3/src/x/instrument"
	xlog "github.com/m3db/m3/src/x/log"
)

// Configuration holds refstress configuration.
type Configuration struct {
	// Logging configuration.
	Logging xlog.Configuration `yaml:"logging"`

	// Metrics configuration, metrics are discarded if not set.
	Metrics *instrument.MetricsConfiguration `yaml:"metrics"`

	// Stress run configuration.
	Stress StressConfiguration `yaml:"stress"`
}

// StressConfiguration configures a stress run.
type StressConfiguration struct {
	NumWorkers    *int           `yaml:"numWorkers"`
	NumIterations *int           `yaml:"numIterations"`
	Timeout       *time.Duration `yaml:"timeout"`

	// Meshes are cycled through a mesh pool alongside the shared object if set.
	MeshPool *geom.MeshPoolConfiguration `yaml:"meshPool"`
}

// NewOptions creates a new set of stress options.
func (c *StressConfiguration) NewOptions(instrumentOpts instrument.Options) (*stress.Options, error) {
	opts := stress.NewOptions().SetInstrumentOptions(instrumentOpts)
	if c.NumWorkers != nil {
		opts = opts.SetNumWorkers(*c.NumWorkers)
	}
	if c.NumIterations != nil {
		opts = opts.SetNumIterations(*c.NumIterations)
	}
	if c.MeshPool != nil {
		if err := c.MeshPool.Validate(); err != nil {
			return nil, err
		}
		scope := instrumentOpts.MetricsScope().SubScope("mesh")
		meshOpts := c.MeshPool.NewOptions(instrumentOpts.SetMetricsScope(scope))
		opts = opts.SetMeshPoolOptions(meshOpts)
	}
	return opts, nil
}

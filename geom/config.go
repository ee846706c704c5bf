package geom

import (
	"github.com/xichen2020/foundation/x/pool"

	xerrors "github.com/m3db/m3/src/x/errors"
	"github.com/m3db/m3/src/x/instrument"
)

// MeshPoolConfiguration contains mesh pool configuration.
type MeshPoolConfiguration struct {
	// The pool of meshes.
	Meshes pool.Configuration `yaml:"meshes"`

	// The pool of vertex arrays, the default buckets are used if none.
	Vertices pool.BucketizedPoolConfiguration `yaml:"vertices"`
}

// Validate validates the mesh pool configuration.
func (c *MeshPoolConfiguration) Validate() error {
	var multiErr xerrors.MultiError
	multiErr = multiErr.Add(c.Meshes.Validate())
	multiErr = multiErr.Add(c.Vertices.Validate())
	return multiErr.FinalError()
}

// NewOptions creates a new set of mesh pool options.
func (c *MeshPoolConfiguration) NewOptions(instrumentOpts instrument.Options) *MeshPoolOptions {
	scope := instrumentOpts.MetricsScope()
	opts := NewMeshPoolOptions().SetInstrumentOptions(instrumentOpts)
	opts = opts.SetMeshPoolOptions(c.Meshes.ApplyPoolOptions(
		opts.MeshPoolOptions(),
		instrumentOpts.SetMetricsScope(scope.SubScope("mesh-pool")),
	))
	if len(c.Vertices.Buckets) > 0 {
		opts = opts.
			SetVertexBuckets(c.Vertices.NewBuckets()).
			SetVertexPoolOptions(c.Vertices.NewPoolOptions(
				instrumentOpts.SetMetricsScope(scope.SubScope("vertex-pool")),
			))
	}
	return opts
}

package geom

import (
	"github.com/xichen2020/foundation/refcnt"
	"github.com/xichen2020/foundation/refptr"
	"github.com/xichen2020/foundation/x/pool"

	"github.com/m3db/m3/src/x/instrument"
	"golang.org/x/image/math/f32"
)

const (
	defaultMeshPoolSize = 256
)

var (
	defaultVertexBuckets = []pool.Bucket{
		{Capacity: 16, Count: 256},
		{Capacity: 256, Count: 64},
		{Capacity: 4096, Count: 8},
	}
)

// MeshPoolOptions provide a set of options for mesh pools.
type MeshPoolOptions struct {
	instrumentOpts instrument.Options
	meshPoolOpts   *pool.Options
	vertexBuckets  []pool.Bucket
	vertexPoolOpts *pool.Options
	tracker        *refcnt.Tracker
}

// NewMeshPoolOptions create a new set of mesh pool options.
func NewMeshPoolOptions() *MeshPoolOptions {
	return &MeshPoolOptions{
		instrumentOpts: instrument.NewOptions(),
		meshPoolOpts:   pool.NewOptions().SetSize(defaultMeshPoolSize),
		vertexBuckets:  defaultVertexBuckets,
	}
}

// SetInstrumentOptions sets the instrument options.
func (o *MeshPoolOptions) SetInstrumentOptions(v instrument.Options) *MeshPoolOptions {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *MeshPoolOptions) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetMeshPoolOptions sets the options of the pool of meshes.
func (o *MeshPoolOptions) SetMeshPoolOptions(v *pool.Options) *MeshPoolOptions {
	opts := *o
	opts.meshPoolOpts = v
	return &opts
}

// MeshPoolOptions returns the options of the pool of meshes.
func (o *MeshPoolOptions) MeshPoolOptions() *pool.Options {
	return o.meshPoolOpts
}

// SetVertexBuckets sets the buckets of the vertex array pool.
func (o *MeshPoolOptions) SetVertexBuckets(v []pool.Bucket) *MeshPoolOptions {
	opts := *o
	opts.vertexBuckets = v
	return &opts
}

// VertexBuckets returns the buckets of the vertex array pool.
func (o *MeshPoolOptions) VertexBuckets() []pool.Bucket {
	return o.vertexBuckets
}

// SetVertexPoolOptions sets the options of the vertex array pool.
// If unset, the instrument options of the mesh pool are used.
func (o *MeshPoolOptions) SetVertexPoolOptions(v *pool.Options) *MeshPoolOptions {
	opts := *o
	opts.vertexPoolOpts = v
	return &opts
}

// VertexPoolOptions returns the options of the vertex array pool.
func (o *MeshPoolOptions) VertexPoolOptions() *pool.Options {
	return o.vertexPoolOpts
}

// SetTracker sets the tracker meshes are registered with, nil to disable.
func (o *MeshPoolOptions) SetTracker(v *refcnt.Tracker) *MeshPoolOptions {
	opts := *o
	opts.tracker = v
	return &opts
}

// Tracker returns the tracker meshes are registered with.
func (o *MeshPoolOptions) Tracker() *refcnt.Tracker {
	return o.tracker
}

// MeshPool is a pool of meshes and of their vertex arrays.
type MeshPool struct {
	meshes   *pool.RefCountedPool[*Mesh]
	vertices *pool.BucketizedPool[[]f32.Vec3]
}

// NewMeshPool creates a new mesh pool.
func NewMeshPool(opts *MeshPoolOptions) *MeshPool {
	if opts == nil {
		opts = NewMeshPoolOptions()
	}

	var (
		iOpts        = opts.InstrumentOptions()
		scope        = iOpts.MetricsScope()
		meshPoolOpts = opts.MeshPoolOptions().SetInstrumentOptions(
			iOpts.SetMetricsScope(scope.SubScope("mesh-pool")),
		)
		vertexPoolOpts = opts.VertexPoolOptions()
	)
	if tracker := opts.Tracker(); tracker != nil {
		meshPoolOpts = meshPoolOpts.SetTracker(tracker)
	}
	if vertexPoolOpts == nil {
		vertexPoolOpts = pool.NewOptions().SetInstrumentOptions(
			iOpts.SetMetricsScope(scope.SubScope("vertex-pool")),
		)
	}

	p := &MeshPool{
		meshes:   pool.NewRefCountedPool[*Mesh](meshPoolOpts),
		vertices: pool.NewBucketizedPool[[]f32.Vec3](opts.VertexBuckets(), vertexPoolOpts),
	}
	p.vertices.Init(func(capacity int) []f32.Vec3 { return make([]f32.Vec3, 0, capacity) })
	p.meshes.Init(func() *Mesh { return &Mesh{pool: p} }, (*Mesh).closeVertices)
	return p
}

// Get returns an empty mesh with room for at least capacity vertices,
// owned by the returned handle.
func (p *MeshPool) Get(capacity int) *refptr.Ptr[*Mesh] {
	m := p.meshes.Get()
	m.vertices = pool.NewRefCountedPooledArray[f32.Vec3](p.vertices.Get(capacity), p.vertices, nil)
	return refptr.NewPtr(m, refptr.Transfer)
}

package geom

import (
	"github.com/xichen2020/foundation/refcnt"
	"github.com/xichen2020/foundation/refptr"
	"github.com/xichen2020/foundation/x/pool"

	"golang.org/x/image/math/f32"
)

// Mesh is a list of vertices shared between goroutines. Meshes obtained
// from a MeshPool go back to it once their last reference is dropped, and
// their vertex arrays go back to the vertex pool.
//
// Vertices must only be mutated by the holder of the sole reference.
type Mesh struct {
	refcnt.AtomicRefCounter

	vertices *pool.RefCountedPooledArray[f32.Vec3]
	pool     *MeshPool
}

// heapVertices hands out vertex arrays of meshes that are not pooled.
type heapVertices struct{}

func (heapVertices) Get(capacity int) []f32.Vec3 { return make([]f32.Vec3, 0, capacity) }
func (heapVertices) Put([]f32.Vec3, int)         {}

// NewMesh creates a mesh that is not pooled, owned by the returned handle.
func NewMesh(vertices ...f32.Vec3) *refptr.Ptr[*Mesh] {
	return refptr.Make(func(m *Mesh) {
		var arrays heapVertices
		m.vertices = pool.NewRefCountedPooledArray[f32.Vec3](arrays.Get(len(vertices)), arrays, nil)
		m.vertices.Append(vertices...)
		m.SetOnZeroRefCount(m.closeVertices)
	})
}

// Vertices returns the vertices of the mesh, nil once it is released.
func (m *Mesh) Vertices() []f32.Vec3 {
	if m.vertices == nil {
		return nil
	}
	return m.vertices.Get()
}

// Len returns the number of vertices.
func (m *Mesh) Len() int { return len(m.Vertices()) }

// Append appends vertices to the mesh.
func (m *Mesh) Append(vertices ...f32.Vec3) {
	m.vertices.Append(vertices...)
}

// Bounds returns the bounding box of the mesh.
func (m *Mesh) Bounds() Box {
	return BoxOf(m.Vertices()...)
}

// clone returns a new mesh with the same vertices, taken from the same
// pool as m if m is pooled.
func (m *Mesh) clone() *refptr.Ptr[*Mesh] {
	if m.pool == nil {
		return NewMesh(m.Vertices()...)
	}
	h := m.pool.Get(m.Len())
	h.Get().Append(m.Vertices()...)
	return h
}

func (m *Mesh) closeVertices() {
	m.vertices.Close()
	m.vertices = nil
}

// TransformMesh applies t to every vertex of the mesh held by h. The mesh is
// updated in place if h holds its only reference; otherwise h is moved to a
// transformed copy, leaving other holders of the original untouched.
func TransformMesh(h *refptr.Ptr[*Mesh], t f32.Mat4) {
	if !h.Valid() {
		return
	}
	m := h.Get()
	if !m.IsUniqueRef() {
		cp := m.clone()
		h.MoveFrom(cp)
		m = h.Get()
	}
	vertices := m.Vertices()
	for i, v := range vertices {
		vertices[i] = Transform(t, v)
	}
}

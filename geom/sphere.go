package geom

import (
	"github.com/xichen2020/foundation/refcnt"
	"github.com/xichen2020/foundation/refptr"

	"golang.org/x/image/math/f32"
)

// Sphere is a shape for single goroutine use. Its references must not be
// shared across goroutines without external synchronization.
type Sphere struct {
	refcnt.PlainRefCounter

	Center f32.Vec3
	Radius float32
}

// NewSphere creates a new sphere owned by the returned handle.
func NewSphere(center f32.Vec3, radius float32) *refptr.Ptr[*Sphere] {
	return refptr.Make(func(s *Sphere) {
		s.Center = center
		s.Radius = radius
	})
}

// Bounds returns the bounding box of the sphere.
func (s *Sphere) Bounds() Box {
	r := s.Radius
	return BoxOf(
		f32.Vec3{s.Center[0] - r, s.Center[1] - r, s.Center[2] - r},
		f32.Vec3{s.Center[0] + r, s.Center[1] + r, s.Center[2] + r},
	)
}

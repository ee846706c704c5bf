package geom

import "github.com/xichen2020/foundation/refcnt"

// Shape is a reference counted object with a bounding box.
type Shape interface {
	refcnt.RefCounted

	// Bounds returns the bounding box of the shape.
	Bounds() Box
}

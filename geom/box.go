package geom

import "golang.org/x/image/math/f32"

// Box is an axis aligned bounding box. The zero value is empty.
type Box struct {
	Min, Max f32.Vec3
	nonEmpty bool
}

// BoxOf returns the smallest box containing the given points.
func BoxOf(points ...f32.Vec3) Box {
	var b Box
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Empty returns true if the box contains no point.
func (b Box) Empty() bool { return !b.nonEmpty }

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p f32.Vec3) Box {
	if !b.nonEmpty {
		return Box{Min: p, Max: p, nonEmpty: true}
	}
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	if o.Empty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

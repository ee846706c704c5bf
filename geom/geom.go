// Package geom holds geometry shared between owners through reference
// counted handles. Vector and matrix values are plain f32 arrays.
package geom

import "golang.org/x/image/math/f32"

// Identity returns the 4x4 identity matrix.
func Identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by v.
func Translation(v f32.Vec3) f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, v[0],
		0, 1, 0, v[1],
		0, 0, 1, v[2],
		0, 0, 0, 1,
	}
}

// Scale returns a matrix scaling each axis by the matching component of v.
func Scale(v f32.Vec3) f32.Mat4 {
	return f32.Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// Mul returns the product a*b. Matrices are row major, so the result
// applies b first.
func Mul(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			m[i*4+j] = sum
		}
	}
	return m
}

// Transform applies m to the point v.
func Transform(m f32.Mat4, v f32.Vec3) f32.Vec3 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = m[i*4]*v[0] + m[i*4+1]*v[1] + m[i*4+2]*v[2] + m[i*4+3]
	}
	// NB: projective matrices leave w != 1.
	if w := out[3]; w != 0 && w != 1 {
		return f32.Vec3{out[0] / w, out[1] / w, out[2] / w}
	}
	return f32.Vec3{out[0], out[1], out[2]}
}

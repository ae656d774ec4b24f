package vmath

import "math"

// Matrix3 is a row-major 3x3 homogeneous transform
//
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	| m6 m7 m8 |
type Matrix3 [9]float64

// maxCoord bounds transformed coordinates before conversion back to grid space
const maxCoord = math.MaxInt32

// Identity is the neutral element under Mul
var Identity = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// RotationAround returns a single matrix rotating by degrees about pivot.
// Equivalent to T(p) * R(θ) * T(-p) expanded algebraically.
func RotationAround(pivot PointF, degrees float64) Matrix3 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	x, y := pivot.X, pivot.Y
	return Matrix3{
		cos, -sin, x - x*cos + y*sin,
		sin, cos, y - x*sin - y*cos,
		0, 0, 1,
	}
}

// Translation returns a matrix offsetting points by v
func Translation(v VectorF) Matrix3 {
	return Matrix3{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}
}

// Mul returns m * n; applied to a point, n acts first
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	return Matrix3{
		m[0]*n[0] + m[1]*n[3] + m[2]*n[6],
		m[0]*n[1] + m[1]*n[4] + m[2]*n[7],
		m[0]*n[2] + m[1]*n[5] + m[2]*n[8],
		m[3]*n[0] + m[4]*n[3] + m[5]*n[6],
		m[3]*n[1] + m[4]*n[4] + m[5]*n[7],
		m[3]*n[2] + m[4]*n[5] + m[5]*n[8],
		m[6]*n[0] + m[7]*n[3] + m[8]*n[6],
		m[6]*n[1] + m[7]*n[4] + m[8]*n[7],
		m[6]*n[2] + m[7]*n[5] + m[8]*n[8],
	}
}

// ApplyF transforms a floating point coordinate.
// A zero w component passes the numerator through undivided.
func (m Matrix3) ApplyF(p PointF) PointF {
	x := m[0]*p.X + m[1]*p.Y + m[2]
	y := m[3]*p.X + m[4]*p.Y + m[5]
	w := m[6]*p.X + m[7]*p.Y + m[8]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return PointF{X: x, Y: y}
}

// Apply transforms a grid point, rounding to the nearest cell and clamping into grid range
func (m Matrix3) Apply(p Point) Point {
	f := m.ApplyF(p.ToF())
	return Point{X: toGrid(f.X), Y: toGrid(f.Y)}
}

func toGrid(v float64) uint {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= maxCoord:
		return maxCoord
	}
	return uint(v)
}

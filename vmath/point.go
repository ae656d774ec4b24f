package vmath

import "math"

// Point is an unsigned grid coordinate
type Point struct {
	X, Y uint
}

// PointZero is the grid origin
var PointZero = Point{}

// NewPoint creates a point from unsigned coordinates
func NewPoint(x, y uint) Point {
	return Point{X: x, Y: y}
}

// PointFromSigned creates a point from signed coordinates, clamping negatives to zero
func PointFromSigned(x, y int) Point {
	return Point{X: uint(max(x, 0)), Y: uint(max(y, 0))}
}

// Add offsets the point by v, saturating at zero and at the uint limit
func (p Point) Add(v Vector) Point {
	return Point{X: saturatingAdd(p.X, v.X), Y: saturatingAdd(p.Y, v.Y)}
}

// Sub returns the signed displacement from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{X: int(p.X) - int(q.X), Y: int(p.Y) - int(q.Y)}
}

// ToF converts to floating point coordinates
func (p Point) ToF() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

func saturatingAdd(u uint, d int) uint {
	if d >= 0 {
		if uint(d) > math.MaxUint-u {
			return math.MaxUint
		}
		return u + uint(d)
	}
	neg := uint(-d)
	if neg > u {
		return 0
	}
	return u - neg
}

// Vector is a signed displacement used for sizes and directional offsets
type Vector struct {
	X, Y int
}

var (
	VectorZero  = Vector{0, 0}
	VectorRight = Vector{1, 0}
	VectorLeft  = Vector{-1, 0}
	VectorUp    = Vector{0, -1}
	VectorDown  = Vector{0, 1}
)

// NewVector creates a vector
func NewVector(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Product returns X*Y, the cell count of a size vector
func (v Vector) Product() int {
	return v.X * v.Y
}

// ToF converts to a floating point vector
func (v Vector) ToF() VectorF {
	return VectorF{X: float64(v.X), Y: float64(v.Y)}
}

// PointF is a sub-cell precision point, used for pivots and centroids
type PointF struct {
	X, Y float64
}

// NewPointF creates a floating point coordinate
func NewPointF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// VectorF is a floating point displacement
type VectorF struct {
	X, Y float64
}

// NewVectorF creates a floating point vector
func NewVectorF(x, y float64) VectorF {
	return VectorF{X: x, Y: y}
}

// Opposite returns the negated vector
func (v VectorF) Opposite() VectorF {
	return VectorF{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by k
func (v VectorF) Scale(k float64) VectorF {
	return VectorF{X: v.X * k, Y: v.Y * k}
}

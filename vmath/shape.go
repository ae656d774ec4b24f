package vmath

import (
	"fmt"
	"iter"
	"math"
)

// degenerateArea is the smallest absolute area a shape may have before its centroid is undefined
const degenerateArea = 1e-9

// Shape is a closed vertex ring that can be measured, rasterized and transformed
type Shape interface {
	Area() float64
	Center() PointF
	Outline() iter.Seq[Point]
	Contains(p Point) bool
	Bounds() BoundingBox
	Filled() iter.Seq[Point]
	Transform() *Transformer
}

// Polygon is a convex ring of N >= 3 vertices.
// The original pose is never mutated; current vertices are always recomputed from it
// through the accumulated matrices, so repeated transforms do not accumulate drift.
type Polygon struct {
	original []Point
	current  []Point

	rotations    Matrix3
	translations Matrix3
}

// NewPolygon creates a polygon from its vertex ring. Panics on fewer than 3 vertices.
func NewPolygon(vertices ...Point) *Polygon {
	if len(vertices) < 3 {
		panic(fmt.Sprintf("vmath: polygon needs at least 3 vertices, got %d", len(vertices)))
	}
	p := &Polygon{
		original:     make([]Point, len(vertices)),
		current:      make([]Point, len(vertices)),
		rotations:    Identity,
		translations: Identity,
	}
	copy(p.original, vertices)
	copy(p.current, vertices)
	return p
}

// Len returns the vertex count
func (p *Polygon) Len() int {
	return len(p.original)
}

// Original returns a copy of the reference pose
func (p *Polygon) Original() []Point {
	return append([]Point(nil), p.original...)
}

// Vertices returns a copy of the current (transformed) vertices
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.current...)
}

// Area returns the signed shoelace area of the original pose; sign encodes winding
func (p *Polygon) Area() float64 {
	var sum float64
	n := len(p.original)
	for i := 0; i < n; i++ {
		sum += cross(p.original[i], p.original[(i+1)%n])
	}
	return sum * 0.5
}

// Center returns the shoelace centroid of the original pose.
// Panics when the shape is degenerate (zero area).
func (p *Polygon) Center() PointF {
	var area, cx, cy float64
	n := len(p.original)
	for i := 0; i < n; i++ {
		a, b := p.original[i], p.original[(i+1)%n]
		c := cross(a, b)
		area += c
		cx += float64(a.X+b.X) * c
		cy += float64(a.Y+b.Y) * c
	}
	area *= 0.5
	if math.Abs(area) < degenerateArea {
		panic(fmt.Sprintf("vmath: centroid of degenerate polygon %v is undefined", p.original))
	}
	f := 1 / (6 * area)
	return PointF{X: cx * f, Y: cy * f}
}

func cross(a, b Point) float64 {
	return float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
}

// Outline yields the rasterized edges of the current pose in vertex order with wraparound.
// Each segment contributes its intermediate and end points, so each vertex is emitted once.
func (p *Polygon) Outline() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := len(p.current)
		for i := 0; i < n; i++ {
			t := NewLineTraverser(p.current[i], p.current[(i+1)%n])
			t.Next() // start belongs to the previous segment
			for t.Next() {
				if !yield(t.Pos()) {
					return
				}
			}
		}
	}
}

// Contains reports whether pt lies inside the current pose.
// Every edge cross product must share one sign; zero (edge-on) counts as inside.
func (p *Polygon) Contains(pt Point) bool {
	var pos, neg bool
	n := len(p.current)
	px, py := int64(pt.X), int64(pt.Y)
	for i := 0; i < n; i++ {
		a, b := p.current[i], p.current[(i+1)%n]
		ax, ay := int64(a.X), int64(a.Y)
		c := (int64(b.X)-ax)*(py-ay) - (int64(b.Y)-ay)*(px-ax)
		switch {
		case c > 0:
			pos = true
		case c < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the current pose
func (p *Polygon) Bounds() BoundingBox {
	return BoundsOf(p.current)
}

// Filled yields every cell inside the current pose, scanning the bounding box
func (p *Polygon) Filled() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for pt := range p.Bounds().Points() {
			if p.Contains(pt) && !yield(pt) {
				return
			}
		}
	}
}

// Transform starts a lazy transform chain; nothing moves until Finalize
func (p *Polygon) Transform() *Transformer {
	return &Transformer{shape: p}
}

// finalize recomputes current vertices as T*R applied to the original pose
func (p *Polygon) finalize() {
	m := p.translations.Mul(p.rotations)
	for i, v := range p.original {
		p.current[i] = m.Apply(v)
	}
}

// Reset drops all accumulated transforms and restores the original pose
func (p *Polygon) Reset() {
	p.rotations = Identity
	p.translations = Identity
	copy(p.current, p.original)
}

// Transformer accumulates rotations and translations for a shape
type Transformer struct {
	shape *Polygon
}

// Rotate rotates by degrees about the shape's centroid
func (t *Transformer) Rotate(degrees float64) *Transformer {
	return t.RotateAround(t.shape.Center(), degrees)
}

// RotateAround rotates by degrees about pivot
func (t *Transformer) RotateAround(pivot PointF, degrees float64) *Transformer {
	t.shape.rotations = t.shape.rotations.Mul(RotationAround(pivot, degrees))
	return t
}

// Translate offsets the shape by v
func (t *Transformer) Translate(v VectorF) *Transformer {
	t.shape.translations = t.shape.translations.Mul(Translation(v))
	return t
}

// Finalize applies the accumulated transform to the original pose.
// Accumulators are kept, so successive cycles compose.
func (t *Transformer) Finalize() {
	t.shape.finalize()
}

package vmath

import "iter"

// BoundingBox is an axis-aligned inclusive rectangle of grid cells
type BoundingBox struct {
	Min, Max Point
}

// BoundsOf returns the smallest box enclosing all points
func BoundsOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Contains checks if point is within the box, edges included
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clip intersects the box with another, reporting false when they do not overlap
func (b BoundingBox) Clip(o BoundingBox) (BoundingBox, bool) {
	c := BoundingBox{
		Min: Point{X: max(b.Min.X, o.Min.X), Y: max(b.Min.Y, o.Min.Y)},
		Max: Point{X: min(b.Max.X, o.Max.X), Y: min(b.Max.Y, o.Max.Y)},
	}
	if c.Min.X > c.Max.X || c.Min.Y > c.Max.Y {
		return BoundingBox{}, false
	}
	return c, true
}

// Points scans the box row-major
func (b BoundingBox) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y {
			return
		}
		// Break before incrementing so a box ending at MaxUint terminates
		for y := b.Min.Y; ; y++ {
			for x := b.Min.X; ; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
				if x == b.Max.X {
					break
				}
			}
			if y == b.Max.Y {
				break
			}
		}
	}
}

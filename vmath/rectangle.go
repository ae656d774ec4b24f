package vmath

// Rectangle is a 4-vertex ring: top-left, top-right, bottom-right, bottom-left
type Rectangle struct {
	*Polygon
}

// RectangleFromCorners creates an axis-aligned rectangle from opposite corners
func RectangleFromCorners(topLeft, bottomRight Point) *Rectangle {
	topRight := Point{X: bottomRight.X, Y: topLeft.Y}
	bottomLeft := Point{X: topLeft.X, Y: bottomRight.Y}
	return &Rectangle{Polygon: NewPolygon(topLeft, topRight, bottomRight, bottomLeft)}
}

// RectangleFromCornerAndSize creates a rectangle spanning size from topLeft
func RectangleFromCornerAndSize(topLeft Point, size Vector) *Rectangle {
	return RectangleFromCorners(topLeft, topLeft.Add(size))
}

// Width returns the horizontal extent of the original pose
func (r *Rectangle) Width() uint {
	b := BoundsOf(r.original)
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the original pose
func (r *Rectangle) Height() uint {
	b := BoundsOf(r.original)
	return b.Max.Y - b.Min.Y
}

// Size returns width and height as a vector
func (r *Rectangle) Size() Vector {
	return Vector{X: int(r.Width()), Y: int(r.Height())}
}

// Triangle is a 3-vertex ring
type Triangle struct {
	*Polygon
}

// NewTriangle creates a triangle from its vertices
func NewTriangle(a, b, c Point) *Triangle {
	return &Triangle{Polygon: NewPolygon(a, b, c)}
}

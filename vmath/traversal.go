package vmath

// LineTraverser is a zero-allocation iterator over the discrete line between two grid points.
// Integer error-accumulator stepping; every step advances exactly one cell along the dominant axis.
type LineTraverser struct {
	x, y         int
	endX, endY   int
	stepX, stepY int
	dx, dy       int
	err          int

	started bool
	done    bool
}

// NewLineTraverser creates an iterator from p0 to p1, both inclusive
func NewLineTraverser(p0, p1 Point) LineTraverser {
	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := int(p1.X), int(p1.Y)

	t := LineTraverser{
		x: x0, y: y0,
		endX: x1, endY: y1,
		stepX: 1, stepY: 1,
		dx: x1 - x0, dy: y1 - y0,
	}
	if t.dx < 0 {
		t.dx = -t.dx
		t.stepX = -1
	}
	if t.dy < 0 {
		t.dy = -t.dy
		t.stepY = -1
	}
	t.err = t.dx - t.dy
	return t
}

// Next advances to the next cell. The first call yields the start point.
// Returns false once the endpoint has been yielded.
func (t *LineTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.x == t.endX && t.y == t.endY {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 > -t.dy {
		t.err -= t.dy
		t.x += t.stepX
	}
	if e2 < t.dx {
		t.err += t.dx
		t.y += t.stepY
	}
	return true
}

// Pos returns the current cell
func (t *LineTraverser) Pos() Point {
	return Point{X: uint(t.x), Y: uint(t.y)}
}

// Line returns every point from p0 to p1 inclusive: max(|dx|,|dy|)+1 points
func Line(p0, p1 Point) []Point {
	t := NewLineTraverser(p0, p1)
	n := max(t.dx, t.dy) + 1
	points := make([]Point, 0, n)
	for t.Next() {
		points = append(points, t.Pos())
	}
	return points
}

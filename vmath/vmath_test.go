package vmath

import (
	"math"
	"slices"
	"testing"
)

const epsilon = 1e-9

func TestPointAddSaturates(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		v    Vector
		want Point
	}{
		{"Plain add", Point{2, 3}, Vector{1, 1}, Point{3, 4}},
		{"Negative within range", Point{5, 5}, Vector{-2, -5}, Point{3, 0}},
		{"Underflow clamps to zero", Point{0, 1}, Vector{-1, -5}, Point{0, 0}},
		{"Overflow clamps to max", Point{math.MaxUint - 1, 0}, Vector{10, 0}, Point{math.MaxUint, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.v); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMatrixIdentityIsNeutral(t *testing.T) {
	m := RotationAround(PointF{3, 7}, 33).Mul(Translation(VectorF{2, -4}))

	if got := Identity.Mul(m); !matrixNear(got, m) {
		t.Errorf("Identity*m = %v, want %v", got, m)
	}
	if got := m.Mul(Identity); !matrixNear(got, m) {
		t.Errorf("m*Identity = %v, want %v", got, m)
	}
}

func TestRotationAroundMatchesComposition(t *testing.T) {
	pivot := PointF{12.5, -3}
	for _, deg := range []float64{0, 15, 90, 180, 271.5, -45} {
		composed := Translation(VectorF{pivot.X, pivot.Y}).
			Mul(RotationAround(PointF{}, deg)).
			Mul(Translation(VectorF{-pivot.X, -pivot.Y}))
		direct := RotationAround(pivot, deg)
		if !matrixNear(direct, composed) {
			t.Errorf("deg=%v: direct %v, composed %v", deg, direct, composed)
		}
	}
}

func TestApplyZeroWPassesThrough(t *testing.T) {
	m := Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 0}
	if got := m.Apply(Point{3, 4}); got != (Point{3, 4}) {
		t.Errorf("Expected undivided (3,4), got %v", got)
	}
}

func TestApplyClampsNegative(t *testing.T) {
	m := Translation(VectorF{-10, -0.4})
	if got := m.Apply(Point{4, 4}); got != (Point{0, 4}) {
		t.Errorf("Expected (0,4), got %v", got)
	}
}

func TestLineLengthAndEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"Horizontal", Point{0, 0}, Point{3, 0}},
		{"Vertical up", Point{4, 9}, Point{4, 2}},
		{"Diagonal", Point{0, 0}, Point{5, 5}},
		{"Shallow backwards", Point{10, 5}, Point{0, 2}},
		{"Steep", Point{1, 1}, Point{3, 12}},
		{"Single point", Point{7, 7}, Point{7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Line(tt.p0, tt.p1)
			d := tt.p1.Sub(tt.p0)
			want := max(abs(d.X), abs(d.Y)) + 1

			if len(pts) != want {
				t.Fatalf("Expected %d points, got %d: %v", want, len(pts), pts)
			}
			if pts[0] != tt.p0 {
				t.Errorf("Expected start %v, got %v", tt.p0, pts[0])
			}
			if pts[len(pts)-1] != tt.p1 {
				t.Errorf("Expected end %v, got %v", tt.p1, pts[len(pts)-1])
			}

			dominantX := abs(d.X) >= abs(d.Y)
			for i := 1; i < len(pts); i++ {
				step := pts[i].Sub(pts[i-1])
				if abs(step.X) > 1 || abs(step.Y) > 1 {
					t.Fatalf("Step %d jumps %v", i, step)
				}
				if dominantX && abs(step.X) != 1 || !dominantX && abs(step.Y) != 1 {
					t.Fatalf("Step %d does not advance dominant axis: %v", i, step)
				}
			}
		})
	}
}

func TestSegmentAssemblySkipsStart(t *testing.T) {
	tr := NewLineTraverser(Point{0, 0}, Point{3, 0})
	tr.Next()

	var got []Point
	for tr.Next() {
		got = append(got, tr.Pos())
	}
	want := []Point{{1, 0}, {2, 0}, {3, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRectangleAreaAndCenter(t *testing.T) {
	r := RectangleFromCornerAndSize(Point{10, 10}, Vector{10, 20})

	if a := r.Area(); a != 200 {
		t.Errorf("Expected area 200, got %v", a)
	}
	c := r.Center()
	if math.Abs(c.X-15) > epsilon || math.Abs(c.Y-20) > epsilon {
		t.Errorf("Expected center (15,20), got %v", c)
	}
	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("Expected 10x20, got %dx%d", r.Width(), r.Height())
	}
	if r.Size() != (Vector{10, 20}) {
		t.Errorf("Expected size (10,20), got %v", r.Size())
	}
}

func TestAreaSignEncodesWinding(t *testing.T) {
	cw := NewTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	ccw := NewTriangle(Point{0, 0}, Point{0, 4}, Point{4, 0})

	if cw.Area() != 8 {
		t.Errorf("Expected +8, got %v", cw.Area())
	}
	if ccw.Area() != -8 {
		t.Errorf("Expected -8, got %v", ccw.Area())
	}
}

func TestCenterPanicsOnDegenerate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for collinear triangle")
		}
	}()
	NewTriangle(Point{0, 0}, Point{1, 1}, Point{2, 2}).Center()
}

func TestPolygonRequiresThreeVertices(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for 2-vertex polygon")
		}
	}()
	NewPolygon(Point{0, 0}, Point{1, 1})
}

func TestFullRotationReturnsOriginal(t *testing.T) {
	shapes := map[string]*Polygon{
		"rectangle": RectangleFromCornerAndSize(Point{10, 10}, Vector{10, 20}).Polygon,
		"triangle":  NewTriangle(Point{50, 5}, Point{40, 10}, Point{60, 15}).Polygon,
		"pentagon":  NewPolygon(Point{30, 30}, Point{30, 40}, Point{40, 50}, Point{50, 40}, Point{50, 30}),
	}

	for name, p := range shapes {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 120; i++ {
				p.Transform().Rotate(3).Finalize()
			}
			if got, want := p.Vertices(), p.Original(); !slices.Equal(got, want) {
				t.Errorf("After 360 degrees expected %v, got %v", want, got)
			}
		})
	}
}

func TestQuarterTurn(t *testing.T) {
	r := RectangleFromCorners(Point{0, 0}, Point{4, 4})
	r.Transform().Rotate(90).Finalize()

	want := []Point{{4, 0}, {4, 4}, {0, 4}, {0, 0}}
	if got := r.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := r.Original(); got[0] != (Point{0, 0}) {
		t.Errorf("Original pose mutated: %v", got)
	}
}

func TestRotationAppliedBeforeTranslation(t *testing.T) {
	r := RectangleFromCorners(Point{0, 0}, Point{4, 4})
	r.Transform().Translate(VectorF{10, 0}).Rotate(90).Finalize()

	want := []Point{{14, 0}, {14, 4}, {10, 4}, {10, 0}}
	if got := r.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTranslationAccumulatesAcrossFinalize(t *testing.T) {
	tri := NewTriangle(Point{5, 5}, Point{10, 5}, Point{5, 10})
	for i := 0; i < 3; i++ {
		tri.Transform().Translate(VectorF{1, 2}).Finalize()
	}

	want := []Point{{8, 11}, {13, 11}, {8, 16}}
	if got := tri.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	tri.Reset()
	if got := tri.Vertices(); !slices.Equal(got, tri.Original()) {
		t.Errorf("Reset should restore original pose, got %v", got)
	}
}

func TestOutlineCoversRingOnce(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{6, 0}, Point{0, 3})

	var pts []Point
	for p := range tri.Outline() {
		pts = append(pts, p)
	}

	// edges: 6 + max(6,3) + 3
	if len(pts) != 15 {
		t.Fatalf("Expected 15 outline points, got %d: %v", len(pts), pts)
	}
	for _, v := range tri.Vertices() {
		if n := countOf(pts, v); n != 1 {
			t.Errorf("Vertex %v emitted %d times, want once", v, n)
		}
	}

	// restartable
	n := 0
	for range tri.Outline() {
		n++
	}
	if n != len(pts) {
		t.Errorf("Second iteration yielded %d points, want %d", n, len(pts))
	}
}

func TestContains(t *testing.T) {
	r := RectangleFromCorners(Point{0, 0}, Point{4, 4})
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{2, 2}, true},
		{Point{0, 2}, true},
		{Point{0, 0}, true},
		{Point{4, 4}, true},
		{Point{5, 2}, false},
		{Point{2, 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	tri := NewTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	if tri.Contains(Point{3, 3}) {
		t.Error("Point beyond hypotenuse reported inside")
	}
	if !tri.Contains(Point{2, 2}) {
		t.Error("Point on hypotenuse reported outside")
	}
}

func TestFilled(t *testing.T) {
	r := RectangleFromCorners(Point{1, 1}, Point{5, 5})
	n := 0
	for p := range r.Filled() {
		if !r.Bounds().Contains(p) {
			t.Fatalf("Filled point %v outside bounds", p)
		}
		n++
	}
	if n != 25 {
		t.Errorf("Expected 25 filled cells, got %d", n)
	}
}

func TestBoundingBoxClip(t *testing.T) {
	a := BoundingBox{Min: Point{0, 0}, Max: Point{10, 10}}
	b := BoundingBox{Min: Point{5, 8}, Max: Point{20, 20}}

	c, ok := a.Clip(b)
	if !ok || c != (BoundingBox{Min: Point{5, 8}, Max: Point{10, 10}}) {
		t.Errorf("Unexpected clip %v %v", c, ok)
	}
	if _, ok := a.Clip(BoundingBox{Min: Point{11, 0}, Max: Point{12, 1}}); ok {
		t.Error("Disjoint boxes reported overlapping")
	}
}

func TestBoundingBoxPointsAtMaxUint(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want int
	}{
		{"corner", BoundingBox{Min: Point{math.MaxUint - 1, math.MaxUint - 1}, Max: Point{math.MaxUint, math.MaxUint}}, 4},
		{"single point", BoundingBox{Min: Point{math.MaxUint, 3}, Max: Point{math.MaxUint, 3}}, 1},
		{"inverted", BoundingBox{Min: Point{2, 2}, Max: Point{1, 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 0
			for range tt.box.Points() {
				got++
				if got > tt.want {
					t.Fatalf("Expected %d points, iteration did not stop", tt.want)
				}
			}
			if got != tt.want {
				t.Errorf("Expected %d points, got %d", tt.want, got)
			}
		})
	}
}

func matrixNear(a, b Matrix3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func countOf(pts []Point, p Point) int {
	n := 0
	for _, q := range pts {
		if q == p {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

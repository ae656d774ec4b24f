package main

import (
	"math"
	"time"

	"github.com/lixenwraith/termcanvas/engine"
	"github.com/lixenwraith/termcanvas/terminal"
	"github.com/lixenwraith/termcanvas/vmath"
)

// shapesApp spins a pentagon outline, bounces a rotating rectangle between the side
// edges and orbits a triangle around a fixed pivot
type shapesApp struct {
	pentagon  *vmath.Polygon
	rectangle *vmath.Rectangle
	triangle  *vmath.Triangle

	// pentagon heading in degrees, reapplied to the original pose each frame
	pentagonTurn float64

	trianglePivot vmath.PointF
	// cells per second
	rectangleVelocity vmath.VectorF
}

const rectangleSpeed = 20

func newShapesApp() *shapesApp {
	return &shapesApp{
		pentagon: vmath.NewPolygon(
			vmath.NewPoint(30, 30),
			vmath.NewPoint(30, 40),
			vmath.NewPoint(40, 50),
			vmath.NewPoint(50, 40),
			vmath.NewPoint(50, 30),
		),
		rectangle: vmath.RectangleFromCornerAndSize(vmath.NewPoint(10, 10), vmath.NewVector(10, 20)),
		triangle: vmath.NewTriangle(
			vmath.NewPoint(50, 5),
			vmath.NewPoint(40, 10),
			vmath.NewPoint(60, 15),
		),
		trianglePivot:     vmath.NewPointF(70, 20),
		rectangleVelocity: vmath.VectorRight.ToF().Scale(rectangleSpeed),
	}
}

var (
	pentagonCell  = terminal.NewCell('@').WithFg(terminal.ColorRed)
	rectangleCell = terminal.CellEmpty.WithBg(terminal.ColorWhite)
	triangleCell  = terminal.CellEmpty.WithBg(terminal.ColorGreen)
)

func (a *shapesApp) Frame(c *terminal.Canvas, dt time.Duration, _ *engine.Latch) {
	s := dt.Seconds()
	c.Erase()

	// Full turn every 2s, 10s and 5s respectively
	a.pentagonTurn = math.Mod(a.pentagonTurn-360*s/2, 360)
	a.pentagon.Reset()
	a.pentagon.Transform().Rotate(a.pentagonTurn).Finalize()
	a.rectangle.Transform().Rotate(360 * s / 10).Translate(a.rectangleVelocity.Scale(s)).Finalize()
	a.triangle.Transform().RotateAround(a.trianglePivot, 360*s/5).Finalize()

	b := a.rectangle.Bounds()
	if (a.rectangleVelocity.X > 0 && b.Max.X >= uint(c.Size().X-1)) || (a.rectangleVelocity.X < 0 && b.Min.X == 0) {
		a.rectangleVelocity = a.rectangleVelocity.Opposite()
	}

	c.DrawShapeOutline(a.pentagon, pentagonCell)
	c.DrawShape(a.rectangle, rectangleCell)
	c.DrawShape(a.triangle, triangleCell)
	c.DrawText(vmath.PointZero, "q to quit", terminal.ColorWhite, terminal.ColorDefault)
}

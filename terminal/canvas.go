package terminal

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/termcanvas/vmath"
)

// Canvas is the per-frame mutation surface over a Grid
type Canvas struct {
	grid *Grid
}

// Size returns the drawable area in blocks
func (c *Canvas) Size() vmath.Vector {
	return c.grid.Size()
}

// Area returns the number of drawable blocks
func (c *Canvas) Area() int {
	return c.grid.Size().Product()
}

// Contains reports whether p is drawable
func (c *Canvas) Contains(p vmath.Point) bool {
	return c.grid.Contains(p)
}

// Draw writes a single cell. Panics outside the working area.
func (c *Canvas) Draw(p vmath.Point, cell Cell) {
	c.grid.Draw(p, cell)
}

// Fill writes cell everywhere
func (c *Canvas) Fill(cell Cell) {
	c.grid.Fill(cell)
}

// Erase fills with blank default-colored cells
func (c *Canvas) Erase() {
	c.grid.Fill(CellEmpty)
}

// DrawShape fills the shape interior, clipped to the working area
func (c *Canvas) DrawShape(s vmath.Shape, cell Cell) {
	box, ok := s.Bounds().Clip(c.grid.Bounds())
	if !ok {
		return
	}
	for p := range box.Points() {
		if s.Contains(p) {
			c.grid.Draw(p, cell)
		}
	}
}

// DrawShapeOutline rasterizes the shape edges, clipped to the working area
func (c *Canvas) DrawShapeOutline(s vmath.Shape, cell Cell) {
	for p := range s.Outline() {
		if c.grid.Contains(p) {
			c.grid.Draw(p, cell)
		}
	}
}

// DrawLine rasterizes a segment between two points, clipped to the working area
func (c *Canvas) DrawLine(p0, p1 vmath.Point, cell Cell) {
	t := vmath.NewLineTraverser(p0, p1)
	for t.Next() {
		if p := t.Pos(); c.grid.Contains(p) {
			c.grid.Draw(p, cell)
		}
	}
}

// DrawText writes text left to right starting at p, one grapheme per block.
// Zero-width clusters are skipped. A cluster wider than a block takes as many blocks as
// its columns need; the extra blocks become continuations. Stops at the first cluster
// that does not fit before the right edge. Returns the number of blocks written.
func (c *Canvas) DrawText(p vmath.Point, text string, fg, bg Color) int {
	bw := int(c.grid.BlockWidth())
	written := 0
	pos := p

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if w == 0 {
			continue
		}
		span := uint(max(1, (w+bw-1)/bw))
		if !c.grid.Contains(pos) || !c.grid.Contains(vmath.Point{X: pos.X + span - 1, Y: pos.Y}) {
			break
		}
		c.grid.Draw(pos, Cell{Rune: gr.Runes()[0], Fg: fg, Bg: bg})
		for k := uint(1); k < span; k++ {
			c.grid.Draw(vmath.Point{X: pos.X + k, Y: pos.Y}, Cell{Rune: RuneContinuation, Fg: fg, Bg: bg})
		}
		written += int(span)
		pos.X += span
	}
	return written
}

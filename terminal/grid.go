// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termcanvas/vmath"
)

// Grid is the double-buffered terminal state: a row-major array of blocks,
// the cache of what the last render put on screen, and the encoder that emits the diff.
type Grid struct {
	origin     vmath.Point
	width      int
	height     int
	blockWidth uint

	blocks []Block
	cache  []Cell

	// cacheValid is false until the first full render; before that nothing short-circuits
	cacheValid bool

	enc Encoder
}

// NewGrid creates a grid of size blocks placed at origin, each block spanning blockWidth columns.
// Every block starts dirty so the first frame renders fully.
func NewGrid(origin vmath.Point, size vmath.Vector, blockWidth uint, enc Encoder) *Grid {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("terminal: grid size must be positive, got %v", size))
	}
	if blockWidth == 0 {
		panic("terminal: block width must be at least 1")
	}

	n := size.X * size.Y
	g := &Grid{
		origin:     origin,
		width:      size.X,
		height:     size.Y,
		blockWidth: blockWidth,
		blocks:     make([]Block, n),
		cache:      make([]Cell, n),
		enc:        enc,
	}
	for i := range g.blocks {
		g.blocks[i] = Block{Cell: CellEmpty, Width: blockWidth, dirty: true}
	}
	return g
}

// Size returns the working area in blocks
func (g *Grid) Size() vmath.Vector {
	return vmath.Vector{X: g.width, Y: g.height}
}

// Origin returns the screen position of the top-left block
func (g *Grid) Origin() vmath.Point {
	return g.origin
}

// BlockWidth returns the replication factor
func (g *Grid) BlockWidth() uint {
	return g.blockWidth
}

// Contains reports whether p addresses a block in the working area
func (g *Grid) Contains(p vmath.Point) bool {
	return p.X < uint(g.width) && p.Y < uint(g.height)
}

// Bounds returns the working area as an inclusive box
func (g *Grid) Bounds() vmath.BoundingBox {
	return vmath.BoundingBox{Max: vmath.Point{X: uint(g.width - 1), Y: uint(g.height - 1)}}
}

func (g *Grid) index(p vmath.Point) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("terminal: position %v outside %dx%d working area", p, g.width, g.height))
	}
	return int(p.Y)*g.width + int(p.X)
}

// At returns the pending cell at p
func (g *Grid) At(p vmath.Point) Cell {
	return g.blocks[g.index(p)].Cell
}

// Draw overwrites the cell at p. Panics outside the working area.
func (g *Grid) Draw(p vmath.Point, c Cell) {
	g.set(g.index(p), c)
}

// Fill overwrites every cell
func (g *Grid) Fill(c Cell) {
	for i := range g.blocks {
		g.set(i, c)
	}
}

// set stores the cell and marks the block dirty unless it already matches what is on screen
func (g *Grid) set(i int, c Cell) {
	b := &g.blocks[i]
	b.Cell = c
	b.dirty = !g.cacheValid || c != g.cache[i]
}

// DirtyCount returns the number of blocks the next render will emit
func (g *Grid) DirtyCount() int {
	n := 0
	for i := range g.blocks {
		if g.blocks[i].dirty {
			n++
		}
	}
	return n
}

// Invalidate forgets the cache and marks every block dirty, forcing a full redraw
func (g *Grid) Invalidate() {
	g.cacheValid = false
	for i := range g.blocks {
		g.blocks[i].dirty = true
	}
}

// Render emits draw ops for dirty blocks only, updates the cache, then parks the cursor
// at the grid origin and flushes. A frame with no changes writes only the cursor park.
// Narrow runes repeat across the block width; a wide rune is written once per span it
// fits and the leftover columns are blanked. The first I/O error aborts the pass and is
// returned; blocks already emitted stay clean.
func (g *Grid) Render() error {
	bw := int(g.blockWidth)
	for i := range g.blocks {
		b := &g.blocks[i]
		if !b.dirty {
			continue
		}

		row := int(g.origin.Y) + i/g.width
		col := int(g.origin.X) + (i%g.width)*bw

		if b.Cell.Rune == RuneContinuation {
			if !g.coveredFromLeft(i) {
				for k := 0; k < bw; k++ {
					if err := g.emit(row, col+k, b.Cell, ' '); err != nil {
						return err
					}
				}
			}
		} else {
			w := cellWidth(b.Cell.Rune)
			k := 0
			for ; k == 0 || k+w <= bw; k += w {
				if err := g.emit(row, col+k, b.Cell, b.Cell.Rune); err != nil {
					return err
				}
			}
			for ; k < bw; k++ {
				if err := g.emit(row, col+k, b.Cell, ' '); err != nil {
					return err
				}
			}
			// A continuation left behind by a replaced wide glyph must be blanked this pass
			if next := i + 1; next%g.width != 0 && w <= bw && g.blocks[next].Cell.Rune == RuneContinuation {
				g.blocks[next].dirty = true
			}
		}

		g.cache[i] = b.Cell
		b.dirty = false
	}
	g.cacheValid = true

	if err := g.enc.MoveCursor(int(g.origin.Y), int(g.origin.X)); err != nil {
		return err
	}
	return g.enc.Flush()
}

func (g *Grid) emit(row, col int, c Cell, r rune) error {
	if err := g.enc.MoveCursor(row, col); err != nil {
		return err
	}
	if err := g.enc.SetBackground(c.Bg); err != nil {
		return err
	}
	if err := g.enc.SetForeground(c.Fg); err != nil {
		return err
	}
	return g.enc.WriteRune(r)
}

// coveredFromLeft reports whether the block left of i holds a glyph wider than one block
func (g *Grid) coveredFromLeft(i int) bool {
	if i%g.width == 0 {
		return false
	}
	left := g.blocks[i-1].Cell.Rune
	return left != RuneContinuation && cellWidth(left) > int(g.blockWidth)
}

// cellWidth returns the terminal column width of r, at least 1
func cellWidth(r rune) int {
	return max(1, runewidth.RuneWidth(r))
}

// Restore shows the cursor and clears the screen. Safe to call repeatedly.
// The cache is dropped since the screen no longer matches it.
func (g *Grid) Restore() error {
	g.Invalidate()
	return restoreScreen(g.enc)
}

// Canvas returns the mutation surface for per-frame logic
func (g *Grid) Canvas() *Canvas {
	return &Canvas{grid: g}
}

func restoreScreen(enc Encoder) error {
	if err := enc.ShowCursor(); err != nil {
		return err
	}
	if err := enc.Clear(); err != nil {
		return err
	}
	if err := enc.MoveCursor(0, 0); err != nil {
		return err
	}
	return enc.Flush()
}

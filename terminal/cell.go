package terminal

// Cell represents a single logical terminal cell
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// CellEmpty is a blank cell inheriting both terminal colors
var CellEmpty = Cell{Rune: ' '}

// RuneContinuation marks a block covered by the wide glyph in the block to its left.
// Render writes nothing for it while that glyph is in place, and a blank otherwise.
const RuneContinuation rune = 0

// NewCell creates a cell with default colors
func NewCell(r rune) Cell {
	return Cell{Rune: r}
}

// WithFg returns a copy with the foreground replaced
func (c Cell) WithFg(fg Color) Cell {
	c.Fg = fg
	return c
}

// WithBg returns a copy with the background replaced
func (c Cell) WithBg(bg Color) Cell {
	c.Bg = bg
	return c
}

// Block is one logical cell replicated across Width screen columns
type Block struct {
	Cell  Cell
	Width uint
	dirty bool
}

// Dirty reports whether the block changed since the last render pass
func (b *Block) Dirty() bool {
	return b.dirty
}

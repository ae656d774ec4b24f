package terminal

import "github.com/gdamore/tcell/v2"

// Encoder is the draw-op surface a Grid renders through
type Encoder interface {
	Clear() error
	MoveCursor(row, col int) error
	SetBackground(c Color) error
	SetForeground(c Color) error
	WriteRune(r rune) error
	HideCursor() error
	ShowCursor() error
	Flush() error
}

// TcellEncoder replays draw ops onto a tcell screen.
// Cursor and style are tracked locally; WriteRune advances one column like a terminal would.
type TcellEncoder struct {
	screen   tcell.Screen
	row, col int
	style    tcell.Style
}

// NewTcellEncoder creates an encoder drawing into screen
func NewTcellEncoder(screen tcell.Screen) *TcellEncoder {
	return &TcellEncoder{screen: screen, style: tcell.StyleDefault}
}

func (e *TcellEncoder) Clear() error {
	e.screen.Clear()
	return nil
}

func (e *TcellEncoder) MoveCursor(row, col int) error {
	e.row, e.col = row, col
	return nil
}

func (e *TcellEncoder) SetBackground(c Color) error {
	e.style = e.style.Background(ColorToTcell(c))
	return nil
}

func (e *TcellEncoder) SetForeground(c Color) error {
	e.style = e.style.Foreground(ColorToTcell(c))
	return nil
}

func (e *TcellEncoder) WriteRune(r rune) error {
	e.screen.SetContent(e.col, e.row, r, nil, e.style)
	e.col++
	return nil
}

func (e *TcellEncoder) HideCursor() error {
	e.screen.HideCursor()
	return nil
}

func (e *TcellEncoder) ShowCursor() error {
	e.screen.ShowCursor(e.col, e.row)
	return nil
}

// Flush makes pending content visible
func (e *TcellEncoder) Flush() error {
	e.screen.Show()
	return nil
}

// ColorToTcell converts a Color; Default maps to tcell.ColorDefault
func ColorToTcell(c Color) tcell.Color {
	rgb, ok := c.RGB()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// ColorFromTcell converts a tcell color back; tcell.ColorDefault maps to Default
func ColorFromTcell(c tcell.Color) Color {
	if c == tcell.ColorDefault {
		return ColorDefault
	}
	r, g, b := c.RGB()
	return ColorRGB(uint8(r), uint8(g), uint8(b))
}

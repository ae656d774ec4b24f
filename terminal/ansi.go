// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;Bm
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// outputBufferSize matches a full 4K-ish terminal frame of truecolor cells
const outputBufferSize = 131072

// ANSIEncoder emits VT100/xterm control sequences into a buffered writer.
// Every operation reports the underlying write error, if any.
type ANSIEncoder struct {
	w   *bufio.Writer
	buf []byte
}

// NewANSIEncoder wraps w with a 128KB output buffer
func NewANSIEncoder(w io.Writer) *ANSIEncoder {
	return &ANSIEncoder{
		w:   bufio.NewWriterSize(w, outputBufferSize),
		buf: make([]byte, 0, 32),
	}
}

// Clear erases the whole screen
func (e *ANSIEncoder) Clear() error {
	return e.write(csiClear)
}

// MoveCursor positions the cursor (0-indexed input, 1-based on the wire)
func (e *ANSIEncoder) MoveCursor(row, col int) error {
	b := append(e.buf[:0], csi...)
	b = appendInt(b, row+1)
	b = append(b, ';')
	b = appendInt(b, col+1)
	b = append(b, 'H')
	return e.write(b)
}

// SetBackground emits a truecolor background, or resets to the terminal default
func (e *ANSIEncoder) SetBackground(c Color) error {
	rgb, ok := c.RGB()
	if !ok {
		return e.write(csiDefaultBg)
	}
	return e.write(appendRGB(append(e.buf[:0], csiBgRGB...), rgb))
}

// SetForeground emits a truecolor foreground, or resets to the terminal default
func (e *ANSIEncoder) SetForeground(c Color) error {
	rgb, ok := c.RGB()
	if !ok {
		return e.write(csiDefaultFg)
	}
	return e.write(appendRGB(append(e.buf[:0], csiFgRGB...), rgb))
}

// WriteRune writes the UTF-8 bytes of r
func (e *ANSIEncoder) WriteRune(r rune) error {
	if r < utf8.RuneSelf {
		return errors.Wrap(e.w.WriteByte(byte(r)), "terminal: write")
	}
	_, err := e.w.WriteRune(r)
	return errors.Wrap(err, "terminal: write")
}

// HideCursor makes the cursor invisible
func (e *ANSIEncoder) HideCursor() error {
	return e.write(csiCursorHide)
}

// ShowCursor makes the cursor visible
func (e *ANSIEncoder) ShowCursor() error {
	return e.write(csiCursorShow)
}

// ResetStyle clears all SGR attributes
func (e *ANSIEncoder) ResetStyle() error {
	return e.write(csiSGR0)
}

// Flush pushes buffered output to the underlying writer
func (e *ANSIEncoder) Flush() error {
	return errors.Wrap(e.w.Flush(), "terminal: flush")
}

func (e *ANSIEncoder) write(p []byte) error {
	_, err := e.w.Write(p)
	return errors.Wrap(err, "terminal: write")
}

func appendRGB(b []byte, c RGB) []byte {
	b = appendInt(b, int(c.R))
	b = append(b, ';')
	b = appendInt(b, int(c.G))
	b = append(b, ';')
	b = appendInt(b, int(c.B))
	return append(b, 'm')
}

// appendInt appends the decimal form of n without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(b, byte(n)+'0')
	}
	if n < 100 {
		return append(b, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(b, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(b, tmp[i:]...)
}

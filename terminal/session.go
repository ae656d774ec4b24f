package terminal

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termcanvas/vmath"
)

// Session owns the terminal between Init and Restore: raw mode via the backend,
// cursor visibility, and the shutdown of the input listener
type Session struct {
	backend Backend

	mu          sync.Mutex
	initialized bool
	finalized   bool

	stopCh  chan struct{}
	resized atomic.Bool
}

// NewSession creates a session over backend; nothing touches the terminal until Init
func NewSession(backend Backend) *Session {
	return &Session{
		backend: backend,
		stopCh:  make(chan struct{}),
	}
}

// Init enters raw mode, clears the screen and optionally hides the cursor
func (s *Session) Init(hideCursor bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return err
	}
	s.backend.SetResizeHandler(func(int, int) {
		s.resized.Store(true)
	})

	enc := s.backend.Encoder()
	if err := enc.Clear(); err != nil {
		s.backend.Fini()
		return err
	}
	if hideCursor {
		if err := enc.HideCursor(); err != nil {
			s.backend.Fini()
			return err
		}
	}
	if err := enc.Flush(); err != nil {
		s.backend.Fini()
		return err
	}

	s.initialized = true
	return nil
}

// Encoder returns the encoder of the underlying backend
func (s *Session) Encoder() Encoder {
	return s.backend.Encoder()
}

// Size returns the terminal size in columns and rows
func (s *Session) Size() (int, int) {
	return s.backend.Size()
}

// Resized reports, and clears, a pending resize notification
func (s *Session) Resized() bool {
	return s.resized.Swap(false)
}

// Listen blocks on backend input until Restore is called
func (s *Session) Listen(onQuit func()) error {
	return s.backend.Listen(s.stopCh, onQuit)
}

// NewGrid creates a grid at the screen origin. Zero width or height takes the
// terminal size; columns are divided by cellWidth to get the block count.
func (s *Session) NewGrid(cellWidth uint, width, height int) (*Grid, error) {
	if cellWidth == 0 {
		return nil, errors.New("terminal: cell width must be at least 1")
	}

	cols, rows := s.backend.Size()
	if width <= 0 {
		width = cols / int(cellWidth)
	}
	if height <= 0 {
		height = rows
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("terminal: %dx%d terminal too small for cell width %d", cols, rows, cellWidth)
	}

	return NewGrid(vmath.PointZero, vmath.NewVector(width, height), cellWidth, s.backend.Encoder()), nil
}

// Restore shows the cursor, clears the screen and leaves raw mode.
// Safe to call more than once; only the first call has effect.
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	s.finalized = true

	close(s.stopCh)
	err := restoreScreen(s.backend.Encoder())
	s.backend.Fini()
	return err
}

// EmergencyReset writes the minimum sequences to make a terminal usable after a crash
// and attempts to leave raw mode. Does not rely on any session state.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiClear)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

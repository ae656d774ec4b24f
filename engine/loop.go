package engine

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Loop drives frame, render and pace on the calling goroutine until the latch trips
type Loop struct {
	grid    *terminal.Grid
	pacer   *Pacer
	latch   *Latch
	resized func() bool

	frames uint64
}

// NewLoop wires a loop over an existing grid and pacer
func NewLoop(grid *terminal.Grid, pacer *Pacer, latch *Latch) *Loop {
	return &Loop{grid: grid, pacer: pacer, latch: latch}
}

// WithRepaint registers a poll that, when true at the top of a frame, forces a full redraw.
// The grid keeps its size; only the screen content is repainted.
func (l *Loop) WithRepaint(poll func() bool) *Loop {
	l.resized = poll
	return l
}

// Frames returns the number of completed frames
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run executes frames until the latch trips. The latch is checked once per frame, at the top.
// A render failure ends the loop immediately and is returned without retry.
func (l *Loop) Run(app Application) error {
	canvas := l.grid.Canvas()
	after, _ := app.(AfterFramer)

	for l.latch.Running() {
		dt := l.pacer.StartFrame()

		if l.resized != nil && l.resized() {
			l.grid.Invalidate()
		}

		app.Frame(canvas, dt, l.latch)

		if err := l.grid.Render(); err != nil {
			return errors.Wrapf(err, "engine: render frame %d", l.frames)
		}
		l.frames++

		if after != nil {
			after.AfterFrame(canvas, dt)
		}
		l.pacer.EndFrame()
	}
	return nil
}

// Run owns a whole application lifetime: setup hook, terminal session, signal and
// crash handling, the frame loop, and terminal restoration on every exit path
func Run(cfg *config.Config, backend terminal.Backend, app Application) (err error) {
	if s, ok := app.(SetupHook); ok {
		if err := s.Setup(cfg); err != nil {
			return errors.Wrap(err, "engine: setup")
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	session := terminal.NewSession(backend)
	if err := session.Init(cfg.HideCursor); err != nil {
		return errors.Wrap(err, "engine: terminal init")
	}
	defer func() {
		if r := recover(); r != nil {
			HandleCrash(session, r)
		}
		if rerr := session.Restore(); rerr != nil && err == nil {
			err = errors.Wrap(rerr, "engine: restore")
		}
	}()

	latch := NewLatch()
	stopSignals := InstallSignalHandler(latch)
	defer stopSignals()

	Go(latch, func() {
		if err := session.Listen(latch.Trip); err != nil {
			log.Printf("engine: input listener stopped: %v", err)
		}
	})

	grid, err := session.NewGrid(cfg.CellWidth, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	pacer, err := NewPacer(cfg.FPS, nil, nil)
	if err != nil {
		return err
	}

	if b, ok := app.(BeforeStarter); ok {
		b.BeforeStart(grid.Canvas())
	}

	size := grid.Size()
	log.Printf("engine: start %dx%d blocks, cell width %d, %.1f fps, budget %v",
		size.X, size.Y, cfg.CellWidth, cfg.FPS, pacer.Budget())

	loop := NewLoop(grid, pacer, latch).WithRepaint(session.Resized)
	err = loop.Run(app)

	log.Printf("engine: stop after %d frames (err=%v)", loop.Frames(), err)
	return err
}

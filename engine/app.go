package engine

import (
	"time"

	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Application is the per-frame logic driven by the loop.
// Frame mutates the canvas; it may trip the latch to end the loop after this frame.
type Application interface {
	Frame(c *terminal.Canvas, dt time.Duration, l *Latch)
}

// SetupHook runs before the terminal is touched and may adjust the configuration
type SetupHook interface {
	Setup(cfg *config.Config) error
}

// BeforeStarter runs once after the grid exists, before the first frame
type BeforeStarter interface {
	BeforeStart(c *terminal.Canvas)
}

// AfterFramer runs after each frame has been rendered, before the pacer sleeps
type AfterFramer interface {
	AfterFrame(c *terminal.Canvas, dt time.Duration)
}

// AppFunc adapts a plain function to Application
type AppFunc func(c *terminal.Canvas, dt time.Duration, l *Latch)

// Frame calls f
func (f AppFunc) Frame(c *terminal.Canvas, dt time.Duration, l *Latch) {
	f(c, dt, l)
}

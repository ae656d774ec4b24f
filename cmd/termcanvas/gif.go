package main

import (
	"image"
	"time"

	"github.com/lixenwraith/termcanvas/engine"
	"github.com/lixenwraith/termcanvas/terminal"
)

// gifApp plays decoded frames in order, honoring each frame's delay
type gifApp struct {
	source []*image.RGBA
	delays []time.Duration
	frames []*image.RGBA
	toCell cellFunc

	index   int
	elapsed time.Duration
}

func newGIFApp(path string, grayscale bool) (*gifApp, error) {
	frames, delays, err := loadGIF(path)
	if err != nil {
		return nil, err
	}

	a := &gifApp{source: frames, toCell: blockCell}
	if grayscale {
		a.toCell = asciiCell
	}
	for i := range frames {
		d := 100 * time.Millisecond
		if i < len(delays) && delays[i] > 0 {
			d = time.Duration(delays[i]) * 10 * time.Millisecond
		}
		a.delays = append(a.delays, d)
	}
	return a, nil
}

func (a *gifApp) BeforeStart(c *terminal.Canvas) {
	size := c.Size()
	a.frames = make([]*image.RGBA, len(a.source))
	for i, f := range a.source {
		a.frames[i] = fitTo(f, size.X, size.Y)
	}
}

func (a *gifApp) Frame(c *terminal.Canvas, dt time.Duration, _ *engine.Latch) {
	a.elapsed += dt
	for a.elapsed >= a.delays[a.index] {
		a.elapsed -= a.delays[a.index]
		a.index = (a.index + 1) % len(a.frames)
	}
	drawImage(c, a.frames[a.index], a.toCell)
}

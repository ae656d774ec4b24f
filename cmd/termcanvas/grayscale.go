package main

import (
	"image"
	"time"

	"github.com/lixenwraith/termcanvas/engine"
	"github.com/lixenwraith/termcanvas/terminal"
)

// grayscaleApp shows a still image as density glyphs tinted with the source color.
// It redraws every frame; unchanged cells cost nothing at render time.
type grayscaleApp struct {
	source image.Image
	scaled *image.RGBA
}

func newGrayscaleApp(path string) (*grayscaleApp, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return &grayscaleApp{source: img}, nil
}

func (a *grayscaleApp) BeforeStart(c *terminal.Canvas) {
	size := c.Size()
	a.scaled = fitTo(a.source, size.X, size.Y)
}

func (a *grayscaleApp) Frame(c *terminal.Canvas, _ time.Duration, _ *engine.Latch) {
	drawImage(c, a.scaled, tintedASCIICell)
}

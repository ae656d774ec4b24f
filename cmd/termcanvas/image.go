package main

import (
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/termcanvas/terminal"
	"github.com/lixenwraith/termcanvas/vmath"
)

// loadImage decodes any registered still format
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// loadGIF decodes every frame and composites it over the previous ones,
// so each returned image is a complete picture
func loadGIF(path string) ([]*image.RGBA, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decode %s", path)
	}
	if len(g.Image) == 0 {
		return nil, nil, errors.Errorf("%s has no frames", path)
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)
	frames := make([]*image.RGBA, 0, len(g.Image))

	for i, frame := range g.Image {
		var prev *image.RGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			prev = image.NewRGBA(bounds)
			draw.Draw(prev, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snapshot := image.NewRGBA(bounds)
		draw.Draw(snapshot, bounds, canvas, bounds.Min, draw.Src)
		frames = append(frames, snapshot)

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				canvas = prev
			}
		}
	}
	return frames, g.Delay, nil
}

// fitTo scales src to exactly w by h pixels, one pixel per block
func fitTo(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// pixelRGB reads the pixel at x, y of an RGBA image
func pixelRGB(img *image.RGBA, x, y int) terminal.RGB {
	i := img.PixOffset(x, y)
	return terminal.RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}

// cellFunc maps a pixel color to the cell that represents it
type cellFunc func(terminal.RGB) terminal.Cell

func blockCell(c terminal.RGB) terminal.Cell {
	return terminal.CellEmpty.WithBg(terminal.ColorFromRGB(c))
}

func asciiCell(c terminal.RGB) terminal.Cell {
	return terminal.NewCell(terminal.GrayscaleFromRGB(c).Char())
}

func tintedASCIICell(c terminal.RGB) terminal.Cell {
	return asciiCell(c).WithFg(terminal.ColorFromRGB(c))
}

// drawImage paints img onto the canvas, one pixel per block, clipped to both
func drawImage(c *terminal.Canvas, img *image.RGBA, toCell cellFunc) {
	size := c.Size()
	b := img.Bounds()
	w, h := min(size.X, b.Dx()), min(size.Y, b.Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.Draw(vmath.PointFromSigned(x, y), toCell(pixelRGB(img, b.Min.X+x, b.Min.Y+y)))
		}
	}
}

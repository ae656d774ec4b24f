package terminal

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBRed   = RGB{255, 0, 0}
	RGBGreen = RGB{0, 255, 0}
	RGBBlue  = RGB{0, 0, 255}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Mix linearly interpolates each channel toward other.
// Conversion back to bytes truncates: mixing black and white at 0.5 yields 127.
func (c RGB) Mix(other RGB, ratio float64) RGB {
	ratio = clampUnit(ratio)
	inv := 1 - ratio
	return RGB{
		R: uint8(float64(c.R)*inv + float64(other.R)*ratio),
		G: uint8(float64(c.G)*inv + float64(other.G)*ratio),
		B: uint8(float64(c.B)*inv + float64(other.B)*ratio),
	}
}

// Lighten raises HSL lightness by ratio.
// The HSL round trip truncates each channel, so a ratio of 0 may lose a unit per channel
// and chaining calls drifts darker. Apply ratios to a base color rather than iterating.
func (c RGB) Lighten(ratio float64) RGB {
	return c.ToHSL().Lighten(ratio).ToRGB()
}

// Darken lowers HSL lightness by ratio; truncates like Lighten
func (c RGB) Darken(ratio float64) RGB {
	return c.ToHSL().Darken(ratio).ToRGB()
}

// Complementary rotates hue by 180 degrees
func (c RGB) Complementary() RGB {
	return c.ToHSL().Complementary().ToRGB()
}

// ToHSL converts to hue/saturation/lightness
func (c RGB) ToHSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s, L: l}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// HSL is hue in degrees [0,360), saturation and lightness in [0,1]
type HSL struct {
	H, S, L float64
}

// Predefined HSL colors
var (
	HSLBlack = HSL{0, 0, 0}
	HSLWhite = HSL{0, 0, 1}
	HSLRed   = HSL{0, 1, 0.5}
	HSLGreen = HSL{120, 1, 0.5}
	HSLBlue  = HSL{240, 1, 0.5}
)

// ToRGB converts to 24-bit color, truncating each channel
func (h HSL) ToRGB() RGB {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsl(hue, clampUnit(h.S), clampUnit(h.L))
	return RGB{R: unitToByte(c.R), G: unitToByte(c.G), B: unitToByte(c.B)}
}

// Lighten adds ratio to lightness, clamped to [0,1]
func (h HSL) Lighten(ratio float64) HSL {
	return HSL{H: h.H, S: h.S, L: clampUnit(h.L + ratio)}
}

// Darken subtracts ratio from lightness, clamped to [0,1]
func (h HSL) Darken(ratio float64) HSL {
	return HSL{H: h.H, S: h.S, L: clampUnit(h.L - ratio)}
}

// Complementary returns the color on the opposite side of the hue wheel
func (h HSL) Complementary() HSL {
	return HSL{H: math.Mod(h.H+180, 360), S: h.S, L: h.L}
}

func clampUnit(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

func unitToByte(v float64) uint8 {
	return uint8(clampUnit(v) * 255)
}

// Color is either an explicit RGB value or the terminal's ambient default.
// Default is absorbing: every operation on a Default operand yields Default.
type Color struct {
	rgb RGB
	set bool
}

// ColorDefault inherits the terminal's ambient color
var ColorDefault = Color{}

// Common explicit colors
var (
	ColorBlack = ColorFromRGB(RGBBlack)
	ColorWhite = ColorFromRGB(RGBWhite)
	ColorRed   = ColorFromRGB(RGBRed)
	ColorGreen = ColorFromRGB(RGBGreen)
	ColorBlue  = ColorFromRGB(RGBBlue)
)

// ColorRGB creates an explicit color from channels
func ColorRGB(r, g, b uint8) Color {
	return Color{rgb: RGB{r, g, b}, set: true}
}

// ColorFromRGB wraps an RGB value
func ColorFromRGB(c RGB) Color {
	return Color{rgb: c, set: true}
}

// IsDefault reports whether the color inherits the ambient terminal color
func (c Color) IsDefault() bool {
	return !c.set
}

// RGB returns the explicit value; ok is false for Default
func (c Color) RGB() (RGB, bool) {
	return c.rgb, c.set
}

// Mix interpolates toward other; Default on either side yields Default
func (c Color) Mix(other Color, ratio float64) Color {
	if !c.set || !other.set {
		return ColorDefault
	}
	return ColorFromRGB(c.rgb.Mix(other.rgb, ratio))
}

// Lighten raises lightness; Default stays Default
func (c Color) Lighten(ratio float64) Color {
	if !c.set {
		return ColorDefault
	}
	return ColorFromRGB(c.rgb.Lighten(ratio))
}

// Darken lowers lightness; Default stays Default
func (c Color) Darken(ratio float64) Color {
	if !c.set {
		return ColorDefault
	}
	return ColorFromRGB(c.rgb.Darken(ratio))
}

// Complementary rotates hue by 180 degrees; Default stays Default
func (c Color) Complementary() Color {
	if !c.set {
		return ColorDefault
	}
	return ColorFromRGB(c.rgb.Complementary())
}

func (c Color) String() string {
	if !c.set {
		return "default"
	}
	return c.rgb.String()
}

// grayRamp maps luminance to glyph density, darkest first
var grayRamp = [...]rune{' ', '.', '-', '+', '*', '#', '@'}

// Grayscale is a perceptual luminance value
type Grayscale uint8

// GrayscaleFromRGB computes luminance with Rec. 601 weights
func GrayscaleFromRGB(c RGB) Grayscale {
	return Grayscale(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
}

// Char returns the ASCII ramp glyph for this luminance
func (g Grayscale) Char() rune {
	idx := int(float64(g) / 255 * float64(len(grayRamp)))
	return grayRamp[min(idx, len(grayRamp)-1)]
}

// RGB returns the gray as an explicit color
func (g Grayscale) RGB() RGB {
	return RGB{uint8(g), uint8(g), uint8(g)}
}

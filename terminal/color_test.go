package terminal

import (
	"math"
	"testing"
)

func TestRGBMixTruncates(t *testing.T) {
	got := RGBBlack.Mix(RGBWhite, 0.5)
	want := RGB{127, 127, 127}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := RGBRed.Mix(RGBBlue, 0); got != RGBRed {
		t.Errorf("Expected ratio 0 to keep %v, got %v", RGBRed, got)
	}
	if got := RGBRed.Mix(RGBBlue, 1); got != RGBBlue {
		t.Errorf("Expected ratio 1 to yield %v, got %v", RGBBlue, got)
	}
	if got := RGBRed.Mix(RGBBlue, 7); got != RGBBlue {
		t.Errorf("Expected ratio above 1 to clamp to %v, got %v", RGBBlue, got)
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want RGB
	}{
		{"red", HSLRed, RGB{255, 0, 0}},
		{"green", HSLGreen, RGB{0, 255, 0}},
		{"blue", HSLBlue, RGB{0, 0, 255}},
		{"navy", HSL{240, 1, 0.25}, RGB{0, 0, 127}},
		{"black", HSLBlack, RGB{0, 0, 0}},
		{"white", HSLWhite, RGB{255, 255, 255}},
		{"hue wraps", HSL{360, 1, 0.5}, RGB{255, 0, 0}},
		{"negative hue", HSL{-240, 1, 0.5}, RGB{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hsl.ToRGB(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPrimaryRoundTrip(t *testing.T) {
	for _, c := range []RGB{RGBBlack, RGBWhite, RGBRed, RGBGreen, RGBBlue} {
		if got := c.ToHSL().ToRGB(); got != c {
			t.Errorf("Expected %v to survive HSL round trip, got %v", c, got)
		}
	}
}

func TestComplementaryRotatesHue(t *testing.T) {
	h := RGBRed.ToHSL().Complementary()
	if math.Abs(h.H-180) > 1e-9 {
		t.Errorf("Expected hue 180, got %v", h.H)
	}
	if h.S != 1 || h.L != 0.5 {
		t.Errorf("Expected saturation and lightness untouched, got %v", h)
	}

	back := HSLBlue.Complementary().Complementary()
	if math.Abs(back.H-240) > 1e-9 {
		t.Errorf("Expected double complement to return to 240, got %v", back.H)
	}
}

func TestLightenDarken(t *testing.T) {
	if got := RGBBlack.Lighten(1); got != RGBWhite {
		t.Errorf("Expected full lighten of black to be white, got %v", got)
	}
	if got := RGBWhite.Darken(1); got != RGBBlack {
		t.Errorf("Expected full darken of white to be black, got %v", got)
	}
	if got := HSLRed.Darken(0.8).L; got != 0 {
		t.Errorf("Expected lightness clamped at 0, got %v", got)
	}
}

func TestLightenZeroTruncates(t *testing.T) {
	base := RGB{200, 100, 50}
	if got, want := base.Lighten(0), (RGB{200, 99, 49}); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Chained calls never gain a unit back
	prev := base
	for i := 0; i < 10; i++ {
		next := prev.Lighten(0)
		if next.R > prev.R || next.G > prev.G || next.B > prev.B {
			t.Fatalf("Expected step %d not to brighten %v, got %v", i, prev, next)
		}
		prev = next
	}
	if prev == base {
		t.Errorf("Expected repeated Lighten(0) to drift from %v", base)
	}
}

func TestColorDefaultAbsorbs(t *testing.T) {
	tests := []struct {
		name string
		got  Color
	}{
		{"mix default left", ColorDefault.Mix(ColorRed, 0.5)},
		{"mix default right", ColorRed.Mix(ColorDefault, 0.5)},
		{"lighten", ColorDefault.Lighten(0.3)},
		{"darken", ColorDefault.Darken(0.3)},
		{"complementary", ColorDefault.Complementary()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.IsDefault() {
				t.Errorf("Expected Default, got %v", tt.got)
			}
		})
	}

	if got := ColorBlack.Mix(ColorWhite, 0.5); got != ColorRGB(127, 127, 127) {
		t.Errorf("Expected explicit mix to stay explicit, got %v", got)
	}
	if _, ok := ColorDefault.RGB(); ok {
		t.Error("Expected Default to carry no RGB value")
	}
}

func TestGrayscaleChar(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want rune
	}{
		{"black", RGBBlack, ' '},
		{"white", RGBWhite, '@'},
		{"mid gray", RGB{128, 128, 128}, '+'},
		{"pure blue is dark", RGBBlue, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GrayscaleFromRGB(tt.in).Char(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	if got := Grayscale(255).Char(); got != '@' {
		t.Errorf("Expected top of ramp to clamp to '@', got %q", got)
	}
}

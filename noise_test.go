package triangler

import (
	"image/color"
	"testing"
)

// Negative grain on a dark pixel clamps to black instead of wrapping around
// to a bright value. On a black input every channel stays within the grain
// amplitude.
func TestNoiseClampsDarkPixels(t *testing.T) {
	const amount = 50
	src := flatImage(16, 16, color.NRGBA{A: 255})

	out := Noise(amount, src, 16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := out.NRGBAAt(x, y)
			if c.R > amount || c.G > amount || c.B > amount {
				t.Fatalf("pixel (%d,%d) = %v; want channels within the grain amplitude", x, y, c)
			}
			if c.A != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d; want 255", x, y, c.A)
			}
		}
	}
}

// Grain preserves the image dimensions and leaves saturated pixels capped at
// the byte limit.
func TestNoiseBrightPixelsCapped(t *testing.T) {
	const amount = 80
	src := flatImage(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := Noise(amount, src, 8, 8)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v; want 8x8", out.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := out.NRGBAAt(x, y)
			if c.R < 255-amount {
				t.Fatalf("pixel (%d,%d) = %v; want channels near the byte limit", x, y, c)
			}
		}
	}
}

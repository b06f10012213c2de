package triangler

import (
	"image"
	"image/color"
)

// flatImage builds a width x height image filled with a single color.
func flatImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// twoTone builds an image whose left half is dark and right half is light,
// giving every detector one strong vertical edge to find.
func twoTone(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
			if x >= width/2 {
				c = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// diagStep builds an image split along the main diagonal: samples at or
// below it are white, the rest black.
func diagStep(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{A: 255}
			if x <= y {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

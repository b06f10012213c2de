package triangler

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
)

// ImgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func ImgToNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		if src.Bounds().Min == (image.Point{}) {
			return src
		}
	}
	return imaging.Clone(img)
}

// Grayscale converts the image to grayscale mode.
func Grayscale(src *image.NRGBA) *image.NRGBA {
	return imaging.Grayscale(src)
}

// luminance projects the image onto a single intensity channel using the
// Rec. 709 coefficients. Samples land in the unit range regardless of the
// source bit depth.
func luminance(img *image.NRGBA) *WeightMap {
	var (
		width  = img.Bounds().Dx()
		height = img.Bounds().Dy()
		dst    = NewWeightMap(width, height)
	)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			pos := img.PixOffset(0, y)
			for x := 0; x < width; x++ {
				r := float64(img.Pix[pos+0])
				g := float64(img.Pix[pos+1])
				b := float64(img.Pix[pos+2])
				dst.Values[y*width+x] = (0.2126*r + 0.7152*g + 0.0722*b) / 255
				pos += 4
			}
		}
	})

	return dst
}

// rgbChannels splits the image into three per-channel maps in the unit range.
func rgbChannels(img *image.NRGBA) [3]*WeightMap {
	var (
		width  = img.Bounds().Dx()
		height = img.Bounds().Dy()
	)
	chans := [3]*WeightMap{
		NewWeightMap(width, height),
		NewWeightMap(width, height),
		NewWeightMap(width, height),
	}

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			pos := img.PixOffset(0, y)
			for x := 0; x < width; x++ {
				idx := y*width + x
				chans[0].Values[idx] = float64(img.Pix[pos+0]) / 255
				chans[1].Values[idx] = float64(img.Pix[pos+1]) / 255
				chans[2].Values[idx] = float64(img.Pix[pos+2]) / 255
				pos += 4
			}
		}
	})

	return chans
}

// grayFromChannels reduces unit-range RGB channel maps to Rec. 709 luminance.
func grayFromChannels(chans [3]*WeightMap) *WeightMap {
	dst := NewWeightMap(chans[0].Width, chans[0].Height)
	for i := range dst.Values {
		dst.Values[i] = 0.2126*chans[0].Values[i] + 0.7152*chans[1].Values[i] + 0.0722*chans[2].Values[i]
	}
	return dst
}

// labFromChannels converts unit-range RGB channel maps to the CIE Lab space,
// scaled so L spans 0-100 and a, b roughly -128 to 127. Out-of-gamut samples
// left behind by prior filtering are clamped back into the unit cube.
func labFromChannels(chans [3]*WeightMap) [3]*WeightMap {
	var (
		width  = chans[0].Width
		height = chans[0].Height
	)
	lab := [3]*WeightMap{
		NewWeightMap(width, height),
		NewWeightMap(width, height),
		NewWeightMap(width, height),
	}

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				c := colorful.Color{
					R: clampUnit(chans[0].Values[idx]),
					G: clampUnit(chans[1].Values[idx]),
					B: clampUnit(chans[2].Values[idx]),
				}
				l, a, b := c.Lab()
				lab[0].Values[idx] = l * 100
				lab[1].Values[idx] = a * 100
				lab[2].Values[idx] = b * 100
			}
		}
	})

	return lab
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toUbyte quantizes a unit-range map to the 0-255 integer grid.
func toUbyte(w *WeightMap) *WeightMap {
	dst := NewWeightMap(w.Width, w.Height)
	for i, v := range w.Values {
		u := math.Round(clampUnit(v) * 255)
		dst.Values[i] = u
	}
	return dst
}

// Min returns the smallest value between two numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

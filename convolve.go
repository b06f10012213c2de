package triangler

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// WeightMap is a dense per-pixel saliency field over an image, stored as
// row-major float64 samples. Detectors return a fresh map per call and never
// retain it; samples are non-negative and peak at the detector's documented
// ceiling.
type WeightMap struct {
	Width  int
	Height int
	Values []float64
}

// NewWeightMap allocates a zeroed width x height map.
func NewWeightMap(width, height int) *WeightMap {
	return &WeightMap{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At returns the sample at (x, y).
func (w *WeightMap) At(x, y int) float64 {
	return w.Values[y*w.Width+x]
}

// Set stores v at (x, y).
func (w *WeightMap) Set(x, y int, v float64) {
	w.Values[y*w.Width+x] = v
}

// Max returns the largest sample value.
func (w *WeightMap) Max() float64 {
	max := math.Inf(-1)
	for _, v := range w.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Mean returns the arithmetic mean of all samples.
func (w *WeightMap) Mean() float64 {
	var sum float64
	for _, v := range w.Values {
		sum += v
	}
	return sum / float64(len(w.Values))
}

// scale multiplies every sample by f in place.
func (w *WeightMap) scale(f float64) {
	for i := range w.Values {
		w.Values[i] *= f
	}
}

// normalizeMax rescales the map in place so its maximum equals ceil.
// A map without a positive sample cannot be normalized and is reported
// as ErrEmptyWeightMap.
func (w *WeightMap) normalizeMax(ceil float64) error {
	max := w.Max()
	if max <= 0 {
		return ErrEmptyWeightMap
	}
	w.scale(ceil / max)
	return nil
}

// check verifies the backing slice length against the declared dimensions.
func (w *WeightMap) check() error {
	if len(w.Values) != w.Width*w.Height {
		return fmt.Errorf("%w: %d values for a %dx%d map", ErrShapeMismatch, len(w.Values), w.Width, w.Height)
	}
	return nil
}

// Kernel is a small convolution matrix. Rows must share one length and both
// dimensions must be odd.
type Kernel [][]float64

// residueFloor separates genuine kernel responses from the rounding residue
// a zero-sum kernel leaves on uniform regions: accumulated float64 rounding
// stays below 1e-12 there, while the smallest response 8-bit input can
// produce is on the order of 1e-4. Detectors floor their raw responses here
// before normalizing.
const residueFloor = 1e-9

// Convolve correlates src with kern and returns a map of the same size.
// Taps falling outside the source are mirrored back in about the borders, so
// edges see their own samples instead of artificial zeros. The result is not
// normalized; callers rescale explicitly. src is never modified and the
// function is safe to call concurrently on independent inputs.
func Convolve(src *WeightMap, kern Kernel) *WeightMap {
	var (
		width  = src.Width
		height = src.Height
		ry     = len(kern) / 2
		rx     = len(kern[0]) / 2
		dst    = NewWeightMap(width, height)
	)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				var sum float64
				for row := -ry; row <= ry; row++ {
					sy := mirror(y+row, height)
					krow := kern[row+ry]
					for col := -rx; col <= rx; col++ {
						sx := mirror(x+col, width)
						sum += src.Values[sy*width+sx] * krow[col+rx]
					}
				}
				dst.Values[y*width+x] = sum
			}
		}
	})

	return dst
}

// mirror reflects an out-of-range index back into [0, n), repeating the
// border sample first: -1 maps to 0, n maps to n-1.
func mirror(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		} else {
			i = 2*n - i - 1
		}
	}
	return i
}

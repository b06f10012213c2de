package triangler

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestGradientWeightsShapeAndCeiling(t *testing.T) {
	img := twoTone(20, 14)

	w, err := GradientWeights(img, 1)
	if err != nil {
		t.Fatalf("GradientWeights error: %v", err)
	}
	if w.Width != 20 || w.Height != 14 {
		t.Fatalf("shape = %dx%d; want 20x14", w.Width, w.Height)
	}
	if got := w.Max(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Max = %v; want 1", got)
	}
	for i, v := range w.Values {
		if v < 0 {
			t.Fatalf("value[%d] = %v; want non-negative", i, v)
		}
	}
}

// A solid-color image has no edges anywhere; the algorithm must refuse to
// normalize the all-zero response instead of dividing by zero.
func TestGradientWeightsDegenerate(t *testing.T) {
	img := flatImage(10, 10, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	w, err := GradientWeights(img, 1)
	if !errors.Is(err, ErrEmptyWeightMap) {
		t.Fatalf("error = %v; want ErrEmptyWeightMap", err)
	}
	if w != nil {
		t.Errorf("weights = %v; want nil on error", w)
	}
}

// Blur radius zero degenerates the averaging kernel to the identity, so the
// pre-Laplacian image is untouched.
func TestBoxKernelZeroRadius(t *testing.T) {
	k := boxKernel(0)
	if len(k) != 1 || len(k[0]) != 1 || k[0][0] != 1 {
		t.Fatalf("boxKernel(0) = %v; want 1x1 identity", k)
	}

	src := NewWeightMap(6, 6)
	for i := range src.Values {
		src.Values[i] = float64(i % 7)
	}
	dst := Convolve(src, k)
	for i := range src.Values {
		if dst.Values[i] != src.Values[i] {
			t.Fatalf("value[%d] = %v; want %v", i, dst.Values[i], src.Values[i])
		}
	}
}

func TestBoxKernelSumsToOne(t *testing.T) {
	for _, radius := range []int{1, 2, 4} {
		k := boxKernel(radius)
		var sum float64
		for _, row := range k {
			for _, v := range row {
				sum += v
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("boxKernel(%d) taps sum to %v; want 1", radius, sum)
		}
	}
}

func TestGradientWeightsNegativeBlur(t *testing.T) {
	img := twoTone(16, 16)

	a, err := GradientWeights(img, -3)
	if err != nil {
		t.Fatalf("GradientWeights(-3) error: %v", err)
	}
	b, err := GradientWeights(img, 0)
	if err != nil {
		t.Fatalf("GradientWeights(0) error: %v", err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("value[%d] differs: %v vs %v", i, a.Values[i], b.Values[i])
		}
	}
}

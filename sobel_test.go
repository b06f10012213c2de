package triangler

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSobelWeightsKernelSize(t *testing.T) {
	img := twoTone(10, 10)

	for _, k := range []int{0, 1, 2, 4, 7} {
		_, err := SobelWeights(img, k)
		require.ErrorIs(t, err, ErrKernelSize, "k=%d", k)
	}
	for _, k := range []int{3, 5} {
		w, err := SobelWeights(img, k)
		require.NoError(t, err, "k=%d", k)
		require.Equal(t, 10, w.Width)
		require.Equal(t, 10, w.Height)
	}
}

func TestSobelWeightsCeiling(t *testing.T) {
	img := twoTone(32, 32)

	for _, k := range []int{3, 5} {
		w, err := SobelWeights(img, k)
		require.NoError(t, err)
		require.InDelta(t, 255, w.Max(), 1e-9, "k=%d", k)
		for _, v := range w.Values {
			require.GreaterOrEqual(t, v, 0.0)
		}
	}
}

// A solid color has no gradient at any level. The kernel sums cancel only to
// rounding residue for most levels, and that residue must not be mistaken
// for edges.
func TestSobelWeightsDegenerate(t *testing.T) {
	for gray := 0; gray <= 255; gray += 5 {
		g := uint8(gray)
		img := flatImage(16, 16, color.NRGBA{R: g, G: g, B: g, A: 255})

		for _, k := range []int{3, 5} {
			_, err := SobelWeights(img, k)
			require.ErrorIs(t, err, ErrEmptyWeightMap, "gray=%d k=%d", gray, k)
		}
	}
}

// The strongest gradient responses of a diagonal brightness step must sit on
// the diagonal itself, give or take the one-pixel halo of the kernel. The
// border reflection slightly boosts the two pixels where the step exits the
// canvas, so the check covers the top band of values rather than the single
// maximum.
func TestSobelWeightsDiagonalLocation(t *testing.T) {
	img := diagStep(100)

	w, err := SobelWeights(img, 3)
	require.NoError(t, err)

	cut := 0.94 * w.Max()
	onDiag := false
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if w.At(x, y) < cut {
				continue
			}
			d := x - y
			require.LessOrEqual(t, math.Abs(float64(d)), 1.0,
				"peak magnitude off the diagonal at (%d,%d)", x, y)
			if d == 0 {
				onDiag = true
			}
		}
	}
	require.True(t, onDiag, "no peak magnitude on the diagonal")
}

package triangler

import (
	"image"
	"math"
)

// sobelCeil is the ceiling the gradient magnitude is rescaled to. The Sobel
// map historically lives on the byte scale rather than the unit scale of the
// other detectors; samplers only rank weights, so the two scales coexist.
const sobelCeil = 255.0

var (
	sobelX3 = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	sobelY3 = Kernel{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}

	sobelX5 = Kernel{
		{-1, -2, 0, 2, 1},
		{-4, -8, 0, 8, 4},
		{-6, -12, 0, 12, 6},
		{-4, -8, 0, 8, 4},
		{-1, -2, 0, 2, 1},
	}

	sobelY5 = Kernel{
		{1, 4, 6, 4, 1},
		{2, 8, 12, 8, 2},
		{0, 0, 0, 0, 0},
		{-2, -8, -12, -8, -2},
		{-1, -4, -6, -4, -1},
	}
)

// SobelWeights computes the Sobel gradient magnitude of the image luminance
// and rescales it so the strongest response equals 255. The kernel size must
// be 3 or 5; any other value returns ErrKernelSize. Uniform images carry no
// gradient and are rejected with ErrEmptyWeightMap.
func SobelWeights(img *image.NRGBA, ksize int) (*WeightMap, error) {
	var kx, ky Kernel
	switch ksize {
	case 3:
		kx, ky = sobelX3, sobelY3
	case 5:
		kx, ky = sobelX5, sobelY5
	default:
		return nil, ErrKernelSize
	}

	var (
		gray = luminance(img)
		gx   = Convolve(gray, kx)
		gy   = Convolve(gray, ky)
		mag  = NewWeightMap(gray.Width, gray.Height)
	)
	for i := range mag.Values {
		m := math.Sqrt(gx.Values[i]*gx.Values[i] + gy.Values[i]*gy.Values[i])
		if m < residueFloor {
			m = 0
		}
		mag.Values[i] = m
	}

	if err := mag.normalizeMax(sobelCeil); err != nil {
		return nil, err
	}
	return mag, nil
}

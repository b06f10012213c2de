package triangler

import "image"

// gradientNoiseFloor is the raw edge-response level below which a sample is
// treated as flat-region noise and clamped to zero. Relative to unit-range
// luminance.
const gradientNoiseFloor = 3.0 / 256

// laplacianKernel is the discrete 8-neighbor Laplacian.
var laplacianKernel = Kernel{
	{1, 1, 1},
	{1, -8, 1},
	{1, 1, 1},
}

// densifyKernel sums each 3x3 neighborhood, spreading isolated edge
// responses into locally coherent clusters.
var densifyKernel = Kernel{
	{1, 1, 1},
	{1, 1, 1},
	{1, 1, 1},
}

// GradientWeights computes an edge-based weight map: Laplacian response on a
// box-blurred luminance channel, thresholded against the noise floor, then
// densified and rescaled so the strongest response equals 1. A negative blur
// radius is treated as zero. Uniform images carry no edges and are rejected
// with ErrEmptyWeightMap.
func GradientWeights(img *image.NRGBA, blur int) (*WeightMap, error) {
	if blur < 0 {
		blur = 0
	}

	gray := luminance(img)
	blurred := Convolve(gray, boxKernel(blur))
	edge := Convolve(blurred, laplacianKernel)

	for i, v := range edge.Values {
		if v < gradientNoiseFloor {
			edge.Values[i] = 0
		}
	}

	dense := Convolve(edge, densifyKernel)
	if err := dense.normalizeMax(1); err != nil {
		return nil, err
	}
	return dense, nil
}

// boxKernel builds a (2r+1)x(2r+1) uniform averaging kernel whose taps sum
// to 1. r = 0 degenerates to the 1x1 identity.
func boxKernel(radius int) Kernel {
	side := 2*radius + 1
	tap := 1 / float64(side*side)

	kern := make(Kernel, side)
	for y := range kern {
		row := make([]float64, side)
		for x := range row {
			row[x] = tap
		}
		kern[y] = row
	}
	return kern
}

package triangler

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

const (
	// entropyBalance blends texture complexity against color edges:
	// balance*entropy + (1-balance)*edges.
	entropyBalance = 0.1

	// entropyRadius is the disk radius for both the local entropy
	// neighborhood and the dilation that thickens entropy ridges.
	entropyRadius = 5

	// edgeDilateRadius thickens the Scharr edge map.
	edgeDilateRadius = 3
)

// EntropyWeights computes a texture-aware weight map. The image is
// denoised channel-wise with a total-variation filter, then two salience
// fields are derived from it: local Shannon entropy of the luminance
// (dilated and smoothed) and the mean Scharr gradient magnitude over the
// Lab channels (dilated). The two are blended, normalized by the mean and
// finally by the maximum so the strongest sample equals 1. Uniform images
// are rejected with ErrEmptyWeightMap.
func EntropyWeights(img *image.NRGBA) (*WeightMap, error) {
	chans := rgbChannels(img)
	for i := range chans {
		chans[i] = denoiseTV(chans[i], tvWeight)
	}

	ent := localEntropy(toUbyte(grayFromChannels(chans)), entropyRadius)
	ent = dilate(ent, diskOffsets(entropyRadius))
	ent = gaussianSmooth(ent, 1)

	lab := labFromChannels(chans)
	edges := NewWeightMap(ent.Width, ent.Height)
	for _, ch := range lab {
		mag := scharrMagnitude(ch)
		for i, v := range mag.Values {
			edges.Values[i] += v
		}
	}
	edges.scale(1.0 / 3)
	edges = dilate(edges, diskOffsets(edgeDilateRadius))

	blend := NewWeightMap(ent.Width, ent.Height)
	for i := range blend.Values {
		v := entropyBalance*ent.Values[i] + (1-entropyBalance)*edges.Values[i]
		if v < residueFloor {
			v = 0
		}
		blend.Values[i] = v
	}

	mean := blend.Mean()
	if mean <= 0 {
		return nil, ErrEmptyWeightMap
	}
	blend.scale(1 / mean)
	if err := blend.normalizeMax(1); err != nil {
		return nil, err
	}
	return blend, nil
}

// localEntropy measures the Shannon entropy, in bits, of the 256-bin
// intensity histogram over a disk-shaped neighborhood around each sample.
// Neighborhoods are clipped at the borders. The histogram slides along each
// row, trading one trailing column of samples for one leading column per
// step instead of rebuilding.
func localEntropy(src *WeightMap, radius int) *WeightMap {
	var (
		width  = src.Width
		height = src.Height
		dst    = NewWeightMap(width, height)
	)

	// Half-width of the disk on each row offset: dx*dx+dy*dy <= r*r.
	halfw := make([]int, 2*radius+1)
	for dy := -radius; dy <= radius; dy++ {
		halfw[dy+radius] = int(math.Sqrt(float64(radius*radius - dy*dy)))
	}

	parallel.Line(height, func(start, end int) {
		var hist [256]int

		for y := start; y < end; y++ {
			for i := range hist {
				hist[i] = 0
			}
			count := 0

			for dy := -radius; dy <= radius; dy++ {
				sy := y + dy
				if sy < 0 || sy >= height {
					continue
				}
				for sx := 0; sx <= halfw[dy+radius]; sx++ {
					if sx >= width {
						break
					}
					hist[int(src.Values[sy*width+sx])]++
					count++
				}
			}
			dst.Values[y*width] = histEntropy(&hist, count)

			for x := 1; x < width; x++ {
				for dy := -radius; dy <= radius; dy++ {
					sy := y + dy
					if sy < 0 || sy >= height {
						continue
					}
					hw := halfw[dy+radius]
					if rm := x - 1 - hw; rm >= 0 {
						hist[int(src.Values[sy*width+rm])]--
						count--
					}
					if add := x + hw; add < width {
						hist[int(src.Values[sy*width+add])]++
						count++
					}
				}
				dst.Values[y*width+x] = histEntropy(&hist, count)
			}
		}
	})

	return dst
}

func histEntropy(hist *[256]int, count int) float64 {
	if count == 0 {
		return 0
	}
	var (
		total = float64(count)
		h     float64
	)
	for _, n := range hist {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h
}

// gaussianSmooth low-passes the map with a separable Gaussian, truncated at
// four standard deviations.
func gaussianSmooth(src *WeightMap, sigma float64) *WeightMap {
	radius := int(4*sigma + 0.5)
	taps := make([]float64, 2*radius+1)

	var sum float64
	for i := -radius; i <= radius; i++ {
		t := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		taps[i+radius] = t
		sum += t
	}
	for i := range taps {
		taps[i] /= sum
	}

	col := make(Kernel, len(taps))
	for i, t := range taps {
		col[i] = []float64{t}
	}
	return Convolve(Convolve(src, Kernel{taps}), col)
}

// Scharr gradient kernels, 1/16 weighting.
var (
	scharrH = Kernel{
		{3.0 / 16, 10.0 / 16, 3.0 / 16},
		{0, 0, 0},
		{-3.0 / 16, -10.0 / 16, -3.0 / 16},
	}
	scharrV = Kernel{
		{3.0 / 16, 0, -3.0 / 16},
		{10.0 / 16, 0, -10.0 / 16},
		{3.0 / 16, 0, -3.0 / 16},
	}
)

// scharrMagnitude computes the rotation-corrected Scharr gradient magnitude,
// sqrt(h*h+v*v)/sqrt(2).
func scharrMagnitude(src *WeightMap) *WeightMap {
	var (
		h   = Convolve(src, scharrH)
		v   = Convolve(src, scharrV)
		dst = NewWeightMap(src.Width, src.Height)
	)
	for i := range dst.Values {
		dst.Values[i] = math.Sqrt(h.Values[i]*h.Values[i]+v.Values[i]*v.Values[i]) / math.Sqrt2
	}
	return dst
}

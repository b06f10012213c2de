package triangler

import "math"

// Total-variation denoising constants. The weight balances fidelity against
// smoothness; iteration stops once the dual energy settles within eps of its
// initial magnitude or after maxIter rounds.
const (
	tvWeight  = 0.1
	tvEps     = 2e-4
	tvMaxIter = 30
)

// denoiseTV smooths the map with Chambolle's dual projection scheme for the
// ROF total-variation model. Flat regions converge immediately; textured
// inputs run all tvMaxIter rounds. The source map is not modified.
func denoiseTV(src *WeightMap, weight float64) *WeightMap {
	var (
		width  = src.Width
		height = src.Height
		n      = width * height

		out = NewWeightMap(width, height)

		// Dual variables, one per axis, and the forward-difference gradient
		// of the current estimate.
		p0 = make([]float64, n)
		p1 = make([]float64, n)
		g0 = make([]float64, n)
		g1 = make([]float64, n)
		d  = make([]float64, n)
	)

	const tau = 0.25

	energyInit := 0.0
	energyPrev := 0.0

	for iter := 0; iter < tvMaxIter; iter++ {
		// Divergence of p, then the new estimate out = src + div(p).
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				div := -p0[idx] - p1[idx]
				if y > 0 {
					div += p0[idx-width]
				}
				if x > 0 {
					div += p1[idx-1]
				}
				d[idx] = div
				out.Values[idx] = src.Values[idx] + div
			}
		}

		// Forward differences of the estimate, zero on the last row/column.
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				if y < height-1 {
					g0[idx] = out.Values[idx+width] - out.Values[idx]
				} else {
					g0[idx] = 0
				}
				if x < width-1 {
					g1[idx] = out.Values[idx+1] - out.Values[idx]
				} else {
					g1[idx] = 0
				}
			}
		}

		energy := 0.0
		for i := 0; i < n; i++ {
			norm := math.Sqrt(g0[i]*g0[i] + g1[i]*g1[i])
			energy += d[i]*d[i] + weight*norm

			factor := norm*tau/weight + 1
			p0[i] = (p0[i] - tau*g0[i]) / factor
			p1[i] = (p1[i] - tau*g1[i]) / factor
		}

		// A zero-energy field has nothing left to diffuse.
		if energy == 0 {
			break
		}
		if iter == 0 {
			energyInit = energy
		} else if math.Abs(energyPrev-energy) < tvEps*energyInit {
			break
		}
		energyPrev = energy
	}

	return out
}

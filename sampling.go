package triangler

import (
	"math"
	"math/rand"
	"time"
)

// thresholdFrac is the candidate cutoff for threshold sampling: samples below
// this fraction of the map maximum never become points.
const thresholdFrac = 0.2

// poissonAttempts bounds how many candidates are tried around an active
// point before it is retired.
const poissonAttempts = 30

// Point is a 2D point on the raster grid.
type Point struct {
	X, Y float64
}

// Sampler converts a weight map and a target count into concrete point
// coordinates, biased toward higher-weight regions. Implementations return
// at most n points; whether fewer than n is an error is up to the strategy.
type Sampler func(n int, weights *WeightMap) ([]Point, error)

// ThresholdSample picks exactly n distinct pixels whose weight reaches at
// least thresholdFrac of the map maximum, uniformly at random among the
// qualifying candidates. Uniformly zero maps are rejected with
// ErrEmptyWeightMap. A non-positive n yields no points; a map without n
// candidates fails with ErrNotEnoughPoints.
func ThresholdSample(n int, weights *WeightMap) ([]Point, error) {
	if err := weights.check(); err != nil {
		return nil, err
	}
	max := weights.Max()
	if max <= 0 {
		return nil, ErrEmptyWeightMap
	}
	if n <= 0 {
		return []Point{}, nil
	}

	cutoff := max * thresholdFrac
	candidates := make([]int, 0, len(weights.Values))
	for i, v := range weights.Values {
		if v >= cutoff {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < n {
		return nil, ErrNotEnoughPoints
	}

	// Partial Fisher-Yates: only the first n slots need to be drawn.
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		points[i] = Point{
			X: float64(candidates[i] % weights.Width),
			Y: float64(candidates[i] / weights.Width),
		}
	}
	return points, nil
}

// PoissonDiskSample spreads up to n points over the image with Bridson's
// algorithm, shrinking the exclusion radius where the weight map is strong so
// salient regions pack more points. Fewer than n points is a valid outcome
// when the radii saturate the image first.
func PoissonDiskSample(n int, weights *WeightMap) ([]Point, error) {
	if err := weights.check(); err != nil {
		return nil, err
	}
	max := weights.Max()
	if max <= 0 {
		return nil, ErrEmptyWeightMap
	}
	if n <= 0 {
		return []Point{}, nil
	}

	var (
		width  = float64(weights.Width)
		height = float64(weights.Height)

		// Base exclusion radius sized so n points at rMin could tile about
		// 70% of the area; strong weights pull the radius down to rMin,
		// weak ones push it out to rMax.
		rMin = math.Max(1, math.Sqrt(0.7*width*height/float64(n)))
		rMax = 4 * rMin

		cell  = rMin / math.Sqrt2
		cols  = int(math.Ceil(width / cell))
		rows  = int(math.Ceil(height / cell))
		grid  = make([][]Point, cols*rows)
		r     = rand.New(rand.NewSource(time.Now().UnixNano()))
		queue []Point
		out   []Point
	)

	radiusAt := func(p Point) float64 {
		w := weights.At(int(p.X), int(p.Y)) / max
		return rMax - (rMax-rMin)*w
	}

	emit := func(p Point) {
		out = append(out, p)
		queue = append(queue, p)
		gx, gy := int(p.X/cell), int(p.Y/cell)
		grid[gy*cols+gx] = append(grid[gy*cols+gx], p)
	}

	fits := func(p Point, radius float64) bool {
		gx, gy := int(p.X/cell), int(p.Y/cell)
		reach := int(math.Ceil(radius/cell)) + 1
		for cy := gy - reach; cy <= gy+reach; cy++ {
			if cy < 0 || cy >= rows {
				continue
			}
			for cx := gx - reach; cx <= gx+reach; cx++ {
				if cx < 0 || cx >= cols {
					continue
				}
				for _, q := range grid[cy*cols+cx] {
					dx, dy := p.X-q.X, p.Y-q.Y
					if dx*dx+dy*dy < radius*radius {
						return false
					}
				}
			}
		}
		return true
	}

	emit(Point{X: math.Floor(width * r.Float64()), Y: math.Floor(height * r.Float64())})

	for len(queue) > 0 && len(out) < n {
		qi := r.Intn(len(queue))
		base := queue[qi]
		radius := radiusAt(base)

		placed := false
		for a := 0; a < poissonAttempts; a++ {
			angle := 2 * math.Pi * r.Float64()
			dist := radius * (1 + r.Float64())
			cand := Point{
				X: math.Floor(base.X + dist*math.Cos(angle)),
				Y: math.Floor(base.Y + dist*math.Sin(angle)),
			}
			if cand.X < 0 || cand.X >= width || cand.Y < 0 || cand.Y >= height {
				continue
			}
			if fits(cand, radiusAt(cand)) {
				emit(cand)
				placed = true
				break
			}
		}
		if !placed {
			queue[qi] = queue[len(queue)-1]
			queue = queue[:len(queue)-1]
		}
	}

	return out, nil
}

package triangler

import (
	"fmt"
	"image"
	"math"
)

// sobelExtractSize is the kernel size the extractor dispatches Sobel with.
const sobelExtractSize = 5

// maxPointShare caps the requested point count at this fraction of the pixel
// count.
const maxPointShare = 0.5

// EdgeMethod selects the weight map algorithm.
type EdgeMethod int

const (
	// Gradient thresholds a blurred Laplacian edge response.
	Gradient EdgeMethod = iota
	// Entropy blends local texture entropy with Scharr color edges.
	Entropy
	// Sobel ranks pixels by Sobel gradient magnitude.
	Sobel
)

// String returns the lowercase method name used on the command line.
func (e EdgeMethod) String() string {
	switch e {
	case Gradient:
		return "gradient"
	case Entropy:
		return "entropy"
	case Sobel:
		return "sobel"
	}
	return "unknown"
}

// SampleMethod selects the point sampling strategy.
type SampleMethod int

const (
	// PoissonDisk spreads points with weight-modulated exclusion radii.
	PoissonDisk SampleMethod = iota
	// Threshold draws points uniformly from high-weight pixels.
	Threshold
)

// String returns the lowercase method name used on the command line.
func (s SampleMethod) String() string {
	switch s {
	case PoissonDisk:
		return "poisson"
	case Threshold:
		return "threshold"
	}
	return "unknown"
}

// detectWeights dispatches to the selected weight map algorithm. Variable so
// tests can observe dispatch.
var detectWeights = func(edge EdgeMethod, img *image.NRGBA, blur int) (*WeightMap, error) {
	switch edge {
	case Gradient:
		return GradientWeights(img, blur)
	case Entropy:
		return EntropyWeights(img)
	case Sobel:
		return SobelWeights(img, sobelExtractSize)
	}
	return nil, fmt.Errorf("%w: got %d", ErrEdgeMethod, edge)
}

// PointExtractor turns an image into mesh vertex candidates: it runs the
// configured weight map algorithm, hands the map to a sampling strategy and
// appends the four image corners so the triangulation always spans the full
// canvas.
type PointExtractor struct {
	img    *image.NRGBA
	width  int
	height int
	points int
	edge   EdgeMethod
}

// NewPointExtractor validates the requested point count against the image
// size: more points than half the pixel count fails with ErrTooManyPoints
// before any pixel work happens. The image is never mutated.
func NewPointExtractor(img *image.NRGBA, points int, edge EdgeMethod) (*PointExtractor, error) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if float64(points) > math.RoundToEven(float64(width)*float64(height)*maxPointShare) {
		return nil, fmt.Errorf("%w: %d points for a %dx%d image", ErrTooManyPoints, points, width, height)
	}
	return &PointExtractor{
		img:    img,
		width:  width,
		height: height,
		points: points,
		edge:   edge,
	}, nil
}

// EdgePoints computes the weight map with the configured algorithm, samples
// it with the requested strategy and returns the sampled points followed by
// the four image corners. The blur radius only affects the Gradient method.
// Extraction is all-or-nothing: any failure returns no points.
func (p *PointExtractor) EdgePoints(blur int, sampling SampleMethod) ([]Point, error) {
	weights, err := detectWeights(p.edge, p.img, blur)
	if err != nil {
		return nil, err
	}
	if weights.Width != p.width || weights.Height != p.height {
		return nil, fmt.Errorf("%w: %dx%d map for a %dx%d image",
			ErrShapeMismatch, weights.Width, weights.Height, p.width, p.height)
	}

	var sample Sampler
	switch sampling {
	case PoissonDisk:
		sample = PoissonDiskSample
	case Threshold:
		sample = ThresholdSample
	default:
		return nil, fmt.Errorf("%w: got %d", ErrSampleMethod, sampling)
	}
	sampled, err := sample(p.points, weights)
	if err != nil {
		return nil, err
	}

	corners := []Point{
		{X: 0, Y: 0},
		{X: 0, Y: float64(p.height - 1)},
		{X: float64(p.width - 1), Y: 0},
		{X: float64(p.width - 1), Y: float64(p.height - 1)},
	}
	return append(sampled, corners...), nil
}

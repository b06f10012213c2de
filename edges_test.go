package triangler

import (
	"errors"
	"image"
	"testing"
)

func TestNewPointExtractorPointLimit(t *testing.T) {
	img := twoTone(10, 10)

	// Half the pixel count is the hard ceiling.
	if _, err := NewPointExtractor(img, 50, Gradient); err != nil {
		t.Fatalf("NewPointExtractor(50) error: %v", err)
	}
	_, err := NewPointExtractor(img, 51, Gradient)
	if !errors.Is(err, ErrTooManyPoints) {
		t.Fatalf("NewPointExtractor(51) error = %v; want ErrTooManyPoints", err)
	}

	// Odd pixel counts land the ceiling on a half; the tie rounds to even,
	// so a 3x3 image admits 4 points and rejects 5.
	odd := twoTone(3, 3)
	if _, err := NewPointExtractor(odd, 4, Gradient); err != nil {
		t.Fatalf("NewPointExtractor(4) on 3x3 error: %v", err)
	}
	if _, err := NewPointExtractor(odd, 5, Gradient); !errors.Is(err, ErrTooManyPoints) {
		t.Fatalf("NewPointExtractor(5) on 3x3 error = %v; want ErrTooManyPoints", err)
	}
}

// An excessive point count must fail before any weight map computation.
func TestNewPointExtractorNoDispatchOnError(t *testing.T) {
	calls := 0
	orig := detectWeights
	detectWeights = func(edge EdgeMethod, img *image.NRGBA, blur int) (*WeightMap, error) {
		calls++
		return orig(edge, img, blur)
	}
	defer func() { detectWeights = orig }()

	img := twoTone(10, 10)
	if _, err := NewPointExtractor(img, 10000, Gradient); err == nil {
		t.Fatal("expected error for excessive point count")
	}
	if calls != 0 {
		t.Errorf("weight map computed %d times; want 0", calls)
	}
}

func TestEdgePointsAppendsCorners(t *testing.T) {
	img := twoTone(20, 16)

	ex, err := NewPointExtractor(img, 8, Gradient)
	if err != nil {
		t.Fatalf("NewPointExtractor error: %v", err)
	}
	points, err := ex.EdgePoints(1, Threshold)
	if err != nil {
		t.Fatalf("EdgePoints error: %v", err)
	}

	if len(points) != 8+4 {
		t.Fatalf("len(points) = %d; want 12", len(points))
	}
	corners := []Point{
		{X: 0, Y: 0},
		{X: 0, Y: 15},
		{X: 19, Y: 0},
		{X: 19, Y: 15},
	}
	for i, want := range corners {
		if got := points[8+i]; got != want {
			t.Errorf("corner[%d] = %v; want %v", i, got, want)
		}
	}
}

func TestEdgePointsUnsupportedSelectors(t *testing.T) {
	img := twoTone(16, 16)

	ex, err := NewPointExtractor(img, 4, EdgeMethod(42))
	if err != nil {
		t.Fatalf("NewPointExtractor error: %v", err)
	}
	if _, err := ex.EdgePoints(1, Threshold); !errors.Is(err, ErrEdgeMethod) {
		t.Errorf("unknown edge method error = %v; want ErrEdgeMethod", err)
	}

	ex, err = NewPointExtractor(img, 4, Sobel)
	if err != nil {
		t.Fatalf("NewPointExtractor error: %v", err)
	}
	if _, err := ex.EdgePoints(1, SampleMethod(9)); !errors.Is(err, ErrSampleMethod) {
		t.Errorf("unknown sampling method error = %v; want ErrSampleMethod", err)
	}
}

// A weight map that does not match the image dimensions must be rejected
// before sampling.
func TestEdgePointsShapeMismatch(t *testing.T) {
	orig := detectWeights
	detectWeights = func(edge EdgeMethod, img *image.NRGBA, blur int) (*WeightMap, error) {
		return NewWeightMap(3, 3), nil
	}
	defer func() { detectWeights = orig }()

	img := twoTone(16, 16)
	ex, err := NewPointExtractor(img, 4, Gradient)
	if err != nil {
		t.Fatalf("NewPointExtractor error: %v", err)
	}
	if _, err := ex.EdgePoints(1, Threshold); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v; want ErrShapeMismatch", err)
	}
}

// Extraction is all-or-nothing: a sampling failure yields no points at all.
func TestEdgePointsSamplingFailure(t *testing.T) {
	img := twoTone(20, 20)

	ex, err := NewPointExtractor(img, 190, Gradient)
	if err != nil {
		t.Fatalf("NewPointExtractor error: %v", err)
	}
	points, err := ex.EdgePoints(1, Threshold)
	if !errors.Is(err, ErrNotEnoughPoints) {
		t.Fatalf("error = %v; want ErrNotEnoughPoints", err)
	}
	if points != nil {
		t.Errorf("points = %v; want nil on error", points)
	}
}

func TestMethodStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Gradient.String(), "gradient"},
		{Entropy.String(), "entropy"},
		{Sobel.String(), "sobel"},
		{EdgeMethod(9).String(), "unknown"},
		{PoissonDisk.String(), "poisson"},
		{Threshold.String(), "threshold"},
		{SampleMethod(9).String(), "unknown"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("String() = %q; want %q", tc.got, tc.want)
		}
	}
}

package triangler

import "errors"

// Sentinel errors returned by the point extraction pipeline. All of them are
// fatal to the call that raised them; no partial results accompany an error.
var (
	// ErrTooManyPoints indicates the requested point count exceeds half the
	// pixel count of the source image.
	ErrTooManyPoints = errors.New("triangler: requested point count exceeds half the pixel count")
	// ErrEdgeMethod indicates an edge method outside the closed set.
	ErrEdgeMethod = errors.New("triangler: unsupported edge method, valid methods: gradient, entropy, sobel")
	// ErrSampleMethod indicates a sampling method outside the closed set.
	ErrSampleMethod = errors.New("triangler: unsupported sampling method, valid methods: poisson, threshold")
	// ErrEmptyWeightMap indicates a detector produced a uniformly zero map,
	// so no maximum-normalization or weighted sampling is possible.
	ErrEmptyWeightMap = errors.New("triangler: weight map is uniformly zero")
	// ErrKernelSize indicates a Sobel kernel size other than 3 or 5.
	ErrKernelSize = errors.New("triangler: sobel kernel size must be 3 or 5")
	// ErrNotEnoughPoints indicates the weight map does not expose enough
	// candidate pixels to satisfy the requested sample count.
	ErrNotEnoughPoints = errors.New("triangler: weight map yields fewer candidate points than requested")
	// ErrShapeMismatch indicates a weight map whose dimensions disagree with
	// its backing data or with the source image.
	ErrShapeMismatch = errors.New("triangler: weight map shape mismatch")
)

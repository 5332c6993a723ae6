package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrRaggedInput indicates imported rows of differing lengths.
	ErrRaggedInput = errors.New("grid: all rows must have the same length")
	// ErrNegativeSize indicates a negative width or height.
	ErrNegativeSize = errors.New("grid: width and height must be non-negative")
)

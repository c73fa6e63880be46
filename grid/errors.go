package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the W×H rectangle.
	ErrOutOfBounds = errors.New("grid: index out of bounds")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// boundsErrorf wraps ErrOutOfBounds with method context.
func boundsErrorf(method string, p Index, w, h uint) error {
	return fmt.Errorf("Grid.%s(%d,%d) on %dx%d: %w", method, p.X, p.Y, w, h, ErrOutOfBounds)
}

package grid

import "errors"

// Every message is prefixed with "grid: ". Operations that need context wrap
// these with fmt.Errorf("%w: ...") and callers match with errors.Is.
var (
	// ErrBadShape indicates a negative width or height, or too many cells.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside [0,width)×[0,height).
	// Accessors return it instead of clamping.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates two grids of different shape were combined.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrBadScale indicates an unusable rescale factor or Mul scalar.
	ErrBadScale = errors.New("grid: invalid scale factor")

	// ErrNoPath indicates the target cell is not reachable from the source.
	// It is a result, not a malformed-input failure.
	ErrNoPath = errors.New("grid: no path between cells")

	// ErrBrokenField indicates a distance field with no valid predecessor
	// for some cell on the way back to the source.
	ErrBrokenField = errors.New("grid: inconsistent distance field")

	// ErrInvalidPath indicates a path that is empty, leaves the grid, crosses
	// an obstacle, repeats a cell or makes a non-adjacent step.
	ErrInvalidPath = errors.New("grid: invalid path")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")

	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("grid: grid is nil")
)

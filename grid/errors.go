package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout indicates a malformed Start/End placement or board shape.
	ErrInvalidLayout = errors.New("grid: invalid layout")
	// ErrEmptyGrid indicates a board with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidLayout)
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidLayout)
	// ErrOutOfBounds indicates a position outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrUnknownSymbol indicates an unrecognized character in an ASCII map.
	ErrUnknownSymbol = errors.New("grid: unknown map symbol")
	// ErrNilGrid indicates a nil *Grid was passed to an editor operation.
	ErrNilGrid = errors.New("grid: grid is nil")
)

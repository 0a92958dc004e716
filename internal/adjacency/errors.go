package adjacency

import (
	"errors"
	"fmt"
)

// Range errors. The messages are user facing and are returned verbatim by
// the HTTP layer, so keep them short.
var (
	ErrNodesOutOfRange   = errors.New("nodes must be between 2 and 200")
	ErrDensityOutOfRange = errors.New("density must be between 0 and 100")

	// ErrInvalidParameter is returned when a numeric parameter is not a number
	// or, for nodes, not an integer.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Shape errors.
var (
	ErrNotSquare  = errors.New("matrix is not square")
	ErrNotNumeric = errors.New("matrix entry is not a number")
)

// ShapeError reports where a candidate matrix violated the square numeric
// contract. It unwraps to ErrNotSquare or ErrNotNumeric.
type ShapeError struct {
	Err     error
	Rows    int
	Row     int
	Columns int
	Column  int
	Value   any
}

func (e *ShapeError) Error() string {
	if errors.Is(e.Err, ErrNotNumeric) {
		return fmt.Sprintf("value %q on row %d is not a number", fmt.Sprint(e.Value), e.Row)
	}
	return fmt.Sprintf("%d rows but row %d has %d columns", e.Rows, e.Row, e.Columns)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

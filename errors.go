package cellgrid

import "errors"

// Every message is prefixed with "cellgrid: ". Operations wrap these sentinels
// with positional context, so match them with errors.Is.
var (
	// ErrCellNotFound indicates a cell that was never registered in this grid:
	// a cell from another table or a stale reference.
	ErrCellNotFound = errors.New("cellgrid: cell does not belong to this grid")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("cellgrid: index out of range")

	// ErrBadShape indicates negative table dimensions or a slice whose length
	// does not match the grid.
	ErrBadShape = errors.New("cellgrid: invalid shape")

	// ErrNilCell indicates the table returned a nil cell for a position.
	ErrNilCell = errors.New("cellgrid: table returned nil cell")

	// ErrSpanOutOfBounds indicates a negative merge span or one reaching past
	// the table edge.
	ErrSpanOutOfBounds = errors.New("cellgrid: merge span out of bounds")

	// ErrOverlappingMerge indicates two merge blocks claiming the same position.
	// Only returned when the grid is built WithStrictMerges.
	ErrOverlappingMerge = errors.New("cellgrid: overlapping merge spans")

	// ErrBadPageHeight indicates a non-positive page height.
	ErrBadPageHeight = errors.New("cellgrid: page height must be > 0")
)

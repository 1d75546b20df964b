package imdata

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrOutOfRange       = errors.New("coordinate out of range")
)

// GridErrorCode categorizes grid errors.
type GridErrorCode string

const (
	// ErrCodeInvalidDimension indicates a non-positive or ragged board shape.
	ErrCodeInvalidDimension GridErrorCode = "INVALID_DIMENSION"

	// ErrCodeOutOfRange indicates a coordinate outside the board.
	ErrCodeOutOfRange GridErrorCode = "OUT_OF_RANGE"
)

// GridError is returned by board construction and cell access.
// A GridError never accompanies a partially built value.
type GridError struct {
	Code    GridErrorCode
	Message string

	// Row and Col hold the offending coordinate (OUT_OF_RANGE) or the
	// requested shape (INVALID_DIMENSION).
	Row int
	Col int

	// Rows and Cols hold the board dimensions for OUT_OF_RANGE.
	Rows int
	Cols int
}

// Error implements the error interface.
func (e *GridError) Error() string {
	if e.Code == ErrCodeOutOfRange {
		return fmt.Sprintf("%s: %s (row=%d, col=%d, board=%dx%d)", e.Code, e.Message, e.Row, e.Col, e.Rows, e.Cols)
	}
	return fmt.Sprintf("%s: %s (rows=%d, cols=%d)", e.Code, e.Message, e.Row, e.Col)
}

// Is lets errors.Is match the package sentinels.
func (e *GridError) Is(target error) bool {
	switch e.Code {
	case ErrCodeInvalidDimension:
		return target == ErrInvalidDimension
	case ErrCodeOutOfRange:
		return target == ErrOutOfRange
	}
	return false
}

// IsInvalidDimension returns true if err is an INVALID_DIMENSION grid error.
// Uses errors.As to handle wrapped errors.
func IsInvalidDimension(err error) bool {
	var ge *GridError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeInvalidDimension
	}
	return false
}

// IsOutOfRange returns true if err is an OUT_OF_RANGE grid error.
// Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var ge *GridError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeOutOfRange
	}
	return false
}

func newDimensionError(rows, cols int, msg string) *GridError {
	return &GridError{
		Code:    ErrCodeInvalidDimension,
		Message: msg,
		Row:     rows,
		Col:     cols,
	}
}

func newRangeError(b *Board, row, col int) *GridError {
	rows, cols := b.Dimensions()
	return &GridError{
		Code:    ErrCodeOutOfRange,
		Message: "cell is outside the board",
		Row:     row,
		Col:     col,
		Rows:    rows,
		Cols:    cols,
	}
}

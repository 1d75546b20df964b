package intent

import (
	"fmt"

	"github.com/roach88/paint/internal/imdata"
	"github.com/roach88/paint/internal/state"
)

// ToggleCell stages the current board with the cell at (row, col) flipped.
// On an out-of-range coordinate it returns the OUT_OF_RANGE error and the
// staged slot is left untouched.
func ToggleCell(s *state.Store, row, col int) error {
	next, err := s.Current().Board().Toggle(row, col)
	if err != nil {
		return fmt.Errorf("toggle cell: %w", err)
	}
	s.Stage(imdata.NewAppState(next))
	return nil
}

// Reset stages an empty board with the current dimensions, regardless of
// what the current board holds.
func Reset(s *state.Store) {
	rows, cols := s.Current().Board().Dimensions()
	empty, err := imdata.MakeEmpty(rows, cols)
	if err != nil {
		// The current board was itself built with these dimensions.
		panic(fmt.Sprintf("intent: reset with invalid current dimensions: %v", err))
	}
	s.Stage(imdata.NewAppState(empty))
}

// Invert stages the current board with every cell flipped.
func Invert(s *state.Store) {
	s.Stage(imdata.NewAppState(s.Current().Board().Invert()))
}

package imdata

// Value is a sealed interface over the immutable structures the render gate
// compares. Only *Row, *Board, *AppState, RowProps and PixelProps implement it.
type Value interface {
	imValue() // Sealed - only these types implement it

	// equal reports structural equality against another Value.
	// Callers go through Equals, which handles identity and nil first.
	equal(other Value) bool
}

// Row is an immutable ordered sequence of cells.
// A *Row is shared between board versions whenever its cells did not change.
type Row struct {
	cells []bool
}

func (*Row) imValue() {}

// Len returns the number of cells in the row.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.cells)
}

// At returns the cell at col. Callers must stay within [0, Len()).
func (r *Row) At(col int) bool {
	return r.cells[col]
}

// Cells returns a copy of the row's cells.
func (r *Row) Cells() []bool {
	out := make([]bool, len(r.cells))
	copy(out, r.cells)
	return out
}

// Board is an immutable grid of rows, all of the same length.
// Dimensions are fixed at construction.
type Board struct {
	rows []*Row
	cols int
}

func (*Board) imValue() {}

// AppState is the unit of staging and commit. It holds exactly one board.
type AppState struct {
	board *Board
}

func (*AppState) imValue() {}

// NewAppState wraps a board in a new AppState.
func NewAppState(b *Board) *AppState {
	return &AppState{board: b}
}

// Board returns the state's board.
func (s *AppState) Board() *Board {
	if s == nil {
		return nil
	}
	return s.board
}

// RowProps is the render input for one row unit.
type RowProps struct {
	Row    *Row
	RowIdx int
}

func (RowProps) imValue() {}

// PixelProps is the render input for one cell unit.
type PixelProps struct {
	RowIdx int
	ColIdx int
	On     bool
}

func (PixelProps) imValue() {}

package imdata

import "strings"

// MakeEmpty returns a rows x cols board with every cell off.
// Returns an INVALID_DIMENSION error if either dimension is not positive.
//
// All rows of an empty board share nothing with any other board, but they
// are separate *Row values so a later Toggle replaces exactly one of them.
func MakeEmpty(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, newDimensionError(rows, cols, "board dimensions must be positive")
	}

	b := &Board{
		rows: make([]*Row, rows),
		cols: cols,
	}
	for i := range b.rows {
		b.rows[i] = &Row{cells: make([]bool, cols)}
	}
	return b, nil
}

// FromRows builds a board from literal cells. The input is copied.
// Returns an INVALID_DIMENSION error for empty or ragged input.
func FromRows(cells [][]bool) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, newDimensionError(len(cells), 0, "board dimensions must be positive")
	}

	cols := len(cells[0])
	b := &Board{
		rows: make([]*Row, len(cells)),
		cols: cols,
	}
	for i, src := range cells {
		if len(src) != cols {
			return nil, newDimensionError(len(cells), len(src), "all rows must have the same length")
		}
		row := &Row{cells: make([]bool, cols)}
		copy(row.cells, src)
		b.rows[i] = row
	}
	return b, nil
}

// Dimensions returns the row and column counts.
func (b *Board) Dimensions() (rows, cols int) {
	if b == nil {
		return 0, 0
	}
	return len(b.rows), b.cols
}

func (b *Board) inBounds(row, col int) bool {
	return b != nil && row >= 0 && row < len(b.rows) && col >= 0 && col < b.cols
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (bool, error) {
	if !b.inBounds(row, col) {
		return false, newRangeError(b, row, col)
	}
	return b.rows[row].cells[col], nil
}

// Row returns the row at index i. The returned *Row is the board's own
// instance, so pointer comparison against another version's row tells
// whether the row was shared.
func (b *Board) Row(i int) (*Row, error) {
	if !b.inBounds(i, 0) {
		return nil, newRangeError(b, i, 0)
	}
	return b.rows[i], nil
}

// Toggle returns a new board with the cell at (row, col) flipped.
//
// The receiver is never modified. The target row is copied and replaced;
// every other row in the result is the identical *Row from the receiver,
// so the cost is O(cols) and unchanged rows compare equal by identity.
func (b *Board) Toggle(row, col int) (*Board, error) {
	if !b.inBounds(row, col) {
		return nil, newRangeError(b, row, col)
	}

	target := b.rows[row]
	cells := make([]bool, len(target.cells))
	copy(cells, target.cells)
	cells[col] = !cells[col]

	rows := make([]*Row, len(b.rows))
	copy(rows, b.rows)
	rows[row] = &Row{cells: cells}

	return &Board{rows: rows, cols: b.cols}, nil
}

// Invert returns a new board with every cell flipped.
// No row is shared with the receiver.
func (b *Board) Invert() *Board {
	out := &Board{
		rows: make([]*Row, len(b.rows)),
		cols: b.cols,
	}
	for i, r := range b.rows {
		cells := make([]bool, len(r.cells))
		for j, c := range r.cells {
			cells[j] = !c
		}
		out.rows[i] = &Row{cells: cells}
	}
	return out
}

// CountOn returns the number of cells that are on.
func (b *Board) CountOn() int {
	n := 0
	for _, r := range b.rows {
		for _, c := range r.cells {
			if c {
				n++
			}
		}
	}
	return n
}

// String renders the board as lines of '#' (on) and '.' (off).
func (b *Board) String() string {
	var sb strings.Builder
	for i, r := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range r.cells {
			if c {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

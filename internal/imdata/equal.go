package imdata

// Equals reports whether a and b hold the same data.
//
// Identical references compare equal in O(1) without descending. Otherwise
// the comparison is element-wise and stops at the first mismatch. Values of
// different concrete types are never equal. Equals never panics; nil values
// are equal only to nil.
//
// CRITICAL: this is the sole basis for render-skip decisions. It must never
// report equal when any cell differs.
func Equals(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.equal(b)
}

func (r *Row) equal(other Value) bool {
	o, ok := other.(*Row)
	if !ok {
		return false
	}
	return rowsEqual(r, o)
}

func (b *Board) equal(other Value) bool {
	o, ok := other.(*Board)
	if !ok {
		return false
	}
	return boardsEqual(b, o)
}

func (s *AppState) equal(other Value) bool {
	o, ok := other.(*AppState)
	if !ok || s == nil || o == nil {
		return s == o
	}
	return boardsEqual(s.board, o.board)
}

func (p RowProps) equal(other Value) bool {
	o, ok := other.(RowProps)
	if !ok {
		return false
	}
	return p.RowIdx == o.RowIdx && rowsEqual(p.Row, o.Row)
}

func (p PixelProps) equal(other Value) bool {
	o, ok := other.(PixelProps)
	if !ok {
		return false
	}
	return p == o
}

func rowsEqual(a, b *Row) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.cells) != len(b.cells) {
		return false
	}
	for i, c := range a.cells {
		if b.cells[i] != c {
			return false
		}
	}
	return true
}

func boardsEqual(a, b *Board) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.rows) != len(b.rows) || a.cols != b.cols {
		return false
	}
	for i, r := range a.rows {
		if !rowsEqual(r, b.rows[i]) {
			return false
		}
	}
	return true
}

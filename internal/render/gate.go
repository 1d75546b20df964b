// Package render decides which rendering units must redraw after a commit.
//
// A rendering unit is the whole board, one row, or one cell. Each unit
// receives Props built from the committed state, and redraws only when its
// own props changed by value. Because a toggle replaces a single row and
// shares the rest by pointer, every untouched row is skipped in O(1).
package render

import "github.com/roach88/paint/internal/imdata"

// Props is the input to one rendering unit.
type Props struct {
	ImData imdata.Value
}

// ShouldRender reports whether a unit whose props went from prev to next
// must redraw. Identical or value-equal props never trigger a redraw.
func ShouldRender(prev, next Props) bool {
	return !imdata.Equals(prev.ImData, next.ImData)
}

// BoardProps returns the props of the board unit.
func BoardProps(s *imdata.AppState) Props {
	return Props{ImData: s}
}

// RowProps returns the props of the row unit at idx.
func RowProps(b *imdata.Board, idx int) Props {
	row, err := b.Row(idx)
	if err != nil {
		return Props{ImData: imdata.RowProps{RowIdx: idx}}
	}
	return Props{ImData: imdata.RowProps{Row: row, RowIdx: idx}}
}

// PixelProps returns the props of the cell unit at (row, col).
func PixelProps(b *imdata.Board, row, col int) Props {
	on, _ := b.Get(row, col)
	return Props{ImData: imdata.PixelProps{RowIdx: row, ColIdx: col, On: on}}
}

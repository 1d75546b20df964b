package render

import "github.com/roach88/paint/internal/imdata"

// Cell addresses one pixel unit.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Report lists the units that must redraw.
type Report struct {
	// Board is true when the board unit's props changed.
	Board bool `json:"board"`

	// Rows holds the indexes of rows that must redraw, ascending.
	Rows []int `json:"rows"`

	// Cells holds the pixels that must redraw, in row-major order.
	Cells []Cell `json:"cells"`

	// Checks counts ShouldRender evaluations performed.
	Checks int `json:"checks"`
}

// Dirty reports whether anything must redraw.
func (r Report) Dirty() bool {
	return r.Board || len(r.Rows) > 0 || len(r.Cells) > 0
}

// Evaluate walks the unit tree from prev to next the way a component tree
// re-renders: the board unit is gated first, rows are visited only when
// the board redraws, and pixels only inside rows that redraw.
//
// If the dimensions differ (or prev is nil) there is nothing to diff
// against, so every unit is reported.
func Evaluate(prev, next *imdata.AppState) Report {
	var rep Report

	rep.Checks++
	if !ShouldRender(BoardProps(prev), BoardProps(next)) {
		return rep
	}
	rep.Board = true

	nb := next.Board()
	pb := prev.Board()
	rows, cols := nb.Dimensions()
	pr, pc := pb.Dimensions()
	if pr != rows || pc != cols {
		return everything(rows, cols, rep.Checks)
	}

	for r := 0; r < rows; r++ {
		rep.Checks++
		if !ShouldRender(RowProps(pb, r), RowProps(nb, r)) {
			continue
		}
		rep.Rows = append(rep.Rows, r)

		for c := 0; c < cols; c++ {
			rep.Checks++
			if ShouldRender(PixelProps(pb, r, c), PixelProps(nb, r, c)) {
				rep.Cells = append(rep.Cells, Cell{Row: r, Col: c})
			}
		}
	}
	return rep
}

func everything(rows, cols, checks int) Report {
	rep := Report{Board: true, Checks: checks}
	for r := 0; r < rows; r++ {
		rep.Rows = append(rep.Rows, r)
		for c := 0; c < cols; c++ {
			rep.Cells = append(rep.Cells, Cell{Row: r, Col: c})
		}
	}
	return rep
}

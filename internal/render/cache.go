package render

import (
	"strings"

	"github.com/roach88/paint/internal/imdata"
)

// RowPainter renders one row to a string.
type RowPainter func(idx int, row *imdata.Row) string

// RowCache keeps the last rendered string for every row and repaints only
// the rows the gate reports dirty.
//
// Not safe for concurrent use; it belongs to the rendering driver's loop.
type RowCache struct {
	paint RowPainter
	prev  *imdata.AppState
	lines []string

	// Painted counts RowPainter invocations since construction.
	Painted int
}

// NewRowCache creates a cache that paints with p.
func NewRowCache(p RowPainter) *RowCache {
	return &RowCache{paint: p}
}

// Update brings the cache in line with next and returns the gate report.
// The first call paints every row.
func (c *RowCache) Update(next *imdata.AppState) Report {
	rep := Evaluate(c.prev, next)

	rows, _ := next.Board().Dimensions()
	if len(c.lines) != rows {
		c.lines = make([]string, rows)
	}
	for _, r := range rep.Rows {
		row, err := next.Board().Row(r)
		if err != nil {
			continue
		}
		c.lines[r] = c.paint(r, row)
		c.Painted++
	}

	c.prev = next
	return rep
}

// Invalidate forces the next Update to repaint every row, e.g. after the
// painter's style changed.
func (c *RowCache) Invalidate() {
	c.prev = nil
}

// Lines returns the cached row strings.
func (c *RowCache) Lines() []string {
	return c.lines
}

// String joins the cached rows with newlines.
func (c *RowCache) String() string {
	return strings.Join(c.lines, "\n")
}

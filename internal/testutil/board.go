package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/paint/internal/imdata"
)

// Board builds a board from lines of '#' (on) and '.' (off), the same
// format Board.String produces. Fails the test on ragged input.
//
//	b := testutil.Board(t,
//		"#.",
//		".#",
//	)
func Board(t testing.TB, lines ...string) *imdata.Board {
	t.Helper()

	cells := make([][]bool, len(lines))
	for i, line := range lines {
		cells[i] = make([]bool, len(line))
		for j, ch := range line {
			switch ch {
			case '#':
				cells[i][j] = true
			case '.':
			default:
				t.Fatalf("testutil.Board: unexpected %q at line %d", ch, i)
			}
		}
	}

	b, err := imdata.FromRows(cells)
	require.NoError(t, err)
	return b
}

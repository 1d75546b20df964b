package imdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmpty(t *testing.T, rows, cols int) *Board {
	t.Helper()
	b, err := MakeEmpty(rows, cols)
	require.NoError(t, err)
	return b
}

func TestMakeEmpty(t *testing.T) {
	b := mustEmpty(t, 3, 4)

	rows, cols := b.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 0, b.CountOn())

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			on, err := b.Get(r, c)
			require.NoError(t, err)
			assert.False(t, on)
		}
	}
}

func TestMakeEmptyInvalidDimension(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 3},
		{"negative cols", 3, -2},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := MakeEmpty(tt.rows, tt.cols)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.True(t, IsInvalidDimension(err))
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestGetOutOfRange(t *testing.T) {
	b := mustEmpty(t, 2, 2)

	coords := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, rc := range coords {
		_, err := b.Get(rc[0], rc[1])
		require.Error(t, err, "coordinate %v", rc)
		assert.True(t, IsOutOfRange(err))
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	b := mustEmpty(t, 3, 3)
	before := b.String()

	next, err := b.Toggle(1, 2)
	require.NoError(t, err)

	assert.Equal(t, before, b.String(), "input board must be unchanged")
	on, err := b.Get(1, 2)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = next.Get(1, 2)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, 1, next.CountOn())
}

func TestToggleInvolution(t *testing.T) {
	b, err := FromRows([][]bool{
		{true, false, true},
		{false, false, true},
	})
	require.NoError(t, err)

	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			once, err := b.Toggle(r, c)
			require.NoError(t, err)
			twice, err := once.Toggle(r, c)
			require.NoError(t, err)

			orig, _ := b.Get(r, c)
			got, _ := twice.Get(r, c)
			assert.Equal(t, orig, got)
			assert.True(t, Equals(b, twice), "toggle twice at (%d,%d) should equal original", r, c)
			assert.False(t, Equals(b, once))
		}
	}
}

func TestToggleStructuralSharing(t *testing.T) {
	b := mustEmpty(t, 4, 3)

	next, err := b.Toggle(2, 1)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		oldRow, err := b.Row(i)
		require.NoError(t, err)
		newRow, err := next.Row(i)
		require.NoError(t, err)

		if i == 2 {
			assert.NotSame(t, oldRow, newRow, "toggled row must be a new instance")
		} else {
			assert.Same(t, oldRow, newRow, "row %d must be shared by reference", i)
		}
	}
}

func TestToggleOutOfRange(t *testing.T) {
	b := mustEmpty(t, 2, 2)

	next, err := b.Toggle(5, 5)
	require.Error(t, err)
	assert.Nil(t, next)
	assert.True(t, IsOutOfRange(err))

	var ge *GridError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 5, ge.Row)
	assert.Equal(t, 5, ge.Col)
	assert.Equal(t, 2, ge.Rows)
	assert.Equal(t, 2, ge.Cols)
}

func TestInvert(t *testing.T) {
	b, err := FromRows([][]bool{
		{true, false},
		{false, false},
	})
	require.NoError(t, err)

	inv := b.Invert()
	assert.Equal(t, "#.\n..", b.String())
	assert.Equal(t, ".#\n##", inv.String())
	assert.True(t, Equals(b, inv.Invert()))

	for i := 0; i < 2; i++ {
		oldRow, _ := b.Row(i)
		newRow, _ := inv.Row(i)
		assert.NotSame(t, oldRow, newRow)
	}
}

func TestFromRowsCopiesInput(t *testing.T) {
	src := [][]bool{{false, true}}
	b, err := FromRows(src)
	require.NoError(t, err)

	src[0][0] = true

	on, err := b.Get(0, 0)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]bool{{true, false}, {true}})
	assert.True(t, IsInvalidDimension(err))

	_, err = FromRows(nil)
	assert.True(t, IsInvalidDimension(err))
}

func TestRowCellsIsCopy(t *testing.T) {
	b := mustEmpty(t, 1, 2)
	row, err := b.Row(0)
	require.NoError(t, err)

	cells := row.Cells()
	cells[0] = true

	assert.False(t, row.At(0))
	assert.Equal(t, 2, row.Len())
}

func TestGridErrorMessage(t *testing.T) {
	_, err := MakeEmpty(0, 4)
	assert.EqualError(t, err, "INVALID_DIMENSION: board dimensions must be positive (rows=0, cols=4)")

	b := mustEmpty(t, 2, 2)
	_, err = b.Get(3, 1)
	assert.EqualError(t, err, "OUT_OF_RANGE: cell is outside the board (row=3, col=1, board=2x2)")
}

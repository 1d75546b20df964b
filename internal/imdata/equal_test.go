package imdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSealed(t *testing.T) {
	var _ Value = &Row{}
	var _ Value = &Board{}
	var _ Value = &AppState{}
	var _ Value = RowProps{}
	var _ Value = PixelProps{}
}

func sampleValues(t *testing.T) []Value {
	t.Helper()
	b, err := FromRows([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)
	row, err := b.Row(0)
	require.NoError(t, err)

	return []Value{
		b,
		row,
		NewAppState(b),
		RowProps{Row: row, RowIdx: 0},
		PixelProps{RowIdx: 1, ColIdx: 1, On: true},
		(*Board)(nil),
		nil,
	}
}

func TestEqualsReflexive(t *testing.T) {
	for _, v := range sampleValues(t) {
		assert.True(t, Equals(v, v), "%#v", v)
	}
}

func TestEqualsSymmetric(t *testing.T) {
	values := sampleValues(t)
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, Equals(a, b), Equals(b, a), "a=%#v b=%#v", a, b)
		}
	}
}

func TestEqualsStructuralAcrossInstances(t *testing.T) {
	a, err := FromRows([][]bool{{true, false, true}, {false, false, false}})
	require.NoError(t, err)
	b, err := FromRows([][]bool{{true, false, true}, {false, false, false}})
	require.NoError(t, err)

	require.NotSame(t, a, b)
	assert.True(t, Equals(a, b))
	assert.True(t, Equals(NewAppState(a), NewAppState(b)))

	ra, _ := a.Row(0)
	rb, _ := b.Row(0)
	assert.True(t, Equals(ra, rb))
	assert.True(t, Equals(RowProps{Row: ra, RowIdx: 0}, RowProps{Row: rb, RowIdx: 0}))
}

func TestEqualsDetectsEveryCell(t *testing.T) {
	base := mustEmpty(t, 3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			other, err := mustEmpty(t, 3, 3).Toggle(r, c)
			require.NoError(t, err)
			assert.False(t, Equals(base, other), "cell (%d,%d) differs", r, c)
			assert.False(t, Equals(NewAppState(base), NewAppState(other)))
		}
	}
}

func TestEqualsDimensionMismatch(t *testing.T) {
	assert.False(t, Equals(mustEmpty(t, 2, 3), mustEmpty(t, 3, 2)))
	assert.False(t, Equals(mustEmpty(t, 2, 2), mustEmpty(t, 2, 3)))
}

func TestEqualsDifferentTypes(t *testing.T) {
	b := mustEmpty(t, 1, 1)
	row, _ := b.Row(0)

	assert.False(t, Equals(b, NewAppState(b)))
	assert.False(t, Equals(row, RowProps{Row: row}))
	assert.False(t, Equals(PixelProps{}, RowProps{}))
}

func TestEqualsNil(t *testing.T) {
	b := mustEmpty(t, 1, 1)

	assert.True(t, Equals(nil, nil))
	assert.False(t, Equals(nil, b))
	assert.False(t, Equals(b, nil))
	assert.False(t, Equals((*Board)(nil), b))
	assert.False(t, Equals(NewAppState(nil), NewAppState(b)))
	assert.True(t, Equals(NewAppState(nil), NewAppState(nil)))
	assert.False(t, Equals((*AppState)(nil), NewAppState(b)))
}

func TestEqualsRowPropsIndex(t *testing.T) {
	b := mustEmpty(t, 2, 2)
	r0, _ := b.Row(0)
	r1, _ := b.Row(1)

	assert.True(t, Equals(RowProps{Row: r0, RowIdx: 0}, RowProps{Row: r1, RowIdx: 0}))
	assert.False(t, Equals(RowProps{Row: r0, RowIdx: 0}, RowProps{Row: r0, RowIdx: 1}))
}

func TestEqualsPixelProps(t *testing.T) {
	p := PixelProps{RowIdx: 0, ColIdx: 1, On: true}
	assert.True(t, Equals(p, PixelProps{RowIdx: 0, ColIdx: 1, On: true}))
	assert.False(t, Equals(p, PixelProps{RowIdx: 0, ColIdx: 1, On: false}))
}

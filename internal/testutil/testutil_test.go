package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicClock_NextAndReset(t *testing.T) {
	clock := NewDeterministicClock()
	assert.Equal(t, int64(0), clock.Current())

	assert.Equal(t, int64(1), clock.Next())
	assert.Equal(t, int64(2), clock.Next())
	assert.Equal(t, int64(2), clock.Current())

	clock.Reset()
	assert.Equal(t, int64(0), clock.Current())
	assert.Equal(t, int64(1), clock.Next())
}

func TestDeterministicClock_Origin(t *testing.T) {
	clock := NewDeterministicClockAt(41)
	assert.Equal(t, int64(41), clock.Current())
	assert.Equal(t, int64(42), clock.Next())

	clock.Reset()
	assert.Equal(t, int64(42), clock.Next(), "reset rewinds to the origin, not zero")
}

func TestDeterministicClock_ThreadSafe(t *testing.T) {
	clock := NewDeterministicClock()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				clock.Next()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), clock.Current())
}

func TestFixedSessionGenerator(t *testing.T) {
	g := NewFixedSessionGenerator("session-1")
	assert.Equal(t, "session-1", g.Generate())
	assert.Equal(t, "session-1", g.Generate())

	assert.Equal(t, DefaultSession, NewFixedSessionGenerator("").Generate())
}

func TestBoardLiteral(t *testing.T) {
	b := Board(t,
		"#..",
		".#.",
	)

	rows, cols := b.Dimensions()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, b.CountOn())
	assert.Equal(t, "#..\n.#.", b.String())
}

// Package testutil provides deterministic helpers for paint tests: a
// resettable logical clock, a fixed session token, and board literals.
package testutil

import "sync"

// DeterministicClock hands out journal sequence numbers for tests.
// Reset rewinds it to its origin so a scenario replayed on the same clock
// produces the same journal.
type DeterministicClock struct {
	mu     sync.Mutex
	origin int64
	last   int64
}

// NewDeterministicClock returns a clock whose first Next is 1.
func NewDeterministicClock() *DeterministicClock {
	return NewDeterministicClockAt(0)
}

// NewDeterministicClockAt returns a clock whose first Next is origin+1,
// for tests that append to a journal already holding origin entries.
func NewDeterministicClockAt(origin int64) *DeterministicClock {
	return &DeterministicClock{origin: origin, last: origin}
}

func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last++
	return c.last
}

// Current is the last value Next returned, or the origin.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = c.origin
}

// Package state holds the current board state and the single staged slot
// that the next commit promotes to current.
//
// The store never modifies an AppState. It only swaps which immutable value
// each slot refers to, so any AppState handed out by Current remains valid
// and unchanged for as long as the caller holds it.
package state

import (
	"log/slog"
	"sync"

	"github.com/roach88/paint/internal/imdata"
)

// Store holds the current AppState and at most one staged AppState.
//
// Staged slot state machine:
//
//	empty   --Stage-->  holding
//	holding --Stage-->  holding   (overwrite, last write wins)
//	holding --Commit--> empty     (value becomes current)
//	empty   --Commit--> empty     (no-op)
//
// Thread-safety: all methods are safe for concurrent use. The expected
// model is still a single logical writer (the render/input loop); the mutex
// only preserves stage/commit ordering when the store is shared.
type Store struct {
	mu      sync.Mutex
	current *imdata.AppState
	staged  *imdata.AppState // nil means empty
	version int64
}

// New creates a store whose current state is initial and whose staged slot
// is empty.
func New(initial *imdata.AppState) *Store {
	return &Store{current: initial}
}

// NewEmpty creates a store holding an empty rows x cols board.
func NewEmpty(rows, cols int) (*Store, error) {
	b, err := imdata.MakeEmpty(rows, cols)
	if err != nil {
		return nil, err
	}
	return New(imdata.NewAppState(b)), nil
}

// Current returns the committed state.
func (s *Store) Current() *imdata.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Stage overwrites the staged slot unconditionally.
// A value staged earlier and not yet committed is discarded.
func (s *Store) Stage(next *imdata.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staged != nil {
		slog.Debug("overwriting staged state before commit")
	}
	s.staged = next
}

// Staged returns the staged value and whether the slot is holding one.
func (s *Store) Staged() (*imdata.AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staged, s.staged != nil
}

// Commit promotes the staged value to current and empties the slot.
// Returns false (and changes nothing) if the slot was empty.
func (s *Store) Commit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staged == nil {
		return false
	}
	s.current = s.staged
	s.staged = nil
	s.version++
	return true
}

// Version returns the number of commits applied so far.
func (s *Store) Version() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

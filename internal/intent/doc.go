// Package intent implements the mutating user intents: toggle a cell, reset
// the board, invert the board.
//
// Each operation reads the store's current state, derives a new immutable
// board, and stages it. An operation either stages a complete new value or
// returns an error having staged nothing; there is no partially applied
// intent, because boards are built as return values rather than modified.
//
// The Dispatcher adds sequencing and journalling on top of the bare
// operations for use by the input and rendering drivers.
package intent

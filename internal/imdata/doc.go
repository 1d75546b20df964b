// Package imdata provides the immutable value types the paint board is built from.
//
// This package contains value definitions and pure functions only. All other
// internal packages import imdata; imdata imports nothing internal. This keeps
// the persistent data layer free of any knowledge of staging or rendering.
//
// Key design constraints:
//   - No value is mutated after construction. Every update returns a new value.
//   - Updates share unchanged rows by pointer (structural sharing).
//   - Equality is structural, with a pointer short-circuit (see Equals).
//   - The Value interface is sealed; only types in this package implement it.
package imdata

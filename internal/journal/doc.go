// Package journal provides a SQLite-backed log of dispatched intents.
//
// The journal is an append-only record of what the input driver asked for
// and what happened to it:
//   - toggle, reset and invert intents, with the coordinate where relevant
//   - commits performed by the rendering driver
//   - the outcome of each (staged, rejected, committed, noop)
//
// # Ordering
//
// Every entry carries a seq from the dispatcher's logical clock. All queries
// order by seq ASC, so a listing is identical no matter when it is taken.
//
// # Database Configuration
//
// The application opens the journal at ":memory:". Board state is never
// written here; the journal describes intents, and is discarded with the
// process. Open accepts a file path so tests and tools can inspect a log
// with the sqlite3 shell.
package journal

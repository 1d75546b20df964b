// Package harness runs paint scenarios: a starting board, a sequence of
// intents and commits, and assertions on the result.
//
// Each scenario runs against a fresh store, a dispatcher with a
// deterministic clock and fixed session token, and an in-memory journal, so
// the same scenario always produces the same trace.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: toggle_then_commit
//	description: "A toggle is invisible until commit"
//	rows: 2
//	cols: 2
//	steps:
//	  - op: toggle
//	    row: 0
//	    col: 1
//	  - op: commit
//	  - op: toggle
//	    row: 5
//	    col: 5
//	    expect_error: out_of_range
//	assertions:
//	  - type: board
//	    board: [".#", ".."]
//	  - type: dirty_rows
//	    rows: [0]
//
// Instead of rows/cols, a scenario may give an initial board literal:
//
//	initial:
//	  - "#."
//	  - ".."
//
// # Golden Files
//
// RunWithGolden compares the formatted trace against
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness

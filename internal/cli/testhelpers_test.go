package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// harnessScenarios is the scenario corpus shared with the harness tests.
var harnessScenarios = filepath.Join("..", "harness", "testdata", "scenarios")

const passingScenario = `name: lit_corner
description: "Toggling a corner lights it after commit"
rows: 2
cols: 2
steps:
  - op: toggle
    row: 1
    col: 1
  - op: commit
assertions:
  - type: board
    board:
      - ".."
      - ".#"
`

const failingScenario = `name: wrong_expectation
description: "Expects a toggled cell to stay off"
rows: 2
cols: 2
steps:
  - op: toggle
    row: 0
    col: 0
  - op: commit
assertions:
  - type: cell
    row: 0
    col: 0
    on: false
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

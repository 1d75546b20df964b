package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/toggle_then_commit.yaml")
	require.NoError(t, err)

	assert.Equal(t, "toggle_then_commit", scenario.Name)
	assert.Equal(t, 2, scenario.Rows)
	require.Len(t, scenario.Steps, 2)
	assert.Equal(t, OpToggle, scenario.Steps[0].Op)
	assert.Equal(t, 1, *scenario.Steps[0].Col)
	require.Len(t, scenario.Assertions, 4)
	assert.True(t, *scenario.Assertions[0].On)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarioUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	content := `
name: typo
description: "typo"
rows: 1
cols: 1
step:
  - op: commit
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\nrows: 1\ncols: 1\nsteps: [{op: commit}]\nassertions: [{type: empty}]",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: n\nrows: 1\ncols: 1\nsteps: [{op: commit}]\nassertions: [{type: empty}]",
			wantErr: "description is required",
		},
		{
			name:    "no board",
			yaml:    "name: n\ndescription: d\nsteps: [{op: commit}]\nassertions: [{type: empty}]",
			wantErr: "rows and cols must be positive",
		},
		{
			name:    "no steps",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nassertions: [{type: empty}]",
			wantErr: "steps list is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: commit}]",
			wantErr: "assertions list is required",
		},
		{
			name:    "toggle without coordinate",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: toggle, row: 0}]\nassertions: [{type: empty}]",
			wantErr: "toggle requires row and col",
		},
		{
			name:    "reset with coordinate",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: reset, row: 0}]\nassertions: [{type: empty}]",
			wantErr: "reset takes no row or col",
		},
		{
			name:    "unknown op",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: paint}]\nassertions: [{type: empty}]",
			wantErr: `unknown op "paint"`,
		},
		{
			name:    "unknown expect_error",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: commit, expect_error: boom}]\nassertions: [{type: empty}]",
			wantErr: `unknown expect_error "boom"`,
		},
		{
			name:    "cell assertion incomplete",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: commit}]\nassertions: [{type: cell, row: 0}]",
			wantErr: "cell requires row, col and on",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: n\ndescription: d\nrows: 1\ncols: 1\nsteps: [{op: commit}]\nassertions: [{type: vibes}]",
			wantErr: `unknown assertion type "vibes"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseScenarioInitialBoard(t *testing.T) {
	data := []byte(`
name: initial
description: "initial board instead of size"
initial:
  - "#."
  - ".#"
steps:
  - op: commit
assertions:
  - type: on_count
    count: 2
`)
	scenario, err := ParseScenario(data)
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

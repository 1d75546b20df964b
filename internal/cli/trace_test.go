package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lit_corner.yaml", passingScenario)

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	want := `scenario: lit_corner
session: test-session-default
[1] toggle (1,1) staged on=1
[2] commit committed on=1 dirty=[1]
final:
..
.#
staged: false
`
	assert.Equal(t, want, buf.String())
}

func TestTraceJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lit_corner.yaml", passingScenario)

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var response struct {
		Status string      `json:"status"`
		Data   TraceOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "lit_corner", response.Data.Scenario)
	assert.True(t, response.Data.Pass)
	assert.Equal(t, []string{"..", ".#"}, response.Data.Final)

	require.Len(t, response.Data.Journal, 2)
	assert.Equal(t, "toggle", response.Data.Journal[0].Kind)
	assert.Equal(t, "staged", response.Data.Journal[0].Outcome)
	assert.Equal(t, "commit", response.Data.Journal[1].Kind)
	assert.Equal(t, "committed", response.Data.Journal[1].Outcome)
}

func TestTraceFailingScenario(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wrong.yaml", failingScenario)

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "final:\n#.\n..")
	assert.Contains(t, buf.String(), "✗ assertions[0]")
}

func TestTraceMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var response CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, CodeTraceLoad, response.Error.Code)
}

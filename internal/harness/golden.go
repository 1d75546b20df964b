package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/paint/internal/journal"
	"github.com/roach88/paint/internal/testutil"
)

// FormatTrace renders a result as the line-oriented text stored in golden
// files:
//
//	scenario: toggle_then_commit
//	session: test-session-default
//	[1] toggle (0,1) staged on=1
//	[2] commit committed on=1 dirty=[0]
//	final:
//	.#
//	..
//	staged: false
func FormatTrace(scenario *Scenario, r *Result) string {
	session := scenario.Session
	if session == "" {
		session = testutil.DefaultSession
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "scenario: %s\n", scenario.Name)
	fmt.Fprintf(&sb, "session: %s\n", session)
	for _, ev := range r.Trace {
		fmt.Fprintf(&sb, "[%d] %s", ev.Seq, ev.Op)
		if ev.Row != nil && ev.Col != nil {
			fmt.Fprintf(&sb, " (%d,%d)", *ev.Row, *ev.Col)
		}
		fmt.Fprintf(&sb, " %s", ev.Outcome)
		if ev.Outcome != journal.OutcomeRejected {
			fmt.Fprintf(&sb, " on=%d", ev.OnCount)
		}
		if ev.Outcome == journal.OutcomeCommitted {
			fmt.Fprintf(&sb, " dirty=%v", ev.Dirty)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("final:\n")
	sb.WriteString(r.Final.String())
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "staged: %t\n", r.Staged)
	return sb.String()
}

// RunWithGolden executes a scenario and compares its formatted trace with
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario could not run. Trace mismatches fail t via
// goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario, result)
	return result, nil
}

// AssertGolden compares an existing result against the scenario's golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(FormatTrace(scenario, result)))
}

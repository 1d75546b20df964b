package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/paint/internal/harness"
	"github.com/roach88/paint/internal/journal"
)

// TraceOutput is the JSON payload of the trace command.
type TraceOutput struct {
	Scenario string               `json:"scenario"`
	Pass     bool                 `json:"pass"`
	Trace    []harness.TraceEvent `json:"trace"`
	Journal  []journal.Entry      `json:"journal"`
	Final    []string             `json:"final"`
	Staged   bool                 `json:"staged"`
	Errors   []string             `json:"errors,omitempty"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <scenario.yaml>",
		Short: "Run one scenario and print its intent journal",
		Long: `Run a single scenario and print every step with its sequence number,
outcome, lit-cell count and, for commits, the rows the render gate
marked dirty. The final committed board is printed last.

The text format is the same one stored in golden files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, rootOpts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func runTrace(cmd *cobra.Command, opts *RootOptions, path string) error {
	f := opts.formatter(cmd)

	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return f.Fail(ExitCommandError, CodeTraceLoad, "failed to load scenario", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := harness.New(harness.WithLogger(logger)).Run(ctx, scenario)
	if err != nil {
		return f.Fail(ExitCommandError, CodeTraceRun, "failed to run scenario", err)
	}

	if opts.Format == "json" {
		out := TraceOutput{
			Scenario: scenario.Name,
			Pass:     r.Pass,
			Trace:    r.Trace,
			Journal:  r.Journal,
			Final:    boardLines(r),
			Staged:   r.Staged,
			Errors:   r.Errors,
		}
		if err := f.Success(out); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), harness.FormatTrace(scenario, r))
		for _, e := range r.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", e)
		}
	}

	if !r.Pass {
		return NewExitError(ExitFailure, fmt.Sprintf("scenario %s failed", scenario.Name))
	}
	return nil
}

func boardLines(r *harness.Result) []string {
	return strings.Split(r.Final.String(), "\n")
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/paint/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter    string
	GoldenDir string
	Update    bool
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run scenario files against the canvas",
		Long: `Run YAML scenario files and report failures.

Each scenario drives a fresh board through toggle, reset, invert and commit
steps, then checks its assertions. With --golden, each scenario's trace is
also compared against <golden-dir>/<name>.golden; --update rewrites those
files instead.

Exit codes:
  0 - all scenarios passed
  1 - one or more scenarios failed
  2 - command error (missing directory, unreadable scenario, etc.)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, opts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run scenarios whose file name matches this glob")
	cmd.Flags().StringVar(&opts.GoldenDir, "golden", "", "compare traces against golden files in this directory")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "rewrite golden files instead of comparing (requires --golden)")

	return cmd
}

// ScenarioResult holds the result of a single scenario run.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the aggregate results of a test run.
type TestResult struct {
	Total     int              `json:"total"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Scenarios []ScenarioResult `json:"scenarios"`
}

func runTest(cmd *cobra.Command, opts *TestOptions, dir string) error {
	f := opts.formatter(cmd)

	if opts.Update && opts.GoldenDir == "" {
		return NewExitError(ExitCommandError, "--update requires --golden")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return f.Fail(ExitCommandError, CodeScenarioDir, "scenarios directory not found", err)
	}
	if !info.IsDir() {
		return f.Fail(ExitCommandError, CodeScenarioDir, fmt.Sprintf("not a directory: %s", dir), nil)
	}

	files, err := findScenarioFiles(dir, opts.Filter)
	if err != nil {
		return f.Fail(ExitCommandError, CodeScenarioSearch, "failed to find scenarios", err)
	}
	if len(files) == 0 {
		if opts.Format == "json" {
			return f.Success(TestResult{Scenarios: []ScenarioResult{}})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "No scenarios found in %s\n", dir)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	h := harness.New(harness.WithLogger(logger))

	result := TestResult{Scenarios: make([]ScenarioResult, 0, len(files))}
	for _, file := range files {
		f.VerboseLog("running %s", file)
		sr, err := runScenarioFile(cmd.Context(), h, opts, file)
		if err != nil {
			return f.Fail(ExitCommandError, CodeScenarioRun, fmt.Sprintf("failed to run %s", file), err)
		}
		result.Total++
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Scenarios = append(result.Scenarios, sr)
	}

	if opts.Format == "json" {
		if err := f.Success(result); err != nil {
			return err
		}
	} else {
		printTestResult(cmd.OutOrStdout(), result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

func runScenarioFile(ctx context.Context, h *harness.Harness, opts *TestOptions, file string) (ScenarioResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return ScenarioResult{}, err
	}

	r, err := h.Run(ctx, scenario)
	if err != nil {
		return ScenarioResult{}, err
	}

	if opts.GoldenDir != "" {
		if err := checkGolden(opts, scenario, r); err != nil {
			r.AddError(err.Error())
		}
	}

	return ScenarioResult{
		Name:   scenario.Name,
		File:   file,
		Pass:   r.Pass,
		Errors: r.Errors,
	}, nil
}

// checkGolden compares or rewrites the scenario's golden trace.
func checkGolden(opts *TestOptions, scenario *harness.Scenario, r *harness.Result) error {
	path := filepath.Join(opts.GoldenDir, scenario.Name+".golden")
	got := harness.FormatTrace(scenario, r)

	if opts.Update {
		if err := os.MkdirAll(opts.GoldenDir, 0o755); err != nil {
			return fmt.Errorf("create golden dir: %w", err)
		}
		return os.WriteFile(path, []byte(got), 0o644)
	}

	want, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("golden %s: %w", path, err)
	}
	if string(want) != got {
		return fmt.Errorf("golden %s: trace differs", path)
	}
	return nil
}

func printTestResult(w io.Writer, result TestResult) {
	for _, s := range result.Scenarios {
		if s.Pass {
			fmt.Fprintf(w, "✓ %s\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "    %s\n", e)
		}
	}
	fmt.Fprintf(w, "\n%d scenarios, %d passed, %d failed\n", result.Total, result.Passed, result.Failed)
}

// findScenarioFiles finds all YAML scenario files in dir, optionally
// filtered by a glob pattern matched against the base name.
func findScenarioFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			matched, err := filepath.Match(filter, filepath.Base(path))
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

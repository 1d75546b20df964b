package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/roach88/paint/internal/config"
	"github.com/roach88/paint/internal/intent"
	"github.com/roach88/paint/internal/journal"
	"github.com/roach88/paint/internal/state"
	"github.com/roach88/paint/internal/tui"
)

// PaintOptions holds flags for the paint command.
type PaintOptions struct {
	*RootOptions
	Rows int
	Cols int
}

// PaintSummary is printed after the interactive session ends.
type PaintSummary struct {
	Session   string `json:"session"`
	Commits   int64  `json:"commits"`
	Intents   int    `json:"intents"`
	Rejected  int    `json:"rejected"`
	OnCount   int    `json:"on_count"`
	BoardRows int    `json:"rows"`
	BoardCols int    `json:"cols"`
}

func (s PaintSummary) String() string {
	return fmt.Sprintf("session %s: %d commits, %d intents (%d rejected), %d of %d cells lit",
		s.Session, s.Commits, s.Intents, s.Rejected, s.OnCount, s.BoardRows*s.BoardCols)
}

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runProgram runs the interactive canvas. Replaced in tests.
var runProgram = tui.Run

// bindPaintFlags registers the canvas flags on the root command, which
// opens the canvas when run without a subcommand.
func bindPaintFlags(cmd *cobra.Command, opts *PaintOptions) {
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "board rows (overrides config)")
	cmd.Flags().IntVar(&opts.Cols, "cols", 0, "board columns (overrides config)")
}

func runPaint(cmd *cobra.Command, opts *PaintOptions) error {
	configureLogging(opts.RootOptions)
	f := opts.formatter(cmd)

	cfg, err := paintConfig(opts)
	if err != nil {
		return f.Fail(ExitCommandError, CodeInvalidConfig, "invalid config", err)
	}

	if !isTerminal() {
		return f.Fail(ExitCommandError, CodeNoTerminal, "paint needs an interactive terminal", nil)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The journal lives only for this process; the board is never saved.
	j, err := journal.Open(journal.MemoryPath)
	if err != nil {
		return f.Fail(ExitCommandError, CodeJournal, "failed to open journal", err)
	}
	defer j.Close()

	store, err := state.NewEmpty(cfg.Rows, cfg.Cols)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create board", err)
	}
	d := intent.NewDispatcher(store,
		intent.WithSessionGenerator(intent.UUIDv7Generator{}),
		intent.WithRecorder(j),
		intent.WithLogger(slog.Default()),
	)

	slog.Info("canvas opened", "session", d.Session(), "rows", cfg.Rows, "cols", cfg.Cols, "fps", cfg.FPS)
	if err := runProgram(ctx, cfg, d); err != nil {
		return f.Fail(ExitFailure, CodeCanvas, "canvas exited with error", err)
	}

	summary, err := summarize(ctx, j, d)
	if err != nil {
		return f.Fail(ExitFailure, CodeJournal, "failed to read journal", err)
	}
	return f.Success(summary)
}

// paintConfig loads the config and applies the --rows/--cols overrides.
func paintConfig(opts *PaintOptions) (config.Config, error) {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Rows == 0 && opts.Cols == 0 {
		return cfg, nil
	}
	if opts.Rows != 0 {
		cfg.Rows = opts.Rows
	}
	if opts.Cols != 0 {
		cfg.Cols = opts.Cols
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func summarize(ctx context.Context, j *journal.Journal, d *intent.Dispatcher) (PaintSummary, error) {
	entries, err := j.List(ctx, d.Session())
	if err != nil {
		return PaintSummary{}, err
	}
	rejected, err := j.Count(ctx, journal.OutcomeRejected)
	if err != nil {
		return PaintSummary{}, err
	}

	board := d.Store().Current().Board()
	rows, cols := board.Dimensions()
	return PaintSummary{
		Session:   d.Session(),
		Commits:   d.Store().Version(),
		Intents:   len(entries),
		Rejected:  rejected,
		OnCount:   board.CountOn(),
		BoardRows: rows,
		BoardCols: cols,
	}, nil
}

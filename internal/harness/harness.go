package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/paint/internal/imdata"
	"github.com/roach88/paint/internal/intent"
	"github.com/roach88/paint/internal/journal"
	"github.com/roach88/paint/internal/render"
	"github.com/roach88/paint/internal/state"
	"github.com/roach88/paint/internal/testutil"
)

// Harness runs scenarios with a deterministic clock and session token.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger used by the dispatcher. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Build the starting board and a fresh store
//  2. Open an in-memory journal and a deterministic dispatcher
//  3. Execute steps in order; commits are gated through render.Evaluate
//  4. Read back the journal and evaluate assertions
//
// A returned error means the scenario could not run at all. Step and
// assertion failures are reported in Result.Errors with Pass false.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	board, err := startingBoard(scenario)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	j, err := journal.Open(journal.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	defer j.Close()

	clock := testutil.NewDeterministicClock()
	store := state.New(imdata.NewAppState(board))
	d := intent.NewDispatcher(store,
		intent.WithClock(clock),
		intent.WithSessionGenerator(testutil.NewFixedSessionGenerator(scenario.Session)),
		intent.WithRecorder(j),
		intent.WithLogger(h.logger),
	)

	result := NewResult()
	for i, step := range scenario.Steps {
		ev, err := h.runStep(ctx, d, step)
		ev.Seq = clock.Current()
		result.Trace = append(result.Trace, ev)

		switch {
		case err != nil && step.ExpectError == "":
			result.AddError(fmt.Sprintf("steps[%d] %s: unexpected error: %v", i, step.Op, err))
		case err == nil && step.ExpectError != "":
			result.AddError(fmt.Sprintf("steps[%d] %s: expected %s error, got none", i, step.Op, step.ExpectError))
		case err != nil && step.ExpectError == ExpectOutOfRange && !imdata.IsOutOfRange(err):
			result.AddError(fmt.Sprintf("steps[%d] %s: expected out_of_range, got %v", i, step.Op, err))
		}

		if ev.Op == OpCommit && ev.Outcome == journal.OutcomeCommitted {
			result.LastDirty = ev.Dirty
		}
	}

	result.Final = store.Current().Board()
	_, result.Staged = store.Staged()

	result.Journal, err = j.List(ctx, d.Session())
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	for i, a := range scenario.Assertions {
		if err := evaluateAssertion(ctx, a, result, j); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	return result, nil
}

func (h *Harness) runStep(ctx context.Context, d *intent.Dispatcher, step Step) (TraceEvent, error) {
	ev := TraceEvent{Op: step.Op}

	switch step.Op {
	case OpToggle:
		ev.Row, ev.Col = step.Row, step.Col
		if err := d.Toggle(ctx, *step.Row, *step.Col); err != nil {
			ev.Outcome = journal.OutcomeRejected
			return ev, err
		}
		ev.Outcome = journal.OutcomeStaged
		ev.OnCount = stagedOnCount(d.Store())

	case OpReset:
		d.Reset(ctx)
		ev.Outcome = journal.OutcomeStaged
		ev.OnCount = stagedOnCount(d.Store())

	case OpInvert:
		d.Invert(ctx)
		ev.Outcome = journal.OutcomeStaged
		ev.OnCount = stagedOnCount(d.Store())

	case OpCommit:
		prev := d.Store().Current()
		if !d.CommitVerbose(ctx) {
			ev.Outcome = journal.OutcomeNoop
			ev.OnCount = prev.Board().CountOn()
			return ev, nil
		}
		next := d.Store().Current()
		ev.Outcome = journal.OutcomeCommitted
		ev.OnCount = next.Board().CountOn()
		ev.Dirty = render.Evaluate(prev, next).Rows

	default:
		return ev, fmt.Errorf("unknown op %q", step.Op)
	}
	return ev, nil
}

func stagedOnCount(s *state.Store) int {
	staged, ok := s.Staged()
	if !ok {
		return 0
	}
	return staged.Board().CountOn()
}

func startingBoard(s *Scenario) (*imdata.Board, error) {
	if len(s.Initial) == 0 {
		return imdata.MakeEmpty(s.Rows, s.Cols)
	}
	return parseBoard(s.Initial)
}

// parseBoard converts '#'/'.' lines into a board.
func parseBoard(lines []string) (*imdata.Board, error) {
	cells := make([][]bool, len(lines))
	for i, line := range lines {
		cells[i] = make([]bool, 0, len(line))
		for _, ch := range strings.TrimSpace(line) {
			switch ch {
			case '#':
				cells[i] = append(cells[i], true)
			case '.':
				cells[i] = append(cells[i], false)
			default:
				return nil, fmt.Errorf("board line %d: unexpected %q", i, ch)
			}
		}
	}
	return imdata.FromRows(cells)
}

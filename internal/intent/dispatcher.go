package intent

import (
	"context"
	"log/slog"

	"github.com/roach88/paint/internal/journal"
	"github.com/roach88/paint/internal/state"
)

// Sequencer hands out strictly increasing sequence numbers.
// Implemented by Clock (production) and testutil.DeterministicClock (tests).
type Sequencer interface {
	Next() int64
}

// Recorder receives one entry per dispatched intent.
// Implemented by *journal.Journal.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Dispatcher is the single entry point the input and rendering drivers use
// to change the store.
//
// Every call is stamped with the next seq, logged, and recorded. Recording
// failures are logged and otherwise ignored: the journal describes what
// happened, it never decides whether it happens.
//
// Thread-safety: the Dispatcher adds no locking of its own; the store
// serialises stage and commit.
type Dispatcher struct {
	store    *state.Store
	clock    Sequencer
	session  string
	recorder Recorder
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherConfig)

type dispatcherConfig struct {
	clock    Sequencer
	sessions SessionGenerator
	recorder Recorder
	logger   *slog.Logger
}

// WithClock sets the sequencer. Default: a fresh Clock.
func WithClock(c Sequencer) DispatcherOption {
	return func(cfg *dispatcherConfig) { cfg.clock = c }
}

// WithSessionGenerator sets the session token source. Default: UUIDv7Generator.
func WithSessionGenerator(g SessionGenerator) DispatcherOption {
	return func(cfg *dispatcherConfig) { cfg.sessions = g }
}

// WithRecorder sets where entries are recorded. Default: nowhere.
func WithRecorder(r Recorder) DispatcherOption {
	return func(cfg *dispatcherConfig) { cfg.recorder = r }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(cfg *dispatcherConfig) { cfg.logger = l }
}

// NewDispatcher creates a dispatcher over s. The session token is generated
// once, here.
func NewDispatcher(s *state.Store, opts ...DispatcherOption) *Dispatcher {
	cfg := dispatcherConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = NewClock()
	}
	if cfg.sessions == nil {
		cfg.sessions = UUIDv7Generator{}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &Dispatcher{
		store:    s,
		clock:    cfg.clock,
		session:  cfg.sessions.Generate(),
		recorder: cfg.recorder,
		logger:   cfg.logger,
	}
}

// Store returns the store the dispatcher writes to.
func (d *Dispatcher) Store() *state.Store {
	return d.store
}

// Session returns this dispatcher's session token.
func (d *Dispatcher) Session() string {
	return d.session
}

// Toggle dispatches a toggle of (row, col).
// Returns the OUT_OF_RANGE error unchanged (wrapped) if the cell is off the board.
func (d *Dispatcher) Toggle(ctx context.Context, row, col int) error {
	e := journal.Entry{
		Seq:     d.clock.Next(),
		Session: d.session,
		Kind:    journal.KindToggle,
		Row:     &row,
		Col:     &col,
	}

	if err := ToggleCell(d.store, row, col); err != nil {
		e.Outcome = journal.OutcomeRejected
		e.Detail = err.Error()
		d.logger.Debug("toggle rejected", "seq", e.Seq, "row", row, "col", col, "error", err)
		d.record(ctx, e)
		return err
	}

	e.Outcome = journal.OutcomeStaged
	e.OnCount = d.stagedOnCount()
	d.logger.Debug("toggle staged", "seq", e.Seq, "row", row, "col", col)
	d.record(ctx, e)
	return nil
}

// Reset dispatches a reset to an empty board.
func (d *Dispatcher) Reset(ctx context.Context) {
	e := journal.Entry{
		Seq:     d.clock.Next(),
		Session: d.session,
		Kind:    journal.KindReset,
	}
	Reset(d.store)
	e.Outcome = journal.OutcomeStaged
	d.logger.Debug("reset staged", "seq", e.Seq)
	d.record(ctx, e)
}

// Invert dispatches an inversion of every cell.
func (d *Dispatcher) Invert(ctx context.Context) {
	e := journal.Entry{
		Seq:     d.clock.Next(),
		Session: d.session,
		Kind:    journal.KindInvert,
	}
	Invert(d.store)
	e.Outcome = journal.OutcomeStaged
	e.OnCount = d.stagedOnCount()
	d.logger.Debug("invert staged", "seq", e.Seq)
	d.record(ctx, e)
}

// Commit promotes the staged state. Called by the rendering driver once per
// tick. Returns whether a commit occurred.
//
// Empty-slot commits are not journalled; a driver ticking at frame rate
// would otherwise flood the log with no-ops. Use CommitVerbose when every
// tick must appear.
func (d *Dispatcher) Commit(ctx context.Context) bool {
	return d.commit(ctx, false)
}

// CommitVerbose is Commit, but records no-op commits as well.
func (d *Dispatcher) CommitVerbose(ctx context.Context) bool {
	return d.commit(ctx, true)
}

func (d *Dispatcher) commit(ctx context.Context, recordNoop bool) bool {
	if !d.store.Commit() {
		if recordNoop {
			d.record(ctx, journal.Entry{
				Seq:     d.clock.Next(),
				Session: d.session,
				Kind:    journal.KindCommit,
				Outcome: journal.OutcomeNoop,
			})
		}
		return false
	}

	e := journal.Entry{
		Seq:     d.clock.Next(),
		Session: d.session,
		Kind:    journal.KindCommit,
		Outcome: journal.OutcomeCommitted,
		OnCount: d.store.Current().Board().CountOn(),
	}
	d.logger.Debug("state committed", "seq", e.Seq, "on", e.OnCount)
	d.record(ctx, e)
	return true
}

func (d *Dispatcher) stagedOnCount() int {
	staged, ok := d.store.Staged()
	if !ok {
		return 0
	}
	return staged.Board().CountOn()
}

func (d *Dispatcher) record(ctx context.Context, e journal.Entry) {
	if d.recorder == nil {
		return
	}
	if err := d.recorder.Record(ctx, e); err != nil {
		d.logger.Error("failed to record intent",
			"seq", e.Seq,
			"kind", e.Kind,
			"outcome", e.Outcome,
			"error", err,
		)
	}
}

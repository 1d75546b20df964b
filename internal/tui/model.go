// Package tui is the interactive paint driver, built on bubbletea.
//
// The model plays both external roles around the core: it is the input
// driver (keys become intents through the dispatcher) and the rendering
// driver (every frame tick commits the staged state, then repaints only the
// rows the render gate reports dirty).
//
// # Thread Safety
//
// The model is used from within the bubbletea event loop only.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/paint/internal/config"
	"github.com/roach88/paint/internal/imdata"
	"github.com/roach88/paint/internal/intent"
	"github.com/roach88/paint/internal/render"
)

// tickMsg drives one frame: commit, then gated repaint.
type tickMsg time.Time

// Model is the bubbletea model for the paint canvas.
type Model struct {
	ctx context.Context
	cfg config.Config
	d   *intent.Dispatcher

	cursorRow int
	cursorCol int
	ink       string

	painter *painter
	cache   *render.RowCache

	// last is the gate report of the most recent frame that redrew anything.
	last   render.Report
	frames int

	keys     keyMap
	help     help.Model
	err      error
	quitting bool
}

// NewModel creates a model painting through d with the given config.
// The first frame paints every row.
func NewModel(ctx context.Context, cfg config.Config, d *intent.Dispatcher) Model {
	m := Model{
		ctx:  ctx,
		cfg:  cfg,
		d:    d,
		ink:  cfg.Ink,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	p := newPainter(cfg.OnGlyph, cfg.OffGlyph, m.ink)
	m.painter = &p
	m.cache = render.NewRowCache(func(_ int, row *imdata.Row) string {
		return p.row(row, -1)
	})
	m.last = m.cache.Update(d.Store().Current())
	return m
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m = m.frame()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// frame commits the staged state and repaints the dirty rows.
func (m Model) frame() Model {
	m.frames++
	if !m.d.Commit(m.ctx) {
		return m
	}
	if rep := m.cache.Update(m.d.Store().Current()); rep.Dirty() {
		m.last = rep
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows, cols := m.d.Store().Current().Board().Dimensions()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursorRow = max(m.cursorRow-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursorRow = min(m.cursorRow+1, rows-1)
	case key.Matches(msg, m.keys.Left):
		m.cursorCol = max(m.cursorCol-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursorCol = min(m.cursorCol+1, cols-1)

	case key.Matches(msg, m.keys.Toggle):
		m.err = m.d.Toggle(m.ctx, m.cursorRow, m.cursorCol)
	case key.Matches(msg, m.keys.Reset):
		m.d.Reset(m.ctx)
		m.err = nil
	case key.Matches(msg, m.keys.Invert):
		m.d.Invert(m.ctx)
		m.err = nil

	case key.Matches(msg, m.keys.Ink):
		m.ink = m.cfg.NextInk(m.ink)
		*m.painter = newPainter(m.cfg.OnGlyph, m.cfg.OffGlyph, m.ink)
		m.cache.Invalidate()
		m.last = m.cache.Update(m.d.Store().Current())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, len(m.cache.Lines()))
	copy(lines, m.cache.Lines())
	if row, err := m.d.Store().Current().Board().Row(m.cursorRow); err == nil && m.cursorRow < len(lines) {
		lines[m.cursorRow] = m.painter.row(row, m.cursorCol)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Paint"))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(palette(m.cfg.Palette, m.ink))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status() string {
	s := fmt.Sprintf("cursor (%d,%d)  commits %d  last redraw rows %v  painted %d",
		m.cursorRow, m.cursorCol, m.d.Store().Version(), m.last.Rows, m.cache.Painted)
	if _, staged := m.d.Store().Staged(); staged {
		s += "  [pending]"
	}
	return s
}

// Run starts the interactive program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, d *intent.Dispatcher, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(ctx, cfg, d), opts...)
	_, err := p.Run()
	return err
}

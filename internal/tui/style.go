package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/paint/internal/imdata"
)

// colours maps palette names to terminal colours. Names not listed render
// as bright white.
var colours = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("9"),
	"yellow":  lipgloss.Color("11"),
	"purple":  lipgloss.Color("93"),
	"blue":    lipgloss.Color("12"),
	"green":   lipgloss.Color("10"),
	"cyan":    lipgloss.Color("14"),
	"magenta": lipgloss.Color("13"),
	"orange":  lipgloss.Color("208"),
	"grey":    lipgloss.Color("245"),
}

func colourFor(name string) lipgloss.Color {
	if c, ok := colours[name]; ok {
		return c
	}
	return lipgloss.Color("15")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// painter renders rows with the configured glyphs and the current ink.
type painter struct {
	onGlyph  string
	offGlyph string
	on       lipgloss.Style
}

func newPainter(onGlyph, offGlyph, ink string) painter {
	return painter{
		onGlyph:  onGlyph,
		offGlyph: offGlyph,
		on:       lipgloss.NewStyle().Foreground(colourFor(ink)),
	}
}

// row renders a row. cursorCol < 0 means no cursor in this row.
func (p painter) row(r *imdata.Row, cursorCol int) string {
	var sb strings.Builder
	for c := 0; c < r.Len(); c++ {
		cell := p.cell(r.At(c))
		if c == cursorCol {
			cell = cursorStyle.Render(cell)
		}
		sb.WriteString(cell)
	}
	return sb.String()
}

func (p painter) cell(on bool) string {
	if on {
		return p.on.Render(p.onGlyph)
	}
	return offStyle.Render(p.offGlyph)
}

// palette renders the colour swatches with the current ink marked.
func palette(names []string, ink string) string {
	swatches := make([]string, len(names))
	for i, name := range names {
		label := " " + name + " "
		if name == ink {
			label = "[" + name + "]"
		}
		swatches[i] = lipgloss.NewStyle().Foreground(colourFor(name)).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}

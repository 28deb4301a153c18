package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/priyankc/mentora/internal/ui/theme"
)

const (
	barFilledRune = '█'
	barEmptyRune  = '░'
	minBarCells   = 4
)

// ProgressBar renders a labeled horizontal bar for score and completion
// displays. Percent is in [0, 1].
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar into a single line no wider than p.Width.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // room for "  100%"
	}

	cells := p.Width - reserved
	if cells < minBarCells {
		cells = minBarCells
	}

	pct := min(max(p.Percent, 0), 1)
	filled := int(pct * float64(cells))

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat(string(barFilledRune), filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat(string(barEmptyRune), cells-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100))))
	}

	return b.String()
}

package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyankc/mentora/internal/ui/theme"
)

// Choice is an option picker for one quiz question. Unlike a graded
// selector it knows nothing about correctness while answering; the chosen
// option is only highlighted, and grading results are rendered separately
// once feedback exists.
type Choice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 until an option is picked
}

// NewChoice creates a choice picker for a question.
func NewChoice(question string, options []string) Choice {
	return Choice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// Answered reports whether an option has been picked.
func (c Choice) Answered() bool {
	return c.Chosen >= 0
}

// Value returns the chosen option text, or "" when unanswered.
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the question with its options.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		marker := " "
		if i == c.Chosen {
			marker = "●"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

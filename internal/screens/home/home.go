package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyankc/mentora/internal/orchestra"
	"github.com/priyankc/mentora/internal/router"
	"github.com/priyankc/mentora/internal/screen"
	"github.com/priyankc/mentora/internal/screens/journey"
	"github.com/priyankc/mentora/internal/store"
	"github.com/priyankc/mentora/internal/ui/components"
	"github.com/priyankc/mentora/internal/ui/layout"
	"github.com/priyankc/mentora/internal/ui/theme"
)

const banner = `
  __  __            _
 |  \/  | ___ _ __ | |_ ___  _ __ __ _
 | |\/| |/ _ \ '_ \| __/ _ \| '__/ _' |
 | |  | |  __/ | | | || (_) | | | (_| |
 |_|  |_|\___|_| |_|\__\___/|_|  \__,_|
`

// HomeScreen asks for a learning topic and shows past progress.
type HomeScreen struct {
	ctrl   *orchestra.Controller
	events store.EventRepo

	input  components.TextInput
	stats  *store.JourneyStats
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. events may be nil; the stats line is then
// omitted.
func New(ctrl *orchestra.Controller, events store.EventRepo) *HomeScreen {
	s := &HomeScreen{
		ctrl:   ctrl,
		events: events,
		input:  components.NewTextInput("What do you want to learn today?", 120),
	}
	if events != nil {
		if stats, err := events.JourneyStats(context.Background()); err == nil {
			s.stats = &stats
		}
	}
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start journey"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		topic := strings.TrimSpace(s.input.Value())
		if topic == "" {
			s.errMsg = "Please enter a topic first."
			return s, nil
		}
		s.errMsg = ""
		next := journey.New(s.ctrl, s.events, topic)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(banner))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Your personal AI learning orchestra"))
	b.WriteString("\n\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Topic: " + s.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
		b.WriteString("\n\n")
	}

	if s.stats != nil && s.stats.JourneysStarted > 0 {
		line := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statsLine(*s.stats))
		b.WriteString("\n" + line)
	}

	return b.String()
}

func statsLine(stats store.JourneyStats) string {
	parts := []string{
		fmt.Sprintf("%d started", stats.JourneysStarted),
		fmt.Sprintf("%d completed", stats.JourneysCompleted),
	}
	if stats.AssessmentsTaken > 0 {
		parts = append(parts, fmt.Sprintf("%d assessments, avg %.0f%%",
			stats.AssessmentsTaken, stats.AverageScore))
	}
	return strings.Join(parts, "  ·  ")
}

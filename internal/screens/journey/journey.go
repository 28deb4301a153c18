package journey

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/priyankc/mentora/internal/course"
	"github.com/priyankc/mentora/internal/orchestra"
	"github.com/priyankc/mentora/internal/screen"
	"github.com/priyankc/mentora/internal/store"
	"github.com/priyankc/mentora/internal/ui/components"
	"github.com/priyankc/mentora/internal/ui/layout"
)

const refreshInterval = 150 * time.Millisecond

// JourneyScreen drives one learning journey: it starts the pipeline for a
// topic and renders its progress through the gated tabs.
type JourneyScreen struct {
	ctrl   *orchestra.Controller
	events store.EventRepo
	topic  string

	snap      orchestra.Snapshot
	activeTab orchestra.Tab
	errMsg    string

	// quiz state
	choices  []components.Choice
	qIndex   int
	grading  bool
	gradeErr string

	// content state
	moduleIndex int

	// tutor state
	tutorInput   components.TextInput
	tutorWaiting bool
	tutorErr     string

	// progress state
	stats    *store.JourneyStats
	statsErr string
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)
var _ screen.StatusProvider = (*JourneyScreen)(nil)

// New creates a JourneyScreen for the topic. The pipeline starts on Init.
func New(ctrl *orchestra.Controller, events store.EventRepo, topic string) *JourneyScreen {
	return &JourneyScreen{
		ctrl:       ctrl,
		events:     events,
		topic:      topic,
		activeTab:  orchestra.TabOverview,
		tutorInput: components.NewTextInput("Ask the tutor anything about the course...", 200),
	}
}

func (s *JourneyScreen) Init() tea.Cmd {
	return tea.Batch(s.startJourney(), s.refreshTick())
}

func (s *JourneyScreen) Title() string {
	return "Learning Journey"
}

// HeaderStatus shows the current agent's activity in the header.
func (s *JourneyScreen) HeaderStatus() string {
	for _, agent := range s.snap.Agents {
		if agent.IsCurrent && agent.StatusText != "" {
			return agent.StatusText
		}
	}
	return ""
}

func (s *JourneyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next tab"},
	}
	switch s.activeTab {
	case orchestra.TabContent:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Module"})
	case orchestra.TabAssessment:
		if !s.grading && s.snap.Feedback == nil {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Option"},
				layout.KeyHint{Key: "Enter", Description: "Pick"},
				layout.KeyHint{Key: "←→", Description: "Question"},
				layout.KeyHint{Key: "S", Description: "Submit"},
			)
		}
	case orchestra.TabTutoring:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Ask"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		s.snap = s.ctrl.Snapshot()
		if s.snap.Busy {
			return s, s.refreshTick()
		}
		return s, nil

	case journeyDoneMsg:
		s.snap = s.ctrl.Snapshot()
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.buildQuiz()
		return s, nil

	case gradeDoneMsg:
		s.grading = false
		s.snap = s.ctrl.Snapshot()
		if msg.Err != nil {
			s.gradeErr = msg.Err.Error()
			return s, nil
		}
		s.activeTab = orchestra.TabFeedback
		return s, s.loadStats()

	case tutorDoneMsg:
		s.tutorWaiting = false
		s.snap = s.ctrl.Snapshot()
		if msg.Err != nil {
			s.tutorErr = msg.Err.Error()
		}
		return s, nil

	case statsMsg:
		if msg.Err != nil {
			s.statsErr = msg.Err.Error()
			return s, nil
		}
		stats := msg.Stats
		s.stats = &stats
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *JourneyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.cycleTab(1)
		if s.activeTab == orchestra.TabProgress && s.stats == nil {
			return s, s.loadStats()
		}
		return s, nil
	case "shift+tab":
		s.cycleTab(-1)
		if s.activeTab == orchestra.TabProgress && s.stats == nil {
			return s, s.loadStats()
		}
		return s, nil
	}

	switch s.activeTab {
	case orchestra.TabContent:
		return s.handleContentKey(msg)
	case orchestra.TabAssessment:
		return s.handleAssessmentKey(msg)
	case orchestra.TabTutoring:
		return s.handleTutorKey(msg)
	}
	return s, nil
}

// cycleTab moves the active tab through the currently enabled set.
func (s *JourneyScreen) cycleTab(dir int) {
	enabled := s.snap.EnabledTabs
	if len(enabled) == 0 {
		return
	}

	pos := 0
	for i, tab := range enabled {
		if tab == s.activeTab {
			pos = i
			break
		}
	}
	pos = (pos + dir + len(enabled)) % len(enabled)
	s.activeTab = enabled[pos]
}

func (s *JourneyScreen) handleContentKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.snap.Content == nil {
		return s, nil
	}
	switch msg.String() {
	case "up", "k":
		if s.moduleIndex > 0 {
			s.moduleIndex--
		}
	case "down", "j":
		if s.moduleIndex < len(s.snap.Content.Titles)-1 {
			s.moduleIndex++
		}
	}
	return s, nil
}

func (s *JourneyScreen) handleAssessmentKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.grading || s.snap.Feedback != nil || len(s.choices) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.qIndex > 0 {
			s.qIndex--
		}
		return s, nil
	case "right", "l":
		if s.qIndex < len(s.choices)-1 {
			s.qIndex++
		}
		return s, nil
	case "s":
		return s.submitAnswers()
	case "enter", "space":
		var cmd tea.Cmd
		s.choices[s.qIndex], cmd = s.choices[s.qIndex].Update(msg)
		// Picking an answer advances to the next unanswered question.
		for i := 1; i <= len(s.choices); i++ {
			next := (s.qIndex + i) % len(s.choices)
			if !s.choices[next].Answered() {
				s.qIndex = next
				break
			}
		}
		return s, cmd
	default:
		var cmd tea.Cmd
		s.choices[s.qIndex], cmd = s.choices[s.qIndex].Update(msg)
		return s, cmd
	}
}

func (s *JourneyScreen) handleTutorKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		question := s.tutorInput.Value()
		if question == "" || s.tutorWaiting {
			return s, nil
		}
		s.tutorInput.Reset()
		s.tutorWaiting = true
		s.tutorErr = ""
		return s, s.askTutor(question)
	}

	var cmd tea.Cmd
	s.tutorInput, cmd = s.tutorInput.Update(msg)
	return s, cmd
}

// buildQuiz creates one choice picker per assessment question.
func (s *JourneyScreen) buildQuiz() {
	s.choices = nil
	s.qIndex = 0
	if s.snap.Assessment == nil {
		return
	}
	for _, q := range s.snap.Assessment.Questions {
		s.choices = append(s.choices, components.NewChoice(q.Question, q.Options))
	}
}

func (s *JourneyScreen) submitAnswers() (screen.Screen, tea.Cmd) {
	answers := course.UserAnswers{}
	for i, c := range s.choices {
		if c.Answered() {
			answers[i] = c.Value()
		}
	}

	s.grading = true
	s.gradeErr = ""
	ctrl := s.ctrl
	return s, tea.Batch(
		func() tea.Msg {
			return gradeDoneMsg{Err: ctrl.SubmitAssessment(context.Background(), answers)}
		},
		s.refreshTick(),
	)
}

func (s *JourneyScreen) startJourney() tea.Cmd {
	ctrl := s.ctrl
	topic := s.topic
	return func() tea.Msg {
		return journeyDoneMsg{Err: ctrl.Start(context.Background(), topic)}
	}
}

func (s *JourneyScreen) askTutor(question string) tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		reply, err := ctrl.AskTutor(context.Background(), question)
		return tutorDoneMsg{Reply: reply, Err: err}
	}
}

func (s *JourneyScreen) loadStats() tea.Cmd {
	if s.events == nil {
		return nil
	}
	events := s.events
	return func() tea.Msg {
		stats, err := events.JourneyStats(context.Background())
		return statsMsg{Stats: stats, Err: err}
	}
}

func (s *JourneyScreen) refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

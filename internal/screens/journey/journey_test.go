package journey

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyankc/mentora/internal/course"
	"github.com/priyankc/mentora/internal/orchestra"
)

// stubGenerator returns fixed outputs for every step.
type stubGenerator struct{}

func (stubGenerator) GenerateCurriculum(context.Context, string) (*course.Curriculum, error) {
	return &course.Curriculum{
		Title: "Astronomy 101",
		Modules: []course.Module{
			{Title: "The Solar System", Description: "Planets and their orbits."},
			{Title: "Stars", Description: "Stellar lifecycles."},
		},
	}, nil
}

func (stubGenerator) GenerateModuleContent(_ context.Context, _ string, mod course.Module) (string, error) {
	return "# " + mod.Title + "\n\nContent body.", nil
}

func (stubGenerator) GenerateAssessment(context.Context, *course.Curriculum) (*course.Assessment, error) {
	return &course.Assessment{
		Title: "Astronomy Quiz",
		Questions: []course.Question{
			{Question: "Which planet is third from the sun?", Options: []string{"Mars", "Earth", "Venus", "Jupiter"}},
			{Question: "What fuels a star?", Options: []string{"Fusion", "Fission", "Combustion", "Magnetism"}},
		},
	}, nil
}

func (stubGenerator) GradeAssessment(_ context.Context, a *course.Assessment, _ course.UserAnswers) (*course.Feedback, error) {
	fb := &course.Feedback{OverallScore: 50}
	for range a.Questions {
		fb.PerQuestion = append(fb.PerQuestion, course.QuestionFeedback{
			IsCorrect: true, CorrectAnswer: "Earth", Explanation: "Third from the sun.",
		})
	}
	return fb, nil
}

func (stubGenerator) TutorReply(context.Context, string, string) (string, error) {
	return "Stars fuse hydrogen into helium.", nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// readyScreen runs the pipeline to Ready and feeds the completion message
// through Update, the way the Bubble Tea runtime would.
func readyScreen(t *testing.T) *JourneyScreen {
	t.Helper()

	ctrl := orchestra.New(stubGenerator{}, nil)
	s := New(ctrl, nil, "Astronomy")

	if err := ctrl.Start(t.Context(), "Astronomy"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Update(journeyDoneMsg{})
	return s
}

func TestJourneyScreen_QuizBuiltOnReady(t *testing.T) {
	s := readyScreen(t)

	if len(s.choices) != 2 {
		t.Fatalf("expected 2 quiz questions, got %d", len(s.choices))
	}
	if s.snap.Stage != orchestra.StageReady {
		t.Errorf("expected stage ready, got %s", s.snap.Stage)
	}
}

func TestJourneyScreen_TabCyclingSkipsDisabled(t *testing.T) {
	s := readyScreen(t)

	// At Ready: Overview, Curriculum, Content, Tutoring, Assessment.
	seen := []orchestra.Tab{s.activeTab}
	for i := 0; i < 4; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		seen = append(seen, s.activeTab)
	}

	for _, tab := range seen {
		if !orchestra.TabEnabled(s.snap.Stage, tab) {
			t.Errorf("cycled into disabled tab %s", tab)
		}
	}

	// A full cycle returns to the start.
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.activeTab != seen[0] {
		t.Errorf("expected to wrap to %s, got %s", seen[0], s.activeTab)
	}
}

func TestJourneyScreen_AnswerAndSubmit(t *testing.T) {
	s := readyScreen(t)
	s.activeTab = orchestra.TabAssessment

	// Answer both questions; picking auto-advances.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.qIndex != 1 {
		t.Fatalf("expected auto-advance to question 2, got index %d", s.qIndex)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	for i, c := range s.choices {
		if !c.Answered() {
			t.Fatalf("question %d not answered", i)
		}
	}

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if !s.grading {
		t.Error("expected grading in progress")
	}
}

func TestJourneyScreen_GradeDoneShowsFeedback(t *testing.T) {
	s := readyScreen(t)

	answers := course.UserAnswers{}
	for i, q := range s.snap.Assessment.Questions {
		answers[i] = q.Options[0]
	}
	if err := s.ctrl.SubmitAssessment(t.Context(), answers); err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	s.Update(gradeDoneMsg{})

	if s.activeTab != orchestra.TabFeedback {
		t.Errorf("expected feedback tab after grading, got %s", s.activeTab)
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Overall score: 50%") {
		t.Error("expected overall score in feedback view")
	}
}

func TestJourneyScreen_FailureShownInOverview(t *testing.T) {
	ctrl := orchestra.New(stubGenerator{}, nil)
	s := New(ctrl, nil, "Astronomy")

	s.Update(journeyDoneMsg{Err: contextErr{}})
	if s.errMsg == "" {
		t.Fatal("expected error message")
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "Journey failed") {
		t.Error("expected failure notice in overview")
	}
}

type contextErr struct{}

func (contextErr) Error() string { return "model unavailable" }

func TestJourneyScreen_ViewPerTab(t *testing.T) {
	s := readyScreen(t)

	s.activeTab = orchestra.TabCurriculum
	if view := s.View(100, 40); !strings.Contains(view, "The Solar System") {
		t.Error("curriculum view missing module titles")
	}

	s.activeTab = orchestra.TabContent
	if view := s.View(100, 40); !strings.Contains(view, "Content body.") {
		t.Error("content view missing module body")
	}

	s.activeTab = orchestra.TabAssessment
	if view := s.View(100, 40); !strings.Contains(view, "Question 1 of 2") {
		t.Error("assessment view missing question counter")
	}
}

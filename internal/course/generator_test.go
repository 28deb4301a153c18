package course

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/priyankc/mentora/internal/llm"
)

func validCurriculumJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Introduction to Go",
		"modules": [
			{"title": "Syntax Basics", "description": "Variables, types, and control flow."},
			{"title": "Goroutines", "description": "Concurrency with goroutines and channels."}
		]
	}`)
}

func validAssessmentJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Go Quiz",
		"questions": [
			{
				"question": "Which keyword starts a goroutine?",
				"options": ["go", "run", "async", "spawn"],
				"correct_index": 0
			}
		]
	}`)
}

func TestGenerator_Curriculum(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validCurriculumJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	cur, err := gen.GenerateCurriculum(t.Context(), "Go programming")
	if err != nil {
		t.Fatalf("GenerateCurriculum: %v", err)
	}

	if cur.Title != "Introduction to Go" {
		t.Errorf("expected course title, got %q", cur.Title)
	}
	if len(cur.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(cur.Modules))
	}
	if cur.Modules[0].Title != "Syntax Basics" {
		t.Errorf("unexpected first module %q", cur.Modules[0].Title)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != CurriculumSchema.Name {
		t.Error("curriculum request must carry the curriculum schema")
	}
	if req.System == "" {
		t.Error("curriculum request must carry a system prompt")
	}
}

func TestGenerator_ModuleContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"markdown": "# Goroutines\n\nA goroutine is a lightweight thread."}`),
	})
	gen := NewGenerator(mock, DefaultConfig())

	body, err := gen.GenerateModuleContent(t.Context(), "Go programming", Module{
		Title:       "Goroutines",
		Description: "Concurrency with goroutines and channels.",
	})
	if err != nil {
		t.Fatalf("GenerateModuleContent: %v", err)
	}
	if body == "" {
		t.Fatal("expected markdown body")
	}

	// Content gets the largest token budget.
	cfg := DefaultConfig()
	if got := mock.Calls[0].MaxTokens; got != cfg.ContentMaxTokens {
		t.Errorf("expected max tokens %d, got %d", cfg.ContentMaxTokens, got)
	}
}

func TestGenerator_Assessment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAssessmentJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	a, err := gen.GenerateAssessment(t.Context(), &Curriculum{
		Title:   "Introduction to Go",
		Modules: []Module{{Title: "Syntax Basics", Description: "Basics."}},
	})
	if err != nil {
		t.Fatalf("GenerateAssessment: %v", err)
	}
	if len(a.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(a.Questions))
	}
	q := a.Questions[0]
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectIndex == nil || *q.CorrectIndex != 0 {
		t.Errorf("expected correct index 0, got %v", q.CorrectIndex)
	}
}

func TestGenerator_GradeAssessment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"overall_score": 100,
			"per_question": [
				{"is_correct": true, "correct_answer": "go", "explanation": "The go keyword starts a goroutine."}
			]
		}`),
	})
	gen := NewGenerator(mock, DefaultConfig())

	idx := 0
	a := &Assessment{
		Title: "Go Quiz",
		Questions: []Question{
			{Question: "Which keyword starts a goroutine?", Options: []string{"go", "run"}, CorrectIndex: &idx},
		},
	}

	fb, err := gen.GradeAssessment(t.Context(), a, UserAnswers{0: "go"})
	if err != nil {
		t.Fatalf("GradeAssessment: %v", err)
	}
	if fb.OverallScore != 100 {
		t.Errorf("expected score 100, got %v", fb.OverallScore)
	}
	if len(fb.PerQuestion) != 1 || !fb.PerQuestion[0].IsCorrect {
		t.Errorf("unexpected per-question feedback %+v", fb.PerQuestion)
	}
}

func TestGenerator_TutorReplyIsFreeform(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"A goroutine is started with the go keyword."`),
	})
	gen := NewGenerator(mock, DefaultConfig())

	reply, err := gen.TutorReply(t.Context(), "How do I start a goroutine?", "Module: Goroutines\n\n...")
	if err != nil {
		t.Fatalf("TutorReply: %v", err)
	}
	if reply == "" {
		t.Fatal("expected reply text")
	}

	// Tutor replies are prose, not structured output.
	if mock.Calls[0].Schema != nil {
		t.Error("tutor request must not carry a schema")
	}
}

func TestGenerator_ProviderErrorWrapped(t *testing.T) {
	provErr := &llm.UnavailableError{Err: errors.New("down")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: provErr})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateCurriculum(t.Context(), "Go programming")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.UnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestGenerator_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": `)})
	gen := NewGenerator(mock, DefaultConfig())

	if _, err := gen.GenerateCurriculum(t.Context(), "Go programming"); err == nil {
		t.Fatal("expected parse error")
	}
}

package course

import (
	"strings"
	"testing"
)

func curriculumFixture() *Curriculum {
	return &Curriculum{
		Title: "Marine Biology",
		Modules: []Module{
			{Title: "Ocean Zones", Description: "Layers of the ocean."},
			{Title: "Coral Reefs", Description: "Reef ecosystems."},
		},
	}
}

func TestValidateCurriculum(t *testing.T) {
	if err := ValidateCurriculum(curriculumFixture()); err != nil {
		t.Fatalf("valid curriculum rejected: %v", err)
	}

	cases := []struct {
		name string
		cur  *Curriculum
		want string
	}{
		{"missing title", &Curriculum{Modules: []Module{{Title: "A"}}}, "missing course title"},
		{"no modules", &Curriculum{Title: "Empty"}, "no modules"},
		{"untitled module", &Curriculum{Title: "X", Modules: []Module{{Description: "d"}}}, "has no title"},
		{"duplicate titles", &Curriculum{Title: "X", Modules: []Module{{Title: "A"}, {Title: "A"}}}, "duplicate module title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCurriculum(tc.cur)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	cur := curriculumFixture()

	full := NewContent(cur)
	full.Markdown["Ocean Zones"] = "# Ocean Zones"
	full.Markdown["Coral Reefs"] = "# Coral Reefs"
	if err := ValidateContent(cur, full); err != nil {
		t.Fatalf("valid content rejected: %v", err)
	}

	partial := NewContent(cur)
	partial.Markdown["Ocean Zones"] = "# Ocean Zones"
	if err := ValidateContent(cur, partial); err == nil {
		t.Error("expected error for missing module body")
	}

	wrongKey := NewContent(cur)
	wrongKey.Markdown["Ocean Zones"] = "# Ocean Zones"
	wrongKey.Markdown["Deep Sea"] = "# Deep Sea"
	if err := ValidateContent(cur, wrongKey); err == nil {
		t.Error("expected error for body keyed to unknown module")
	}

	empty := NewContent(cur)
	empty.Markdown["Ocean Zones"] = "# Ocean Zones"
	empty.Markdown["Coral Reefs"] = ""
	if err := ValidateContent(cur, empty); err == nil {
		t.Error("expected error for empty module body")
	}
}

func TestValidateAssessment(t *testing.T) {
	good, bad := 0, 7
	cases := []struct {
		name    string
		a       *Assessment
		wantErr bool
	}{
		{"valid", &Assessment{Questions: []Question{
			{Question: "Q?", Options: []string{"a", "b"}, CorrectIndex: &good},
		}}, false},
		{"no correct index", &Assessment{Questions: []Question{
			{Question: "Q?", Options: []string{"a", "b"}},
		}}, false},
		{"no questions", &Assessment{}, true},
		{"empty question", &Assessment{Questions: []Question{
			{Options: []string{"a", "b"}},
		}}, true},
		{"one option", &Assessment{Questions: []Question{
			{Question: "Q?", Options: []string{"a"}},
		}}, true},
		{"index out of range", &Assessment{Questions: []Question{
			{Question: "Q?", Options: []string{"a", "b"}, CorrectIndex: &bad},
		}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAssessment(tc.a)
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	a := &Assessment{Questions: []Question{
		{Question: "Q1?", Options: []string{"a", "b"}},
		{Question: "Q2?", Options: []string{"a", "b"}},
	}}

	ok := &Feedback{OverallScore: 50, PerQuestion: []QuestionFeedback{
		{IsCorrect: true}, {IsCorrect: false},
	}}
	if err := ValidateFeedback(a, ok); err != nil {
		t.Fatalf("valid feedback rejected: %v", err)
	}

	short := &Feedback{OverallScore: 50, PerQuestion: []QuestionFeedback{{IsCorrect: true}}}
	if err := ValidateFeedback(a, short); err == nil {
		t.Error("expected error for incomplete grading")
	}

	outOfRange := &Feedback{OverallScore: 120, PerQuestion: ok.PerQuestion}
	if err := ValidateFeedback(a, outOfRange); err == nil {
		t.Error("expected error for score above 100")
	}
}

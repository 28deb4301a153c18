package course

import "fmt"

// ValidationError describes a structurally invalid payload: a response that
// parsed but violates a domain invariant. Never retried; the stage that
// received it aborts.
type ValidationError struct {
	Subject string // what was being validated, e.g. "curriculum"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Subject, e.Message)
}

// ValidateCurriculum checks the structural invariants of a generated
// curriculum: a title, at least one module, and unique module titles (the
// content map is keyed by them).
func ValidateCurriculum(c *Curriculum) error {
	if c.Title == "" {
		return &ValidationError{Subject: "curriculum", Message: "missing course title"}
	}
	if len(c.Modules) == 0 {
		return &ValidationError{Subject: "curriculum", Message: "no modules"}
	}

	seen := make(map[string]bool, len(c.Modules))
	for i, m := range c.Modules {
		if m.Title == "" {
			return &ValidationError{Subject: "curriculum", Message: fmt.Sprintf("module %d has no title", i+1)}
		}
		if seen[m.Title] {
			return &ValidationError{Subject: "curriculum", Message: fmt.Sprintf("duplicate module title %q", m.Title)}
		}
		seen[m.Title] = true
	}
	return nil
}

// ValidateContent checks that the content keys are exactly the curriculum's
// module titles and that no module body is empty.
func ValidateContent(cur *Curriculum, content *Content) error {
	titles := cur.ModuleTitles()
	if len(content.Markdown) != len(titles) {
		return &ValidationError{
			Subject: "content",
			Message: fmt.Sprintf("%d module bodies for %d modules", len(content.Markdown), len(titles)),
		}
	}
	for _, title := range titles {
		body, ok := content.Markdown[title]
		if !ok {
			return &ValidationError{Subject: "content", Message: fmt.Sprintf("missing body for module %q", title)}
		}
		if body == "" {
			return &ValidationError{Subject: "content", Message: fmt.Sprintf("empty body for module %q", title)}
		}
	}
	return nil
}

// ValidateAssessment checks that the quiz has questions and every question
// has at least two options, with any correct index in range.
func ValidateAssessment(a *Assessment) error {
	if len(a.Questions) == 0 {
		return &ValidationError{Subject: "assessment", Message: "no questions"}
	}
	for i, q := range a.Questions {
		if q.Question == "" {
			return &ValidationError{Subject: "assessment", Message: fmt.Sprintf("question %d is empty", i+1)}
		}
		if len(q.Options) < 2 {
			return &ValidationError{Subject: "assessment", Message: fmt.Sprintf("question %d has %d options", i+1, len(q.Options))}
		}
		if q.CorrectIndex != nil && (*q.CorrectIndex < 0 || *q.CorrectIndex >= len(q.Options)) {
			return &ValidationError{Subject: "assessment", Message: fmt.Sprintf("question %d correct index out of range", i+1)}
		}
	}
	return nil
}

// ValidateFeedback checks that the grading covers every question exactly
// once and the score is a percentage.
func ValidateFeedback(a *Assessment, f *Feedback) error {
	if len(f.PerQuestion) != len(a.Questions) {
		return &ValidationError{
			Subject: "feedback",
			Message: fmt.Sprintf("%d graded answers for %d questions", len(f.PerQuestion), len(a.Questions)),
		}
	}
	if f.OverallScore < 0 || f.OverallScore > 100 {
		return &ValidationError{Subject: "feedback", Message: fmt.Sprintf("score %.1f out of range", f.OverallScore)}
	}
	return nil
}

package course

// Module is one unit of a curriculum.
type Module struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Curriculum is the learning path produced for a topic.
type Curriculum struct {
	Title   string   `json:"title"`
	Modules []Module `json:"modules"`
}

// ModuleTitles returns the module titles in curriculum order.
func (c *Curriculum) ModuleTitles() []string {
	titles := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		titles[i] = m.Title
	}
	return titles
}

// Content holds the generated markdown per module. Titles carries the
// curriculum ordering explicitly; Markdown is keyed by module title. The two
// always describe the same set once a content stage completes.
type Content struct {
	Titles   []string
	Markdown map[string]string
}

// NewContent creates an empty Content sized for the given curriculum.
func NewContent(c *Curriculum) *Content {
	return &Content{
		Titles:   c.ModuleTitles(),
		Markdown: make(map[string]string, len(c.Modules)),
	}
}

// Question is one multiple-choice assessment question. CorrectIndex is
// optional: when the backend supplies it, consumers must not surface it
// before feedback exists.
type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
}

// Assessment is the quiz produced for a curriculum.
type Assessment struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// UserAnswers maps question index to the selected option text.
type UserAnswers map[int]string

// QuestionFeedback grades a single answer.
type QuestionFeedback struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Suggestion    string `json:"suggestion,omitempty"`
}

// Feedback is the graded result of a submitted assessment.
type Feedback struct {
	OverallScore float64            `json:"overall_score"`
	PerQuestion  []QuestionFeedback `json:"per_question"`
}

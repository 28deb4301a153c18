package orchestra

import "github.com/priyankc/mentora/internal/course"

// Snapshot is a point-in-time, read-only view of the pipeline. All slices
// and nested structures are copies; the caller may hold a Snapshot across
// frames without racing the pipeline.
type Snapshot struct {
	Stage Stage
	Topic string
	Busy  bool

	Log    []LogEntry
	Agents []AgentStatus

	Curriculum *course.Curriculum
	Content    *course.Content
	Assessment *course.Assessment
	Feedback   *course.Feedback

	EnabledTabs []Tab
}

// Snapshot captures the current pipeline state. Until feedback exists the
// assessment copy has the correct answer indices removed, so a renderer
// cannot leak answers into the quiz view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Stage:       c.stage,
		Topic:       c.topic,
		Busy:        c.busy,
		Log:         c.log.Entries(),
		Agents:      c.registry.All(),
		EnabledTabs: EnabledTabs(c.stage),
	}
	if c.curriculum != nil {
		snap.Curriculum = copyCurriculum(c.curriculum)
	}
	if c.content != nil {
		snap.Content = copyContent(c.content)
	}
	if c.assessment != nil {
		snap.Assessment = copyAssessment(c.assessment, c.feedback != nil)
	}
	if c.feedback != nil {
		snap.Feedback = copyFeedback(c.feedback)
	}
	return snap
}

func copyCurriculum(cur *course.Curriculum) *course.Curriculum {
	out := *cur
	out.Modules = append([]course.Module(nil), cur.Modules...)
	return &out
}

func copyContent(content *course.Content) *course.Content {
	out := &course.Content{
		Titles:   append([]string(nil), content.Titles...),
		Markdown: make(map[string]string, len(content.Markdown)),
	}
	for k, v := range content.Markdown {
		out.Markdown[k] = v
	}
	return out
}

func copyAssessment(a *course.Assessment, revealAnswers bool) *course.Assessment {
	out := &course.Assessment{
		Title:     a.Title,
		Questions: make([]course.Question, len(a.Questions)),
	}
	for i, q := range a.Questions {
		cq := course.Question{
			Question: q.Question,
			Options:  append([]string(nil), q.Options...),
		}
		if revealAnswers && q.CorrectIndex != nil {
			idx := *q.CorrectIndex
			cq.CorrectIndex = &idx
		}
		out.Questions[i] = cq
	}
	return out
}

func copyFeedback(fb *course.Feedback) *course.Feedback {
	out := *fb
	out.PerQuestion = append([]course.QuestionFeedback(nil), fb.PerQuestion...)
	return &out
}

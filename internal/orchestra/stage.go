package orchestra

// Stage is a position in the pipeline state machine. The main chain advances
// Idle → Curriculum → Content → Assessment → Ready; Feedback follows Ready
// after the user submits answers; Failed is reachable from any stage.
type Stage int

const (
	StageIdle Stage = iota
	StageCurriculum
	StageContent
	StageAssessment
	StageReady
	StageFeedback
	StageFailed
)

var stageNames = map[Stage]string{
	StageIdle:       "idle",
	StageCurriculum: "curriculum",
	StageContent:    "content",
	StageAssessment: "assessment",
	StageReady:      "ready",
	StageFeedback:   "feedback",
	StageFailed:     "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the stage ends a run. Feedback is terminal for
// the pipeline itself; the user re-enters via a new Start.
func (s Stage) Terminal() bool {
	return s == StageFeedback || s == StageFailed
}

// AtLeast reports whether the main chain has progressed to (or past) other.
// Failed never counts as progress.
func (s Stage) AtLeast(other Stage) bool {
	if s == StageFailed {
		return false
	}
	return s >= other
}

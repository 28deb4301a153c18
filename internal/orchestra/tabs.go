package orchestra

// Tab is a UI section gated by pipeline progress.
type Tab int

const (
	TabOverview Tab = iota
	TabCurriculum
	TabContent
	TabAssessment
	TabFeedback
	TabTutoring
	TabProgress

	numTabs
)

var tabNames = [numTabs]string{
	TabOverview:   "Overview",
	TabCurriculum: "Curriculum",
	TabContent:    "Content",
	TabAssessment: "Assessment",
	TabFeedback:   "Feedback",
	TabTutoring:   "Tutoring",
	TabProgress:   "Progress",
}

func (t Tab) String() string {
	if t < 0 || t >= numTabs {
		return "Unknown"
	}
	return tabNames[t]
}

// AllTabs returns every tab in display order.
func AllTabs() []Tab {
	out := make([]Tab, numTabs)
	for i := range out {
		out[i] = Tab(i)
	}
	return out
}

// EnabledTabs is the pure gate from stage to unlocked UI sections. Overview
// is always enabled; the rest unlock monotonically as the chain advances
// and collapse back to Overview on reset or failure.
func EnabledTabs(stage Stage) []Tab {
	tabs := []Tab{TabOverview}

	if stage.AtLeast(StageContent) {
		tabs = append(tabs, TabCurriculum)
	}
	if stage.AtLeast(StageAssessment) {
		tabs = append(tabs, TabContent, TabTutoring)
	}
	if stage.AtLeast(StageReady) {
		tabs = append(tabs, TabAssessment)
	}
	if stage.AtLeast(StageFeedback) {
		tabs = append(tabs, TabFeedback, TabProgress)
	}

	return tabs
}

// TabEnabled reports whether one tab is unlocked at the given stage.
func TabEnabled(stage Stage, tab Tab) bool {
	for _, t := range EnabledTabs(stage) {
		if t == tab {
			return true
		}
	}
	return false
}

package journey

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/priyankc/mentora/internal/orchestra"
	"github.com/priyankc/mentora/internal/ui/components"
	"github.com/priyankc/mentora/internal/ui/theme"
)

func (s *JourneyScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderTabBar(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	body := ""
	switch s.activeTab {
	case orchestra.TabOverview:
		body = s.renderOverview(width, height)
	case orchestra.TabCurriculum:
		body = s.renderCurriculum(width)
	case orchestra.TabContent:
		body = s.renderContent(width, height)
	case orchestra.TabAssessment:
		body = s.renderAssessment(width)
	case orchestra.TabFeedback:
		body = s.renderFeedback(width)
	case orchestra.TabTutoring:
		body = s.renderTutoring(width, height)
	case orchestra.TabProgress:
		body = s.renderProgress(width)
	}
	b.WriteString(body)

	return b.String()
}

func (s *JourneyScreen) renderTabBar(width int) string {
	parts := make([]string, 0, len(orchestra.AllTabs()))
	for _, tab := range orchestra.AllTabs() {
		label := " " + tab.String() + " "
		switch {
		case tab == s.activeTab:
			parts = append(parts, theme.TabActive.Render(label))
		case orchestra.TabEnabled(s.snap.Stage, tab):
			parts = append(parts, theme.TabInactive.Render(label))
		default:
			parts = append(parts, theme.TabDisabled.Render(label))
		}
	}
	return "  " + strings.Join(parts, " ")
}

// renderOverview shows the agent panel beside the interaction log.
func (s *JourneyScreen) renderOverview(width, height int) string {
	agents := s.renderAgents()
	log := s.renderLog(width-lipgloss.Width(agents)-6, height-6)

	panel := lipgloss.JoinHorizontal(lipgloss.Top, agents, "  ", log)

	if s.errMsg != "" {
		panel += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  Journey failed: "+s.errMsg)
	}
	return panel
}

func (s *JourneyScreen) renderAgents() string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("  Agents") + "\n\n")

	for _, agent := range s.snap.Agents {
		if agent.Role == orchestra.RoleSystem || agent.Role == orchestra.RoleUser {
			continue
		}

		marker := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if agent.IsCurrent {
			marker = "▸ "
			nameStyle = theme.Active
		}
		b.WriteString("  " + marker + nameStyle.Render(agent.Role.String()) + "\n")

		status := agent.StatusText
		if status == "" {
			status = "Idle"
		}
		b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(status) + "\n")
	}
	return b.String()
}

func (s *JourneyScreen) renderLog(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Interaction Log") + "\n\n")

	entries := s.snap.Log
	// Keep the newest entries that fit; two lines per entry.
	maxEntries := height / 2
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	for _, e := range entries {
		route := fmt.Sprintf("%s → %s", e.Source, e.Target)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(route))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"  " + e.Timestamp.Format("15:04:05")))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(max(width, 20)).Render("  " + e.Message))
		b.WriteString("\n")
	}

	if s.snap.Busy {
		b.WriteString("\n" + theme.Hint.Render("  working..."))
	}
	return b.String()
}

func (s *JourneyScreen) renderCurriculum(width int) string {
	cur := s.snap.Curriculum
	if cur == nil {
		return theme.Hint.Render("  No curriculum yet.")
	}

	var b strings.Builder
	b.WriteString("  " + theme.Selected.Render(cur.Title) + "\n\n")
	for i, mod := range cur.Modules {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d.", i+1)),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(mod.Title)))
		b.WriteString("     " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(max(width-10, 20)).
			Render(mod.Description) + "\n\n")
	}
	return b.String()
}

func (s *JourneyScreen) renderContent(width, height int) string {
	content := s.snap.Content
	if content == nil {
		return theme.Hint.Render("  No content yet.")
	}

	var b strings.Builder
	b.WriteString("  " + theme.Selected.Render("Modules") + "\n\n")
	for i, title := range content.Titles {
		if i == s.moduleIndex {
			b.WriteString("  " + theme.Selected.Render("▸ "+title) + "\n")
		} else {
			b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(title) + "\n")
		}
	}
	b.WriteString("\n")

	if s.moduleIndex < len(content.Titles) {
		title := content.Titles[s.moduleIndex]
		body := content.Markdown[title]

		lines := strings.Split(body, "\n")
		maxLines := height - len(content.Titles) - 8
		if maxLines > 0 && len(lines) > maxLines {
			lines = lines[:maxLines]
			lines = append(lines, theme.Hint.Render("..."))
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(width-6, 20)).
			PaddingLeft(2).
			Render(strings.Join(lines, "\n")))
	}
	return b.String()
}

func (s *JourneyScreen) renderAssessment(width int) string {
	if s.snap.Assessment == nil {
		return theme.Hint.Render("  No assessment yet.")
	}
	if s.grading {
		return theme.Hint.Render("  Grading your answers...")
	}
	if s.snap.Feedback != nil {
		return theme.Hint.Render("  Assessment graded. See the Feedback tab.")
	}
	if len(s.choices) == 0 {
		return theme.Hint.Render("  No questions available.")
	}

	answered := 0
	for _, c := range s.choices {
		if c.Answered() {
			answered++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s  %s\n\n",
		theme.Selected.Render(fmt.Sprintf("Question %d of %d", s.qIndex+1, len(s.choices))),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d answered", answered))))

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.choices[s.qIndex].View()))
	b.WriteString("\n")

	if answered == len(s.choices) {
		b.WriteString("\n  " + theme.Correct.Render("All questions answered. Press S to submit."))
	}
	if s.gradeErr != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.gradeErr))
	}
	return b.String()
}

func (s *JourneyScreen) renderFeedback(width int) string {
	fb := s.snap.Feedback
	if fb == nil {
		return theme.Hint.Render("  No feedback yet.")
	}

	var b strings.Builder
	scoreStyle := theme.Correct
	if fb.OverallScore < 60 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString("  " + scoreStyle.Render(fmt.Sprintf("Overall score: %.0f%%", fb.OverallScore)) + "\n\n")

	for i, qf := range fb.PerQuestion {
		verdict := theme.Correct.Render("✓")
		if !qf.IsCorrect {
			verdict = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", verdict,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Question %d", i+1))))
		b.WriteString("     " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Correct answer: "+qf.CorrectAnswer) + "\n")
		b.WriteString("     " + lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(width-10, 20)).
			Render(qf.Explanation) + "\n")
		if qf.Suggestion != "" {
			b.WriteString("     " + theme.Hint.Render("Review: "+qf.Suggestion) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *JourneyScreen) renderTutoring(width, height int) string {
	var b strings.Builder
	b.WriteString("  " + theme.Selected.Render("Tutoring") + "\n\n")

	// Transcript: tutor exchanges recorded in the interaction log.
	exchanges := 0
	for _, e := range s.snap.Log {
		if e.Source != orchestra.RoleTutoring && e.Target != orchestra.RoleTutoring {
			continue
		}
		exchanges++
		who := "You"
		style := lipgloss.NewStyle().Foreground(theme.Secondary)
		if e.Source == orchestra.RoleTutoring {
			who = "Tutor"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString("  " + style.Bold(true).Render(who+":") + "\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(width-8, 20)).
			PaddingLeft(4).
			Render(e.Message) + "\n\n")
	}
	if exchanges == 0 {
		b.WriteString(theme.Hint.Render("  Ask a question about any module and the tutor will answer from the course content.") + "\n\n")
	}

	if s.tutorWaiting {
		b.WriteString(theme.Hint.Render("  Tutor is thinking...") + "\n\n")
	}
	if s.tutorErr != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.tutorErr) + "\n\n")
	}

	b.WriteString("  " + s.tutorInput.View())
	return b.String()
}

func (s *JourneyScreen) renderProgress(width int) string {
	if s.statsErr != "" {
		return "  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.statsErr)
	}
	if s.stats == nil {
		return theme.Hint.Render("  Loading progress...")
	}

	var b strings.Builder
	b.WriteString("  " + theme.Selected.Render("Your Learning Progress") + "\n\n")
	b.WriteString(fmt.Sprintf("  Journeys started     %d\n", s.stats.JourneysStarted))
	b.WriteString(fmt.Sprintf("  Journeys completed   %d\n", s.stats.JourneysCompleted))
	b.WriteString(fmt.Sprintf("  Assessments taken    %d\n\n", s.stats.AssessmentsTaken))

	if s.stats.AssessmentsTaken > 0 {
		bar := components.NewProgressBar("  Average score", s.stats.AverageScore/100, true, max(width-10, 30))
		b.WriteString(bar.View() + "\n")
	}
	return b.String()
}

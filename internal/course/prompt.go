package course

import (
	"fmt"
	"strings"
)

const curriculumSystemPrompt = `You are an expert curriculum designer for a personalized learning platform. You structure any topic into a clear, progressive learning path.`

func buildCurriculumUserMessage(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(`
Instructions:
Design a curriculum for this topic with a clear course title and 3-7 modules.
Order the modules from foundations to advanced material. Each module needs a
title and a one-sentence description of what it covers. Module titles must be
unique.`)

	return b.String()
}

const contentSystemPrompt = `You are an expert educator writing self-contained learning material for a personalized learning platform. You write clear, well-structured Markdown.`

func buildContentUserMessage(topic string, mod Module) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Module: %s\n", mod.Title))
	b.WriteString(fmt.Sprintf("Description: %s\n", mod.Description))
	b.WriteString(`
Instructions:
Write detailed educational content in Markdown for this module. The content
should be comprehensive, easy to understand, and structured with headings,
lists, and code blocks where appropriate. Stay within the scope given by the
module description.`)

	return b.String()
}

const assessmentSystemPrompt = `You are an assessment designer for a personalized learning platform. You write fair multiple-choice questions that test understanding, not trivia.`

func buildAssessmentUserMessage(cur *Curriculum) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", cur.Title))
	b.WriteString("Modules:\n")
	for _, m := range cur.Modules {
		b.WriteString(fmt.Sprintf("- %s: %s\n", m.Title, m.Description))
	}
	b.WriteString(`
Instructions:
Create a multiple-choice quiz with 5 questions covering this curriculum. Each
question must have exactly 4 options with a single correct answer. Spread the
questions across the modules.`)

	return b.String()
}

const feedbackSystemPrompt = `You are a supportive learning coach grading a quiz. You explain why answers are right or wrong and suggest what to review.`

func buildFeedbackUserMessage(a *Assessment, answers UserAnswers) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Quiz: %s\n\n", a.Title))
	for i, q := range a.Questions {
		b.WriteString(fmt.Sprintf("Question %d: %s\n", i+1, q.Question))
		b.WriteString(fmt.Sprintf("Options: %s\n", strings.Join(q.Options, " | ")))
		b.WriteString(fmt.Sprintf("Student answered: %s\n\n", answers[i]))
	}
	b.WriteString(`Instructions:
Grade every question in order. For each one, say whether the student's answer
is correct, give the correct option text, explain why it is correct, and when
the student was wrong, suggest what to review. Also compute the overall score
as a percentage of correct answers.`)

	return b.String()
}

const tutorSystemPrompt = `You are a helpful and friendly AI tutor for a personalized learning platform. Answer questions using the provided course content. If a question is outside the scope of the content, politely say so.`

func buildTutorUserMessage(question, contextDoc string) string {
	var b strings.Builder

	b.WriteString("--- COURSE CONTENT ---\n")
	b.WriteString(contextDoc)
	b.WriteString("\n--- END OF COURSE CONTENT ---\n\n")
	b.WriteString(fmt.Sprintf("USER QUESTION: %s", question))

	return b.String()
}

// TutorContext joins all module markdown into the single context document
// the tutor answers from.
func TutorContext(content *Content) string {
	if content == nil || len(content.Titles) == 0 {
		return "No content available."
	}

	parts := make([]string, 0, len(content.Titles))
	for _, title := range content.Titles {
		parts = append(parts, fmt.Sprintf("Module: %s\n\n%s", title, content.Markdown[title]))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

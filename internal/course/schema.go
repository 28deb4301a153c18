package course

import "github.com/priyankc/mentora/internal/llm"

// CurriculumSchema defines the JSON schema for curriculum generation.
var CurriculumSchema = &llm.Schema{
	Name:        "curriculum",
	Description: "A learning curriculum with a course title and ordered modules",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The overall title of the learning course",
			},
			"modules": map[string]any{
				"type":        "array",
				"description": "Learning modules in teaching order, typically 3-7",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "The title of the module",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "A one-sentence description of the module's content",
						},
					},
					"required":             []any{"title", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "modules"},
		"additionalProperties": false,
	},
}

// ModuleContentSchema defines the JSON schema for per-module content.
var ModuleContentSchema = &llm.Schema{
	Name:        "module-content",
	Description: "Markdown learning content for one curriculum module",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"markdown": map[string]any{
				"type":        "string",
				"description": "Detailed educational content in Markdown, structured with headings, lists, and code blocks where appropriate",
			},
		},
		"required":             []any{"markdown"},
		"additionalProperties": false,
	},
}

// AssessmentSchema defines the JSON schema for quiz generation.
var AssessmentSchema = &llm.Schema{
	Name:        "assessment",
	Description: "A multiple-choice quiz covering the curriculum",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The title of the quiz",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "Multiple-choice questions, each with 4 options",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Exactly 4 candidate answers",
							"items":       map[string]any{"type": "string"},
						},
					},
					"required":             []any{"question", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the JSON schema for assessment grading.
var FeedbackSchema = &llm.Schema{
	Name:        "assessment-feedback",
	Description: "Graded feedback for a submitted quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall_score": map[string]any{
				"type":        "number",
				"description": "Percentage of correct answers, 0-100",
			},
			"per_question": map[string]any{
				"type":        "array",
				"description": "One entry per question, in question order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"is_correct": map[string]any{
							"type": "boolean",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct option text",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why this answer is correct",
						},
						"suggestion": map[string]any{
							"type":        "string",
							"description": "What to review when the answer was wrong",
						},
					},
					"required":             []any{"is_correct", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"overall_score", "per_question"},
		"additionalProperties": false,
	},
}

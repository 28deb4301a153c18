package course

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/priyankc/mentora/internal/llm"
)

// Generator is the content-generation client the pipeline controller
// consumes. One method per generation step; the controller owns ordering,
// fan-out, and structural validation of what comes back.
type Generator interface {
	// GenerateCurriculum designs the learning path for a topic.
	GenerateCurriculum(ctx context.Context, topic string) (*Curriculum, error)

	// GenerateModuleContent writes the markdown body for one module.
	GenerateModuleContent(ctx context.Context, topic string, mod Module) (string, error)

	// GenerateAssessment builds a quiz covering the curriculum.
	GenerateAssessment(ctx context.Context, cur *Curriculum) (*Assessment, error)

	// GradeAssessment grades submitted answers against the quiz.
	GradeAssessment(ctx context.Context, a *Assessment, answers UserAnswers) (*Feedback, error)

	// TutorReply answers a free-form question from the given context document.
	TutorReply(ctx context.Context, question, contextDoc string) (string, error)
}

// Config holds generation settings per call type.
type Config struct {
	CurriculumMaxTokens int
	ContentMaxTokens    int
	AssessmentMaxTokens int
	FeedbackMaxTokens   int
	TutorMaxTokens      int
	Temperature         float64
}

// DefaultConfig returns sensible defaults. Content gets the largest budget;
// it produces full module bodies.
func DefaultConfig() Config {
	return Config{
		CurriculumMaxTokens: 1024,
		ContentMaxTokens:    4096,
		AssessmentMaxTokens: 2048,
		FeedbackMaxTokens:   2048,
		TutorMaxTokens:      1024,
		Temperature:         0.4,
	}
}

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) GenerateCurriculum(ctx context.Context, topic string) (*Curriculum, error) {
	ctx = llm.WithPurpose(ctx, "curriculum")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: curriculumSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCurriculumUserMessage(topic)},
		},
		Schema:      CurriculumSchema,
		MaxTokens:   g.config.CurriculumMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("curriculum generation: %w", err)
	}

	var cur Curriculum
	if err := json.Unmarshal(resp.Content, &cur); err != nil {
		return nil, fmt.Errorf("parse curriculum response: %w", err)
	}
	return &cur, nil
}

// moduleContentOutput is the raw content payload before unwrapping.
type moduleContentOutput struct {
	Markdown string `json:"markdown"`
}

func (g *LLMGenerator) GenerateModuleContent(ctx context.Context, topic string, mod Module) (string, error) {
	ctx = llm.WithPurpose(ctx, "module-content")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: contentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContentUserMessage(topic, mod)},
		},
		Schema:      ModuleContentSchema,
		MaxTokens:   g.config.ContentMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("content generation for %q: %w", mod.Title, err)
	}

	var out moduleContentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse content response for %q: %w", mod.Title, err)
	}
	return out.Markdown, nil
}

func (g *LLMGenerator) GenerateAssessment(ctx context.Context, cur *Curriculum) (*Assessment, error) {
	ctx = llm.WithPurpose(ctx, "assessment")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: assessmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAssessmentUserMessage(cur)},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   g.config.AssessmentMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("assessment generation: %w", err)
	}

	var a Assessment
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("parse assessment response: %w", err)
	}
	return &a, nil
}

func (g *LLMGenerator) GradeAssessment(ctx context.Context, a *Assessment, answers UserAnswers) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackUserMessage(a, answers)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   g.config.FeedbackMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("feedback generation: %w", err)
	}

	var f Feedback
	if err := json.Unmarshal(resp.Content, &f); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}
	return &f, nil
}

func (g *LLMGenerator) TutorReply(ctx context.Context, question, contextDoc string) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorUserMessage(question, contextDoc)},
		},
		MaxTokens:   g.config.TutorMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("tutor reply: %w", err)
	}
	return resp.Text(), nil
}

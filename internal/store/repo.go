package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures one model call for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a recorded model call.
type LLMRequestEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// JourneyEventData captures one pipeline stage transition.
type JourneyEventData struct {
	JourneyID string
	Topic     string
	Stage     string
	Detail    string
	Score     *float64 // set only on feedback events
}

// JourneyStats summarizes recorded journeys for the progress surface.
type JourneyStats struct {
	JourneysStarted   int
	JourneysCompleted int
	AssessmentsTaken  int
	AverageScore      float64 // 0 when no assessments were taken
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records a model API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendJourney records a pipeline stage transition.
	AppendJourney(ctx context.Context, data JourneyEventData) error

	// QueryLLMEvents returns recorded model calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// JourneyStats aggregates journey events.
	JourneyStats(ctx context.Context) (JourneyStats, error)
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "mentora.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AppendAndQueryLLMEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "curriculum", InputTokens: 200, OutputTokens: 150, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "module-content", InputTokens: 400, OutputTokens: 1200, LatencyMs: 2500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "assessment", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(t.Context(), e))
	}

	got, err := repo.QueryLLMEvents(t.Context(), QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "assessment", got[0].Purpose)
	assert.Equal(t, "curriculum", got[2].Purpose)
	assert.False(t, got[0].Success)
	assert.Equal(t, "rate limited", got[0].ErrorMessage)
	assert.Equal(t, 200, got[2].InputTokens)
	assert.Equal(t, 150, got[2].OutputTokens)
}

func TestStore_QueryLimit(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendLLMRequest(t.Context(), LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "tutor", Success: true,
		}))
	}

	got, err := repo.QueryLLMEvents(t.Context(), QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_SequenceSpansEventTypes(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	require.NoError(t, repo.AppendLLMRequest(t.Context(), LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "curriculum", Success: true}))
	require.NoError(t, repo.AppendJourney(t.Context(), JourneyEventData{JourneyID: "j1", Topic: "Go", Stage: "curriculum"}))
	require.NoError(t, repo.AppendLLMRequest(t.Context(), LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "assessment", Success: true}))

	got, err := repo.QueryLLMEvents(t.Context(), QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// The journey event consumed sequence 2, so the model calls hold 1 and 3.
	assert.Equal(t, int64(3), got[0].Sequence)
	assert.Equal(t, int64(1), got[1].Sequence)
}

func TestStore_JourneyStats(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	score1, score2 := 80.0, 60.0
	journeys := []JourneyEventData{
		{JourneyID: "j1", Topic: "Go", Stage: "curriculum"},
		{JourneyID: "j1", Topic: "Go", Stage: "ready"},
		{JourneyID: "j1", Topic: "Go", Stage: "feedback", Score: &score1},
		{JourneyID: "j2", Topic: "Rust", Stage: "curriculum"},
		{JourneyID: "j2", Topic: "Rust", Stage: "failed"},
		{JourneyID: "j3", Topic: "Zig", Stage: "curriculum"},
		{JourneyID: "j3", Topic: "Zig", Stage: "ready"},
		{JourneyID: "j3", Topic: "Zig", Stage: "feedback", Score: &score2},
	}
	for _, j := range journeys {
		require.NoError(t, repo.AppendJourney(t.Context(), j))
	}

	stats, err := repo.JourneyStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.JourneysStarted)
	assert.Equal(t, 2, stats.JourneysCompleted)
	assert.Equal(t, 2, stats.AssessmentsTaken)
	assert.Equal(t, 70.0, stats.AverageScore)
}

func TestStore_EmptyStats(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	stats, err := repo.JourneyStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, JourneyStats{}, stats)
}

func TestStore_ReopenKeepsSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mentora.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(t.Context(), LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "curriculum", Success: true,
	}))
	s.Close()

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	require.NoError(t, s2.EventRepo().AppendLLMRequest(t.Context(), LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "tutor", Success: true,
	}))

	got, err := s2.EventRepo().QueryLLMEvents(t.Context(), QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].Sequence, "sequence must continue across sessions")
	assert.Equal(t, int64(1), got[1].Sequence)
}

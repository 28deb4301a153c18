package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/priyankc/mentora/internal/store"
)

type capturingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *capturingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func (r *capturingRepo) AppendJourney(context.Context, store.JourneyEventData) error {
	return nil
}

func (r *capturingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *capturingRepo) JourneyStats(context.Context) (store.JourneyStats, error) {
	return store.JourneyStats{}, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 45},
	})
	repo := &capturingRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(t.Context(), "assessment")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "assessment" {
		t.Errorf("expected purpose from context, got %q", ev.Purpose)
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 45 {
		t.Errorf("unexpected token counts %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if !ev.Success {
		t.Error("expected success flag")
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &UnavailableError{Err: errors.New("down")}})
	repo := &capturingRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(t.Context(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure flag")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected recorded error message")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &capturingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(t.Context(), Request{}); err != nil {
		t.Fatalf("recording failure leaked into the request: %v", err)
	}
}

func TestLogging_NilRepoUnwrapped(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, nil); p != Provider(mock) {
		t.Error("nil repo should return the provider unwrapped")
	}
}

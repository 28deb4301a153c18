package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// eventRepo implements EventRepo on plain SQL.
type eventRepo struct {
	db *sql.DB

	// Serializes sequence allocation within the process; the RETURNING
	// clause makes the increment atomic at the database level.
	seqMu sync.Mutex
}

func (r *eventRepo) nextSequence(ctx context.Context) (int64, error) {
	r.seqMu.Lock()
	defer r.seqMu.Unlock()

	var seq int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.nextSequence(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(sequence, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendJourney(ctx context.Context, data JourneyEventData) error {
	seq, err := r.nextSequence(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO journey_events (sequence, journey_id, topic, stage, detail, score)
		VALUES (?, ?, ?, ?, ?, ?)`,
		seq, data.JourneyID, data.Topic, data.Stage, data.Detail, data.Score,
	)
	if err != nil {
		return fmt.Errorf("save journey event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := `SELECT id, sequence, created_at, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message
		FROM llm_request_events ORDER BY sequence DESC`
	args := []any{}
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) JourneyStats(ctx context.Context) (JourneyStats, error) {
	var stats JourneyStats

	row := r.db.QueryRowContext(ctx, `SELECT
		COUNT(DISTINCT CASE WHEN stage = 'curriculum' THEN journey_id END),
		COUNT(DISTINCT CASE WHEN stage = 'ready' THEN journey_id END),
		COUNT(CASE WHEN stage = 'feedback' THEN 1 END),
		COALESCE(AVG(CASE WHEN stage = 'feedback' THEN score END), 0)
	FROM journey_events`)

	if err := row.Scan(
		&stats.JourneysStarted,
		&stats.JourneysCompleted,
		&stats.AssessmentsTaken,
		&stats.AverageScore,
	); err != nil {
		return JourneyStats{}, fmt.Errorf("journey stats: %w", err)
	}
	return stats, nil
}

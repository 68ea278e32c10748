package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LLMRequestEventData captures a single LLM API call for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides access to the LLM request event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	// limit <= 0 means no limit.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (timestamp, provider, model, purpose, input_tokens, output_tokens,
		  latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens,
	             output_tokens, latency_ms, success, error_message,
	             request_body, response_body
	      FROM llm_events ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, input_tokens,
		        output_tokens, latency_ms, success, error_message,
		        request_body, response_body
		 FROM llm_events WHERE id = ?`, id)

	e, err := scanLLMEvent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return &e, nil
}

func scanLLMEvent(scan func(...any) error) (LLMEvent, error) {
	var e LLMEvent
	err := scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	return e, err
}

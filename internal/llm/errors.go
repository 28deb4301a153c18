package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError indicates the backend returned a 429.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the model returned content that is not
// valid JSON or does not conform to the requested schema.
type MalformedResponseError struct {
	Content json.RawMessage
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// UnavailableError indicates the backend is down, unreachable, or the call
// itself failed.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend unavailable: %v", e.Err)
	}
	return "backend unavailable"
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError indicates the response hit the MaxTokens limit and was
// cut off. Not retryable; the request needs a larger budget.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "model response truncated: max tokens exceeded"
}

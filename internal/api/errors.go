package api

import (
	"errors"
	"fmt"
)

// ErrNoAnalytics is the expected-empty case: the learner has no
// submitted attempt for the course. Callers render a zero state.
var ErrNoAnalytics = errors.New("no analytics for course")

// ErrUnauthorized indicates the platform rejected the session token.
var ErrUnauthorized = errors.New("unauthorized: session token rejected")

// StatusError is any other non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: server returned %d", e.Method, e.Path, e.Code)
}

// Transient reports whether the failure is worth retrying. Server-side
// errors and throttling are; any other 4xx is a caller bug or stale
// session and retrying would just repeat it.
func (e *StatusError) Transient() bool {
	return e.Code >= 500 || e.Code == 429
}

// PayloadError indicates the response body did not match the documented
// payload shape (malformed JSON or schema violation). Grouped with
// transient failures for display purposes per the error taxonomy, but
// never retried.
type PayloadError struct {
	Path string
	Err  error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("malformed payload from %s: %v", e.Path, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

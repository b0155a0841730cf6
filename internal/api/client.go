// Package api is the REST client for the exam-prep platform. It covers
// the course index, question catalogs, latest-submitted analytics, and
// attempt submission. Responses are schema-validated at this boundary
// so every downstream package sees well-formed payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adesai/prepdeck/internal/auth"
)

// RetryConfig bounds retries of transient request failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig is tuned for interactive use: fail within a few
// seconds rather than masking an outage behind a spinner.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     4 * time.Second,
		Multiplier:  2.0,
	}
}

// Client talks to the platform API.
type Client struct {
	baseURL string
	http    *http.Client
	session *auth.Session
	retry   RetryConfig
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client (tests inject a
// RoundTripper fake this way).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetry overrides the retry policy.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// New creates a Client for the given API root and session.
func New(baseURL string, session *auth.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
		retry:   DefaultRetryConfig(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// get issues a GET with auth, retry on transient failures, and schema
// validation of the body when a schema is named.
func (c *Client) get(ctx context.Context, path string, query url.Values, schemaName string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, schemaName)
}

// post issues a POST with a JSON body. Submissions are not retried:
// the server does not promise idempotency for attempt posts.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.doOnce(ctx, http.MethodPost, path, nil, payload, "")
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, schemaName string) (json.RawMessage, error) {
	var lastErr error
	for attempt := range c.retry.MaxAttempts {
		raw, err := c.doOnce(ctx, method, path, query, body, schemaName)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if !retryable(err) || attempt == c.retry.MaxAttempts-1 {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoff(attempt)):
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body []byte, schemaName string) (json.RawMessage, error) {
	if c.session != nil {
		if err := c.session.Valid(time.Now()); err != nil {
			return nil, err
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(raw)}
	}

	// An empty body is left for the caller to interpret; the analytics
	// endpoint uses it as its zero state.
	if schemaName != "" && len(raw) > 0 {
		if err := validatePayload(schemaName, raw); err != nil {
			return nil, &PayloadError{Path: path, Err: err}
		}
	}
	return raw, nil
}

// maxBodySize caps response reads; no documented payload approaches it.
const maxBodySize = 8 << 20

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Transient()
	}
	var pe *PayloadError
	if errors.As(err, &pe) {
		return false
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, auth.ErrTokenExpired) || errors.Is(err, auth.ErrNoToken) {
		return false
	}
	// Anything else from the transport is a connection-level failure.
	return true
}

// backoff returns exponential backoff with jitter for the given attempt.
func (c *Client) backoff(attempt int) time.Duration {
	wait := float64(c.retry.InitialWait) * math.Pow(c.retry.Multiplier, float64(attempt))
	if wait > float64(c.retry.MaxWait) {
		wait = float64(c.retry.MaxWait)
	}
	// Up to 25% jitter to avoid herding on a recovering server.
	wait += wait * 0.25 * rand.Float64()
	return time.Duration(wait)
}

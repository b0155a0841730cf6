// Package auth inspects the platform session token.
//
// Tokens are issued by the platform's auth service; this client only
// carries them. Parsing is unverified on purpose: the signature belongs
// to the server, but the expiry claim lets us tell the learner their
// session is stale before a request dies with a 401.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrNoToken means no session token is configured at all.
var ErrNoToken = errors.New("no session token configured")

// ErrTokenExpired means the token's exp claim has passed.
var ErrTokenExpired = errors.New("session token expired, sign in again")

// Session wraps a bearer token with whatever claims could be read.
type Session struct {
	Token     string
	Subject   string
	ExpiresAt time.Time // zero if the token carries no exp claim
}

// NewSession parses the token without verifying its signature. A token
// that is not a JWT at all is still usable (opaque API keys exist in
// older accounts), so parse failures degrade to a claims-free session.
func NewSession(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	s := &Session{Token: token}

	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return s, nil
	}

	s.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Valid reports token usability at the given instant.
func (s *Session) Valid(now time.Time) error {
	if s == nil || s.Token == "" {
		return ErrNoToken
	}
	if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return fmt.Errorf("%w (expired %s)", ErrTokenExpired, s.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

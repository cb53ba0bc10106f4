package session

import (
	"context"
	"errors"
	"time"

	"socialfeed/internal/core/session"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrInvalidSession  = errors.New("invalid session token")
)

// SessionRepository stores live sessions. Records disappear on their own once
// the ttl passes.
type SessionRepository interface {
	Save(ctx context.Context, s *session.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// Token is the signed value handed to the client as the session cookie.
type Token struct {
	Value     string
	UserID    string
	ExpiresAt time.Time
}

package contracts

import (
	"clinic-portal/internal/app/models"
	"context"
	"time"
)

// SessionState is the per-browser session flag shared by the auth client,
// the request decorator and the views.
type SessionState interface {
	ID() string
	IsAuthenticated() bool
	Username() string
	BasicToken() string
	MarkAuthenticated(ctx context.Context, username, token string) error
	MarkUnauthenticated(ctx context.Context) error
}

// SessionStore returns (nil, nil) from Find when no record exists.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionNotifier is implemented by session states that report changes of
// the authenticated flag.
type SessionNotifier interface {
	Subscribe(fn func(authenticated bool)) (unsubscribe func())
}

package session

import (
	"context"
	"errors"
)

// Session is the minimal identity record persisted per token: enough to
// re-hydrate authentication state without touching the users table.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

var ErrNotFound = errors.New("session not found")

type Store interface {
	// Create persists the session and returns its opaque token.
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

package service

import (
	"context"

	"github.com/sharansub/screensaway/internal/domain"
)

type AuthService interface {
	// Register creates the account and establishes an authenticated session,
	// returning the session token.
	Register(ctx context.Context, username, password string) (*domain.Account, string, error)
	Login(ctx context.Context, username, password string) (*domain.Account, string, error)
	Logout(ctx context.Context, token string) error
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/repository"
	"github.com/sharansub/screensaway/internal/session"
)

type authService struct {
	accountRepo repository.AccountRepository
	sessions    session.Store
}

func NewAuthService(accountRepo repository.AccountRepository, sessions session.Store) AuthService {
	return &authService{
		accountRepo: accountRepo,
		sessions:    sessions,
	}
}

// normalizeUsername makes username handling case-insensitive.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func hashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func (s *authService) Register(ctx context.Context, username, password string) (*domain.Account, string, error) {
	normalized := normalizeUsername(username)

	existing, err := s.accountRepo.GetByUsername(ctx, normalized)
	if err != nil && err.Error() != "account not found" {
		return nil, "", domain.NewGatewayError(err)
	}
	if existing != nil {
		return nil, "", domain.ErrUsernameTaken
	}

	account := &domain.Account{
		Username:     normalized,
		PasswordHash: hashPassword(password),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if err.Error() == "username already exists" {
			return nil, "", domain.ErrUsernameTaken
		}
		return nil, "", domain.NewGatewayError(err)
	}

	token, err := s.sessions.Create(ctx, session.Session{
		UserID:   account.ID,
		Username: account.Username,
	})
	if err != nil {
		return nil, "", domain.NewGatewayError(err)
	}

	return account, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.Account, string, error) {
	normalized := normalizeUsername(username)

	// A missing account and a wrong password are indistinguishable here.
	account, err := s.accountRepo.GetByCredentials(ctx, normalized, hashPassword(password))
	if err != nil {
		if err.Error() == "account not found" {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", domain.NewGatewayError(err)
	}

	token, err := s.sessions.Create(ctx, session.Session{
		UserID:   account.ID,
		Username: account.Username,
	})
	if err != nil {
		return nil, "", domain.NewGatewayError(err)
	}

	return account, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return domain.NewGatewayError(err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/sharansub/screensaway/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
}

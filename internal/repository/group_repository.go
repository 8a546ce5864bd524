package repository

import (
	"context"

	"github.com/sharansub/screensaway/internal/domain"
)

type GroupRepository interface {
	// Create inserts the group and the creator's membership row in one
	// transaction so a failed membership insert never orphans the group.
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Group, error)
	AddMember(ctx context.Context, groupID, userID string) error
	GetMemberships(ctx context.Context, groupID string) ([]*domain.Membership, error)
	GetGroupIDsForUser(ctx context.Context, userID string) ([]string, error)
	HasMember(ctx context.Context, groupID, userID string) (bool, error)
}

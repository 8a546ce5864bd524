package service

import (
	"context"

	"github.com/sharansub/screensaway/internal/domain"
)

type GroupService interface {
	ListGroupsForUser(ctx context.Context, userID string) ([]*domain.Group, error)
	CreateGroup(ctx context.Context, name, creatorID string) (*domain.Group, error)
	// GetMembersWithRanking returns the group's members sorted ascending by
	// today's screen-time minutes; ties retain join order.
	GetMembersWithRanking(ctx context.Context, groupID, viewerID string) ([]*domain.RankedMember, error)
	AddMember(ctx context.Context, groupID, username, requesterID string) error
}

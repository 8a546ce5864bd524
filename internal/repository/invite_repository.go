package repository

import (
	"context"

	"github.com/sharansub/screensaway/internal/domain"
)

type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	GetByID(ctx context.Context, id string) (*domain.Invite, error)
	GetPendingByInvitee(ctx context.Context, inviteeID string) ([]*domain.Invite, error)
	HasPending(ctx context.Context, groupID, inviteeID string) (bool, error)
	// Accept calls the accept_group_invite stored procedure, which flips the
	// invite to accepted and inserts the membership row as one atomic unit.
	Accept(ctx context.Context, inviteID string) error
	Decline(ctx context.Context, inviteID string) error
}

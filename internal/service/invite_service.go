package service

import (
	"context"

	"github.com/sharansub/screensaway/internal/domain"
)

type InviteService interface {
	ListPendingInvites(ctx context.Context, userID string) ([]*domain.PendingInvite, error)
	SendInvite(ctx context.Context, groupID, inviteeUsername, inviterID string) (*domain.Invite, error)
	AcceptInvite(ctx context.Context, inviteID, userID string) error
	DeclineInvite(ctx context.Context, inviteID, userID string) error
}

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/repository"
)

type inviteService struct {
	inviteRepo  repository.InviteRepository
	groupRepo   repository.GroupRepository
	accountRepo repository.AccountRepository
}

func NewInviteService(
	inviteRepo repository.InviteRepository,
	groupRepo repository.GroupRepository,
	accountRepo repository.AccountRepository,
) InviteService {
	return &inviteService{
		inviteRepo:  inviteRepo,
		groupRepo:   groupRepo,
		accountRepo: accountRepo,
	}
}

func (s *inviteService) ListPendingInvites(ctx context.Context, userID string) ([]*domain.PendingInvite, error) {
	invites, err := s.inviteRepo.GetPendingByInvitee(ctx, userID)
	if err != nil {
		return nil, domain.NewGatewayError(err)
	}

	if len(invites) == 0 {
		return []*domain.PendingInvite{}, nil
	}

	groupIDSet := make(map[string]struct{}, len(invites))
	inviterIDSet := make(map[string]struct{}, len(invites))
	for _, invite := range invites {
		groupIDSet[invite.GroupID] = struct{}{}
		inviterIDSet[invite.InviterID] = struct{}{}
	}

	groupIDs := make([]string, 0, len(groupIDSet))
	for id := range groupIDSet {
		groupIDs = append(groupIDs, id)
	}
	inviterIDs := make([]string, 0, len(inviterIDSet))
	for id := range inviterIDSet {
		inviterIDs = append(inviterIDs, id)
	}

	var groups []*domain.Group
	var inviters []*domain.Account

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = s.groupRepo.GetByIDs(gctx, groupIDs)
		return err
	})
	g.Go(func() error {
		var err error
		inviters, err = s.accountRepo.GetByIDs(gctx, inviterIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewGatewayError(err)
	}

	groupNames := make(map[string]string, len(groups))
	for _, group := range groups {
		groupNames[group.ID] = group.Name
	}
	inviterNames := make(map[string]string, len(inviters))
	for _, inviter := range inviters {
		inviterNames[inviter.ID] = inviter.Username
	}

	pending := make([]*domain.PendingInvite, 0, len(invites))
	for _, invite := range invites {
		groupName, ok := groupNames[invite.GroupID]
		if !ok {
			return nil, domain.NewGatewayError(fmt.Errorf("no group for invite %s", invite.ID))
		}
		inviterName, ok := inviterNames[invite.InviterID]
		if !ok {
			return nil, domain.NewGatewayError(fmt.Errorf("no inviter for invite %s", invite.ID))
		}

		pending = append(pending, &domain.PendingInvite{
			Invite:          *invite,
			GroupName:       groupName,
			InviterUsername: inviterName,
		})
	}

	return pending, nil
}

func (s *inviteService) SendInvite(ctx context.Context, groupID, inviteeUsername, inviterID string) (*domain.Invite, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if err.Error() == "group not found" {
			return nil, domain.NewNotFoundError("group with id " + groupID)
		}
		return nil, domain.NewGatewayError(err)
	}

	// Creator-only, enforced here rather than trusted to callers.
	if group.CreatedBy != inviterID {
		return nil, domain.ErrNotAuthorized
	}

	invitee, err := s.accountRepo.GetByUsername(ctx, normalizeUsername(inviteeUsername))
	if err != nil {
		if err.Error() == "account not found" {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewGatewayError(err)
	}

	hasPending, err := s.inviteRepo.HasPending(ctx, groupID, invitee.ID)
	if err != nil {
		return nil, domain.NewGatewayError(err)
	}
	if hasPending {
		return nil, domain.ErrInviteExists
	}

	isMember, err := s.groupRepo.HasMember(ctx, groupID, invitee.ID)
	if err != nil {
		return nil, domain.NewGatewayError(err)
	}
	if isMember {
		return nil, domain.ErrAlreadyMember
	}

	invite := &domain.Invite{
		GroupID:   groupID,
		InviterID: inviterID,
		InviteeID: invitee.ID,
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		// Concurrent sender lost the race on the pending-invite index.
		if err.Error() == "invite already exists" {
			return nil, domain.ErrInviteExists
		}
		return nil, domain.NewGatewayError(err)
	}

	return invite, nil
}

func (s *inviteService) AcceptInvite(ctx context.Context, inviteID, userID string) error {
	invite, err := s.getPendingInviteFor(ctx, inviteID, userID)
	if err != nil {
		return err
	}

	if err := s.inviteRepo.Accept(ctx, invite.ID); err != nil {
		return domain.NewGatewayError(err)
	}

	return nil
}

func (s *inviteService) DeclineInvite(ctx context.Context, inviteID, userID string) error {
	invite, err := s.getPendingInviteFor(ctx, inviteID, userID)
	if err != nil {
		return err
	}

	if err := s.inviteRepo.Decline(ctx, invite.ID); err != nil {
		if err.Error() == "invite not found" {
			return domain.NewNotFoundError("pending invite with id " + inviteID)
		}
		return domain.NewGatewayError(err)
	}

	return nil
}

// getPendingInviteFor loads the invite and checks it is pending and addressed
// to userID. Accepted and declined invites are terminal.
func (s *inviteService) getPendingInviteFor(ctx context.Context, inviteID, userID string) (*domain.Invite, error) {
	invite, err := s.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		if err.Error() == "invite not found" {
			return nil, domain.NewNotFoundError("invite with id " + inviteID)
		}
		return nil, domain.NewGatewayError(err)
	}

	if invite.InviteeID != userID {
		return nil, domain.ErrNotAuthorized
	}

	if invite.Status != domain.InviteStatusPending {
		return nil, domain.NewNotFoundError("pending invite with id " + inviteID)
	}

	return invite, nil
}

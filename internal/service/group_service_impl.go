package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/repository"
)

type groupService struct {
	groupRepo      repository.GroupRepository
	accountRepo    repository.AccountRepository
	screenTimeRepo repository.ScreenTimeRepository
}

func NewGroupService(
	groupRepo repository.GroupRepository,
	accountRepo repository.AccountRepository,
	screenTimeRepo repository.ScreenTimeRepository,
) GroupService {
	return &groupService{
		groupRepo:      groupRepo,
		accountRepo:    accountRepo,
		screenTimeRepo: screenTimeRepo,
	}
}

func (s *groupService) ListGroupsForUser(ctx context.Context, userID string) ([]*domain.Group, error) {
	groupIDs, err := s.groupRepo.GetGroupIDsForUser(ctx, userID)
	if err != nil {
		return nil, domain.NewGatewayError(err)
	}

	// No memberships: skip the second round-trip entirely.
	if len(groupIDs) == 0 {
		return []*domain.Group{}, nil
	}

	groups, err := s.groupRepo.GetByIDs(ctx, groupIDs)
	if err != nil {
		return nil, domain.NewGatewayError(err)
	}

	return groups, nil
}

func (s *groupService) CreateGroup(ctx context.Context, name, creatorID string) (*domain.Group, error) {
	group := &domain.Group{
		Name:      name,
		CreatedBy: creatorID,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, domain.NewGatewayError(err)
	}

	return group, nil
}

func (s *groupService) GetMembersWithRanking(ctx context.Context, groupID, viewerID string) ([]*domain.RankedMember, error) {
	memberships, err := s.groupRepo.GetMemberships(ctx, groupID)
	if err != nil {
		return nil, domain.NewGatewayError(err)
	}

	if len(memberships) == 0 {
		return []*domain.RankedMember{}, nil
	}

	userIDs := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		userIDs = append(userIDs, membership.UserID)
	}

	var accounts []*domain.Account
	var minutes map[string]int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.accountRepo.GetByIDs(gctx, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		minutes, err = s.screenTimeRepo.GetMinutesForUsers(gctx, userIDs, time.Now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewGatewayError(err)
	}

	usernames := make(map[string]string, len(accounts))
	for _, account := range accounts {
		usernames[account.ID] = account.Username
	}

	members := make([]*domain.RankedMember, 0, len(memberships))
	for _, membership := range memberships {
		username, ok := usernames[membership.UserID]
		if !ok {
			return nil, domain.NewGatewayError(fmt.Errorf("no account for member %s", membership.UserID))
		}

		members = append(members, &domain.RankedMember{
			UserID:        membership.UserID,
			Username:      username,
			JoinedAt:      membership.JoinedAt,
			TodayMinutes:  minutes[membership.UserID],
			IsCurrentUser: membership.UserID == viewerID,
		})
	}

	// Lowest usage wins. The sort is stable so ties keep join order.
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].TodayMinutes < members[j].TodayMinutes
	})

	return members, nil
}

func (s *groupService) AddMember(ctx context.Context, groupID, username, requesterID string) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if err.Error() == "group not found" {
			return domain.NewNotFoundError("group with id " + groupID)
		}
		return domain.NewGatewayError(err)
	}

	// Only the creator can add members directly.
	if group.CreatedBy != requesterID {
		return domain.ErrNotAuthorized
	}

	account, err := s.accountRepo.GetByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if err.Error() == "account not found" {
			return domain.ErrUserNotFound
		}
		return domain.NewGatewayError(err)
	}

	if err := s.groupRepo.AddMember(ctx, groupID, account.ID); err != nil {
		if err.Error() == "already a member" {
			return domain.ErrAlreadyMember
		}
		return domain.NewGatewayError(err)
	}

	return nil
}

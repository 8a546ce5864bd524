package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/session"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.Account, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Group, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockGroupRepository) GetMemberships(ctx context.Context, groupID string) ([]*domain.Membership, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

func (m *MockGroupRepository) GetGroupIDsForUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGroupRepository) HasMember(ctx context.Context, groupID, userID string) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) GetByID(ctx context.Context, id string) (*domain.Invite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}

func (m *MockInviteRepository) GetPendingByInvitee(ctx context.Context, inviteeID string) ([]*domain.Invite, error) {
	args := m.Called(ctx, inviteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invite), args.Error(1)
}

func (m *MockInviteRepository) HasPending(ctx context.Context, groupID, inviteeID string) (bool, error) {
	args := m.Called(ctx, groupID, inviteeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInviteRepository) Accept(ctx context.Context, inviteID string) error {
	args := m.Called(ctx, inviteID)
	return args.Error(0)
}

func (m *MockInviteRepository) Decline(ctx context.Context, inviteID string) error {
	args := m.Called(ctx, inviteID)
	return args.Error(0)
}

type MockScreenTimeRepository struct {
	mock.Mock
}

func (m *MockScreenTimeRepository) GetMinutesForUsers(ctx context.Context, userIDs []string, date time.Time) (map[string]int, error) {
	args := m.Called(ctx, userIDs, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockScreenTimeRepository) Upsert(ctx context.Context, userID string, date time.Time, durationMinutes int) error {
	args := m.Called(ctx, userID, date, durationMinutes)
	return args.Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, s session.Session) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

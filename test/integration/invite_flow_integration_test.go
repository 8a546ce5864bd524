//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/repository/postgres"
	"github.com/sharansub/screensaway/internal/service"
	"github.com/sharansub/screensaway/internal/session"
)

type testEnv struct {
	auth       service.AuthService
	groups     service.GroupService
	invites    service.InviteService
	screenTime service.ScreenTimeService
}

func setupServices(db *sql.DB) *testEnv {
	accountRepo := postgres.NewAccountRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	inviteRepo := postgres.NewInviteRepository(db)
	screenTimeRepo := postgres.NewScreenTimeRepository(db)

	return &testEnv{
		auth:       service.NewAuthService(accountRepo, session.NewMemoryStore()),
		groups:     service.NewGroupService(groupRepo, accountRepo, screenTimeRepo),
		invites:    service.NewInviteService(inviteRepo, groupRepo, accountRepo),
		screenTime: service.NewScreenTimeService(screenTimeRepo),
	}
}

func registerUser(t *testing.T, env *testEnv, username string) *domain.Account {
	t.Helper()
	account, token, err := env.auth.Register(context.Background(), username, "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return account
}

func TestInviteAcceptFlow(t *testing.T) {
	db := setupTestDB(t)
	env := setupServices(db)
	ctx := context.Background()

	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	// Alice creates a group and is its only member.
	group, err := env.groups.CreateGroup(ctx, "Family", alice.ID)
	require.NoError(t, err)

	aliceGroups, err := env.groups.ListGroupsForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceGroups, 1)
	assert.Equal(t, "Family", aliceGroups[0].Name)

	bobGroups, err := env.groups.ListGroupsForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobGroups)

	// Alice invites Bob; Bob sees the invite with group and inviter names.
	invite, err := env.invites.SendInvite(ctx, group.ID, "bob", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusPending, invite.Status)

	pending, err := env.invites.ListPendingInvites(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Family", pending[0].GroupName)
	assert.Equal(t, "alice", pending[0].InviterUsername)

	// Bob accepts: membership appears, invite disappears.
	require.NoError(t, env.invites.AcceptInvite(ctx, invite.ID, bob.ID))

	bobGroups, err = env.groups.ListGroupsForUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobGroups, 1)
	assert.Equal(t, group.ID, bobGroups[0].ID)

	pending, err = env.invites.ListPendingInvites(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestInviteDeclineFlow(t *testing.T) {
	db := setupTestDB(t)
	env := setupServices(db)
	ctx := context.Background()

	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	group, err := env.groups.CreateGroup(ctx, "Family", alice.ID)
	require.NoError(t, err)

	invite, err := env.invites.SendInvite(ctx, group.ID, "bob", alice.ID)
	require.NoError(t, err)

	require.NoError(t, env.invites.DeclineInvite(ctx, invite.ID, bob.ID))

	// Declining grants no membership.
	bobGroups, err := env.groups.ListGroupsForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobGroups)

	pending, err := env.invites.ListPendingInvites(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// A declined invite is terminal for accept and decline.
	assert.ErrorIs(t, env.invites.AcceptInvite(ctx, invite.ID, bob.ID), domain.ErrNotFound)
	assert.ErrorIs(t, env.invites.DeclineInvite(ctx, invite.ID, bob.ID), domain.ErrNotFound)

	// But it does not block a fresh invite to the same user.
	_, err = env.invites.SendInvite(ctx, group.ID, "bob", alice.ID)
	require.NoError(t, err)
}

func TestInviteGuards(t *testing.T) {
	db := setupTestDB(t)
	env := setupServices(db)
	ctx := context.Background()

	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	carol := registerUser(t, env, "carol")

	group, err := env.groups.CreateGroup(ctx, "Family", alice.ID)
	require.NoError(t, err)

	// Only the creator may invite.
	_, err = env.invites.SendInvite(ctx, group.ID, "carol", bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	invite, err := env.invites.SendInvite(ctx, group.ID, "bob", alice.ID)
	require.NoError(t, err)

	// A second pending invite for the same user is rejected.
	_, err = env.invites.SendInvite(ctx, group.ID, "bob", alice.ID)
	assert.ErrorIs(t, err, domain.ErrInviteExists)

	// Only the invitee may accept or decline.
	assert.ErrorIs(t, env.invites.AcceptInvite(ctx, invite.ID, carol.ID), domain.ErrNotAuthorized)
	assert.ErrorIs(t, env.invites.DeclineInvite(ctx, invite.ID, carol.ID), domain.ErrNotAuthorized)

	require.NoError(t, env.invites.AcceptInvite(ctx, invite.ID, bob.ID))

	// Existing members cannot be invited again.
	_, err = env.invites.SendInvite(ctx, group.ID, "bob", alice.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)

	// Unknown invitee.
	_, err = env.invites.SendInvite(ctx, group.ID, "ghost", alice.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

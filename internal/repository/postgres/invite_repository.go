package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sharansub/screensaway/internal/domain"
)

type inviteRepository struct {
	executor DBExecutor
}

func NewInviteRepository(db *sql.DB) *inviteRepository {
	return &inviteRepository{executor: db}
}

func (r *inviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	query := `
		INSERT INTO group_invites (group_id, inviter_id, invitee_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	invite.Status = domain.InviteStatusPending
	err := r.executor.QueryRowContext(
		ctx,
		query,
		invite.GroupID,
		invite.InviterID,
		invite.InviteeID,
		invite.Status,
		time.Now(),
	).Scan(&invite.ID, &invite.CreatedAt)

	if err != nil {
		// partial unique index on (group_id, invitee_id) where status = 'pending'
		if isUniqueViolation(err) {
			return errors.New("invite already exists")
		}
		return err
	}

	return nil
}

func (r *inviteRepository) GetByID(ctx context.Context, id string) (*domain.Invite, error) {
	query := `
		SELECT id, group_id, inviter_id, invitee_id, status, created_at
		FROM group_invites
		WHERE id = $1
	`

	invite := &domain.Invite{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&invite.ID,
		&invite.GroupID,
		&invite.InviterID,
		&invite.InviteeID,
		&invite.Status,
		&invite.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("invite not found")
		}
		return nil, err
	}

	return invite, nil
}

func (r *inviteRepository) GetPendingByInvitee(ctx context.Context, inviteeID string) ([]*domain.Invite, error) {
	query := `
		SELECT id, group_id, inviter_id, invitee_id, status, created_at
		FROM group_invites
		WHERE invitee_id = $1 AND status = $2
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, inviteeID, domain.InviteStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []*domain.Invite
	for rows.Next() {
		invite := &domain.Invite{}
		err := rows.Scan(
			&invite.ID,
			&invite.GroupID,
			&invite.InviterID,
			&invite.InviteeID,
			&invite.Status,
			&invite.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}

	return invites, rows.Err()
}

func (r *inviteRepository) HasPending(ctx context.Context, groupID, inviteeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM group_invites
			WHERE group_id = $1 AND invitee_id = $2 AND status = $3
		)
	`

	var exists bool
	err := r.executor.QueryRowContext(ctx, query, groupID, inviteeID, domain.InviteStatusPending).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Accept delegates to the accept_group_invite function so the status change
// and the membership insert commit as one unit.
func (r *inviteRepository) Accept(ctx context.Context, inviteID string) error {
	_, err := r.executor.ExecContext(ctx, `SELECT accept_group_invite($1)`, inviteID)
	return err
}

func (r *inviteRepository) Decline(ctx context.Context, inviteID string) error {
	query := `
		UPDATE group_invites
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	result, err := r.executor.ExecContext(ctx, query, inviteID, domain.InviteStatusDeclined, domain.InviteStatusPending)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("invite not found")
	}

	return nil
}

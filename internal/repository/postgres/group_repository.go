package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sharansub/screensaway/internal/domain"
)

type groupRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewGroupRepository(db *sql.DB) *groupRepository {
	return &groupRepository{db: db, executor: db}
}

// Create inserts the group and the creator's membership in one transaction.
func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (name, created_by, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	now := time.Now()
	err = tx.QueryRowContext(ctx, query, group.Name, group.CreatedBy, now).
		Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		return err
	}

	memberQuery := `
		INSERT INTO group_members (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`

	_, err = tx.ExecContext(ctx, memberQuery, group.ID, group.CreatedBy, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	query := `
		SELECT id, name, created_by, created_at
		FROM groups
		WHERE id = $1
	`

	group := &domain.Group{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedBy,
		&group.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("group not found")
		}
		return nil, err
	}

	return group, nil
}

func (r *groupRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Group, error) {
	if len(ids) == 0 {
		return []*domain.Group{}, nil
	}

	query := `
		SELECT id, name, created_by, created_at
		FROM groups
		WHERE id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*domain.Group
	for rows.Next() {
		group := &domain.Group{}
		err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.CreatedBy,
			&group.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, userID string) error {
	query := `
		INSERT INTO group_members (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.executor.ExecContext(ctx, query, groupID, userID, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("already a member")
		}
		return err
	}

	return nil
}

func (r *groupRepository) GetMemberships(ctx context.Context, groupID string) ([]*domain.Membership, error) {
	query := `
		SELECT group_id, user_id, joined_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at
	`

	rows, err := r.executor.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []*domain.Membership
	for rows.Next() {
		membership := &domain.Membership{}
		err := rows.Scan(
			&membership.GroupID,
			&membership.UserID,
			&membership.JoinedAt,
		)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}

	return memberships, rows.Err()
}

func (r *groupRepository) GetGroupIDsForUser(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT group_id
		FROM group_members
		WHERE user_id = $1
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groupIDs []string
	for rows.Next() {
		var groupID string
		if err := rows.Scan(&groupID); err != nil {
			return nil, err
		}
		groupIDs = append(groupIDs, groupID)
	}

	return groupIDs, rows.Err()
}

func (r *groupRepository) HasMember(ctx context.Context, groupID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := r.executor.QueryRowContext(ctx, query, groupID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

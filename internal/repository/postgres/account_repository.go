package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sharansub/screensaway/internal/domain"
)

type accountRepository struct {
	executor DBExecutor
}

func NewAccountRepository(db *sql.DB) *accountRepository {
	return &accountRepository{executor: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		account.Username,
		account.PasswordHash,
		time.Now(),
	).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("username already exists")
		}
		return err
	}

	return nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	return r.scanAccount(r.executor.QueryRowContext(ctx, query, username))
}

func (r *accountRepository) GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.Account, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1 AND password_hash = $2
	`

	return r.scanAccount(r.executor.QueryRowContext(ctx, query, username, passwordHash))
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanAccount(r.executor.QueryRowContext(ctx, query, id))
}

func (r *accountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if len(ids) == 0 {
		return []*domain.Account{}, nil
	}

	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = ANY($1)
	`

	rows, err := r.executor.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account := &domain.Account{}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.PasswordHash,
			&account.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			account.UpdatedAt = &updatedAt.Time
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.CreatedAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("account not found")
		}
		return nil, err
	}

	if updatedAt.Valid {
		account.UpdatedAt = &updatedAt.Time
	}

	return account, nil
}

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharansub/screensaway/internal/domain"
)

func setupAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewAccountRepository(db), mock
}

func TestAccountRepository_Create(t *testing.T) {
	t.Run("successful insert returns generated id", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		now := time.Now()
		account := &domain.Account{
			Username:     "alice",
			PasswordHash: "deadbeef",
		}

		rows := sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("11111111-1111-1111-1111-111111111111", now)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "deadbeef", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(context.Background(), account)

		require.NoError(t, err)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", account.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to username already exists", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "deadbeef", sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(context.Background(), &domain.Account{
			Username:     "alice",
			PasswordHash: "deadbeef",
		})

		require.Error(t, err)
		assert.Equal(t, "username already exists", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow("user-1", "alice", "deadbeef", now, nil)
		mock.ExpectQuery("SELECT id, username, password_hash").
			WithArgs("alice").
			WillReturnRows(rows)

		account, err := repo.GetByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, "user-1", account.ID)
		assert.Equal(t, "alice", account.Username)
		assert.Nil(t, account.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an explicit not-found, not a decode failure", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		mock.ExpectQuery("SELECT id, username, password_hash").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		account, err := repo.GetByUsername(context.Background(), "ghost")

		require.Error(t, err)
		assert.Nil(t, account)
		assert.Equal(t, "account not found", err.Error())
	})
}

func TestAccountRepository_GetByCredentials(t *testing.T) {
	t.Run("matches username and password hash together", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow("user-1", "alice", "deadbeef", now, nil)
		mock.ExpectQuery("SELECT id, username, password_hash").
			WithArgs("alice", "deadbeef").
			WillReturnRows(rows)

		account, err := repo.GetByCredentials(context.Background(), "alice", "deadbeef")

		require.NoError(t, err)
		assert.Equal(t, "user-1", account.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong hash yields not found", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		mock.ExpectQuery("SELECT id, username, password_hash").
			WithArgs("alice", "badhash").
			WillReturnError(sql.ErrNoRows)

		account, err := repo.GetByCredentials(context.Background(), "alice", "badhash")

		require.Error(t, err)
		assert.Nil(t, account)
		assert.Equal(t, "account not found", err.Error())
	})
}

func TestAccountRepository_GetByIDs(t *testing.T) {
	t.Run("empty id set short-circuits without a query", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		accounts, err := repo.GetByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, accounts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fetches all requested accounts in one query", func(t *testing.T) {
		repo, mock := setupAccountRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow("user-1", "alice", "h1", now, nil).
			AddRow("user-2", "bob", "h2", now, nil)
		mock.ExpectQuery("SELECT id, username, password_hash").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		accounts, err := repo.GetByIDs(context.Background(), []string{"user-1", "user-2"})

		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "alice", accounts[0].Username)
		assert.Equal(t, "bob", accounts[1].Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/mocks"
	"github.com/sharansub/screensaway/internal/session"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration establishes a session", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		ctx := context.Background()
		mockAccountRepo.On("GetByUsername", mock.Anything, "alice").
			Return(nil, errors.New("account not found")).Once()
		mockAccountRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
			return a.Username == "alice" && a.PasswordHash == hashPassword("secret-password")
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Account).ID = "user-1"
		}).Return(nil).Once()
		mockSessions.On("Create", mock.Anything, session.Session{UserID: "user-1", Username: "alice"}).
			Return("token-1", nil).Once()

		account, token, err := svc.Register(ctx, "  Alice ", "secret-password")

		require.NoError(t, err)
		assert.Equal(t, "alice", account.Username)
		assert.Equal(t, "user-1", account.ID)
		assert.Equal(t, "token-1", token)
		mockAccountRepo.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("username taken regardless of case", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		existing := &domain.Account{ID: "user-1", Username: "alice"}

		ctx := context.Background()
		mockAccountRepo.On("GetByUsername", mock.Anything, "alice").Return(existing, nil).Once()

		account, token, err := svc.Register(ctx, "ALICE", "secret-password")

		require.Error(t, err)
		assert.Nil(t, account)
		assert.Empty(t, token)
		assert.True(t, errors.Is(err, domain.ErrUsernameTaken))
		mockAccountRepo.AssertExpectations(t)
	})

	t.Run("insert conflict on concurrent registration maps to username taken", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		ctx := context.Background()
		mockAccountRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, errors.New("account not found")).Once()
		mockAccountRepo.On("Create", mock.Anything, mock.Anything).
			Return(errors.New("username already exists")).Once()

		_, _, err := svc.Register(ctx, "bob", "secret-password")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUsernameTaken))
		mockAccountRepo.AssertExpectations(t)
	})

	t.Run("lookup failure surfaces as gateway error", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		ctx := context.Background()
		mockAccountRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, errors.New("connection refused")).Once()

		_, _, err := svc.Register(ctx, "bob", "secret-password")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrGatewayError))
		mockAccountRepo.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		account := &domain.Account{ID: "user-1", Username: "alice"}

		ctx := context.Background()
		mockAccountRepo.On("GetByCredentials", mock.Anything, "alice", hashPassword("secret-password")).
			Return(account, nil).Once()
		mockSessions.On("Create", mock.Anything, session.Session{UserID: "user-1", Username: "alice"}).
			Return("token-1", nil).Once()

		result, token, err := svc.Login(ctx, "Alice", "secret-password")

		require.NoError(t, err)
		assert.Equal(t, "user-1", result.ID)
		assert.Equal(t, "token-1", token)
		mockAccountRepo.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		ctx := context.Background()
		mockAccountRepo.On("GetByCredentials", mock.Anything, "alice", mock.Anything).
			Return(nil, errors.New("account not found")).Twice()

		_, _, err := svc.Login(ctx, "alice", "wrong-password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))

		_, _, err = svc.Login(ctx, "alice", "another-guess")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))

		mockAccountRepo.AssertExpectations(t)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("logout clears the session", func(t *testing.T) {
		mockAccountRepo := new(mocks.MockAccountRepository)
		mockSessions := new(mocks.MockSessionStore)

		svc := NewAuthService(mockAccountRepo, mockSessions)

		ctx := context.Background()
		mockSessions.On("Delete", mock.Anything, "token-1").Return(nil).Once()

		err := svc.Logout(ctx, "token-1")

		require.NoError(t, err)
		mockSessions.AssertExpectations(t)
	})
}

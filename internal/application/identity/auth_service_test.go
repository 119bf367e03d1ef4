package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/auth"
	"github.com/petroenergy/petrodash/internal/infrastructure/config"
)

// MockAccountRepository is a mock implementation of identity.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *identity.Account, profile *identity.Profile) error {
	args := m.Called(ctx, account, profile)
	return args.Error(0)
}

func (m *MockAccountRepository) CreateBatch(ctx context.Context, pairs []identity.AccountWithProfile) error {
	args := m.Called(ctx, pairs)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, accountID string) (*identity.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindProfile(ctx context.Context, accountID string) (*identity.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]identity.AccountWithProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.AccountWithProfile), args.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Stats(ctx context.Context) (identity.AccountStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(identity.AccountStats), args.Error(1)
}

// MockRecorder is a mock implementation of audit.Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, entry audit.Entry) {
	m.Called(ctx, entry)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough-123",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "petrodash-test",
		MaxRefreshCount:        3,
	})
}

func newTestAuthService(repo *MockAccountRepository, recorder *MockRecorder) *AuthService {
	return NewAuthService(repo, testJWTService(), auth.NewInMemoryTokenBlacklist(), recorder, zap.NewNop())
}

func activeEncoder(t *testing.T, password string) *identity.Account {
	t.Helper()
	account, err := identity.NewAccountWithPassword(
		"encoder@petroenergy.com.ph", password, identity.RoleEncoder, "PSC", "PSC")
	require.NoError(t, err)
	return account
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		repo.On("FindByEmail", mock.Anything, "encoder@petroenergy.com.ph").Return(account, nil)
		repo.On("FindProfile", mock.Anything, account.AccountID).Return(&identity.Profile{
			FirstName: "Maria", LastName: "Santos",
		}, nil)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
			return e.ActionType == audit.ActionLogin
		})).Return()

		result, err := service.Login(context.Background(), LoginInput{
			Email:    "encoder@petroenergy.com.ph",
			Password: "correct-password",
			IP:       "10.0.0.5",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "R05", result.Account.Role)
		assert.Equal(t, "Encoder", result.Account.RoleName)
		assert.Equal(t, "Maria Santos", result.Account.FullName)
		recorder.AssertExpectations(t)
	})

	t.Run("rejects wrong password with invalid credentials", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		repo.On("FindByEmail", mock.Anything, "encoder@petroenergy.com.ph").Return(account, nil)

		_, err := service.Login(context.Background(), LoginInput{
			Email:    "encoder@petroenergy.com.ph",
			Password: "wrong-password",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown email with the same error code", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		repo.On("FindByEmail", mock.Anything, "ghost@petroenergy.com.ph").Return(nil, shared.ErrNotFound)

		_, err := service.Login(context.Background(), LoginInput{
			Email:    "ghost@petroenergy.com.ph",
			Password: "whatever",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects deactivated accounts", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		account.Deactivate()
		repo.On("FindByEmail", mock.Anything, "encoder@petroenergy.com.ph").Return(account, nil)

		_, err := service.Login(context.Background(), LoginInput{
			Email:    "encoder@petroenergy.com.ph",
			Password: "correct-password",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the pair for an active account", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		repo.On("FindByEmail", mock.Anything, account.Email).Return(account, nil)
		repo.On("FindProfile", mock.Anything, account.AccountID).Return(nil, shared.ErrNotFound)
		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		login, err := service.Login(context.Background(), LoginInput{
			Email: account.Email, Password: "correct-password",
		})
		require.NoError(t, err)

		refreshed, err := service.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: login.RefreshToken,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEmpty(t, refreshed.RefreshToken)
	})

	t.Run("rejects refresh for a deactivated account", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		repo.On("FindByEmail", mock.Anything, account.Email).Return(account, nil)
		repo.On("FindProfile", mock.Anything, account.AccountID).Return(nil, shared.ErrNotFound)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		login, err := service.Login(context.Background(), LoginInput{
			Email: account.Email, Password: "correct-password",
		})
		require.NoError(t, err)

		account.Deactivate()
		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)

		_, err = service.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: login.RefreshToken,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})

	t.Run("rejects garbage refresh tokens", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		_, err := service.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: "not-a-token",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})
}

func TestAuthService_Validate(t *testing.T) {
	t.Run("accepts a live token and rejects it after logout", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		repo.On("FindByEmail", mock.Anything, account.Email).Return(account, nil)
		repo.On("FindProfile", mock.Anything, account.AccountID).Return(nil, shared.ErrNotFound)
		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		login, err := service.Login(context.Background(), LoginInput{
			Email: account.Email, Password: "correct-password",
		})
		require.NoError(t, err)

		assert.True(t, service.Validate(context.Background(), login.AccessToken))

		claims, err := testJWTService().ValidateAccessToken(login.AccessToken)
		require.NoError(t, err)
		err = service.Logout(context.Background(), LogoutInput{
			AccountID: account.AccountID,
			TokenJTI:  claims.ID,
			TokenTTL:  claims.GetRemainingTTL(),
		})
		require.NoError(t, err)

		assert.False(t, service.Validate(context.Background(), login.AccessToken))
	})

	t.Run("rejects tokens of deactivated accounts", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		account := activeEncoder(t, "correct-password")
		repo.On("FindByEmail", mock.Anything, account.Email).Return(account, nil)
		repo.On("FindProfile", mock.Anything, account.AccountID).Return(nil, shared.ErrNotFound)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		login, err := service.Login(context.Background(), LoginInput{
			Email: account.Email, Password: "correct-password",
		})
		require.NoError(t, err)

		account.Deactivate()
		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)

		assert.False(t, service.Validate(context.Background(), login.AccessToken))
	})

	t.Run("rejects malformed tokens without error status", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAuthService(repo, recorder)

		assert.False(t, service.Validate(context.Background(), "garbage"))
		assert.False(t, service.Validate(context.Background(), ""))
	})
}

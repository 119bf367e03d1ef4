package identity

import (
	"context"
	"strings"
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
)

func newTestAccountService(repo *MockAccountRepository, recorder *MockRecorder) *AccountService {
	return NewAccountService(repo, testJWTService(), auth.NewInMemoryTokenBlacklist(), recorder, zap.NewNop())
}

func TestAccountService_CreateAccount(t *testing.T) {
	t.Run("creates account with profile and default password", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("ExistsByEmail", mock.Anything, "new@petroenergy.com.ph").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
			return e.ActionType == audit.ActionCreate && e.TargetTable == "account"
		})).Return()

		detail, err := service.CreateAccount(context.Background(), "admin-1", CreateAccountInput{
			Email:     "new@petroenergy.com.ph",
			Role:      identity.RoleEncoder,
			EmpID:     "EMP-2001",
			FirstName: "Juan",
			LastName:  "Dela Cruz",
		})

		require.NoError(t, err)
		assert.Equal(t, "R05", detail.Role)
		assert.Equal(t, "EMP-2001", detail.EmpID)
		assert.Equal(t, "Juan Dela Cruz", detail.FullName)
		repo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("ExistsByEmail", mock.Anything, "taken@petroenergy.com.ph").Return(true, nil)

		_, err := service.CreateAccount(context.Background(), "admin-1", CreateAccountInput{
			Email:     "taken@petroenergy.com.ph",
			Role:      identity.RoleEncoder,
			FirstName: "Juan",
			LastName:  "Dela Cruz",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccountService_StatusChanges(t *testing.T) {
	t.Run("deactivate flips status and audits old and new values", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		account, err := identity.NewAccount("enc@petroenergy.com.ph", identity.RoleEncoder, "", "")
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)
		repo.On("Update", mock.Anything, account).Return(nil)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
			return e.OldValue == "active" && e.NewValue == "deactivated"
		})).Return()

		err = service.Deactivate(context.Background(), "admin-1", account.AccountID)

		require.NoError(t, err)
		assert.False(t, account.IsActive())
		recorder.AssertExpectations(t)
	})

	t.Run("deactivate invalidates tokens issued beforehand", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		blacklist := auth.NewInMemoryTokenBlacklist()
		jwtService := testJWTService()
		service := NewAccountService(repo, jwtService, blacklist, recorder, zap.NewNop())

		account, err := identity.NewAccount("enc@petroenergy.com.ph", identity.RoleEncoder, "", "")
		require.NoError(t, err)

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			AccountID: account.AccountID,
			Email:     account.Email,
			Role:      string(account.Role),
		})
		require.NoError(t, err)
		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)
		repo.On("Update", mock.Anything, account).Return(nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		require.NoError(t, service.Deactivate(context.Background(), "admin-1", account.AccountID))

		invalidated, err := blacklist.IsAccountTokenInvalidated(
			context.Background(), account.AccountID, claims.GetIssuedAtTime())
		require.NoError(t, err)
		assert.True(t, invalidated, "tokens minted before deactivation must be rejected")
	})

	t.Run("activate leaves existing tokens untouched", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		blacklist := auth.NewInMemoryTokenBlacklist()
		service := NewAccountService(repo, testJWTService(), blacklist, recorder, zap.NewNop())

		account, err := identity.NewAccount("enc@petroenergy.com.ph", identity.RoleEncoder, "", "")
		require.NoError(t, err)
		account.Deactivate()

		repo.On("FindByID", mock.Anything, account.AccountID).Return(account, nil)
		repo.On("Update", mock.Anything, account).Return(nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		require.NoError(t, service.Activate(context.Background(), "admin-1", account.AccountID))

		invalidated, err := blacklist.IsAccountTokenInvalidated(
			context.Background(), account.AccountID, time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.False(t, invalidated)
	})

	t.Run("activate on a missing account returns not found", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("FindByID", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

		err := service.Activate(context.Background(), "admin-1", "ghost")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestAccountService_BulkCreate(t *testing.T) {
	csvData := func(rows ...string) []byte {
		lines := append([]string{strings.Join(bulkAccountHeaders, ",")}, rows...)
		return []byte(strings.Join(lines, "\n") + "\n")
	}

	t.Run("creates valid rows and skips incomplete ones", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(pairs []identity.AccountWithProfile) bool {
			return len(pairs) == 2
		})).Return(nil)
		recorder.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
			return e.ActionType == audit.ActionBulkCreate
		})).Return()

		result, err := service.BulkCreate(context.Background(), "admin-1", csvData(
			"a@petroenergy.com.ph,R05,PSC,PSC,EMP-1,Ana,,Reyes,,,,,Female",
			",R05,PSC,PSC,EMP-2,No,,Email,,,,,",
			"b@petroenergy.com.ph,R04,PSC,PSC,EMP-3,Ben,,Cruz,,,,03/15/1990,Male",
		))

		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalRows)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.SkippedRows, 1)
		assert.Contains(t, result.SkippedRows[0].Reason, "missing email")
		repo.AssertExpectations(t)
	})

	t.Run("skips rows with bad birthdates and unknown roles", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		result, err := service.BulkCreate(context.Background(), "admin-1", csvData(
			"a@petroenergy.com.ph,R99,,,EMP-1,Ana,,Reyes,,,,,",
			"b@petroenergy.com.ph,R05,,,EMP-2,Ben,,Cruz,,,,1990-03-15,",
			"c@petroenergy.com.ph,R05,,,EMP-3,Carla,,Diaz,,,,12/01/1985,",
		))

		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("skips rows with missing or repeated employee IDs", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(pairs []identity.AccountWithProfile) bool {
			return len(pairs) == 1 && pairs[0].Profile.EmpID == "EMP-1"
		})).Return(nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		result, err := service.BulkCreate(context.Background(), "admin-1", csvData(
			"a@petroenergy.com.ph,R05,,,EMP-1,Ana,,Reyes,,,,,",
			"b@petroenergy.com.ph,R05,,,,Ben,,Cruz,,,,,",
			"c@petroenergy.com.ph,R05,,,EMP-1,Carla,,Diaz,,,,,",
		))

		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 2, result.Skipped)
		require.Len(t, result.SkippedRows, 2)
		assert.Contains(t, result.SkippedRows[0].Reason, "missing emp_id")
		assert.Contains(t, result.SkippedRows[1].Reason, "duplicate of emp_id on line 2")
		repo.AssertExpectations(t)
	})

	t.Run("skips emails already registered", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		repo.On("ExistsByEmail", mock.Anything, "a@petroenergy.com.ph").Return(true, nil)
		recorder.On("Record", mock.Anything, mock.Anything).Return()

		result, err := service.BulkCreate(context.Background(), "admin-1", csvData(
			"a@petroenergy.com.ph,R05,,,EMP-1,Ana,,Reyes,,,,,",
		))

		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
		repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("rejects a CSV without the required headers", func(t *testing.T) {
		repo := new(MockAccountRepository)
		recorder := new(MockRecorder)
		service := newTestAccountService(repo, recorder)

		_, err := service.BulkCreate(context.Background(), "admin-1",
			[]byte("name,birthday\nAna,03/15/1990\n"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MISSING_HEADERS", domainErr.Code)
	})
}

func TestAccountService_BulkTemplate(t *testing.T) {
	service := newTestAccountService(new(MockAccountRepository), new(MockRecorder))

	template := string(service.BulkTemplate())
	lines := strings.Split(strings.TrimSpace(template), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(bulkAccountHeaders, ","), lines[0])
	assert.Contains(t, lines[1], "@petroenergy.com.ph")
}

package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/shared"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormAccountRepository_FindByEmail(t *testing.T) {
	t.Run("finds account case-insensitively", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormAccountRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"account_id", "email", "account_password", "account_role",
			"power_plant_id", "company_id", "account_status", "date_created", "date_updated",
		}).AddRow("acc-001", "encoder@petroenergy.com.ph", "hash", "R05", "PSC", "PSC", "active", now, now)

		mock.ExpectQuery(`SELECT \* FROM "account" WHERE LOWER\(email\) = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("encoder@petroenergy.com.ph", 1).
			WillReturnRows(rows)

		account, err := repo.FindByEmail(context.Background(), "Encoder@PetroEnergy.com.ph")

		assert.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "acc-001", account.AccountID)
		assert.Equal(t, identity.RoleEncoder, account.Role)
		assert.Equal(t, "PSC", account.PowerPlantID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing account to not found", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormAccountRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "account" WHERE LOWER\(email\) = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("missing@petroenergy.com.ph", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		account, err := repo.FindByEmail(context.Background(), "missing@petroenergy.com.ph")

		assert.Nil(t, account)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountRepository_Create(t *testing.T) {
	t.Run("persists account and profile in one transaction", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormAccountRepository(db)

		account, err := identity.NewAccountWithPassword(
			"new.encoder@petroenergy.com.ph", "s3cret-pass", identity.RoleEncoder, "PSC", "PSC")
		require.NoError(t, err)
		profile := &identity.Profile{
			EmpID:     "EMP-1001",
			AccountID: account.AccountID,
			FirstName: "Maria",
			LastName:  "Santos",
		}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "account"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO "user_profile"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err = repo.Create(context.Background(), account, profile)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps duplicate email to already exists", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormAccountRepository(db)

		account, err := identity.NewAccountWithPassword(
			"dup@petroenergy.com.ph", "s3cret-pass", identity.RoleEncoder, "", "")
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "account"`).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()

		err = repo.Create(context.Background(), account, &identity.Profile{AccountID: account.AccountID})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountRepository_Update(t *testing.T) {
	t.Run("returns not found when no row matches", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormAccountRepository(db)

		mock.ExpectExec(`UPDATE "account" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &identity.Account{AccountID: "ghost"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountRepository_Stats(t *testing.T) {
	t.Run("aggregates role and status counts", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormAccountRepository(db)

		statusRows := sqlmock.NewRows([]string{"status", "total"}).
			AddRow("active", int64(8)).
			AddRow("deactivated", int64(2))
		mock.ExpectQuery(`SELECT account_status AS status, COUNT\(\*\) AS total FROM "account" GROUP BY .*`).
			WillReturnRows(statusRows)

		roleRows := sqlmock.NewRows([]string{"role", "total"}).
			AddRow("R01", int64(1)).
			AddRow("R03", int64(2)).
			AddRow("R05", int64(5))
		mock.ExpectQuery(`SELECT account_role AS role, COUNT\(\*\) AS total FROM "account" GROUP BY .*`).
			WillReturnRows(roleRows)

		stats, err := repo.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(8), stats.ActiveAccounts)
		assert.Equal(t, int64(2), stats.DeactivatedAccounts)
		assert.Equal(t, int64(1), stats.Admins)
		assert.Equal(t, int64(2), stats.OfficeCheckers)
		assert.Equal(t, int64(5), stats.Encoders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/shared"
)

func TestGormEnvironmentRepository_FindWaterAbstraction(t *testing.T) {
	t.Run("finds record by ID", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"wa_id", "company_id", "year", "month", "quarter",
			"volume", "unit_of_measurement", "created_at", "updated_at",
		}).AddRow("PSC-2024-001", "PSC", 2024, "January", "Q1", decimal.NewFromInt(1200), "cubic meter", now, now)

		mock.ExpectQuery(`SELECT \* FROM "bronze"\."envi_water_abstraction" WHERE wa_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("PSC-2024-001", 1).
			WillReturnRows(rows)

		rec, err := repo.FindWaterAbstraction(context.Background(), "PSC-2024-001")

		assert.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "PSC", rec.CompanyID)
		assert.Equal(t, "Q1", rec.Quarter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing record to not found", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "bronze"\."envi_water_abstraction" WHERE wa_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		rec, err := repo.FindWaterAbstraction(context.Background(), "ghost")

		assert.Nil(t, rec)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEnvironmentRepository_BulkInsert(t *testing.T) {
	t.Run("allocates contiguous IDs continuing from the stored maximum", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		recs := []environment.Record{
			&environment.WaterAbstraction{CompanyID: "PSC", Year: 2024, Month: "January", Quarter: "Q1", Volume: decimal.NewFromInt(100)},
			&environment.WaterAbstraction{CompanyID: "PSC", Year: 2024, Month: "February", Quarter: "Q1", Volume: decimal.NewFromInt(110)},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT wa_id FROM "bronze"\."envi_water_abstraction" WHERE wa_id LIKE \$1 ORDER BY wa_id DESC LIMIT .*`).
			WithArgs("PSC-2024-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"wa_id"}).AddRow("PSC-2024-007"))
		mock.ExpectExec(`INSERT INTO "bronze"\."envi_water_abstraction"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO "bronze"\."envi_water_abstraction"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		inserted, err := repo.BulkInsert(context.Background(), environment.TypeWaterAbstraction, recs)

		assert.NoError(t, err)
		assert.Equal(t, 2, inserted)
		assert.Equal(t, "PSC-2024-008", recs[0].RecordID())
		assert.Equal(t, "PSC-2024-009", recs[1].RecordID())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("starts at one for a fresh key", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		rec := &environment.HazardWasteDisposed{CompanyID: "MGI", Year: 2025, WasteDisposed: decimal.NewFromInt(3)}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT hwd_id FROM "bronze"\."envi_hazard_waste_disposed" WHERE hwd_id LIKE \$1 ORDER BY hwd_id DESC LIMIT .*`).
			WithArgs("MGI-2025-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"hwd_id"}))
		mock.ExpectExec(`INSERT INTO "bronze"\."envi_hazard_waste_disposed"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Insert(context.Background(), environment.TypeHazardWasteDisposed, rec)

		assert.NoError(t, err)
		assert.Equal(t, "MGI-2025-001", rec.HWDID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("queries the sequence once per key", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		recs := []environment.Record{
			&environment.WaterDischarge{CompanyID: "PSC", Year: 2024, Quarter: "Q1", Volume: decimal.NewFromInt(40)},
			&environment.WaterDischarge{CompanyID: "MGI", Year: 2024, Quarter: "Q1", Volume: decimal.NewFromInt(55)},
			&environment.WaterDischarge{CompanyID: "PSC", Year: 2024, Quarter: "Q2", Volume: decimal.NewFromInt(42)},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT wd_id FROM "bronze"\."envi_water_discharge" WHERE wd_id LIKE \$1 ORDER BY wd_id DESC LIMIT .*`).
			WithArgs("PSC-2024-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"wd_id"}))
		mock.ExpectQuery(`SELECT wd_id FROM "bronze"\."envi_water_discharge" WHERE wd_id LIKE \$1 ORDER BY wd_id DESC LIMIT .*`).
			WithArgs("MGI-2024-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"wd_id"}).AddRow("MGI-2024-002"))
		for range recs {
			mock.ExpectExec(`INSERT INTO "bronze"\."envi_water_discharge"`).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}
		mock.ExpectCommit()

		inserted, err := repo.BulkInsert(context.Background(), environment.TypeWaterDischarge, recs)

		assert.NoError(t, err)
		assert.Equal(t, 3, inserted)
		assert.Equal(t, "PSC-2024-001", recs[0].RecordID())
		assert.Equal(t, "MGI-2024-003", recs[1].RecordID())
		assert.Equal(t, "PSC-2024-002", recs[2].RecordID())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a record that does not match the type", func(t *testing.T) {
		db, mock, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT wa_id FROM "bronze"\."envi_water_abstraction" WHERE wa_id LIKE \$1 ORDER BY wa_id DESC LIMIT .*`).
			WithArgs("PSC-2024-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"wa_id"}))
		mock.ExpectRollback()

		_, err := repo.BulkInsert(context.Background(), environment.TypeWaterAbstraction, []environment.Record{
			&environment.WaterDischarge{CompanyID: "PSC", Year: 2024},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RECORD_TYPE_MISMATCH", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unknown record type", func(t *testing.T) {
		db, _, sqlDB := newMockDB(t)
		defer sqlDB.Close()
		repo := NewGormEnvironmentRepository(db)

		_, err := repo.BulkInsert(context.Background(), environment.RecordType("bogus"), nil)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_RECORD_TYPE", domainErr.Code)
	})
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		id      string
		want    int
		wantErr bool
	}{
		{id: "PSC-2024-007", want: 7},
		{id: "CP-20250601-123", want: 123},
		{id: "PSC-2024-1000", want: 1000},
		{id: "nodash", wantErr: true},
		{id: "PSC-2024-", wantErr: true},
		{id: "PSC-2024-xyz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			seq, err := parseSequence(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, seq)
		})
	}
}

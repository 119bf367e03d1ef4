package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/domain/workflow"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

func setupWorkflowTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.RecordStatusModel{})
	require.NoError(t, err)

	return db
}

func TestWorkflowRepository_CreateAndFind(t *testing.T) {
	db := setupWorkflowTestDB(t)
	repo := NewGormWorkflowRepository(db)
	ctx := context.Background()

	rs := workflow.NewRecordStatus("PSC-2024-001", "bronze.envi_water_abstraction")
	err := repo.Create(ctx, rs)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rs.CSID, "CS"), "CSID should be assigned on create: %s", rs.CSID)

	found, err := repo.FindByRecord(ctx, "PSC-2024-001")
	require.NoError(t, err)
	assert.Equal(t, rs.CSID, found.CSID)
	assert.Equal(t, "bronze.envi_water_abstraction", found.TableName)
	assert.Equal(t, workflow.StatusPending, found.Status)
}

func TestWorkflowRepository_FindByRecord_NotFound(t *testing.T) {
	db := setupWorkflowTestDB(t)
	repo := NewGormWorkflowRepository(db)

	_, err := repo.FindByRecord(context.Background(), "PSC-2024-999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestWorkflowRepository_Update(t *testing.T) {
	db := setupWorkflowTestDB(t)
	repo := NewGormWorkflowRepository(db)
	ctx := context.Background()

	rs := workflow.NewRecordStatus("PSC-2024-002", "bronze.envi_water_discharge")
	require.NoError(t, repo.Create(ctx, rs))

	require.NoError(t, rs.Transition(workflow.StatusSiteApproved, ""))
	rs.UpdatedBy = "checker-1"
	rs.UpdatedAt = time.Now()

	require.NoError(t, repo.Update(ctx, rs))

	found, err := repo.FindByRecord(ctx, "PSC-2024-002")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusSiteApproved, found.Status)
	assert.Equal(t, "checker-1", found.UpdatedBy)
}

func TestWorkflowRepository_Update_NotFound(t *testing.T) {
	db := setupWorkflowTestDB(t)
	repo := NewGormWorkflowRepository(db)

	rs := workflow.NewRecordStatus("PSC-2024-003", "bronze.envi_water_consumption")
	rs.CSID = "CS202506011030001299"
	rs.Status = workflow.StatusSiteApproved

	err := repo.Update(context.Background(), rs)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestWorkflowRepository_UniqueIDs(t *testing.T) {
	db := setupWorkflowTestDB(t)
	repo := NewGormWorkflowRepository(db)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		rs := workflow.NewRecordStatus(
			"PSC-2024-"+string(rune('A'+i)),
			"bronze.envi_water_abstraction",
		)
		require.NoError(t, repo.Create(ctx, rs))
		assert.False(t, seen[rs.CSID], "duplicate CSID %s", rs.CSID)
		seen[rs.CSID] = true
	}
}

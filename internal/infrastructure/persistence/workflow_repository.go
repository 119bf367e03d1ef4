package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/domain/workflow"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormWorkflowRepository implements workflow.Repository using GORM.
// Status IDs are timestamp-prefixed with a two-digit counter, matching
// the audit trail ID scheme.
type GormWorkflowRepository struct {
	db *gorm.DB

	mu         sync.Mutex
	lastPrefix string
	sequence   int
}

// NewGormWorkflowRepository creates a new GormWorkflowRepository.
func NewGormWorkflowRepository(db *gorm.DB) *GormWorkflowRepository {
	return &GormWorkflowRepository{db: db}
}

// Create persists a new record status row, assigning its ID.
func (r *GormWorkflowRepository) Create(ctx context.Context, rs *workflow.RecordStatus) error {
	rs.CSID = r.nextID(rs.CreatedAt)
	if err := r.db.WithContext(ctx).Create(models.RecordStatusModelFromDomain(rs)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByRecord finds the status row paired with a bronze record.
func (r *GormWorkflowRepository) FindByRecord(ctx context.Context, recordID string) (*workflow.RecordStatus, error) {
	var model models.RecordStatusModel
	if err := r.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists a status transition.
func (r *GormWorkflowRepository) Update(ctx context.Context, rs *workflow.RecordStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.RecordStatusModel{}).
		Where("cs_id = ?", rs.CSID).
		Updates(map[string]interface{}{
			"status":     string(rs.Status),
			"remarks":    rs.Remarks,
			"updated_by": rs.UpdatedBy,
			"updated_at": rs.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormWorkflowRepository) nextID(at time.Time) string {
	if at.IsZero() {
		at = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := "CS" + at.UTC().Format("20060102150405") + fmt.Sprintf("%02d", at.Nanosecond()/int(10*time.Millisecond))
	if prefix == r.lastPrefix {
		r.sequence++
	} else {
		r.lastPrefix = prefix
		r.sequence = 1
	}
	return fmt.Sprintf("%s%02d", prefix, r.sequence%100)
}

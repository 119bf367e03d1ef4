package persistence

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormAuditRepository implements audit.Repository using GORM. It owns
// the audit ID sequence: IDs are timestamp-prefixed with a two-digit
// counter so entries appended in the same hundredth of a second stay
// unique.
type GormAuditRepository struct {
	db *gorm.DB

	mu         sync.Mutex
	lastPrefix string
	sequence   int
}

// NewGormAuditRepository creates a new GormAuditRepository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append persists an audit entry, assigning its ID.
func (r *GormAuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	entry.AuditID = r.nextID(entry.Timestamp)
	return r.db.WithContext(ctx).Create(models.AuditModelFromDomain(entry)).Error
}

// FindAll returns the full trail joined to actor emails, newest first.
func (r *GormAuditRepository) FindAll(ctx context.Context) ([]audit.EntryWithActor, error) {
	type joinedRow struct {
		models.AuditModel
		Email string
	}
	var rows []joinedRow
	if err := r.db.WithContext(ctx).
		Table("audit_trail").
		Select("audit_trail.*, account.email").
		Joins("LEFT JOIN account ON account.account_id = audit_trail.account_id").
		Order("audit_trail.audit_timestamp DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]audit.EntryWithActor, 0, len(rows))
	for i := range rows {
		result = append(result, audit.EntryWithActor{
			Entry: rows[i].AuditModel.ToDomain(),
			Email: rows[i].Email,
		})
	}
	return result, nil
}

func (r *GormAuditRepository) nextID(at time.Time) string {
	if at.IsZero() {
		at = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := audit.FormatID(at, 0)[:18]
	if prefix == r.lastPrefix {
		r.sequence++
	} else {
		r.lastPrefix = prefix
		r.sequence = 1
	}
	return audit.FormatID(at, r.sequence)
}

// ZapAuditRecorder implements audit.Recorder over a Repository. Append
// failures are logged and never surface to the audited operation.
type ZapAuditRecorder struct {
	repo   audit.Repository
	logger *zap.Logger
}

// NewZapAuditRecorder creates a recorder backed by repo.
func NewZapAuditRecorder(repo audit.Repository, logger *zap.Logger) *ZapAuditRecorder {
	return &ZapAuditRecorder{repo: repo, logger: logger}
}

// Record appends the entry, logging any failure.
func (r *ZapAuditRecorder) Record(ctx context.Context, entry audit.Entry) {
	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Error("failed to append audit entry",
			zap.String("action_type", entry.ActionType),
			zap.String("target_table", entry.TargetTable),
			zap.String("record_id", entry.RecordID),
			zap.Error(err),
		)
	}
}

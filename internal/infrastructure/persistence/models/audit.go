package models

import (
	"time"

	"github.com/petroenergy/petrodash/internal/domain/audit"
)

// AuditModel is the persistence model for audit trail entries.
type AuditModel struct {
	AuditID     string    `gorm:"column:audit_id;type:varchar(20);primaryKey"`
	AccountID   string    `gorm:"column:account_id;type:varchar(36);not null;index"`
	TargetTable string    `gorm:"column:target_table;type:varchar(64);not null"`
	RecordID    string    `gorm:"column:record_id;type:varchar(30)"`
	ActionType  string    `gorm:"column:action_type;type:varchar(20);not null"`
	OldValue    string    `gorm:"column:old_value;type:text"`
	NewValue    string    `gorm:"column:new_value;type:text"`
	AuditedAt   time.Time `gorm:"column:audit_timestamp;not null;index"`
	Description string    `gorm:"column:description;type:text"`
}

// TableName returns the table name for GORM
func (AuditModel) TableName() string {
	return "audit_trail"
}

// ToDomain converts the persistence model to a domain audit Entry.
func (m *AuditModel) ToDomain() audit.Entry {
	return audit.Entry{
		AuditID:     m.AuditID,
		AccountID:   m.AccountID,
		TargetTable: m.TargetTable,
		RecordID:    m.RecordID,
		ActionType:  m.ActionType,
		OldValue:    m.OldValue,
		NewValue:    m.NewValue,
		Timestamp:   m.AuditedAt,
		Description: m.Description,
	}
}

// AuditModelFromDomain creates a persistence model from a domain Entry.
func AuditModelFromDomain(e audit.Entry) *AuditModel {
	return &AuditModel{
		AuditID:     e.AuditID,
		AccountID:   e.AccountID,
		TargetTable: e.TargetTable,
		RecordID:    e.RecordID,
		ActionType:  e.ActionType,
		OldValue:    e.OldValue,
		NewValue:    e.NewValue,
		AuditedAt:   e.Timestamp,
		Description: e.Description,
	}
}

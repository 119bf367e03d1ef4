package models

import (
	"time"

	"github.com/petroenergy/petrodash/internal/domain/workflow"
)

// RecordStatusModel is the persistence model for checker states.
type RecordStatusModel struct {
	CSID        string    `gorm:"column:cs_id;type:varchar(20);primaryKey"`
	RecordID    string    `gorm:"column:record_id;type:varchar(20);not null;uniqueIndex"`
	TargetTable string    `gorm:"column:target_table;type:varchar(60);not null"`
	Status      string    `gorm:"column:status;type:varchar(3);not null"`
	Remarks     string    `gorm:"column:remarks;type:text"`
	UpdatedBy   string    `gorm:"column:updated_by;type:varchar(36)"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (RecordStatusModel) TableName() string {
	return "record_status"
}

func (m *RecordStatusModel) ToDomain() *workflow.RecordStatus {
	return &workflow.RecordStatus{
		CSID:      m.CSID,
		RecordID:  m.RecordID,
		TableName: m.TargetTable,
		Status:    workflow.Status(m.Status),
		Remarks:   m.Remarks,
		UpdatedBy: m.UpdatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func RecordStatusModelFromDomain(rs *workflow.RecordStatus) *RecordStatusModel {
	return &RecordStatusModel{
		CSID:        rs.CSID,
		RecordID:    rs.RecordID,
		TargetTable: rs.TableName,
		Status:      string(rs.Status),
		Remarks:     rs.Remarks,
		UpdatedBy:   rs.UpdatedBy,
		CreatedAt:   rs.CreatedAt,
		UpdatedAt:   rs.UpdatedAt,
	}
}

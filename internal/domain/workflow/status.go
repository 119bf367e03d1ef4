package workflow

import (
	"context"
	"time"

	"github.com/petroenergy/petrodash/internal/domain/shared"
)

// Status codes for the checker workflow. Every bronze record carries a
// paired record_status row that moves through these states.
type Status string

const (
	StatusPending      Status = "PND" // awaiting site-level review
	StatusSiteApproved Status = "CAP" // approved by site-level checker
	StatusHeadApproved Status = "HAP" // approved by head-office checker
	StatusRejected     Status = "REJ"
)

var statusNames = map[Status]string{
	StatusPending:      "Pending",
	StatusSiteApproved: "Approved (Site)",
	StatusHeadApproved: "Approved (Head Office)",
	StatusRejected:     "Rejected",
}

// Valid reports whether s is a known status code.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Name returns the human readable status name, or the raw code when
// unknown.
func (s Status) Name() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

// RecordStatus pairs a bronze record with its checker state.
type RecordStatus struct {
	CSID      string
	RecordID  string
	TableName string
	Status    Status
	Remarks   string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecordStatus pairs a freshly inserted bronze record with a pending
// checker state. The status ID is assigned by the repository.
func NewRecordStatus(recordID, tableName string) *RecordStatus {
	now := time.Now().UTC()
	return &RecordStatus{
		RecordID:  recordID,
		TableName: tableName,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transition validates and applies a status change. Rejection requires
// remarks; approved records cannot move back to pending.
func (rs *RecordStatus) Transition(to Status, remarks string) error {
	if !to.Valid() {
		return shared.NewDomainError("INVALID_STATUS", "unknown record status code: "+string(to))
	}
	if to == StatusRejected && remarks == "" {
		return shared.NewDomainError("REMARKS_REQUIRED", "rejecting a record requires remarks")
	}
	if rs.Status == StatusHeadApproved && to == StatusPending {
		return shared.NewDomainError("INVALID_TRANSITION", "head approved records cannot return to pending")
	}
	rs.Status = to
	rs.Remarks = remarks
	rs.UpdatedAt = time.Now().UTC()
	return nil
}

// Repository defines persistence for record_status rows.
type Repository interface {
	Create(ctx context.Context, rs *RecordStatus) error
	FindByRecord(ctx context.Context, recordID string) (*RecordStatus, error)
	Update(ctx context.Context, rs *RecordStatus) error
}

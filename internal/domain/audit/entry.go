package audit

import (
	"context"
	"fmt"
	"time"
)

// Action types recorded in the audit trail.
const (
	ActionLogin        = "login"
	ActionLogout       = "logout"
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionBulkCreate   = "bulk_create"
	ActionStatusChange = "status_change"
)

// Entry is a single audit trail record.
type Entry struct {
	AuditID     string
	AccountID   string
	TargetTable string
	RecordID    string
	ActionType  string
	OldValue    string
	NewValue    string
	Timestamp   time.Time
	Description string
}

// EntryWithActor is an entry joined to the actor's email for listings.
type EntryWithActor struct {
	Entry
	Email string
}

// FormatID builds a 20-character audit ID: "AU" + UTC timestamp
// (YYYYMMDDHHMMSS) + 2-digit truncated milliseconds + 2-digit sequence.
func FormatID(at time.Time, sequence int) string {
	at = at.UTC()
	ms := at.Nanosecond() / int(10*time.Millisecond)
	return fmt.Sprintf("AU%s%02d%02d", at.Format("20060102150405"), ms, sequence%100)
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(accountID, targetTable, recordID, actionType, oldValue, newValue, description string) Entry {
	now := time.Now()
	return Entry{
		AuditID:     FormatID(now, 1),
		AccountID:   accountID,
		TargetTable: targetTable,
		RecordID:    recordID,
		ActionType:  actionType,
		OldValue:    oldValue,
		NewValue:    newValue,
		Timestamp:   now.UTC(),
		Description: description,
	}
}

// Repository defines audit trail persistence.
type Repository interface {
	// Append persists an audit entry.
	Append(ctx context.Context, entry Entry) error

	// FindAll returns the full trail joined to actor emails, newest first.
	FindAll(ctx context.Context) ([]EntryWithActor, error)
}

// Recorder is the write-side interface services depend on. Audit failures
// are logged by implementations and never fail the audited operation.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

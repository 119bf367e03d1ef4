package workflow

import (
	"context"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/workflow"
)

// SetStatusInput is the checker's status decision for one record.
type SetStatusInput struct {
	RecordID string
	Status   workflow.Status
	Remarks  string
}

// Service moves bronze records through the checker workflow.
type Service struct {
	statuses workflow.Repository
	auditor  audit.Recorder
	logger   *zap.Logger
}

func NewService(statuses workflow.Repository, auditor audit.Recorder, logger *zap.Logger) *Service {
	return &Service{statuses: statuses, auditor: auditor, logger: logger}
}

// Get finds the checker status paired with a record.
func (s *Service) Get(ctx context.Context, recordID string) (*workflow.RecordStatus, error) {
	return s.statuses.FindByRecord(ctx, recordID)
}

// SetStatus applies a checker decision to a record and audits the
// transition with its old and new status codes.
func (s *Service) SetStatus(ctx context.Context, actorID string, input SetStatusInput) (*workflow.RecordStatus, error) {
	rs, err := s.statuses.FindByRecord(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}

	old := rs.Status
	if err := rs.Transition(input.Status, input.Remarks); err != nil {
		return nil, err
	}
	rs.UpdatedBy = actorID

	if err := s.statuses.Update(ctx, rs); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, audit.NewEntry(
		actorID, rs.TableName, rs.RecordID, audit.ActionStatusChange,
		string(old), string(rs.Status),
		"status changed from "+old.Name()+" to "+rs.Status.Name()))

	s.logger.Info("Record status updated",
		zap.String("record_id", rs.RecordID),
		zap.String("old_status", string(old)),
		zap.String("new_status", string(rs.Status)))
	return rs, nil
}

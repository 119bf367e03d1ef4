package energy

import (
	"context"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/energy"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Service exposes read access to the bronze energy records.
type Service struct {
	records energy.Repository
	logger  *zap.Logger
}

func NewService(records energy.Repository, logger *zap.Logger) *Service {
	return &Service{records: records, logger: logger}
}

// Get finds one energy record by ID.
func (s *Service) Get(ctx context.Context, energyID string) (*energy.Record, error) {
	return s.records.FindByID(ctx, energyID)
}

// List lists energy records, newest first, with paging clamped to
// sane bounds.
func (s *Service) List(ctx context.Context, filter energy.Filter) ([]energy.Record, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.records.FindAll(ctx, filter)
}

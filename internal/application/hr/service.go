package hr

import (
	"context"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/hr"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Service exposes read access to the bronze HR tables and the gold
// workforce analytics built on top of them.
type Service struct {
	employees hr.Repository
	logger    *zap.Logger
}

func NewService(employees hr.Repository, logger *zap.Logger) *Service {
	return &Service{employees: employees, logger: logger}
}

// GetDemographic finds one employee demographic row by employee ID.
func (s *Service) GetDemographic(ctx context.Context, employeeID string) (*hr.Demographic, error) {
	return s.employees.FindDemographic(ctx, employeeID)
}

// ListDemographics lists demographics with optional company and gender
// filters.
func (s *Service) ListDemographics(ctx context.Context, filter hr.Filter) ([]hr.Demographic, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.employees.ListDemographics(ctx, filter)
}

// GetTenure finds one employee tenure row by employee ID.
func (s *Service) GetTenure(ctx context.Context, employeeID string) (*hr.Tenure, error) {
	return s.employees.FindTenure(ctx, employeeID)
}

// Headcount returns the active employee count per company.
func (s *Service) Headcount(ctx context.Context) ([]hr.Headcount, error) {
	return s.employees.Headcounts(ctx)
}

// Attrition returns per-year workforce totals, resignation counts and
// attrition rates.
func (s *Service) Attrition(ctx context.Context) ([]hr.AttritionYear, error) {
	return s.employees.Attrition(ctx)
}

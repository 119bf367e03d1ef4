package csr

import (
	"context"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/csr"
)

// Service exposes read access to the silver CSR tables.
type Service struct {
	programs csr.Repository
	logger   *zap.Logger
}

func NewService(programs csr.Repository, logger *zap.Logger) *Service {
	return &Service{programs: programs, logger: logger}
}

// Programs lists all CSR programs.
func (s *Service) Programs(ctx context.Context) ([]csr.Program, error) {
	return s.programs.ListPrograms(ctx)
}

// Projects lists projects, optionally scoped to one program.
func (s *Service) Projects(ctx context.Context, programID string) ([]csr.Project, error) {
	return s.programs.ListProjects(ctx, programID)
}

// Activities lists activities joined to their company, project and
// program names plus the paired checker status.
func (s *Service) Activities(ctx context.Context, filter csr.Filter) ([]csr.ActivityDetail, error) {
	return s.programs.ListActivities(ctx, filter)
}

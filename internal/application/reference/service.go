package reference

import (
	"context"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/reference"
)

// Service exposes the ref schema lookups that dashboards and upload
// forms are built from, plus the admin KPI counters and audit trail.
type Service struct {
	refs     reference.Repository
	accounts identity.AccountRepository
	trail    audit.Repository
	logger   *zap.Logger
}

func NewService(refs reference.Repository, accounts identity.AccountRepository, trail audit.Repository, logger *zap.Logger) *Service {
	return &Service{refs: refs, accounts: accounts, trail: trail, logger: logger}
}

func (s *Service) Companies(ctx context.Context) ([]reference.Company, error) {
	return s.refs.ListCompanies(ctx)
}

func (s *Service) PowerPlants(ctx context.Context, companyID string) ([]reference.PowerPlant, error) {
	return s.refs.ListPowerPlants(ctx, companyID)
}

func (s *Service) Provinces(ctx context.Context) ([]string, error) {
	return s.refs.ListProvinces(ctx)
}

func (s *Service) GenerationSources(ctx context.Context) ([]string, error) {
	return s.refs.ListGenerationSources(ctx)
}

func (s *Service) CO2Equivalences(ctx context.Context) ([]reference.CO2Equivalence, error) {
	return s.refs.ListCO2Equivalences(ctx)
}

func (s *Service) ExpenditureTypes(ctx context.Context) ([]reference.ExpenditureType, error) {
	return s.refs.ListExpenditureTypes(ctx)
}

// PlantInfo lists power plants joined to their company and generation
// source details.
func (s *Service) PlantInfo(ctx context.Context) ([]reference.PlantInfo, error) {
	return s.refs.ListPlantInfo(ctx)
}

// KPI returns the admin dashboard account counters per role and status.
func (s *Service) KPI(ctx context.Context) (identity.AccountStats, error) {
	return s.accounts.Stats(ctx)
}

// AuditTrail returns the full audit trail joined to actor emails,
// newest first.
func (s *Service) AuditTrail(ctx context.Context) ([]audit.EntryWithActor, error) {
	return s.trail.FindAll(ctx)
}

package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/environment"
)

// Service serves the gold environment dashboard aggregates.
type Service struct {
	water  environment.AnalyticsRepository
	logger *zap.Logger
}

func NewService(water environment.AnalyticsRepository, logger *zap.Logger) *Service {
	return &Service{water: water, logger: logger}
}

// Water returns the total and per-year volumes for one water metric,
// optionally filtered by company and quarter.
func (s *Service) Water(ctx context.Context, metric environment.WaterMetric, filter environment.WaterFilter) (*environment.WaterSummary, error) {
	return s.water.WaterSummary(ctx, metric, filter)
}

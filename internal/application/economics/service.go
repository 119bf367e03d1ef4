package economics

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/economics"
)

var hundred = decimal.NewFromInt(100)

// Service serves the economic value dashboard from the gold summary
// view.
type Service struct {
	summary economics.Repository
	logger  *zap.Logger
}

func NewService(summary economics.Repository, logger *zap.Logger) *Service {
	return &Service{summary: summary, logger: logger}
}

// Summary returns yearly generated and distributed economic values in
// ascending year order.
func (s *Service) Summary(ctx context.Context) ([]economics.ValueYear, error) {
	return s.summary.YearlySummary(ctx)
}

// Retention derives the yearly retention ratio
// (generated - distributed) / generated as a percentage rounded to one
// decimal. Years with zero generated value report a zero rate.
func (s *Service) Retention(ctx context.Context) ([]economics.RetentionYear, error) {
	years, err := s.summary.YearlySummary(ctx)
	if err != nil {
		return nil, err
	}

	rates := make([]economics.RetentionYear, 0, len(years))
	for _, y := range years {
		rate := decimal.Zero
		if !y.Generated.IsZero() {
			rate = y.Generated.Sub(y.Distributed).Div(y.Generated).Mul(hundred).Round(1)
		}
		rates = append(rates, economics.RetentionYear{Year: y.Year, Rate: rate})
	}
	return rates, nil
}

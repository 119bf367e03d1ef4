package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/economics"
	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/shared"
)

// GormEconomicsRepository reads the gold economic value summary view.
type GormEconomicsRepository struct {
	db *gorm.DB
}

// NewGormEconomicsRepository creates a new GormEconomicsRepository.
func NewGormEconomicsRepository(db *gorm.DB) *GormEconomicsRepository {
	return &GormEconomicsRepository{db: db}
}

// YearlySummary returns value rows in ascending year order.
func (r *GormEconomicsRepository) YearlySummary(ctx context.Context) ([]economics.ValueYear, error) {
	var rows []economics.ValueYear
	err := r.db.WithContext(ctx).Raw(`
		SELECT year, generated, distributed
		FROM gold.vw_economic_value_summary
		ORDER BY year ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GormEnvironmentAnalyticsRepository aggregates the bronze water tables
// for the environment dashboard.
type GormEnvironmentAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormEnvironmentAnalyticsRepository creates a new
// GormEnvironmentAnalyticsRepository.
func NewGormEnvironmentAnalyticsRepository(db *gorm.DB) *GormEnvironmentAnalyticsRepository {
	return &GormEnvironmentAnalyticsRepository{db: db}
}

// WaterSummary returns the grand total plus per-year totals for one
// water metric.
func (r *GormEnvironmentAnalyticsRepository) WaterSummary(ctx context.Context, metric environment.WaterMetric, filter environment.WaterFilter) (*environment.WaterSummary, error) {
	if !metric.Valid() {
		return nil, shared.NewDomainError("INVALID_WATER_METRIC", "unknown water metric: "+string(metric))
	}

	type yearRow struct {
		Year   int
		Volume decimal.Decimal
		Unit   string
	}
	query := r.db.WithContext(ctx).
		Table(metric.RecordType().Table()).
		Select("year, SUM(volume) AS volume, MAX(unit_of_measurement) AS unit")
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Quarter != "" {
		query = query.Where("quarter = ?", filter.Quarter)
	}

	var rows []yearRow
	if err := query.Group("year").Order("year ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := &environment.WaterSummary{
		Metric: metric,
		Total:  decimal.Zero,
		Years:  make([]environment.WaterYearTotal, 0, len(rows)),
	}
	for _, row := range rows {
		summary.Total = summary.Total.Add(row.Volume)
		if summary.Unit == "" {
			summary.Unit = row.Unit
		}
		summary.Years = append(summary.Years, environment.WaterYearTotal{
			Year:   row.Year,
			Volume: row.Volume,
		})
	}
	return summary, nil
}

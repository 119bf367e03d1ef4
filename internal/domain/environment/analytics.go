package environment

import (
	"context"

	"github.com/shopspring/decimal"
)

// WaterMetric selects which bronze water table a dashboard aggregate
// reads from.
type WaterMetric string

const (
	WaterMetricAbstraction WaterMetric = "abstraction"
	WaterMetricDischarge   WaterMetric = "discharge"
	WaterMetricConsumption WaterMetric = "consumption"
)

// Valid reports whether m is a known water metric.
func (m WaterMetric) Valid() bool {
	switch m {
	case WaterMetricAbstraction, WaterMetricDischarge, WaterMetricConsumption:
		return true
	}
	return false
}

// RecordType returns the bronze record type backing the metric.
func (m WaterMetric) RecordType() RecordType {
	switch m {
	case WaterMetricAbstraction:
		return TypeWaterAbstraction
	case WaterMetricDischarge:
		return TypeWaterDischarge
	default:
		return TypeWaterConsumption
	}
}

// WaterYearTotal is the summed volume for one year.
type WaterYearTotal struct {
	Year   int
	Volume decimal.Decimal
}

// WaterSummary is the dashboard aggregate over a water metric: the
// grand total plus a per-year breakdown in ascending year order.
type WaterSummary struct {
	Metric WaterMetric
	Unit   string
	Total  decimal.Decimal
	Years  []WaterYearTotal
}

// WaterFilter narrows water aggregates.
type WaterFilter struct {
	CompanyID string
	Quarter   string
}

// AnalyticsRepository reads dashboard aggregates over the bronze
// environment tables.
type AnalyticsRepository interface {
	WaterSummary(ctx context.Context, metric WaterMetric, filter WaterFilter) (*WaterSummary, error)
}

package energy

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a bronze-layer power generation reading ingested from
// site CSV drops.
type Record struct {
	EnergyID          string
	PowerPlantID      string
	Datetime          string // kept as text in bronze, normalized downstream
	EnergyGenerated   decimal.Decimal
	UnitOfMeasurement string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Filter narrows record listings.
type Filter struct {
	PowerPlantID string
	Offset       int
	Limit        int
}

// Repository defines persistence for bronze energy records.
type Repository interface {
	FindByID(ctx context.Context, energyID string) (*Record, error)
	FindAll(ctx context.Context, filter Filter) ([]Record, error)
}

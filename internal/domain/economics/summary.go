package economics

import (
	"context"

	"github.com/shopspring/decimal"
)

// ValueYear is one row of the gold economic value summary view: total
// economic value generated and distributed for a year.
type ValueYear struct {
	Year        int
	Generated   decimal.Decimal
	Distributed decimal.Decimal
}

// RetentionYear is the derived retention ratio for a year, as a
// percentage rounded to one decimal place.
type RetentionYear struct {
	Year int
	Rate decimal.Decimal
}

// Repository reads the gold economic value summary.
type Repository interface {
	// YearlySummary returns value rows in ascending year order.
	YearlySummary(ctx context.Context) ([]ValueYear, error)
}

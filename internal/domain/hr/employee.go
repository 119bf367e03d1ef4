package hr

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Demographic is one employee row in the bronze HR demographics table.
type Demographic struct {
	EmployeeID string
	CompanyID  string
	Gender     string
	Birthdate  time.Time
	Position   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Tenure tracks an employee's employment span. EndDate is nil while the
// employee is active.
type Tenure struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the tenure has no recorded end date.
func (t Tenure) Active() bool { return t.EndDate == nil }

// Filter narrows demographic listings.
type Filter struct {
	CompanyID string
	Gender    string
	Offset    int
	Limit     int
}

// Headcount is the gold-layer active employee count per company.
type Headcount struct {
	CompanyID string
	Total     int64
}

// AttritionYear is one row of the yearly attrition report: how many
// employees were on book, how many left, and the resulting rate.
type AttritionYear struct {
	Year     int
	Total    int64
	Resigned int64
	Rate     decimal.Decimal
}

// Repository defines persistence for bronze HR data and the gold
// analytics built over it.
type Repository interface {
	FindDemographic(ctx context.Context, employeeID string) (*Demographic, error)
	ListDemographics(ctx context.Context, filter Filter) ([]Demographic, error)
	FindTenure(ctx context.Context, employeeID string) (*Tenure, error)
	Headcounts(ctx context.Context) ([]Headcount, error)
	Attrition(ctx context.Context) ([]AttritionYear, error)
}

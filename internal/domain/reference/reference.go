package reference

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Company is a row of ref.company_main.
type Company struct {
	CompanyID   string
	CompanyName string
	ParentID    string
	BrandColor  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PowerPlant is a row of ref.ref_power_plants.
type PowerPlant struct {
	PowerPlantID     string
	CompanyID        string
	SiteName         string
	Province         string
	GenerationSource string
	EFID             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EmissionFactor maps a generation source to its CO2 intensity.
type EmissionFactor struct {
	EFID             string
	GenerationSource string
	KgCO2PerKWh      decimal.Decimal
}

// CO2Equivalence is a conversion row used by dashboard widgets
// (e.g. kg CO2 to trees planted).
type CO2Equivalence struct {
	EquivalenceID string
	Name          string
	Factor        decimal.Decimal
	Unit          string
	Description   string
}

// ExpenditureType labels economic expenditure categories.
type ExpenditureType struct {
	TypeID      string
	TypeName    string
	Description string
}

// PlantInfo is the joined plant + company + emission source row used by
// site pickers.
type PlantInfo struct {
	PowerPlantID     string
	SiteName         string
	Province         string
	CompanyID        string
	CompanyName      string
	GenerationSource string
	KgCO2PerKWh      decimal.Decimal
}

// Repository defines read access to the ref schema.
type Repository interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	ListPowerPlants(ctx context.Context, companyID string) ([]PowerPlant, error)
	ListProvinces(ctx context.Context) ([]string, error)
	ListGenerationSources(ctx context.Context) ([]string, error)
	ListCO2Equivalences(ctx context.Context) ([]CO2Equivalence, error)
	ListExpenditureTypes(ctx context.Context) ([]ExpenditureType, error)
	ListPlantInfo(ctx context.Context) ([]PlantInfo, error)
	CompanyExists(ctx context.Context, companyID string) (bool, error)
}

package environment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecordType identifies one of the bronze environment tables. The string
// values double as template keys and URL path segments.
type RecordType string

const (
	TypeCompanyProperty      RecordType = "company_property"
	TypeWaterAbstraction     RecordType = "water_abstraction"
	TypeWaterDischarge       RecordType = "water_discharge"
	TypeWaterConsumption     RecordType = "water_consumption"
	TypeDieselConsumption    RecordType = "diesel_consumption"
	TypeElectricConsumption  RecordType = "electric_consumption"
	TypeNonHazardWaste       RecordType = "non_hazard_waste"
	TypeHazardWasteGenerated RecordType = "hazard_waste_generated"
	TypeHazardWasteDisposed  RecordType = "hazard_waste_disposed"
)

// AllRecordTypes lists every bronze environment table in template order.
var AllRecordTypes = []RecordType{
	TypeCompanyProperty,
	TypeWaterAbstraction,
	TypeWaterDischarge,
	TypeWaterConsumption,
	TypeDieselConsumption,
	TypeElectricConsumption,
	TypeNonHazardWaste,
	TypeHazardWasteGenerated,
	TypeHazardWasteDisposed,
}

// Valid reports whether t names a known record type.
func (t RecordType) Valid() bool {
	for _, known := range AllRecordTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Table returns the fully qualified warehouse table name.
func (t RecordType) Table() string {
	return "bronze.envi_" + string(t)
}

// Record is implemented by every bronze environment row. IDs follow
// "<key>-NNN" where the key groups rows sharing a sequence (company-year
// for periodic data, "CP"-date for properties).
type Record interface {
	RecordID() string
	SetRecordID(id string)
	SequenceKey() string
}

// SequenceID renders a record ID from its sequence key and number.
func SequenceID(key string, seq int) string {
	return fmt.Sprintf("%s-%03d", key, seq)
}

// CompanyProperty is a piece of company equipment or a vehicle that
// diesel consumption rows reference.
type CompanyProperty struct {
	CPID      string
	CompanyID string
	CPName    string
	CPType    string // Equipment or Vehicle
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *CompanyProperty) RecordID() string      { return r.CPID }
func (r *CompanyProperty) SetRecordID(id string) { r.CPID = id }
func (r *CompanyProperty) SequenceKey() string {
	return "CP-" + time.Now().UTC().Format("20060102")
}

// WaterAbstraction is a monthly water abstraction volume per company.
type WaterAbstraction struct {
	WAID              string
	CompanyID         string
	Year              int
	Month             string
	Quarter           string
	Volume            decimal.Decimal
	UnitOfMeasurement string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *WaterAbstraction) RecordID() string      { return r.WAID }
func (r *WaterAbstraction) SetRecordID(id string) { r.WAID = id }
func (r *WaterAbstraction) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

// WaterDischarge is a quarterly water discharge volume per company.
type WaterDischarge struct {
	WDID              string
	CompanyID         string
	Year              int
	Quarter           string
	Volume            decimal.Decimal
	UnitOfMeasurement string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *WaterDischarge) RecordID() string      { return r.WDID }
func (r *WaterDischarge) SetRecordID(id string) { r.WDID = id }
func (r *WaterDischarge) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

// WaterConsumption is a quarterly water consumption volume per company.
type WaterConsumption struct {
	WCID              string
	CompanyID         string
	Year              int
	Quarter           string
	Volume            decimal.Decimal
	UnitOfMeasurement string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *WaterConsumption) RecordID() string      { return r.WCID }
func (r *WaterConsumption) SetRecordID(id string) { r.WCID = id }
func (r *WaterConsumption) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

// DieselConsumption is a dated diesel consumption reading for one
// company property.
type DieselConsumption struct {
	DCID              string
	CompanyID         string
	CPID              string
	UnitOfMeasurement string
	Consumption       decimal.Decimal
	Date              time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *DieselConsumption) RecordID() string      { return r.DCID }
func (r *DieselConsumption) SetRecordID(id string) { r.DCID = id }
func (r *DieselConsumption) SequenceKey() string {
	return companyYearKey(r.CompanyID, r.Date.Year())
}

// ElectricConsumption is a quarterly electricity consumption reading
// per source location.
type ElectricConsumption struct {
	ECID              string
	CompanyID         string
	Source            string
	UnitOfMeasurement string
	Consumption       decimal.Decimal
	Quarter           string
	Year              int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *ElectricConsumption) RecordID() string      { return r.ECID }
func (r *ElectricConsumption) SetRecordID(id string) { r.ECID = id }
func (r *ElectricConsumption) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

// NonHazardWaste is a monthly non-hazardous waste amount per metric.
type NonHazardWaste struct {
	NHWID             string
	CompanyID         string
	Metrics           string
	UnitOfMeasurement string
	Waste             decimal.Decimal
	Month             string
	Quarter           string
	Year              int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *NonHazardWaste) RecordID() string      { return r.NHWID }
func (r *NonHazardWaste) SetRecordID(id string) { r.NHWID = id }
func (r *NonHazardWaste) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

// HazardWasteGenerated is a quarterly hazardous waste amount per metric.
type HazardWasteGenerated struct {
	HWGID             string
	CompanyID         string
	Metrics           string
	UnitOfMeasurement string
	WasteGenerated    decimal.Decimal
	Quarter           string
	Year              int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *HazardWasteGenerated) RecordID() string      { return r.HWGID }
func (r *HazardWasteGenerated) SetRecordID(id string) { r.HWGID = id }
func (r *HazardWasteGenerated) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

// HazardWasteDisposed is a yearly hazardous waste disposal amount per metric.
type HazardWasteDisposed struct {
	HWDID             string
	CompanyID         string
	Metrics           string
	UnitOfMeasurement string
	WasteDisposed     decimal.Decimal
	Year              int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *HazardWasteDisposed) RecordID() string      { return r.HWDID }
func (r *HazardWasteDisposed) SetRecordID(id string) { r.HWDID = id }
func (r *HazardWasteDisposed) SequenceKey() string   { return companyYearKey(r.CompanyID, r.Year) }

func companyYearKey(companyID string, year int) string {
	return fmt.Sprintf("%s-%d", companyID, year)
}

// Filter narrows listings of environment records.
type Filter struct {
	CompanyID string
	Year      int
	Quarter   string
	Offset    int
	Limit     int
}

// Repository defines persistence for the bronze environment tables.
// Writes are sequence-aware: implementations assign record IDs that
// continue from the highest existing sequence for the record's key.
type Repository interface {
	FindCompanyProperty(ctx context.Context, id string) (*CompanyProperty, error)
	ListCompanyProperties(ctx context.Context, filter Filter) ([]CompanyProperty, error)

	FindWaterAbstraction(ctx context.Context, id string) (*WaterAbstraction, error)
	ListWaterAbstractions(ctx context.Context, filter Filter) ([]WaterAbstraction, error)

	FindWaterDischarge(ctx context.Context, id string) (*WaterDischarge, error)
	ListWaterDischarges(ctx context.Context, filter Filter) ([]WaterDischarge, error)

	FindWaterConsumption(ctx context.Context, id string) (*WaterConsumption, error)
	ListWaterConsumptions(ctx context.Context, filter Filter) ([]WaterConsumption, error)

	FindDieselConsumption(ctx context.Context, id string) (*DieselConsumption, error)
	ListDieselConsumptions(ctx context.Context, filter Filter) ([]DieselConsumption, error)

	FindElectricConsumption(ctx context.Context, id string) (*ElectricConsumption, error)
	ListElectricConsumptions(ctx context.Context, filter Filter) ([]ElectricConsumption, error)

	FindNonHazardWaste(ctx context.Context, id string) (*NonHazardWaste, error)
	ListNonHazardWastes(ctx context.Context, filter Filter) ([]NonHazardWaste, error)

	FindHazardWasteGenerated(ctx context.Context, id string) (*HazardWasteGenerated, error)
	ListHazardWasteGenerated(ctx context.Context, filter Filter) ([]HazardWasteGenerated, error)

	FindHazardWasteDisposed(ctx context.Context, id string) (*HazardWasteDisposed, error)
	ListHazardWasteDisposed(ctx context.Context, filter Filter) ([]HazardWasteDisposed, error)

	// Insert assigns the next sequential ID for rec's key and persists it.
	Insert(ctx context.Context, t RecordType, rec Record) error

	// BulkInsert assigns contiguous sequential IDs per key and persists
	// all rows in one transaction. Returns the number of rows inserted.
	BulkInsert(ctx context.Context, t RecordType, recs []Record) (int, error)
}

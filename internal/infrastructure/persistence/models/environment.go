package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petroenergy/petrodash/internal/domain/environment"
)

// CompanyPropertyModel is the persistence model for company properties.
type CompanyPropertyModel struct {
	CPID      string    `gorm:"column:cp_id;type:varchar(20);primaryKey"`
	CompanyID string    `gorm:"column:company_id;type:varchar(10);not null;index"`
	CPName    string    `gorm:"column:cp_name;type:varchar(120);not null"`
	CPType    string    `gorm:"column:cp_type;type:varchar(20)"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (CompanyPropertyModel) TableName() string {
	return "bronze.envi_company_property"
}

func (m *CompanyPropertyModel) ToDomain() environment.CompanyProperty {
	return environment.CompanyProperty{
		CPID:      m.CPID,
		CompanyID: m.CompanyID,
		CPName:    m.CPName,
		CPType:    m.CPType,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func CompanyPropertyModelFromDomain(r *environment.CompanyProperty) *CompanyPropertyModel {
	return &CompanyPropertyModel{
		CPID:      r.CPID,
		CompanyID: r.CompanyID,
		CPName:    r.CPName,
		CPType:    r.CPType,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// WaterAbstractionModel is the persistence model for monthly water
// abstraction volumes.
type WaterAbstractionModel struct {
	WAID              string          `gorm:"column:wa_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Year              int             `gorm:"column:year;not null"`
	Month             string          `gorm:"column:month;type:varchar(12)"`
	Quarter           string          `gorm:"column:quarter;type:varchar(2)"`
	Volume            decimal.Decimal `gorm:"column:volume;type:numeric(18,4)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (WaterAbstractionModel) TableName() string {
	return "bronze.envi_water_abstraction"
}

func (m *WaterAbstractionModel) ToDomain() environment.WaterAbstraction {
	return environment.WaterAbstraction{
		WAID:              m.WAID,
		CompanyID:         m.CompanyID,
		Year:              m.Year,
		Month:             m.Month,
		Quarter:           m.Quarter,
		Volume:            m.Volume,
		UnitOfMeasurement: m.UnitOfMeasurement,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func WaterAbstractionModelFromDomain(r *environment.WaterAbstraction) *WaterAbstractionModel {
	return &WaterAbstractionModel{
		WAID:              r.WAID,
		CompanyID:         r.CompanyID,
		Year:              r.Year,
		Month:             r.Month,
		Quarter:           r.Quarter,
		Volume:            r.Volume,
		UnitOfMeasurement: r.UnitOfMeasurement,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// WaterDischargeModel is the persistence model for quarterly water
// discharge volumes.
type WaterDischargeModel struct {
	WDID              string          `gorm:"column:wd_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Year              int             `gorm:"column:year;not null"`
	Quarter           string          `gorm:"column:quarter;type:varchar(2)"`
	Volume            decimal.Decimal `gorm:"column:volume;type:numeric(18,4)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (WaterDischargeModel) TableName() string {
	return "bronze.envi_water_discharge"
}

func (m *WaterDischargeModel) ToDomain() environment.WaterDischarge {
	return environment.WaterDischarge{
		WDID:              m.WDID,
		CompanyID:         m.CompanyID,
		Year:              m.Year,
		Quarter:           m.Quarter,
		Volume:            m.Volume,
		UnitOfMeasurement: m.UnitOfMeasurement,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func WaterDischargeModelFromDomain(r *environment.WaterDischarge) *WaterDischargeModel {
	return &WaterDischargeModel{
		WDID:              r.WDID,
		CompanyID:         r.CompanyID,
		Year:              r.Year,
		Quarter:           r.Quarter,
		Volume:            r.Volume,
		UnitOfMeasurement: r.UnitOfMeasurement,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// WaterConsumptionModel is the persistence model for quarterly water
// consumption volumes.
type WaterConsumptionModel struct {
	WCID              string          `gorm:"column:wc_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Year              int             `gorm:"column:year;not null"`
	Quarter           string          `gorm:"column:quarter;type:varchar(2)"`
	Volume            decimal.Decimal `gorm:"column:volume;type:numeric(18,4)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (WaterConsumptionModel) TableName() string {
	return "bronze.envi_water_consumption"
}

func (m *WaterConsumptionModel) ToDomain() environment.WaterConsumption {
	return environment.WaterConsumption{
		WCID:              m.WCID,
		CompanyID:         m.CompanyID,
		Year:              m.Year,
		Quarter:           m.Quarter,
		Volume:            m.Volume,
		UnitOfMeasurement: m.UnitOfMeasurement,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func WaterConsumptionModelFromDomain(r *environment.WaterConsumption) *WaterConsumptionModel {
	return &WaterConsumptionModel{
		WCID:              r.WCID,
		CompanyID:         r.CompanyID,
		Year:              r.Year,
		Quarter:           r.Quarter,
		Volume:            r.Volume,
		UnitOfMeasurement: r.UnitOfMeasurement,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// DieselConsumptionModel is the persistence model for dated diesel
// consumption readings.
type DieselConsumptionModel struct {
	DCID              string          `gorm:"column:dc_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	CPID              string          `gorm:"column:cp_id;type:varchar(20);not null;index"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	Consumption       decimal.Decimal `gorm:"column:consumption;type:numeric(18,4)"`
	Date              time.Time       `gorm:"column:date;type:date;not null"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (DieselConsumptionModel) TableName() string {
	return "bronze.envi_diesel_consumption"
}

func (m *DieselConsumptionModel) ToDomain() environment.DieselConsumption {
	return environment.DieselConsumption{
		DCID:              m.DCID,
		CompanyID:         m.CompanyID,
		CPID:              m.CPID,
		UnitOfMeasurement: m.UnitOfMeasurement,
		Consumption:       m.Consumption,
		Date:              m.Date,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func DieselConsumptionModelFromDomain(r *environment.DieselConsumption) *DieselConsumptionModel {
	return &DieselConsumptionModel{
		DCID:              r.DCID,
		CompanyID:         r.CompanyID,
		CPID:              r.CPID,
		UnitOfMeasurement: r.UnitOfMeasurement,
		Consumption:       r.Consumption,
		Date:              r.Date,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// ElectricConsumptionModel is the persistence model for quarterly
// electricity consumption readings.
type ElectricConsumptionModel struct {
	ECID              string          `gorm:"column:ec_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Source            string          `gorm:"column:source;type:varchar(120)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	Consumption       decimal.Decimal `gorm:"column:consumption;type:numeric(18,4)"`
	Quarter           string          `gorm:"column:quarter;type:varchar(2)"`
	Year              int             `gorm:"column:year;not null"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (ElectricConsumptionModel) TableName() string {
	return "bronze.envi_electric_consumption"
}

func (m *ElectricConsumptionModel) ToDomain() environment.ElectricConsumption {
	return environment.ElectricConsumption{
		ECID:              m.ECID,
		CompanyID:         m.CompanyID,
		Source:            m.Source,
		UnitOfMeasurement: m.UnitOfMeasurement,
		Consumption:       m.Consumption,
		Quarter:           m.Quarter,
		Year:              m.Year,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ElectricConsumptionModelFromDomain(r *environment.ElectricConsumption) *ElectricConsumptionModel {
	return &ElectricConsumptionModel{
		ECID:              r.ECID,
		CompanyID:         r.CompanyID,
		Source:            r.Source,
		UnitOfMeasurement: r.UnitOfMeasurement,
		Consumption:       r.Consumption,
		Quarter:           r.Quarter,
		Year:              r.Year,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// NonHazardWasteModel is the persistence model for monthly non-hazardous
// waste amounts.
type NonHazardWasteModel struct {
	NHWID             string          `gorm:"column:nhw_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Metrics           string          `gorm:"column:metrics;type:varchar(120)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	Waste             decimal.Decimal `gorm:"column:waste;type:numeric(18,4)"`
	Month             string          `gorm:"column:month;type:varchar(12)"`
	Quarter           string          `gorm:"column:quarter;type:varchar(2)"`
	Year              int             `gorm:"column:year;not null"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (NonHazardWasteModel) TableName() string {
	return "bronze.envi_non_hazard_waste"
}

func (m *NonHazardWasteModel) ToDomain() environment.NonHazardWaste {
	return environment.NonHazardWaste{
		NHWID:             m.NHWID,
		CompanyID:         m.CompanyID,
		Metrics:           m.Metrics,
		UnitOfMeasurement: m.UnitOfMeasurement,
		Waste:             m.Waste,
		Month:             m.Month,
		Quarter:           m.Quarter,
		Year:              m.Year,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func NonHazardWasteModelFromDomain(r *environment.NonHazardWaste) *NonHazardWasteModel {
	return &NonHazardWasteModel{
		NHWID:             r.NHWID,
		CompanyID:         r.CompanyID,
		Metrics:           r.Metrics,
		UnitOfMeasurement: r.UnitOfMeasurement,
		Waste:             r.Waste,
		Month:             r.Month,
		Quarter:           r.Quarter,
		Year:              r.Year,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// HazardWasteGeneratedModel is the persistence model for quarterly
// hazardous waste generation.
type HazardWasteGeneratedModel struct {
	HWGID             string          `gorm:"column:hwg_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Metrics           string          `gorm:"column:metrics;type:varchar(120)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	WasteGenerated    decimal.Decimal `gorm:"column:waste_generated;type:numeric(18,4)"`
	Quarter           string          `gorm:"column:quarter;type:varchar(2)"`
	Year              int             `gorm:"column:year;not null"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (HazardWasteGeneratedModel) TableName() string {
	return "bronze.envi_hazard_waste_generated"
}

func (m *HazardWasteGeneratedModel) ToDomain() environment.HazardWasteGenerated {
	return environment.HazardWasteGenerated{
		HWGID:             m.HWGID,
		CompanyID:         m.CompanyID,
		Metrics:           m.Metrics,
		UnitOfMeasurement: m.UnitOfMeasurement,
		WasteGenerated:    m.WasteGenerated,
		Quarter:           m.Quarter,
		Year:              m.Year,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func HazardWasteGeneratedModelFromDomain(r *environment.HazardWasteGenerated) *HazardWasteGeneratedModel {
	return &HazardWasteGeneratedModel{
		HWGID:             r.HWGID,
		CompanyID:         r.CompanyID,
		Metrics:           r.Metrics,
		UnitOfMeasurement: r.UnitOfMeasurement,
		WasteGenerated:    r.WasteGenerated,
		Quarter:           r.Quarter,
		Year:              r.Year,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// HazardWasteDisposedModel is the persistence model for yearly hazardous
// waste disposal.
type HazardWasteDisposedModel struct {
	HWDID             string          `gorm:"column:hwd_id;type:varchar(20);primaryKey"`
	CompanyID         string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	Metrics           string          `gorm:"column:metrics;type:varchar(120)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(30)"`
	WasteDisposed     decimal.Decimal `gorm:"column:waste_disposed;type:numeric(18,4)"`
	Year              int             `gorm:"column:year;not null"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

func (HazardWasteDisposedModel) TableName() string {
	return "bronze.envi_hazard_waste_disposed"
}

func (m *HazardWasteDisposedModel) ToDomain() environment.HazardWasteDisposed {
	return environment.HazardWasteDisposed{
		HWDID:             m.HWDID,
		CompanyID:         m.CompanyID,
		Metrics:           m.Metrics,
		UnitOfMeasurement: m.UnitOfMeasurement,
		WasteDisposed:     m.WasteDisposed,
		Year:              m.Year,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func HazardWasteDisposedModelFromDomain(r *environment.HazardWasteDisposed) *HazardWasteDisposedModel {
	return &HazardWasteDisposedModel{
		HWDID:             r.HWDID,
		CompanyID:         r.CompanyID,
		Metrics:           r.Metrics,
		UnitOfMeasurement: r.UnitOfMeasurement,
		WasteDisposed:     r.WasteDisposed,
		Year:              r.Year,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

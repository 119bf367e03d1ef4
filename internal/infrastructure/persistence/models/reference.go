package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petroenergy/petrodash/internal/domain/reference"
)

// CompanyModel is the persistence model for power generation companies.
type CompanyModel struct {
	CompanyID   string    `gorm:"column:company_id;type:varchar(10);primaryKey"`
	CompanyName string    `gorm:"column:company_name;type:varchar(120);not null"`
	ParentID    string    `gorm:"column:parent_id;type:varchar(10)"`
	BrandColor  string    `gorm:"column:brand_color;type:varchar(10)"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (CompanyModel) TableName() string {
	return "ref.company_main"
}

func (m *CompanyModel) ToDomain() reference.Company {
	return reference.Company{
		CompanyID:   m.CompanyID,
		CompanyName: m.CompanyName,
		ParentID:    m.ParentID,
		BrandColor:  m.BrandColor,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PowerPlantModel is the persistence model for power plant sites.
type PowerPlantModel struct {
	PowerPlantID     string    `gorm:"column:power_plant_id;type:varchar(10);primaryKey"`
	CompanyID        string    `gorm:"column:company_id;type:varchar(10);not null;index"`
	SiteName         string    `gorm:"column:site_name;type:varchar(120);not null"`
	Province         string    `gorm:"column:province;type:varchar(60)"`
	GenerationSource string    `gorm:"column:generation_source;type:varchar(30)"`
	EFID             string    `gorm:"column:ef_id;type:varchar(10)"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

func (PowerPlantModel) TableName() string {
	return "ref.ref_power_plants"
}

func (m *PowerPlantModel) ToDomain() reference.PowerPlant {
	return reference.PowerPlant{
		PowerPlantID:     m.PowerPlantID,
		CompanyID:        m.CompanyID,
		SiteName:         m.SiteName,
		Province:         m.Province,
		GenerationSource: m.GenerationSource,
		EFID:             m.EFID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// EmissionFactorModel maps generation sources to CO2 intensity.
type EmissionFactorModel struct {
	EFID             string          `gorm:"column:ef_id;type:varchar(10);primaryKey"`
	GenerationSource string          `gorm:"column:generation_source;type:varchar(30);not null"`
	KgCO2PerKWh      decimal.Decimal `gorm:"column:kg_co2_per_kwh;type:numeric(12,6)"`
}

func (EmissionFactorModel) TableName() string {
	return "ref.ref_emission_factors"
}

func (m *EmissionFactorModel) ToDomain() reference.EmissionFactor {
	return reference.EmissionFactor{
		EFID:             m.EFID,
		GenerationSource: m.GenerationSource,
		KgCO2PerKWh:      m.KgCO2PerKWh,
	}
}

// CO2EquivalenceModel holds conversion factors for dashboard widgets.
type CO2EquivalenceModel struct {
	EquivalenceID string          `gorm:"column:equivalence_id;type:varchar(10);primaryKey"`
	Name          string          `gorm:"column:name;type:varchar(120);not null"`
	Factor        decimal.Decimal `gorm:"column:factor;type:numeric(18,8)"`
	Unit          string          `gorm:"column:unit;type:varchar(30)"`
	Description   string          `gorm:"column:description;type:text"`
}

func (CO2EquivalenceModel) TableName() string {
	return "ref.ref_co2_equivalence"
}

func (m *CO2EquivalenceModel) ToDomain() reference.CO2Equivalence {
	return reference.CO2Equivalence{
		EquivalenceID: m.EquivalenceID,
		Name:          m.Name,
		Factor:        m.Factor,
		Unit:          m.Unit,
		Description:   m.Description,
	}
}

// ExpenditureTypeModel labels economic expenditure categories.
type ExpenditureTypeModel struct {
	TypeID      string `gorm:"column:type_id;type:varchar(10);primaryKey"`
	TypeName    string `gorm:"column:type_name;type:varchar(60);not null"`
	Description string `gorm:"column:description;type:text"`
}

func (ExpenditureTypeModel) TableName() string {
	return "ref.expenditure_type"
}

func (m *ExpenditureTypeModel) ToDomain() reference.ExpenditureType {
	return reference.ExpenditureType{
		TypeID:      m.TypeID,
		TypeName:    m.TypeName,
		Description: m.Description,
	}
}

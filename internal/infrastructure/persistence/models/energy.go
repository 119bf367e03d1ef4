package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petroenergy/petrodash/internal/domain/energy"
)

// EnergyRecordModel is the persistence model for bronze energy readings.
type EnergyRecordModel struct {
	EnergyID          string          `gorm:"column:energy_id;type:varchar(30);primaryKey"`
	PowerPlantID      string          `gorm:"column:power_plant_id;type:varchar(10);not null;index"`
	Datetime          string          `gorm:"column:datetime;type:varchar(30)"`
	EnergyGenerated   decimal.Decimal `gorm:"column:energy_generated;type:numeric(18,4)"`
	UnitOfMeasurement string          `gorm:"column:unit_of_measurement;type:varchar(20)"`
	CreatedAt         time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (EnergyRecordModel) TableName() string {
	return "bronze.csv_energy_records"
}

// ToDomain converts the persistence model to a domain Record.
func (m *EnergyRecordModel) ToDomain() energy.Record {
	return energy.Record{
		EnergyID:          m.EnergyID,
		PowerPlantID:      m.PowerPlantID,
		Datetime:          m.Datetime,
		EnergyGenerated:   m.EnergyGenerated,
		UnitOfMeasurement: m.UnitOfMeasurement,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

package models

import (
	"time"

	"github.com/petroenergy/petrodash/internal/domain/hr"
)

// DemographicModel is the persistence model for employee demographics.
type DemographicModel struct {
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20);primaryKey"`
	CompanyID  string    `gorm:"column:company_id;type:varchar(10);not null;index"`
	Gender     string    `gorm:"column:gender;type:varchar(10)"`
	Birthdate  time.Time `gorm:"column:birthdate;type:date"`
	Position   string    `gorm:"column:position;type:varchar(60)"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (DemographicModel) TableName() string {
	return "bronze.hr_demographics"
}

func (m *DemographicModel) ToDomain() hr.Demographic {
	return hr.Demographic{
		EmployeeID: m.EmployeeID,
		CompanyID:  m.CompanyID,
		Gender:     m.Gender,
		Birthdate:  m.Birthdate,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TenureModel is the persistence model for employment spans.
type TenureModel struct {
	EmployeeID string     `gorm:"column:employee_id;type:varchar(20);primaryKey"`
	StartDate  time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate    *time.Time `gorm:"column:end_date;type:date"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;not null"`
}

func (TenureModel) TableName() string {
	return "bronze.hr_tenure"
}

func (m *TenureModel) ToDomain() hr.Tenure {
	return hr.Tenure{
		EmployeeID: m.EmployeeID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

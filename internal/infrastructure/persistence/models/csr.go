package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petroenergy/petrodash/internal/domain/csr"
)

// ProgramModel is the persistence model for CSR programs.
type ProgramModel struct {
	ProgramID   string    `gorm:"column:program_id;type:varchar(10);primaryKey"`
	ProgramName string    `gorm:"column:program_name;type:varchar(120);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (ProgramModel) TableName() string {
	return "silver.csr_programs"
}

func (m *ProgramModel) ToDomain() csr.Program {
	return csr.Program{
		ProgramID:   m.ProgramID,
		ProgramName: m.ProgramName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProjectModel is the persistence model for CSR projects.
type ProjectModel struct {
	ProjectID      string    `gorm:"column:project_id;type:varchar(10);primaryKey"`
	ProgramID      string    `gorm:"column:program_id;type:varchar(10);not null;index"`
	ProjectName    string    `gorm:"column:project_name;type:varchar(120);not null"`
	ProjectMetrics string    `gorm:"column:project_metrics;type:varchar(120)"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

func (ProjectModel) TableName() string {
	return "silver.csr_projects"
}

func (m *ProjectModel) ToDomain() csr.Project {
	return csr.Project{
		ProjectID:      m.ProjectID,
		ProgramID:      m.ProgramID,
		ProjectName:    m.ProjectName,
		ProjectMetrics: m.ProjectMetrics,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ActivityModel is the persistence model for yearly CSR activities.
type ActivityModel struct {
	CSRID           string          `gorm:"column:csr_id;type:varchar(20);primaryKey"`
	CompanyID       string          `gorm:"column:company_id;type:varchar(10);not null;index"`
	ProjectID       string          `gorm:"column:project_id;type:varchar(10);not null;index"`
	ProjectYear     int             `gorm:"column:project_year;not null"`
	CSRReport       int64           `gorm:"column:csr_report"`
	ProjectExpenses decimal.Decimal `gorm:"column:project_expenses;type:numeric(18,2)"`
	ProjectRemarks  string          `gorm:"column:project_remarks;type:text"`
	CreatedAt       time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;not null"`
}

func (ActivityModel) TableName() string {
	return "silver.csr_activity"
}

func (m *ActivityModel) ToDomain() csr.Activity {
	return csr.Activity{
		CSRID:           m.CSRID,
		CompanyID:       m.CompanyID,
		ProjectID:       m.ProjectID,
		ProjectYear:     m.ProjectYear,
		CSRReport:       m.CSRReport,
		ProjectExpenses: m.ProjectExpenses,
		ProjectRemarks:  m.ProjectRemarks,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

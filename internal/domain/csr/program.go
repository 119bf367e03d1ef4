package csr

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Program is a top-level CSR program (e.g. Health, Education).
type Program struct {
	ProgramID   string
	ProgramName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Project belongs to a program and labels the metric its activities
// report against (e.g. "patients served").
type Project struct {
	ProjectID      string
	ProgramID      string
	ProjectName    string
	ProjectMetrics string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Activity is one company's yearly CSR activity under a project.
type Activity struct {
	CSRID           string
	CompanyID       string
	ProjectID       string
	ProjectYear     int
	CSRReport       int64 // beneficiary count against the project metric
	ProjectExpenses decimal.Decimal
	ProjectRemarks  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ActivityDetail is an activity joined to its company, project, program
// and checker status for dashboard listings.
type ActivityDetail struct {
	Activity
	CompanyName   string
	ProjectName   string
	ProgramName   string
	StatusID      string
	StatusRemarks string
}

// Filter narrows activity listings.
type Filter struct {
	Year      int
	CompanyID string
	ProgramID string
}

// Repository defines read access to the silver CSR tables.
type Repository interface {
	ListPrograms(ctx context.Context) ([]Program, error)
	ListProjects(ctx context.Context, programID string) ([]Project, error)
	ListActivities(ctx context.Context, filter Filter) ([]ActivityDetail, error)
}

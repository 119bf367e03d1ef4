package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/csr"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormCSRRepository implements csr.Repository using GORM.
type GormCSRRepository struct {
	db *gorm.DB
}

// NewGormCSRRepository creates a new GormCSRRepository.
func NewGormCSRRepository(db *gorm.DB) *GormCSRRepository {
	return &GormCSRRepository{db: db}
}

// ListPrograms lists all CSR programs by name.
func (r *GormCSRRepository) ListPrograms(ctx context.Context) ([]csr.Program, error) {
	var rows []models.ProgramModel
	if err := r.db.WithContext(ctx).Order("program_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]csr.Program, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ListProjects lists projects, optionally scoped to one program.
func (r *GormCSRRepository) ListProjects(ctx context.Context, programID string) ([]csr.Project, error) {
	query := r.db.WithContext(ctx).Model(&models.ProjectModel{})
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	var rows []models.ProjectModel
	if err := query.Order("project_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]csr.Project, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ListActivities lists activities joined to company, project, program
// and checker status, newest year first.
func (r *GormCSRRepository) ListActivities(ctx context.Context, filter csr.Filter) ([]csr.ActivityDetail, error) {
	type joinedRow struct {
		models.ActivityModel
		CompanyName   string
		ProjectName   string
		ProgramName   string
		StatusID      string
		StatusRemarks string
	}

	query := r.db.WithContext(ctx).
		Table("silver.csr_activity AS a").
		Select(`a.*,
			c.company_name,
			p.project_name,
			g.program_name,
			COALESCE(rs.status, '') AS status_id,
			COALESCE(rs.remarks, '') AS status_remarks`).
		Joins("JOIN ref.company_main c ON c.company_id = a.company_id").
		Joins("JOIN silver.csr_projects p ON p.project_id = a.project_id").
		Joins("JOIN silver.csr_programs g ON g.program_id = p.program_id").
		Joins("LEFT JOIN record_status rs ON rs.record_id = a.csr_id")

	if filter.Year > 0 {
		query = query.Where("a.project_year = ?", filter.Year)
	}
	if filter.CompanyID != "" {
		query = query.Where("a.company_id = ?", filter.CompanyID)
	}
	if filter.ProgramID != "" {
		query = query.Where("g.program_id = ?", filter.ProgramID)
	}

	var rows []joinedRow
	if err := query.Order("a.project_year DESC, a.csr_id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]csr.ActivityDetail, 0, len(rows))
	for i := range rows {
		out = append(out, csr.ActivityDetail{
			Activity:      rows[i].ActivityModel.ToDomain(),
			CompanyName:   rows[i].CompanyName,
			ProjectName:   rows[i].ProjectName,
			ProgramName:   rows[i].ProgramName,
			StatusID:      rows[i].StatusID,
			StatusRemarks: rows[i].StatusRemarks,
		})
	}
	return out, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/hr"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormHRRepository implements hr.Repository using GORM. The headcount
// and attrition reports run as raw aggregate queries over the bronze
// tenure table.
type GormHRRepository struct {
	db *gorm.DB
}

// NewGormHRRepository creates a new GormHRRepository.
func NewGormHRRepository(db *gorm.DB) *GormHRRepository {
	return &GormHRRepository{db: db}
}

// FindDemographic finds one employee demographic row.
func (r *GormHRRepository) FindDemographic(ctx context.Context, employeeID string) (*hr.Demographic, error) {
	var model models.DemographicModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

// ListDemographics lists demographic rows by employee ID order.
func (r *GormHRRepository) ListDemographics(ctx context.Context, filter hr.Filter) ([]hr.Demographic, error) {
	query := r.db.WithContext(ctx).Model(&models.DemographicModel{})
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var rows []models.DemographicModel
	if err := query.Order("employee_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hr.Demographic, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// FindTenure finds one employee's employment span.
func (r *GormHRRepository) FindTenure(ctx context.Context, employeeID string) (*hr.Tenure, error) {
	var model models.TenureModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

// Headcounts returns the count of active employees per company.
func (r *GormHRRepository) Headcounts(ctx context.Context) ([]hr.Headcount, error) {
	var rows []hr.Headcount
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.company_id AS company_id, COUNT(*) AS total
		FROM bronze.hr_demographics d
		JOIN bronze.hr_tenure t ON t.employee_id = d.employee_id
		WHERE t.end_date IS NULL
		GROUP BY d.company_id
		ORDER BY d.company_id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Attrition returns yearly attrition rows: employees on book during the
// year, how many ended tenure in it, and the resulting rate as a
// percentage rounded to one decimal place.
func (r *GormHRRepository) Attrition(ctx context.Context) ([]hr.AttritionYear, error) {
	type attritionRow struct {
		Year     int
		Total    int64
		Resigned int64
	}
	var raw []attritionRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT y.year AS year,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE EXTRACT(YEAR FROM t.end_date) = y.year) AS resigned
		FROM (SELECT DISTINCT EXTRACT(YEAR FROM end_date)::int AS year
		      FROM bronze.hr_tenure WHERE end_date IS NOT NULL) y
		JOIN bronze.hr_tenure t
		  ON EXTRACT(YEAR FROM t.start_date) <= y.year
		 AND (t.end_date IS NULL OR EXTRACT(YEAR FROM t.end_date) >= y.year)
		GROUP BY y.year
		ORDER BY y.year`).Scan(&raw).Error
	if err != nil {
		return nil, err
	}
	out := make([]hr.AttritionYear, 0, len(raw))
	for _, row := range raw {
		rate := decimal.Zero
		if row.Total > 0 {
			rate = decimal.NewFromInt(row.Resigned).
				Div(decimal.NewFromInt(row.Total)).
				Mul(decimal.NewFromInt(100)).
				Round(1)
		}
		out = append(out, hr.AttritionYear{
			Year:     row.Year,
			Total:    row.Total,
			Resigned: row.Resigned,
			Rate:     rate,
		})
	}
	return out, nil
}

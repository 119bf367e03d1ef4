package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/reference"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormReferenceRepository implements reference.Repository using GORM.
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GormReferenceRepository.
func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

// ListCompanies lists all companies by name.
func (r *GormReferenceRepository) ListCompanies(ctx context.Context) ([]reference.Company, error) {
	var rows []models.CompanyModel
	if err := r.db.WithContext(ctx).Order("company_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]reference.Company, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ListPowerPlants lists plants, optionally scoped to one company.
func (r *GormReferenceRepository) ListPowerPlants(ctx context.Context, companyID string) ([]reference.PowerPlant, error) {
	query := r.db.WithContext(ctx).Model(&models.PowerPlantModel{})
	if companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	var rows []models.PowerPlantModel
	if err := query.Order("site_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]reference.PowerPlant, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ListProvinces lists the distinct provinces plants sit in.
func (r *GormReferenceRepository) ListProvinces(ctx context.Context) ([]string, error) {
	var provinces []string
	if err := r.db.WithContext(ctx).
		Model(&models.PowerPlantModel{}).
		Distinct("province").
		Where("province <> ''").
		Order("province ASC").
		Pluck("province", &provinces).Error; err != nil {
		return nil, err
	}
	return provinces, nil
}

// ListGenerationSources lists the distinct generation sources in use.
func (r *GormReferenceRepository) ListGenerationSources(ctx context.Context) ([]string, error) {
	var sources []string
	if err := r.db.WithContext(ctx).
		Model(&models.EmissionFactorModel{}).
		Distinct("generation_source").
		Order("generation_source ASC").
		Pluck("generation_source", &sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

// ListCO2Equivalences lists all CO2 equivalence conversion rows.
func (r *GormReferenceRepository) ListCO2Equivalences(ctx context.Context) ([]reference.CO2Equivalence, error) {
	var rows []models.CO2EquivalenceModel
	if err := r.db.WithContext(ctx).Order("equivalence_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]reference.CO2Equivalence, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ListExpenditureTypes lists all expenditure type rows.
func (r *GormReferenceRepository) ListExpenditureTypes(ctx context.Context) ([]reference.ExpenditureType, error) {
	var rows []models.ExpenditureTypeModel
	if err := r.db.WithContext(ctx).Order("type_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]reference.ExpenditureType, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ListPlantInfo lists the joined plant, company and emission source rows
// used by site pickers.
func (r *GormReferenceRepository) ListPlantInfo(ctx context.Context) ([]reference.PlantInfo, error) {
	var rows []reference.PlantInfo
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.power_plant_id,
		       p.site_name,
		       p.province,
		       p.company_id,
		       c.company_name,
		       p.generation_source,
		       COALESCE(e.kg_co2_per_kwh, 0) AS kg_co2_per_kwh
		FROM ref.ref_power_plants p
		JOIN ref.company_main c ON c.company_id = p.company_id
		LEFT JOIN ref.ref_emission_factors e ON e.ef_id = p.ef_id
		ORDER BY p.site_name`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CompanyExists checks whether a company ID is registered.
func (r *GormReferenceRepository) CompanyExists(ctx context.Context, companyID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("company_id = ?", companyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

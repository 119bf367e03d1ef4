package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/energy"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormEnergyRepository implements energy.Repository using GORM.
type GormEnergyRepository struct {
	db *gorm.DB
}

// NewGormEnergyRepository creates a new GormEnergyRepository.
func NewGormEnergyRepository(db *gorm.DB) *GormEnergyRepository {
	return &GormEnergyRepository{db: db}
}

// FindByID finds one energy record by its ID.
func (r *GormEnergyRepository) FindByID(ctx context.Context, energyID string) (*energy.Record, error) {
	var model models.EnergyRecordModel
	if err := r.db.WithContext(ctx).
		Where("energy_id = ?", energyID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	record := model.ToDomain()
	return &record, nil
}

// FindAll lists energy records newest first, optionally scoped to one
// power plant.
func (r *GormEnergyRepository) FindAll(ctx context.Context, filter energy.Filter) ([]energy.Record, error) {
	query := r.db.WithContext(ctx).Model(&models.EnergyRecordModel{})
	if filter.PowerPlantID != "" {
		query = query.Where("power_plant_id = ?", filter.PowerPlantID)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.EnergyRecordModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]energy.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToDomain())
	}
	return records, nil
}

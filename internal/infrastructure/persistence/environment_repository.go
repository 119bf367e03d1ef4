package persistence

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// id columns per environment record type.
var enviIDColumns = map[environment.RecordType]string{
	environment.TypeCompanyProperty:      "cp_id",
	environment.TypeWaterAbstraction:     "wa_id",
	environment.TypeWaterDischarge:       "wd_id",
	environment.TypeWaterConsumption:     "wc_id",
	environment.TypeDieselConsumption:    "dc_id",
	environment.TypeElectricConsumption:  "ec_id",
	environment.TypeNonHazardWaste:       "nhw_id",
	environment.TypeHazardWasteGenerated: "hwg_id",
	environment.TypeHazardWasteDisposed:  "hwd_id",
}

// GormEnvironmentRepository implements environment.Repository using
// GORM. Writes allocate sequential record IDs per sequence key inside
// the insert transaction.
type GormEnvironmentRepository struct {
	db *gorm.DB
}

// NewGormEnvironmentRepository creates a new GormEnvironmentRepository.
func NewGormEnvironmentRepository(db *gorm.DB) *GormEnvironmentRepository {
	return &GormEnvironmentRepository{db: db}
}

func (r *GormEnvironmentRepository) FindCompanyProperty(ctx context.Context, id string) (*environment.CompanyProperty, error) {
	var model models.CompanyPropertyModel
	if err := r.first(ctx, &model, "cp_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListCompanyProperties(ctx context.Context, filter environment.Filter) ([]environment.CompanyProperty, error) {
	query := r.db.WithContext(ctx).Model(&models.CompanyPropertyModel{})
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	var rows []models.CompanyPropertyModel
	if err := applyPage(query, filter).Order("cp_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.CompanyProperty, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindWaterAbstraction(ctx context.Context, id string) (*environment.WaterAbstraction, error) {
	var model models.WaterAbstractionModel
	if err := r.first(ctx, &model, "wa_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListWaterAbstractions(ctx context.Context, filter environment.Filter) ([]environment.WaterAbstraction, error) {
	var rows []models.WaterAbstractionModel
	query := r.periodFiltered(ctx, &models.WaterAbstractionModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, wa_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.WaterAbstraction, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindWaterDischarge(ctx context.Context, id string) (*environment.WaterDischarge, error) {
	var model models.WaterDischargeModel
	if err := r.first(ctx, &model, "wd_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListWaterDischarges(ctx context.Context, filter environment.Filter) ([]environment.WaterDischarge, error) {
	var rows []models.WaterDischargeModel
	query := r.periodFiltered(ctx, &models.WaterDischargeModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, wd_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.WaterDischarge, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindWaterConsumption(ctx context.Context, id string) (*environment.WaterConsumption, error) {
	var model models.WaterConsumptionModel
	if err := r.first(ctx, &model, "wc_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListWaterConsumptions(ctx context.Context, filter environment.Filter) ([]environment.WaterConsumption, error) {
	var rows []models.WaterConsumptionModel
	query := r.periodFiltered(ctx, &models.WaterConsumptionModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, wc_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.WaterConsumption, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindDieselConsumption(ctx context.Context, id string) (*environment.DieselConsumption, error) {
	var model models.DieselConsumptionModel
	if err := r.first(ctx, &model, "dc_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListDieselConsumptions(ctx context.Context, filter environment.Filter) ([]environment.DieselConsumption, error) {
	query := r.db.WithContext(ctx).Model(&models.DieselConsumptionModel{})
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Year > 0 {
		// diesel rows carry a full date rather than a year column
		from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("date >= ? AND date < ?", from, from.AddDate(1, 0, 0))
	}
	var rows []models.DieselConsumptionModel
	if err := applyPage(query, filter).Order("date DESC, dc_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.DieselConsumption, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindElectricConsumption(ctx context.Context, id string) (*environment.ElectricConsumption, error) {
	var model models.ElectricConsumptionModel
	if err := r.first(ctx, &model, "ec_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListElectricConsumptions(ctx context.Context, filter environment.Filter) ([]environment.ElectricConsumption, error) {
	var rows []models.ElectricConsumptionModel
	query := r.periodFiltered(ctx, &models.ElectricConsumptionModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, ec_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.ElectricConsumption, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindNonHazardWaste(ctx context.Context, id string) (*environment.NonHazardWaste, error) {
	var model models.NonHazardWasteModel
	if err := r.first(ctx, &model, "nhw_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListNonHazardWastes(ctx context.Context, filter environment.Filter) ([]environment.NonHazardWaste, error) {
	var rows []models.NonHazardWasteModel
	query := r.periodFiltered(ctx, &models.NonHazardWasteModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, nhw_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.NonHazardWaste, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindHazardWasteGenerated(ctx context.Context, id string) (*environment.HazardWasteGenerated, error) {
	var model models.HazardWasteGeneratedModel
	if err := r.first(ctx, &model, "hwg_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListHazardWasteGenerated(ctx context.Context, filter environment.Filter) ([]environment.HazardWasteGenerated, error) {
	var rows []models.HazardWasteGeneratedModel
	query := r.periodFiltered(ctx, &models.HazardWasteGeneratedModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, hwg_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.HazardWasteGenerated, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *GormEnvironmentRepository) FindHazardWasteDisposed(ctx context.Context, id string) (*environment.HazardWasteDisposed, error) {
	var model models.HazardWasteDisposedModel
	if err := r.first(ctx, &model, "hwd_id", id); err != nil {
		return nil, err
	}
	rec := model.ToDomain()
	return &rec, nil
}

func (r *GormEnvironmentRepository) ListHazardWasteDisposed(ctx context.Context, filter environment.Filter) ([]environment.HazardWasteDisposed, error) {
	var rows []models.HazardWasteDisposedModel
	query := r.periodFiltered(ctx, &models.HazardWasteDisposedModel{}, filter)
	if err := applyPage(query, filter).Order("year DESC, hwd_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]environment.HazardWasteDisposed, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// Insert assigns the next sequential ID for rec's key and persists it.
func (r *GormEnvironmentRepository) Insert(ctx context.Context, t environment.RecordType, rec environment.Record) error {
	_, err := r.BulkInsert(ctx, t, []environment.Record{rec})
	return err
}

// BulkInsert assigns contiguous sequential IDs per key and persists all
// rows in one transaction.
func (r *GormEnvironmentRepository) BulkInsert(ctx context.Context, t environment.RecordType, recs []environment.Record) (int, error) {
	if !t.Valid() {
		return 0, shared.NewDomainError("INVALID_RECORD_TYPE", "unknown environment record type: "+string(t))
	}
	if len(recs) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next := make(map[string]int)
		for _, rec := range recs {
			key := rec.SequenceKey()
			seq, seen := next[key]
			if !seen {
				max, err := maxSequence(tx, t, key)
				if err != nil {
					return err
				}
				seq = max
			}
			seq++
			next[key] = seq
			rec.SetRecordID(environment.SequenceID(key, seq))
		}
		for _, rec := range recs {
			model, err := enviModelFromRecord(t, rec)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return shared.ErrAlreadyExists
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (r *GormEnvironmentRepository) first(ctx context.Context, model interface{}, idColumn, id string) error {
	if err := r.db.WithContext(ctx).
		Where(idColumn+" = ?", id).
		First(model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	return nil
}

// periodFiltered applies company/year/quarter filters for the record
// types that carry year and quarter columns.
func (r *GormEnvironmentRepository) periodFiltered(ctx context.Context, model interface{}, filter environment.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(model)
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Year > 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Quarter != "" {
		query = query.Where("quarter = ?", filter.Quarter)
	}
	return query
}

func applyPage(query *gorm.DB, filter environment.Filter) *gorm.DB {
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}

// maxSequence returns the highest sequence number already allocated for
// the key, or zero when the key has no rows yet.
func maxSequence(tx *gorm.DB, t environment.RecordType, key string) (int, error) {
	idColumn := enviIDColumns[t]
	var last string
	err := tx.Table(t.Table()).
		Select(idColumn).
		Where(idColumn+" LIKE ?", key+"-%").
		Order(idColumn + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	if last == "" {
		return 0, nil
	}
	return parseSequence(last)
}

// parseSequence extracts the numeric suffix after the final dash of a
// record ID.
func parseSequence(id string) (int, error) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return 0, shared.NewDomainError("INVALID_RECORD_ID", "record ID has no sequence suffix: "+id)
	}
	seq, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0, shared.NewDomainError("INVALID_RECORD_ID", "record ID has a non-numeric sequence suffix: "+id)
	}
	return seq, nil
}

// enviModelFromRecord maps a domain record to its persistence model,
// stamping timestamps when unset.
func enviModelFromRecord(t environment.RecordType, rec environment.Record) (interface{}, error) {
	now := time.Now().UTC()
	switch t {
	case environment.TypeCompanyProperty:
		v, ok := rec.(*environment.CompanyProperty)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.CompanyPropertyModelFromDomain(v), nil
	case environment.TypeWaterAbstraction:
		v, ok := rec.(*environment.WaterAbstraction)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.WaterAbstractionModelFromDomain(v), nil
	case environment.TypeWaterDischarge:
		v, ok := rec.(*environment.WaterDischarge)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.WaterDischargeModelFromDomain(v), nil
	case environment.TypeWaterConsumption:
		v, ok := rec.(*environment.WaterConsumption)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.WaterConsumptionModelFromDomain(v), nil
	case environment.TypeDieselConsumption:
		v, ok := rec.(*environment.DieselConsumption)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.DieselConsumptionModelFromDomain(v), nil
	case environment.TypeElectricConsumption:
		v, ok := rec.(*environment.ElectricConsumption)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.ElectricConsumptionModelFromDomain(v), nil
	case environment.TypeNonHazardWaste:
		v, ok := rec.(*environment.NonHazardWaste)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.NonHazardWasteModelFromDomain(v), nil
	case environment.TypeHazardWasteGenerated:
		v, ok := rec.(*environment.HazardWasteGenerated)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.HazardWasteGeneratedModelFromDomain(v), nil
	case environment.TypeHazardWasteDisposed:
		v, ok := rec.(*environment.HazardWasteDisposed)
		if !ok {
			return nil, typeMismatch(t)
		}
		stampTimes(&v.CreatedAt, &v.UpdatedAt, now)
		return models.HazardWasteDisposedModelFromDomain(v), nil
	default:
		return nil, shared.NewDomainError("INVALID_RECORD_TYPE", "unknown environment record type: "+string(t))
	}
}

func typeMismatch(t environment.RecordType) error {
	return shared.NewDomainError("RECORD_TYPE_MISMATCH", "record does not match type "+string(t))
}

func stampTimes(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

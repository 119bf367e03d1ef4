package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence/models"
)

// GormAccountRepository implements identity.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Create persists a new account together with its profile in one
// transaction.
func (r *GormAccountRepository) Create(ctx context.Context, account *identity.Account, profile *identity.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.AccountModelFromDomain(account)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return tx.Create(models.ProfileModelFromDomain(profile)).Error
	})
}

// CreateBatch persists many account/profile pairs in one transaction.
// The whole batch fails if any row conflicts.
func (r *GormAccountRepository) CreateBatch(ctx context.Context, pairs []identity.AccountWithProfile) error {
	if len(pairs) == 0 {
		return nil
	}
	accounts := make([]*models.AccountModel, 0, len(pairs))
	profiles := make([]*models.ProfileModel, 0, len(pairs))
	for i := range pairs {
		accounts = append(accounts, models.AccountModelFromDomain(&pairs[i].Account))
		profiles = append(profiles, models.ProfileModelFromDomain(&pairs[i].Profile))
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&accounts).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return tx.Create(&profiles).Error
	})
}

// Update persists changes to an existing account.
func (r *GormAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("account_id = ?", account.AccountID).
		Updates(map[string]interface{}{
			"email":            account.Email,
			"account_password": account.PasswordHash,
			"account_role":     account.Role,
			"power_plant_id":   emptyToNilString(account.PowerPlantID),
			"company_id":       emptyToNilString(account.CompanyID),
			"account_status":   account.Status,
			"date_updated":     account.DateUpdated,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an account by its ID.
func (r *GormAccountRepository) FindByID(ctx context.Context, accountID string) (*identity.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds an account by email, case-insensitively.
func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindProfile finds the profile attached to an account.
func (r *GormAccountRepository) FindProfile(ctx context.Context, accountID string) (*identity.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all accounts joined to their profiles, most recently
// updated first. Accounts without a profile row still appear.
func (r *GormAccountRepository) FindAll(ctx context.Context) ([]identity.AccountWithProfile, error) {
	var accountModels []models.AccountModel
	if err := r.db.WithContext(ctx).
		Order("date_updated DESC").
		Find(&accountModels).Error; err != nil {
		return nil, err
	}

	var profileModels []models.ProfileModel
	if err := r.db.WithContext(ctx).Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profilesByAccount := make(map[string]*models.ProfileModel, len(profileModels))
	for i := range profileModels {
		profilesByAccount[profileModels[i].AccountID] = &profileModels[i]
	}

	result := make([]identity.AccountWithProfile, 0, len(accountModels))
	for i := range accountModels {
		pair := identity.AccountWithProfile{Account: *accountModels[i].ToDomain()}
		if pm, ok := profilesByAccount[accountModels[i].AccountID]; ok {
			pair.Profile = *pm.ToDomain()
		}
		result = append(result, pair)
	}
	return result, nil
}

// ExistsByEmail checks whether an email is already registered.
func (r *GormAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Stats returns account counts per role and status.
func (r *GormAccountRepository) Stats(ctx context.Context) (identity.AccountStats, error) {
	var stats identity.AccountStats

	type statusCount struct {
		Status string
		Total  int64
	}
	var byStatus []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Select("account_status AS status, COUNT(*) AS total").
		Group("account_status").
		Scan(&byStatus).Error; err != nil {
		return stats, err
	}
	for _, row := range byStatus {
		switch identity.AccountStatus(row.Status) {
		case identity.AccountStatusActive:
			stats.ActiveAccounts = row.Total
		case identity.AccountStatusDeactivated:
			stats.DeactivatedAccounts = row.Total
		}
	}

	type roleCount struct {
		Role  string
		Total int64
	}
	var byRole []roleCount
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Select("account_role AS role, COUNT(*) AS total").
		Group("account_role").
		Scan(&byRole).Error; err != nil {
		return stats, err
	}
	for _, row := range byRole {
		switch identity.RoleCode(row.Role) {
		case identity.RoleSystemAdmin:
			stats.Admins = row.Total
		case identity.RoleExecutive:
			stats.Executives = row.Total
		case identity.RoleOfficeChecker:
			stats.OfficeCheckers = row.Total
		case identity.RoleSiteChecker:
			stats.SiteCheckers = row.Total
		case identity.RoleEncoder:
			stats.Encoders = row.Total
		}
	}
	return stats, nil
}

func emptyToNilString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

package models

import (
	"time"

	"github.com/petroenergy/petrodash/internal/domain/identity"
)

// AccountModel is the persistence model for the Account domain entity.
type AccountModel struct {
	AccountID    string                 `gorm:"column:account_id;type:varchar(36);primaryKey"`
	Email        string                 `gorm:"column:email;type:varchar(254);not null;uniqueIndex"`
	PasswordHash string                 `gorm:"column:account_password;type:varchar(255);not null"`
	Role         identity.RoleCode      `gorm:"column:account_role;type:varchar(3);not null"`
	PowerPlantID *string                `gorm:"column:power_plant_id;type:varchar(10)"`
	CompanyID    *string                `gorm:"column:company_id;type:varchar(10)"`
	Status       identity.AccountStatus `gorm:"column:account_status;type:varchar(12);not null"`
	DateCreated  time.Time              `gorm:"column:date_created;not null"`
	DateUpdated  time.Time              `gorm:"column:date_updated;not null"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "account"
}

// ToDomain converts the persistence model to a domain Account entity.
func (m *AccountModel) ToDomain() *identity.Account {
	return &identity.Account{
		AccountID:    m.AccountID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		PowerPlantID: derefOrEmpty(m.PowerPlantID),
		CompanyID:    derefOrEmpty(m.CompanyID),
		Status:       m.Status,
		DateCreated:  m.DateCreated,
		DateUpdated:  m.DateUpdated,
	}
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *identity.Account) {
	m.AccountID = a.AccountID
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
	m.Role = a.Role
	m.PowerPlantID = emptyToNil(a.PowerPlantID)
	m.CompanyID = emptyToNil(a.CompanyID)
	m.Status = a.Status
	m.DateCreated = a.DateCreated
	m.DateUpdated = a.DateUpdated
}

// AccountModelFromDomain creates a new persistence model from a domain Account.
func AccountModelFromDomain(a *identity.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}

// ProfileModel is the persistence model for the employee Profile joined
// 1:1 to an account.
type ProfileModel struct {
	EmpID         string     `gorm:"column:emp_id;type:varchar(20);primaryKey"`
	AccountID     string     `gorm:"column:account_id;type:varchar(36);not null;uniqueIndex"`
	FirstName     string     `gorm:"column:first_name;type:varchar(100);not null"`
	MiddleName    string     `gorm:"column:middle_name;type:varchar(100)"`
	LastName      string     `gorm:"column:last_name;type:varchar(100);not null"`
	Suffix        string     `gorm:"column:suffix;type:varchar(20)"`
	ContactNumber string     `gorm:"column:contact_number;type:varchar(30)"`
	Address       string     `gorm:"column:address;type:text"`
	Birthdate     *time.Time `gorm:"column:birthdate;type:date"`
	Gender        string     `gorm:"column:gender;type:varchar(10)"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "user_profile"
}

// ToDomain converts the persistence model to a domain Profile.
func (m *ProfileModel) ToDomain() *identity.Profile {
	return &identity.Profile{
		EmpID:          m.EmpID,
		AccountID:      m.AccountID,
		FirstName:      m.FirstName,
		MiddleName:     m.MiddleName,
		LastName:       m.LastName,
		Suffix:         m.Suffix,
		ContactNumber:  m.ContactNumber,
		Address:        m.Address,
		Birthdate:      m.Birthdate,
		Gender:         m.Gender,
		ProfileCreated: m.CreatedAt,
		ProfileUpdated: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Profile.
func (m *ProfileModel) FromDomain(p *identity.Profile) {
	m.EmpID = p.EmpID
	m.AccountID = p.AccountID
	m.FirstName = p.FirstName
	m.MiddleName = p.MiddleName
	m.LastName = p.LastName
	m.Suffix = p.Suffix
	m.ContactNumber = p.ContactNumber
	m.Address = p.Address
	m.Birthdate = p.Birthdate
	m.Gender = p.Gender
	m.CreatedAt = p.ProfileCreated
	m.UpdatedAt = p.ProfileUpdated
}

// ProfileModelFromDomain creates a new persistence model from a domain Profile.
func ProfileModelFromDomain(p *identity.Profile) *ProfileModel {
	m := &ProfileModel{}
	m.FromDomain(p)
	return m
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

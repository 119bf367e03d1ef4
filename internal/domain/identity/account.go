package identity

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// RoleCode is an exact-match authorization tag stored on an account.
type RoleCode string

const (
	RoleSystemAdmin   RoleCode = "R01" // System Administrator
	RoleExecutive     RoleCode = "R02" // Executive
	RoleOfficeChecker RoleCode = "R03" // Head Office-Level Checker
	RoleSiteChecker   RoleCode = "R04" // Site-Level Checker
	RoleEncoder       RoleCode = "R05" // Encoder
)

var roleNames = map[RoleCode]string{
	RoleSystemAdmin:   "System Administrator",
	RoleExecutive:     "Executive",
	RoleOfficeChecker: "Head Office-Level Checker",
	RoleSiteChecker:   "Site-Level Checker",
	RoleEncoder:       "Encoder",
}

// Name returns the human-readable role name, or the raw code when unknown.
func (r RoleCode) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

// Valid reports whether the code is one of the known roles.
func (r RoleCode) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// AccountStatus represents the lifecycle status of an account
type AccountStatus string

const (
	AccountStatusActive      AccountStatus = "active"
	AccountStatusDeactivated AccountStatus = "deactivated"
)

// bcrypt cost for password hashing
const bcryptCost = 12

// DefaultPassword is assigned to newly provisioned accounts and must be
// changed by the user on first login.
const DefaultPassword = "changeme"

// Account is the aggregate root for authentication and authorization.
type Account struct {
	AccountID    string
	Email        string
	PasswordHash string
	Role         RoleCode
	PowerPlantID string
	CompanyID    string
	Status       AccountStatus
	DateCreated  time.Time
	DateUpdated  time.Time
}

// Profile holds the employee profile attached 1:1 to an account.
type Profile struct {
	AccountID      string
	EmpID          string
	FirstName      string
	LastName       string
	MiddleName     string
	Suffix         string
	ContactNumber  string
	Address        string
	Birthdate      *time.Time
	Gender         string
	ProfileCreated time.Time
	ProfileUpdated time.Time
}

// NewAccount creates an account with the default password.
func NewAccount(email string, role RoleCode, powerPlantID, companyID string) (*Account, error) {
	return NewAccountWithPassword(email, DefaultPassword, role, powerPlantID, companyID)
}

// NewAccountWithPassword creates an account with an explicit initial password.
func NewAccountWithPassword(email, password string, role RoleCode, powerPlantID, companyID string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if !role.Valid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role code: "+string(role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	now := time.Now()
	return &Account{
		AccountID:    uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		PowerPlantID: powerPlantID,
		CompanyID:    companyID,
		Status:       AccountStatusActive,
		DateCreated:  now,
		DateUpdated:  now,
	}, nil
}

// VerifyPassword checks a candidate password against the stored hash.
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// SetPassword rehashes and replaces the account password.
func (a *Account) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	a.PasswordHash = string(hash)
	a.DateUpdated = time.Now()
	return nil
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Activate marks the account active.
func (a *Account) Activate() {
	a.Status = AccountStatusActive
	a.DateUpdated = time.Now()
}

// Deactivate marks the account deactivated. Deactivated accounts cannot
// log in and existing tokens fail validation.
func (a *Account) Deactivate() {
	a.Status = AccountStatusDeactivated
	a.DateUpdated = time.Now()
}

// FullName joins the profile name parts, skipping empties.
func (p *Profile) FullName() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName, p.Suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

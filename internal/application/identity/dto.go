package identity

import (
	"time"

	"github.com/petroenergy/petrodash/internal/domain/identity"
)

// LoginInput contains the input for account login.
type LoginInput struct {
	Email    string
	Password string
	IP       string // client IP recorded in the audit trail
}

// LoginResult contains the result of a successful login.
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Account               AccountInfo
}

// AccountInfo contains account details returned to the client.
type AccountInfo struct {
	AccountID    string
	Email        string
	Role         string
	RoleName     string
	PowerPlantID string
	CompanyID    string
	Status       string
	FullName     string
}

// RefreshTokenInput contains the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh.
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for logout.
type LogoutInput struct {
	AccountID string
	TokenJTI  string
	TokenTTL  time.Duration // remaining access token lifetime
}

// CreateAccountInput contains the input for creating one account.
type CreateAccountInput struct {
	Email         string
	Password      string // optional, default password applied when empty
	Role          identity.RoleCode
	PowerPlantID  string
	CompanyID     string
	EmpID         string
	FirstName     string
	MiddleName    string
	LastName      string
	Suffix        string
	ContactNumber string
	Address       string
	Birthdate     *time.Time
	Gender        string
}

// AccountDetail pairs account info with its profile for listings.
type AccountDetail struct {
	AccountInfo
	EmpID         string
	ContactNumber string
	Address       string
	Birthdate     *time.Time
	Gender        string
	DateCreated   time.Time
	DateUpdated   time.Time
}

// BulkCreateResult reports the outcome of a bulk account upload.
type BulkCreateResult struct {
	TotalRows   int
	Created     int
	Skipped     int
	SkippedRows []SkippedRow
}

// SkippedRow names a CSV row left out of a bulk account upload.
type SkippedRow struct {
	Line   int
	Reason string
}

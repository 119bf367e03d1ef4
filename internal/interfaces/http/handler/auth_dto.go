package handler

import "time"

// LoginRequest is the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AccountResponse is the account payload returned on login and lookups.
type AccountResponse struct {
	AccountID    string `json:"account_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RoleName     string `json:"role_name"`
	PowerPlantID string `json:"power_plant_id,omitempty"`
	CompanyID    string `json:"company_id,omitempty"`
	Status       string `json:"status"`
	FullName     string `json:"full_name,omitempty"`
}

// LoginResponse is the login response payload.
type LoginResponse struct {
	Token   TokenResponse   `json:"token"`
	Account AccountResponse `json:"account"`
}

// RefreshTokenRequest is the token refresh request payload.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ValidateTokenRequest is the token validation request payload.
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenResponse reports whether a token is still usable.
type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}

// AccountDetailResponse is an account joined to its profile.
type AccountDetailResponse struct {
	AccountResponse
	EmpID         string     `json:"emp_id,omitempty"`
	ContactNumber string     `json:"contact_number,omitempty"`
	Address       string     `json:"address,omitempty"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	DateCreated   time.Time  `json:"date_created"`
	DateUpdated   time.Time  `json:"date_updated"`
}

// CreateAccountRequest is the account creation payload.
type CreateAccountRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password"`
	Role          string `json:"role" binding:"required,rolecode"`
	PowerPlantID  string `json:"power_plant_id"`
	CompanyID     string `json:"company_id"`
	EmpID         string `json:"emp_id"`
	FirstName     string `json:"first_name" binding:"required"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name" binding:"required"`
	Suffix        string `json:"suffix"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Birthdate     string `json:"birthdate"` // MM/DD/YYYY
	Gender        string `json:"gender"`
}

// BulkCreateResponse reports the outcome of a bulk account upload.
type BulkCreateResponse struct {
	TotalRows   int                  `json:"total_rows"`
	Created     int                  `json:"created"`
	Skipped     int                  `json:"skipped"`
	SkippedRows []SkippedRowResponse `json:"skipped_rows,omitempty"`
}

// SkippedRowResponse names a CSV row left out of a bulk upload.
type SkippedRowResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Authentication and authorization error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes produced by the application services appear here explicitly;
// anything unknown falls back to 500.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Auth
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,

	// Resources
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	"EMAIL_TAKEN":        http.StatusConflict,

	// Input validation
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_RECORD_TYPE":  http.StatusBadRequest,
	"INVALID_RECORD_ID":    http.StatusBadRequest,
	"INVALID_WATER_METRIC": http.StatusBadRequest,
	"INVALID_CELL":         http.StatusBadRequest,
	"INVALID_FILE":         http.StatusBadRequest,
	"EMPTY_FILE":           http.StatusBadRequest,
	"MISSING_HEADERS":      http.StatusBadRequest,
	"TOO_MANY_ROWS":        http.StatusBadRequest,

	// Business rules
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"INVALID_STATUS":       http.StatusUnprocessableEntity,
	"INVALID_TRANSITION":   http.StatusUnprocessableEntity,
	"REMARKS_REQUIRED":     http.StatusUnprocessableEntity,
	"UNKNOWN_COMPANY":      http.StatusUnprocessableEntity,
	"UNKNOWN_PROPERTY":     http.StatusUnprocessableEntity,
	"RECORD_TYPE_MISMATCH": http.StatusUnprocessableEntity,

	// Rate limiting
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status for a domain error code, or
// 500 when the code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

package upload

import (
	"errors"
	"fmt"
	"strings"
)

// Upload error codes
const (
	ErrCodeUploadInvalidFile  = "ERR_UPLOAD_INVALID_FILE"
	ErrCodeUploadEmptyFile    = "ERR_UPLOAD_EMPTY_FILE"
	ErrCodeUploadFileTooLarge = "ERR_UPLOAD_FILE_TOO_LARGE"

	ErrCodeUploadInvalidEncoding = "ERR_UPLOAD_INVALID_ENCODING"

	ErrCodeUploadMissingHeader = "ERR_UPLOAD_MISSING_HEADER"
	ErrCodeUploadInvalidHeader = "ERR_UPLOAD_INVALID_HEADER"

	ErrCodeUploadValidation        = "ERR_UPLOAD_VALIDATION"
	ErrCodeUploadRequiredField     = "ERR_UPLOAD_REQUIRED_FIELD"
	ErrCodeUploadInvalidType       = "ERR_UPLOAD_INVALID_TYPE"
	ErrCodeUploadInvalidFormat     = "ERR_UPLOAD_INVALID_FORMAT"
	ErrCodeUploadInvalidLength     = "ERR_UPLOAD_INVALID_LENGTH"
	ErrCodeUploadInvalidRange      = "ERR_UPLOAD_INVALID_RANGE"
	ErrCodeUploadPatternMismatch   = "ERR_UPLOAD_PATTERN_MISMATCH"
	ErrCodeUploadDuplicateInFile   = "ERR_UPLOAD_DUPLICATE_IN_FILE"
	ErrCodeUploadReferenceNotFound = "ERR_UPLOAD_REFERENCE_NOT_FOUND"
)

// Common upload errors
var (
	// ErrEmptyFile is returned when the uploaded file is empty
	ErrEmptyFile = errors.New("uploaded file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the sheet has no header row
	ErrMissingHeader = errors.New("uploaded file missing header row")

	// ErrNoDataRows is returned when the sheet has no data rows
	ErrNoDataRows = errors.New("uploaded file contains no data rows")

	// ErrFileTooLarge is returned when the file exceeds maximum size
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")

	// ErrTooManyRows is returned when the sheet exceeds the row limit
	ErrTooManyRows = errors.New("uploaded file exceeds maximum row count")

	// ErrInvalidWorkbook is returned when the file is not a readable
	// xlsx workbook
	ErrInvalidWorkbook = errors.New("invalid Excel workbook")
)

// RowError represents an error in a specific row
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, column, code, message string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
	}
}

// NewRowErrorWithValue creates a new RowError with the invalid value
func NewRowErrorWithValue(row int, column, code, message, value string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
		Value:   value,
	}
}

// ErrorCollection manages a collection of upload errors
type ErrorCollection struct {
	errors     []RowError
	maxErrors  int
	totalCount int
}

// NewErrorCollection creates a new ErrorCollection with a maximum error limit
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors <= 0 {
		maxErrors = 100
	}
	return &ErrorCollection{
		errors:    make([]RowError, 0, maxErrors),
		maxErrors: maxErrors,
	}
}

// Add adds an error to the collection
func (ec *ErrorCollection) Add(err RowError) {
	ec.totalCount++
	if len(ec.errors) < ec.maxErrors {
		ec.errors = append(ec.errors, err)
	}
}

// AddValidationError adds a validation error for a specific field
func (ec *ErrorCollection) AddValidationError(row int, column, code, message string) {
	ec.Add(NewRowError(row, column, code, message))
}

// AddRequiredError adds a required field error
func (ec *ErrorCollection) AddRequiredError(row int, column string) {
	ec.Add(NewRowError(row, column, ErrCodeUploadRequiredField, fmt.Sprintf("field '%s' is required", column)))
}

// AddTypeError adds a type validation error
func (ec *ErrorCollection) AddTypeError(row int, column, expectedType, value string) {
	ec.Add(NewRowErrorWithValue(row, column, ErrCodeUploadInvalidType,
		fmt.Sprintf("expected %s", expectedType), value))
}

// AddFormatError adds a format validation error
func (ec *ErrorCollection) AddFormatError(row int, column, expectedFormat, value string) {
	ec.Add(NewRowErrorWithValue(row, column, ErrCodeUploadInvalidFormat,
		fmt.Sprintf("invalid format, expected %s", expectedFormat), value))
}

// AddLengthError adds a length validation error
func (ec *ErrorCollection) AddLengthError(row int, column string, minLen, maxLen int) {
	msg := fmt.Sprintf("length must be between %d and %d", minLen, maxLen)
	if minLen == 0 {
		msg = fmt.Sprintf("length must be at most %d", maxLen)
	}
	ec.Add(NewRowError(row, column, ErrCodeUploadInvalidLength, msg))
}

// AddRangeError adds a range validation error
func (ec *ErrorCollection) AddRangeError(row int, column string, min, max float64) {
	ec.Add(NewRowError(row, column, ErrCodeUploadInvalidRange,
		fmt.Sprintf("value must be between %.2f and %.2f", min, max)))
}

// AddPatternError adds a pattern mismatch error
func (ec *ErrorCollection) AddPatternError(row int, column, pattern, value string) {
	ec.Add(NewRowErrorWithValue(row, column, ErrCodeUploadPatternMismatch,
		fmt.Sprintf("value does not match pattern '%s'", pattern), value))
}

// AddReferenceError adds a reference not found error
func (ec *ErrorCollection) AddReferenceError(row int, column, value, refType string) {
	ec.Add(NewRowErrorWithValue(row, column, ErrCodeUploadReferenceNotFound,
		fmt.Sprintf("%s '%s' not found", refType, value), value))
}

// Errors returns the collected errors
func (ec *ErrorCollection) Errors() []RowError {
	return ec.errors
}

// Count returns the number of collected errors (up to maxErrors)
func (ec *ErrorCollection) Count() int {
	return len(ec.errors)
}

// TotalCount returns the total number of errors including those not collected
func (ec *ErrorCollection) TotalCount() int {
	return ec.totalCount
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollection) HasErrors() bool {
	return ec.totalCount > 0
}

// IsTruncated returns true if some errors were not collected due to the limit
func (ec *ErrorCollection) IsTruncated() bool {
	return ec.totalCount > ec.maxErrors
}

// Clear clears all errors
func (ec *ErrorCollection) Clear() {
	ec.errors = ec.errors[:0]
	ec.totalCount = 0
}

// String returns a string representation of all errors
func (ec *ErrorCollection) String() string {
	if !ec.HasErrors() {
		return "no errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) found", ec.totalCount))
	if ec.IsTruncated() {
		sb.WriteString(fmt.Sprintf(" (showing first %d)", ec.maxErrors))
	}
	sb.WriteString(":\n")

	for _, err := range ec.errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}

	return sb.String()
}

// Result summarizes a validated upload.
type Result struct {
	TotalRows   int        `json:"total_rows"`
	ValidRows   int        `json:"valid_rows"`
	ErrorRows   int        `json:"error_rows"`
	Errors      []RowError `json:"errors,omitempty"`
	IsTruncated bool       `json:"is_truncated,omitempty"`
	TotalErrors int        `json:"total_errors,omitempty"`
}

// SetErrors copies the errors from an ErrorCollection
func (r *Result) SetErrors(ec *ErrorCollection) {
	r.Errors = ec.Errors()
	r.IsTruncated = ec.IsTruncated()
	r.TotalErrors = ec.TotalCount()
}

// IsValid returns true if there are no error rows
func (r *Result) IsValid() bool {
	return r.ErrorRows == 0
}

// Package errors provides standardized error handling for the careers API.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeCompanyNotFound     ErrorCode = "COMPANY_NOT_FOUND"
	ErrCodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	ErrCodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeSectionNotFound     ErrorCode = "SECTION_NOT_FOUND"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionInvalid     ErrorCode = "SESSION_INVALID"

	ErrCodeDatabaseQueryFailed  ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeDatabaseInsertFailed ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeDatabaseUpdateFailed ErrorCode = "DATABASE_UPDATE_FAILED"
	ErrCodeDatabaseDeleteFailed ErrorCode = "DATABASE_DELETE_FAILED"
)

// FieldError describes a single invalid or missing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode    `json:"code"`
	Message   string       `json:"message"`
	Details   string       `json:"details,omitempty"`
	Fields    []FieldError `json:"fields,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a field-scoped validation error. Validation
// failures are expected errors and never reach persistence.
func NewValidationError(fields []FieldError) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Validation failed",
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	}
}

// NewCompanyNotFoundError creates a not-found error for a missing company.
func NewCompanyNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCompanyNotFound,
		Message:   "Company not found",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobNotFoundError creates a not-found error for a missing job.
func NewJobNotFoundError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobNotFound,
		Message:   "Job not found",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationNotFoundError creates a not-found error for a missing application.
func NewApplicationNotFoundError(applicationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationNotFound,
		Message:   "Application not found",
		Details:   fmt.Sprintf("applicationId: %s", applicationID),
		Timestamp: time.Now().UTC(),
	}
}

// NewSectionNotFoundError creates a not-found error for a missing section.
func NewSectionNotFoundError(sectionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSectionNotFound,
		Message:   "Section not found",
		Details:   fmt.Sprintf("sectionId: %s", sectionID),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCredentialsError creates an auth error for a bad username/password pair.
func NewInvalidCredentialsError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCredentials,
		Message:   "Invalid credentials",
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionInvalidError creates an auth error for an expired or malformed token.
func NewSessionInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionInvalid,
		Message:   "Session is invalid or expired",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseQueryFailedError creates a persistence error for a failed read.
func NewDatabaseQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseQueryFailed,
		Message:   "Database query failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a persistence error for a failed insert.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseUpdateFailedError creates a persistence error for a failed update.
func NewDatabaseUpdateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseUpdateFailed,
		Message:   "Database update operation failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseDeleteFailedError creates a persistence error for a failed delete.
func NewDatabaseDeleteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseDeleteFailed,
		Message:   "Database delete operation failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification
// ==========================

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return categoryOf(err) == CategoryValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return categoryOf(err) == CategoryNotFound
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	return categoryOf(err) == CategoryAuth
}

// IsPersistence reports whether err is an unexpected persistence error.
func IsPersistence(err error) bool {
	return categoryOf(err) == CategoryPersistence
}

// Category buckets error codes into the four kinds the API distinguishes.
type Category string

const (
	CategoryValidation  Category = "VALIDATION"
	CategoryNotFound    Category = "NOT_FOUND"
	CategoryAuth        Category = "AUTH"
	CategoryPersistence Category = "PERSISTENCE"
	CategoryUnknown     Category = "UNKNOWN"
)

func categoryOf(err error) Category {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return CategoryUnknown
	}
	switch stdErr.Code {
	case ErrCodeValidationFailed:
		return CategoryValidation
	case ErrCodeCompanyNotFound, ErrCodeJobNotFound, ErrCodeApplicationNotFound,
		ErrCodeSectionNotFound:
		return CategoryNotFound
	case ErrCodeInvalidCredentials, ErrCodeSessionInvalid:
		return CategoryAuth
	case ErrCodeDatabaseQueryFailed, ErrCodeDatabaseInsertFailed,
		ErrCodeDatabaseUpdateFailed, ErrCodeDatabaseDeleteFailed:
		return CategoryPersistence
	default:
		return CategoryUnknown
	}
}

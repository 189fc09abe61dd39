package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrJobNotFound  = errors.New("job not found")
	ErrPageNotFound = errors.New("page not found")

	// Authentication/authorization errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Configuration errors. These signal a server-side setup problem and
	// must stay distinguishable from a plain authorization or mail failure.
	ErrAdminNotConfigured = errors.New("admin credentials are not configured")
	ErrMailNotConfigured  = errors.New("mail transport is not configured")

	// ErrNotificationFailed reports a failed outbound email. The store write
	// that preceded it is already committed and is never rolled back.
	ErrNotificationFailed = errors.New("notification dispatch failed")
)

// MissingFieldsError is a validation failure naming every required field
// that was empty after trimming.
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing fields: %s", strings.Join(e.Fields, ", "))
}

// Unwrap makes the error match ErrValidationFailed via errors.Is
func (e *MissingFieldsError) Unwrap() error {
	return ErrValidationFailed
}

// NewMissingFieldsError creates a validation error for the given field names
func NewMissingFieldsError(fields ...string) error {
	return &MissingFieldsError{Fields: fields}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

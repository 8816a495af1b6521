package services

import (
	"errors"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/apperrors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrTransient        = errors.New("backend temporarily unavailable")

	// Category specific errors
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrDefaultCategory   = errors.New("default categories cannot be deleted")

	// Complaint specific errors
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")

	// Student identity errors
	ErrAlreadyRegistered = errors.New("email is already registered")
	ErrProfileNotFound   = errors.New("student profile not found")

	// Admin identity errors. Unknown username and wrong password both map
	// here so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from apperrors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrComplaintNotFound) ||
		errors.Is(err, ErrProfileNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrInvalidStatus) {
		return true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}

// IsConflict checks if error represents a uniqueness violation
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateCategory) ||
		errors.Is(err, ErrAlreadyRegistered)
}

// IsForbidden checks if error represents a refused operation
func IsForbidden(err error) bool {
	return errors.Is(err, ErrDefaultCategory)
}

// IsUnauthorized checks if error represents an authentication failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

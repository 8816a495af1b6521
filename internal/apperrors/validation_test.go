package apperrors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("category", "is required", "")

	if err.Field != "category" {
		t.Errorf("Expected field to be 'category', got '%s'", err.Field)
	}

	if err.Message != "is required" {
		t.Errorf("Expected message to be 'is required', got '%s'", err.Message)
	}

	expected := "validation error on field 'category': is required"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("title", "is required", nil))
	expected := "validation failed: title is required"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("description", "is required", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("status", "must be Pending, In Progress, or Resolved", "complaint_status", "Closed")

	if err.Rule != "complaint_status" {
		t.Errorf("Expected rule to be 'complaint_status', got '%s'", err.Rule)
	}

	if err.Value != "Closed" {
		t.Errorf("Expected value to be 'Closed', got '%v'", err.Value)
	}
}

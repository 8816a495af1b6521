package utils

import (
	"reflect"
	"strings"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/apperrors"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps struct-tag validation with the domain's custom tags.
type Validator struct {
	structValidator *validator.Validate
}

// NewValidator creates a validator with all custom tags registered.
func NewValidator() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags and maps failures to the shared
// validation error type.
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// ValidateComplaintStatus checks a status value outside of struct context.
func ValidateComplaintStatus(fl validator.FieldLevel) bool {
	return models.ComplaintStatus(fl.Field().String()).IsValid()
}

// ValidateDepartment checks a department value against the fixed campus list.
func ValidateDepartment(fl validator.FieldLevel) bool {
	return models.Department(fl.Field().String()).IsValid()
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("complaint_status", ValidateComplaintStatus)
	validate.RegisterValidation("department", ValidateDepartment)

	// Use json names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

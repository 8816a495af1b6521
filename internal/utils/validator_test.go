package utils

import (
	"testing"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

type statusFixture struct {
	Status string `json:"status" validate:"required,complaint_status"`
}

type departmentFixture struct {
	Department string `json:"department" validate:"required,department"`
}

func TestValidateStruct_ComplaintStatus(t *testing.T) {
	v := NewValidator()

	for _, status := range []string{"Pending", "In Progress", "Resolved"} {
		assert.NoError(t, v.ValidateStruct(&statusFixture{Status: status}), status)
	}

	for _, status := range []string{"pending", "Closed", "Escalated", "resolved "} {
		err := v.ValidateStruct(&statusFixture{Status: status})
		assert.Error(t, err, status)
	}
}

func TestValidateStruct_Department(t *testing.T) {
	v := NewValidator()

	for _, dept := range []string{"Computer Science", "Law", "Other"} {
		assert.NoError(t, v.ValidateStruct(&departmentFixture{Department: dept}), dept)
	}

	err := v.ValidateStruct(&departmentFixture{Department: "Astrology"})
	assert.Error(t, err)
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(&departmentFixture{Department: ""})
	var errs apperrors.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 1)
	assert.Equal(t, "department", errs[0].Field)
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type Department string

const (
	DeptComputerScience Department = "Computer Science"
	DeptElectrical      Department = "Electrical Engineering"
	DeptElectronics     Department = "Electronics And Communication Engineering"
	DeptMechanical      Department = "Mechanical Engineering"
	DeptCivil           Department = "Civil Engineering"
	DeptBusiness        Department = "Business Administration"
	DeptArts            Department = "Arts & Humanities"
	DeptScience         Department = "Science"
	DeptMedicine        Department = "Medicine"
	DeptLaw             Department = "Law"
	DeptOther           Department = "Other"
)

var ValidDepartments = []Department{
	DeptComputerScience,
	DeptElectrical,
	DeptElectronics,
	DeptMechanical,
	DeptCivil,
	DeptBusiness,
	DeptArts,
	DeptScience,
	DeptMedicine,
	DeptLaw,
	DeptOther,
}

func (d Department) IsValid() bool {
	for _, valid := range ValidDepartments {
		if d == valid {
			return true
		}
	}
	return false
}

// StudentProfile is the campus-side record for a student account. Its ID is
// the identity collaborator's account id, created exactly once at signup.
type StudentProfile struct {
	ID         string     `json:"id" gorm:"primaryKey;size:255"`
	Name       string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email      string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	Enrollment string     `json:"enrollment" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	Department Department `json:"department" gorm:"not null;size:100" validate:"required,department"`

	// Notification preferences, opaque to this service.
	Preferences datatypes.JSON `json:"preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StudentProfile) TableName() string {
	return "profiles"
}

package models

import (
	"time"
)

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// ValidStatuses lists every status a complaint can carry. There are no
// forbidden transitions: an administrator may move a complaint between any
// two statuses, including reopening a resolved one.
var ValidStatuses = []ComplaintStatus{
	StatusPending,
	StatusInProgress,
	StatusResolved,
}

func (s ComplaintStatus) IsValid() bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type Complaint struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	StudentID   string          `json:"student_id" gorm:"not null;size:255;index"`
	Title       string          `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string          `json:"description" gorm:"type:text;not null" validate:"required,min=1"`
	Category    string          `json:"category" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Status      ComplaintStatus `json:"status" gorm:"not null;default:Pending;index" validate:"omitempty,complaint_status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Profile *StudentProfile `json:"profile,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

func (Complaint) TableName() string {
	return "complaints"
}

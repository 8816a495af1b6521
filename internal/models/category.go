package models

import "time"

type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	IsDefault bool      `json:"is_default" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategories are seeded at migration time and cannot be deleted.
var DefaultCategories = []string{
	"Academics",
	"Hostel",
	"Maintenance",
	"Food & Canteen",
	"Transport",
	"Other",
}

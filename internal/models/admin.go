package models

import "time"

// AdminAccount rows are provisioned out of band; there is no self-service
// signup path for administrators.
type AdminAccount struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminAccount) TableName() string {
	return "admins"
}

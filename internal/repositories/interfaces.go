package repositories

import (
	"context"
	"errors"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository interface for the category registry
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error) // sorted by name ascending
	Delete(ctx context.Context, id string) error          // refuses default categories

	// Validation helpers
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ComplaintRepository interface for the complaint store
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id string) (*models.Complaint, error)

	// Query operations, both newest createdAt first
	ListByStudent(ctx context.Context, studentID string) ([]*models.Complaint, error)
	ListAll(ctx context.Context) ([]*models.Complaint, error) // with profile join

	// Status management; complaints are never deleted
	UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus) error
}

// ProfileRepository interface for student profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.StudentProfile) error
	GetByID(ctx context.Context, id string) (*models.StudentProfile, error)
	ListIDs(ctx context.Context) ([]string, error)

	// Validation helpers
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// AdminRepository interface for admin accounts (provisioned out of band)
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error)
}

// Repository aggregates all domain repositories
type Repository interface {
	Category() CategoryRepository
	Complaint() ComplaintRepository
	Profile() ProfileRepository
	Admin() AdminRepository
}

// ErrDefaultCategory is returned when a delete targets a seeded category.
var ErrDefaultCategory = errors.New("default categories cannot be deleted")

// IsNotFoundError checks whether err represents a missing row
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError checks whether err represents a uniqueness violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

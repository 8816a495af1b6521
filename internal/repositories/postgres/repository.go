package postgres

import (
	"context"
	"fmt"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	category  repositories.CategoryRepository
	complaint repositories.ComplaintRepository
	profile   repositories.ProfileRepository
	admin     repositories.AdminRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		category:  NewCategoryPostgreSQL(db),
		complaint: NewComplaintPostgreSQL(db),
		profile:   NewProfilePostgreSQL(db),
		admin:     NewAdminPostgreSQL(db),
	}
}

func (r *repository) Category() repositories.CategoryRepository   { return r.category }
func (r *repository) Complaint() repositories.ComplaintRepository { return r.complaint }
func (r *repository) Profile() repositories.ProfileRepository     { return r.profile }
func (r *repository) Admin() repositories.AdminRepository         { return r.admin }

// Migrate creates the schema and seeds the default category set. Seeding is
// idempotent: existing names are left untouched.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Category{},
		&models.StudentProfile{},
		&models.Complaint{},
		&models.AdminAccount{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	for _, name := range models.DefaultCategories {
		var count int64
		if err := db.WithContext(ctx).
			Model(&models.Category{}).
			Where("name = ?", name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check default category %q: %w", name, err)
		}
		if count > 0 {
			continue
		}
		category := &models.Category{
			ID:        uuid.NewString(),
			Name:      name,
			IsDefault: true,
		}
		if err := db.WithContext(ctx).Create(category).Error; err != nil {
			return fmt.Errorf("failed to seed default category %q: %w", name, err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintPostgreSQL struct {
	db *gorm.DB
}

func NewComplaintPostgreSQL(db *gorm.DB) repositories.ComplaintRepository {
	return &ComplaintPostgreSQL{db: db}
}

// Create inserts a complaint. Status is forced to Pending regardless of what
// the caller put on the struct.
func (c *ComplaintPostgreSQL) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	complaint.Status = models.StatusPending

	if err := c.db.WithContext(ctx).Create(complaint).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

func (c *ComplaintPostgreSQL) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := c.db.WithContext(ctx).First(&complaint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (c *ComplaintPostgreSQL) ListByStudent(ctx context.Context, studentID string) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := c.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints for student: %w", err)
	}
	return complaints, nil
}

// ListAll returns every complaint with its submitting student's profile
// preloaded. A complaint whose profile row is missing is still returned,
// with a nil Profile.
func (c *ComplaintPostgreSQL) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := c.db.WithContext(ctx).
		Preload("Profile").
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

func (c *ComplaintPostgreSQL) UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus) error {
	result := c.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

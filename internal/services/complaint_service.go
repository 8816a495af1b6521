package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/events"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
)

// SubmitComplaintRequest carries a student's new complaint. Status is not
// accepted from the caller; every complaint starts Pending.
type SubmitComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// AdminComplaintView joins a complaint with its submitting student's
// profile. Profile is nil when the profile row is missing; presentation
// renders that as "Unknown".
type AdminComplaintView struct {
	Complaint *models.Complaint      `json:"complaint"`
	Profile   *models.StudentProfile `json:"profile"`
}

// ComplaintService is the complaint store contract plus the lifecycle rules
// around it.
type ComplaintService interface {
	Submit(ctx context.Context, studentID string, req *SubmitComplaintRequest) (*models.Complaint, error)
	ListForStudent(ctx context.Context, studentID string) ([]*models.Complaint, error)
	ListAll(ctx context.Context) ([]*AdminComplaintView, error)
	UpdateStatus(ctx context.Context, complaintID string, newStatus models.ComplaintStatus, adminID string) (*models.Complaint, error)
}

type complaintService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewComplaintService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *utils.Validator) ComplaintService {
	return &complaintService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *complaintService) Submit(ctx context.Context, studentID string, req *SubmitComplaintRequest) (*models.Complaint, error) {
	if studentID == "" {
		return nil, NewValidationError("student_id", "is required", studentID)
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)

	// All fields are checked before the store is contacted.
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category, // name snapshot, not a reference
		Status:      models.StatusPending,
	}

	if err := s.repo.Complaint().Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	s.logger.Info("Complaint submitted",
		"complaint_id", complaint.ID,
		"student_id", studentID,
		"category", complaint.Category)

	s.publish(ctx, events.NewComplaintEvent(events.EventComplaintCreated, events.ComplaintCreatedEvent{
		ComplaintID: complaint.ID,
		StudentID:   complaint.StudentID,
		Title:       complaint.Title,
		Category:    complaint.Category,
		CreatedAt:   complaint.CreatedAt,
	}))

	return complaint, nil
}

func (s *complaintService) ListForStudent(ctx context.Context, studentID string) ([]*models.Complaint, error) {
	if studentID == "" {
		return nil, NewValidationError("student_id", "is required", studentID)
	}

	complaints, err := s.repo.Complaint().ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

func (s *complaintService) ListAll(ctx context.Context) ([]*AdminComplaintView, error) {
	complaints, err := s.repo.Complaint().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	views := make([]*AdminComplaintView, 0, len(complaints))
	for _, complaint := range complaints {
		views = append(views, &AdminComplaintView{
			Complaint: complaint,
			Profile:   complaint.Profile,
		})
	}
	return views, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, complaintID string, newStatus models.ComplaintStatus, adminID string) (*models.Complaint, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	complaint, err := s.repo.Complaint().GetByID(ctx, complaintID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	oldStatus := complaint.Status

	// Every transition between the three statuses is legal, including
	// no-ops and reopening Resolved complaints. Last writer wins.
	if err := s.repo.Complaint().UpdateStatus(ctx, complaintID, newStatus); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}

	complaint.Status = newStatus

	s.logger.Info("Complaint status updated",
		"complaint_id", complaintID,
		"old_status", oldStatus,
		"new_status", newStatus,
		"admin_id", adminID)

	s.publish(ctx, events.NewComplaintEvent(events.EventComplaintStatusChanged, events.ComplaintStatusChangedEvent{
		ComplaintID: complaint.ID,
		StudentID:   complaint.StudentID,
		Title:       complaint.Title,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   adminID,
		ChangedAt:   time.Now(),
	}))

	return complaint, nil
}

func (s *complaintService) publish(ctx context.Context, event *events.ComplaintEvent) {
	if err := s.publisher.PublishComplaintEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish complaint event", "event_type", event.Type, "error", err)
	}
}

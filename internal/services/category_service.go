package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/events"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
)

// CategoryService is the category registry: a small mutable set of tags
// complaints are classified under.
type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Add(ctx context.Context, name string, actorID string) (*models.Category, error)
	Remove(ctx context.Context, id string, actorID string) error
}

type categoryService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewCategoryService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) CategoryService {
	return &categoryService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.Category().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Add(ctx context.Context, name string, actorID string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "is required", name)
	}

	exists, err := s.repo.Category().ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCategory
	}

	category := &models.Category{
		Name:      name,
		IsDefault: false,
	}
	if err := s.repo.Category().Create(ctx, category); err != nil {
		// The uniqueness check above races with concurrent adds; the
		// database constraint is the one that holds.
		if repositories.IsDuplicateError(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category created", "category_id", category.ID, "name", category.Name, "actor_id", actorID)

	s.publish(ctx, events.NewComplaintEvent(events.EventCategoryCreated, events.CategoryCreatedEvent{
		CategoryID: category.ID,
		Name:       category.Name,
		CreatedBy:  actorID,
	}))

	return category, nil
}

func (s *categoryService) Remove(ctx context.Context, id string, actorID string) error {
	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category.IsDefault {
		return ErrDefaultCategory
	}

	if err := s.repo.Category().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCategoryNotFound
		}
		if errors.Is(err, repositories.ErrDefaultCategory) {
			return ErrDefaultCategory
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("Category deleted", "category_id", id, "name", category.Name, "actor_id", actorID)

	s.publish(ctx, events.NewComplaintEvent(events.EventCategoryDeleted, events.CategoryDeletedEvent{
		CategoryID: id,
		Name:       category.Name,
		DeletedBy:  actorID,
	}))

	return nil
}

// publish logs and swallows publisher failures: registry mutations have
// already committed and must not be reported as failed to the caller.
func (s *categoryService) publish(ctx context.Context, event *events.ComplaintEvent) {
	if err := s.publisher.PublishComplaintEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish category event", "event_type", event.Type, "error", err)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/identity"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
)

// SignupRequest carries everything needed for the two-step signup:
// identity creation at the collaborator, then the matching profile row.
type SignupRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Enrollment string `json:"enrollment" validate:"required,min=1,max=50"`
	Department string `json:"department" validate:"required,department"`
}

// StudentAuthService owns the student side of identity: signup plus the
// reconciliation of identities left without a profile when the second
// signup step fails.
type StudentAuthService interface {
	SignUp(ctx context.Context, req *SignupRequest) (*models.StudentProfile, error)
	ProfileByID(ctx context.Context, studentID string) (*models.StudentProfile, error)
	ReconcileOrphans(ctx context.Context) (int, error)
}

type studentAuthService struct {
	repo        repositories.Repository
	provider    identity.Provider
	logger      *slog.Logger
	validator   *utils.Validator
	gracePeriod time.Duration
}

func NewStudentAuthService(
	repo repositories.Repository,
	provider identity.Provider,
	logger *slog.Logger,
	validator *utils.Validator,
	gracePeriod time.Duration,
) StudentAuthService {
	return &studentAuthService{
		repo:        repo,
		provider:    provider,
		logger:      logger,
		validator:   validator,
		gracePeriod: gracePeriod,
	}
}

// SignUp creates the identity account and then, synchronously, the profile.
// Duplicate emails are detected with an explicit lookup rather than by
// matching the collaborator's error text. The two steps are not atomic: a
// profile failure after identity creation leaves an orphaned identity,
// which ReconcileOrphans later removes.
func (s *studentAuthService) SignUp(ctx context.Context, req *SignupRequest) (*models.StudentProfile, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Enrollment = strings.TrimSpace(req.Enrollment)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	_, err := s.provider.AccountByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, identity.ErrAccountNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	account, err := s.provider.CreateAccount(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	profile := &models.StudentProfile{
		ID:         account.ID,
		Name:       req.Name,
		Email:      req.Email,
		Enrollment: req.Enrollment,
		Department: models.Department(req.Department),
	}

	if err := s.repo.Profile().Create(ctx, profile); err != nil {
		s.logger.Error("Profile creation failed after identity creation, identity is orphaned",
			"account_id", account.ID,
			"email", req.Email,
			"error", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("Student signed up", "student_id", profile.ID, "department", profile.Department)
	return profile, nil
}

func (s *studentAuthService) ProfileByID(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	profile, err := s.repo.Profile().GetByID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ReconcileOrphans deletes identity accounts that have no profile row and
// are older than the grace period. The grace period keeps in-flight signups
// from being reaped between their two steps.
func (s *studentAuthService) ReconcileOrphans(ctx context.Context) (int, error) {
	accounts, err := s.provider.ListAccounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	profileIDs, err := s.repo.Profile().ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	known := make(map[string]struct{}, len(profileIDs))
	for _, id := range profileIDs {
		known[id] = struct{}{}
	}

	cutoff := time.Now().Add(-s.gracePeriod)
	removed := 0
	for _, account := range accounts {
		if _, ok := known[account.ID]; ok {
			continue
		}
		if account.CreatedAt.After(cutoff) {
			continue
		}
		if err := s.provider.DeleteAccount(ctx, account.ID); err != nil {
			s.logger.Warn("Failed to delete orphaned identity",
				"account_id", account.ID,
				"error", err)
			continue
		}
		s.logger.Info("Deleted orphaned identity", "account_id", account.ID, "email", account.Email)
		removed++
	}
	return removed, nil
}

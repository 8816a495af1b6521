package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService authenticates administrators against the admins table
// and manages their server-side sessions. Accounts are provisioned out of
// band; there is no signup path.
type AdminAuthService interface {
	Login(ctx context.Context, username, password string) (token string, sess *session.AdminSession, err error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*session.AdminSession, error)
}

type adminAuthService struct {
	repo     repositories.Repository
	sessions session.Store
	logger   *slog.Logger
}

func NewAdminAuthService(repo repositories.Repository, sessions session.Store, logger *slog.Logger) AdminAuthService {
	return &adminAuthService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies credentials and issues an opaque session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *adminAuthService) Login(ctx context.Context, username, password string) (string, *session.AdminSession, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	admin, err := s.repo.Admin().GetByUsername(ctx, username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sess := session.AdminSession{
		AdminID:  admin.ID,
		Username: admin.Username,
	}
	token, err := s.sessions.Create(ctx, sess)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create admin session: %w", err)
	}

	s.logger.Info("Admin logged in", "admin_id", admin.ID, "username", admin.Username)
	return token, &sess, nil
}

// Logout clears the session unconditionally; revoking an already-absent
// token is not an error.
func (s *adminAuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to clear admin session: %w", err)
	}
	return nil
}

func (s *adminAuthService) Authenticate(ctx context.Context, token string) (*session.AdminSession, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return sess, nil
}

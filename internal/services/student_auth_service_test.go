package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/identity"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentAuthTestService(gracePeriod time.Duration) (StudentAuthService, *identity.MockProvider, *fakeProfileRepository) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	provider := identity.NewMockProvider()
	profiles := newFakeProfileRepository()
	repo := &testRepository{profile: profiles}
	service := NewStudentAuthService(repo, provider, logger, utils.NewValidator(), gracePeriod)
	return service, provider, profiles
}

func validSignup() *SignupRequest {
	return &SignupRequest{
		Name:       "Asha Patel",
		Email:      "asha@campus.edu",
		Password:   "secret1",
		Enrollment: "EN-2024-017",
		Department: string(models.DeptComputerScience),
	}
}

func TestStudentAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates identity account and matching profile", func(t *testing.T) {
		service, provider, profiles := newStudentAuthTestService(time.Hour)

		profile, err := service.SignUp(ctx, validSignup())
		require.NoError(t, err)

		account, err := provider.AccountByEmail(ctx, "asha@campus.edu")
		require.NoError(t, err)
		// The profile row shares the identity account's id.
		assert.Equal(t, account.ID, profile.ID)

		stored, err := profiles.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Asha Patel", stored.Name)
		assert.Equal(t, models.DeptComputerScience, stored.Department)
	})

	t.Run("normalizes email case before the duplicate check", func(t *testing.T) {
		service, _, _ := newStudentAuthTestService(time.Hour)

		_, err := service.SignUp(ctx, validSignup())
		require.NoError(t, err)

		req := validSignup()
		req.Email = "ASHA@Campus.edu"
		req.Enrollment = "EN-2024-018"
		_, err = service.SignUp(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("rejects duplicate email without creating a second account", func(t *testing.T) {
		service, provider, _ := newStudentAuthTestService(time.Hour)

		_, err := service.SignUp(ctx, validSignup())
		require.NoError(t, err)

		_, err = service.SignUp(ctx, validSignup())
		assert.ErrorIs(t, err, ErrAlreadyRegistered)

		accounts, err := provider.ListAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
	})

	t.Run("rejects short password before any account is created", func(t *testing.T) {
		service, provider, _ := newStudentAuthTestService(time.Hour)

		req := validSignup()
		req.Password = "12345"
		_, err := service.SignUp(ctx, req)
		assert.True(t, IsValidation(err), "expected validation error, got %v", err)

		accounts, err := provider.ListAccounts(ctx)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("rejects unknown department", func(t *testing.T) {
		service, _, _ := newStudentAuthTestService(time.Hour)

		req := validSignup()
		req.Department = "Astrology"
		_, err := service.SignUp(ctx, req)
		assert.True(t, IsValidation(err))
	})

	t.Run("profile failure leaves an orphaned identity", func(t *testing.T) {
		service, provider, profiles := newStudentAuthTestService(time.Hour)
		profiles.failCreate = true

		_, err := service.SignUp(ctx, validSignup())
		assert.Error(t, err)

		// The account survived step one; the profile never happened.
		accounts, err := provider.ListAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
		ids, err := profiles.ListIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestStudentAuthService_ReconcileOrphans(t *testing.T) {
	ctx := context.Background()

	t.Run("removes orphans older than the grace period", func(t *testing.T) {
		service, provider, profiles := newStudentAuthTestService(time.Hour)

		// One complete signup, one orphan past the grace period.
		_, err := service.SignUp(ctx, validSignup())
		require.NoError(t, err)

		profiles.failCreate = true
		req := validSignup()
		req.Email = "orphan@campus.edu"
		req.Enrollment = "EN-2024-099"
		_, err = service.SignUp(ctx, req)
		require.Error(t, err)
		profiles.failCreate = false

		orphan, err := provider.AccountByEmail(ctx, "orphan@campus.edu")
		require.NoError(t, err)
		orphan.CreatedAt = time.Now().Add(-2 * time.Hour)

		removed, err := service.ReconcileOrphans(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		_, err = provider.AccountByEmail(ctx, "orphan@campus.edu")
		assert.ErrorIs(t, err, identity.ErrAccountNotFound)
		// The complete signup is untouched.
		_, err = provider.AccountByEmail(ctx, "asha@campus.edu")
		assert.NoError(t, err)
	})

	t.Run("spares recent orphans still inside the grace period", func(t *testing.T) {
		service, provider, profiles := newStudentAuthTestService(time.Hour)

		profiles.failCreate = true
		_, err := service.SignUp(ctx, validSignup())
		require.Error(t, err)

		removed, err := service.ReconcileOrphans(ctx)
		require.NoError(t, err)
		assert.Zero(t, removed)

		accounts, err := provider.ListAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
	})
}

func TestStudentAuthService_ProfileByID(t *testing.T) {
	ctx := context.Background()
	service, _, profiles := newStudentAuthTestService(time.Hour)

	require.NoError(t, profiles.Create(ctx, &models.StudentProfile{
		ID: "acct-1", Name: "Asha", Email: "asha@campus.edu",
	}))

	profile, err := service.ProfileByID(ctx, "acct-1")
	assert.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)

	_, err = service.ProfileByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/session"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var (
	errRecordNotFound  = gorm.ErrRecordNotFound
	errRepoUnavailable = errors.New("repository unavailable")
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockComplaintRepository is a mock implementation of ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Complaint, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// fakeProfileRepository is an in-memory ProfileRepository
type fakeProfileRepository struct {
	profiles   map[string]*models.StudentProfile
	failCreate bool
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{profiles: make(map[string]*models.StudentProfile)}
}

func (f *fakeProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	if f.failCreate {
		return errRepoUnavailable
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepository) GetByID(ctx context.Context, id string) (*models.StudentProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepository) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.profiles))
	for id := range f.profiles {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeProfileRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, ok := f.profiles[id]
	return ok, nil
}

// fakeAdminRepository is an in-memory AdminRepository
type fakeAdminRepository struct {
	admins map[string]*models.AdminAccount // keyed by username
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{admins: make(map[string]*models.AdminAccount)}
}

func (f *fakeAdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, errRecordNotFound
	}
	return admin, nil
}

// fakeSessionStore is an in-memory session.Store
type fakeSessionStore struct {
	sessions map[string]session.AdminSession
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]session.AdminSession)}
}

func (f *fakeSessionStore) Create(ctx context.Context, sess session.AdminSession) (string, error) {
	f.nextID++
	token := fmt.Sprintf("token-%d", f.nextID)
	f.sessions[token] = sess
	return token, nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token string) (*session.AdminSession, error) {
	sess, ok := f.sessions[token]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return &sess, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

// testRepository aggregates the repo fakes/mocks for service construction
type testRepository struct {
	category  repositories.CategoryRepository
	complaint repositories.ComplaintRepository
	profile   repositories.ProfileRepository
	admin     repositories.AdminRepository
}

func (r *testRepository) Category() repositories.CategoryRepository   { return r.category }
func (r *testRepository) Complaint() repositories.ComplaintRepository { return r.complaint }
func (r *testRepository) Profile() repositories.ProfileRepository     { return r.profile }
func (r *testRepository) Admin() repositories.AdminRepository         { return r.admin }

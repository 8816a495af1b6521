package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/events"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newComplaintTestService(complaintRepo *MockComplaintRepository) (ComplaintService, *events.MockEventPublisher) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	publisher := events.NewMockEventPublisher(logger)
	repo := &testRepository{complaint: complaintRepo}
	return NewComplaintService(repo, publisher, logger, utils.NewValidator()), publisher
}

func TestComplaintService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores complaint as Pending and publishes event", func(t *testing.T) {
		complaintRepo := new(MockComplaintRepository)
		service, publisher := newComplaintTestService(complaintRepo)

		complaintRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Complaint) bool {
			return c.StudentID == "student-1" &&
				c.Title == "Broken fan" &&
				c.Category == "Hostel" &&
				c.Status == models.StatusPending
		})).Return(nil)

		complaint, err := service.Submit(ctx, "student-1", &SubmitComplaintRequest{
			Title:       "  Broken fan  ",
			Description: "The ceiling fan in room 204 stopped working.",
			Category:    "Hostel",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, complaint.Status)
		complaintRepo.AssertExpectations(t)

		published := publisher.GetPublishedEvents()
		assert.Len(t, published, 1)
		assert.Equal(t, events.EventComplaintCreated, published[0].Type)
	})

	t.Run("rejects missing fields before the store", func(t *testing.T) {
		complaintRepo := new(MockComplaintRepository)
		service, publisher := newComplaintTestService(complaintRepo)

		requests := []*SubmitComplaintRequest{
			{Title: "", Description: "desc", Category: "Hostel"},
			{Title: "Title", Description: "   ", Category: "Hostel"},
			{Title: "Title", Description: "desc", Category: ""},
		}
		for _, req := range requests {
			_, err := service.Submit(ctx, "student-1", req)
			assert.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		}

		complaintRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, publisher.GetPublishedEvents())
	})

	t.Run("rejects empty student id", func(t *testing.T) {
		complaintRepo := new(MockComplaintRepository)
		service, _ := newComplaintTestService(complaintRepo)

		_, err := service.Submit(ctx, "", &SubmitComplaintRequest{
			Title:       "Title",
			Description: "desc",
			Category:    "Hostel",
		})
		assert.True(t, IsValidation(err))
	})
}

func TestComplaintService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("every transition between valid statuses is legal", func(t *testing.T) {
		for _, from := range models.ValidStatuses {
			for _, to := range models.ValidStatuses {
				complaintRepo := new(MockComplaintRepository)
				service, publisher := newComplaintTestService(complaintRepo)

				complaintRepo.On("GetByID", ctx, "c-1").Return(&models.Complaint{
					ID: "c-1", StudentID: "student-1", Title: "t", Status: from,
				}, nil)
				complaintRepo.On("UpdateStatus", ctx, "c-1", to).Return(nil)

				complaint, err := service.UpdateStatus(ctx, "c-1", to, "admin-1")
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, complaint.Status)

				published := publisher.GetPublishedEvents()
				assert.Len(t, published, 1)
				assert.Equal(t, events.EventComplaintStatusChanged, published[0].Type)
			}
		}
	})

	t.Run("rejects unknown status without touching the store", func(t *testing.T) {
		complaintRepo := new(MockComplaintRepository)
		service, _ := newComplaintTestService(complaintRepo)

		_, err := service.UpdateStatus(ctx, "c-1", models.ComplaintStatus("Escalated"), "admin-1")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		complaintRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("reports missing complaint", func(t *testing.T) {
		complaintRepo := new(MockComplaintRepository)
		service, _ := newComplaintTestService(complaintRepo)

		complaintRepo.On("GetByID", ctx, "missing").Return(nil, errRecordNotFound)

		_, err := service.UpdateStatus(ctx, "missing", models.StatusResolved, "admin-1")
		assert.ErrorIs(t, err, ErrComplaintNotFound)
	})
}

func TestComplaintService_ListForStudent(t *testing.T) {
	ctx := context.Background()
	complaintRepo := new(MockComplaintRepository)
	service, _ := newComplaintTestService(complaintRepo)

	own := []*models.Complaint{
		{ID: "c-2", StudentID: "student-1", Title: "newer"},
		{ID: "c-1", StudentID: "student-1", Title: "older"},
	}
	complaintRepo.On("ListByStudent", ctx, "student-1").Return(own, nil)

	complaints, err := service.ListForStudent(ctx, "student-1")
	assert.NoError(t, err)
	assert.Equal(t, own, complaints)
}

func TestComplaintService_ListAll(t *testing.T) {
	ctx := context.Background()
	complaintRepo := new(MockComplaintRepository)
	service, _ := newComplaintTestService(complaintRepo)

	profile := &models.StudentProfile{ID: "student-1", Name: "Asha", Email: "asha@campus.edu"}
	complaintRepo.On("ListAll", ctx).Return([]*models.Complaint{
		{ID: "c-2", StudentID: "student-1", Profile: profile},
		{ID: "c-1", StudentID: "gone", Profile: nil},
	}, nil)

	views, err := service.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, profile, views[0].Profile)
	// A complaint whose submitter has no profile row still appears.
	assert.Nil(t, views[1].Profile)
	assert.Equal(t, "c-1", views[1].Complaint.ID)
}

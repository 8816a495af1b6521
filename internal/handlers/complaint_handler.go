package handlers

import (
	"net/http"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/gin-gonic/gin"
)

// ComplaintHandler serves the student complaint surface: submitting and
// listing the student's own complaints. The admin triage surface lives on
// AdminHandler so the role boundary follows the route groups.
type ComplaintHandler struct {
	BaseHandler
	complaintService services.ComplaintService
}

func NewComplaintHandler(complaintService services.ComplaintService, logger utils.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		BaseHandler:      NewBaseHandler(logger),
		complaintService: complaintService,
	}
}

// SubmitComplaint creates a new complaint for the authenticated student
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var req services.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	studentID := c.GetString("student_id")
	h.LogRequest(c, "Submitting complaint", "student_id", studentID, "category", req.Category)

	complaint, err := h.complaintService.Submit(c.Request.Context(), studentID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Complaint submitted successfully",
		Data:    complaint,
	})
}

// ListOwnComplaints returns the authenticated student's complaints,
// newest first
func (h *ComplaintHandler) ListOwnComplaints(c *gin.Context) {
	studentID := c.GetString("student_id")

	complaints, err := h.complaintService.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaints)
}

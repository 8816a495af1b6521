package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administrator surface: login/logout, the full
// complaint listing, status triage, export, and identity reconciliation.
type AdminHandler struct {
	BaseHandler
	adminAuth        services.AdminAuthService
	complaintService services.ComplaintService
	studentAuth      services.StudentAuthService
	exportService    services.ExportService
}

func NewAdminHandler(
	adminAuth services.AdminAuthService,
	complaintService services.ComplaintService,
	studentAuth services.StudentAuthService,
	exportService services.ExportService,
	logger utils.Logger,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      NewBaseHandler(logger),
		adminAuth:        adminAuth,
		complaintService: complaintService,
		studentAuth:      studentAuth,
		exportService:    exportService,
	}
}

// LoginRequest carries admin credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the issued session token
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// UpdateStatusRequest carries a complaint's new status
type UpdateStatusRequest struct {
	Status models.ComplaintStatus `json:"status"`
}

// Login verifies admin credentials and issues a session token
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	token, sess, err := h.adminAuth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Username: sess.Username,
	})
}

// Logout revokes the current admin session
func (h *AdminHandler) Logout(c *gin.Context) {
	token := c.GetString("admin_token")

	if err := h.adminAuth.Logout(c.Request.Context(), token); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logged out",
	})
}

// ListComplaints returns every complaint joined with the submitting
// student's profile, newest first
func (h *AdminHandler) ListComplaints(c *gin.Context) {
	views, err := h.complaintService.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// UpdateComplaintStatus moves a complaint to a new status
func (h *AdminHandler) UpdateComplaintStatus(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == "" {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	adminID := c.GetString("admin_id")
	h.LogRequest(c, "Updating complaint status", "complaint_id", id, "status", req.Status, "admin_id", adminID)

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), id, req.Status, adminID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Complaint status changed to %s", complaint.Status),
		Data:    complaint,
	})
}

// ExportComplaints streams the full complaint listing as an xlsx workbook
func (h *AdminHandler) ExportComplaints(c *gin.Context) {
	data, err := h.exportService.ExportComplaintsToExcel(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("complaints-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}

// Reconcile removes identity accounts left without a profile by failed
// signups
func (h *AdminHandler) Reconcile(c *gin.Context) {
	adminID := c.GetString("admin_id")
	h.LogRequest(c, "Reconciling orphaned identities", "admin_id", adminID)

	removed, err := h.studentAuth.ReconcileOrphans(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Reconciliation complete",
		Data:    gin.H{"removed": removed},
	})
}

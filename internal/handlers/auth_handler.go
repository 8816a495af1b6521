package handlers

import (
	"net/http"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the student side of identity: signup and the current
// profile lookup the dashboard loads on session presence.
type AuthHandler struct {
	BaseHandler
	studentAuth services.StudentAuthService
}

func NewAuthHandler(studentAuth services.StudentAuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		studentAuth: studentAuth,
	}
}

// Signup creates a student identity at the collaborator and its profile row
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Student signup", "email", req.Email)

	profile, err := h.studentAuth.SignUp(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Account created successfully. You can now login.",
		Data:    profile,
	})
}

// Me returns the authenticated student's profile
func (h *AuthHandler) Me(c *gin.Context) {
	studentID := c.GetString("student_id")

	profile, err := h.studentAuth.ProfileByID(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

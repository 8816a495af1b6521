package handlers

import (
	"net/http"
	"strings"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/identity"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/gin-gonic/gin"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// StudentAuthMiddleware verifies a collaborator-issued student token and
// stores the student's account id on the context. Admin sessions are not
// accepted here: the role boundary is enforced per route group.
func StudentAuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		account, err := provider.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("student_id", account.ID)
		c.Set("student_email", account.Email)
		c.Next()
	}
}

// AdminAuthMiddleware verifies an opaque admin session token against the
// server-side session store. Student tokens are not accepted here.
func AdminAuthMiddleware(adminAuth services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		sess, err := adminAuth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("admin_id", sess.AdminID)
		c.Set("admin_username", sess.Username)
		c.Set("admin_token", token)
		c.Next()
	}
}

package handlers

import (
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/identity"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	categoryHandler  *CategoryHandler
	complaintHandler *ComplaintHandler
	adminHandler     *AdminHandler

	provider  identity.Provider
	adminAuth services.AdminAuthService
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	provider identity.Provider,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:     NewAuthHandler(serviceManager.StudentAuth(), logger),
		categoryHandler: NewCategoryHandler(serviceManager.Category(), logger),
		complaintHandler: NewComplaintHandler(
			serviceManager.Complaint(), logger),
		adminHandler: NewAdminHandler(
			serviceManager.AdminAuth(),
			serviceManager.Complaint(),
			serviceManager.StudentAuth(),
			serviceManager.Export(),
			logger),
		provider:  provider,
		adminAuth: serviceManager.AdminAuth(),
	}
}

// SetupRoutes sets up all API routes. The student/admin split is the one
// access-control boundary the system depends on: each group carries its own
// authentication middleware and no operation is reachable from both.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "complaint-tracker",
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/auth/signup", hm.authHandler.Signup)
		v1.POST("/admin/login", hm.adminHandler.Login)

		// Student routes
		student := v1.Group("")
		student.Use(StudentAuthMiddleware(hm.provider))
		{
			student.GET("/auth/me", hm.authHandler.Me)
			student.GET("/complaints", hm.complaintHandler.ListOwnComplaints)
			student.POST("/complaints", hm.complaintHandler.SubmitComplaint)
			student.GET("/categories", hm.categoryHandler.ListCategories)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(AdminAuthMiddleware(hm.adminAuth))
		{
			admin.POST("/logout", hm.adminHandler.Logout)
			admin.GET("/complaints", hm.adminHandler.ListComplaints)
			admin.PUT("/complaints/:id/status", hm.adminHandler.UpdateComplaintStatus)
			admin.GET("/complaints/export", hm.adminHandler.ExportComplaints)
			admin.POST("/reconcile", hm.adminHandler.Reconcile)

			admin.GET("/categories", hm.categoryHandler.ListCategories)
			admin.POST("/categories", hm.categoryHandler.AddCategory)
			admin.DELETE("/categories/:id", hm.categoryHandler.RemoveCategory)
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService, logger utils.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     NewBaseHandler(logger),
		categoryService: categoryService,
	}
}

// AddCategoryRequest for creating a new category
type AddCategoryRequest struct {
	Name string `json:"name"`
}

// ListCategories returns all categories sorted by name
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// AddCategory creates a new non-default category
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	adminID := c.GetString("admin_id")
	h.LogRequest(c, "Adding category", "name", req.Name, "admin_id", adminID)

	category, err := h.categoryService.Add(c.Request.Context(), req.Name, adminID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Category added successfully",
		Data:    category,
	})
}

// RemoveCategory deletes a non-default category
func (h *CategoryHandler) RemoveCategory(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == "" {
		return
	}

	adminID := c.GetString("admin_id")
	h.LogRequest(c, "Removing category", "category_id", id, "admin_id", adminID)

	if err := h.categoryService.Remove(c.Request.Context(), id, adminID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted",
	})
}

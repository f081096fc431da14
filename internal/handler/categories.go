package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/service"
)

// CategoryHandler handles HTTP requests for custom expense categories.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the HTTP request body for a custom category.
type CategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (r CategoryRequest) toService() service.CategoryRequest {
	return service.CategoryRequest{Name: r.Name, Icon: r.Icon, Color: r.Color}
}

// GetAll handles GET /v1/categories. The response lists the custom
// categories and every category an expense may use.
func (h *CategoryHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	respondJSON(c, http.StatusOK, gin.H{
		"items":     h.categoryService.List(ctx),
		"available": h.categoryService.All(ctx),
	})
}

// CreateCategory handles POST /v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.categoryService.Add(c.Request.Context(), req.toService())
	respondMutation(c, http.StatusCreated, res, err)
}

// UpdateCategory handles PUT /v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), req.toService())
	respondMutation(c, http.StatusOK, res, err)
}

// DeleteCategory handles DELETE /v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	list, err := h.categoryService.Delete(c.Request.Context(), c.Param("id"))
	respondList(c, list, err)
}

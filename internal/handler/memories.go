package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/service"
)

// MemoryHandler handles HTTP requests for trip photos.
type MemoryHandler struct {
	memoryService *service.MemoryService
}

// NewMemoryHandler creates a new MemoryHandler.
func NewMemoryHandler(memoryService *service.MemoryService) *MemoryHandler {
	return &MemoryHandler{memoryService: memoryService}
}

// MemoryRequest is the HTTP request body for a memory. Trip is the
// destination of the trip the photo belongs to.
type MemoryRequest struct {
	Trip  string `json:"trip"`
	Image string `json:"image"`
	Date  string `json:"date"`
}

// GetAll handles GET /v1/memories, optionally filtered by ?trip=<destination>.
func (h *MemoryHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	if trip := c.Query("trip"); trip != "" {
		respondJSON(c, http.StatusOK, newListResponse(h.memoryService.ListByTrip(ctx, trip)))
		return
	}
	respondJSON(c, http.StatusOK, newListResponse(h.memoryService.List(ctx)))
}

// CreateMemory handles POST /v1/memories
func (h *MemoryHandler) CreateMemory(c *gin.Context) {
	var req MemoryRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.memoryService.Add(c.Request.Context(), service.MemoryRequest{
		Trip:  req.Trip,
		Image: req.Image,
		Date:  req.Date,
	})
	respondMutation(c, http.StatusCreated, res, err)
}

// DeleteMemory handles DELETE /v1/memories/:id
func (h *MemoryHandler) DeleteMemory(c *gin.Context) {
	list, err := h.memoryService.Delete(c.Request.Context(), c.Param("id"))
	respondList(c, list, err)
}

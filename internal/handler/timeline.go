package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// TimelineHandler handles HTTP requests for a trip's itinerary.
type TimelineHandler struct {
	timelineService *service.TimelineService
}

// NewTimelineHandler creates a new TimelineHandler.
func NewTimelineHandler(timelineService *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// EventRequest is the HTTP request body for a timeline event.
type EventRequest struct {
	Time        string           `json:"time"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        domain.EventType `json:"type"`
	Status      string           `json:"status"`
	StatusLabel string           `json:"statusLabel"`
	MapURL      string           `json:"mapUrl"`
}

func (r EventRequest) toService() service.EventRequest {
	return service.EventRequest{
		Time:        r.Time,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Status:      r.Status,
		StatusLabel: r.StatusLabel,
		MapURL:      r.MapURL,
	}
}

// GetEvents handles GET /v1/trips/:id/events
func (h *TimelineHandler) GetEvents(c *gin.Context) {
	events, err := h.timelineService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, newListResponse(events))
}

// CreateEvent handles POST /v1/trips/:id/events
func (h *TimelineHandler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.timelineService.Create(c.Request.Context(), c.Param("id"), req.toService())
	respondMutation(c, http.StatusCreated, res, err)
}

// UpdateEvent handles PUT /v1/trips/:id/events/:eventId
func (h *TimelineHandler) UpdateEvent(c *gin.Context) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.timelineService.Update(c.Request.Context(), c.Param("id"), c.Param("eventId"), req.toService())
	respondMutation(c, http.StatusOK, res, err)
}

// DeleteEvent handles DELETE /v1/trips/:id/events/:eventId
func (h *TimelineHandler) DeleteEvent(c *gin.Context) {
	list, err := h.timelineService.Delete(c.Request.Context(), c.Param("id"), c.Param("eventId"))
	respondList(c, list, err)
}

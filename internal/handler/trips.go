package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// TripRequest is the HTTP request body for creating or editing a trip.
type TripRequest struct {
	Destination string            `json:"destination"`
	Country     string            `json:"country"`
	DateRange   string            `json:"dateRange"`
	ImageURL    string            `json:"imageUrl"`
	Status      domain.TripStatus `json:"status"`
	Notes       string            `json:"notes"`
	Travelers   []domain.Traveler `json:"travelers"`
}

// TripResponse is a trip with its countdown label.
type TripResponse struct {
	domain.Trip
	Timing string `json:"timing"`
}

func (h *TripHandler) toResponse(t domain.Trip) TripResponse {
	return TripResponse{Trip: t, Timing: h.tripService.Timing(t)}
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips := h.tripService.List(c.Request.Context())

	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, h.toResponse(t))
	}
	respondJSON(c, http.StatusOK, newListResponse(out))
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.tripService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, h.toResponse(trip))
}

// CreateTrip handles POST /v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req TripRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.tripService.Create(c.Request.Context(), service.CreateTripRequest{
		Destination: req.Destination,
		Country:     req.Country,
		DateRange:   req.DateRange,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Notes:       req.Notes,
		Travelers:   req.Travelers,
	})
	respondMutation(c, http.StatusCreated, res, err)
}

// UpdateTrip handles PUT /v1/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req TripRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.tripService.Update(c.Request.Context(), service.UpdateTripRequest{
		ID:          c.Param("id"),
		Destination: req.Destination,
		Country:     req.Country,
		DateRange:   req.DateRange,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Notes:       req.Notes,
		Travelers:   req.Travelers,
	})
	respondMutation(c, http.StatusOK, res, err)
}

// GetStats handles GET /v1/stats
func (h *TripHandler) GetStats(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.tripService.Stats(c.Request.Context()))
}

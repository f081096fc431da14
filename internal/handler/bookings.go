package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest is the HTTP request body for a booking.
type BookingRequest struct {
	TripID    string             `json:"tripId"`
	Type      domain.BookingType `json:"type"`
	Provider  string             `json:"provider"`
	Reference string             `json:"reference"`
	Date      string             `json:"date"`
	EndDate   string             `json:"endDate"`
	Details   string             `json:"details"`
}

func (r BookingRequest) toService(tripID string) service.BookingRequest {
	if tripID == "" {
		tripID = r.TripID
	}
	return service.BookingRequest{
		TripID:    tripID,
		Type:      r.Type,
		Provider:  r.Provider,
		Reference: r.Reference,
		Date:      r.Date,
		EndDate:   r.EndDate,
		Details:   r.Details,
	}
}

// GetByTrip handles GET /v1/trips/:id/bookings
func (h *BookingHandler) GetByTrip(c *gin.Context) {
	bookings := h.bookingService.ListByTrip(c.Request.Context(), c.Param("id"))
	respondJSON(c, http.StatusOK, newListResponse(bookings))
}

// CreateBooking handles POST /v1/trips/:id/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.bookingService.Create(c.Request.Context(), req.toService(c.Param("id")))
	respondMutation(c, http.StatusCreated, res, err)
}

// UpdateBooking handles PUT /v1/bookings/:id
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.bookingService.Update(c.Request.Context(), c.Param("id"), req.toService(""))
	respondMutation(c, http.StatusOK, res, err)
}

// DeleteBooking handles DELETE /v1/bookings/:id
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	list, err := h.bookingService.Delete(c.Request.Context(), c.Param("id"))
	respondList(c, list, err)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest is the HTTP request body for an expense. Amount is sent as
// typed by the user, e.g. "12,50".
type ExpenseRequest struct {
	TripID      string                 `json:"tripId"`
	Description string                 `json:"description"`
	Amount      string                 `json:"amount"`
	Category    domain.ExpenseCategory `json:"category"`
	Date        string                 `json:"date"`
}

func (r ExpenseRequest) toService(tripID string) service.ExpenseRequest {
	if tripID == "" {
		tripID = r.TripID
	}
	return service.ExpenseRequest{
		TripID:      tripID,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        r.Date,
	}
}

// GetAll handles GET /v1/expenses
func (h *ExpenseHandler) GetAll(c *gin.Context) {
	respondJSON(c, http.StatusOK, newListResponse(h.expenseService.List(c.Request.Context())))
}

// GetByTrip handles GET /v1/trips/:id/expenses
func (h *ExpenseHandler) GetByTrip(c *gin.Context) {
	expenses := h.expenseService.ListByTrip(c.Request.Context(), c.Param("id"))
	respondJSON(c, http.StatusOK, newListResponse(expenses))
}

// GetTripSummary handles GET /v1/trips/:id/expenses/summary
func (h *ExpenseHandler) GetTripSummary(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.expenseService.Summary(c.Request.Context(), c.Param("id")))
}

// GetSummary handles GET /v1/expenses/summary
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.expenseService.Summary(c.Request.Context(), ""))
}

// CreateExpense handles POST /v1/trips/:id/expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.expenseService.Create(c.Request.Context(), req.toService(c.Param("id")))
	respondMutation(c, http.StatusCreated, res, err)
}

// UpdateExpense handles PUT /v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.expenseService.Update(c.Request.Context(), c.Param("id"), req.toService(""))
	respondMutation(c, http.StatusOK, res, err)
}

// DeleteExpense handles DELETE /v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	list, err := h.expenseService.Delete(c.Request.Context(), c.Param("id"))
	respondList(c, list, err)
}

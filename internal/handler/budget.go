package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// BudgetHandler handles HTTP requests for the budget.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetConfig handles GET /v1/budget
func (h *BudgetHandler) GetConfig(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.budgetService.GetConfig(c.Request.Context()))
}

// UpdateConfig handles PUT /v1/budget
func (h *BudgetHandler) UpdateConfig(c *gin.Context) {
	var req domain.BudgetConfig
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.budgetService.SaveConfig(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, cfg)
}

// GetSummary handles GET /v1/budget/summary
func (h *BudgetHandler) GetSummary(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.budgetService.Summary(c.Request.Context()))
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreClearer wipes every key of the store.
type StoreClearer interface {
	Clear(ctx context.Context) bool
}

// StoreHandler handles maintenance of the underlying store.
type StoreHandler struct {
	store StoreClearer
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(store StoreClearer) *StoreHandler {
	return &StoreHandler{store: store}
}

// Clear handles DELETE /v1/store. Sample data is seeded again on the next
// read.
func (h *StoreHandler) Clear(c *gin.Context) {
	if !h.store.Clear(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store not cleared"})
		return
	}
	c.Status(http.StatusNoContent)
}

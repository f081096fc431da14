package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MutationResponse is returned by every write: the affected record and the
// whole collection as written. Error is set when the write did not reach
// storage; Items then holds the state the client should keep.
type MutationResponse[T any] struct {
	Item  T      `json:"item"`
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

// ListResponse wraps a collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// respondMutation sends the outcome of a write. A failed write still returns
// the new list alongside the error.
func respondMutation[T any](c *gin.Context, code int, m service.Mutation[T], err error) {
	switch {
	case err == nil:
		respondJSON(c, code, MutationResponse[T]{Item: m.Item, Items: m.List})
	case errors.Is(err, service.ErrNotPersisted):
		respondJSON(c, mapErrorToHTTPStatus(err), MutationResponse[T]{Item: m.Item, Items: m.List, Error: err.Error()})
	default:
		respondError(c, err)
	}
}

// respondList sends the outcome of a delete.
func respondList[T any](c *gin.Context, items []T, err error) {
	switch {
	case err == nil:
		respondJSON(c, http.StatusOK, newListResponse(items))
	case errors.Is(err, service.ErrNotPersisted):
		respondJSON(c, mapErrorToHTTPStatus(err), MutationResponse[T]{Items: items, Error: err.Error()})
	default:
		respondError(c, err)
	}
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors
	case errors.Is(err, service.ErrValidation):
		return http.StatusUnprocessableEntity

	// Storage refused the write
	case errors.Is(err, service.ErrNotPersisted):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

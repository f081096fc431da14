package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripbook/internal/repository"
	"tripbook/internal/service"
)

func TestMapErrorToHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{service.ErrTripNotFound, http.StatusNotFound},
		{fmt.Errorf("load: %w", repository.ErrNotFound), http.StatusNotFound},
		{service.ErrDestinationRequired, http.StatusUnprocessableEntity},
		{service.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{service.ErrInvalidTripID, http.StatusUnprocessableEntity},
		{service.ErrNotPersisted, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapErrorToHTTPStatus(tt.err), tt.err.Error())
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.profileService.Get(c.Request.Context()))
}

// UpdateProfile handles PUT /v1/profile. The body replaces the whole profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.Profile
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Save(c.Request.Context(), req)
	if err != nil && !errors.Is(err, service.ErrNotPersisted) {
		respondError(c, err)
		return
	}
	if err != nil {
		respondJSON(c, mapErrorToHTTPStatus(err), gin.H{"profile": profile, "error": err.Error()})
		return
	}
	respondJSON(c, http.StatusOK, profile)
}

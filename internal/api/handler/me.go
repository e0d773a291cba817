package handler

import (
	"net/http"

	"github.com/ainaweather/ainaweather/internal/api/middleware"
	"github.com/ainaweather/ainaweather/internal/api/response"
	"github.com/ainaweather/ainaweather/internal/user"
)

// MeHandler handles the caller's own profile.
type MeHandler struct {
	users *user.Service
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(users *user.Service) *MeHandler {
	return &MeHandler{users: users}
}

// GetMe handles GET /v1/me - the profile behind the caller's session,
// created on first access.
func (h *MeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.InternalError(w, r, "No session on request")
		return
	}

	profile, err := h.users.GetOrCreate(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "Failed to load profile")
		return
	}

	response.JSON(w, r, http.StatusOK, profile)
}

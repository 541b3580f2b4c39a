package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"urjaportal/backend/services/auth-service/internal/service"
)

// ProfileHandlers serve GET and PUT /auth/me.
type ProfileHandlers struct {
	service *service.AuthService
}

// NewProfileHandlers builds profile handlers.
func NewProfileHandlers(svc *service.AuthService) *ProfileHandlers {
	return &ProfileHandlers{service: svc}
}

// Get returns the caller's profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing or invalid user id header")
		return
	}

	consumer, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, consumer)
}

// Update changes editable profile fields.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing or invalid user id header")
		return
	}

	var req struct {
		Name           *string `json:"name"`
		Phone          *string `json:"phone"`
		TariffCategory *string `json:"tariff_category"`
		Language       *string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	consumer, err := h.service.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Name:           req.Name,
		Phone:          req.Phone,
		TariffCategory: req.TariffCategory,
		Language:       req.Language,
	})
	if err != nil {
		writeProfileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, consumer)
}

func writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "consumer not found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to load profile")
	}
}

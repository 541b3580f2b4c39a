package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"urjaportal/backend/services/auth-service/internal/service"
)

// NewSignupHandler returns HTTP handler for registration endpoint.
func NewSignupHandler(authService *service.AuthService) http.HandlerFunc {
	type request struct {
		ConsumerNumber string `json:"consumer_number"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		Name           string `json:"name"`
		Phone          string `json:"phone"`
		TariffCategory string `json:"tariff_category"`
		Language       string `json:"language"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || strings.TrimSpace(req.Password) == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		consumer, err := authService.Signup(r.Context(), service.SignupInput{
			ConsumerNumber: req.ConsumerNumber,
			Email:          req.Email,
			Password:       req.Password,
			Name:           req.Name,
			Phone:          req.Phone,
			TariffCategory: req.TariffCategory,
			Language:       req.Language,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmailInUse):
				writeError(w, http.StatusConflict, "email already registered")
			case errors.Is(err, service.ErrConsumerNumberInUse):
				writeError(w, http.StatusConflict, "consumer number already registered")
			case errors.Is(err, service.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "failed to create consumer")
			}
			return
		}

		writeJSON(w, http.StatusCreated, consumer)
	}
}

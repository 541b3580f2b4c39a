package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"urjaportal/backend/services/auth-service/internal/service"
)

type loginRequest struct {
	Email          string `json:"email"`
	ConsumerNumber string `json:"consumer_number"`
	Password       string `json:"password"`
}

// identifier prefers the consumer number when both are sent.
func (l loginRequest) identifier() string {
	if n := strings.TrimSpace(l.ConsumerNumber); n != "" {
		return n
	}
	return strings.TrimSpace(l.Email)
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
	UserID    int64  `json:"user_id"`
	Language  string `json:"language"`
}

// NewLoginHandler handles POST /auth/login with either email or
// consumer_number plus password.
func NewLoginHandler(authService *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		id := req.identifier()
		if id == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email or consumer_number and password are required")
			return
		}

		token, consumer, err := authService.Login(r.Context(), id, req.Password)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "failed to login")
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int64(authService.TokenTTL().Seconds()),
			UserID:    consumer.ID,
			Language:  consumer.Language,
		})
	}
}

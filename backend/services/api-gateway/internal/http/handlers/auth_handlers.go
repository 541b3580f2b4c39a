package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"urjaportal/backend/services/api-gateway/internal/clients"
)

const upstreamAuth = "auth-service"

// AuthHandlers proxies auth-service endpoints.
type AuthHandlers struct {
	client *clients.AuthClient
	logger *zap.Logger
}

// NewAuthHandlers returns handler struct.
func NewAuthHandlers(client *clients.AuthClient, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{client: client, logger: logger}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamAuth, h.client.Signup)
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamAuth, h.client.Login)
}

// Profile handles GET /api/auth/me.
func (h *AuthHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamAuth, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.Profile(ctx, headers)
	})
}

// UpdateProfile handles PUT /api/auth/me.
func (h *AuthHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamAuth, h.client.UpdateProfile)
}

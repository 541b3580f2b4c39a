package clients

import (
	"context"
	"net/http"
)

// AuthClient proxies auth-service endpoints.
type AuthClient struct {
	base *BaseClient
}

// NewAuthClient returns client.
func NewAuthClient(baseURL string, httpClient HTTPDoer) *AuthClient {
	return &AuthClient{base: NewBaseClient(baseURL, httpClient)}
}

// Signup forwards signup payload.
func (c *AuthClient) Signup(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/auth/signup", body, headers)
}

// Login forwards login payload.
func (c *AuthClient) Login(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/auth/login", body, headers)
}

// Profile fetches the caller's profile.
func (c *AuthClient) Profile(ctx context.Context, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/auth/me", nil, headers)
}

// UpdateProfile forwards profile changes.
func (c *AuthClient) UpdateProfile(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPut, "/auth/me", body, headers)
}

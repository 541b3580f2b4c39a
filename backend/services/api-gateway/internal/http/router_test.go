package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	libhttp "urjaportal/backend/libs/httpserver"
	"urjaportal/backend/services/api-gateway/internal/clients"
	"urjaportal/backend/services/api-gateway/internal/http/handlers"
	"urjaportal/backend/services/api-gateway/internal/http/middleware"
)

const (
	testSecret = "gateway-secret"
	testIssuer = "urjaportal"
)

type echoed struct {
	Method    string `json:"method"`
	Path      string `json:"path"`
	UserID    string `json:"user_id"`
	Language  string `json:"language"`
	RequestID string `json:"request_id"`
	Body      string `json:"body"`
}

// newUpstream answers every request with a description of what it received.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(echoed{
			Method:    r.Method,
			Path:      r.URL.Path,
			UserID:    r.Header.Get("X-User-ID"),
			Language:  r.Header.Get("Accept-Language"),
			RequestID: r.Header.Get(middleware.RequestIDHeader),
			Body:      string(body),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(baseURL string) http.Handler {
	httpClient := clients.NewDefaultHTTPClient(2 * time.Second)
	logger := zap.NewNop()
	return NewRouter(RouterDeps{
		AuthHandlers:    handlers.NewAuthHandlers(clients.NewAuthClient(baseURL, httpClient), logger),
		BillingHandlers: handlers.NewBillingHandlers(clients.NewBillingClient(baseURL, httpClient), logger),
		EnergyHandlers:  handlers.NewEnergyHandlers(clients.NewEnergyClient(baseURL, httpClient), logger),
		HealthHandler:   libhttp.Health(0, nil),
		Metrics:         middleware.NewMetrics(),
	}, middleware.AuthMiddleware(testSecret, testIssuer))
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iss":     testIssuer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(t *testing.T, h http.Handler, method, path, body, auth string) (*httptest.ResponseRecorder, echoed) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept-Language", "mr")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got echoed
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	}
	return rec, got
}

func TestPublicRoutesAreForwarded(t *testing.T) {
	gw := newGateway(newUpstream(t).URL)

	tests := []struct {
		method string
		path   string
		body   string
		want   string
	}{
		{http.MethodPost, "/api/auth/signup", `{"name":"A"}`, "/auth/signup"},
		{http.MethodPost, "/api/auth/login", `{"email":"a@b.c"}`, "/auth/login"},
		{http.MethodGet, "/api/billing/tariffs", "", "/billing/tariffs"},
		{http.MethodPost, "/api/billing/calculate", `{"units":120}`, "/billing/calculate"},
		{http.MethodGet, "/api/energy/appliances/catalog", "", "/energy/appliances/catalog"},
		{http.MethodPost, "/api/energy/appliances/aggregate", `{"appliances":[]}`, "/energy/appliances/aggregate"},
		{http.MethodPost, "/api/energy/solar/estimate", `{"capacity_kw":3}`, "/energy/solar/estimate"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec, got := do(t, gw, tc.method, tc.path, tc.body, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.want, got.Path)
			assert.Equal(t, tc.body, got.Body)
			assert.Equal(t, "mr", got.Language)
			assert.Empty(t, got.UserID)
		})
	}
}

func TestAuthenticatedRoutes(t *testing.T) {
	gw := newGateway(newUpstream(t).URL)
	token := bearer(t, 42)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/api/auth/me", "/auth/me"},
		{http.MethodPut, "/api/auth/me", "/auth/me"},
		{http.MethodGet, "/api/billing/me/bills", "/billing/me/bills"},
		{http.MethodPost, "/api/billing/me/bills", "/billing/me/bills"},
		{http.MethodGet, "/api/billing/me/bills/7", "/billing/me/bills/7"},
		{http.MethodPost, "/api/billing/me/bills/7/pay", "/billing/me/bills/7/pay"},
		{http.MethodGet, "/api/energy/me/appliances", "/energy/me/appliances"},
		{http.MethodPost, "/api/energy/me/appliances", "/energy/me/appliances"},
		{http.MethodDelete, "/api/energy/me/appliances", "/energy/me/appliances"},
		{http.MethodDelete, "/api/energy/me/appliances/abc-123", "/energy/me/appliances/abc-123"},
		{http.MethodPost, "/api/energy/me/appliances/bill", "/energy/me/appliances/bill"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec, _ := do(t, gw, tc.method, tc.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec, got := do(t, gw, tc.method, tc.path, "", token)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.want, got.Path)
			assert.Equal(t, "42", got.UserID)
		})
	}
}

func TestForwardedUserIDCannotBeSpoofed(t *testing.T) {
	gw := newGateway(newUpstream(t).URL)

	req := httptest.NewRequest(http.MethodGet, "/api/billing/me/bills", nil)
	req.Header.Set("Authorization", bearer(t, 5))
	req.Header.Set("X-User-ID", "999")
	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, req)

	var got echoed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "5", got.UserID)
}

func TestUpstreamStatusIsRelayed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Language", "mr")
		w.Header().Set("X-Internal", "secret")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"bad","code":"invalid_units","field":"units"}`))
	}))
	defer upstream.Close()

	rec, _ := do(t, newGateway(upstream.URL), http.MethodPost, "/api/billing/calculate", `{"units":-1}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"bad","code":"invalid_units","field":"units"}`, rec.Body.String())
	assert.Equal(t, "mr", rec.Header().Get("Content-Language"))
	assert.Empty(t, rec.Header().Get("X-Internal"))
}

func TestRequestIDIsForwarded(t *testing.T) {
	gw := middleware.RequestIDMiddleware()(newGateway(newUpstream(t).URL))

	req := httptest.NewRequest(http.MethodGet, "/api/billing/tariffs", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-7")
	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got echoed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "trace-7", got.RequestID)
	assert.Equal(t, "trace-7", rec.Header().Get(middleware.RequestIDHeader))
}

func TestUpstreamDownIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	rec, _ := do(t, newGateway(url), http.MethodGet, "/api/billing/tariffs", "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestMethodNotAllowed(t *testing.T) {
	gw := newGateway(newUpstream(t).URL)

	rec, _ := do(t, gw, http.MethodDelete, "/api/billing/calculate", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))

	rec, _ = do(t, gw, http.MethodPatch, "/api/energy/me/appliances", "", bearer(t, 1))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "DELETE, GET, POST", rec.Header().Get("Allow"))
}

func TestHealthAndMetrics(t *testing.T) {
	gw := newGateway(newUpstream(t).URL)

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `urjaportal_gateway_requests_total{code="200",method="GET",route="/health"} 1`)
}

package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"urjaportal/backend/services/api-gateway/internal/clients"
)

const upstreamBilling = "billing-service"

// BillingHandlers proxies billing-service endpoints.
type BillingHandlers struct {
	client *clients.BillingClient
	logger *zap.Logger
}

// NewBillingHandlers returns handler.
func NewBillingHandlers(client *clients.BillingClient, logger *zap.Logger) *BillingHandlers {
	return &BillingHandlers{client: client, logger: logger}
}

// Tariffs handles GET /api/billing/tariffs.
func (h *BillingHandlers) Tariffs(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamBilling, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.Tariffs(ctx, headers)
	})
}

// Calculate handles POST /api/billing/calculate.
func (h *BillingHandlers) Calculate(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamBilling, h.client.Calculate)
}

// ListBills handles GET /api/billing/me/bills.
func (h *BillingHandlers) ListBills(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamBilling, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.ListBills(ctx, headers)
	})
}

// CreateBill handles POST /api/billing/me/bills.
func (h *BillingHandlers) CreateBill(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamBilling, h.client.CreateBill)
}

// GetBill handles GET /api/billing/me/bills/{id}.
func (h *BillingHandlers) GetBill(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("id")
	proxy(w, r, h.logger, upstreamBilling, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.GetBill(ctx, billID, headers)
	})
}

// PayBill handles POST /api/billing/me/bills/{id}/pay.
func (h *BillingHandlers) PayBill(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("id")
	proxy(w, r, h.logger, upstreamBilling, func(ctx context.Context, body []byte, headers http.Header) (*clients.Response, error) {
		return h.client.PayBill(ctx, billID, body, headers)
	})
}

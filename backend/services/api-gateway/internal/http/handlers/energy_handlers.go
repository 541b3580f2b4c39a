package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"urjaportal/backend/services/api-gateway/internal/clients"
)

const upstreamEnergy = "energy-service"

// EnergyHandlers proxies energy-service endpoints.
type EnergyHandlers struct {
	client *clients.EnergyClient
	logger *zap.Logger
}

// NewEnergyHandlers returns handler.
func NewEnergyHandlers(client *clients.EnergyClient, logger *zap.Logger) *EnergyHandlers {
	return &EnergyHandlers{client: client, logger: logger}
}

// Catalog handles GET /api/energy/appliances/catalog.
func (h *EnergyHandlers) Catalog(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.Catalog(ctx, headers)
	})
}

// Aggregate handles POST /api/energy/appliances/aggregate.
func (h *EnergyHandlers) Aggregate(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, h.client.Aggregate)
}

// Solar handles POST /api/energy/solar/estimate.
func (h *EnergyHandlers) Solar(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, h.client.Solar)
}

// ListAppliances handles GET /api/energy/me/appliances.
func (h *EnergyHandlers) ListAppliances(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.ListAppliances(ctx, headers)
	})
}

// AddAppliance handles POST /api/energy/me/appliances.
func (h *EnergyHandlers) AddAppliance(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, h.client.AddAppliance)
}

// ClearAppliances handles DELETE /api/energy/me/appliances.
func (h *EnergyHandlers) ClearAppliances(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.ClearAppliances(ctx, headers)
	})
}

// RemoveAppliance handles DELETE /api/energy/me/appliances/{id}.
func (h *EnergyHandlers) RemoveAppliance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	proxy(w, r, h.logger, upstreamEnergy, func(ctx context.Context, _ []byte, headers http.Header) (*clients.Response, error) {
		return h.client.RemoveAppliance(ctx, id, headers)
	})
}

// ApplianceBill handles POST /api/energy/me/appliances/bill.
func (h *EnergyHandlers) ApplianceBill(w http.ResponseWriter, r *http.Request) {
	proxy(w, r, h.logger, upstreamEnergy, h.client.ApplianceBill)
}

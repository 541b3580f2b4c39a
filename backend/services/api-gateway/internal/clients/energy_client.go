package clients

import (
	"context"
	"net/http"
	"net/url"
)

// EnergyClient proxies energy-service endpoints.
type EnergyClient struct {
	base *BaseClient
}

// NewEnergyClient returns client.
func NewEnergyClient(baseURL string, httpClient HTTPDoer) *EnergyClient {
	return &EnergyClient{base: NewBaseClient(baseURL, httpClient)}
}

// Catalog fetches predefined appliances.
func (c *EnergyClient) Catalog(ctx context.Context, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/energy/appliances/catalog", nil, headers)
}

// Aggregate sums an ad-hoc appliance list.
func (c *EnergyClient) Aggregate(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/energy/appliances/aggregate", body, headers)
}

// Solar runs the rooftop estimator.
func (c *EnergyClient) Solar(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/energy/solar/estimate", body, headers)
}

// ListAppliances fetches the caller's saved list.
func (c *EnergyClient) ListAppliances(ctx context.Context, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/energy/me/appliances", nil, headers)
}

// AddAppliance appends to the caller's saved list.
func (c *EnergyClient) AddAppliance(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/energy/me/appliances", body, headers)
}

// ClearAppliances empties the caller's saved list.
func (c *EnergyClient) ClearAppliances(ctx context.Context, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodDelete, "/energy/me/appliances", nil, headers)
}

// RemoveAppliance deletes one saved appliance.
func (c *EnergyClient) RemoveAppliance(ctx context.Context, id string, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodDelete, "/energy/me/appliances/"+url.PathEscape(id), nil, headers)
}

// ApplianceBill prices the caller's saved list.
func (c *EnergyClient) ApplianceBill(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/energy/me/appliances/bill", body, headers)
}

package clients

import (
	"context"
	"net/http"
	"net/url"
)

// BillingClient proxies billing-service endpoints.
type BillingClient struct {
	base *BaseClient
}

// NewBillingClient returns client.
func NewBillingClient(baseURL string, httpClient HTTPDoer) *BillingClient {
	return &BillingClient{base: NewBaseClient(baseURL, httpClient)}
}

// Tariffs fetches the rate table.
func (c *BillingClient) Tariffs(ctx context.Context, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/billing/tariffs", nil, headers)
}

// Calculate prices a bill without storing it.
func (c *BillingClient) Calculate(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/billing/calculate", body, headers)
}

// ListBills fetches the caller's bill history.
func (c *BillingClient) ListBills(ctx context.Context, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/billing/me/bills", nil, headers)
}

// CreateBill calculates and stores a bill for the caller.
func (c *BillingClient) CreateBill(ctx context.Context, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/billing/me/bills", body, headers)
}

// GetBill fetches one of the caller's bills.
func (c *BillingClient) GetBill(ctx context.Context, billID string, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/billing/me/bills/"+url.PathEscape(billID), nil, headers)
}

// PayBill settles one bill.
func (c *BillingClient) PayBill(ctx context.Context, billID string, body []byte, headers http.Header) (*Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/billing/me/bills/"+url.PathEscape(billID)+"/pay", body, headers)
}

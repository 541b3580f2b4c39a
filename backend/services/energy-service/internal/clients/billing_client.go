package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

// ErrUpstream is returned when billing-service is unreachable or answers unexpectedly.
var ErrUpstream = errors.New("billing client: upstream failure")

// BillQuote is the billing-service calculation response.
type BillQuote struct {
	Category calc.Category `json:"category"`
	calc.BillResult
}

// RejectedError carries a 422 answer from billing-service.
type RejectedError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Field   string `json:"field"`
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("billing client: rejected %s: %s", e.Field, e.Code)
}

// BillingClient asks billing-service to price a unit count.
type BillingClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewBillingClient returns HTTP client wrapper.
func NewBillingClient(baseURL string, logger *zap.Logger) *BillingClient {
	return &BillingClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// QuoteUnits prices units under category as a direct-units bill.
// lang is forwarded so validation messages come back localized.
func (c *BillingClient) QuoteUnits(ctx context.Context, units float64, category, lang string) (*BillQuote, error) {
	payload := map[string]interface{}{
		"method":   calc.MethodUnits,
		"units":    units,
		"category": category,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/billing/calculate", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set(i18n.HeaderAcceptLanguage, lang)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("billing client request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var quote BillQuote
		if err := json.Unmarshal(body, &quote); err != nil {
			return nil, fmt.Errorf("%w: decode quote: %v", ErrUpstream, err)
		}
		return &quote, nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		rejected := &RejectedError{}
		if err := json.Unmarshal(body, rejected); err != nil {
			return nil, fmt.Errorf("%w: decode rejection: %v", ErrUpstream, err)
		}
		return nil, rejected
	default:
		c.logger.Warn("billing client returned non-success", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
}

package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuoteUnits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing/calculate", r.URL.Path)
		assert.Equal(t, "mr", r.Header.Get("Accept-Language"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "units", body["method"])
		assert.Equal(t, 30.0, body["units"])
		assert.Equal(t, "residential", body["category"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"category":"residential","total_units":30,"total_amount":520.8,"tariff_rate":10}`))
	}))
	defer srv.Close()

	quote, err := NewBillingClient(srv.URL+"/", zap.NewNop()).QuoteUnits(context.Background(), 30, "residential", "mr")
	require.NoError(t, err)
	assert.Equal(t, 30.0, quote.TotalUnits)
	assert.Equal(t, 520.8, quote.TotalAmount)
	assert.EqualValues(t, "residential", quote.Category)
}

func TestQuoteUnitsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"Units consumed must be a number greater than zero.","code":"invalid_units","field":"units"}`))
	}))
	defer srv.Close()

	_, err := NewBillingClient(srv.URL, zap.NewNop()).QuoteUnits(context.Background(), 0, "residential", "")
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "invalid_units", rejected.Code)
	assert.Equal(t, "units", rejected.Field)
}

func TestQuoteUnitsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewBillingClient(srv.URL, zap.NewNop()).QuoteUnits(context.Background(), 10, "residential", "")
	assert.ErrorIs(t, err, ErrUpstream)

	srv.Close()
	_, err = NewBillingClient(srv.URL, zap.NewNop()).QuoteUnits(context.Background(), 10, "residential", "")
	assert.ErrorIs(t, err, ErrUpstream)
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	libhttp "urjaportal/backend/libs/httpserver"
	"urjaportal/backend/services/billing-service/internal/http/handlers"
	"urjaportal/backend/services/billing-service/internal/models"
	"urjaportal/backend/services/billing-service/internal/repository"
	"urjaportal/backend/services/billing-service/internal/service"
)

type stubStore struct {
	mu    sync.Mutex
	bills []models.Bill
}

func (s *stubStore) Create(_ context.Context, b *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = int64(len(s.bills) + 1)
	s.bills = append(s.bills, *b)
	return nil
}

func (s *stubStore) ListByUser(_ context.Context, userID int64, _ int) ([]models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Bill{}
	for _, b := range s.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubStore) GetForUser(_ context.Context, userID, id int64) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bills {
		if b.ID == id && b.UserID == userID {
			return &b, nil
		}
	}
	return nil, repository.ErrBillNotFound
}

func (s *stubStore) Settle(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bills {
		if s.bills[i].ID == p.BillID && s.bills[i].UserID == p.UserID {
			if s.bills[i].Status == models.BillStatusPaid {
				return repository.ErrBillPaid
			}
			s.bills[i].Status = models.BillStatusPaid
			p.Amount = s.bills[i].TotalAmount
			return nil
		}
	}
	return repository.ErrBillNotFound
}

func newTestRouter() http.Handler {
	store := &stubStore{}
	logger := zap.NewNop()
	billing := service.NewBillingService(store, logger)
	bills := handlers.NewBillsHandlers(billing, service.NewPaymentService(store, logger), logger)
	return NewRouter(Routes{
		Tariffs:    handlers.NewTariffsHandler(billing),
		Calculate:  handlers.NewCalculateHandler(billing),
		BillsList:  bills.List,
		BillCreate: bills.Create,
		BillGet:    bills.Get,
		BillPay:    bills.Pay,
		Health:     libhttp.Health(0, nil),
	})
}

func send(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCalculateEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := send(router, http.MethodPost, "/billing/calculate", `{"method":"units","units":100,"category":"residential"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Category        string  `json:"category"`
		TotalUnits      float64 `json:"total_units"`
		EnergyCharges   float64 `json:"energy_charges"`
		ElectricityDuty float64 `json:"electricity_duty"`
		Taxes           float64 `json:"taxes"`
		TotalAmount     float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "residential", body.Category)
	assert.InDelta(t, 1000.0, body.EnergyCharges, 1e-9)
	assert.InDelta(t, 160.0, body.ElectricityDuty, 1e-9)
	assert.InDelta(t, 64.0, body.Taxes, 1e-9)
	assert.InDelta(t, 1344.0, body.TotalAmount, 1e-9)
}

func TestCalculateLocalizedValidation(t *testing.T) {
	router := newTestRouter()
	payload := `{"method":"readings","previous_reading":500,"current_reading":400}`

	rec := send(router, http.MethodPost, "/billing/calculate", payload, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Current reading must be greater than the previous reading.","code":"reading_order","field":"current_reading"}`, rec.Body.String())

	rec = send(router, http.MethodPost, "/billing/calculate", payload, map[string]string{"Accept-Language": "mr-IN,mr;q=0.9"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "चालू रीडिंग")

	rec = send(router, http.MethodPost, "/billing/calculate", "{", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTariffsEndpoint(t *testing.T) {
	rec := send(newTestRouter(), http.MethodGet, "/billing/tariffs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tariffs []struct {
			Category    string  `json:"category"`
			RatePerUnit float64 `json:"rate_per_unit"`
			FixedCharge float64 `json:"fixed_charge"`
		} `json:"tariffs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tariffs, 4)
	assert.Equal(t, "agricultural", body.Tariffs[3].Category)
	assert.Equal(t, 6.5, body.Tariffs[3].RatePerUnit)
}

func TestBillsAndPayment(t *testing.T) {
	router := newTestRouter()
	user := map[string]string{"X-User-ID": "7"}

	assert.Equal(t, http.StatusUnauthorized, send(router, http.MethodGet, "/billing/me/bills", "", nil).Code)

	rec := send(router, http.MethodPost, "/billing/me/bills", `{"method":"units","units":100}`, user)
	require.Equal(t, http.StatusCreated, rec.Code)
	var bill models.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bill))
	assert.Equal(t, models.BillStatusUnpaid, bill.Status)

	rec = send(router, http.MethodPost, "/billing/me/bills", `{"method":"units","units":-1}`, user)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = send(router, http.MethodGet, "/billing/me/bills", "", user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unpaid"`)

	rec = send(router, http.MethodPost, "/billing/me/bills/1/pay", `{"method":"bitcoin"}`, user)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(router, http.MethodPost, "/billing/me/bills/99/pay", `{"method":"upi"}`, user)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(router, http.MethodPost, "/billing/me/bills/1/pay", `{"method":"upi"}`, user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"receipt":"RCPT-`)

	rec = send(router, http.MethodPost, "/billing/me/bills/1/pay", `{"method":"upi"}`, user)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = send(router, http.MethodGet, "/billing/me/bills/1", "", user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"paid"`)

	rec = send(router, http.MethodGet, "/billing/me/bills/1", "", map[string]string{"X-User-ID": "8"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(router, http.MethodGet, "/billing/me/bills/abc", "", user)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(router, http.MethodGet, "/billing/me/bills/1/pay", "", user)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

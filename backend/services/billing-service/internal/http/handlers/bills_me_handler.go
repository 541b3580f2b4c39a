package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/billing-service/internal/service"
)

// BillsHandlers serve the caller's bill history and payments.
type BillsHandlers struct {
	bills    *service.BillingService
	payments *service.PaymentService
	logger   *zap.Logger
}

// NewBillsHandlers builds handlers.
func NewBillsHandlers(bills *service.BillingService, payments *service.PaymentService, logger *zap.Logger) *BillsHandlers {
	return &BillsHandlers{bills: bills, payments: payments, logger: logger}
}

// List handles GET /billing/me/bills.
func (h *BillsHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		writeLocalized(w, r, http.StatusUnauthorized, i18n.KeyUnauthorized)
		return
	}

	bills, err := h.bills.BillsForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load bills", zap.Int64("user_id", userID), zap.Error(err))
		writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bills": bills,
	})
}

// Create handles POST /billing/me/bills.
func (h *BillsHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		writeLocalized(w, r, http.StatusUnauthorized, i18n.KeyUnauthorized)
		return
	}

	var req service.CalculateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
		return
	}

	bill, err := h.bills.CreateBill(r.Context(), userID, req)
	if err != nil {
		if isValidation(err) {
			writeCalcError(w, r, err)
			return
		}
		h.logger.Error("failed to create bill", zap.Int64("user_id", userID), zap.Error(err))
		writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
		return
	}
	writeJSON(w, http.StatusCreated, bill)
}

// Get handles GET /billing/me/bills/{id}.
func (h *BillsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, billID, ok := h.billRef(w, r)
	if !ok {
		return
	}

	bill, err := h.bills.Bill(r.Context(), userID, billID)
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			writeLocalized(w, r, http.StatusNotFound, i18n.KeyBillNotFound)
			return
		}
		h.logger.Error("failed to load bill", zap.Int64("bill_id", billID), zap.Error(err))
		writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// Pay handles POST /billing/me/bills/{id}/pay.
func (h *BillsHandlers) Pay(w http.ResponseWriter, r *http.Request) {
	userID, billID, ok := h.billRef(w, r)
	if !ok {
		return
	}

	var req struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
		return
	}

	payment, err := h.payments.Pay(r.Context(), userID, billID, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPaymentMethod):
			writeLocalized(w, r, http.StatusBadRequest, i18n.KeyUnknownPayment)
		case errors.Is(err, service.ErrBillNotFound):
			writeLocalized(w, r, http.StatusNotFound, i18n.KeyBillNotFound)
		case errors.Is(err, service.ErrBillPaid):
			writeLocalized(w, r, http.StatusConflict, i18n.KeyBillAlreadyPaid)
		default:
			h.logger.Error("payment failed", zap.Int64("bill_id", billID), zap.Error(err))
			writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
		}
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

// billRef reads the caller id and the {id} path value; it answers 401 or 404 itself.
func (h *BillsHandlers) billRef(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		writeLocalized(w, r, http.StatusUnauthorized, i18n.KeyUnauthorized)
		return 0, 0, false
	}
	billID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || billID <= 0 {
		writeLocalized(w, r, http.StatusNotFound, i18n.KeyBillNotFound)
		return 0, 0, false
	}
	return userID, billID, true
}

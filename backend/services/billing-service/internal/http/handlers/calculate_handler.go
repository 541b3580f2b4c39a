package handlers

import (
	"encoding/json"
	"net/http"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/billing-service/internal/service"
)

type calculateResponse struct {
	Category calc.Category `json:"category"`
	calc.BillResult
}

// NewCalculateHandler handles POST /billing/calculate.
func NewCalculateHandler(svc *service.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.CalculateInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
			return
		}

		quote, err := svc.Calculate(req)
		if err != nil {
			writeCalcError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, calculateResponse{Category: quote.Category, BillResult: quote.Result})
	}
}

// NewTariffsHandler handles GET /billing/tariffs.
func NewTariffsHandler(svc *service.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"tariffs": svc.Tariffs(),
		})
	}
}

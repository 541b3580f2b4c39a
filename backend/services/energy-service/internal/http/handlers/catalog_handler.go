package handlers

import (
	"encoding/json"
	"net/http"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/energy-service/internal/service"
)

// NewCatalogHandler handles GET /energy/appliances/catalog.
func NewCatalogHandler(svc *service.ApplianceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"appliances": svc.Catalog(),
		})
	}
}

// NewAggregateHandler handles POST /energy/appliances/aggregate.
func NewAggregateHandler(svc *service.ApplianceService) http.HandlerFunc {
	type request struct {
		Appliances []calc.ApplianceSpec `json:"appliances"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
			return
		}

		summary, err := svc.Aggregate(req.Appliances)
		if err != nil {
			if !writeValidation(w, r, err) {
				writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
			}
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// NewSolarHandler handles POST /energy/solar/estimate.
func NewSolarHandler(svc *service.SolarService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in calc.SolarInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
			return
		}
		writeJSON(w, http.StatusOK, svc.Estimate(in))
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/energy-service/internal/clients"
	"urjaportal/backend/services/energy-service/internal/service"
)

// AppliancesHandlers serve the caller's saved appliance list.
type AppliancesHandlers struct {
	service *service.ApplianceService
	logger  *zap.Logger
}

// NewAppliancesHandlers builds handlers.
func NewAppliancesHandlers(svc *service.ApplianceService, logger *zap.Logger) *AppliancesHandlers {
	return &AppliancesHandlers{service: svc, logger: logger}
}

// List handles GET /energy/me/appliances.
func (h *AppliancesHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	summary, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Add handles POST /energy/me/appliances.
func (h *AppliancesHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	var spec calc.ApplianceSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
		return
	}

	appliance, err := h.service.Add(r.Context(), userID, spec)
	if err != nil {
		if writeValidation(w, r, err) {
			return
		}
		h.storeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, appliance)
}

// Remove handles DELETE /energy/me/appliances/{id}. Unknown ids still answer 204.
func (h *AppliancesHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	if err := h.service.Remove(r.Context(), userID, r.PathValue("id")); err != nil {
		h.storeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /energy/me/appliances.
func (h *AppliancesHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.storeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Bill handles POST /energy/me/appliances/bill.
func (h *AppliancesHandlers) Bill(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
		return
	}

	bill, err := h.service.Bill(r.Context(), userID, req.Category, r.Header.Get(i18n.HeaderAcceptLanguage))
	if err != nil {
		var rejected *clients.RejectedError
		switch {
		case errors.As(err, &rejected):
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: rejected.Message, Code: rejected.Code, Field: rejected.Field})
		case errors.Is(err, clients.ErrUpstream):
			writeLocalized(w, r, http.StatusBadGateway, i18n.KeyServiceUnavailable)
		default:
			h.storeFailure(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *AppliancesHandlers) user(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := userIDFromHeader(r)
	if err != nil {
		writeLocalized(w, r, http.StatusUnauthorized, i18n.KeyUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *AppliancesHandlers) storeFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("appliance store failure", zap.Error(err))
	writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

const userIDHeader = "X-User-ID"

var errMissingUser = errors.New("missing user id header")

type validationResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeLocalized answers with the catalog message for key in the caller's language.
func writeLocalized(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeError(w, status, i18n.Message(i18n.FromRequest(r), key))
}

// writeCalcError answers 422 for validation failures and 500 otherwise.
func writeCalcError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *calc.ValidationError
	if !errors.As(err, &ve) {
		writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
		Error: i18n.Message(i18n.FromRequest(r), ve.Code),
		Code:  ve.Code,
		Field: ve.Field,
	})
}

func userIDFromHeader(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, errMissingUser
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errMissingUser
	}
	return id, nil
}

func isValidation(err error) bool {
	return errors.Is(err, calc.ErrValidation)
}

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

func writeLocalized(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeError(w, status, i18n.Message(i18n.FromRequest(r), key))
}

// writeValidation answers 422 when err is a calc validation failure and
// reports whether it did.
func writeValidation(w http.ResponseWriter, r *http.Request, err error) bool {
	var ve *calc.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
		Error: i18n.Message(i18n.FromRequest(r), ve.Code),
		Code:  ve.Code,
		Field: ve.Field,
	})
	return true
}

func userIDFromHeader(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return 0, errMissingUser
	}
	return id, nil
}

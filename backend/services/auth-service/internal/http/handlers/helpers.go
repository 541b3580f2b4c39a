package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

const userIDHeader = "X-User-ID"

var errMissingUser = errors.New("missing user id header")

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

func userIDFromHeader(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, errMissingUser
	}
	return strconv.ParseInt(raw, 10, 64)
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/api-gateway/internal/clients"
	"urjaportal/backend/services/api-gateway/internal/http/middleware"
)

const (
	userIDHeader   = "X-User-ID"
	maxRequestSize = 1 << 20
)

type upstreamCall func(ctx context.Context, body []byte, headers http.Header) (*clients.Response, error)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// relayedHeaders are copied from upstream answers to the client.
var relayedHeaders = []string{"Content-Type", "Content-Language", "Allow", "Retry-After"}

func relay(w http.ResponseWriter, resp *clients.Response) {
	for _, name := range relayedHeaders {
		if v := resp.Header.Get(name); v != "" {
			w.Header().Set(name, v)
		}
	}
	if len(resp.Body) > 0 && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}

func writeLocalized(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeJSON(w, status, map[string]string{"error": i18n.Message(i18n.FromRequest(r), key)})
}

// forwardHeaders carries the negotiated language, the request id and,
// behind the auth middleware, the caller id.
func forwardHeaders(r *http.Request) http.Header {
	h := http.Header{}
	if lang := r.Header.Get(i18n.HeaderAcceptLanguage); lang != "" {
		h.Set(i18n.HeaderAcceptLanguage, lang)
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		h.Set(middleware.RequestIDHeader, id)
	}
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		h.Set(userIDHeader, strconv.FormatInt(userID, 10))
	}
	return h
}

// proxy relays r to an upstream call and copies its answer back. Transport
// failures become 502.
func proxy(w http.ResponseWriter, r *http.Request, logger *zap.Logger, upstream string, call upstreamCall) {
	var body []byte
	if r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodDelete {
		var err error
		body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestSize))
		if err != nil {
			writeLocalized(w, r, http.StatusBadRequest, i18n.KeyInvalidJSON)
			return
		}
	}

	resp, err := call(r.Context(), body, forwardHeaders(r))
	if err != nil {
		logger.Error("upstream request failed",
			zap.String("upstream", upstream),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		writeLocalized(w, r, http.StatusBadGateway, i18n.KeyServiceUnavailable)
		return
	}
	relay(w, resp)
}

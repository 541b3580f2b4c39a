package httpserver

import (
	"net/http"
	"sort"
	"strings"
)

// Methods dispatches on the request method and answers 405 with an Allow
// header for anything else. Nil handlers are skipped.
func Methods(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	table := make(map[string]http.HandlerFunc, len(handlers))
	names := make([]string, 0, len(handlers))
	for m, h := range handlers {
		if h == nil {
			continue
		}
		table[m] = h
		names = append(names, m)
	}
	sort.Strings(names)
	allowed := strings.Join(names, ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		handler, ok := table[r.Method]
		if !ok {
			w.Header().Set("Allow", allowed)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

// Method is Methods for a single verb.
func Method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return Methods(map[string]http.HandlerFunc{expected: handler})
}

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

const defaultCheckTimeout = 2 * time.Second

// Check probes one backing dependency.
type Check func(ctx context.Context) error

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health returns a GET /health handler that runs checks in name order within
// timeout. Any failing check answers 503 with status "degraded".
func Health(timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	names := make([]string, 0, len(checks))
	for name, check := range checks {
		if check != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		report := healthReport{Status: "ok"}
		status := http.StatusOK
		for _, name := range names {
			if report.Checks == nil {
				report.Checks = make(map[string]string, len(names))
			}
			if err := checks[name](ctx); err != nil {
				report.Checks[name] = "down"
				report.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			report.Checks[name] = "up"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}

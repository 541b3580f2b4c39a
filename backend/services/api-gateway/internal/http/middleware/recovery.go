package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"urjaportal/backend/libs/i18n"
)

// RecoveryMiddleware turns handler panics into 500 responses.
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					writeLocalized(w, r, http.StatusInternalServerError, i18n.KeyInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

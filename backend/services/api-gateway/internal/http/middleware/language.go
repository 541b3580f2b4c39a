package middleware

import (
	"net/http"

	"urjaportal/backend/libs/i18n"
)

// LanguageMiddleware replaces Accept-Language with the negotiated portal
// language code so upstream services see either "en" or "mr".
func LanguageMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := i18n.Code(i18n.FromRequest(r))
			r = r.Clone(r.Context())
			r.Header.Set(i18n.HeaderAcceptLanguage, code)
			w.Header().Set("Content-Language", code)
			w.Header().Add("Vary", i18n.HeaderAcceptLanguage)
			next.ServeHTTP(w, r)
		})
	}
}

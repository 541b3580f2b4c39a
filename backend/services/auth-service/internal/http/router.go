package httpserver

import (
	"net/http"

	libhttp "urjaportal/backend/libs/httpserver"
)

// Routes aggregates handlers for HTTP server.
type Routes struct {
	Signup        http.HandlerFunc
	Login         http.HandlerFunc
	ProfileGet    http.HandlerFunc
	ProfileUpdate http.HandlerFunc
	Health        http.HandlerFunc
}

// NewRouter wires all HTTP routes.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Signup != nil {
		mux.Handle("/auth/signup", libhttp.Method(http.MethodPost, routes.Signup))
	}
	if routes.Login != nil {
		mux.Handle("/auth/login", libhttp.Method(http.MethodPost, routes.Login))
	}
	if routes.ProfileGet != nil || routes.ProfileUpdate != nil {
		mux.Handle("/auth/me", libhttp.Methods(map[string]http.HandlerFunc{
			http.MethodGet: routes.ProfileGet,
			http.MethodPut: routes.ProfileUpdate,
		}))
	}
	if routes.Health != nil {
		mux.Handle("/health", libhttp.Method(http.MethodGet, routes.Health))
	}
	return mux
}

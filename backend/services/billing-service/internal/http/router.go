package httpserver

import (
	"net/http"

	libhttp "urjaportal/backend/libs/httpserver"
)

// Routes groups HTTP handlers.
type Routes struct {
	Tariffs    http.HandlerFunc
	Calculate  http.HandlerFunc
	BillsList  http.HandlerFunc
	BillCreate http.HandlerFunc
	BillGet    http.HandlerFunc
	BillPay    http.HandlerFunc
	Health     http.HandlerFunc
}

// NewRouter registers service endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Tariffs != nil {
		mux.Handle("/billing/tariffs", libhttp.Method(http.MethodGet, routes.Tariffs))
	}
	if routes.Calculate != nil {
		mux.Handle("/billing/calculate", libhttp.Method(http.MethodPost, routes.Calculate))
	}
	if routes.BillsList != nil || routes.BillCreate != nil {
		mux.Handle("/billing/me/bills", libhttp.Methods(map[string]http.HandlerFunc{
			http.MethodGet:  routes.BillsList,
			http.MethodPost: routes.BillCreate,
		}))
	}
	if routes.BillGet != nil {
		mux.Handle("/billing/me/bills/{id}", libhttp.Method(http.MethodGet, routes.BillGet))
	}
	if routes.BillPay != nil {
		mux.Handle("/billing/me/bills/{id}/pay", libhttp.Method(http.MethodPost, routes.BillPay))
	}
	if routes.Health != nil {
		mux.Handle("/health", libhttp.Method(http.MethodGet, routes.Health))
	}
	return mux
}

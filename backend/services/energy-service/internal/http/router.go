package httpserver

import (
	"net/http"

	libhttp "urjaportal/backend/libs/httpserver"
)

// Routes defines HTTP endpoints.
type Routes struct {
	Catalog         http.HandlerFunc
	Aggregate       http.HandlerFunc
	Solar           http.HandlerFunc
	AppliancesList  http.HandlerFunc
	ApplianceAdd    http.HandlerFunc
	AppliancesClear http.HandlerFunc
	ApplianceRemove http.HandlerFunc
	AppliancesBill  http.HandlerFunc
	Calculator      http.HandlerFunc
	Health          http.HandlerFunc
}

// NewRouter sets up HTTP routing.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Catalog != nil {
		mux.Handle("/energy/appliances/catalog", libhttp.Method(http.MethodGet, routes.Catalog))
	}
	if routes.Aggregate != nil {
		mux.Handle("/energy/appliances/aggregate", libhttp.Method(http.MethodPost, routes.Aggregate))
	}
	if routes.Solar != nil {
		mux.Handle("/energy/solar/estimate", libhttp.Method(http.MethodPost, routes.Solar))
	}
	if routes.AppliancesList != nil || routes.ApplianceAdd != nil || routes.AppliancesClear != nil {
		mux.Handle("/energy/me/appliances", libhttp.Methods(map[string]http.HandlerFunc{
			http.MethodGet:    routes.AppliancesList,
			http.MethodPost:   routes.ApplianceAdd,
			http.MethodDelete: routes.AppliancesClear,
		}))
	}
	if routes.AppliancesBill != nil {
		mux.Handle("/energy/me/appliances/bill", libhttp.Method(http.MethodPost, routes.AppliancesBill))
	}
	if routes.ApplianceRemove != nil {
		mux.Handle("/energy/me/appliances/{id}", libhttp.Method(http.MethodDelete, routes.ApplianceRemove))
	}
	if routes.Calculator != nil {
		mux.Handle("/energy/ws/calculator", libhttp.Method(http.MethodGet, routes.Calculator))
	}
	if routes.Health != nil {
		mux.Handle("/health", libhttp.Method(http.MethodGet, routes.Health))
	}
	return mux
}

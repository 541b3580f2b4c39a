package httpserver

import (
	"net/http"

	libhttp "urjaportal/backend/libs/httpserver"
	"urjaportal/backend/services/api-gateway/internal/http/handlers"
	"urjaportal/backend/services/api-gateway/internal/http/middleware"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	AuthHandlers    *handlers.AuthHandlers
	BillingHandlers *handlers.BillingHandlers
	EnergyHandlers  *handlers.EnergyHandlers
	HealthHandler   http.HandlerFunc
	Metrics         *middleware.Metrics
}

// NewRouter wires public and authenticated routes. Every route is
// instrumented when deps.Metrics is set.
func NewRouter(deps RouterDeps, authMiddleware libhttp.Middleware) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.Handler) {
		if deps.Metrics != nil {
			h = deps.Metrics.Instrument(pattern, h)
		}
		mux.Handle(pattern, h)
	}
	authenticated := func(h http.Handler) http.Handler {
		return libhttp.Chain(h, authMiddleware)
	}

	handle("/health", libhttp.Method(http.MethodGet, deps.HealthHandler))
	if deps.Metrics != nil {
		mux.Handle("/metrics", libhttp.Method(http.MethodGet, deps.Metrics.Handler().ServeHTTP))
	}

	a, b, e := deps.AuthHandlers, deps.BillingHandlers, deps.EnergyHandlers

	handle("/api/auth/signup", libhttp.Method(http.MethodPost, a.Signup))
	handle("/api/auth/login", libhttp.Method(http.MethodPost, a.Login))
	handle("/api/auth/me", authenticated(libhttp.Methods(map[string]http.HandlerFunc{
		http.MethodGet: a.Profile,
		http.MethodPut: a.UpdateProfile,
	})))

	handle("/api/billing/tariffs", libhttp.Method(http.MethodGet, b.Tariffs))
	handle("/api/billing/calculate", libhttp.Method(http.MethodPost, b.Calculate))
	handle("/api/billing/me/bills", authenticated(libhttp.Methods(map[string]http.HandlerFunc{
		http.MethodGet:  b.ListBills,
		http.MethodPost: b.CreateBill,
	})))
	handle("/api/billing/me/bills/{id}", authenticated(libhttp.Method(http.MethodGet, b.GetBill)))
	handle("/api/billing/me/bills/{id}/pay", authenticated(libhttp.Method(http.MethodPost, b.PayBill)))

	handle("/api/energy/appliances/catalog", libhttp.Method(http.MethodGet, e.Catalog))
	handle("/api/energy/appliances/aggregate", libhttp.Method(http.MethodPost, e.Aggregate))
	handle("/api/energy/solar/estimate", libhttp.Method(http.MethodPost, e.Solar))
	handle("/api/energy/me/appliances", authenticated(libhttp.Methods(map[string]http.HandlerFunc{
		http.MethodGet:    e.ListAppliances,
		http.MethodPost:   e.AddAppliance,
		http.MethodDelete: e.ClearAppliances,
	})))
	handle("/api/energy/me/appliances/bill", authenticated(libhttp.Method(http.MethodPost, e.ApplianceBill)))
	handle("/api/energy/me/appliances/{id}", authenticated(libhttp.Method(http.MethodDelete, e.RemoveAppliance)))

	return mux
}

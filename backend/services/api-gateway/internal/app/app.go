package app

import (
	"context"

	"go.uber.org/zap"

	libhttp "urjaportal/backend/libs/httpserver"
	"urjaportal/backend/services/api-gateway/internal/clients"
	"urjaportal/backend/services/api-gateway/internal/config"
	httpserver "urjaportal/backend/services/api-gateway/internal/http"
	"urjaportal/backend/services/api-gateway/internal/http/handlers"
	"urjaportal/backend/services/api-gateway/internal/http/middleware"
)

// App wires API gateway dependencies.
type App struct {
	server *libhttp.Server
	logger *zap.Logger
}

// New constructs application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	httpClient := clients.NewDefaultHTTPClient(cfg.HTTPTimeout())

	authClient := clients.NewAuthClient(cfg.Services.AuthURL, httpClient)
	billingClient := clients.NewBillingClient(cfg.Services.BillingURL, httpClient)
	energyClient := clients.NewEnergyClient(cfg.Services.EnergyURL, httpClient)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		AuthHandlers:    handlers.NewAuthHandlers(authClient, logger),
		BillingHandlers: handlers.NewBillingHandlers(billingClient, logger),
		EnergyHandlers:  handlers.NewEnergyHandlers(energyClient, logger),
		HealthHandler:   libhttp.Health(0, nil),
		Metrics:         middleware.NewMetrics(),
	}, middleware.AuthMiddleware(cfg.JWT.Secret, cfg.JWT.Issuer))

	server := libhttp.NewServer(
		cfg.HTTPAddress(),
		router,
		logger,
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.LanguageMiddleware(),
		middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources (none yet).
func (a *App) Close() {}

package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	libhttp "urjaportal/backend/libs/httpserver"
	"urjaportal/backend/services/billing-service/internal/config"
	"urjaportal/backend/services/billing-service/internal/db"
	httpserver "urjaportal/backend/services/billing-service/internal/http"
	"urjaportal/backend/services/billing-service/internal/http/handlers"
	"urjaportal/backend/services/billing-service/internal/repository"
	"urjaportal/backend/services/billing-service/internal/service"
)

// App wires billing service dependencies.
type App struct {
	server *libhttp.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(ctx, cfg.Database.DSN, cfg.Pool(), cfg.Database.AutoMigrate)
	if err != nil {
		return nil, err
	}

	billingService := service.NewBillingService(repository.NewBillRepository(sqlDB), logger)
	paymentService := service.NewPaymentService(repository.NewPaymentRepository(sqlDB), logger)
	bills := handlers.NewBillsHandlers(billingService, paymentService, logger)

	routes := httpserver.Routes{
		Tariffs:    handlers.NewTariffsHandler(billingService),
		Calculate:  handlers.NewCalculateHandler(billingService),
		BillsList:  bills.List,
		BillCreate: bills.Create,
		BillGet:    bills.Get,
		BillPay:    bills.Pay,
		Health:     libhttp.Health(0, map[string]libhttp.Check{"postgres": sqlDB.PingContext}),
	}

	router := httpserver.NewRouter(routes)
	server := libhttp.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}

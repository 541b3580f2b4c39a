package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	libhttp "urjaportal/backend/libs/httpserver"
	appconfig "urjaportal/backend/services/auth-service/internal/config"
	"urjaportal/backend/services/auth-service/internal/db"
	httpserver "urjaportal/backend/services/auth-service/internal/http"
	"urjaportal/backend/services/auth-service/internal/http/handlers"
	"urjaportal/backend/services/auth-service/internal/password"
	"urjaportal/backend/services/auth-service/internal/repository"
	"urjaportal/backend/services/auth-service/internal/service"
)

// App wires dependencies for the auth service.
type App struct {
	server *libhttp.Server
	db     *sql.DB
	logger *zap.Logger
}

// New builds application graph.
func New(ctx context.Context, cfg *appconfig.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(ctx, cfg.Database.DSN, cfg.Pool(), cfg.Database.AutoMigrate)
	if err != nil {
		return nil, err
	}

	consumers := repository.NewConsumerRepository(sqlDB)
	hasher := password.NewBcryptHasher(cfg.Password.BcryptCost)
	tokenSvc := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWTExpiration())
	authSvc := service.NewAuthService(consumers, hasher, tokenSvc, logger)
	profile := handlers.NewProfileHandlers(authSvc)

	routes := httpserver.Routes{
		Signup:        handlers.NewSignupHandler(authSvc),
		Login:         handlers.NewLoginHandler(authSvc),
		ProfileGet:    profile.Get,
		ProfileUpdate: profile.Update,
		Health:        libhttp.Health(0, map[string]libhttp.Check{"postgres": sqlDB.PingContext}),
	}

	router := httpserver.NewRouter(routes)
	server := libhttp.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases acquired resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}

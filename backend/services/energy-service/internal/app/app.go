package app

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	libhttp "urjaportal/backend/libs/httpserver"
	libredis "urjaportal/backend/libs/redis"
	"urjaportal/backend/services/energy-service/internal/clients"
	"urjaportal/backend/services/energy-service/internal/config"
	httpserver "urjaportal/backend/services/energy-service/internal/http"
	"urjaportal/backend/services/energy-service/internal/http/handlers"
	redisstore "urjaportal/backend/services/energy-service/internal/redis"
	"urjaportal/backend/services/energy-service/internal/service"
	"urjaportal/backend/services/energy-service/internal/ws"
)

// App wires energy service dependencies.
type App struct {
	server *libhttp.Server
	redis  *goredis.Client
	logger *zap.Logger
}

// New constructs application components. ctx bounds the lifetime of
// calculator WebSocket connections.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	redisClient, err := libredis.NewRedisClient(ctx, libredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}

	store := redisstore.NewStore(redisClient, cfg.Redis.TTL)
	billingClient := clients.NewBillingClient(cfg.Services.BillingURL, logger)
	applianceService := service.NewApplianceService(store, billingClient, logger)
	solarService := service.NewSolarService(logger)

	processor := ws.NewProcessor(logger)
	ws.RegisterCalculators(processor, applianceService, solarService)
	wsServer := ws.NewServer(ctx, ws.NewManager(), processor, ws.Timeouts{
		Ping:  cfg.PingInterval(),
		Read:  cfg.ReadTimeout(),
		Write: cfg.WriteTimeout(),
	}, logger)

	appliances := handlers.NewAppliancesHandlers(applianceService, logger)
	routes := httpserver.Routes{
		Catalog:         handlers.NewCatalogHandler(applianceService),
		Aggregate:       handlers.NewAggregateHandler(applianceService),
		Solar:           handlers.NewSolarHandler(solarService),
		AppliancesList:  appliances.List,
		ApplianceAdd:    appliances.Add,
		AppliancesClear: appliances.Clear,
		ApplianceRemove: appliances.Remove,
		AppliancesBill:  appliances.Bill,
		Calculator:      wsServer.HandleWS,
		Health: libhttp.Health(0, map[string]libhttp.Check{
			"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		}),
	}

	router := httpserver.NewRouter(routes)
	server := libhttp.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		redis:  redisClient,
		logger: logger,
	}, nil
}

// Run starts serving HTTP requests.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}

package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"vibrovolt/internal/auth"
	"vibrovolt/internal/booking"
	"vibrovolt/internal/charging"
	"vibrovolt/internal/config"
	"vibrovolt/internal/emergency"
	httpserver "vibrovolt/internal/http"
	"vibrovolt/internal/http/handlers"
	"vibrovolt/internal/http/middleware"
	"vibrovolt/internal/metrics"
	"vibrovolt/internal/stations"
	"vibrovolt/internal/wallet"
	"vibrovolt/internal/ws"
	libdb "vibrovolt/libs/db"
	libredis "vibrovolt/libs/redis"
)

// App wires API service dependencies.
type App struct {
	server *httpserver.Server
	logger *zap.Logger
	close  []func()
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	metrics.Init()

	app := &App{logger: logger}

	var stationRepo stations.Repository = stations.NewMemoryRepository()
	if dsn := strings.TrimSpace(cfg.Postgres.DSN); dsn != "" {
		pool, err := libdb.NewPostgresDB(dsn)
		if err != nil {
			return nil, err
		}
		app.close = append(app.close, func() { pool.Close() })
		stationRepo = stations.NewPostgresRepository(pool)
		logger.Info("station repository: postgres")
	} else {
		logger.Info("station repository: in-memory seed")
	}

	var sessionStore charging.SessionStore = charging.NewMemoryStore()
	statusService := stations.NewStatusService(nil, logger)
	if addr := strings.TrimSpace(cfg.Redis.Addr); addr != "" {
		client, err := libredis.NewRedisClient(addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		app.close = append(app.close, func() { client.Close() })
		sessionStore = charging.NewRedisStore(client, cfg.SessionTTL())
		statusService = stations.NewStatusService(client, logger)
		logger.Info("session store: redis", zap.String("addr", addr))
	}

	tokenService := auth.NewTokenService(cfg.JWT.Secret, cfg.JWTExpiry())
	authService, err := auth.NewService(auth.NewBcryptHasher(0), tokenService, logger)
	if err != nil {
		return nil, err
	}

	stationService := stations.NewService(stationRepo, logger)
	ledger := wallet.NewLedger(logger)
	walletService := wallet.NewService(ledger, wallet.NewMockGateway(), logger)
	bookingService := booking.NewService(logger)
	chargingService := charging.NewService(sessionStore, logger)
	emergencyService := emergency.NewService(logger)
	telemetryWS := ws.NewTelemetryServer(chargingService, cfg.StreamInterval(), logger)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		AuthHandlers:      handlers.NewAuthHandlers(authService, logger),
		StationsHandlers:  handlers.NewStationsHandlers(stationService, statusService, logger),
		WalletHandlers:    handlers.NewWalletHandlers(walletService, logger),
		BookingHandlers:   handlers.NewBookingHandlers(bookingService, logger),
		ChargingHandlers:  handlers.NewChargingHandlers(chargingService, logger),
		EmergencyHandlers: handlers.NewEmergencyHandlers(emergencyService, logger),
		TelemetryWS:       telemetryWS.HandleWS,
		HealthHandler:     handlers.NewHealthHandler(),
	}, middleware.AuthMiddleware(tokenService))

	app.server = httpserver.NewServer(
		cfg.HTTPAddress(),
		router,
		logger,
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	)

	return app, nil
}

// Run starts serving HTTP traffic.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	for _, fn := range a.close {
		fn()
	}
}

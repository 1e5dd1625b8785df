package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/campusbid/campusbid/internal/pkg/config"
	"github.com/campusbid/campusbid/internal/pkg/database"
	"github.com/campusbid/campusbid/internal/pkg/health"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/middleware"
	natspkg "github.com/campusbid/campusbid/internal/pkg/nats"
	nrpkg "github.com/campusbid/campusbid/internal/pkg/newrelic"
	"github.com/campusbid/campusbid/internal/pkg/server"
	"github.com/campusbid/campusbid/services/escrow/gateway"
	"github.com/campusbid/campusbid/services/escrow/handler"
	httpHandler "github.com/campusbid/campusbid/services/escrow/handler/http"
	natsHandlerPkg "github.com/campusbid/campusbid/services/escrow/handler/nats"
	"github.com/campusbid/campusbid/services/escrow/repository"
	"github.com/campusbid/campusbid/services/escrow/usecase"
)

func main() {
	appName := "escrow-service"
	configs := config.InitConfig("config/escrow.env")

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	escrowRepo := repository.NewEscrowRepo(configs, postgresClient.GetDB(), redisClient)
	confirmationRepo := repository.NewConfirmationRepo(configs, postgresClient.GetDB())
	disputeRepo := repository.NewDisputeRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	escrowGW := gateway.NewEscrowGW(natsClient, configs)

	// Initialize usecases
	escrowUC, err := usecase.NewEscrowUC(escrowRepo, escrowGW, configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize escrow usecase", zap.Error(err))
	}
	confirmationUC := usecase.NewConfirmationUC(confirmationRepo, escrowRepo, escrowGW, configs)
	disputeUC := usecase.NewDisputeUC(disputeRepo, escrowRepo, escrowGW, configs)

	// Handlers for HTTP and NATS
	escrowHandler := httpHandler.NewEscrowHandler(escrowUC)
	confirmationHandler := httpHandler.NewConfirmationHandler(confirmationUC)
	disputeHandler := httpHandler.NewDisputeHandler(disputeUC)
	natsHandler := natsHandlerPkg.NewNatsHandler(escrowUC, natsClient)

	// Initialize handlers
	h := handler.NewHandler(escrowHandler, confirmationHandler, disputeHandler, natsHandler, redisClient, configs)

	// Subscribe to transaction events
	if err := h.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Start the auto-release sweeper
	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	defer cancelSweeper()
	sweeper := usecase.NewSweeper(escrowUC, 5*time.Minute)
	go sweeper.Start(sweeperCtx)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints with dependency probes
	healthService := health.NewHealthService(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

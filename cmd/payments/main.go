package main

import (
	"log"
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
	"github.com/campusbid/campusbid/services/payments/gateway"
	"github.com/campusbid/campusbid/services/payments/handler"
	httpHandler "github.com/campusbid/campusbid/services/payments/handler/http"
	"github.com/campusbid/campusbid/services/payments/repository"
	"github.com/campusbid/campusbid/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configs := config.InitConfig("config/payments.env")

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

	// Initialize repository
	transactionRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(natsClient, configs, zapLogger)

	// Initialize usecase
	transactionUC := usecase.NewTransactionUC(transactionRepo, paymentGW, configs)

	// Handlers for HTTP
	transactionHandler := httpHandler.NewTransactionHandler(transactionUC)
	webhookHandler := httpHandler.NewWebhookHandler(transactionUC)

	// Initialize handlers
	h := handler.NewHandler(transactionHandler, webhookHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

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

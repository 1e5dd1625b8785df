package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/database"
	"github.com/campusbid/campusbid/internal/pkg/middleware"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers for the payments service
type Handler struct {
	transactionHandler *http.TransactionHandler
	webhookHandler     *http.WebhookHandler
	redisClient        *database.RedisClient
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	transactionHandler *http.TransactionHandler,
	webhookHandler *http.WebhookHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		webhookHandler:     webhookHandler,
		redisClient:        redisClient,
		cfg:                cfg,
	}
}

// RegisterRoutes registers all payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Provider callbacks authenticate with a shared API key, not user JWTs
	webhookGroup := e.Group("/webhooks",
		middleware.ValidateAPIKey("payments-service"),
		middleware.IPRateLimiter(120, time.Minute, h.redisClient.GetClient()),
	)
	webhookGroup.POST("/payments", h.webhookHandler.HandleCallback)

	// User-facing routes require JWT authentication
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	txnGroup := protected.Group("/transactions")
	txnGroup.POST("", h.transactionHandler.CreateTransaction)
	txnGroup.GET("", h.transactionHandler.ListTransactions)
	txnGroup.GET("/:id", h.transactionHandler.GetTransaction)
	txnGroup.POST("/:id/pay", h.transactionHandler.InitiatePayment)
	txnGroup.POST("/:id/cancel", h.transactionHandler.CancelTransaction)
}

package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/database"
	"github.com/campusbid/campusbid/internal/pkg/middleware"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/services/escrow/handler/http"
	"github.com/campusbid/campusbid/services/escrow/handler/nats"
)

// Handler coordinates the HTTP and NATS handlers for the escrow service
type Handler struct {
	escrowHandler       *http.EscrowHandler
	confirmationHandler *http.ConfirmationHandler
	disputeHandler      *http.DisputeHandler
	natsHandler         *nats.NatsHandler
	redisClient         *database.RedisClient
	cfg                 *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	escrowHandler *http.EscrowHandler,
	confirmationHandler *http.ConfirmationHandler,
	disputeHandler *http.DisputeHandler,
	natsHandler *nats.NatsHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		escrowHandler:       escrowHandler,
		confirmationHandler: confirmationHandler,
		disputeHandler:      disputeHandler,
		natsHandler:         natsHandler,
		redisClient:         redisClient,
		cfg:                 cfg,
	}
}

// RegisterRoutes registers all escrow routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// The payout collaborator authenticates with a shared API key
	internalGroup := e.Group("/internal", middleware.ValidateAPIKey("payout-service"))
	internalGroup.GET("/withdrawals/eligibility/:sellerID", h.escrowHandler.CheckWithdrawal)

	// User-facing routes require JWT authentication
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Code checks are rate limited per user on top of the lockout counter
	verifyLimiter := middleware.UserRateLimiter(30, time.Minute, h.redisClient.GetClient())

	escrowGroup := protected.Group("/escrows")
	escrowGroup.GET("/:id", h.escrowHandler.GetEscrow)
	escrowGroup.GET("/auction/:auctionID", h.escrowHandler.GetEscrowByAuction)
	escrowGroup.GET("/:id/code", h.escrowHandler.GetBuyerCode)
	escrowGroup.POST("/:id/verify-delivery", h.escrowHandler.VerifyDelivery, verifyLimiter)
	escrowGroup.POST("/:id/release", h.escrowHandler.ReleaseEscrow)
	escrowGroup.POST("/:id/refund", h.escrowHandler.RefundEscrow)

	confirmationGroup := protected.Group("/confirmations")
	confirmationGroup.POST("", h.confirmationHandler.GenerateCode)
	confirmationGroup.POST("/verify", h.confirmationHandler.VerifyCode, verifyLimiter)

	disputeGroup := protected.Group("/disputes")
	disputeGroup.POST("", h.disputeHandler.OpenDispute)
	disputeGroup.GET("/:id", h.disputeHandler.GetDispute)
	disputeGroup.POST("/:id/evidence", h.disputeHandler.AddEvidence)
	disputeGroup.POST("/:id/review", h.disputeHandler.StartReview)
	disputeGroup.POST("/:id/resolve", h.disputeHandler.ResolveDispute)
}

// InitConsumers subscribes the NATS consumers for the escrow service
func (h *Handler) InitConsumers() error {
	return h.natsHandler.InitConsumers()
}

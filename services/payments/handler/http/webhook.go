package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
	"github.com/campusbid/campusbid/services/payments"
)

// WebhookHandler handles payment provider callbacks
type WebhookHandler struct {
	transactionUC payments.TransactionUC
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(transactionUC payments.TransactionUC) *WebhookHandler {
	return &WebhookHandler{
		transactionUC: transactionUC,
	}
}

// HandleCallback processes a provider payment callback. Delivery is
// at-least-once: processing errors are logged but always acknowledged with
// 200, so a callback that can never succeed does not turn into a provider
// retry storm. Only a malformed payload is rejected.
func (h *WebhookHandler) HandleCallback(c echo.Context) error {
	var callback models.PaymentCallback
	if err := c.Bind(&callback); err != nil {
		logger.Warn("Malformed payment callback payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid callback payload")
	}

	if err := h.transactionUC.ProcessCallback(c.Request().Context(), &callback); err != nil {
		logger.Error("Failed to process payment callback",
			logger.String("transaction_id", callback.TransactionID),
			logger.String("provider_ref", callback.ProviderRef),
			logger.ErrorField(err),
		)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Callback received", nil)
}

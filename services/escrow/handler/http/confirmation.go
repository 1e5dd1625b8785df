package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
	"github.com/campusbid/campusbid/services/escrow"
)

// ConfirmationHandler handles HTTP requests for confirmation codes
type ConfirmationHandler struct {
	confirmationUC escrow.ConfirmationUC
}

// NewConfirmationHandler creates a new confirmation handler
func NewConfirmationHandler(confirmationUC escrow.ConfirmationUC) *ConfirmationHandler {
	return &ConfirmationHandler{
		confirmationUC: confirmationUC,
	}
}

// GenerateCode issues a fresh confirmation code to the buyer. The plaintext
// is returned exactly once in the response body.
func (h *ConfirmationHandler) GenerateCode(c echo.Context) error {
	var req models.GenerateConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TransactionID == "" {
		return utils.BadRequestResponse(c, "A transaction id is required")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	req.BuyerID = callerID

	conf, code, err := h.confirmationUC.GenerateCode(c.Request().Context(), &req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Confirmation code generated", map[string]interface{}{
		"confirmation": conf,
		"code":         code,
	})
}

// VerifyCode checks the code presented by the seller against the active
// confirmation for the transaction
func (h *ConfirmationHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TransactionID == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "A transaction id and code are required")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	req.CallerID = callerID

	if err := h.confirmationUC.VerifyCode(c.Request().Context(), &req); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Code verified", nil)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/middleware"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
	"github.com/campusbid/campusbid/services/escrow"
)

// EscrowHandler handles HTTP requests for escrow operations
type EscrowHandler struct {
	escrowUC escrow.EscrowUC
}

// NewEscrowHandler creates a new escrow handler
func NewEscrowHandler(escrowUC escrow.EscrowUC) *EscrowHandler {
	return &EscrowHandler{
		escrowUC: escrowUC,
	}
}

// GetEscrow handles escrow retrieval requests
func (h *EscrowHandler) GetEscrow(c echo.Context) error {
	escrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid escrow id")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	esc, err := h.escrowUC.GetEscrow(c.Request().Context(), escrowID, callerID)
	if err != nil {
		return utils.FromError(c, err)
	}

	middleware.SetEscrowID(c, esc.ID.String())
	return utils.SuccessResponse(c, http.StatusOK, "Escrow retrieved", esc)
}

// GetEscrowByAuction handles escrow lookup by auction
func (h *EscrowHandler) GetEscrowByAuction(c echo.Context) error {
	auctionID, err := uuid.Parse(c.Param("auctionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid auction id")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	esc, err := h.escrowUC.GetEscrowByAuction(c.Request().Context(), auctionID, callerID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Escrow retrieved", esc)
}

// GetBuyerCode returns the delivery code to the buyer. The code itself is
// only ever placed in the response body, never in logs.
func (h *EscrowHandler) GetBuyerCode(c echo.Context) error {
	escrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid escrow id")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	code, err := h.escrowUC.GetBuyerCode(c.Request().Context(), escrowID, callerID)
	if err != nil {
		logger.Warn("Delivery code retrieval refused",
			logger.String("escrow_id", escrowID.String()),
			logger.ErrorField(err),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery code retrieved", map[string]string{
		"code": code,
	})
}

// VerifyDelivery checks the delivery code presented by the seller
func (h *EscrowHandler) VerifyDelivery(c echo.Context) error {
	escrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid escrow id")
	}

	var req models.VerifyDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "A delivery code is required")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.escrowUC.VerifyDelivery(c.Request().Context(), escrowID, callerID, req.Code); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery confirmed", nil)
}

// ReleaseEscrow pays the escrow out to the seller
func (h *EscrowHandler) ReleaseEscrow(c echo.Context) error {
	escrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid escrow id")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.escrowUC.ReleaseEscrow(c.Request().Context(), escrowID, callerID); err != nil {
		logger.Error("Escrow release failed",
			logger.String("escrow_id", escrowID.String()),
			logger.ErrorField(err),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Escrow released", nil)
}

// RefundEscrow refunds a held escrow to the buyer. Staff only.
func (h *EscrowHandler) RefundEscrow(c echo.Context) error {
	escrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid escrow id")
	}

	var req models.RefundRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Reason == "" {
		return utils.BadRequestResponse(c, "A refund reason is required")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	if role, _ := c.Get("user_role").(string); role != "admin" {
		return utils.ForbiddenResponse(c, "Staff access required")
	}

	if err := h.escrowUC.RefundEscrow(c.Request().Context(), escrowID, callerID.String(), &req); err != nil {
		logger.Error("Escrow refund failed",
			logger.String("escrow_id", escrowID.String()),
			logger.ErrorField(err),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Escrow refunded", nil)
}

// CheckWithdrawal answers the payout collaborator's eligibility query
func (h *EscrowHandler) CheckWithdrawal(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sellerID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid seller id")
	}

	check, err := h.escrowUC.CheckWithdrawalEligibility(c.Request().Context(), sellerID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Eligibility checked", check)
}

// callerID extracts the authenticated user id set by the JWT middleware
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.Unauthorized("MISSING_IDENTITY", "missing user identity")
	}
	return id, nil
}

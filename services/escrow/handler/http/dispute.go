package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
	"github.com/campusbid/campusbid/services/escrow"
)

// DisputeHandler handles HTTP requests for the dispute workflow
type DisputeHandler struct {
	disputeUC escrow.DisputeUC
}

// NewDisputeHandler creates a new dispute handler
func NewDisputeHandler(disputeUC escrow.DisputeUC) *DisputeHandler {
	return &DisputeHandler{
		disputeUC: disputeUC,
	}
}

// OpenDispute freezes an escrow pending staff review
func (h *DisputeHandler) OpenDispute(c echo.Context) error {
	var req models.OpenDisputeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	req.BuyerID = callerID

	dispute, err := h.disputeUC.OpenDispute(c.Request().Context(), &req)
	if err != nil {
		return utils.FromError(c, err)
	}

	logger.Info("Dispute opened",
		logger.String("dispute_id", dispute.ID.String()),
		logger.String("escrow_id", dispute.EscrowID.String()),
	)
	return utils.SuccessResponse(c, http.StatusCreated, "Dispute opened", dispute)
}

// GetDispute handles dispute retrieval requests
func (h *DisputeHandler) GetDispute(c echo.Context) error {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dispute id")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	dispute, err := h.disputeUC.GetDispute(c.Request().Context(), disputeID, callerID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispute retrieved", dispute)
}

// AddEvidence appends evidence references to an open dispute
func (h *DisputeHandler) AddEvidence(c echo.Context) error {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dispute id")
	}

	var req models.AddEvidenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if len(req.Evidence) == 0 {
		return utils.BadRequestResponse(c, "Evidence entries are required")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	req.BuyerID = callerID

	if err := h.disputeUC.AddEvidence(c.Request().Context(), disputeID, &req); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Evidence added", nil)
}

// StartReview moves a dispute to under_review. Staff only.
func (h *DisputeHandler) StartReview(c echo.Context) error {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dispute id")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	if role, _ := c.Get("user_role").(string); role != "admin" {
		return utils.ForbiddenResponse(c, "Staff access required")
	}

	if err := h.disputeUC.StartReview(c.Request().Context(), disputeID, callerID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Review started", nil)
}

// ResolveDispute adjudicates a dispute and settles its escrow. Staff only.
func (h *DisputeHandler) ResolveDispute(c echo.Context) error {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dispute id")
	}

	var req models.ResolveDisputeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	if role, _ := c.Get("user_role").(string); role != "admin" {
		return utils.ForbiddenResponse(c, "Staff access required")
	}
	req.ReviewerID = callerID

	dispute, err := h.disputeUC.ResolveDispute(c.Request().Context(), disputeID, &req)
	if err != nil {
		logger.Error("Dispute resolution failed",
			logger.String("dispute_id", disputeID.String()),
			logger.ErrorField(err),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispute resolved", dispute)
}

package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
	"github.com/campusbid/campusbid/services/payments"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC payments.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC payments.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// CreateTransaction handles transaction creation requests
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateTransaction"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}
	// The authenticated caller is always the buyer of record
	req.BuyerID = callerID

	txn, err := h.transactionUC.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create transaction",
			logger.ErrorField(err),
			logger.String("buyer_id", callerID.String()),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created", txn)
}

// GetTransaction handles transaction retrieval requests. Only a party to the
// transaction may read it.
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID := c.Param("id")

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return utils.FromError(c, err)
	}
	if txn.BuyerID != callerID && txn.SellerID != callerID {
		return utils.ForbiddenResponse(c, "Not a party to this transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", txn)
}

// ListTransactions lists the caller's transactions
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	txns, err := h.transactionUC.ListTransactionsByUser(c.Request().Context(), callerID, limit, offset)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.ErrorField(err),
			logger.String("user_id", callerID.String()),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txns)
}

// InitiatePayment starts payment collection for a pending transaction
func (h *TransactionHandler) InitiatePayment(c echo.Context) error {
	transactionID := c.Param("id")

	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return utils.FromError(c, err)
	}
	if txn.BuyerID != callerID {
		return utils.ForbiddenResponse(c, "Only the buyer may pay for a transaction")
	}

	resp, err := h.transactionUC.InitiatePayment(c.Request().Context(), transactionID, &req)
	if err != nil {
		logger.Error("Failed to initiate payment",
			logger.ErrorField(err),
			logger.String("transaction_id", transactionID),
		)
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment initiated", resp)
}

// CancelTransaction cancels a pending transaction
func (h *TransactionHandler) CancelTransaction(c echo.Context) error {
	transactionID := c.Param("id")

	callerID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.transactionUC.CancelTransaction(c.Request().Context(), transactionID, callerID); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction cancelled", nil)
}

// callerID extracts the authenticated user id set by the JWT middleware
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.Unauthorized("MISSING_IDENTITY", "missing user identity")
	}
	return id, nil
}

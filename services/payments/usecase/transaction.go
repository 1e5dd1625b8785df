package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
)

// Provider-side statuses reported by payment callbacks and verification
const (
	providerStatusSuccess = "success"
	providerStatusFailed  = "failed"
	providerStatusPending = "pending"
)

// CreateTransaction records a new payment intent in the ledger. Creation is
// idempotent by key: a repeated request returns the existing transaction
// without creating a second one.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	existing, err := uc.transactionRepo.GetTransactionByIdempotencyKey(ctx, req.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	ref, err := utils.GenerateRandomHex(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	txn := &models.Transaction{
		TransactionID:  fmt.Sprintf("TXN-%s", strings.ToUpper(ref)),
		BuyerID:        req.BuyerID,
		SellerID:       req.SellerID,
		AuctionID:      req.AuctionID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.TransactionPending,
		IdempotencyKey: req.IdempotencyKey,
		Metadata:       req.Metadata,
	}

	err = uc.transactionRepo.CreateTransaction(ctx, txn)
	if err != nil {
		// Concurrent request won the insert race: return its row
		if apperrors.KindOf(err) == apperrors.KindConflict {
			return uc.transactionRepo.GetTransactionByIdempotencyKey(ctx, req.IdempotencyKey)
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Transaction created",
		logger.String("transaction_id", txn.TransactionID),
		logger.String("buyer_id", txn.BuyerID.String()),
		logger.String("amount", txn.Amount.String()),
	)
	return txn, nil
}

func validateCreateRequest(req *models.CreateTransactionRequest) error {
	if req.IdempotencyKey == "" {
		return apperrors.New(apperrors.KindValidation, "MISSING_IDEMPOTENCY_KEY", "idempotency key is required")
	}
	if req.BuyerID == uuid.Nil || req.SellerID == uuid.Nil {
		return apperrors.New(apperrors.KindValidation, "MISSING_PARTY", "buyer and seller are required")
	}
	if req.BuyerID == req.SellerID {
		return apperrors.New(apperrors.KindValidation, "SELF_DEALING", "buyer and seller must differ")
	}
	if !req.Amount.IsPositive() {
		return apperrors.New(apperrors.KindValidation, "INVALID_AMOUNT", "amount must be positive")
	}
	if req.Currency == "" {
		return apperrors.New(apperrors.KindValidation, "MISSING_CURRENCY", "currency is required")
	}
	return nil
}

// InitiatePayment starts payment collection with the provider and moves the
// transaction to processing. A gateway failure marks the transaction failed;
// the client starts over with a fresh transaction rather than retrying a
// half-initiated one.
func (uc *TransactionUC) InitiatePayment(ctx context.Context, transactionID string, req *models.InitiatePaymentRequest) (*models.GatewayInitiateResponse, error) {
	txn, err := uc.transactionRepo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != models.TransactionPending {
		return nil, apperrors.InvalidTransition("PAYMENT_ALREADY_STARTED",
			fmt.Sprintf("transaction %s is %s, payment can only start from pending", transactionID, txn.Status))
	}

	resp, err := uc.paymentGW.InitiatePayment(ctx, &models.GatewayInitiateRequest{
		Reference:    txn.TransactionID,
		Amount:       txn.Amount,
		Currency:     txn.Currency,
		BuyerContact: req.BuyerContact,
		CallbackURL:  uc.cfg.Gateway.CallbackURL,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Payment initiation failed",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
		if failErr := uc.failTransaction(ctx, txn, "payment initiation failed"); failErr != nil {
			logger.ErrorCtx(ctx, "Failed to mark transaction failed",
				logger.String("transaction_id", transactionID),
				logger.ErrorField(failErr),
			)
		}
		return nil, err
	}

	if err := uc.transactionRepo.MarkProcessing(ctx, transactionID, resp.Reference); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Payment initiated",
		logger.String("transaction_id", transactionID),
		logger.String("provider_ref", resp.Reference),
	)
	return resp, nil
}

// GetTransaction retrieves a single transaction by its external identifier
func (uc *TransactionUC) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return uc.transactionRepo.GetTransaction(ctx, transactionID)
}

// ListTransactionsByUser lists a user's transactions, newest first
func (uc *TransactionUC) ListTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.transactionRepo.ListTransactionsByUser(ctx, userID, limit, offset)
}

// ProcessCallback applies a provider webhook. Delivery is at-least-once, so a
// callback for a transaction already in a terminal status is acknowledged as
// a no-op. The provider's reported status is never trusted directly for
// completion: the payment is re-verified against the provider first.
func (uc *TransactionUC) ProcessCallback(ctx context.Context, callback *models.PaymentCallback) error {
	txn, err := uc.lookupCallbackTransaction(ctx, callback)
	if err != nil {
		return err
	}

	if txn.Status.IsTerminal() {
		logger.InfoCtx(ctx, "Callback for settled transaction ignored",
			logger.String("transaction_id", txn.TransactionID),
			logger.String("status", string(txn.Status)),
		)
		return nil
	}

	switch callback.Status {
	case providerStatusSuccess:
		return uc.completeTransaction(ctx, txn)
	case providerStatusFailed:
		return uc.failTransaction(ctx, txn, "provider reported failure")
	case providerStatusPending:
		// Nothing to apply yet; the provider will call back again
		return nil
	default:
		return apperrors.New(apperrors.KindValidation, "UNKNOWN_CALLBACK_STATUS",
			fmt.Sprintf("unrecognized callback status %q", callback.Status))
	}
}

func (uc *TransactionUC) lookupCallbackTransaction(ctx context.Context, callback *models.PaymentCallback) (*models.Transaction, error) {
	if callback.TransactionID != "" {
		return uc.transactionRepo.GetTransaction(ctx, callback.TransactionID)
	}
	if callback.ProviderRef != "" {
		return uc.transactionRepo.GetTransactionByProviderRef(ctx, callback.ProviderRef)
	}
	return nil, apperrors.New(apperrors.KindValidation, "MISSING_REFERENCE",
		"callback carries neither transaction id nor provider reference")
}

func (uc *TransactionUC) completeTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ProviderRef == nil {
		return apperrors.InvalidTransition("PAYMENT_NOT_STARTED",
			fmt.Sprintf("transaction %s has no provider reference", txn.TransactionID))
	}

	verification, err := uc.paymentGW.VerifyPayment(ctx, *txn.ProviderRef)
	if err != nil {
		return err
	}
	if verification.Status != providerStatusSuccess {
		logger.WarnCtx(ctx, "Callback claimed success but provider disagrees",
			logger.String("transaction_id", txn.TransactionID),
			logger.String("provider_status", verification.Status),
		)
		return apperrors.New(apperrors.KindConflict, "UNVERIFIED_PAYMENT",
			"provider does not confirm payment success")
	}
	if !verification.Amount.Equal(txn.Amount) {
		return uc.failTransaction(ctx, txn,
			fmt.Sprintf("amount mismatch: ledger %s, provider %s", txn.Amount, verification.Amount))
	}

	if err := uc.transactionRepo.MarkCompleted(ctx, txn.TransactionID); err != nil {
		// A concurrent webhook delivery already completed it
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindInvalidTransition {
			current, lookupErr := uc.transactionRepo.GetTransaction(ctx, txn.TransactionID)
			if lookupErr == nil && current.Status == models.TransactionCompleted {
				return nil
			}
		}
		return err
	}

	event := &models.TransactionCompletedEvent{
		TransactionID: txn.TransactionID,
		AuctionID:     txn.AuctionID,
		BuyerID:       txn.BuyerID,
		SellerID:      txn.SellerID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Timestamp:     time.Now(),
	}
	if err := uc.paymentGW.PublishTransactionCompleted(ctx, event); err != nil {
		// The ledger row is already completed; the event is retried by the
		// reconciliation sweep rather than failing the webhook
		logger.ErrorCtx(ctx, "Failed to publish transaction completed event",
			logger.String("transaction_id", txn.TransactionID),
			logger.ErrorField(err),
		)
	}

	logger.InfoCtx(ctx, "Transaction completed",
		logger.String("transaction_id", txn.TransactionID),
		logger.String("amount", txn.Amount.String()),
	)
	return nil
}

func (uc *TransactionUC) failTransaction(ctx context.Context, txn *models.Transaction, reason string) error {
	if err := uc.transactionRepo.MarkFailed(ctx, txn.TransactionID, reason); err != nil {
		return err
	}
	if err := uc.paymentGW.PublishTransactionFailed(ctx, txn.TransactionID, reason); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish transaction failed event",
			logger.String("transaction_id", txn.TransactionID),
			logger.ErrorField(err),
		)
	}

	logger.WarnCtx(ctx, "Transaction failed",
		logger.String("transaction_id", txn.TransactionID),
		logger.String("reason", reason),
	)
	return nil
}

// CancelTransaction cancels a transaction before payment collection starts.
// Only the buyer may cancel, and only while the transaction is still pending.
func (uc *TransactionUC) CancelTransaction(ctx context.Context, transactionID string, callerID uuid.UUID) error {
	txn, err := uc.transactionRepo.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.BuyerID != callerID {
		return apperrors.Unauthorized("NOT_BUYER", "only the buyer may cancel a transaction")
	}
	if txn.Status != models.TransactionPending {
		return apperrors.InvalidTransition("CANCEL_AFTER_START",
			fmt.Sprintf("transaction %s is %s, only pending transactions can be cancelled", transactionID, txn.Status))
	}
	return uc.transactionRepo.MarkCancelled(ctx, transactionID)
}

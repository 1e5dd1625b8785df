package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/codes"
	"github.com/campusbid/campusbid/internal/pkg/constants"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

// CreateEscrowFromTransaction locks funds for a completed transaction and
// generates the delivery code. Event delivery is at-least-once: a redelivered
// event returns the existing escrow without generating a second code.
func (uc *EscrowUC) CreateEscrowFromTransaction(ctx context.Context, event *models.TransactionCompletedEvent) (*models.Escrow, error) {
	if event.TransactionID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "MISSING_TRANSACTION", "event carries no transaction id")
	}
	if !event.Amount.IsPositive() {
		return nil, apperrors.New(apperrors.KindValidation, "INVALID_AMOUNT", "escrowed amount must be positive")
	}

	if existing, err := uc.escrowRepo.GetEscrowByTransactionID(ctx, event.TransactionID); err == nil {
		return existing, nil
	} else if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	code, err := codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate delivery code: %w", err)
	}
	hash, err := codes.Hash(code)
	if err != nil {
		return nil, fmt.Errorf("failed to hash delivery code: %w", err)
	}
	ciphertext, err := uc.cipher.Encrypt(code)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt delivery code: %w", err)
	}

	esc := &models.Escrow{
		TransactionID:  event.TransactionID,
		AuctionID:      event.AuctionID,
		BuyerID:        event.BuyerID,
		SellerID:       event.SellerID,
		Amount:         event.Amount,
		Currency:       event.Currency,
		CodeHash:       hash,
		CodeCiphertext: &ciphertext,
	}

	if err := uc.escrowRepo.CreateEscrow(ctx, esc); err != nil {
		// Concurrent redelivery won the insert race
		if apperrors.KindOf(err) == apperrors.KindConflict {
			return uc.escrowRepo.GetEscrowByTransactionID(ctx, event.TransactionID)
		}
		return nil, err
	}

	expiresAt := esc.LockedAt.Add(time.Duration(uc.cfg.Escrow.CodeTTLHours) * time.Hour)
	if err := uc.escrowGW.PublishDeliveryCode(ctx, &models.DeliveryCodeEvent{
		EscrowID:  esc.ID,
		BuyerID:   esc.BuyerID,
		Code:      code,
		ExpiresAt: expiresAt,
		Timestamp: time.Now(),
	}); err != nil {
		// The buyer can still fetch the code while the escrow is locked
		logger.ErrorCtx(ctx, "Failed to hand delivery code to notifications",
			logger.String("escrow_id", esc.ID.String()),
			logger.ErrorField(err),
		)
	}

	if err := uc.escrowGW.PublishEscrowCreated(ctx, esc); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish escrow created event",
			logger.String("escrow_id", esc.ID.String()),
			logger.ErrorField(err),
		)
	}
	uc.audit(ctx, "system", constants.AuditEscrowCreated, esc.ID.String(), "success",
		fmt.Sprintf("escrow locked for transaction %s", esc.TransactionID))

	logger.InfoCtx(ctx, "Escrow created",
		logger.String("escrow_id", esc.ID.String()),
		logger.String("transaction_id", esc.TransactionID),
		logger.String("amount", esc.Amount.String()),
	)
	return esc, nil
}

// GetEscrow retrieves an escrow for one of its parties
func (uc *EscrowUC) GetEscrow(ctx context.Context, id, callerID uuid.UUID) (*models.Escrow, error) {
	esc, err := uc.escrowRepo.GetEscrow(ctx, id)
	if err != nil {
		return nil, err
	}
	if esc.BuyerID != callerID && esc.SellerID != callerID {
		return nil, apperrors.Unauthorized("NOT_PARTY", "not a party to this escrow")
	}
	return esc, nil
}

// GetEscrowByAuction retrieves an escrow by its auction for one of its parties
func (uc *EscrowUC) GetEscrowByAuction(ctx context.Context, auctionID, callerID uuid.UUID) (*models.Escrow, error) {
	esc, err := uc.escrowRepo.GetEscrowByAuctionID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if esc.BuyerID != callerID && esc.SellerID != callerID {
		return nil, apperrors.Unauthorized("NOT_PARTY", "not a party to this escrow")
	}
	return esc, nil
}

// GetBuyerCode returns the plaintext delivery code to the buyer. The
// ciphertext only exists while the escrow is locked; it is erased on the
// first successful verification.
func (uc *EscrowUC) GetBuyerCode(ctx context.Context, id, buyerID uuid.UUID) (string, error) {
	esc, err := uc.escrowRepo.GetEscrow(ctx, id)
	if err != nil {
		return "", err
	}
	if esc.BuyerID != buyerID {
		return "", apperrors.Unauthorized("NOT_BUYER", "only the buyer may read the delivery code")
	}
	if esc.CodeCiphertext == nil {
		return "", apperrors.New(apperrors.KindAlreadyUsed, "CODE_CONSUMED",
			"the delivery code has already been used")
	}

	code, err := uc.cipher.Decrypt(*esc.CodeCiphertext)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "CODE_DECRYPT", "failed to recover delivery code", err)
	}
	return code, nil
}

// VerifyDelivery checks the delivery code presented by the seller and moves
// the escrow to pending_confirmation. The disputed status blocks
// verification; the code expires a fixed window after locking.
func (uc *EscrowUC) VerifyDelivery(ctx context.Context, id, sellerID uuid.UUID, code string) error {
	esc, err := uc.escrowRepo.GetEscrow(ctx, id)
	if err != nil {
		return err
	}
	if esc.SellerID != sellerID {
		return apperrors.Unauthorized("NOT_SELLER", "only the seller may verify delivery")
	}
	if esc.Status != models.EscrowLocked {
		return apperrors.InvalidTransition("ESCROW_NOT_LOCKED",
			fmt.Sprintf("escrow is %s, delivery can only be verified while locked", esc.Status))
	}

	ttl := time.Duration(uc.cfg.Escrow.CodeTTLHours) * time.Hour
	if ttl > 0 && time.Now().After(esc.LockedAt.Add(ttl)) {
		return apperrors.New(apperrors.KindExpired, "CODE_EXPIRED", "the delivery code has expired")
	}

	if err := uc.verifier.verify(ctx, esc.ID.String(), esc.CodeHash, code); err != nil {
		uc.audit(ctx, sellerID.String(), constants.AuditDeliveryRejected, esc.ID.String(), "failure",
			apperrors.CodeOf(err))
		return err
	}

	if err := uc.escrowRepo.MarkDeliveryConfirmed(ctx, esc.ID); err != nil {
		return err
	}
	uc.audit(ctx, sellerID.String(), constants.AuditDeliveryVerified, esc.ID.String(), "success", "")

	logger.InfoCtx(ctx, "Delivery confirmed",
		logger.String("escrow_id", esc.ID.String()),
		logger.String("transaction_id", esc.TransactionID),
	)
	return nil
}

// ReleaseEscrow pays a confirmed escrow out to the seller. The status change
// and the payout commit atomically, so a gateway failure leaves the escrow
// in pending_confirmation and the release can be retried.
func (uc *EscrowUC) ReleaseEscrow(ctx context.Context, id, callerID uuid.UUID) error {
	esc, err := uc.escrowRepo.GetEscrow(ctx, id)
	if err != nil {
		return err
	}
	if esc.BuyerID != callerID {
		return apperrors.Unauthorized("NOT_BUYER", "only the buyer may release an escrow")
	}

	err = uc.escrowRepo.ReleaseEscrow(ctx, esc.ID, models.EscrowPendingConfirmation, nil, func(ctx context.Context) error {
		_, payoutErr := uc.escrowGW.Payout(ctx, &models.GatewayPayoutRequest{
			SellerID: esc.SellerID,
			Amount:   esc.Amount,
			Currency: esc.Currency,
		})
		return payoutErr
	})
	if err != nil {
		return err
	}

	uc.afterRelease(ctx, esc, callerID.String())
	return nil
}

// CheckWithdrawalEligibility answers the payout collaborator's query: a
// seller with any escrow still holding funds cannot withdraw.
func (uc *EscrowUC) CheckWithdrawalEligibility(ctx context.Context, sellerID uuid.UUID) (*models.WithdrawalCheck, error) {
	count, total, err := uc.escrowRepo.HeldBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return &models.WithdrawalCheck{
		SellerID:    sellerID,
		Amount:      total,
		Eligible:    count == 0,
		HeldEscrows: count,
	}, nil
}

// RefundEscrow returns a still-held escrow to the buyer, from locked or
// pending_confirmation. Disputed escrows are refunded through dispute
// resolution instead.
func (uc *EscrowUC) RefundEscrow(ctx context.Context, id uuid.UUID, actor string, req *models.RefundRequest) error {
	esc, err := uc.escrowRepo.GetEscrow(ctx, id)
	if err != nil {
		return err
	}
	if !esc.Status.Held() {
		return apperrors.InvalidTransition("ESCROW_TRANSITION",
			fmt.Sprintf("escrow is %s, refunds only apply while funds are held", esc.Status))
	}

	reason := req.Reason
	err = uc.escrowRepo.RefundEscrow(ctx, esc.ID, esc.Status, &reason, func(ctx context.Context) error {
		_, refundErr := uc.escrowGW.Refund(ctx, &models.GatewayRefundRequest{
			Reference: esc.TransactionID,
			Amount:    esc.Amount,
			Reason:    reason,
		})
		return refundErr
	})
	if err != nil {
		return err
	}

	esc.Status = models.EscrowRefunded
	if err := uc.escrowGW.PublishEscrowRefunded(ctx, esc); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish escrow refunded event",
			logger.String("escrow_id", esc.ID.String()),
			logger.ErrorField(err),
		)
	}
	uc.audit(ctx, actor, constants.AuditEscrowRefunded, esc.ID.String(), "success", reason)

	logger.InfoCtx(ctx, "Escrow refunded",
		logger.String("escrow_id", esc.ID.String()),
		logger.String("reason", reason),
	)
	return nil
}

// AutoReleaseDue releases escrows whose confirmation is older than the
// auto-release window. Individual failures are logged and skipped so one bad
// escrow cannot stall the sweep.
func (uc *EscrowUC) AutoReleaseDue(ctx context.Context) (int, error) {
	if uc.cfg.Escrow.AutoReleaseHours <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-time.Duration(uc.cfg.Escrow.AutoReleaseHours) * time.Hour)
	due, err := uc.escrowRepo.ListConfirmedBefore(ctx, cutoff, 50)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, esc := range due {
		esc := esc
		err := uc.escrowRepo.ReleaseEscrow(ctx, esc.ID, models.EscrowPendingConfirmation, nil, func(ctx context.Context) error {
			_, payoutErr := uc.escrowGW.Payout(ctx, &models.GatewayPayoutRequest{
				SellerID: esc.SellerID,
				Amount:   esc.Amount,
				Currency: esc.Currency,
			})
			return payoutErr
		})
		if err != nil {
			logger.ErrorCtx(ctx, "Auto-release failed",
				logger.String("escrow_id", esc.ID.String()),
				logger.ErrorField(err),
			)
			continue
		}

		uc.afterRelease(ctx, esc, "system")
		released++
	}
	return released, nil
}

func (uc *EscrowUC) afterRelease(ctx context.Context, esc *models.Escrow, actor string) {
	esc.Status = models.EscrowReleased
	if err := uc.escrowGW.PublishEscrowReleased(ctx, esc); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish escrow released event",
			logger.String("escrow_id", esc.ID.String()),
			logger.ErrorField(err),
		)
	}
	uc.audit(ctx, actor, constants.AuditEscrowReleased, esc.ID.String(), "success", "")

	logger.InfoCtx(ctx, "Escrow released",
		logger.String("escrow_id", esc.ID.String()),
		logger.String("seller_id", esc.SellerID.String()),
		logger.String("amount", esc.Amount.String()),
	)
}

func (uc *EscrowUC) audit(ctx context.Context, actor, action, resourceID, outcome, detail string) {
	err := uc.escrowGW.PublishAudit(ctx, &models.AuditEvent{
		Actor:        actor,
		Action:       action,
		ResourceType: "escrow",
		ResourceID:   resourceID,
		Outcome:      outcome,
		Detail:       detail,
		Timestamp:    time.Now(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish audit event",
			logger.String("action", action),
			logger.String("resource_id", resourceID),
			logger.ErrorField(err),
		)
	}
}

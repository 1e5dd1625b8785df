package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/codes"
	"github.com/campusbid/campusbid/internal/pkg/constants"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

// GenerateCode issues a fresh confirmation code for a transaction and returns
// the plaintext exactly once, to the buyer who requested it. Generation fails
// while an unused code exists for the transaction, so at most one code can
// ever verify.
func (uc *ConfirmationUC) GenerateCode(ctx context.Context, req *models.GenerateConfirmationRequest) (*models.DeliveryConfirmation, string, error) {
	esc, err := uc.escrowRepo.GetEscrowByTransactionID(ctx, req.TransactionID)
	if err != nil {
		return nil, "", err
	}
	if esc.BuyerID != req.BuyerID {
		return nil, "", apperrors.Unauthorized("NOT_BUYER", "only the buyer may generate a confirmation code")
	}
	if !esc.Status.Held() {
		return nil, "", apperrors.InvalidTransition("ESCROW_SETTLED",
			fmt.Sprintf("escrow is %s, confirmation codes only apply while funds are held", esc.Status))
	}

	prev, err := uc.confirmationRepo.GetLatestConfirmation(ctx, req.TransactionID)
	if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, "", err
	}
	if err == nil && !prev.IsUsed {
		return nil, "", apperrors.New(apperrors.KindConflict, "ACTIVE_CONFIRMATION_EXISTS",
			"an unused confirmation already exists for this transaction")
	}

	code, err := codes.Generate()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	hash, err := codes.Hash(code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash confirmation code: %w", err)
	}

	conf := &models.DeliveryConfirmation{
		TransactionID: req.TransactionID,
		BuyerID:       req.BuyerID,
		CodeHash:      hash,
		ExpiresAt:     time.Now().Add(time.Duration(uc.cfg.Escrow.CodeTTLHours) * time.Hour),
	}
	if err := uc.confirmationRepo.CreateConfirmation(ctx, conf); err != nil {
		return nil, "", err
	}

	uc.audit(ctx, req.BuyerID.String(), constants.AuditConfirmationCreated, conf.ID.String(), "success", "")

	logger.InfoCtx(ctx, "Confirmation code generated",
		logger.String("confirmation_id", conf.ID.String()),
		logger.String("transaction_id", conf.TransactionID),
	)
	return conf, code, nil
}

// VerifyCode checks a confirmation code presented by the seller. The code is
// single use: the used flag is set exactly once, and verification shares the
// same attempt counting and permanent lockout as escrow delivery codes. A
// successful verification also confirms delivery on the escrow.
func (uc *ConfirmationUC) VerifyCode(ctx context.Context, req *models.VerifyConfirmationRequest) error {
	esc, err := uc.escrowRepo.GetEscrowByTransactionID(ctx, req.TransactionID)
	if err != nil {
		return err
	}
	if esc.SellerID != req.CallerID {
		return apperrors.Unauthorized("NOT_SELLER", "only the seller may verify a confirmation code")
	}

	conf, err := uc.confirmationRepo.GetLatestConfirmation(ctx, req.TransactionID)
	if err != nil {
		return err
	}
	if conf.IsUsed {
		return apperrors.New(apperrors.KindAlreadyUsed, "CONFIRMATION_USED",
			fmt.Sprintf("confirmation for transaction %s was already consumed", req.TransactionID))
	}
	if conf.Expired(time.Now()) {
		return apperrors.New(apperrors.KindExpired, "CODE_EXPIRED", "the confirmation code has expired")
	}

	if err := uc.verifier.verify(ctx, conf.ID.String(), conf.CodeHash, req.Code); err != nil {
		uc.audit(ctx, req.CallerID.String(), constants.AuditDeliveryRejected, conf.ID.String(), "failure",
			apperrors.CodeOf(err))
		return err
	}

	if err := uc.confirmationRepo.MarkUsed(ctx, conf.ID); err != nil {
		return err
	}

	// Confirm delivery on the escrow as well; a concurrent escrow-side
	// verification may already have done so
	if err := uc.escrowRepo.MarkDeliveryConfirmed(ctx, esc.ID); err != nil {
		if apperrors.KindOf(err) != apperrors.KindInvalidTransition {
			return err
		}
	}

	uc.audit(ctx, req.CallerID.String(), constants.AuditConfirmationUsed, conf.ID.String(), "success", "")

	logger.InfoCtx(ctx, "Confirmation code verified",
		logger.String("confirmation_id", conf.ID.String()),
		logger.String("transaction_id", conf.TransactionID),
	)
	return nil
}

func (uc *ConfirmationUC) audit(ctx context.Context, actor, action, resourceID, outcome, detail string) {
	err := uc.escrowGW.PublishAudit(ctx, &models.AuditEvent{
		Actor:        actor,
		Action:       action,
		ResourceType: "confirmation",
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

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/constants"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/internal/utils"
)

// reviewDeadline is how long a dispute may stay open before staff escalation
const reviewDeadline = 7 * 24 * time.Hour

// maxDescriptionLength caps user-supplied dispute text
const maxDescriptionLength = 2000

// OpenDispute freezes an escrow pending adjudication. Only the buyer may
// open a dispute, only while the escrow still holds funds, and only one
// dispute can be open per escrow at a time.
func (uc *DisputeUC) OpenDispute(ctx context.Context, req *models.OpenDisputeRequest) (*models.Dispute, error) {
	if !req.Reason.Valid() {
		return nil, apperrors.New(apperrors.KindValidation, "INVALID_REASON",
			fmt.Sprintf("unsupported dispute reason %q", req.Reason))
	}
	description := utils.Truncate(utils.SanitizeString(req.Description), maxDescriptionLength)
	if description == "" {
		return nil, apperrors.New(apperrors.KindValidation, "MISSING_DESCRIPTION", "a description is required")
	}

	esc, err := uc.escrowRepo.GetEscrowByAuctionID(ctx, req.AuctionID)
	if err != nil {
		return nil, err
	}
	if esc.BuyerID != req.BuyerID {
		return nil, apperrors.Unauthorized("NOT_BUYER", "only the buyer may open a dispute")
	}
	if !esc.Status.Held() {
		return nil, apperrors.InvalidTransition("ESCROW_SETTLED",
			fmt.Sprintf("escrow is %s, disputes only apply while funds are held", esc.Status))
	}

	if _, err := uc.disputeRepo.GetOpenDisputeByEscrow(ctx, esc.ID); err == nil {
		return nil, apperrors.New(apperrors.KindConflict, "DISPUTE_EXISTS",
			"a dispute is already open for this escrow")
	} else if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	// Freeze the escrow first; the conditional transition loses cleanly if
	// the escrow settles concurrently
	if err := uc.escrowRepo.MarkDisputed(ctx, esc.ID); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(reviewDeadline)
	dispute := &models.Dispute{
		EscrowID:    esc.ID,
		AuctionID:   esc.AuctionID,
		BuyerID:     esc.BuyerID,
		SellerID:    esc.SellerID,
		Reason:      req.Reason,
		Description: description,
		Evidence:    req.Evidence,
		Deadline:    &deadline,
	}
	if err := uc.disputeRepo.CreateDispute(ctx, dispute); err != nil {
		return nil, err
	}

	esc.Status = models.EscrowDisputed
	if err := uc.escrowGW.PublishEscrowDisputed(ctx, esc); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish escrow disputed event",
			logger.String("escrow_id", esc.ID.String()),
			logger.ErrorField(err),
		)
	}
	uc.audit(ctx, req.BuyerID.String(), constants.AuditEscrowDisputed, dispute.ID.String(), "success",
		string(req.Reason))

	logger.InfoCtx(ctx, "Dispute opened",
		logger.String("dispute_id", dispute.ID.String()),
		logger.String("escrow_id", esc.ID.String()),
		logger.String("reason", string(req.Reason)),
	)
	return dispute, nil
}

// GetDispute retrieves a dispute for one of its parties
func (uc *DisputeUC) GetDispute(ctx context.Context, id, callerID uuid.UUID) (*models.Dispute, error) {
	dispute, err := uc.disputeRepo.GetDispute(ctx, id)
	if err != nil {
		return nil, err
	}
	if dispute.BuyerID != callerID && dispute.SellerID != callerID {
		return nil, apperrors.Unauthorized("NOT_PARTY", "not a party to this dispute")
	}
	return dispute, nil
}

// AddEvidence appends evidence references to a dispute that is still
// under adjudication
func (uc *DisputeUC) AddEvidence(ctx context.Context, disputeID uuid.UUID, req *models.AddEvidenceRequest) error {
	if len(req.Evidence) == 0 {
		return apperrors.New(apperrors.KindValidation, "MISSING_EVIDENCE", "evidence is required")
	}

	dispute, err := uc.disputeRepo.GetDispute(ctx, disputeID)
	if err != nil {
		return err
	}
	if dispute.BuyerID != req.BuyerID && dispute.SellerID != req.BuyerID {
		return apperrors.Unauthorized("NOT_PARTY", "not a party to this dispute")
	}
	if dispute.Status.Closed() {
		return apperrors.InvalidTransition("DISPUTE_CLOSED", "the dispute is already closed")
	}

	return uc.disputeRepo.AppendEvidence(ctx, disputeID, req.Evidence)
}

// StartReview assigns a reviewer and moves the dispute to under_review
func (uc *DisputeUC) StartReview(ctx context.Context, disputeID, reviewerID uuid.UUID) error {
	if err := uc.disputeRepo.MarkUnderReview(ctx, disputeID, reviewerID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Dispute under review",
		logger.String("dispute_id", disputeID.String()),
		logger.String("reviewer_id", reviewerID.String()),
	)
	return nil
}

// ResolveDispute applies a reviewer's adjudication. The escrow settlement
// runs first; the dispute row closes only after the money moved, so a
// gateway failure leaves the dispute open for a retry. Settling an escrow
// that a previous partial attempt already settled is tolerated.
func (uc *DisputeUC) ResolveDispute(ctx context.Context, disputeID uuid.UUID, req *models.ResolveDisputeRequest) (*models.Dispute, error) {
	dispute, err := uc.disputeRepo.GetDispute(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.Closed() {
		return nil, apperrors.InvalidTransition("DISPUTE_CLOSED", "the dispute is already closed")
	}

	esc, err := uc.escrowRepo.GetEscrow(ctx, dispute.EscrowID)
	if err != nil {
		return nil, err
	}

	if err := uc.settleEscrow(ctx, esc, req); err != nil {
		return nil, err
	}

	if err := uc.disputeRepo.ResolveDispute(ctx, disputeID, req.Resolution, req.Note, req.ReviewerID); err != nil {
		return nil, err
	}

	uc.audit(ctx, req.ReviewerID.String(), constants.AuditDisputeResolved, disputeID.String(), "success",
		string(req.Resolution))

	logger.InfoCtx(ctx, "Dispute resolved",
		logger.String("dispute_id", disputeID.String()),
		logger.String("resolution", string(req.Resolution)),
	)
	return uc.disputeRepo.GetDispute(ctx, disputeID)
}

func (uc *DisputeUC) settleEscrow(ctx context.Context, esc *models.Escrow, req *models.ResolveDisputeRequest) error {
	note := req.Note

	switch req.Resolution {
	case models.ResolutionRefundBuyer:
		err := uc.escrowRepo.RefundEscrow(ctx, esc.ID, models.EscrowDisputed, &note, func(ctx context.Context) error {
			_, refundErr := uc.escrowGW.Refund(ctx, &models.GatewayRefundRequest{
				Reference: esc.TransactionID,
				Amount:    esc.Amount,
				Reason:    note,
			})
			return refundErr
		})
		if err != nil {
			return uc.tolerateSettled(ctx, esc.ID, models.EscrowRefunded, err)
		}
		esc.Status = models.EscrowRefunded
		uc.publishSettled(ctx, esc)
		return nil

	case models.ResolutionReleaseToSeller:
		err := uc.escrowRepo.ReleaseEscrow(ctx, esc.ID, models.EscrowDisputed, &note, func(ctx context.Context) error {
			_, payoutErr := uc.escrowGW.Payout(ctx, &models.GatewayPayoutRequest{
				SellerID: esc.SellerID,
				Amount:   esc.Amount,
				Currency: esc.Currency,
			})
			return payoutErr
		})
		if err != nil {
			return uc.tolerateSettled(ctx, esc.ID, models.EscrowReleased, err)
		}
		esc.Status = models.EscrowReleased
		uc.publishSettled(ctx, esc)
		return nil

	case models.ResolutionPartialRefund:
		if req.RefundAmount == nil || !req.RefundAmount.IsPositive() || !req.RefundAmount.LessThan(esc.Amount) {
			return apperrors.New(apperrors.KindValidation, "INVALID_REFUND_AMOUNT",
				"partial refunds require an amount between zero and the escrowed amount")
		}
		refundAmount := *req.RefundAmount
		remainder := esc.Amount.Sub(refundAmount)

		err := uc.escrowRepo.RefundEscrow(ctx, esc.ID, models.EscrowDisputed, &note, func(ctx context.Context) error {
			if _, refundErr := uc.escrowGW.Refund(ctx, &models.GatewayRefundRequest{
				Reference: esc.TransactionID,
				Amount:    refundAmount,
				Reason:    note,
			}); refundErr != nil {
				return refundErr
			}
			_, payoutErr := uc.escrowGW.Payout(ctx, &models.GatewayPayoutRequest{
				SellerID: esc.SellerID,
				Amount:   remainder,
				Currency: esc.Currency,
			})
			return payoutErr
		})
		if err != nil {
			return uc.tolerateSettled(ctx, esc.ID, models.EscrowRefunded, err)
		}
		esc.Status = models.EscrowRefunded
		uc.publishSettled(ctx, esc)
		return nil

	case models.ResolutionNone:
		// Rejected: the escrow returns to its prior held status
		reopenTo := models.EscrowLocked
		if esc.ConfirmedAt != nil {
			reopenTo = models.EscrowPendingConfirmation
		}
		return uc.escrowRepo.ReopenEscrow(ctx, esc.ID, reopenTo)

	default:
		return apperrors.New(apperrors.KindValidation, "INVALID_RESOLUTION",
			fmt.Sprintf("unsupported resolution %q", req.Resolution))
	}
}

// tolerateSettled swallows an invalid transition error when the escrow is
// already in the status this resolution targets; a previous attempt settled
// the money and only the dispute row needs closing.
func (uc *DisputeUC) tolerateSettled(ctx context.Context, escrowID uuid.UUID, want models.EscrowStatus, cause error) error {
	if apperrors.KindOf(cause) != apperrors.KindInvalidTransition {
		return cause
	}
	current, err := uc.escrowRepo.GetEscrow(ctx, escrowID)
	if err != nil || current.Status != want {
		return cause
	}
	return nil
}

func (uc *DisputeUC) publishSettled(ctx context.Context, esc *models.Escrow) {
	var err error
	switch esc.Status {
	case models.EscrowReleased:
		err = uc.escrowGW.PublishEscrowReleased(ctx, esc)
	case models.EscrowRefunded:
		err = uc.escrowGW.PublishEscrowRefunded(ctx, esc)
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish escrow settlement event",
			logger.String("escrow_id", esc.ID.String()),
			logger.String("status", string(esc.Status)),
			logger.ErrorField(err),
		)
	}
}

func (uc *DisputeUC) audit(ctx context.Context, actor, action, resourceID, outcome, detail string) {
	err := uc.escrowGW.PublishAudit(ctx, &models.AuditEvent{
		Actor:        actor,
		Action:       action,
		ResourceType: "dispute",
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

package escrow

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/campusbid/campusbid/services/escrow EscrowUC,ConfirmationUC,DisputeUC

// EscrowUC defines the interface for escrow lifecycle use cases
type EscrowUC interface {
	CreateEscrowFromTransaction(ctx context.Context, event *models.TransactionCompletedEvent) (*models.Escrow, error)
	GetEscrow(ctx context.Context, id, callerID uuid.UUID) (*models.Escrow, error)
	GetEscrowByAuction(ctx context.Context, auctionID, callerID uuid.UUID) (*models.Escrow, error)
	GetBuyerCode(ctx context.Context, id, buyerID uuid.UUID) (string, error)
	VerifyDelivery(ctx context.Context, id, sellerID uuid.UUID, code string) error
	ReleaseEscrow(ctx context.Context, id, callerID uuid.UUID) error
	RefundEscrow(ctx context.Context, id uuid.UUID, actor string, req *models.RefundRequest) error
	CheckWithdrawalEligibility(ctx context.Context, sellerID uuid.UUID) (*models.WithdrawalCheck, error)
	AutoReleaseDue(ctx context.Context) (int, error)
}

// ConfirmationUC defines the interface for transaction-keyed confirmation codes
type ConfirmationUC interface {
	GenerateCode(ctx context.Context, req *models.GenerateConfirmationRequest) (*models.DeliveryConfirmation, string, error)
	VerifyCode(ctx context.Context, req *models.VerifyConfirmationRequest) error
}

// DisputeUC defines the interface for the dispute workflow
type DisputeUC interface {
	OpenDispute(ctx context.Context, req *models.OpenDisputeRequest) (*models.Dispute, error)
	GetDispute(ctx context.Context, id, callerID uuid.UUID) (*models.Dispute, error)
	AddEvidence(ctx context.Context, disputeID uuid.UUID, req *models.AddEvidenceRequest) error
	StartReview(ctx context.Context, disputeID, reviewerID uuid.UUID) error
	ResolveDispute(ctx context.Context, disputeID uuid.UUID, req *models.ResolveDisputeRequest) (*models.Dispute, error)
}

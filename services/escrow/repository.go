package escrow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/campusbid/campusbid/services/escrow EscrowRepo,ConfirmationRepo,DisputeRepo

// EscrowRepo defines the interface for escrow persistence and the delivery
// code attempt counters. Status transitions are conditional on the expected
// prior status so concurrent writers cannot double-apply a transition.
//
// ReleaseEscrow and RefundEscrow run the status update and the provided
// gateway call inside one database transaction: the row only commits to its
// terminal status if the payout or refund call succeeded, and a gateway
// failure rolls the row back to its prior status.
type EscrowRepo interface {
	CreateEscrow(ctx context.Context, esc *models.Escrow) error
	GetEscrow(ctx context.Context, id uuid.UUID) (*models.Escrow, error)
	GetEscrowByTransactionID(ctx context.Context, transactionID string) (*models.Escrow, error)
	GetEscrowByAuctionID(ctx context.Context, auctionID uuid.UUID) (*models.Escrow, error)
	MarkDeliveryConfirmed(ctx context.Context, id uuid.UUID) error
	MarkDisputed(ctx context.Context, id uuid.UUID) error
	ReopenEscrow(ctx context.Context, id uuid.UUID, to models.EscrowStatus) error
	ReleaseEscrow(ctx context.Context, id uuid.UUID, from models.EscrowStatus, notes *string, payout func(ctx context.Context) error) error
	RefundEscrow(ctx context.Context, id uuid.UUID, from models.EscrowStatus, notes *string, refund func(ctx context.Context) error) error
	HeldBySeller(ctx context.Context, sellerID uuid.UUID) (int, decimal.Decimal, error)
	ListConfirmedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*models.Escrow, error)

	IncrementCodeAttempts(ctx context.Context, recordID string) (int64, error)
	IsCodeLocked(ctx context.Context, recordID string) (bool, error)
	LockCode(ctx context.Context, recordID string) error
	ClearCodeAttempts(ctx context.Context, recordID string) error
}

// ConfirmationRepo defines the interface for transaction-keyed delivery
// confirmation codes. At most one unused confirmation exists per transaction.
type ConfirmationRepo interface {
	CreateConfirmation(ctx context.Context, conf *models.DeliveryConfirmation) error
	GetLatestConfirmation(ctx context.Context, transactionID string) (*models.DeliveryConfirmation, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

// DisputeRepo defines the interface for dispute persistence
type DisputeRepo interface {
	CreateDispute(ctx context.Context, dispute *models.Dispute) error
	GetDispute(ctx context.Context, id uuid.UUID) (*models.Dispute, error)
	GetOpenDisputeByEscrow(ctx context.Context, escrowID uuid.UUID) (*models.Dispute, error)
	ListDisputesByStatus(ctx context.Context, status models.DisputeStatus, limit, offset int) ([]*models.Dispute, error)
	MarkUnderReview(ctx context.Context, id, reviewerID uuid.UUID) error
	ResolveDispute(ctx context.Context, id uuid.UUID, resolution models.DisputeResolution, note string, reviewerID uuid.UUID) error
	AppendEvidence(ctx context.Context, id uuid.UUID, evidence models.EvidenceList) error
}

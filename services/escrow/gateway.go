package escrow

import (
	"context"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/campusbid/campusbid/services/escrow EscrowGW

// EscrowGW defines the interface for payment provider money movement and
// event publication. Audit publication failures never block the primary
// transition; payout and refund failures do.
type EscrowGW interface {
	Payout(ctx context.Context, req *models.GatewayPayoutRequest) (*models.GatewayPayoutResponse, error)
	Refund(ctx context.Context, req *models.GatewayRefundRequest) (*models.GatewayRefundResponse, error)
	PublishDeliveryCode(ctx context.Context, event *models.DeliveryCodeEvent) error
	PublishEscrowCreated(ctx context.Context, esc *models.Escrow) error
	PublishEscrowReleased(ctx context.Context, esc *models.Escrow) error
	PublishEscrowRefunded(ctx context.Context, esc *models.Escrow) error
	PublishEscrowDisputed(ctx context.Context, esc *models.Escrow) error
	PublishAudit(ctx context.Context, event *models.AuditEvent) error
}

package gateway

import (
	"context"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

// Payout forwards to the provider HTTP gateway
func (g *EscrowGW) Payout(ctx context.Context, req *models.GatewayPayoutRequest) (*models.GatewayPayoutResponse, error) {
	return g.providerGateway.Payout(ctx, req)
}

// Refund forwards to the provider HTTP gateway
func (g *EscrowGW) Refund(ctx context.Context, req *models.GatewayRefundRequest) (*models.GatewayRefundResponse, error) {
	return g.providerGateway.Refund(ctx, req)
}

// PublishDeliveryCode forwards to the NATS gateway implementation
func (g *EscrowGW) PublishDeliveryCode(ctx context.Context, event *models.DeliveryCodeEvent) error {
	return g.natsGateway.PublishDeliveryCode(ctx, event)
}

// PublishEscrowCreated forwards to the NATS gateway implementation
func (g *EscrowGW) PublishEscrowCreated(ctx context.Context, esc *models.Escrow) error {
	return g.natsGateway.PublishEscrowCreated(ctx, esc)
}

// PublishEscrowReleased forwards to the NATS gateway implementation
func (g *EscrowGW) PublishEscrowReleased(ctx context.Context, esc *models.Escrow) error {
	return g.natsGateway.PublishEscrowReleased(ctx, esc)
}

// PublishEscrowRefunded forwards to the NATS gateway implementation
func (g *EscrowGW) PublishEscrowRefunded(ctx context.Context, esc *models.Escrow) error {
	return g.natsGateway.PublishEscrowRefunded(ctx, esc)
}

// PublishEscrowDisputed forwards to the NATS gateway implementation
func (g *EscrowGW) PublishEscrowDisputed(ctx context.Context, esc *models.Escrow) error {
	return g.natsGateway.PublishEscrowDisputed(ctx, esc)
}

// PublishAudit forwards to the NATS gateway implementation
func (g *EscrowGW) PublishAudit(ctx context.Context, event *models.AuditEvent) error {
	return g.natsGateway.PublishAudit(ctx, event)
}

package gateway

import (
	"context"
	"encoding/json"

	"github.com/campusbid/campusbid/internal/pkg/constants"
	"github.com/campusbid/campusbid/internal/pkg/models"
	natspkg "github.com/campusbid/campusbid/internal/pkg/nats"
)

// NATSGateway implements the NATS publish operations for the escrow service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishDeliveryCode hands the plaintext code to the notification
// collaborator. This is the only place the plaintext leaves the service.
func (g *NATSGateway) PublishDeliveryCode(ctx context.Context, event *models.DeliveryCodeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectDeliveryCode, data)
}

// PublishEscrowCreated publishes an escrow created event
func (g *NATSGateway) PublishEscrowCreated(ctx context.Context, esc *models.Escrow) error {
	return g.publishEscrow(constants.SubjectEscrowCreated, esc)
}

// PublishEscrowReleased publishes an escrow released event
func (g *NATSGateway) PublishEscrowReleased(ctx context.Context, esc *models.Escrow) error {
	return g.publishEscrow(constants.SubjectEscrowReleased, esc)
}

// PublishEscrowRefunded publishes an escrow refunded event
func (g *NATSGateway) PublishEscrowRefunded(ctx context.Context, esc *models.Escrow) error {
	return g.publishEscrow(constants.SubjectEscrowRefunded, esc)
}

// PublishEscrowDisputed publishes an escrow disputed event
func (g *NATSGateway) PublishEscrowDisputed(ctx context.Context, esc *models.Escrow) error {
	return g.publishEscrow(constants.SubjectEscrowDisputed, esc)
}

// PublishAudit publishes a state transition to the audit stream
func (g *NATSGateway) PublishAudit(ctx context.Context, event *models.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectAuditEvents, data)
}

func (g *NATSGateway) publishEscrow(subject string, esc *models.Escrow) error {
	data, err := json.Marshal(esc)
	if err != nil {
		return err
	}
	return g.client.Publish(subject, data)
}

package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campusbid/campusbid/internal/pkg/constants"
	"github.com/campusbid/campusbid/internal/pkg/models"
	natspkg "github.com/campusbid/campusbid/internal/pkg/nats"
)

// NATSGateway implements the NATS publish operations for the payments service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishTransactionCompleted publishes a transaction completed event. The
// escrow service consumes this to create the escrow record.
func (g *NATSGateway) PublishTransactionCompleted(ctx context.Context, event *models.TransactionCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectTransactionCompleted, data)
}

// PublishTransactionFailed publishes a transaction failed event
func (g *NATSGateway) PublishTransactionFailed(ctx context.Context, transactionID, reason string) error {
	payload := map[string]interface{}{
		"transaction_id": transactionID,
		"reason":         reason,
		"timestamp":      time.Now(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectTransactionFailed, data)
}

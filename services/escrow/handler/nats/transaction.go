package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/campusbid/campusbid/internal/pkg/constants"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	natspkg "github.com/campusbid/campusbid/internal/pkg/nats"
	"github.com/campusbid/campusbid/services/escrow"
)

// NatsHandler consumes payment events for the escrow service
type NatsHandler struct {
	escrowUC   escrow.EscrowUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(escrowUC escrow.EscrowUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		escrowUC:   escrowUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to all upstream subjects
func (h *NatsHandler) InitConsumers() error {
	completedSub, err := h.natsClient.Subscribe(constants.SubjectTransactionCompleted, func(msg *nats.Msg) {
		if err := h.handleTransactionCompleted(msg.Data); err != nil {
			logger.ErrorCtx(context.Background(), "Error handling transaction completed event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to transaction completed events: %w", err)
	}
	h.subs = append(h.subs, completedSub)

	return nil
}

// handleTransactionCompleted locks an escrow for a freshly settled
// transaction. Redelivered events are absorbed by the usecase's idempotent
// create.
func (h *NatsHandler) handleTransactionCompleted(msg []byte) error {
	var event models.TransactionCompletedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal transaction completed event: %w", err)
	}

	logger.InfoCtx(context.Background(), "Received transaction completed event",
		logger.String("transaction_id", event.TransactionID),
	)

	_, err := h.escrowUC.CreateEscrowFromTransaction(context.Background(), &event)
	return err
}

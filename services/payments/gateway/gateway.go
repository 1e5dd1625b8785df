package gateway

import (
	"context"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

// InitiatePayment forwards to the provider HTTP gateway
func (g *PaymentGW) InitiatePayment(ctx context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResponse, error) {
	return g.providerGateway.InitiatePayment(ctx, req)
}

// VerifyPayment forwards to the provider HTTP gateway
func (g *PaymentGW) VerifyPayment(ctx context.Context, reference string) (*models.GatewayVerifyResponse, error) {
	return g.providerGateway.VerifyPayment(ctx, reference)
}

// PublishTransactionCompleted forwards to the NATS gateway implementation
func (g *PaymentGW) PublishTransactionCompleted(ctx context.Context, event *models.TransactionCompletedEvent) error {
	return g.natsGateway.PublishTransactionCompleted(ctx, event)
}

// PublishTransactionFailed forwards to the NATS gateway implementation
func (g *PaymentGW) PublishTransactionFailed(ctx context.Context, transactionID, reason string) error {
	return g.natsGateway.PublishTransactionFailed(ctx, transactionID, reason)
}

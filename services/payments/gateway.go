package payments

import (
	"context"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/campusbid/campusbid/services/payments PaymentGW

// PaymentGW defines the interface for payment provider calls and event
// publication. The provider may report "pending" indefinitely; VerifyPayment
// is the source of truth before any transaction is marked completed.
type PaymentGW interface {
	InitiatePayment(ctx context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResponse, error)
	VerifyPayment(ctx context.Context, reference string) (*models.GatewayVerifyResponse, error)
	PublishTransactionCompleted(ctx context.Context, event *models.TransactionCompletedEvent) error
	PublishTransactionFailed(ctx context.Context, transactionID, reason string) error
}

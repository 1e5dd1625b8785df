package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/campusbid/campusbid/services/payments TransactionUC

// TransactionUC defines the interface for transaction ledger use cases
type TransactionUC interface {
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	InitiatePayment(ctx context.Context, transactionID string, req *models.InitiatePaymentRequest) (*models.GatewayInitiateResponse, error)
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Transaction, error)
	ProcessCallback(ctx context.Context, callback *models.PaymentCallback) error
	CancelTransaction(ctx context.Context, transactionID string, callerID uuid.UUID) error
}

package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/campusbid/campusbid/services/payments TransactionRepo

// TransactionRepo defines the interface for transaction ledger operations.
// Status transitions are conditional: the update applies only when the row is
// still in the expected prior status, so concurrent writers cannot double-apply.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	GetTransactionByProviderRef(ctx context.Context, providerRef string) (*models.Transaction, error)
	GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Transaction, error)
	MarkProcessing(ctx context.Context, transactionID, providerRef string) error
	MarkCompleted(ctx context.Context, transactionID string) error
	MarkFailed(ctx context.Context, transactionID, reason string) error
	MarkCancelled(ctx context.Context, transactionID string) error
}

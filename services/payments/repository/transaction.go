package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// CreateTransaction inserts a new pending transaction. A duplicate idempotency
// key returns a Conflict error so the caller can re-read the existing row.
func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.ID = uuid.New()
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (
			id, transaction_id, buyer_id, seller_id, auction_id, amount,
			currency, payment_method, status, idempotency_key, metadata,
			created_at, updated_at
		) VALUES (
			:id, :transaction_id, :buyer_id, :seller_id, :auction_id, :amount,
			:currency, :payment_method, :status, :idempotency_key, :metadata,
			:created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Wrap(apperrors.KindConflict, "DUPLICATE_IDEMPOTENCY_KEY",
				"transaction already exists for idempotency key", err)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by its external identifier
func (r *TransactionRepo) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return r.getByField(ctx, "transaction_id", transactionID)
}

// GetTransactionByProviderRef retrieves a transaction by the provider's reference
func (r *TransactionRepo) GetTransactionByProviderRef(ctx context.Context, providerRef string) (*models.Transaction, error) {
	return r.getByField(ctx, "provider_ref", providerRef)
}

// GetTransactionByIdempotencyKey retrieves a transaction by its idempotency key
func (r *TransactionRepo) GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	return r.getByField(ctx, "idempotency_key", key)
}

func (r *TransactionRepo) getByField(ctx context.Context, field, value string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT * FROM transactions WHERE %s = $1`, field)

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction", value)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// ListTransactionsByUser lists transactions where the user is buyer or seller,
// newest first
func (r *TransactionRepo) ListTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE buyer_id = $1 OR seller_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	txns := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &txns, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// MarkProcessing moves a pending transaction to processing and records the
// provider reference. Fails if the transaction already left pending.
func (r *TransactionRepo) MarkProcessing(ctx context.Context, transactionID, providerRef string) error {
	query := `
		UPDATE transactions
		SET status = $1, provider_ref = $2, updated_at = $3
		WHERE transaction_id = $4 AND status = $5
	`
	return r.conditionalUpdate(ctx, transactionID, query,
		models.TransactionProcessing, providerRef, time.Now(), transactionID, models.TransactionPending)
}

// MarkCompleted moves a processing transaction to completed. Completing an
// already completed transaction is reported as a conflict so webhook retries
// can be acknowledged without side effects.
func (r *TransactionRepo) MarkCompleted(ctx context.Context, transactionID string) error {
	now := time.Now()
	query := `
		UPDATE transactions
		SET status = $1, completed_at = $2, updated_at = $2
		WHERE transaction_id = $3 AND status = $4
	`
	return r.conditionalUpdate(ctx, transactionID, query,
		models.TransactionCompleted, now, transactionID, models.TransactionProcessing)
}

// MarkFailed moves a pending or processing transaction to failed
func (r *TransactionRepo) MarkFailed(ctx context.Context, transactionID, reason string) error {
	query := `
		UPDATE transactions
		SET status = $1, failure_reason = $2, updated_at = $3
		WHERE transaction_id = $4 AND status IN ($5, $6)
	`
	return r.conditionalUpdate(ctx, transactionID, query,
		models.TransactionFailed, reason, time.Now(), transactionID,
		models.TransactionPending, models.TransactionProcessing)
}

// MarkCancelled cancels a transaction that has not started payment collection
func (r *TransactionRepo) MarkCancelled(ctx context.Context, transactionID string) error {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = $2
		WHERE transaction_id = $3 AND status = $4
	`
	return r.conditionalUpdate(ctx, transactionID, query,
		models.TransactionCancelled, time.Now(), transactionID, models.TransactionPending)
}

func (r *TransactionRepo) conditionalUpdate(ctx context.Context, transactionID, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.InvalidTransition("TRANSACTION_TRANSITION",
			fmt.Sprintf("transaction %s is not in the expected status", transactionID))
	}
	return nil
}

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

// CreateConfirmation inserts a new unused confirmation. A partial unique
// index on (transaction_id) WHERE NOT is_used enforces at most one active
// confirmation per transaction.
func (r *ConfirmationRepo) CreateConfirmation(ctx context.Context, conf *models.DeliveryConfirmation) error {
	conf.ID = uuid.New()
	conf.GeneratedAt = time.Now()

	query := `
		INSERT INTO delivery_confirmations (
			id, transaction_id, buyer_id, code_hash, generated_at, expires_at, is_used
		) VALUES (
			:id, :transaction_id, :buyer_id, :code_hash, :generated_at, :expires_at, :is_used
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, conf)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Wrap(apperrors.KindConflict, "ACTIVE_CONFIRMATION_EXISTS",
				"an unused confirmation already exists for transaction", err)
		}
		return fmt.Errorf("failed to insert confirmation: %w", err)
	}
	return nil
}

// GetLatestConfirmation retrieves the most recent confirmation for a
// transaction, consumed or not. Callers branch on IsUsed so a retried verify
// of a consumed code reports AlreadyUsed rather than NotFound.
func (r *ConfirmationRepo) GetLatestConfirmation(ctx context.Context, transactionID string) (*models.DeliveryConfirmation, error) {
	query := `
		SELECT * FROM delivery_confirmations
		WHERE transaction_id = $1
		ORDER BY generated_at DESC
		LIMIT 1
	`

	var conf models.DeliveryConfirmation
	err := r.db.GetContext(ctx, &conf, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("confirmation", transactionID)
		}
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return &conf, nil
}

// MarkUsed consumes a confirmation exactly once. A second caller sees an
// AlreadyUsed error.
func (r *ConfirmationRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE delivery_confirmations
		SET is_used = TRUE, used_at = $1
		WHERE id = $2 AND is_used = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark confirmation used: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindAlreadyUsed, "CONFIRMATION_USED",
			fmt.Sprintf("confirmation %s was already consumed", id))
	}
	return nil
}

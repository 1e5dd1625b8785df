package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

// CreateEscrow inserts a new locked escrow. A second insert for the same
// transaction returns a Conflict error so event redelivery stays idempotent.
func (r *EscrowRepo) CreateEscrow(ctx context.Context, esc *models.Escrow) error {
	esc.ID = uuid.New()
	now := time.Now()
	esc.CreatedAt = now
	esc.UpdatedAt = now
	esc.LockedAt = now
	esc.Status = models.EscrowLocked

	query := `
		INSERT INTO escrows (
			id, transaction_id, auction_id, buyer_id, seller_id, amount,
			currency, status, code_hash, code_ciphertext, locked_at, disputed,
			created_at, updated_at
		) VALUES (
			:id, :transaction_id, :auction_id, :buyer_id, :seller_id, :amount,
			:currency, :status, :code_hash, :code_ciphertext, :locked_at, :disputed,
			:created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, esc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Wrap(apperrors.KindConflict, "ESCROW_EXISTS",
				"escrow already exists for transaction", err)
		}
		return fmt.Errorf("failed to insert escrow: %w", err)
	}
	return nil
}

// GetEscrow retrieves an escrow by id
func (r *EscrowRepo) GetEscrow(ctx context.Context, id uuid.UUID) (*models.Escrow, error) {
	return r.getByField(ctx, "id", id)
}

// GetEscrowByTransactionID retrieves an escrow by its transaction
func (r *EscrowRepo) GetEscrowByTransactionID(ctx context.Context, transactionID string) (*models.Escrow, error) {
	return r.getByField(ctx, "transaction_id", transactionID)
}

// GetEscrowByAuctionID retrieves an escrow by its auction
func (r *EscrowRepo) GetEscrowByAuctionID(ctx context.Context, auctionID uuid.UUID) (*models.Escrow, error) {
	return r.getByField(ctx, "auction_id", auctionID)
}

func (r *EscrowRepo) getByField(ctx context.Context, field string, value interface{}) (*models.Escrow, error) {
	query := fmt.Sprintf(`SELECT * FROM escrows WHERE %s = $1`, field)

	var esc models.Escrow
	err := r.db.GetContext(ctx, &esc, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("escrow", fmt.Sprintf("%v", value))
		}
		return nil, fmt.Errorf("failed to get escrow: %w", err)
	}
	return &esc, nil
}

// MarkDeliveryConfirmed moves a locked escrow to pending_confirmation and
// erases the reversible code ciphertext. The hash stays for audit purposes.
func (r *EscrowRepo) MarkDeliveryConfirmed(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	query := `
		UPDATE escrows
		SET status = $1, confirmed_at = $2, code_ciphertext = NULL, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	return r.conditionalUpdate(ctx, id, query,
		models.EscrowPendingConfirmation, now, id, models.EscrowLocked)
}

// MarkDisputed freezes an escrow that is still held. Terminal escrows cannot
// be disputed.
func (r *EscrowRepo) MarkDisputed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE escrows
		SET status = $1, disputed = TRUE, updated_at = $2
		WHERE id = $3 AND status IN ($4, $5)
	`
	return r.conditionalUpdate(ctx, id, query,
		models.EscrowDisputed, time.Now(), id,
		models.EscrowLocked, models.EscrowPendingConfirmation)
}

// ReopenEscrow returns a disputed escrow to its prior held status after a
// rejected dispute. The disputed flag stays set as history.
func (r *EscrowRepo) ReopenEscrow(ctx context.Context, id uuid.UUID, to models.EscrowStatus) error {
	if !to.Held() {
		return apperrors.InvalidTransition("ESCROW_TRANSITION",
			fmt.Sprintf("cannot reopen escrow %s into status %s", id, to))
	}

	query := `
		UPDATE escrows
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	return r.conditionalUpdate(ctx, id, query,
		to, time.Now(), id, models.EscrowDisputed)
}

// ReleaseEscrow moves an escrow to released and runs the payout inside the
// same database transaction. If the payout fails the status change is rolled
// back, so exactly one payout can ever be committed for an escrow.
func (r *EscrowRepo) ReleaseEscrow(ctx context.Context, id uuid.UUID, from models.EscrowStatus, notes *string, payout func(ctx context.Context) error) error {
	now := time.Now()
	query := `
		UPDATE escrows
		SET status = $1, released_at = $2, resolution_notes = COALESCE($3, resolution_notes), updated_at = $2
		WHERE id = $4 AND status = $5
	`
	return r.settle(ctx, id, payout, query,
		models.EscrowReleased, now, notes, id, from)
}

// RefundEscrow moves an escrow to refunded and runs the provider refund
// inside the same database transaction
func (r *EscrowRepo) RefundEscrow(ctx context.Context, id uuid.UUID, from models.EscrowStatus, notes *string, refund func(ctx context.Context) error) error {
	now := time.Now()
	query := `
		UPDATE escrows
		SET status = $1, refunded_at = $2, resolution_notes = COALESCE($3, resolution_notes), updated_at = $2
		WHERE id = $4 AND status = $5
	`
	return r.settle(ctx, id, refund, query,
		models.EscrowRefunded, now, notes, id, from)
}

// settle applies a terminal transition and a money movement atomically. The
// row lock taken by the UPDATE serializes concurrent settlement attempts;
// the loser of the race sees zero affected rows after the winner commits.
func (r *EscrowRepo) settle(ctx context.Context, id uuid.UUID, move func(ctx context.Context) error, query string, args ...interface{}) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update escrow status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.InvalidTransition("ESCROW_TRANSITION",
			fmt.Sprintf("escrow %s is not in the expected status", id))
	}

	if err := move(ctx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit escrow settlement: %w", err)
	}
	return nil
}

// HeldBySeller returns how many escrows still hold the seller's funds and
// their total amount
func (r *EscrowRepo) HeldBySeller(ctx context.Context, sellerID uuid.UUID) (int, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM escrows
		WHERE seller_id = $1 AND status IN ($2, $3, $4)
	`

	var count int
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, sellerID,
		models.EscrowLocked, models.EscrowPendingConfirmation, models.EscrowDisputed).
		Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to count held escrows: %w", err)
	}
	return count, total, nil
}

// ListConfirmedBefore lists escrows confirmed before the cutoff that are
// still awaiting release, oldest first
func (r *EscrowRepo) ListConfirmedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*models.Escrow, error) {
	query := `
		SELECT * FROM escrows
		WHERE status = $1 AND confirmed_at < $2
		ORDER BY confirmed_at ASC
		LIMIT $3
	`

	escrows := []*models.Escrow{}
	err := r.db.SelectContext(ctx, &escrows, query, models.EscrowPendingConfirmation, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed escrows: %w", err)
	}
	return escrows, nil
}

func (r *EscrowRepo) conditionalUpdate(ctx context.Context, id uuid.UUID, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update escrow status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.InvalidTransition("ESCROW_TRANSITION",
			fmt.Sprintf("escrow %s is not in the expected status", id))
	}
	return nil
}

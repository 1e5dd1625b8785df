package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

// CreateDispute inserts a new open dispute
func (r *DisputeRepo) CreateDispute(ctx context.Context, dispute *models.Dispute) error {
	dispute.ID = uuid.New()
	now := time.Now()
	dispute.CreatedAt = now
	dispute.UpdatedAt = now
	dispute.Status = models.DisputeOpen
	dispute.Resolution = models.ResolutionNone

	query := `
		INSERT INTO disputes (
			id, escrow_id, auction_id, buyer_id, seller_id, reason, description,
			evidence, status, resolution, deadline, created_at, updated_at
		) VALUES (
			:id, :escrow_id, :auction_id, :buyer_id, :seller_id, :reason, :description,
			:evidence, :status, :resolution, :deadline, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, dispute)
	if err != nil {
		return fmt.Errorf("failed to insert dispute: %w", err)
	}
	return nil
}

// GetDispute retrieves a dispute by id
func (r *DisputeRepo) GetDispute(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	query := `SELECT * FROM disputes WHERE id = $1`

	var dispute models.Dispute
	err := r.db.GetContext(ctx, &dispute, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("dispute", id.String())
		}
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}
	return &dispute, nil
}

// GetOpenDisputeByEscrow retrieves the unresolved dispute for an escrow
func (r *DisputeRepo) GetOpenDisputeByEscrow(ctx context.Context, escrowID uuid.UUID) (*models.Dispute, error) {
	query := `
		SELECT * FROM disputes
		WHERE escrow_id = $1 AND status IN ($2, $3)
	`

	var dispute models.Dispute
	err := r.db.GetContext(ctx, &dispute, query, escrowID, models.DisputeOpen, models.DisputeUnderReview)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("dispute", escrowID.String())
		}
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}
	return &dispute, nil
}

// ListDisputesByStatus lists disputes in a workflow state, oldest first
func (r *DisputeRepo) ListDisputesByStatus(ctx context.Context, status models.DisputeStatus, limit, offset int) ([]*models.Dispute, error) {
	query := `
		SELECT * FROM disputes
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	disputes := []*models.Dispute{}
	err := r.db.SelectContext(ctx, &disputes, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list disputes: %w", err)
	}
	return disputes, nil
}

// MarkUnderReview assigns a reviewer to an open dispute
func (r *DisputeRepo) MarkUnderReview(ctx context.Context, id, reviewerID uuid.UUID) error {
	query := `
		UPDATE disputes
		SET status = $1, reviewer_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	return r.conditionalUpdate(ctx, id, query,
		models.DisputeUnderReview, reviewerID, time.Now(), id, models.DisputeOpen)
}

// ResolveDispute closes a dispute with its adjudication. Rejected disputes
// record resolution "none".
func (r *DisputeRepo) ResolveDispute(ctx context.Context, id uuid.UUID, resolution models.DisputeResolution, note string, reviewerID uuid.UUID) error {
	status := models.DisputeResolved
	if resolution == models.ResolutionNone {
		status = models.DisputeRejected
	}

	now := time.Now()
	query := `
		UPDATE disputes
		SET status = $1, resolution = $2, resolution_note = $3, reviewer_id = $4,
			resolved_at = $5, updated_at = $5
		WHERE id = $6 AND status IN ($7, $8)
	`
	return r.conditionalUpdate(ctx, id, query,
		status, resolution, note, reviewerID, now, id,
		models.DisputeOpen, models.DisputeUnderReview)
}

// AppendEvidence adds evidence references to a dispute that is still open
func (r *DisputeRepo) AppendEvidence(ctx context.Context, id uuid.UUID, evidence models.EvidenceList) error {
	query := `
		UPDATE disputes
		SET evidence = evidence || $1, updated_at = $2
		WHERE id = $3 AND status IN ($4, $5)
	`
	return r.conditionalUpdate(ctx, id, query,
		evidence, time.Now(), id, models.DisputeOpen, models.DisputeUnderReview)
}

func (r *DisputeRepo) conditionalUpdate(ctx context.Context, id uuid.UUID, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update dispute: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.InvalidTransition("DISPUTE_TRANSITION",
			fmt.Sprintf("dispute %s is not in the expected status", id))
	}
	return nil
}

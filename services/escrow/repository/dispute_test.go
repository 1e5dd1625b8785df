package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

func setupDisputeRepoTest(t *testing.T) (*DisputeRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &DisputeRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func disputeRows(dispute *models.Dispute) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "escrow_id", "auction_id", "buyer_id", "seller_id", "reason",
		"description", "evidence", "status", "resolution", "resolution_note",
		"reviewer_id", "deadline", "created_at", "updated_at", "resolved_at",
	}).AddRow(
		dispute.ID, dispute.EscrowID, dispute.AuctionID, dispute.BuyerID, dispute.SellerID, dispute.Reason,
		dispute.Description, []byte(`[]`), dispute.Status, dispute.Resolution, dispute.ResolutionNote,
		dispute.ReviewerID, dispute.Deadline, dispute.CreatedAt, dispute.UpdatedAt, dispute.ResolvedAt,
	)
}

func sampleDispute() *models.Dispute {
	now := time.Now()
	return &models.Dispute{
		ID:          uuid.New(),
		EscrowID:    uuid.New(),
		BuyerID:     uuid.New(),
		SellerID:    uuid.New(),
		Reason:      models.ReasonNotReceived,
		Description: "never met the seller",
		Status:      models.DisputeOpen,
		Resolution:  models.ResolutionNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateDispute(t *testing.T) {
	repo, mock, cleanup := setupDisputeRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO disputes").
		WillReturnResult(sqlmock.NewResult(1, 1))

	dispute := sampleDispute()
	dispute.ID = uuid.Nil
	dispute.Status = ""
	dispute.Resolution = ""

	err := repo.CreateDispute(context.Background(), dispute)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, dispute.ID)
	assert.Equal(t, models.DisputeOpen, dispute.Status)
	assert.Equal(t, models.ResolutionNone, dispute.Resolution)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDispute_NotFound(t *testing.T) {
	repo, mock, cleanup := setupDisputeRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT \\* FROM disputes WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDispute(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetOpenDisputeByEscrow(t *testing.T) {
	repo, mock, cleanup := setupDisputeRepoTest(t)
	defer cleanup()

	dispute := sampleDispute()
	mock.ExpectQuery("SELECT \\* FROM disputes").
		WithArgs(dispute.EscrowID, models.DisputeOpen, models.DisputeUnderReview).
		WillReturnRows(disputeRows(dispute))

	found, err := repo.GetOpenDisputeByEscrow(context.Background(), dispute.EscrowID)
	require.NoError(t, err)
	assert.Equal(t, dispute.ID, found.ID)
}

func TestMarkUnderReview(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Open dispute moves under review",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE disputes").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Closed dispute loses the conditional update",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE disputes").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupDisputeRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.MarkUnderReview(context.Background(), uuid.New(), uuid.New())
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResolveDispute_RejectionRecordsRejectedStatus(t *testing.T) {
	repo, mock, cleanup := setupDisputeRepoTest(t)
	defer cleanup()

	id := uuid.New()
	reviewerID := uuid.New()

	mock.ExpectExec("UPDATE disputes").
		WithArgs(models.DisputeRejected, models.ResolutionNone, "no grounds", reviewerID,
			sqlmock.AnyArg(), id, models.DisputeOpen, models.DisputeUnderReview).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ResolveDispute(context.Background(), id, models.ResolutionNone, "no grounds", reviewerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveDispute_AdjudicationRecordsResolvedStatus(t *testing.T) {
	repo, mock, cleanup := setupDisputeRepoTest(t)
	defer cleanup()

	id := uuid.New()
	reviewerID := uuid.New()

	mock.ExpectExec("UPDATE disputes").
		WithArgs(models.DisputeResolved, models.ResolutionRefundBuyer, "refund", reviewerID,
			sqlmock.AnyArg(), id, models.DisputeOpen, models.DisputeUnderReview).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ResolveDispute(context.Background(), id, models.ResolutionRefundBuyer, "refund", reviewerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvidence_ClosedDispute(t *testing.T) {
	repo, mock, cleanup := setupDisputeRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE disputes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AppendEvidence(context.Background(), uuid.New(), models.EvidenceList{"photos/crack.jpg"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/codes"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/services/escrow/mocks"
)

func setupEscrowUCTest(t *testing.T) (*EscrowUC, *mocks.MockEscrowRepo, *mocks.MockEscrowGW, func()) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockEscrowRepo(ctrl)
	mockGW := mocks.NewMockEscrowGW(ctrl)

	cfg := &models.Config{
		Escrow: models.EscrowConfig{
			CodeTTLHours:     72,
			LockoutThreshold: 5,
			AutoReleaseHours: 24,
			CodeSecret:       "unit-test-secret",
		},
	}

	uc, err := NewEscrowUC(mockRepo, mockGW, cfg)
	require.NoError(t, err)
	return uc, mockRepo, mockGW, ctrl.Finish
}

func completedEvent() *models.TransactionCompletedEvent {
	auctionID := uuid.New()
	return &models.TransactionCompletedEvent{
		TransactionID: "TXN-AB12CD34",
		AuctionID:     &auctionID,
		BuyerID:       uuid.New(),
		SellerID:      uuid.New(),
		Amount:        decimal.NewFromInt(150000),
		Currency:      "IDR",
	}
}

func lockedEscrow(t *testing.T, code string) *models.Escrow {
	t.Helper()
	hash, err := codes.Hash(code)
	require.NoError(t, err)

	return &models.Escrow{
		ID:            uuid.New(),
		TransactionID: "TXN-AB12CD34",
		BuyerID:       uuid.New(),
		SellerID:      uuid.New(),
		Amount:        decimal.NewFromInt(150000),
		Currency:      "IDR",
		Status:        models.EscrowLocked,
		CodeHash:      hash,
		LockedAt:      time.Now().Add(-time.Hour),
	}
}

func TestCreateEscrowFromTransaction_Success(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	event := completedEvent()
	var created *models.Escrow

	mockRepo.EXPECT().GetEscrowByTransactionID(gomock.Any(), event.TransactionID).
		Return(nil, apperrors.NotFound("escrow", event.TransactionID))
	mockRepo.EXPECT().CreateEscrow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, esc *models.Escrow) error {
			esc.ID = uuid.New()
			esc.Status = models.EscrowLocked
			esc.LockedAt = time.Now()
			created = esc
			return nil
		})
	mockGW.EXPECT().PublishDeliveryCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.DeliveryCodeEvent) error {
			// The code handed to notifications must match the stored hash
			assert.True(t, codes.Compare(created.CodeHash, ev.Code))
			assert.Equal(t, event.BuyerID, ev.BuyerID)
			return nil
		})
	mockGW.EXPECT().PublishEscrowCreated(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	esc, err := uc.CreateEscrowFromTransaction(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, event.TransactionID, esc.TransactionID)
	assert.NotEmpty(t, esc.CodeHash)
	require.NotNil(t, esc.CodeCiphertext)

	// The ciphertext must decrypt back to the code behind the hash
	plain, err := uc.cipher.Decrypt(*esc.CodeCiphertext)
	require.NoError(t, err)
	assert.True(t, codes.Compare(esc.CodeHash, plain))
}

func TestCreateEscrowFromTransaction_RedeliveryReturnsExisting(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	event := completedEvent()
	existing := &models.Escrow{ID: uuid.New(), TransactionID: event.TransactionID}

	mockRepo.EXPECT().GetEscrowByTransactionID(gomock.Any(), event.TransactionID).
		Return(existing, nil)

	esc, err := uc.CreateEscrowFromTransaction(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, esc.ID)
}

func TestCreateEscrowFromTransaction_InsertRaceReturnsWinner(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	event := completedEvent()
	winner := &models.Escrow{ID: uuid.New(), TransactionID: event.TransactionID}

	mockRepo.EXPECT().GetEscrowByTransactionID(gomock.Any(), event.TransactionID).
		Return(nil, apperrors.NotFound("escrow", event.TransactionID))
	mockRepo.EXPECT().CreateEscrow(gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindConflict, "ESCROW_EXISTS", "duplicate"))
	mockRepo.EXPECT().GetEscrowByTransactionID(gomock.Any(), event.TransactionID).
		Return(winner, nil)

	esc, err := uc.CreateEscrowFromTransaction(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, esc.ID)
}

func TestCreateEscrowFromTransaction_Validation(t *testing.T) {
	uc, _, _, finish := setupEscrowUCTest(t)
	defer finish()

	testCases := []struct {
		name   string
		mutate func(event *models.TransactionCompletedEvent)
		code   string
	}{
		{
			name:   "Missing transaction id",
			mutate: func(event *models.TransactionCompletedEvent) { event.TransactionID = "" },
			code:   "MISSING_TRANSACTION",
		},
		{
			name:   "Zero amount",
			mutate: func(event *models.TransactionCompletedEvent) { event.Amount = decimal.Zero },
			code:   "INVALID_AMOUNT",
		},
		{
			name:   "Negative amount",
			mutate: func(event *models.TransactionCompletedEvent) { event.Amount = decimal.NewFromInt(-100) },
			code:   "INVALID_AMOUNT",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := completedEvent()
			tc.mutate(event)

			_, err := uc.CreateEscrowFromTransaction(context.Background(), event)
			require.Error(t, err)
			assert.Equal(t, tc.code, apperrors.CodeOf(err))
		})
	}
}

func TestGetBuyerCode(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "852963")
	ciphertext, err := uc.cipher.Encrypt("852963")
	require.NoError(t, err)
	esc.CodeCiphertext = &ciphertext

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	code, err := uc.GetBuyerCode(context.Background(), esc.ID, esc.BuyerID)
	require.NoError(t, err)
	assert.Equal(t, "852963", code)
}

func TestGetBuyerCode_NotBuyer(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "852963")
	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	_, err := uc.GetBuyerCode(context.Background(), esc.ID, esc.SellerID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestGetBuyerCode_AlreadyConsumed(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "852963")
	esc.CodeCiphertext = nil
	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	_, err := uc.GetBuyerCode(context.Background(), esc.ID, esc.BuyerID)
	require.Error(t, err)
	assert.Equal(t, "CODE_CONSUMED", apperrors.CodeOf(err))
}

func TestVerifyDelivery_Success(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().IsCodeLocked(gomock.Any(), esc.ID.String()).Return(false, nil)
	mockRepo.EXPECT().ClearCodeAttempts(gomock.Any(), esc.ID.String()).Return(nil)
	mockRepo.EXPECT().MarkDeliveryConfirmed(gomock.Any(), esc.ID).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.SellerID, "135790")
	require.NoError(t, err)
}

func TestVerifyDelivery_WrongCodeCountsAttempt(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().IsCodeLocked(gomock.Any(), esc.ID.String()).Return(false, nil)
	mockRepo.EXPECT().IncrementCodeAttempts(gomock.Any(), esc.ID.String()).Return(int64(1), nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.SellerID, "000000")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidCode, apperrors.KindOf(err))
}

func TestVerifyDelivery_LockoutAtThreshold(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().IsCodeLocked(gomock.Any(), esc.ID.String()).Return(false, nil)
	mockRepo.EXPECT().IncrementCodeAttempts(gomock.Any(), esc.ID.String()).Return(int64(5), nil)
	mockRepo.EXPECT().LockCode(gomock.Any(), esc.ID.String()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.SellerID, "000000")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCodeLocked, apperrors.KindOf(err))
}

func TestVerifyDelivery_LockedRejectsWithoutCompare(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().IsCodeLocked(gomock.Any(), esc.ID.String()).Return(true, nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	// Even the correct code is rejected once the record is locked
	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.SellerID, "135790")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCodeLocked, apperrors.KindOf(err))
}

func TestVerifyDelivery_NotSeller(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.BuyerID, "135790")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestVerifyDelivery_NotLocked(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	esc.Status = models.EscrowDisputed
	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.SellerID, "135790")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
}

func TestVerifyDelivery_ExpiredCode(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	esc.LockedAt = time.Now().Add(-80 * time.Hour)
	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	err := uc.VerifyDelivery(context.Background(), esc.ID, esc.SellerID, "135790")
	require.Error(t, err)
	assert.Equal(t, "CODE_EXPIRED", apperrors.CodeOf(err))
}

func TestReleaseEscrow_Success(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	esc.Status = models.EscrowPendingConfirmation

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().ReleaseEscrow(gomock.Any(), esc.ID, models.EscrowPendingConfirmation, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ models.EscrowStatus, _ *string, payout func(ctx context.Context) error) error {
			return payout(ctx)
		})
	mockGW.EXPECT().Payout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.GatewayPayoutRequest) (*models.GatewayPayoutResponse, error) {
			assert.Equal(t, esc.SellerID, req.SellerID)
			assert.True(t, esc.Amount.Equal(req.Amount))
			return &models.GatewayPayoutResponse{PayoutReference: "PO-1"}, nil
		})
	mockGW.EXPECT().PublishEscrowReleased(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ReleaseEscrow(context.Background(), esc.ID, esc.BuyerID)
	require.NoError(t, err)
}

func TestReleaseEscrow_NotBuyer(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	err := uc.ReleaseEscrow(context.Background(), esc.ID, esc.SellerID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestReleaseEscrow_PayoutFailureLeavesStatus(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	esc.Status = models.EscrowPendingConfirmation

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().ReleaseEscrow(gomock.Any(), esc.ID, models.EscrowPendingConfirmation, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ models.EscrowStatus, _ *string, payout func(ctx context.Context) error) error {
			// The repository rolls the row back when the payout fails
			return payout(ctx)
		})
	mockGW.EXPECT().Payout(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.GatewayFailure("payout", errors.New("provider unavailable")))

	err := uc.ReleaseEscrow(context.Background(), esc.ID, esc.BuyerID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindGatewayFailure, apperrors.KindOf(err))
}

func TestRefundEscrow_Success(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	req := &models.RefundRequest{Reason: "seller never shipped"}

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	mockRepo.EXPECT().RefundEscrow(gomock.Any(), esc.ID, models.EscrowLocked, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ models.EscrowStatus, notes *string, refund func(ctx context.Context) error) error {
			require.NotNil(t, notes)
			assert.Equal(t, req.Reason, *notes)
			return refund(ctx)
		})
	mockGW.EXPECT().Refund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gwReq *models.GatewayRefundRequest) (*models.GatewayRefundResponse, error) {
			assert.Equal(t, esc.TransactionID, gwReq.Reference)
			assert.True(t, esc.Amount.Equal(gwReq.Amount))
			return &models.GatewayRefundResponse{RefundReference: "RF-1"}, nil
		})
	mockGW.EXPECT().PublishEscrowRefunded(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RefundEscrow(context.Background(), esc.ID, "admin", req)
	require.NoError(t, err)
}

func TestRefundEscrow_FromPendingConfirmation(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	esc.Status = models.EscrowPendingConfirmation
	req := &models.RefundRequest{Reason: "buyer and seller agreed to cancel"}

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)
	// The conditional update expects the escrow's current held status
	mockRepo.EXPECT().RefundEscrow(gomock.Any(), esc.ID, models.EscrowPendingConfirmation, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ models.EscrowStatus, _ *string, refund func(ctx context.Context) error) error {
			return refund(ctx)
		})
	mockGW.EXPECT().Refund(gomock.Any(), gomock.Any()).
		Return(&models.GatewayRefundResponse{RefundReference: "RF-2"}, nil)
	mockGW.EXPECT().PublishEscrowRefunded(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RefundEscrow(context.Background(), esc.ID, "admin", req)
	require.NoError(t, err)
}

func TestRefundEscrow_SettledEscrow(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	esc := lockedEscrow(t, "135790")
	esc.Status = models.EscrowReleased
	req := &models.RefundRequest{Reason: "too late"}

	mockRepo.EXPECT().GetEscrow(gomock.Any(), esc.ID).Return(esc, nil)

	err := uc.RefundEscrow(context.Background(), esc.ID, "admin", req)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
}

func TestCheckWithdrawalEligibility(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	sellerID := uuid.New()

	mockRepo.EXPECT().HeldBySeller(gomock.Any(), sellerID).
		Return(2, decimal.NewFromInt(500000), nil)

	check, err := uc.CheckWithdrawalEligibility(context.Background(), sellerID)
	require.NoError(t, err)
	assert.False(t, check.Eligible)
	assert.Equal(t, 2, check.HeldEscrows)
	assert.True(t, check.Amount.Equal(decimal.NewFromInt(500000)))
}

func TestCheckWithdrawalEligibility_NoHeldEscrows(t *testing.T) {
	uc, mockRepo, _, finish := setupEscrowUCTest(t)
	defer finish()

	sellerID := uuid.New()

	mockRepo.EXPECT().HeldBySeller(gomock.Any(), sellerID).
		Return(0, decimal.Zero, nil)

	check, err := uc.CheckWithdrawalEligibility(context.Background(), sellerID)
	require.NoError(t, err)
	assert.True(t, check.Eligible)
	assert.Equal(t, 0, check.HeldEscrows)
}

func TestAutoReleaseDue_SkipsFailures(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupEscrowUCTest(t)
	defer finish()

	good := lockedEscrow(t, "111111")
	bad := lockedEscrow(t, "222222")
	good.Status = models.EscrowPendingConfirmation
	bad.Status = models.EscrowPendingConfirmation

	mockRepo.EXPECT().ListConfirmedBefore(gomock.Any(), gomock.Any(), 50).
		Return([]*models.Escrow{bad, good}, nil)
	mockRepo.EXPECT().ReleaseEscrow(gomock.Any(), bad.ID, models.EscrowPendingConfirmation, gomock.Nil(), gomock.Any()).
		Return(apperrors.GatewayFailure("payout", errors.New("provider unavailable")))
	mockRepo.EXPECT().ReleaseEscrow(gomock.Any(), good.ID, models.EscrowPendingConfirmation, gomock.Nil(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishEscrowReleased(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	released, err := uc.AutoReleaseDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, released)
}

func TestAutoReleaseDue_Disabled(t *testing.T) {
	uc, _, _, finish := setupEscrowUCTest(t)
	defer finish()

	uc.cfg.Escrow.AutoReleaseHours = 0

	released, err := uc.AutoReleaseDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, released)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	"github.com/campusbid/campusbid/internal/pkg/codes"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/services/escrow"
)

// codeVerifier is the single code-check path shared by escrow delivery
// verification and transaction-keyed confirmations. Every failed attempt is
// counted; at the lockout threshold the record is locked permanently and only
// staff intervention can unlock it.
type codeVerifier struct {
	repo      escrow.EscrowRepo
	threshold int64
}

func newCodeVerifier(repo escrow.EscrowRepo, threshold int) *codeVerifier {
	if threshold <= 0 {
		threshold = 5
	}
	return &codeVerifier{
		repo:      repo,
		threshold: int64(threshold),
	}
}

// verify checks the presented code against the stored hash for one record.
// The plaintext code is never logged.
func (v *codeVerifier) verify(ctx context.Context, recordID, hash, code string) error {
	locked, err := v.repo.IsCodeLocked(ctx, recordID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "ATTEMPT_STORE", "failed to check code lock", err)
	}
	if locked {
		return apperrors.New(apperrors.KindCodeLocked, "CODE_LOCKED",
			"too many failed attempts, contact support")
	}

	if codes.Compare(hash, code) {
		if err := v.repo.ClearCodeAttempts(ctx, recordID); err != nil {
			logger.WarnCtx(ctx, "Failed to clear code attempt counter",
				logger.String("record_id", recordID),
				logger.ErrorField(err),
			)
		}
		return nil
	}

	count, err := v.repo.IncrementCodeAttempts(ctx, recordID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "ATTEMPT_STORE", "failed to count attempt", err)
	}
	if count >= v.threshold {
		if err := v.repo.LockCode(ctx, recordID); err != nil {
			return apperrors.Wrap(apperrors.KindInternal, "ATTEMPT_STORE", "failed to lock code", err)
		}
		logger.WarnCtx(ctx, "Code locked after repeated failures",
			logger.String("record_id", recordID),
			logger.Int64("attempts", count),
		)
		return apperrors.New(apperrors.KindCodeLocked, "CODE_LOCKED",
			"too many failed attempts, contact support")
	}

	return apperrors.New(apperrors.KindInvalidCode, "INVALID_CODE",
		fmt.Sprintf("incorrect code, %d attempts remaining", v.threshold-count))
}

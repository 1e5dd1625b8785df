package repository

import (
	"context"
	"fmt"

	"github.com/campusbid/campusbid/internal/pkg/constants"
)

// Delivery code attempt counters live in Redis. The lock key has no TTL:
// once a code is locked it stays locked until staff intervenes.

// IncrementCodeAttempts adds one failed attempt for a code record and returns
// the new count
func (r *EscrowRepo) IncrementCodeAttempts(ctx context.Context, recordID string) (int64, error) {
	key := fmt.Sprintf(constants.KeyCodeAttempts, recordID)
	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment code attempts: %w", err)
	}
	return count, nil
}

// IsCodeLocked reports whether the code record is permanently locked
func (r *EscrowRepo) IsCodeLocked(ctx context.Context, recordID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyCodeLock, recordID)
	locked, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check code lock: %w", err)
	}
	return locked, nil
}

// LockCode permanently locks a code record after too many failed attempts
func (r *EscrowRepo) LockCode(ctx context.Context, recordID string) error {
	key := fmt.Sprintf(constants.KeyCodeLock, recordID)
	if err := r.redisClient.Set(ctx, key, "1", 0); err != nil {
		return fmt.Errorf("failed to lock code: %w", err)
	}
	return nil
}

// ClearCodeAttempts removes the attempt counter after a successful
// verification
func (r *EscrowRepo) ClearCodeAttempts(ctx context.Context, recordID string) error {
	key := fmt.Sprintf(constants.KeyCodeAttempts, recordID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear code attempts: %w", err)
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryConfirmation is a one-time confirmation code keyed by transaction.
// At most one unused confirmation may exist per transaction; the used flag is
// set exactly once and is permanent.
type DeliveryConfirmation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TransactionID string     `json:"transaction_id" db:"transaction_id"`
	BuyerID       uuid.UUID  `json:"buyer_id" db:"buyer_id"`
	CodeHash      string     `json:"-" db:"code_hash"`
	GeneratedAt   time.Time  `json:"generated_at" db:"generated_at"`
	ExpiresAt     time.Time  `json:"expires_at" db:"expires_at"`
	UsedAt        *time.Time `json:"used_at,omitempty" db:"used_at"`
	IsUsed        bool       `json:"is_used" db:"is_used"`
}

// Expired reports whether the confirmation is past its expiry at the given time
func (c *DeliveryConfirmation) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// GenerateConfirmationRequest is the buyer's request for a confirmation code
type GenerateConfirmationRequest struct {
	TransactionID string    `json:"transaction_id"`
	BuyerID       uuid.UUID `json:"buyer_id"`
}

// VerifyConfirmationRequest is the seller's code check against a transaction
type VerifyConfirmationRequest struct {
	TransactionID string    `json:"transaction_id"`
	Code          string    `json:"code"`
	CallerID      uuid.UUID `json:"caller_id"`
}

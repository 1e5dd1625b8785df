package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EscrowStatus represents the state of funds held in trust
type EscrowStatus string

const (
	EscrowLocked              EscrowStatus = "locked"
	EscrowPendingConfirmation EscrowStatus = "pending_confirmation"
	EscrowReleased            EscrowStatus = "released"
	EscrowRefunded            EscrowStatus = "refunded"
	EscrowDisputed            EscrowStatus = "disputed"
)

// IsTerminal reports whether no further transition is permitted
func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowReleased || s == EscrowRefunded
}

// Held reports whether the escrow still blocks seller withdrawal
func (s EscrowStatus) Held() bool {
	return s == EscrowLocked || s == EscrowPendingConfirmation
}

// Escrow represents funds held in trust between buyer and seller pending
// delivery confirmation. The delivery code is stored twice: a one-way hash
// for verification and a reversible ciphertext for buyer retrieval while the
// escrow is locked. The ciphertext is erased on first successful verification.
type Escrow struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	TransactionID   string          `json:"transaction_id" db:"transaction_id"`
	AuctionID       *uuid.UUID      `json:"auction_id,omitempty" db:"auction_id"`
	BuyerID         uuid.UUID       `json:"buyer_id" db:"buyer_id"`
	SellerID        uuid.UUID       `json:"seller_id" db:"seller_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Currency        string          `json:"currency" db:"currency"`
	Status          EscrowStatus    `json:"status" db:"status"`
	CodeHash        string          `json:"-" db:"code_hash"`
	CodeCiphertext  *string         `json:"-" db:"code_ciphertext"`
	LockedAt        time.Time       `json:"locked_at" db:"locked_at"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty" db:"confirmed_at"`
	ReleasedAt      *time.Time      `json:"released_at,omitempty" db:"released_at"`
	RefundedAt      *time.Time      `json:"refunded_at,omitempty" db:"refunded_at"`
	Disputed        bool            `json:"disputed" db:"disputed"`
	ResolutionNotes *string         `json:"resolution_notes,omitempty" db:"resolution_notes"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateEscrowRequest creates an escrow for a completed transaction
type CreateEscrowRequest struct {
	TransactionID string     `json:"transaction_id"`
	AuctionID     *uuid.UUID `json:"auction_id,omitempty"`
}

// VerifyDeliveryRequest carries the buyer's delivery code presented by the seller
type VerifyDeliveryRequest struct {
	Code string `json:"code"`
}

// RefundRequest carries the reason an escrow is refunded to the buyer
type RefundRequest struct {
	Reason string `json:"reason"`
}

// WithdrawalCheck is the payout collaborator's eligibility query result
type WithdrawalCheck struct {
	SellerID    uuid.UUID       `json:"seller_id"`
	Amount      decimal.Decimal `json:"amount"`
	Eligible    bool            `json:"eligible"`
	HeldEscrows int             `json:"held_escrows"`
}

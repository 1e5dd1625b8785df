package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCompletedEvent is published once a transaction reaches completed.
// The escrow service consumes it to create the escrow record.
type TransactionCompletedEvent struct {
	TransactionID string          `json:"transaction_id"`
	AuctionID     *uuid.UUID      `json:"auction_id,omitempty"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	SellerID      uuid.UUID       `json:"seller_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
}

// DeliveryCodeEvent hands the plaintext delivery code to the notification
// collaborator exactly once, at generation time. It must never be logged.
type DeliveryCodeEvent struct {
	EscrowID  uuid.UUID `json:"escrow_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditEvent records one state transition for the audit collaborator.
// Audit failures never block the primary transition.
type AuditEvent struct {
	Actor        string    `json:"actor"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

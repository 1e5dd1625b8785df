package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a payment transaction
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionCancelled  TransactionStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further lifecycle transitions
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionCompleted, TransactionFailed, TransactionCancelled:
		return true
	default:
		return false
	}
}

// Metadata is an opaque key/value annotation stored as JSONB
type Metadata map[string]string

// Value implements driver.Valuer for JSONB storage
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata source type %T", src)
	}
}

// Transaction represents a payment intent and its lifecycle in the ledger.
// TransactionID is the externally stable opaque identifier (TXN-...), distinct
// from the internal primary key.
type Transaction struct {
	ID             uuid.UUID         `json:"-" db:"id"`
	TransactionID  string            `json:"transaction_id" db:"transaction_id"`
	BuyerID        uuid.UUID         `json:"buyer_id" db:"buyer_id"`
	SellerID       uuid.UUID         `json:"seller_id" db:"seller_id"`
	AuctionID      *uuid.UUID        `json:"auction_id,omitempty" db:"auction_id"`
	Amount         decimal.Decimal   `json:"amount" db:"amount"`
	Currency       string            `json:"currency" db:"currency"`
	PaymentMethod  string            `json:"payment_method" db:"payment_method"`
	Status         TransactionStatus `json:"status" db:"status"`
	IdempotencyKey string            `json:"idempotency_key" db:"idempotency_key"`
	ProviderRef    *string           `json:"provider_ref,omitempty" db:"provider_ref"`
	FailureReason  *string           `json:"failure_reason,omitempty" db:"failure_reason"`
	Metadata       Metadata          `json:"metadata,omitempty" db:"metadata"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
}

// CreateTransactionRequest is the payload for creating a payment intent
type CreateTransactionRequest struct {
	BuyerID        uuid.UUID       `json:"buyer_id"`
	SellerID       uuid.UUID       `json:"seller_id"`
	AuctionID      *uuid.UUID      `json:"auction_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	PaymentMethod  string          `json:"payment_method"`
	IdempotencyKey string          `json:"idempotency_key"`
	Metadata       Metadata        `json:"metadata,omitempty"`
}

// InitiatePaymentRequest starts payment collection with the provider
type InitiatePaymentRequest struct {
	BuyerContact string `json:"buyer_contact"`
}

// PaymentCallback is the webhook payload delivered by the payment provider.
// Either TransactionID or ProviderRef identifies the transaction; delivery is
// at-least-once so processing must be idempotent.
type PaymentCallback struct {
	TransactionID string   `json:"transaction_id,omitempty"`
	ProviderRef   string   `json:"provider_ref,omitempty"`
	Status        string   `json:"status"`
	Metadata      Metadata `json:"metadata,omitempty"`
}

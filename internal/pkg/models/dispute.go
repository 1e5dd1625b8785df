package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DisputeStatus represents the dispute workflow state
type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "open"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeRejected    DisputeStatus = "rejected"
)

// Closed reports whether the dispute accepts no further changes
func (s DisputeStatus) Closed() bool {
	return s == DisputeResolved || s == DisputeRejected
}

// DisputeReason enumerates why a buyer opened a dispute
type DisputeReason string

const (
	ReasonNotReceived    DisputeReason = "item_not_received"
	ReasonNotAsDescribed DisputeReason = "item_not_as_described"
	ReasonDamaged        DisputeReason = "item_damaged"
	ReasonOther          DisputeReason = "other"
)

// Valid reports whether the reason is a supported value
func (r DisputeReason) Valid() bool {
	switch r {
	case ReasonNotReceived, ReasonNotAsDescribed, ReasonDamaged, ReasonOther:
		return true
	default:
		return false
	}
}

// DisputeResolution is the reviewer's adjudication outcome
type DisputeResolution string

const (
	ResolutionRefundBuyer     DisputeResolution = "refund_buyer"
	ResolutionReleaseToSeller DisputeResolution = "release_to_seller"
	ResolutionPartialRefund   DisputeResolution = "partial_refund"
	ResolutionNone            DisputeResolution = "none"
)

// EvidenceList is a list of evidence references stored as JSONB
type EvidenceList []string

// Value implements driver.Valuer for JSONB storage
func (e EvidenceList) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner for JSONB storage
func (e *EvidenceList) Scan(src interface{}) error {
	if src == nil {
		*e = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported evidence source type %T", src)
	}
}

// Dispute freezes an escrow's normal release/refund path pending adjudication
type Dispute struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	EscrowID       uuid.UUID         `json:"escrow_id" db:"escrow_id"`
	AuctionID      *uuid.UUID        `json:"auction_id,omitempty" db:"auction_id"`
	BuyerID        uuid.UUID         `json:"buyer_id" db:"buyer_id"`
	SellerID       uuid.UUID         `json:"seller_id" db:"seller_id"`
	Reason         DisputeReason     `json:"reason" db:"reason"`
	Description    string            `json:"description" db:"description"`
	Evidence       EvidenceList      `json:"evidence,omitempty" db:"evidence"`
	Status         DisputeStatus     `json:"status" db:"status"`
	Resolution     DisputeResolution `json:"resolution" db:"resolution"`
	ResolutionNote *string           `json:"resolution_note,omitempty" db:"resolution_note"`
	ReviewerID     *uuid.UUID        `json:"reviewer_id,omitempty" db:"reviewer_id"`
	Deadline       *time.Time        `json:"deadline,omitempty" db:"deadline"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
	ResolvedAt     *time.Time        `json:"resolved_at,omitempty" db:"resolved_at"`
}

// OpenDisputeRequest is the buyer's request to freeze an escrow
type OpenDisputeRequest struct {
	AuctionID   uuid.UUID     `json:"auction_id"`
	BuyerID     uuid.UUID     `json:"buyer_id"`
	Reason      DisputeReason `json:"reason"`
	Description string        `json:"description"`
	Evidence    EvidenceList  `json:"evidence,omitempty"`
}

// ResolveDisputeRequest is a reviewer's adjudication of a dispute.
// RefundAmount is required for partial refunds and must be less than the
// escrowed amount; the remainder is released to the seller.
type ResolveDisputeRequest struct {
	Resolution   DisputeResolution `json:"resolution"`
	Note         string            `json:"note"`
	ReviewerID   uuid.UUID         `json:"reviewer_id"`
	RefundAmount *decimal.Decimal  `json:"refund_amount,omitempty"`
}

// AddEvidenceRequest appends evidence to an open dispute
type AddEvidenceRequest struct {
	BuyerID  uuid.UUID    `json:"buyer_id"`
	Evidence EvidenceList `json:"evidence"`
}

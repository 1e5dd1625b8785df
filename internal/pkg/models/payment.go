package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment gateway collaborator DTOs. The provider may report "pending"
// indefinitely; callers must never assume synchronous settlement.

// GatewayInitiateRequest starts payment collection for a transaction
type GatewayInitiateRequest struct {
	Reference    string          `json:"reference"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	BuyerContact string          `json:"buyer_contact"`
	CallbackURL  string          `json:"callback_url"`
}

// GatewayInitiateResponse carries the provider's reference and hosted link
type GatewayInitiateResponse struct {
	Reference   string `json:"reference"`
	PaymentLink string `json:"payment_link"`
}

// GatewayVerifyResponse reports the provider-side status of a payment
type GatewayVerifyResponse struct {
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

// GatewayRefundRequest refunds a collected payment to the buyer
type GatewayRefundRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
}

// GatewayRefundResponse carries the provider's refund reference
type GatewayRefundResponse struct {
	RefundReference string `json:"refund_reference"`
}

// GatewayPayoutRequest pays escrowed funds out to the seller
type GatewayPayoutRequest struct {
	SellerID uuid.UUID       `json:"seller_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// GatewayPayoutResponse carries the provider's payout reference
type GatewayPayoutResponse struct {
	PayoutReference string `json:"payout_reference"`
}

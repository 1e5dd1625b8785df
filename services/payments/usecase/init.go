package usecase

import (
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/services/payments"
)

// TransactionUC implements the transaction ledger use cases
type TransactionUC struct {
	transactionRepo payments.TransactionRepo
	paymentGW       payments.PaymentGW
	cfg             *models.Config
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(
	transactionRepo payments.TransactionRepo,
	paymentGW payments.PaymentGW,
	cfg *models.Config,
) *TransactionUC {
	return &TransactionUC{
		transactionRepo: transactionRepo,
		paymentGW:       paymentGW,
		cfg:             cfg,
	}
}

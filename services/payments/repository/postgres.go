package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

// TransactionRepo handles transaction ledger persistence
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

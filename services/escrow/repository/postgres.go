package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/campusbid/campusbid/internal/pkg/database"
	"github.com/campusbid/campusbid/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// EscrowRepo handles escrow persistence and delivery code attempt counters
type EscrowRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewEscrowRepo creates a new escrow repository
func NewEscrowRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *EscrowRepo {
	return &EscrowRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// ConfirmationRepo handles delivery confirmation persistence
type ConfirmationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewConfirmationRepo creates a new confirmation repository
func NewConfirmationRepo(cfg *models.Config, db *sqlx.DB) *ConfirmationRepo {
	return &ConfirmationRepo{
		cfg: cfg,
		db:  db,
	}
}

// DisputeRepo handles dispute persistence
type DisputeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDisputeRepo creates a new dispute repository
func NewDisputeRepo(cfg *models.Config, db *sqlx.DB) *DisputeRepo {
	return &DisputeRepo{
		cfg: cfg,
		db:  db,
	}
}

package usecase

import (
	"github.com/campusbid/campusbid/internal/pkg/codes"
	"github.com/campusbid/campusbid/internal/pkg/models"
	"github.com/campusbid/campusbid/services/escrow"
)

// EscrowUC implements the escrow lifecycle use cases
type EscrowUC struct {
	escrowRepo escrow.EscrowRepo
	escrowGW   escrow.EscrowGW
	cipher     *codes.Cipher
	verifier   *codeVerifier
	cfg        *models.Config
}

// NewEscrowUC creates a new escrow usecase instance. The cipher key protects
// the reversible code ciphertext used for buyer retrieval.
func NewEscrowUC(
	escrowRepo escrow.EscrowRepo,
	escrowGW escrow.EscrowGW,
	cfg *models.Config,
) (*EscrowUC, error) {
	cipher, err := codes.NewCipher(cfg.Escrow.CodeSecret)
	if err != nil {
		return nil, err
	}

	return &EscrowUC{
		escrowRepo: escrowRepo,
		escrowGW:   escrowGW,
		cipher:     cipher,
		verifier:   newCodeVerifier(escrowRepo, cfg.Escrow.LockoutThreshold),
		cfg:        cfg,
	}, nil
}

// ConfirmationUC implements the transaction-keyed confirmation code use cases
type ConfirmationUC struct {
	confirmationRepo escrow.ConfirmationRepo
	escrowRepo       escrow.EscrowRepo
	escrowGW         escrow.EscrowGW
	verifier         *codeVerifier
	cfg              *models.Config
}

// NewConfirmationUC creates a new confirmation usecase instance
func NewConfirmationUC(
	confirmationRepo escrow.ConfirmationRepo,
	escrowRepo escrow.EscrowRepo,
	escrowGW escrow.EscrowGW,
	cfg *models.Config,
) *ConfirmationUC {
	return &ConfirmationUC{
		confirmationRepo: confirmationRepo,
		escrowRepo:       escrowRepo,
		escrowGW:         escrowGW,
		verifier:         newCodeVerifier(escrowRepo, cfg.Escrow.LockoutThreshold),
		cfg:              cfg,
	}
}

// DisputeUC implements the dispute workflow use cases
type DisputeUC struct {
	disputeRepo escrow.DisputeRepo
	escrowRepo  escrow.EscrowRepo
	escrowGW    escrow.EscrowGW
	cfg         *models.Config
}

// NewDisputeUC creates a new dispute usecase instance
func NewDisputeUC(
	disputeRepo escrow.DisputeRepo,
	escrowRepo escrow.EscrowRepo,
	escrowGW escrow.EscrowGW,
	cfg *models.Config,
) *DisputeUC {
	return &DisputeUC{
		disputeRepo: disputeRepo,
		escrowRepo:  escrowRepo,
		escrowGW:    escrowGW,
		cfg:         cfg,
	}
}

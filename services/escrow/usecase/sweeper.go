package usecase

import (
	"context"
	"time"

	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/services/escrow"
)

// Sweeper periodically releases escrows whose confirmation aged past the
// auto-release window
type Sweeper struct {
	escrowUC escrow.EscrowUC
	interval time.Duration
}

// NewSweeper creates a new auto-release sweeper
func NewSweeper(escrowUC escrow.EscrowUC, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Sweeper{
		escrowUC: escrowUC,
		interval: interval,
	}
}

// Start runs the sweep loop until the context is cancelled
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, err := s.escrowUC.AutoReleaseDue(ctx)
			if err != nil {
				logger.ErrorCtx(ctx, "Auto-release sweep failed", logger.ErrorField(err))
				continue
			}
			if released > 0 {
				logger.InfoCtx(ctx, "Auto-release sweep completed",
					logger.Int("released", released),
				)
			}
		}
	}
}

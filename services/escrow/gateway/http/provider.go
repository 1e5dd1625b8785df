package gateway

import (
	"context"
	"time"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	pkghttp "github.com/campusbid/campusbid/internal/pkg/http"
	"github.com/campusbid/campusbid/internal/pkg/models"
	nrpkg "github.com/campusbid/campusbid/internal/pkg/newrelic"
)

// ProviderGateway is the HTTP client for the external payment provider's
// payout and refund endpoints. Money movement is never retried automatically:
// the caller rolls back the pending transition and a human or a later request
// decides whether to try again.
type ProviderGateway struct {
	client  *pkghttp.APIKeyClient
	baseURL string
}

// NewProviderGateway creates a new provider gateway with API key authentication
func NewProviderGateway(cfg models.GatewayConfig) *ProviderGateway {
	client := pkghttp.NewAPIKeyClient(cfg.APIKey, "escrow-service", cfg.BaseURL)
	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}

	return &ProviderGateway{
		client:  client,
		baseURL: cfg.BaseURL,
	}
}

// Payout pays escrowed funds out to the seller
func (g *ProviderGateway) Payout(ctx context.Context, req *models.GatewayPayoutRequest) (*models.GatewayPayoutResponse, error) {
	var resp models.GatewayPayoutResponse
	err := nrpkg.WithExternalSegment(ctx, "payment-provider", "Payout", g.baseURL+"/payouts", func() error {
		return g.client.PostJSON(ctx, "/payouts", req, &resp)
	})
	if err != nil {
		return nil, apperrors.GatewayFailure("payout", err)
	}
	return &resp, nil
}

// Refund returns collected funds to the buyer
func (g *ProviderGateway) Refund(ctx context.Context, req *models.GatewayRefundRequest) (*models.GatewayRefundResponse, error) {
	var resp models.GatewayRefundResponse
	err := nrpkg.WithExternalSegment(ctx, "payment-provider", "Refund", g.baseURL+"/refunds", func() error {
		return g.client.PostJSON(ctx, "/refunds", req, &resp)
	})
	if err != nil {
		return nil, apperrors.GatewayFailure("refund", err)
	}
	return &resp, nil
}

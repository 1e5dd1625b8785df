package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbid/campusbid/internal/pkg/apperrors"
	pkghttp "github.com/campusbid/campusbid/internal/pkg/http"
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	nrpkg "github.com/campusbid/campusbid/internal/pkg/newrelic"
	"github.com/campusbid/campusbid/internal/pkg/retry"
)

// ProviderGateway is the HTTP client for the external payment provider
type ProviderGateway struct {
	client  *pkghttp.APIKeyClient
	retrier *retry.Retrier
	baseURL string
}

// NewProviderGateway creates a new provider gateway with API key authentication
func NewProviderGateway(cfg models.GatewayConfig, log *logger.ZapLogger) *ProviderGateway {
	client := pkghttp.NewAPIKeyClient(cfg.APIKey, "payments-service", cfg.BaseURL)
	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}

	return &ProviderGateway{
		client:  client,
		retrier: retry.NewWithDefaults(log),
		baseURL: cfg.BaseURL,
	}
}

// InitiatePayment starts payment collection with the provider. Not retried:
// the provider deduplicates by reference, but a timeout here leaves the
// outcome unknown and the caller resolves it through VerifyPayment.
func (g *ProviderGateway) InitiatePayment(ctx context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResponse, error) {
	var resp models.GatewayInitiateResponse
	err := nrpkg.WithExternalSegment(ctx, "payment-provider", "InitiatePayment", g.baseURL+"/payments", func() error {
		return g.client.PostJSON(ctx, "/payments", req, &resp)
	})
	if err != nil {
		return nil, apperrors.GatewayFailure("initiate payment", err)
	}
	return &resp, nil
}

// VerifyPayment queries the provider-side payment status. Read-only, so
// transient failures are retried with backoff.
func (g *ProviderGateway) VerifyPayment(ctx context.Context, reference string) (*models.GatewayVerifyResponse, error) {
	endpoint := fmt.Sprintf("/payments/%s", reference)

	var resp models.GatewayVerifyResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithExternalSegment(ctx, "payment-provider", "VerifyPayment", g.baseURL+endpoint, func() error {
			return g.client.GetJSON(ctx, endpoint, &resp)
		})
	})
	if err != nil {
		return nil, apperrors.GatewayFailure("verify payment", err)
	}
	return &resp, nil
}

package gateway

import (
	"github.com/campusbid/campusbid/internal/pkg/logger"
	"github.com/campusbid/campusbid/internal/pkg/models"
	natspkg "github.com/campusbid/campusbid/internal/pkg/nats"
	"github.com/campusbid/campusbid/services/payments"
	gateway_http "github.com/campusbid/campusbid/services/payments/gateway/http"
	gateway_nats "github.com/campusbid/campusbid/services/payments/gateway/nats"
)

// PaymentGW handles payment provider calls and event publication
type PaymentGW struct {
	providerGateway *gateway_http.ProviderGateway
	natsGateway     *gateway_nats.NATSGateway
}

// NewPaymentGW creates a new payment gateway instance with the provider HTTP
// client and NATS publisher
func NewPaymentGW(natsClient *natspkg.Client, cfg *models.Config, log *logger.ZapLogger) payments.PaymentGW {
	return &PaymentGW{
		providerGateway: gateway_http.NewProviderGateway(cfg.Gateway, log),
		natsGateway:     gateway_nats.NewNATSGateway(natsClient),
	}
}

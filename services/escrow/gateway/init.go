package gateway

import (
	"github.com/campusbid/campusbid/internal/pkg/models"
	natspkg "github.com/campusbid/campusbid/internal/pkg/nats"
	"github.com/campusbid/campusbid/services/escrow"
	gateway_http "github.com/campusbid/campusbid/services/escrow/gateway/http"
	gateway_nats "github.com/campusbid/campusbid/services/escrow/gateway/nats"
)

// EscrowGW handles money movement through the payment provider and event
// publication
type EscrowGW struct {
	providerGateway *gateway_http.ProviderGateway
	natsGateway     *gateway_nats.NATSGateway
}

// NewEscrowGW creates a new escrow gateway instance with the provider HTTP
// client and NATS publisher
func NewEscrowGW(natsClient *natspkg.Client, cfg *models.Config) escrow.EscrowGW {
	return &EscrowGW{
		providerGateway: gateway_http.NewProviderGateway(cfg.Gateway),
		natsGateway:     gateway_nats.NewNATSGateway(natsClient),
	}
}

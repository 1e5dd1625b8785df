package newrelic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusbid/campusbid/internal/pkg/models"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	configs := &models.Config{}
	assert.Nil(t, InitNewRelic(configs))
}

func TestInitNewRelic_MissingLicenseKey(t *testing.T) {
	configs := &models.Config{
		NewRelic: models.NewRelicConfig{
			Enabled:     true,
			AppName:     "campusbid-test",
			ForwardLogs: true,
		},
	}
	assert.Nil(t, InitNewRelic(configs))
}

func TestInitNewRelic_InvalidLicenseKey(t *testing.T) {
	configs := &models.Config{
		NewRelic: models.NewRelicConfig{
			Enabled:     true,
			AppName:     "campusbid-test",
			LicenseKey:  "too-short",
			ForwardLogs: true,
		},
	}
	// The agent rejects malformed license keys; startup continues without it
	assert.Nil(t, InitNewRelic(configs))
}

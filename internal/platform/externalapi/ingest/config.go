// Package ingest delivers parsed bhavcopy rows to the remote ingestion endpoint.
package ingest

import (
	"time"

	"nse_sync/internal/platform/config"
)

const (
	defaultEndpointURL = "https://market.isira.club/api/functions/ingestDailyData"
	defaultTimeout     = 60 * time.Second
)

// Config holds configuration for the ingest endpoint client.
type Config struct {
	EndpointURL string        `validate:"required,url"`
	Timeout     time.Duration `validate:"gt=0"`
}

// LoadConfig loads ingest configuration from environment variables, falling back to defaults.
func LoadConfig() (Config, error) {
	timeout, err := config.Duration("INGEST_TIMEOUT", defaultTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		EndpointURL: config.String("INGEST_ENDPOINT_URL", defaultEndpointURL),
		Timeout:     timeout,
	}
	if err := config.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

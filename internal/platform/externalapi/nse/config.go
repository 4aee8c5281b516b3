// Package nse provides the client for the NSE historical bhavcopy archive.
package nse

import (
	"time"

	"nse_sync/internal/platform/config"
)

const (
	defaultBaseURL   = "https://www1.nseindia.com"
	defaultUserAgent = "Mozilla/5.0" // NSE rejects Go's default client identifier
	defaultTimeout   = 30 * time.Second
)

// Config holds configuration for the NSE archive client.
type Config struct {
	BaseURL   string        `validate:"required,url"` // Archive host (e.g., "https://www1.nseindia.com")
	UserAgent string        `validate:"required"`     // Browser-like User-Agent header
	Timeout   time.Duration `validate:"gt=0"`         // HTTP request timeout
}

// LoadConfig loads NSE configuration from environment variables, falling back to defaults.
func LoadConfig() (Config, error) {
	timeout, err := config.Duration("NSE_TIMEOUT", defaultTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		BaseURL:   config.String("NSE_BASE_URL", defaultBaseURL),
		UserAgent: config.String("NSE_USER_AGENT", defaultUserAgent),
		Timeout:   timeout,
	}
	if err := config.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

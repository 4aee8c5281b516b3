package nse

import (
	"errors"
	"testing"
	"time"

	"nse_sync/internal/feature/bhavcopy/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("NSE_BASE_URL", "")
	t.Setenv("NSE_USER_AGENT", "")
	t.Setenv("NSE_TIMEOUT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://www1.nseindia.com" {
		t.Errorf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.UserAgent != "Mozilla/5.0" {
		t.Errorf("expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.Timeout)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("NSE_BASE_URL", "https://archives.nseindia.com")
	t.Setenv("NSE_USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64)")
	t.Setenv("NSE_TIMEOUT", "45s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://archives.nseindia.com" {
		t.Errorf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.UserAgent != "Mozilla/5.0 (X11; Linux x86_64)" {
		t.Errorf("unexpected user agent %q", cfg.UserAgent)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.Timeout)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad base url", "NSE_BASE_URL", "not a url"},
		{"bad timeout", "NSE_TIMEOUT", "forever"},
		{"negative timeout", "NSE_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NSE_BASE_URL", "")
			t.Setenv("NSE_TIMEOUT", "")
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			if !errors.Is(err, domain.ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
		})
	}
}

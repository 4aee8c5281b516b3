// Package config provides helpers shared by the per-adapter LoadConfig functions.
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"nse_sync/internal/feature/bhavcopy/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// String returns the environment variable key, or def when it is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Duration は環境変数 key を time.ParseDuration で解釈します。未設定の場合は def を返します。
func Duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", domain.ErrConfig, key, v, err)
	}
	return d, nil
}

// Validate checks cfg against its `validate` struct tags.
func Validate(cfg any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfig, err)
	}
	return nil
}

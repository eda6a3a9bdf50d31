package config_test

import (
	"testing"

	"github.com/opavlenko/finance-manager/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_RATE_LIMIT_PER_MINUTE", "")

	cfg := config.Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, очікували 8080", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL порожній")
	}
	if cfg.AuthRateLimitPerMinute != 10 {
		t.Errorf("AuthRateLimitPerMinute = %d, очікували 10", cfg.AuthRateLimitPerMinute)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "secret-from-env")
	t.Setenv("AUTH_RATE_LIMIT_PER_MINUTE", "25")

	cfg := config.Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, очікували 9000", cfg.Port)
	}
	if cfg.JWTSecret != "secret-from-env" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.AuthRateLimitPerMinute != 25 {
		t.Errorf("AuthRateLimitPerMinute = %d, очікували 25", cfg.AuthRateLimitPerMinute)
	}
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("AUTH_RATE_LIMIT_PER_MINUTE", "не число")
	cfg := config.Load()
	if cfg.AuthRateLimitPerMinute != 10 {
		t.Errorf("для нечислового значення очікували типові 10, отримали %d", cfg.AuthRateLimitPerMinute)
	}
}

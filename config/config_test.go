package config

import (
	"testing"
	"time"
)

func TestLoadConfig_RequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("Expected an error when SESSION_SECRET is missing")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Session.Secret != "test-secret" {
		t.Errorf("Expected secret to be carried through, got %q", cfg.Session.Secret)
	}
	if cfg.Session.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default session TTL 24h, got %v", cfg.Session.TokenTTL)
	}
	if cfg.Session.CookieName != "prime_session" {
		t.Errorf("Expected default cookie name prime_session, got %q", cfg.Session.CookieName)
	}
	if cfg.Orders.LeadMaxAge != 720*time.Hour {
		t.Errorf("Expected default lead max age 720h, got %v", cfg.Orders.LeadMaxAge)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("ORDERS_LEAD_MAX_AGE", "168h")
	t.Setenv("DB_PORT", "5433")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Session.TokenTTL != time.Hour {
		t.Errorf("Expected session TTL 1h, got %v", cfg.Session.TokenTTL)
	}
	if cfg.Orders.LeadMaxAge != 168*time.Hour {
		t.Errorf("Expected lead max age 168h, got %v", cfg.Orders.LeadMaxAge)
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Expected DB port 5433, got %d", cfg.Database.Port)
	}
}

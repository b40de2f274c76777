package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shopfront")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GetCartTTL() != 336*time.Hour {
		t.Fatalf("cartTTL = %v, want 336h", cfg.GetCartTTL())
	}
	if cfg.GetCartCookieName() != "shopfront_cart" {
		t.Fatalf("cookie name = %q", cfg.GetCartCookieName())
	}
	if cfg.GetPopupSessionTTL() != 30*time.Minute {
		t.Fatalf("popupSessionTTL = %v, want 30m", cfg.GetPopupSessionTTL())
	}
	if cfg.GetBundleTriggerColor() != "black" || cfg.GetBundleTriggerSize() != "M" {
		t.Fatalf("bundle trigger = %q/%q", cfg.GetBundleTriggerColor(), cfg.GetBundleTriggerSize())
	}
	if cfg.IsBundleEnabled() {
		t.Fatal("bundle enabled without a target handle")
	}
	if cfg.GetAuditConcurrency() != 10 {
		t.Fatalf("auditConcurrency = %d, want 10", cfg.GetAuditConcurrency())
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadRejectsMalformedDurations(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shopfront")

	t.Setenv("CART_TTL", "two-weeks")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed CART_TTL")
	}
	t.Setenv("CART_TTL", "336h")

	t.Setenv("POPUP_SESSION_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed POPUP_SESSION_TTL")
	}
}

func TestLoadRejectsMalformedConcurrency(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shopfront")
	t.Setenv("AUDIT_CONCURRENCY", "many")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed AUDIT_CONCURRENCY")
	}
}

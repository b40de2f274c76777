// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for admin middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RedisConfig provides settings for the Redis-backed cart store and audit queue.
type RedisConfig interface {
	GetRedisURL() string
	IsRedisEnabled() bool
}

// CartConfig provides settings for the cart module.
type CartConfig interface {
	GetCartTTL() time.Duration
	GetCartCookieName() string
}

// PopupConfig provides settings for the quick-shop popup module.
type PopupConfig interface {
	GetPopupSessionTTL() time.Duration
}

// BundleConfig provides the promotional bundle rule settings.
type BundleConfig interface {
	GetBundleTriggerColor() string
	GetBundleTriggerSize() string
	GetBundleTargetHandle() string
	IsBundleEnabled() bool
}

// WorkerConfig provides settings for the audit worker.
type WorkerConfig interface {
	RedisConfig
	GetAuditQueueName() string
	GetAuditConcurrency() int
}

// =============================================================================
// Config
// =============================================================================

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	JWTAccessSecret    string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RedisURL           string
	CartTTL            time.Duration
	CartCookieName     string
	PopupSessionTTL    time.Duration
	BundleTriggerColor string
	BundleTriggerSize  string
	BundleTargetHandle string
	AuditQueueName     string
	AuditConcurrency   int
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RedisConfig implementation
func (c *Config) GetRedisURL() string  { return c.RedisURL }
func (c *Config) IsRedisEnabled() bool { return strings.TrimSpace(c.RedisURL) != "" }

// CartConfig implementation
func (c *Config) GetCartTTL() time.Duration { return c.CartTTL }
func (c *Config) GetCartCookieName() string { return c.CartCookieName }

// PopupConfig implementation
func (c *Config) GetPopupSessionTTL() time.Duration { return c.PopupSessionTTL }

// BundleConfig implementation
func (c *Config) GetBundleTriggerColor() string { return c.BundleTriggerColor }
func (c *Config) GetBundleTriggerSize() string  { return c.BundleTriggerSize }
func (c *Config) GetBundleTargetHandle() string { return c.BundleTargetHandle }
func (c *Config) IsBundleEnabled() bool {
	return c.BundleTargetHandle != "" && c.BundleTriggerColor != "" && c.BundleTriggerSize != ""
}

// WorkerConfig implementation
func (c *Config) GetAuditQueueName() string { return c.AuditQueueName }
func (c *Config) GetAuditConcurrency() int  { return c.AuditConcurrency }

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cartTTL, err := parseDuration("CART_TTL", getEnv("CART_TTL", "336h"))
	if err != nil {
		return nil, err
	}
	popupSessionTTL, err := parseDuration("POPUP_SESSION_TTL", getEnv("POPUP_SESSION_TTL", "30m"))
	if err != nil {
		return nil, err
	}
	auditConcurrency, err := parseInt("AUDIT_CONCURRENCY", getEnv("AUDIT_CONCURRENCY", "10"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTAccessSecret:    getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisURL:           getEnv("REDIS_URL", ""),
		CartTTL:            cartTTL,
		CartCookieName:     getEnv("CART_COOKIE_NAME", "shopfront_cart"),
		PopupSessionTTL:    popupSessionTTL,
		BundleTriggerColor: getEnv("BUNDLE_TRIGGER_COLOR", "black"),
		BundleTriggerSize:  getEnv("BUNDLE_TRIGGER_SIZE", "M"),
		BundleTargetHandle: getEnv("BUNDLE_TARGET_HANDLE", ""),
		AuditQueueName:     getEnv("AUDIT_QUEUE_NAME", "default"),
		AuditConcurrency:   auditConcurrency,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

func parseDuration(key, value string) (time.Duration, error) {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return parsed, nil
}

func parseInt(key, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return parsed, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Store backend names used in STORE_BACKEND config field.
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`
	// PublicOrigin is the scheme+host embedded in shareable menu links.
	PublicOrigin string `conf:"default:http://localhost:8080,env:PUBLIC_ORIGIN"`

	// Menu store
	StoreBackend string `conf:"default:redis,enum:redis|memory,env:STORE_BACKEND"`
	RedisURL     string `conf:"default:redis://localhost:6379,env:REDIS_URL"`

	// QR code rendering
	QRSize int `conf:"default:256,env:QR_SIZE"`

	// Item identifiers
	SnowflakeNode int64 `conf:"default:1,env:SNOWFLAKE_NODE"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Editor session
	SessionAuthKey       string `conf:"default:dev-auth-key-32-bytes-long!!!!!!,env:SESSION_AUTH_KEY"`
	SessionEncryptionKey string `conf:"default:dev-encryption-key-32-bytes-long,env:SESSION_ENCRYPTION_KEY"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:qrmenu,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if len(cfg.SessionAuthKey) < 32 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_AUTH_KEY must be at least 32 bytes (got %d); generate with: openssl rand -base64 32",
			len(cfg.SessionAuthKey),
		))
	}

	if n := len(cfg.SessionEncryptionKey); n != 16 && n != 24 && n != 32 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_ENCRYPTION_KEY must be 16, 24 or 32 bytes (got %d); generate with: openssl rand -hex 16",
			len(cfg.SessionEncryptionKey),
		))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if cfg.StoreBackend == StoreMemory {
		errs = append(errs, "STORE_BACKEND=memory loses every menu on restart; use redis in production")
	}

	if !strings.HasPrefix(cfg.PublicOrigin, "https://") {
		errs = append(errs, fmt.Sprintf("PUBLIC_ORIGIN must use https (got %q)", cfg.PublicOrigin))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}

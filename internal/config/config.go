package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for call sites that cannot take injected config.
var globalConfig *Config

// Config holds all environment backed configuration for the AgentSync server.
type Config struct {
	// HTTP Server
	HTTPPort    int           `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int           `env:"METRICS_PORT" envDefault:"9091"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// PostgreSQL
	DatabaseURL     string `env:"DATABASE_URL,notEmpty"`
	DatabaseReadURL string `env:"DATABASE_READ_URL"`
	AutoMigrate     bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	// Sessions
	AuthJWTSecret   string        `env:"AUTH_JWT_SECRET,notEmpty"`
	SessionTokenTTL time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"720h"`

	// Email verification
	OTPExpiry              time.Duration `env:"OTP_EXPIRY" envDefault:"5m"`
	OTPSweepIntervalMins   int           `env:"OTP_SWEEP_INTERVAL_MINUTES" envDefault:"10"`
	OTPVerifiedRowMaxAge   time.Duration `env:"OTP_VERIFIED_ROW_MAX_AGE" envDefault:"1h"`
	OTPSweepEnabled        bool          `env:"OTP_SWEEP_ENABLED" envDefault:"true"`

	// Transactional mail
	MailAPIURL  string `env:"MAIL_API_URL" envDefault:"https://api.resend.com"`
	MailAPIKey  string `env:"MAIL_API_KEY"`
	MailFrom    string `env:"MAIL_FROM" envDefault:"AgentSync <no-reply@agentsync.app>"`

	// Chat completion provider
	CompletionBaseURL string        `env:"COMPLETION_BASE_URL" envDefault:"https://api.openai.com/v1"`
	CompletionAPIKey  string        `env:"COMPLETION_API_KEY,notEmpty"`
	CompletionModel   string        `env:"COMPLETION_MODEL" envDefault:"gpt-4o"`
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"120s"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"agentsync-server"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"agentsync"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.CompletionBaseURL); err != nil {
		return nil, fmt.Errorf("invalid COMPLETION_BASE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.MailAPIURL); err != nil {
		return nil, fmt.Errorf("invalid MAIL_API_URL: %w", err)
	}
	if _, err := mail.ParseAddress(cfg.MailFrom); err != nil {
		return nil, fmt.Errorf("invalid MAIL_FROM: %w", err)
	}
	if len(cfg.AuthJWTSecret) < 16 {
		return nil, errors.New("AUTH_JWT_SECRET must be at least 16 characters")
	}
	if cfg.OTPExpiry <= 0 {
		return nil, errors.New("OTP_EXPIRY must be positive")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

// GetEnvReloadedAt returns when the environment was last reloaded.
func GetEnvReloadedAt() time.Time {
	if globalConfig != nil {
		return globalConfig.EnvReloadedAt
	}
	return time.Time{}
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/zimbwa-construction/quotes-backend/pkg/env"
)

const (
	EnvPrefix = "lzq"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Webhook WebhookConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// The original deployment honored N8N_WEBHOOK_URL before WEBHOOK_URL.
	if cfg.Webhook.URL == "" {
		cfg.Webhook.URL = env.First("", "LZQ_WEBHOOK_URL", "N8N_WEBHOOK_URL", "WEBHOOK_URL")
	}
	if cfg.Webhook.URL == "" {
		return nil, fmt.Errorf("webhook URL is required (set LZQ_N8N_WEBHOOK_URL or LZQ_WEBHOOK_URL)")
	}
	if err := cfg.DB.validateDriver(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LZQ_APP_ENV" default:"dev"`
	Port         string `envconfig:"LZQ_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"LZQ_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LZQ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Quotes only live for the process lifetime, so the default driver is
	// sqlite with a shared in-memory DSN. Postgres stays one env var away.
	Driver string `envconfig:"LZQ_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"LZQ_DB_DSN" default:"file::memory:?cache=shared"`

	MaxOpenConns    int           `envconfig:"LZQ_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"LZQ_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"LZQ_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LZQ_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d DBConfig) validateDriver() error {
	switch d.Driver {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported db driver %q", d.Driver)
	}
}

type WebhookConfig struct {
	URL       string        `envconfig:"LZQ_N8N_WEBHOOK_URL"`
	Timeout   time.Duration `envconfig:"LZQ_WEBHOOK_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"LZQ_WEBHOOK_USER_AGENT" default:"Quote-Generator/1.0"`
}

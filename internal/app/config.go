package app

import (
	"fmt"
	"time"

	"leave-payroll/internal/notifier"
	"leave-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/time/rate"
)

type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	Port            string        `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Full keys on purpose: nested structs fall back to the bare tag (USER, PORT).
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"leave_payroll"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxRetries int    `envconfig:"CONNECT_MAX_RETRIES" default:"5"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	NotifyChannel string `envconfig:"NOTIFY_CHANNEL"`

	KafkaBroker        string        `envconfig:"KAFKA_BROKER"`
	OutboxPollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`
	PayrollWebhookURL  string        `envconfig:"PAYROLL_WEBHOOK_URL" default:"http://localhost:3000/api/v1/webhook/payroll"`

	SeedDemoData   bool    `envconfig:"SEED_DEMO_DATA" default:"false"`
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.NotifyChannel == "" {
		cfg.NotifyChannel = notifier.DefaultChannel
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c Config) Postgres() connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     c.DBHost,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		Port:     c.DBPort,
		SSLMode:  c.DBSSLMode,
	}
}

func (c Config) RateLimit() rate.Limit {
	return rate.Limit(c.RateLimitRPS)
}

func (c Config) requireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

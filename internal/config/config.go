package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	APIKey      string `envconfig:"API_KEY" validate:"required"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	Version     string `envconfig:"VERSION" default:"dev"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	LogDir    string `envconfig:"LOG_DIR" default:"logs"`

	// StorageBackend selects the repository implementation: postgres or memory
	StorageBackend string        `envconfig:"STORAGE_BACKEND" default:"postgres" validate:"oneof=postgres memory"`
	DBUser         string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword     string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost         string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort         string        `envconfig:"DB_PORT" default:"5432"`
	DBName         string        `envconfig:"DB_NAME" default:"impulsa"`
	DBMaxConns     int           `envconfig:"DB_MAX_CONNS" default:"20" validate:"min=1"`
	DBMaxIdle      time.Duration `envconfig:"DB_MAX_CONN_IDLE" default:"5m"`
	DBMaxLife      time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	DBStmtTimeout  time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"10s"`

	// Blob storage for evidence and documents. Empty bucket keeps files in memory.
	S3Bucket          string `envconfig:"S3_BUCKET"`
	S3Region          string `envconfig:"S3_REGION" default:"auto"`
	S3Endpoint        string `envconfig:"S3_ENDPOINT" validate:"omitempty,url"`
	S3AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	MaxUploadBytes    int64  `envconfig:"MAX_UPLOAD_BYTES" default:"10485760" validate:"gt=0"`

	RedisAddr           string `envconfig:"REDIS_ADDR"`
	RedisChannel        string `envconfig:"REDIS_CHANNEL" default:"impulsa.notifications"`
	DiscordWebhookID    string `envconfig:"DISCORD_WEBHOOK_ID" validate:"required_with=DiscordWebhookToken"`
	DiscordWebhookToken string `envconfig:"DISCORD_WEBHOOK_TOKEN"`

	OTelEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	CatalogPath string   `envconfig:"CATALOG_PATH" default:"configs/catalog.yaml"`
	Cities      []string `envconfig:"LEAGUE_CITIES" default:"Guayaquil" validate:"min=1,dive,required"`

	EventMaxRetries     int           `envconfig:"EVENT_MAX_RETRIES" default:"3" validate:"gte=0"`
	EventRetryDelay     time.Duration `envconfig:"EVENT_RETRY_DELAY" default:"2s"`
	EventDeadLetterPath string        `envconfig:"EVENT_DEADLETTER_PATH" default:"logs/event_deadletter.jsonl"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(ConfigPathEnv)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.StorageBackend = strings.ToLower(cfg.StorageBackend)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesS3 reports whether blob storage should go to an S3 compatible bucket
func (c *Config) UsesS3() bool {
	return c.S3Bucket != ""
}

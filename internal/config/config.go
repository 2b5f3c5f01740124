package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig holds PostgreSQL database connection settings (DB_*).
type DatabaseConfig struct {
	Host               string
	Port               string `default:"5432"`
	User               string
	Password           string
	Name               string
	SSLMode            string `split_words:"true" default:"disable"`
	MaxOpenConns       int    `split_words:"true" default:"10"`
	MaxIdleConns       int    `split_words:"true" default:"5"`
	ConnMaxLifetimeSec int    `split_words:"true" default:"300"`

	// ConnectAttempts bounds the startup pings; ConnectBackoff is the pause between them.
	ConnectAttempts int           `split_words:"true" default:"5"`
	ConnectBackoff  time.Duration `split_words:"true" default:"1s"`
}

// MinIOConfig holds object storage settings for MinIO (MINIO_*).
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string `split_words:"true"`
	SecretKey     string `split_words:"true"`
	Bucket        string
	UseSSL        bool          `split_words:"true" default:"false"`
	PresignExpiry time.Duration `split_words:"true" default:"15m"`
}

// EmbeddingsConfig selects and configures the embeddings queue (EMBEDDINGS_*).
// Driver is "amqp" or "http".
type EmbeddingsConfig struct {
	Driver      string        `default:"amqp"`
	AMQPURL     string        `envconfig:"AMQP_URL"`
	QueueName   string        `split_words:"true" default:"embeddings-queue"`
	HTTPURL     string        `envconfig:"HTTP_URL"`
	HTTPToken   string        `envconfig:"HTTP_TOKEN"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// ViewsConfig controls the lifetime of server-side document list views (VIEWS_*).
type ViewsConfig struct {
	TTL             time.Duration `default:"30m"`
	CleanupInterval time.Duration `split_words:"true" default:"5m"`
	PageSize        int           `split_words:"true" default:"500"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string `split_words:"true" default:"localhost:8080"`
	Port     string `default:"8080"`
	LogLevel string `split_words:"true" default:"info"`
	TZName   string `envconfig:"TZ_NAME" default:"UTC"`

	Database   DatabaseConfig   `ignored:"true"`
	MinIO      MinIOConfig      `ignored:"true"`
	Embeddings EmbeddingsConfig `ignored:"true"`
	Views      ViewsConfig      `ignored:"true"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	groups := []struct {
		prefix string
		spec   any
	}{
		{"", &cfg},
		{"DB", &cfg.Database},
		{"MINIO", &cfg.MinIO},
		{"EMBEDDINGS", &cfg.Embeddings},
		{"VIEWS", &cfg.Views},
	}
	for _, g := range groups {
		if err := envconfig.Process(g.prefix, g.spec); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return &cfg, nil
}

// Location resolves the timezone used for log timestamps, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TZName)
	if err != nil {
		return time.UTC
	}
	return loc
}

package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	SourceCSV = "csv"
	SourceSQL = "sql"
)

// Config is the runtime configuration shared by the commands.
type Config struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	DatasetPath   string        `envconfig:"DATASET_PATH" default:"Food_Delivery_Times.csv"`
	DatasetSource string        `envconfig:"DATASET_SOURCE" default:"csv"`
	DBDriver      string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DatabaseURL   string        `envconfig:"DATABASE_URL"`
	SQLitePath    string        `envconfig:"SQLITE_PATH" default:"data/deliveries.db"`
	WriteTimeout  time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
}

// Load reads an optional .env file, then decodes the environment into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.DatasetSource = strings.ToLower(strings.TrimSpace(c.DatasetSource))
	switch c.DatasetSource {
	case SourceCSV, SourceSQL:
	default:
		return fmt.Errorf("DATASET_SOURCE must be %q or %q, got %q", SourceCSV, SourceSQL, c.DatasetSource)
	}

	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	return nil
}

// DSN returns the connection string for the configured driver: DATABASE_URL
// when set, otherwise the SQLite file path.
func (c *Config) DSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}
	return c.SQLitePath
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendCSV      = "csv"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	StorageBackend     string
	DataDir            string
	TransactionsCSV    string
	SQLitePath         string
	DatabaseURL        string
	EnableDBCheck      bool
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and an optional .env file.
// Explicit envFiles must exist; with none given a missing .env is ignored.
// Values already present in the environment take precedence over the file.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault("STORAGE_BACKEND", BackendCSV)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("TRANSACTIONS_CSV", "")
	v.SetDefault("SQLITE_PATH", "")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.AutomaticEnv()

	cfg := &Config{
		StorageBackend:  strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DataDir:         v.GetString("DATA_DIR"),
		TransactionsCSV: v.GetString("TRANSACTIONS_CSV"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.TransactionsCSV == "" {
		cfg.TransactionsCSV = filepath.Join(cfg.DataDir, "transactions.csv")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "bookkeeper.db")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the selected storage backend requires.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendCSV:
		if c.TransactionsCSV == "" {
			return fmt.Errorf("TRANSACTIONS_CSV must be set for the csv backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set for the sqlite backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL must be set for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want csv, sqlite or postgres)", c.StorageBackend)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// EnsureDataDir creates DataDir if it does not exist yet.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

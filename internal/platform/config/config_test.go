package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/bookkeeper/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORAGE_BACKEND", "DATA_DIR", "TRANSACTIONS_CSV", "SQLITE_PATH", "PGSQL_URL",
		"ENABLE_DB_CHECK", "PORT", "IS_PRODUCTION", "LOG_LEVEL", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.BackendCSV, cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, filepath.Join("data", "transactions.csv"), cfg.TransactionsCSV)
	assert.Equal(t, filepath.Join("data", "bookkeeper.db"), cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("DATA_DIR", "/srv/books")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "/srv/books/bookkeeper.db", cfg.SQLitePath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRANSACTIONS_CSV=/tmp/x.csv\nPORT=9090\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("TRANSACTIONS_CSV")
		os.Unsetenv("PORT")
	})

	cfg, err := config.LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.csv", cfg.TransactionsCSV)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfig_MissingExplicitEnvFile(t *testing.T) {
	clearEnv(t)
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "PGSQL_URL")
}

func TestConfig_ValidateUnknownBackend(t *testing.T) {
	cfg := &config.Config{StorageBackend: "redis", Port: "1"}
	assert.ErrorContains(t, cfg.Validate(), "unknown STORAGE_BACKEND")
}

func TestConfig_EnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &config.Config{DataDir: dir}

	require.NoError(t, cfg.EnsureDataDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

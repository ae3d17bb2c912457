// Package repositories selects and builds the storage backend named in the configuration.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/bookkeeper/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeper/internal/platform/config"
	"github.com/SscSPs/bookkeeper/internal/repositories/csvfile"
	"github.com/SscSPs/bookkeeper/internal/repositories/database/migrations"
	"github.com/SscSPs/bookkeeper/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeper/internal/repositories/database/sqlite"
)

// NewRepositoryProvider opens the configured backend and returns the
// repositories with a cleanup func that releases it. Cleanup is never nil.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendCSV:
		if err := cfg.EnsureDataDir(); err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		repo, err := csvfile.NewTransactionRepository(cfg.TransactionsCSV)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		slog.Debug("Using CSV storage", slog.String("path", repo.Path()))
		return portsrepo.RepositoryProvider{TransactionRepo: repo}, noop, nil

	case config.BackendSQLite:
		conn, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		slog.Debug("Using SQLite storage", slog.String("path", conn.GetPath()))
		cleanup := func() {
			if err := conn.Close(); err != nil {
				slog.Error("Error closing SQLite connection", slog.String("error", err.Error()))
			}
		}
		return portsrepo.RepositoryProvider{TransactionRepo: sqlite.NewTransactionRepository(conn)}, cleanup, nil

	case config.BackendPostgres:
		if err := migrations.Up(migrations.DriverPostgres, cfg.DatabaseURL); err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		pool, err := pgsql.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		slog.Debug("Using PostgreSQL storage")
		return portsrepo.RepositoryProvider{TransactionRepo: pgsql.NewPgxTransactionRepository(pool)}, pool.Close, nil

	default:
		return portsrepo.RepositoryProvider{}, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

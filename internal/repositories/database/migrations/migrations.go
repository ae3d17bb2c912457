// Package migrations applies the embedded schema migrations for the SQL backends.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names accepted by Up. They match the database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed sqlite/*.sql
var sqliteFS embed.FS

// Up applies all pending migrations for the given driver.
// It opens its own connection because the migrate drivers close the
// *sql.DB they are handed.
func Up(driverName, dsn string) error {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var (
		driver database.Driver
		fsys   embed.FS
		dir    string
		name   string
	)
	switch driverName {
	case DriverPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
		fsys, dir, name = postgresFS, "postgres", "postgres"
	case DriverSQLite:
		driver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
		fsys, dir, name = sqliteFS, "sqlite", "sqlite3"
	default:
		return fmt.Errorf("unsupported migration driver %q", driverName)
	}
	if err != nil {
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driverName, err)
	}

	source, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	err = m.Up()
	sourceErr, dbErr := m.Close()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Debug("No new migrations to apply.", slog.String("driver", driverName))
	} else {
		slog.Info("Database migrations applied successfully.", slog.String("driver", driverName))
	}
	return nil
}

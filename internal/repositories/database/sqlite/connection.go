// Package sqlite stores transactions in a local SQLite database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/bookkeeper/internal/repositories/database/migrations"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Connection wraps the *sql.DB for one SQLite file.
type Connection struct {
	db     *sql.DB
	dbPath string
}

// DSN builds the connection string with foreign keys and WAL enabled.
func DSN(dbPath string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
}

// Open opens the database at dbPath, creating its directory if needed, and
// applies pending migrations before returning.
func Open(dbPath string) (*Connection, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := DSN(dbPath)
	if err := migrations.Up(migrations.DriverSQLite, connStr); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	db, err := sql.Open(migrations.DriverSQLite, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// GetDB returns the underlying *sql.DB instance.
func (c *Connection) GetDB() *sql.DB {
	return c.db
}

// GetPath returns the database file path.
func (c *Connection) GetPath() string {
	return c.dbPath
}

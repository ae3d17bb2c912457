package migrations_test

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/SscSPs/bookkeeper/internal/repositories/database/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp_SQLiteIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "m.db"))

	require.NoError(t, migrations.Up(migrations.DriverSQLite, dsn))
	require.NoError(t, migrations.Up(migrations.DriverSQLite, dsn))

	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'transactions'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "transactions", name)
}

func TestUp_UnknownDriver(t *testing.T) {
	err := migrations.Up("nope", "whatever")
	assert.Error(t, err)
}

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUp(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)

	version, err := migrator.Version()
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, migrator.MigrateUp())
	require.NoError(t, migrator.MigrateUp(), "second run is a no-op")

	version, err = migrator.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)

	for _, table := range []string{"settings", "transactions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

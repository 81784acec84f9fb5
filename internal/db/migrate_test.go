package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesLocalStore(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='local_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "local_store", name)
}

func TestMigrate_UpgradesLegacyTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	// v1 store: no updated_at column.
	_, err = db.Exec(`CREATE TABLE local_store (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO local_store (key, value) VALUES ('selectedCareer', 'careers/tec.json')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var value, updatedAt string
	err = db.QueryRow(`SELECT value, updated_at FROM local_store WHERE key = 'selectedCareer'`).Scan(&value, &updatedAt)
	require.NoError(t, err)
	assert.Equal(t, "careers/tec.json", value)
	assert.NotEmpty(t, updatedAt)
}

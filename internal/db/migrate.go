package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Migrate runs all schema migrations. Safe to call repeatedly.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillUpdatedAt(db); err != nil {
		return fmt.Errorf("backfilling updated_at: %w", err)
	}
	return nil
}

var migrations = []string{
	// One row per browser-style storage key (studentProgress_<id>,
	// selectedCareer, selectedYear, customCareers).
	`CREATE TABLE IF NOT EXISTS local_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`ALTER TABLE local_store ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,
}

// backfillUpdatedAt stamps rows written before updated_at existed.
func backfillUpdatedAt(db *sql.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.Exec(`UPDATE local_store SET updated_at = ? WHERE updated_at = ''`, now); err != nil {
		return err
	}
	return nil
}

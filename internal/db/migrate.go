package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id          TEXT PRIMARY KEY,
		seq         INTEGER NOT NULL UNIQUE,
		office      TEXT NOT NULL,
		state       TEXT NOT NULL,
		region      TEXT NOT NULL,
		client_type TEXT NOT NULL,
		complexity  INTEGER NOT NULL CHECK(complexity BETWEEN 1 AND 4),
		hours       INTEGER NOT NULL CHECK(hours BETWEEN 1 AND 7),
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		input_json  TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submission_features (
		submission_id TEXT NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		column_name   TEXT NOT NULL,
		value         INTEGER NOT NULL CHECK(value IN (0, 1)),
		PRIMARY KEY (submission_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_features_column ON submission_features(column_name)`,
}

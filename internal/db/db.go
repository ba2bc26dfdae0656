// Package db opens the session store and scopes writes to transactions.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// memoryDSN names a private in-memory database that is discarded on close.
const memoryDSN = ":memory:"

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
}

// OpenDB opens the session's in-memory SQLite database and applies
// migrations. The pool is pinned to a single connection, since each new
// connection would otherwise see its own empty database.
func OpenDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

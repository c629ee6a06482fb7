// Package db owns the session database. The store is deliberately
// volatile: it always opens an in-memory SQLite database, so every
// program run starts empty and teardown is a plain Close.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenMemory opens a fresh in-memory SQLite database with foreign key
// enforcement on and the schema applied.
func OpenMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The database/sql pool would hand each connection its own empty
	// in-memory database. Pin to a single connection so every caller
	// sees the same document.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return db, nil
}

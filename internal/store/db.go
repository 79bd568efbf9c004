// Package store is the SQLite-backed catalog store.
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sqlx.DB
}

// Pragmas ride on the DSN so the driver applies them to every pooled
// connection, not just the first one opened. case_sensitive_like keeps
// title search a case-sensitive substring match.
const connPragmas = "?_pragma=journal_mode(WAL)" +
	"&_pragma=busy_timeout(30000)" +
	"&_pragma=case_sensitive_like(1)"

func NewSQLiteDB(dsn string) (*DB, error) {
	db, err := sqlx.Open("sqlite", dsn+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// Apply schema
	if _, err := db.Exec(Schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

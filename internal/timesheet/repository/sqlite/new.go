package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"voice-timesheet/pkg/log"
)

// Repository is a repository.TimesheetRepository backed by SQLite.
type Repository struct {
	l    log.Logger
	conn *sql.DB
}

// Open opens (or creates) the database at dsn and applies the schema.
func Open(l log.Logger, dsn string) (*Repository, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Repository{l: l, conn: conn}, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

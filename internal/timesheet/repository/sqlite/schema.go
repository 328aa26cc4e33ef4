// Package sqlite stores resolved timesheet rows in a local SQLite database.
package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS timesheet_entries (
	id                  TEXT PRIMARY KEY,
	run_id              TEXT NOT NULL,
	position            INTEGER NOT NULL,
	entry_date          TEXT,
	billing_id          TEXT NOT NULL,
	hours               REAL NOT NULL,
	matched_description TEXT NOT NULL DEFAULT '',
	score               REAL NOT NULL DEFAULT 0,
	created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_timesheet_entries_run ON timesheet_entries(run_id);
`

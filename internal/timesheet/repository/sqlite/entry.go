package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
)

// AppendEntries inserts every entry of a run inside one transaction.
func (r *Repository) AppendEntries(ctx context.Context, opt repository.AppendEntriesOptions) error {
	if len(opt.Entries) == 0 {
		return nil
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", repository.ErrFailedToAppend, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO timesheet_entries (id, run_id, position, entry_date, billing_id, hours, matched_description, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare: %w", repository.ErrFailedToAppend, err)
	}
	defer stmt.Close()

	for i, e := range opt.Entries {
		var date sql.NullString
		if e.Date != nil {
			date = sql.NullString{String: *e.Date, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), opt.RunID, i, date, e.BillingID, e.Hours, e.MatchedDescription, e.Score); err != nil {
			r.l.Errorf(ctx, "sqlite repository: insert run=%s position=%d: %v", opt.RunID, i, err)
			return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", repository.ErrFailedToAppend, err)
	}

	r.l.Infof(ctx, "sqlite repository: run=%s stored %d rows", opt.RunID, len(opt.Entries))
	return nil
}

// ListEntries returns the rows of a run in the order they were appended.
func (r *Repository) ListEntries(ctx context.Context, runID string) ([]timesheet.ResolvedEntry, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT entry_date, billing_id, hours, matched_description, score
		FROM timesheet_entries
		WHERE run_id = ?
		ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list entries: %w", err)
	}
	defer rows.Close()

	out := []timesheet.ResolvedEntry{}
	for rows.Next() {
		var (
			e    timesheet.ResolvedEntry
			date sql.NullString
		)
		if err := rows.Scan(&date, &e.BillingID, &e.Hours, &e.MatchedDescription, &e.Score); err != nil {
			return nil, fmt.Errorf("sqlite: scan entry: %w", err)
		}
		if date.Valid {
			d := date.String
			e.Date = &d
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

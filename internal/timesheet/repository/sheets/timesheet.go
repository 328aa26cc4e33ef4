package sheets

import (
	"context"
	"fmt"

	"voice-timesheet/internal/timesheet/repository"
)

// AppendEntries writes all rows with a single append call so a run is never half written.
func (r *timesheetRepository) AppendEntries(ctx context.Context, opt repository.AppendEntriesOptions) error {
	if len(opt.Entries) == 0 {
		return nil
	}

	rows := make([][]any, len(opt.Entries))
	for i, e := range opt.Entries {
		rows[i] = e.Row()
	}

	res, err := r.client.AppendRows(ctx, r.spreadsheetID, r.appendRange, rows)
	if err != nil {
		r.l.Errorf(ctx, "sheets repository: AppendRows run=%s: %v", opt.RunID, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, err)
	}

	r.l.Infof(ctx, "sheets repository: run=%s appended %d rows at %s", opt.RunID, res.UpdatedRows, res.UpdatedRange)
	return nil
}

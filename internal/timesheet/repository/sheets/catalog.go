package sheets

import (
	"context"
	"fmt"
	"strings"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
)

// LoadCatalog reads every data row of the reference range in sheet order.
// Rows with neither a description nor a WBS element are skipped.
func (r *catalogRepository) LoadCatalog(ctx context.Context) (timesheet.Catalog, error) {
	records, err := r.client.ReadRecords(ctx, r.spreadsheetID, r.readRange)
	if err != nil {
		r.l.Errorf(ctx, "sheets repository: ReadRecords: %v", err)
		return timesheet.Catalog{}, fmt.Errorf("%w: %w", repository.ErrFailedToLoadCatalog, err)
	}

	entries := make([]timesheet.ReferenceEntry, 0, len(records))
	for _, rec := range records {
		e := timesheet.ReferenceEntry{
			Description: strings.TrimSpace(rec.Get(HeaderDescription)),
			Note:        strings.TrimSpace(rec.Get(HeaderNote)),
			BillingID:   strings.TrimSpace(rec.Get(HeaderWBSElement)),
		}
		if e.Description == "" && e.BillingID == "" {
			continue
		}
		entries = append(entries, e)
	}

	r.l.Infof(ctx, "sheets repository: loaded %d catalog rows from %s", len(entries), r.readRange)
	return timesheet.NewCatalog(entries), nil
}

package repository

import (
	"context"

	"voice-timesheet/internal/timesheet"
)

// CatalogRepository loads the reference catalog billing codes are resolved against.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) (timesheet.Catalog, error)
}

// TimesheetRepository persists resolved entries. AppendEntries writes all rows of one run
// or none of them.
type TimesheetRepository interface {
	AppendEntries(ctx context.Context, opt AppendEntriesOptions) error
}

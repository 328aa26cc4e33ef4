package main

import (
	"context"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
)

type catalogInvalidator interface {
	Invalidate()
}

// catalogReadiness reports not ready while the catalog cannot be loaded or is empty.
// A cached empty catalog is dropped so the next check reads the source again.
func catalogReadiness(repo repository.CatalogRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		catalog, err := repo.LoadCatalog(ctx)
		if err != nil {
			return err
		}
		if catalog.Len() == 0 {
			if inv, ok := repo.(catalogInvalidator); ok {
				inv.Invalidate()
			}
			return timesheet.ErrEmptyCatalog
		}
		return nil
	}
}

package main

import (
	"context"

	"voice-timesheet/internal/timesheet/repository"
)

// discardRepository is the sink when no database is given; extract without --submit never writes.
type discardRepository struct{}

func (discardRepository) AppendEntries(context.Context, repository.AppendEntriesOptions) error {
	return nil
}

package repository

import "voice-timesheet/internal/timesheet"

// AppendEntriesOptions holds the rows produced by one transcript.
// Entries are written in slice order.
type AppendEntriesOptions struct {
	RunID   string
	Entries []timesheet.ResolvedEntry
}

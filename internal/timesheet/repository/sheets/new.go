package sheets

import (
	"context"

	"voice-timesheet/pkg/gsheets"
	"voice-timesheet/pkg/log"
)

// Header names of the reference spreadsheet.
const (
	HeaderDescription = "Description"
	HeaderNote        = "Note"
	HeaderWBSElement  = "WBS element"
)

// Client is the part of *gsheets.Client the repositories use.
type Client interface {
	ReadRecords(ctx context.Context, spreadsheetID, readRange string) ([]gsheets.Record, error)
	AppendRows(ctx context.Context, spreadsheetID, appendRange string, rows [][]any) (gsheets.AppendResult, error)
}

var _ Client = (*gsheets.Client)(nil)

type catalogRepository struct {
	l             log.Logger
	client        Client
	spreadsheetID string
	readRange     string
}

// NewCatalogRepository reads the catalog from the reference spreadsheet.
func NewCatalogRepository(l log.Logger, client Client, spreadsheetID, readRange string) *catalogRepository {
	return &catalogRepository{
		l:             l,
		client:        client,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}
}

type timesheetRepository struct {
	l             log.Logger
	client        Client
	spreadsheetID string
	appendRange   string
}

// NewTimesheetRepository appends resolved entries to the timesheet spreadsheet.
func NewTimesheetRepository(l log.Logger, client Client, spreadsheetID, appendRange string) *timesheetRepository {
	return &timesheetRepository{
		l:             l,
		client:        client,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}
}

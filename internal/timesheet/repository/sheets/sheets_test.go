package sheets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/internal/timesheet/repository/sheets"
	"voice-timesheet/pkg/gsheets"
	"voice-timesheet/pkg/log"
)

type fakeClient struct {
	records []gsheets.Record
	readErr error

	appendErr   error
	appendCalls int
	appended    [][]any
	gotRange    string
}

func (f *fakeClient) ReadRecords(_ context.Context, _, readRange string) ([]gsheets.Record, error) {
	f.gotRange = readRange
	return f.records, f.readErr
}

func (f *fakeClient) AppendRows(_ context.Context, _, appendRange string, rows [][]any) (gsheets.AppendResult, error) {
	f.appendCalls++
	f.gotRange = appendRange
	if f.appendErr != nil {
		return gsheets.AppendResult{}, f.appendErr
	}
	f.appended = append(f.appended, rows...)
	return gsheets.AppendResult{UpdatedRange: appendRange, UpdatedRows: int64(len(rows))}, nil
}

func TestLoadCatalog(t *testing.T) {
	client := &fakeClient{records: []gsheets.Record{
		{"Description": "Data Analysis", "Note": "internal", "WBS element": "WBS-100"},
		{"Description": " ", "Note": "", "WBS element": ""},
		{"Description": "Client Calls", "WBS element": " WBS-200 "},
	}}
	repo := sheets.NewCatalogRepository(log.NewNop(), client, "ref", "Sheet1!A1:C")

	catalog, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []timesheet.ReferenceEntry{
		{Description: "Data Analysis", Note: "internal", BillingID: "WBS-100"},
		{Description: "Client Calls", BillingID: "WBS-200"},
	}, catalog.Entries())
	assert.Equal(t, "Sheet1!A1:C", client.gotRange)
}

func TestLoadCatalogError(t *testing.T) {
	repo := sheets.NewCatalogRepository(log.NewNop(), &fakeClient{readErr: errors.New("403")}, "ref", "A1:C")

	_, err := repo.LoadCatalog(context.Background())
	assert.True(t, errors.Is(err, repository.ErrFailedToLoadCatalog))
}

func TestAppendEntries(t *testing.T) {
	date := "2025-09-23"
	client := &fakeClient{}
	repo := sheets.NewTimesheetRepository(log.NewNop(), client, "ts", "Sheet1!A1")

	err := repo.AppendEntries(context.Background(), repository.AppendEntriesOptions{
		RunID: "run-1",
		Entries: []timesheet.ResolvedEntry{
			{Date: &date, BillingID: "WBS-100", Hours: 4, MatchedDescription: "Data Analysis", Score: 100},
			{BillingID: "WBS-200", Hours: 4, MatchedDescription: "Client Calls", Score: 90},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.appendCalls)
	assert.Equal(t, [][]any{
		{"2025-09-23", "WBS-100", 4.0, "Data Analysis", 100.0},
		{"", "WBS-200", 4.0, "Client Calls", 90.0},
	}, client.appended)
}

func TestAppendEntriesNothingToWrite(t *testing.T) {
	client := &fakeClient{}
	repo := sheets.NewTimesheetRepository(log.NewNop(), client, "ts", "Sheet1!A1")

	require.NoError(t, repo.AppendEntries(context.Background(), repository.AppendEntriesOptions{RunID: "r"}))
	assert.Equal(t, 0, client.appendCalls)
}

func TestAppendEntriesError(t *testing.T) {
	client := &fakeClient{appendErr: errors.New("quota")}
	repo := sheets.NewTimesheetRepository(log.NewNop(), client, "ts", "Sheet1!A1")

	err := repo.AppendEntries(context.Background(), repository.AppendEntriesOptions{
		RunID:   "r",
		Entries: []timesheet.ResolvedEntry{{BillingID: "X", Hours: 8}},
	})
	assert.True(t, errors.Is(err, repository.ErrFailedToAppend))
}

package extractor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/extractor"
)

func testCatalog() timesheet.Catalog {
	return timesheet.NewCatalog([]timesheet.ReferenceEntry{
		{Description: "Data Analysis", BillingID: "WBS-100"},
		{Description: "Client Calls", BillingID: "WBS-200"},
	})
}

func TestBestMatch(t *testing.T) {
	m, err := extractor.BestMatch("data analysis", testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Position)
	assert.Equal(t, "WBS-100", m.Entry.BillingID)

	other, err := extractor.BestMatch("data analysis", timesheet.NewCatalog(testCatalog().Entries()[1:]))
	require.NoError(t, err)
	assert.Greater(t, m.Score, other.Score)
}

func TestBestMatchTiesGoToEarliestRow(t *testing.T) {
	catalog := timesheet.NewCatalog([]timesheet.ReferenceEntry{
		{Description: "Client Calls", BillingID: "A"},
		{Description: "Calls Client", BillingID: "B"},
	})

	m, err := extractor.BestMatch("calls", catalog)
	require.NoError(t, err)
	assert.Equal(t, "A", m.Entry.BillingID)
	assert.Equal(t, 100.0, m.Score)
}

func TestBestMatchEmptyText(t *testing.T) {
	m, err := extractor.BestMatch("", testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Position)
	assert.Equal(t, 0.0, m.Score)
}

func TestBestMatchEmptyCatalog(t *testing.T) {
	_, err := extractor.BestMatch("data analysis", timesheet.NewCatalog(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, timesheet.ErrEmptyCatalog))

	var stageErr *timesheet.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, timesheet.StageResolve, stageErr.Stage)
}

func TestResolve(t *testing.T) {
	date := "2025-09-23"
	entry, err := extractor.Resolve(timesheet.RawTaskMention{TaskText: "calls", Hours: 2}, &date, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, "WBS-200", entry.BillingID)
	assert.Equal(t, "Client Calls", entry.MatchedDescription)
	assert.Equal(t, 2.0, entry.Hours)
	require.NotNil(t, entry.Date)
	assert.Equal(t, date, *entry.Date)
}

func TestBestMatchPrefersCloserLeftoverTokens(t *testing.T) {
	catalog := timesheet.NewCatalog([]timesheet.ReferenceEntry{
		{Description: "Data Code", BillingID: "WBS-1"},
		{Description: "Data Calls", BillingID: "WBS-2"},
	})

	m, err := extractor.BestMatch("data analysis", catalog)
	require.NoError(t, err)
	assert.Equal(t, "WBS-2", m.Entry.BillingID)
	assert.Equal(t, 1, m.Position)
	assert.InDelta(t, 69.5652173913, m.Score, 1e-6)
}

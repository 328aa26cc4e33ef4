package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/internal/timesheet/repository/file"
	"voice-timesheet/pkg/log"
)

const catalogYAML = `
entries:
  - description: Data Analysis
    note: internal
    wbs_element: WBS-100
  - description: Client Calls
    wbs_element: WBS-200
`

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	catalog, err := file.NewCatalogRepository(log.NewNop(), path).LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []timesheet.ReferenceEntry{
		{Description: "Data Analysis", Note: "internal", BillingID: "WBS-100"},
		{Description: "Client Calls", BillingID: "WBS-200"},
	}, catalog.Entries())
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := file.NewCatalogRepository(log.NewNop(), filepath.Join(dir, "missing.yaml")).LoadCatalog(context.Background())
	assert.True(t, errors.Is(err, repository.ErrFailedToLoadCatalog))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("entries: [unterminated"), 0o600))
	_, err = file.NewCatalogRepository(log.NewNop(), bad).LoadCatalog(context.Background())
	assert.True(t, errors.Is(err, repository.ErrFailedToLoadCatalog))
}

func TestParseEmpty(t *testing.T) {
	catalog, err := file.Parse([]byte("entries: []"))
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

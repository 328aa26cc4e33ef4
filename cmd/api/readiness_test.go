package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository/cache"
	"voice-timesheet/internal/timesheet/repository/file"
	"voice-timesheet/pkg/log"
)

func TestCatalogReadinessRecoversFromEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: []\n"), 0o644))

	l := log.NewNop()
	repo := cache.NewCatalogRepository(l, file.NewCatalogRepository(l, path), 1, time.Hour)
	ready := catalogReadiness(repo)

	assert.ErrorIs(t, ready(context.Background()), timesheet.ErrEmptyCatalog)

	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - description: Client Calls\n    wbs_element: WBS-200\n"), 0o644))
	assert.NoError(t, ready(context.Background()))
}

func TestCatalogReadinessLoadError(t *testing.T) {
	l := log.NewNop()
	ready := catalogReadiness(file.NewCatalogRepository(l, filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Error(t, ready(context.Background()))
}

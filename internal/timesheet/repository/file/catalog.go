// Package file loads the reference catalog from a YAML document on disk.
//
//	entries:
//	  - description: Data Analysis
//	    note: internal
//	    wbs_element: WBS-100
package file

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/pkg/log"
)

type document struct {
	Entries []timesheet.ReferenceEntry `yaml:"entries"`
}

type catalogRepository struct {
	l    log.Logger
	path string
}

// NewCatalogRepository reads the catalog from the YAML file at path on every load.
func NewCatalogRepository(l log.Logger, path string) *catalogRepository {
	return &catalogRepository{l: l, path: path}
}

// LoadCatalog parses the file and keeps entries in document order.
func (r *catalogRepository) LoadCatalog(ctx context.Context) (timesheet.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.l.Errorf(ctx, "file repository: read %s: %v", r.path, err)
		return timesheet.Catalog{}, fmt.Errorf("%w: %w", repository.ErrFailedToLoadCatalog, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		r.l.Errorf(ctx, "file repository: parse %s: %v", r.path, err)
		return timesheet.Catalog{}, fmt.Errorf("%w: %w", repository.ErrFailedToLoadCatalog, err)
	}

	r.l.Debugf(ctx, "file repository: loaded %d catalog rows from %s", catalog.Len(), r.path)
	return catalog, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (timesheet.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return timesheet.Catalog{}, fmt.Errorf("invalid catalog yaml: %w", err)
	}
	return timesheet.NewCatalog(doc.Entries), nil
}

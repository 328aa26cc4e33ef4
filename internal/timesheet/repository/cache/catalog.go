package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/pkg/log"
)

const catalogKey = "catalog"

type catalogRepository struct {
	l     log.Logger
	next  repository.CatalogRepository
	lru   *expirable.LRU[string, timesheet.Catalog]
	group singleflight.Group
}

// NewCatalogRepository wraps next so a loaded catalog is reused for ttl.
// Concurrent misses share a single load. Failed loads are not cached.
func NewCatalogRepository(l log.Logger, next repository.CatalogRepository, size int, ttl time.Duration) *catalogRepository {
	if size <= 0 {
		size = 1
	}
	return &catalogRepository{
		l:    l,
		next: next,
		lru:  expirable.NewLRU[string, timesheet.Catalog](size, nil, ttl),
	}
}

// LoadCatalog returns the cached snapshot or loads a fresh one.
func (r *catalogRepository) LoadCatalog(ctx context.Context) (timesheet.Catalog, error) {
	if c, ok := r.lru.Get(catalogKey); ok {
		return c, nil
	}

	// The shared load ignores the starting caller's cancellation. Each caller waits on its own ctx.
	ch := r.group.DoChan(catalogKey, func() (interface{}, error) {
		c, err := r.next.LoadCatalog(context.WithoutCancel(ctx))
		if err != nil {
			return timesheet.Catalog{}, err
		}
		r.lru.Add(catalogKey, c)
		return c, nil
	})

	select {
	case <-ctx.Done():
		return timesheet.Catalog{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return timesheet.Catalog{}, res.Err
		}
		c := res.Val.(timesheet.Catalog)
		if !res.Shared {
			r.l.Debugf(ctx, "catalog cache: refreshed, %d rows", c.Len())
		}
		return c, nil
	}
}

// Invalidate drops the cached snapshot so the next load goes to the source.
func (r *catalogRepository) Invalidate() {
	r.lru.Remove(catalogKey)
}

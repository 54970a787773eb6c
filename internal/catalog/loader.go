package catalog

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog/source"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/logger"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
)

// EmptyMessage is shown in place of the grid when the catalog could not be loaded.
const EmptyMessage = "No data found. Please add data/projects.json"

// Loader fetches the catalog and the optional icon manifest concurrently.
type Loader struct {
	Catalog  source.Source
	Manifest source.Source
	Logger   ports.Logger
}

// Result is the outcome of one Load. Err is set only for catalog failures;
// manifest failures leave Manifest nil and are never reported.
type Result struct {
	Items    []Item
	Manifest icons.Manifest
	Issues   []Issue
	Err      error
}

// Load fetches both documents. It never fails as a whole: a catalog failure
// yields an empty item list and Err, a manifest failure yields a nil manifest.
func (l *Loader) Load(ctx context.Context) Result {
	log := l.Logger
	if log == nil {
		log = logger.NewNoOp()
	}

	var res Result
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		started := time.Now()
		items, err := l.fetchCatalog(gctx)
		if err != nil {
			log.Error(ctx, "catalog load failed", "error", err, "source", l.Catalog.String())
			res.Items = []Item{}
			res.Err = err
			return nil
		}
		res.Items = items
		res.Issues = Check(items)
		log.Info(ctx, "catalog loaded",
			"source", l.Catalog.String(),
			"items", len(items),
			"duration_ms", time.Since(started).Milliseconds(),
		)
		for _, issue := range res.Issues {
			log.Warn(ctx, "catalog issue", "index", issue.Index, "item_id", issue.ID, "issue", issue.Message)
		}
		return nil
	})

	if l.Manifest != nil {
		g.Go(func() error {
			data, err := l.Manifest.Fetch(gctx)
			if err != nil {
				log.Debug(ctx, "icon manifest unavailable", "error", err)
				return nil
			}
			manifest, err := icons.ParseManifest(data)
			if err != nil {
				log.Debug(ctx, "icon manifest ignored", "error", err)
				return nil
			}
			res.Manifest = manifest
			log.Debug(ctx, "icon manifest loaded", "icons", manifest.Len())
			return nil
		})
	}

	_ = g.Wait()
	return res
}

func (l *Loader) fetchCatalog(ctx context.Context) ([]Item, error) {
	data, err := l.Catalog.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(l.Catalog.String(), data)
}

// Apply installs a Result into store and resolver.
func (r Result) Apply(store *Store, resolver *icons.Resolver) {
	if store != nil {
		if r.Err != nil {
			store.Fail(r.Err)
		} else {
			store.Replace(r.Items)
		}
	}
	if resolver != nil && r.Manifest != nil {
		resolver.SetManifest(r.Manifest)
	}
}

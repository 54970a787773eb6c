package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog/source"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
	"github.com/alexisbeaulieu97/workflowdeck/internal/server"
	"github.com/alexisbeaulieu97/workflowdeck/pkg/diff"
)

type serveOptions struct {
	addr  string
	watch bool
}

func newServeCmd(app *AppContext) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog page over HTTP",
		Long: `Serve the catalog page, item details, the JSON API and icon files.
Local catalog files can be watched and reloaded on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.serve")
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := runServe(ctx, app, logger, opts, cmd.Flags().Changed("watch"))
			if err != nil {
				logger.Error(ctx, "serve command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload a local catalog file when it changes (overrides catalog.watch)")

	return cmd
}

func runServe(ctx context.Context, app *AppContext, logger ports.Logger, opts *serveOptions, watchSet bool) error {
	cfg := app.Config

	addr := cfg.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}
	watch := cfg.Catalog.Watch
	if watchSet {
		watch = opts.watch
	}

	var metrics *server.Metrics
	var onBadge func(render.BadgeOutcome)
	if cfg.Server.Metrics {
		metrics = server.NewMetrics()
		onBadge = metrics.ObserveBadge
	}

	resolver := app.NewResolver()
	renderer, err := app.NewRenderer(resolver, onBadge)
	if err != nil {
		return newCommandError("serve", "preparing templates", err, "This is a build problem; reinstall workflowdeck.")
	}

	loader, err := app.NewLoader(logger)
	if err != nil {
		return newCommandError("serve", "opening the catalog source", err, "Check catalog.source in your configuration.")
	}

	store := catalog.NewStore(nil)
	var previous []byte
	reload := func(ctx context.Context) {
		res := loader.Load(ctx)
		res.Apply(store, resolver)
		metrics.ObserveCatalog(len(res.Items), res.Err)
		if res.Err != nil {
			return
		}
		current, err := catalog.Encode(res.Items)
		if err != nil {
			return
		}
		if previous != nil {
			added, removed := diff.Stats(previous, current)
			logger.Info(ctx, "catalog reloaded", "items", len(res.Items), "lines_added", added, "lines_removed", removed)
		}
		previous = current
	}
	reload(ctx)

	prefStore, err := app.OpenPrefs()
	if err != nil {
		return newCommandError("serve", "opening the preference store", err, "Check prefs.path is writable.")
	}
	defer prefStore.Close()

	srv, err := server.New(server.Options{
		Title:           cfg.Title,
		Slides:          cfg.UI.Slides,
		Store:           store,
		Resolver:        resolver,
		Renderer:        renderer,
		Prefs:           prefStore,
		IconsDir:        cfg.Icons.Dir,
		Metrics:         metrics,
		Notifications:   cfg.UI.Notifications,
		Logger:          logger,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if watch {
		file, ok := loader.Catalog.(*source.FileSource)
		if !ok {
			logger.Warn(ctx, "catalog watch ignored for remote source", "source", loader.Catalog.String())
		} else {
			watcher, err := catalog.NewWatcher(file.Path, 0, reload, logger)
			if err != nil {
				return newCommandError("serve", "watching the catalog file", err, "Disable catalog.watch or check the file path.")
			}
			g.Go(func() error { return watcher.Run(gctx) })
			logger.Info(ctx, "watching catalog", "path", file.Path)
		}
	}
	g.Go(func() error { return srv.ListenAndServe(gctx, addr) })

	return g.Wait()
}

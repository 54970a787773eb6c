package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
)

type renderOptions struct {
	filters filterFlags
	output  string
	theme   string
	item    string
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the catalog page as static HTML",
		Long: `Render the catalog page, optionally filtered, to a file or stdout.
With --item, only the detail modal of that item is rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.render")

			err := renderTo(ctx, app, logger, opts, cmd.OutOrStdout())
			if err != nil {
				logger.Error(ctx, "render command failed", "error", err)
			}
			return err
		},
	}

	opts.filters.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to render: light or dark (default: stored preference)")
	cmd.Flags().StringVar(&opts.item, "item", "", "Render only the detail modal of this item id")

	return cmd
}

// renderTo writes to stdout or, with --output, to a file that is closed
// before returning so a failed flush is reported.
func renderTo(ctx context.Context, app *AppContext, logger ports.Logger, opts *renderOptions, stdout io.Writer) error {
	if opts.output == "" || opts.output == "-" {
		return runRender(ctx, app, logger, opts, stdout)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return newCommandError("render", "creating "+opts.output, err, "Check the output directory exists and is writable.")
	}
	if err := runRender(ctx, app, logger, opts, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return newCommandError("render", "writing "+opts.output, err, "Check the disk has space and the file is writable.")
	}
	return nil
}

func runRender(ctx context.Context, app *AppContext, logger ports.Logger, opts *renderOptions, out io.Writer) error {
	if opts.theme != "" && !prefs.ValidTheme(opts.theme) {
		return newCommandError("render", "reading --theme", errInvalidTheme(opts.theme), "Use light or dark.")
	}

	store, resolver, err := loadCatalog(ctx, app, logger)
	if err != nil {
		return err
	}

	renderer, err := app.NewRenderer(resolver, nil)
	if err != nil {
		return newCommandError("render", "preparing templates", err, "This is a build problem; reinstall workflowdeck.")
	}

	if opts.item != "" {
		item, err := store.Get(opts.item)
		if err != nil {
			return newCommandError("render", "looking up the item", err, "Run 'workflowdeck list' to see available ids.")
		}
		return renderer.WriteModal(out, item)
	}

	theme := opts.theme
	if theme == "" {
		theme = storedTheme(ctx, app, logger)
	}

	state := opts.filters.state()
	items, loadErr := store.Snapshot()
	return renderer.WritePage(ctx, out, renderPage(app, theme, state, items, loadErr))
}

// loadCatalog fetches the catalog and manifest into a fresh store and
// resolver.
func loadCatalog(ctx context.Context, app *AppContext, logger ports.Logger) (*catalog.Store, *icons.Resolver, error) {
	loader, err := app.NewLoader(logger)
	if err != nil {
		return nil, nil, newCommandError("load the catalog", "opening the catalog source", err, "Check catalog.source in your configuration.")
	}
	store := catalog.NewStore(nil)
	resolver := app.NewResolver()
	loader.Load(ctx).Apply(store, resolver)
	return store, resolver, nil
}

// storedTheme reads the theme preference, falling back to the configured
// default when the store cannot be opened.
func storedTheme(ctx context.Context, app *AppContext, logger ports.Logger) string {
	fallback := app.Config.Prefs.Theme
	if fallback == "" {
		fallback = prefs.DefaultTheme
	}
	store, err := app.OpenPrefs()
	if err != nil {
		logger.Warn(ctx, "preference store unavailable", "error", err)
		return fallback
	}
	defer store.Close()

	theme, err := store.Theme(ctx)
	if err != nil {
		logger.Warn(ctx, "theme preference unreadable", "error", err)
		return fallback
	}
	return theme
}

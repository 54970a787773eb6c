package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog/source"
	"github.com/alexisbeaulieu97/workflowdeck/internal/config"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/logger"
	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config     *config.Config
	ConfigPath string
	Logger     ports.Logger
}

// Init resolves the configuration and builds the logger. It runs before
// every command that needs them.
func (a *AppContext) Init(cmd *cobra.Command, flags *rootFlags) error {
	path, err := resolveConfigPath(flags.configPath)
	if err != nil {
		return newCommandError("load configuration", "locating the config file", err, "Pass --config with the path to workflowdeck.yaml.")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return newCommandError("load configuration", displayPath(path), err, "Fix the reported field and try again.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	format := cfg.Log.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: format != "json",
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.Config = cfg
	a.ConfigPath = path
	a.Logger = log
	return nil
}

// CommandContext returns the command context tagged with a fresh correlation
// ID, and a logger scoped to the command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	log := a.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	return ctx, log.With("command", name)
}

// NewLoader builds a catalog loader from the configuration. A manifest that
// cannot be opened is skipped, matching a manifest that cannot be fetched.
func (a *AppContext) NewLoader(log ports.Logger) (*catalog.Loader, error) {
	opts := a.Config.SourceOptions()
	catalogSource, err := source.Open(a.Config.Catalog.Source, opts)
	if err != nil {
		return nil, err
	}

	loader := &catalog.Loader{Catalog: catalogSource, Logger: log.With("component", "loader")}
	if manifest := a.Config.Icons.Manifest; manifest != "" {
		if ms, err := source.Open(manifest, opts); err == nil {
			loader.Manifest = ms
		}
	}
	return loader, nil
}

// NewResolver creates the icon resolver for the configured base.
func (a *AppContext) NewResolver() *icons.Resolver {
	return icons.NewResolver(a.Config.Icons.Base)
}

// NewProber returns the configured badge prober, or nil for "none".
func (a *AppContext) NewProber() icons.Prober {
	switch a.Config.Icons.Probe {
	case "dir":
		return icons.DirProber{Root: a.Config.Icons.Dir}
	case "http":
		return icons.NewHTTPProber(a.Config.Icons.Base)
	default:
		return nil
	}
}

// NewRenderer builds the HTML renderer.
func (a *AppContext) NewRenderer(resolver *icons.Resolver, onBadge func(render.BadgeOutcome)) (*render.Renderer, error) {
	return render.New(resolver, render.Options{Prober: a.NewProber(), OnBadge: onBadge})
}

// OpenPrefs opens the preference store and applies the configured default
// theme.
func (a *AppContext) OpenPrefs() (*prefs.Store, error) {
	store, err := prefs.Open(a.Config.Prefs.Path)
	if err != nil {
		return nil, err
	}
	if theme := a.Config.Prefs.Theme; theme != "" {
		if err := store.SetFallbackTheme(theme); err != nil {
			_ = store.Close()
			return nil, err
		}
	}
	return store, nil
}

func displayPath(path string) string {
	if path == "" {
		return "defaults and environment"
	}
	return path
}

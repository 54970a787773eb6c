package config

import (
	"time"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog/source"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

// Config is the root of workflowdeck.yaml.
type Config struct {
	Title   string        `yaml:"title" env:"TITLE" validate:"required"`
	Catalog CatalogConfig `yaml:"catalog" envPrefix:"CATALOG_"`
	Icons   IconsConfig   `yaml:"icons" envPrefix:"ICONS_"`
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	Prefs   PrefsConfig   `yaml:"prefs" envPrefix:"PREFS_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
	UI      UIConfig      `yaml:"ui" envPrefix:"UI_"`
}

// CatalogConfig locates the catalog document.
type CatalogConfig struct {
	Source   string           `yaml:"source" env:"SOURCE" validate:"required,source_uri"`
	CacheDir string           `yaml:"cache_dir" env:"CACHE_DIR"`
	Watch    bool             `yaml:"watch" env:"WATCH"`
	S3       source.S3Options `yaml:"s3" envPrefix:"S3_"`
}

// IconsConfig locates icon files and the optional manifest.
type IconsConfig struct {
	Manifest string `yaml:"manifest" env:"MANIFEST" validate:"omitempty,source_uri"`
	// Dir is a local directory served under /assets/icons.
	Dir string `yaml:"dir" env:"DIR"`
	// Base is the URL prefix badge sources are built from.
	Base string `yaml:"base" env:"BASE" validate:"required"`
	// Probe selects how badge icons are checked before rendering.
	Probe string `yaml:"probe" env:"PROBE" validate:"oneof=none dir http"`
}

// ServerConfig configures `workflowdeck serve`.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" validate:"gte=0"`
	Metrics         bool          `yaml:"metrics" env:"METRICS"`
}

// PrefsConfig locates the preference database.
type PrefsConfig struct {
	Path  string `yaml:"path" env:"PATH" validate:"required"`
	Theme string `yaml:"theme" env:"THEME" validate:"omitempty,theme"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=console json"`
}

// UIConfig tunes the decorative widgets.
type UIConfig struct {
	Slides        []widgets.Slide `yaml:"slides"`
	Notifications bool            `yaml:"notifications" env:"NOTIFICATIONS"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title: "Workflow Templates",
		Catalog: CatalogConfig{
			Source: "data/projects.json",
		},
		Icons: IconsConfig{
			Manifest: "assets/icons/icons.json",
			Dir:      "assets/icons",
			Base:     "/assets/icons",
			Probe:    "none",
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ShutdownTimeout: 5 * time.Second,
			Metrics:         true,
		},
		Prefs: PrefsConfig{
			Path: "workflowdeck.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			Slides:        append([]widgets.Slide(nil), widgets.DefaultSlides...),
			Notifications: true,
		},
	}
}

// SourceOptions returns the options catalog sources are opened with.
func (c *Config) SourceOptions() source.Options {
	return source.Options{CacheDir: c.Catalog.CacheDir, S3: c.Catalog.S3}
}

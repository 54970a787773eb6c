package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `title: "Automation Library"
catalog:
  source: "git+https://github.com/acme/workflows.git?ref=main#data/projects.json"
icons:
  manifest: "https://cdn.example.test/icons/icons.json"
  base: "https://cdn.example.test/icons"
  probe: http
server:
  addr: "0.0.0.0:9000"
  shutdown_timeout: 10s
prefs:
  path: "/var/lib/workflowdeck/prefs.db"
  theme: dark
ui:
  slides:
    - title: "Hello"
      body: "World"
`

	invalidYAML := `title: [1, 0]
catalog:
  source: data/projects.json
`

	badSource := `catalog:
  source: "ftp://example.test/projects.json"
`

	badTheme := `prefs:
  theme: sepia
`

	badProbe := `icons:
  probe: magic
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed over defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Automation Library", cfg.Title)
				require.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
				require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				require.Equal(t, "dark", cfg.Prefs.Theme)
				require.Equal(t, "http", cfg.Icons.Probe)
				require.Len(t, cfg.UI.Slides, 1)
				require.Equal(t, "info", cfg.Log.Level, "defaults survive")
				require.True(t, cfg.UI.Notifications)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *wferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unsupported source scheme is rejected",
			contents: badSource,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *wferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "catalog.source", validationErr.Field)
				require.Contains(t, validationErr.Message, "source_uri")
			},
		},
		{
			name:     "unknown theme is rejected",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *wferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "prefs.theme", validationErr.Field)
			},
		},
		{
			name:     "unknown probe is rejected",
			contents: badProbe,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *wferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "icons.probe", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *wferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(Default()))
}

func TestValidateConfigCrossFieldRules(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Icons.Probe = "dir"
	cfg.Icons.Dir = ""
	err := ValidateConfig(cfg)
	var validationErr *wferrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "icons.dir", validationErr.Field)

	cfg = Default()
	cfg.UI.Slides = append(cfg.UI.Slides, cfg.UI.Slides[0])
	cfg.UI.Slides[1].Title = " "
	err = ValidateConfig(cfg)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "ui.slides[1].title", validationErr.Field)

	require.Error(t, ValidateConfig(nil))
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	path := writeTempConfig(t, "title: From File\n")
	t.Setenv("WORKFLOWDECK_TITLE", "From Env")
	t.Setenv("WORKFLOWDECK_CATALOG_SOURCE", "s3://bucket/catalog/projects.json")
	t.Setenv("WORKFLOWDECK_CATALOG_S3_REGION", "eu-west-1")
	t.Setenv("WORKFLOWDECK_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("WORKFLOWDECK_LOG_LEVEL", "debug")
	t.Setenv("WORKFLOWDECK_UI_NOTIFICATIONS", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "From Env", cfg.Title)
	require.Equal(t, "s3://bucket/catalog/projects.json", cfg.Catalog.Source)
	require.Equal(t, "eu-west-1", cfg.Catalog.S3.Region)
	require.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.UI.Notifications)
	require.Equal(t, "eu-west-1", cfg.SourceOptions().S3.Region)
}

func TestLoadRejectsInvalidEnvironmentValue(t *testing.T) {
	t.Setenv("WORKFLOWDECK_LOG_FORMAT", "xml")

	_, err := Load("")
	var validationErr *wferrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "log.format", validationErr.Field)
}

func TestLoadReportsMalformedEnvironment(t *testing.T) {
	t.Setenv("WORKFLOWDECK_SERVER_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load("")
	var parseErr *wferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "environment", parseErr.Path)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

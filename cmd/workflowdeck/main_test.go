package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCatalog = `{"projects": [
  {
    "id": 1,
    "title": "Slack Alerts",
    "description": "Posts alerts to Slack.",
    "useCases": ["Ops"],
    "integrations": ["Slack", "PagerDuty"],
    "difficulty": "easy",
    "tags": ["alerting"],
    "overview": "<p>Routes alerts.</p><script>alert(1)</script>",
    "downloadUrl": "https://example.test/slack.json"
  },
  {
    "id": "2",
    "title": "CRM <Sync>",
    "description": "Syncs contacts. Runs hourly. Handles retries.",
    "useCases": ["Sales"],
    "integrations": ["HubSpot"],
    "difficulty": "hard"
  }
]}`

type fixture struct {
	dir     string
	config  string
	catalog string
}

// newFixture writes a catalog and a config pointing at it into a temp dir.
func newFixture(t *testing.T, catalogJSON string) fixture {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogJSON), 0o600))

	configPath := filepath.Join(dir, "workflowdeck.yaml")
	contents := "title: Test Deck\n" +
		"catalog:\n  source: " + catalogPath + "\n" +
		"icons:\n  manifest: \"\"\n  dir: " + dir + "\n  base: /assets/icons\n" +
		"prefs:\n  path: " + filepath.Join(dir, "prefs.db") + "\n" +
		"log:\n  level: error\n" +
		"ui:\n  notifications: false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	return fixture{dir: dir, config: configPath, catalog: catalogPath}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd(&AppContext{})
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

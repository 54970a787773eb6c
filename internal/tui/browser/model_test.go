package browser

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/events"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

func fixtureItems() []catalog.Item {
	return []catalog.Item{
		{
			ID:           "1",
			Title:        "Slack Alerts",
			Description:  "Posts alerts to Slack.",
			UseCases:     []string{"Ops"},
			Integrations: []string{"Slack", "PagerDuty"},
			Difficulty:   "easy",
			Tags:         []string{"alerting"},
			Overview:     "<p>Routes <b>alerts</b>.</p>",
			DownloadURL:  "https://example.test/slack.json",
		},
		{
			ID:           "2",
			Title:        "CRM Sync",
			Description:  "Syncs contacts. Runs hourly. Handles retries.",
			UseCases:     []string{"Sales"},
			Integrations: []string{"HubSpot"},
			Difficulty:   "hard",
		},
		{
			ID:           "3",
			Title:        "Weekly Digest",
			Description:  "Emails a digest.",
			UseCases:     []string{"Ops", "Marketing"},
			Integrations: []string{"Gmail"},
			Difficulty:   "medium",
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	m := NewModel(Options{
		Title:         "Test Catalog",
		Store:         catalog.NewStore(fixtureItems()),
		Slides:        widgets.DefaultSlides,
		Notifications: true,
		Rand:          rand.New(rand.NewSource(1)),
	})
	m.width = 100
	m.height = 40
	return m
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	assert.Equal(t, prefs.DefaultTheme, m.Theme())
	assert.False(t, m.IsLoading(), "no loader means nothing to wait for")
	assert.Equal(t, modal.Closed, m.ModalState())
	assert.Len(t, m.Visible(), 3)
	assert.Equal(t, 3, m.slider.Count())

	assert.Equal(t, 1, m.table.Count(events.KeyEnter))
	assert.Equal(t, 1, m.table.Count(events.Input))
	assert.Equal(t, 1, m.table.Count(events.Change))
	assert.Zero(t, m.table.Count(events.KeyEscape))
}

func TestNewModel_BindIsIdempotent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.bindHandlers()
	m.bindHandlers()

	assert.Equal(t, 1, m.table.Count(events.KeyEnter))
	assert.Equal(t, 1, m.table.Count(events.Input))
	assert.Equal(t, 1, m.table.Count(events.Change))
}

func TestNewModel_Defaults(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Theme: "sepia"})

	assert.Equal(t, prefs.ThemeLight, m.Theme())
	assert.Empty(t, m.Visible())
	assert.Zero(t, m.slider.Count())
	require.NotNil(t, m.Init())
}

func TestModel_CursorWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.MoveCursorUp()
	item, ok := m.GetSelectedItem()
	require.True(t, ok)
	assert.Equal(t, "Weekly Digest", item.Title)

	m.MoveCursorDown()
	item, ok = m.GetSelectedItem()
	require.True(t, ok)
	assert.Equal(t, "Slack Alerts", item.Title)
}

func TestModel_CursorOnEmptyList(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})
	m.MoveCursorDown()
	m.MoveCursorUp()

	_, ok := m.GetSelectedItem()
	assert.False(t, ok)
	assert.Zero(t, m.cursor)
}

func TestCycleOption(t *testing.T) {
	t.Parallel()

	options := []string{"Marketing", "Ops"}
	tests := []struct {
		name    string
		current string
		want    string
	}{
		{name: "unset moves to first", current: "", want: "Marketing"},
		{name: "middle advances", current: "Marketing", want: "Ops"},
		{name: "last wraps to unset", current: "Ops", want: ""},
		{name: "unknown resets", current: "Sales", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cycleOption(options, tt.current))
		})
	}

	assert.Equal(t, "", cycleOption(nil, ""))
}

package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(icons.NewResolver("/assets/icons"), opts)
	require.NoError(t, err)
	return r
}

func TestCardLeavesItemUntouched(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	item := catalog.Item{ID: "1", Title: "Alerts", Description: "Sends alerts."}
	card := r.Card(context.Background(), item)

	require.Equal(t, "Sends alerts."+Filler+Filler, card.Description)
	require.Equal(t, "Sends alerts.", item.Description)
}

func TestBadgesLimitedToFirstSix(t *testing.T) {
	t.Parallel()

	var outcomes []BadgeOutcome
	r := newRenderer(t, Options{OnBadge: func(o BadgeOutcome) { outcomes = append(outcomes, o) }})
	names := []string{"Slack", "Gmail", "Notion", "Airtable", "Stripe", "Zapier", "Discord", "Jira"}

	badges := r.Badges(context.Background(), names)
	require.Len(t, badges, MaxBadges)
	for i, b := range badges {
		require.Equal(t, names[i], b.Name)
		require.True(t, b.Deferred)
	}
	require.Len(t, outcomes, MaxBadges)
	require.Equal(t, "/assets/icons/slack.svg", badges[0].Src)
}

func TestBadgesWithProberDropMissingIcons(t *testing.T) {
	t.Parallel()

	var outcomes []BadgeOutcome
	prober := icons.ProberFunc(func(_ context.Context, file string) bool {
		return file == "sheets.png"
	})
	r := newRenderer(t, Options{
		Prober:  prober,
		OnBadge: func(o BadgeOutcome) { outcomes = append(outcomes, o) },
	})

	badges := r.Badges(context.Background(), []string{"Google Sheets", "Unknown Tool"})
	require.Len(t, badges, 1)
	require.Equal(t, "/assets/icons/sheets.png", badges[0].Src)
	require.False(t, badges[0].Deferred)
	require.Equal(t, []BadgeOutcome{BadgeResolved, BadgeDropped}, outcomes)
}

func TestWriteCardsEscapesText(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	item := catalog.Item{
		ID:           "x1",
		Title:        `<script>alert("x")</script>`,
		Description:  `Tom & Jerry's "show".`,
		Integrations: []string{"Slack"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.WriteCards(context.Background(), &buf, []catalog.Item{item}))
	out := buf.String()

	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
	require.Contains(t, out, "Tom &amp; Jerry")
	require.Contains(t, out, `data-card-id="x1"`)
	require.Contains(t, out, "card-cta")
	require.Contains(t, out, `href="/items/x1" data-transition`)
	require.Contains(t, out, `data-candidates="slack"`)
	require.Contains(t, out, `data-exts="svg,png,webp"`)
}

func TestWriteModalSanitisesOverview(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	item := catalog.Item{
		ID:          "7",
		Title:       "Sync",
		Overview:    `<p>Rich <strong>text</strong></p><script>alert(1)</script>`,
		UseCases:    []string{"Ops", "Sales"},
		WorkflowURL: "https://example.test/wf.json",
	}

	var buf bytes.Buffer
	require.NoError(t, r.WriteModal(&buf, item))
	out := buf.String()

	require.Contains(t, out, "<strong>text</strong>")
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "Use cases: Ops, Sales")
	require.NotContains(t, out, "Integrations:")
	require.Contains(t, out, `href="https://example.test/wf.json"`)
	require.Contains(t, out, `href="/" data-transition`)
	require.Equal(t, 4, strings.Count(out, "—"))
}

func TestWriteModalWithoutOverviewOrURL(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	var buf bytes.Buffer
	require.NoError(t, r.WriteModal(&buf, catalog.Item{ID: "8", Title: "Bare"}))
	out := buf.String()

	require.Contains(t, out, "No overview yet.")
	require.NotContains(t, out, "dl-button")
}

func TestWritePage(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	items := []catalog.Item{
		{ID: "1", Title: "Alpha", UseCases: []string{"Sales"}},
		{ID: "2", Title: "Beta", UseCases: []string{"Ops"}},
	}

	var buf bytes.Buffer
	err := r.WritePage(context.Background(), &buf, Page{
		Title:   "Workflows",
		Theme:   "dark",
		State:   catalog.FilterState{UseCase: "Ops"},
		Options: catalog.BuildOptions(items),
		Items:   items[1:],
		Slides:  []widgets.Slide{{Title: "One"}, {Title: "Two"}},
	})
	require.NoError(t, err)
	out := buf.String()

	require.Contains(t, out, `data-theme="dark"`)
	require.Contains(t, out, "1 result<")
	require.Contains(t, out, `<option value="Ops" selected>`)
	require.Contains(t, out, `data-card-id="2"`)
	require.NotContains(t, out, `data-card-id="1"`)
	require.Contains(t, out, `class="dot active"`)
	require.Contains(t, out, `data-enter-ms="320"`)
	require.Contains(t, out, `data-slide-ms="4000"`)
}

func TestWritePageInlinesClientScript(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	items := []catalog.Item{{ID: "1", Title: "Alpha", Integrations: []string{"No Such Tool"}}}

	var buf bytes.Buffer
	require.NoError(t, r.WritePage(context.Background(), &buf, Page{Items: items, Notifications: true}))
	out := buf.String()

	require.Contains(t, out, `data-candidates="no-such-tool|tool"`)
	require.Contains(t, out, `<script id="app-script">`)
	require.Contains(t, out, "advanceIcon")
	require.Contains(t, out, `data-icon-base="/assets/icons"`)
	require.Contains(t, out, `data-notifications="true"`)
	require.Contains(t, out, `id="notif-data"`)
	require.Contains(t, out, `"names":["Mia"`)
	require.NotContains(t, out, ScriptPath)
}

func TestWritePageLinksClientScript(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	var buf bytes.Buffer
	require.NoError(t, r.WritePage(context.Background(), &buf, Page{ScriptSrc: ScriptPath}))
	out := buf.String()

	require.Contains(t, out, `<script src="/assets/app.js" defer></script>`)
	require.NotContains(t, out, `id="app-script"`)
	require.Contains(t, out, `data-notifications="false"`)
}

func TestWritePageWithOpenModal(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	items := []catalog.Item{
		{ID: "1", Title: "Alpha"},
		{ID: "2", Title: "Beta", Description: "Second item."},
	}
	content := modal.ContentFor(items[1])

	var buf bytes.Buffer
	require.NoError(t, r.WritePage(context.Background(), &buf, Page{Items: items, Modal: &content}))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<!doctype html>"))
	require.Contains(t, out, `id="cardsGrid"`)
	require.Contains(t, out, `id="projectModal"`)
	require.Contains(t, out, `data-item-id="2"`)
	require.Contains(t, out, `class="page-enter modal-open"`)
	require.Contains(t, out, `data-card-id="1"`)
}

func TestScriptHandlesIconFallback(t *testing.T) {
	t.Parallel()

	script := string(Script())
	for _, hook := range []string{"data-candidates", "data-cidx", "data-eidx", "data-exts", "badge.remove()", "partial=1", "data-transition", "notif-data"} {
		require.Contains(t, script, hook)
	}
}

func TestWritePageShowsEmptyStateOnLoadError(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	var buf bytes.Buffer
	err := r.WritePage(context.Background(), &buf, Page{LoadErr: errors.New("boom")})
	require.NoError(t, err)
	out := buf.String()

	require.Contains(t, out, catalog.EmptyMessage)
	require.Contains(t, out, "0 results")
	require.Contains(t, out, `data-theme="light"`)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, Options{})
	require.Equal(t, "Rich text", r.PlainText("<p>Rich <em>text</em></p>"))
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
)

func sampleItems() []catalog.Item {
	return []catalog.Item{
		{ID: "1", Title: "Slack Alerts", Description: "Posts alerts.", UseCases: []string{"Ops"}, Integrations: []string{"Slack"}, Difficulty: "easy"},
		{ID: "2", Title: "Sheet Sync", Description: "Syncs rows.", UseCases: []string{"Sales"}, Integrations: []string{"Google Sheets"}},
	}
}

type fixture struct {
	srv     *Server
	store   *catalog.Store
	prefs   *prefs.Store
	metrics *Metrics
}

func newFixture(t *testing.T, items []catalog.Item) fixture {
	t.Helper()

	resolver := icons.NewResolver("/assets/icons")
	metrics := NewMetrics()
	renderer, err := render.New(resolver, render.Options{OnBadge: metrics.ObserveBadge})
	require.NoError(t, err)

	store := catalog.NewStore(items)
	pstore, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pstore.Close() })

	iconsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(iconsDir, "slack.svg"), []byte("<svg/>"), 0o600))

	srv, err := New(Options{
		Title:    "Workflows",
		Store:    store,
		Resolver: resolver,
		Renderer: renderer,
		Prefs:    pstore,
		IconsDir: iconsDir,
		Metrics:  metrics,
	})
	require.NoError(t, err)
	return fixture{srv: srv, store: store, prefs: pstore, metrics: metrics}
}

func (f fixture) do(t *testing.T, method, target string, body url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewRequiresCollaborators(t *testing.T) {
	t.Parallel()

	_, err := New(Options{})
	require.Error(t, err)
}

func TestIndexFiltersByQuery(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())
	rec := f.do(t, http.MethodGet, "/?usecase=Ops", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	body := rec.Body.String()
	require.Contains(t, body, `data-card-id="1"`)
	require.NotContains(t, body, `data-card-id="2"`)
	require.Contains(t, body, "1 result<")
	require.Contains(t, body, `data-theme="light"`)
}

func TestIndexShowsEmptyStateWhenCatalogFailed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.store.Fail(errors.New("fetch failed"))

	rec := f.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), catalog.EmptyMessage)
}

func TestItemPageOpensModalOverCatalog(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())
	require.NoError(t, f.prefs.SetTheme(context.Background(), prefs.ThemeDark))

	rec := f.do(t, http.MethodGet, "/items/2?usecase=Sales", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "<!doctype html>"))
	require.Contains(t, body, `data-theme="dark"`)
	require.Contains(t, body, `id="cardsGrid"`)
	require.Contains(t, body, `id="projectModal"`)
	require.Contains(t, body, "No overview yet.")
	require.Contains(t, body, `data-card-id="2"`)
	require.NotContains(t, body, `data-card-id="1"`)

	rec = f.do(t, http.MethodGet, "/items/404", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemPartialReturnsFragment(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())

	rec := f.do(t, http.MethodGet, "/items/2?partial=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `id="projectModal"`)
	require.Contains(t, body, "Sheet Sync")
	require.NotContains(t, body, "<!doctype html>")
	require.NotContains(t, body, `id="cardsGrid"`)
}

func TestPageLoadsClientScript(t *testing.T) {
	t.Parallel()

	f := newFixture(t, []catalog.Item{{ID: "9", Title: "Unknown", Integrations: []string{"No Such Tool"}}})

	rec := f.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `data-candidates="no-such-tool|tool"`)
	require.Contains(t, body, `<script src="/assets/app.js" defer></script>`)

	rec = f.do(t, http.MethodGet, render.ScriptPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	require.Contains(t, rec.Body.String(), "data-eidx")
	require.Equal(t, render.Script(), rec.Body.Bytes())
}

func TestAPIItems(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())
	rec := f.do(t, http.MethodGet, "/api/items?q=rows", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "1 result", resp.Label)
	require.Equal(t, "2", resp.Items[0].ID.String())
}

func TestAPIIcons(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	rec := f.do(t, http.MethodGet, "/api/icons/Google%20Sheets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp IconsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "google-sheets", resp.Slug)
	require.Equal(t, []string{"google-sheets", "sheets", "sheet", "gsheets"}, resp.Candidates)
	require.Equal(t, "/assets/icons/google-sheets.svg", resp.Source)
	require.Equal(t, "0", resp.Attributes["data-cidx"])
}

func TestThemeToggleAndSet(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())
	ctx := context.Background()

	rec := f.do(t, http.MethodPost, "/theme", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	theme, err := f.prefs.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, prefs.ThemeDark, theme)

	rec = f.do(t, http.MethodGet, "/", nil)
	require.Contains(t, rec.Body.String(), `data-theme="dark"`)

	rec = f.do(t, http.MethodPost, "/theme", url.Values{"theme": {"light"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	theme, err = f.prefs.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, prefs.ThemeLight, theme)

	rec = f.do(t, http.MethodPost, "/theme", url.Values{"theme": {"sepia"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaticIconsAndHealth(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())

	rec := f.do(t, http.MethodGet, "/assets/icons/slack.svg", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health["status"])
	require.EqualValues(t, 2, health["items"])
	require.Equal(t, true, health["loaded"])
}

func TestMetricsAreRecorded(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())
	f.metrics.ObserveCatalog(2, nil)
	f.do(t, http.MethodGet, "/", nil)

	require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.requests.WithLabelValues("GET /{$}", "200")))
	require.Equal(t, float64(2), testutil.ToFloat64(f.metrics.badges.WithLabelValues(string(render.BadgeDeferred))))
	require.Equal(t, float64(2), testutil.ToFloat64(f.metrics.catalogItems))

	rec := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "workflowdeck_catalog_items 2")
}

func TestRequestIDIsPropagated(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	f := newFixture(t, sampleItems())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.srv.Serve(ctx, ln) }()

	client := &http.Client{
		Timeout:   2 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

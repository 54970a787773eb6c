package browser

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

// frameDelay approximates one animation frame.
const frameDelay = 16 * time.Millisecond

// loadCatalogCmd fetches the catalog and manifest in the background.
func loadCatalogCmd(ctx context.Context, loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{Result: loader.Load(ctx)}
	}
}

func modalFrameCmd() tea.Cmd {
	return tea.Tick(frameDelay, func(time.Time) tea.Msg { return modalFrameMsg{} })
}

func modalFinishCmd(token modal.Token) tea.Cmd {
	return tea.Tick(modal.ExitDelay, func(time.Time) tea.Msg { return modalFinishMsg{Token: token} })
}

func slideTickCmd() tea.Cmd {
	return tea.Tick(widgets.SlideInterval, func(time.Time) tea.Msg { return slideTickMsg{} })
}

func notifyCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return notifyMsg{} })
}

func notifyExpireCmd(id int) tea.Cmd {
	return tea.Tick(widgets.NotificationLifetime, func(time.Time) tea.Msg { return notifyExpireMsg{ID: id} })
}

func notifyRemoveCmd(id int) tea.Cmd {
	return tea.Tick(widgets.DismissAnimation, func(time.Time) tea.Msg { return notifyRemoveMsg{ID: id} })
}

// toggleThemeCmd flips and persists the theme.
func toggleThemeCmd(ctx context.Context, store *prefs.Store) tea.Cmd {
	return func() tea.Msg {
		theme, err := store.ToggleTheme(ctx)
		return ThemeChangedMsg{Theme: theme, Err: err}
	}
}

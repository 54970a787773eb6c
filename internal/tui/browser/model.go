// Package browser is the interactive terminal front end: a filterable card
// list, the detail modal and the decorative widgets, driven by bubbletea.
package browser

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/microcosm-cc/bluemonday"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/events"
	"github.com/alexisbeaulieu97/workflowdeck/internal/icons"
	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
	"github.com/alexisbeaulieu97/workflowdeck/internal/widgets"
)

// Event table binding keys.
const (
	bindGrid    = "grid"
	bindSearch  = "search"
	bindFilters = "filters"
)

// Filter targets carried by events.Change.
const (
	targetUseCase     = "usecase"
	targetIntegration = "integration"
	targetDifficulty  = "difficulty"
)

// Options wires the browser to its collaborators. Store is required.
type Options struct {
	Title         string
	Store         *catalog.Store
	Resolver      *icons.Resolver
	Loader        *catalog.Loader
	Prefs         *prefs.Store
	Theme         string
	Slides        []widgets.Slide
	Notifications bool
	Rand          *rand.Rand
	Context       context.Context
}

// Model is the browser state.
type Model struct {
	// Core data
	ctx      context.Context
	title    string
	store    *catalog.Store
	resolver *icons.Resolver
	loader   *catalog.Loader
	prefs    *prefs.Store
	plain    *bluemonday.Policy

	// Event wiring
	table *events.Table
	modal *modal.Modal

	// UI state
	cursor       int
	scrollOffset int
	searching    bool
	showHelp     bool
	loading      bool
	theme        string

	// Components
	search   textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	// Widgets
	slides        []widgets.Slide
	slider        *widgets.Slider
	notifier      *widgets.Notifier
	notifications bool

	// Errors
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int
}

// NewModel creates a browser model. The grid, search and filter handlers are
// bound on the event table exactly once here.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = catalog.NewStore(nil)
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = icons.NewResolver("")
	}
	theme := opts.Theme
	if !prefs.ValidTheme(theme) {
		theme = prefs.DefaultTheme
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	search := textinput.New()
	search.Placeholder = "Search workflows"
	search.Prompt = "/ "
	search.CharLimit = 120

	table := events.NewTable()
	m := Model{
		ctx:           ctx,
		title:         opts.Title,
		store:         store,
		resolver:      resolver,
		loader:        opts.Loader,
		prefs:         opts.Prefs,
		plain:         bluemonday.StrictPolicy(),
		table:         table,
		modal:         modal.New(table),
		loading:       opts.Loader != nil,
		theme:         theme,
		search:        search,
		viewport:      viewport.New(60, 16),
		spinner:       s,
		help:          help.New(),
		keys:          defaultKeyMap(),
		slides:        opts.Slides,
		slider:        widgets.NewSlider(len(opts.Slides)),
		notifier:      widgets.NewNotifier(opts.Rand),
		notifications: opts.Notifications,
		width:         80,
		height:        24,
	}
	m.bindHandlers()
	return m
}

// bindHandlers registers the grid, search and filter handlers. Bind is
// idempotent, so calling this again never doubles a handler.
func (m *Model) bindHandlers() {
	store, md := m.store, m.modal
	m.table.Bind(bindGrid, events.KeyEnter, func(ev events.Event) {
		item, err := store.Get(ev.Target)
		if err != nil {
			return
		}
		md.Open(item)
	})
	m.table.Bind(bindSearch, events.Input, func(ev events.Event) {
		store.SetSearch(ev.Value)
	})
	m.table.Bind(bindFilters, events.Change, func(ev events.Event) {
		switch ev.Target {
		case targetUseCase:
			store.SetUseCase(ev.Value)
		case targetIntegration:
			store.SetIntegration(ev.Value)
		case targetDifficulty:
			store.SetDifficulty(ev.Value)
		}
	})
}

// Init starts loading the catalog and the widget timers.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loader != nil {
		cmds = append(cmds, loadCatalogCmd(m.ctx, m.loader))
	}
	if m.slider.Count() > 0 {
		cmds = append(cmds, slideTickCmd())
	}
	if m.notifications {
		cmds = append(cmds, notifyCmd(widgets.FirstNotificationDelay))
	}
	return tea.Batch(cmds...)
}

// Helper Methods

// Visible returns the items matching the current filters.
func (m *Model) Visible() []catalog.Item {
	return m.store.Visible()
}

// GetSelectedItem returns the item under the cursor.
func (m *Model) GetSelectedItem() (catalog.Item, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return catalog.Item{}, false
	}
	return visible[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := len(m.Visible())
	if n == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = n - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := len(m.Visible())
	if n == 0 {
		return
	}
	m.cursor++
	if m.cursor >= n {
		m.cursor = 0
	}
}

// clampCursor keeps the cursor inside the visible list after refiltering.
func (m *Model) clampCursor() {
	n := len(m.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.scrollOffset > m.cursor {
		m.scrollOffset = m.cursor
	}
}

// cycleOption returns the value after current in ["", options...], wrapping.
func cycleOption(options []string, current string) string {
	values := append([]string{""}, options...)
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return ""
}

// ModalState returns the detail modal's lifecycle state.
func (m *Model) ModalState() modal.State {
	return m.modal.State()
}

// Theme returns the active theme.
func (m *Model) Theme() string {
	return m.theme
}

// IsLoading reports whether the catalog load is still running.
func (m *Model) IsLoading() bool {
	return m.loading
}

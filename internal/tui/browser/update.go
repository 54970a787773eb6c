package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/events"
	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
)

const (
	minWidth  = 60
	minHeight = 20
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, m.width-8)
		m.viewport.Height = max(5, m.height-10)
		m.help.Width = m.width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Spinner only animates while the catalog loads
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Catalog messages
	case CatalogLoadedMsg:
		m.loading = false
		msg.Result.Apply(m.store, m.resolver)
		m.cursor = 0
		m.scrollOffset = 0
		if msg.Result.Err != nil {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Catalog unavailable: %s", msg.Result.Err.Error())
		}
		return m, nil

	// Modal messages
	case modalFrameMsg:
		m.modal.Frame()
		return m, nil

	case modalFinishMsg:
		m.modal.Finish(msg.Token)
		return m, nil

	// Widget messages
	case slideTickMsg:
		if m.slider.Count() == 0 {
			return m, nil
		}
		m.slider.Next()
		return m, slideTickCmd()

	case notifyMsg:
		if !m.notifications {
			return m, nil
		}
		n := m.notifier.Next(m.visibleTitles())
		return m, tea.Batch(notifyExpireCmd(n.ID), notifyCmd(m.notifier.NextDelay()))

	case notifyExpireMsg:
		if m.notifier.Dismiss(msg.ID) {
			return m, notifyRemoveCmd(msg.ID)
		}
		return m, nil

	case notifyRemoveMsg:
		m.notifier.Remove(msg.ID)
		return m, nil

	// Theme messages
	case ThemeChangedMsg:
		if msg.Err != nil {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Failed to save theme: %s", msg.Err.Error())
			return m, nil
		}
		m.theme = msg.Theme
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keyboard input to the active surface
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.modal.Visible():
		return m.handleModalKeys(msg)
	case m.searching:
		return m.handleSearchKeys(msg)
	case m.showHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

// handleListKeys handles keys on the card list
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		item, ok := m.GetSelectedItem()
		if !ok {
			return m, nil
		}
		m.table.Dispatch(events.Event{Name: events.KeyEnter, Target: item.ID.String()})
		if !m.modal.Visible() {
			return m, nil
		}
		m.viewport.SetContent(m.modalBody())
		m.viewport.GotoTop()
		return m, modalFrameCmd()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.UseCase):
		m.cycleFilter(targetUseCase)
		return m, nil

	case key.Matches(msg, m.keys.Integration):
		m.cycleFilter(targetIntegration)
		return m, nil

	case key.Matches(msg, m.keys.Difficulty):
		m.cycleFilter(targetDifficulty)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.store.SetState(catalog.FilterState{})
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.PrevSlide):
		m.slider.Prev()
		return m, nil

	case key.Matches(msg, m.keys.NextSlide):
		m.slider.Next()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
			return m, nil
		}
		return m, m.dismissNewestNotification()

	case key.Matches(msg, m.keys.Theme):
		if m.prefs != nil {
			return m, toggleThemeCmd(m.ctx, m.prefs)
		}
		if m.theme == prefs.ThemeDark {
			m.theme = prefs.ThemeLight
		} else {
			m.theme = prefs.ThemeDark
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.help.ShowAll = true
		return m, nil
	}

	return m, nil
}

// handleModalKeys handles keys while the detail modal is shown. Escape goes
// through the event table, where the modal registered its own handler.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.table.Dispatch(events.Event{Name: events.KeyEscape})
		if token, ok := m.modal.PendingClose(); ok {
			return m, modalFinishCmd(token)
		}
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSearchKeys feeds the search input and re-filters on every keystroke.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.table.Dispatch(events.Event{Name: events.Input, Target: "q", Value: value})
		m.clampCursor()
	}
	return m, cmd
}

// handleHelpKeys closes the help overlay
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.showHelp = false
		m.help.ShowAll = false
	}
	return m, nil
}

// cycleFilter advances one select filter to its next option.
func (m *Model) cycleFilter(target string) {
	opts := m.store.Options()
	state := m.store.State()

	var next string
	switch target {
	case targetUseCase:
		next = cycleOption(opts.UseCases, state.UseCase)
	case targetIntegration:
		next = cycleOption(opts.Integrations, state.Integration)
	case targetDifficulty:
		next = cycleOption(opts.Difficulties, state.Difficulty)
	}

	m.table.Dispatch(events.Event{Name: events.Change, Target: target, Value: next})
	m.clampCursor()
}

// dismissNewestNotification starts the exit of the most recent popup.
func (m *Model) dismissNewestNotification() tea.Cmd {
	active := m.notifier.Active()
	for i := len(active) - 1; i >= 0; i-- {
		if active[i].Dismissed {
			continue
		}
		if m.notifier.Dismiss(active[i].ID) {
			return notifyRemoveCmd(active[i].ID)
		}
	}
	return nil
}

// ensureCursorVisible scrolls the card window so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.cardRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// cardRows is how many cards fit below the header and widgets.
func (m *Model) cardRows() int {
	return max(1, (m.height-18)/cardHeight)
}

func (m *Model) visibleTitles() []string {
	visible := m.Visible()
	titles := make([]string, 0, len(visible))
	for _, item := range visible {
		titles = append(titles, item.Title)
	}
	return titles
}

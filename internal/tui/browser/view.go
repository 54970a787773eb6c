package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/workflowdeck/internal/modal"
	"github.com/alexisbeaulieu97/workflowdeck/internal/tui/components"
)

// cardHeight is the number of lines one card occupies, spacing included.
const cardHeight = 4

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.modal.Visible() {
		return m.renderModalView()
	}
	return m.renderListView()
}

// renderListView renders the slider, filters, cards and popups
func (m Model) renderListView() string {
	st := stylesFor(m.theme)
	var content strings.Builder

	content.WriteString(m.renderHeader(st))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(st.errorBanner.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if slider := m.renderSlider(st); slider != "" {
		content.WriteString(slider)
		content.WriteString("\n\n")
	}

	content.WriteString(m.renderFilters(st))
	content.WriteString("\n\n")

	content.WriteString(m.renderCards(st))
	content.WriteString("\n")

	if toasts := m.renderNotifications(st); toasts != "" {
		content.WriteString("\n")
		content.WriteString(toasts)
		content.WriteString("\n")
	}

	content.WriteString(st.footer.Render(m.help.View(m.keys)))
	return content.String()
}

// renderHeader renders the title bar and theme indicator
func (m Model) renderHeader(st styles) string {
	title := m.title
	if title == "" {
		title = "Workflow Templates"
	}
	right := st.muted.Render("theme: " + m.theme)
	gap := max(1, m.width-lipgloss.Width(st.title.Render(title))-lipgloss.Width(right)-2)
	return st.header.Render(st.title.Render(title) + strings.Repeat(" ", gap) + right)
}

// renderSlider renders the current slide and its pagination dots
func (m Model) renderSlider(st styles) string {
	if m.slider.Count() == 0 || len(m.slides) == 0 {
		return ""
	}
	slide := m.slides[m.slider.Current()]

	dots := make([]string, 0, m.slider.Count())
	for _, active := range m.slider.Dots() {
		if active {
			dots = append(dots, st.dotActive.Render("●"))
		} else {
			dots = append(dots, st.dot.Render("○"))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.slideTitle.Render(slide.Title),
		slide.Body,
		strings.Join(dots, " "),
	)
	return st.slide.Width(max(20, m.width-4)).Render(body)
}

// renderFilters renders the search input, active filters and result count
func (m Model) renderFilters(st styles) string {
	visible := len(m.Visible())
	summary := components.NewSummary(components.SummaryData{
		State:      m.store.State(),
		Visible:    visible,
		LoadFailed: m.store.LoadError() != nil,
	}).View()

	lines := []string{m.search.View(), summary}
	if m.store.Len() > 0 {
		lines = append(lines, components.NewResultsBar(m.store.Len()).View(visible))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCards renders the scroll window of visible cards
func (m Model) renderCards(st styles) string {
	if m.loading {
		return st.empty.Render(m.spinner.View() + " Loading workflows...")
	}
	if m.store.LoadError() != nil {
		return ""
	}

	list := components.NewCardList(m.Visible())
	if list.Len() == 0 {
		return st.empty.Render("No workflows match your filters.")
	}

	entries := list.Entries()
	start := min(m.scrollOffset, len(entries)-1)
	end := min(start+m.cardRows(), len(entries))
	width := max(20, m.width-4)

	var cards []string
	if start > 0 {
		cards = append(cards, st.muted.Render("▲ More above"))
	}
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(st, entries[i], i == m.cursor, width))
	}
	if end < len(entries) {
		cards = append(cards, st.muted.Render("▼ More below"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders one card: title, clamped description and badges
func (m Model) renderCard(st styles, entry components.CardEntry, selected bool, width int) string {
	style := st.card
	if selected {
		style = st.selectedCard
	}

	desc := truncate(entry.Description, width-6)
	badges := make([]string, 0, len(entry.Badges))
	for _, b := range entry.Badges {
		badges = append(badges, st.badge.Render(b))
	}

	lines := []string{st.cardTitle.Render(entry.Title), desc}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, " "))
	} else {
		lines = append(lines, "")
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderNotifications renders the popups that are still entering or shown
func (m Model) renderNotifications(st styles) string {
	var toasts []string
	for _, n := range m.notifier.Active() {
		if n.Dismissed {
			continue
		}
		body := lipgloss.JoinVertical(lipgloss.Left, n.Title(), st.muted.Render(n.Meta()))
		toasts = append(toasts, st.toast.Render(
			lipgloss.JoinHorizontal(lipgloss.Center, st.toastAvatar.Render(n.Initial()), " ", body),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, toasts...)
}

// renderModalView renders the detail modal
func (m Model) renderModalView() string {
	st := stylesFor(m.theme)
	content := m.modal.Content()

	parts := []string{st.modalTitle.Render(content.Title), m.viewport.View()}
	if m.modal.State() == modal.Closing {
		parts[0] = st.muted.Render(content.Title)
	}
	parts = append(parts, st.muted.Render("esc close • ↑/↓ scroll"))

	return st.modal.Width(max(24, m.width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// modalBody is the scrollable modal content
func (m Model) modalBody() string {
	st := stylesFor(m.theme)
	c := m.modal.Content()
	var b strings.Builder

	if c.Description != "" {
		b.WriteString(c.Description)
		b.WriteString("\n\n")
	}
	for _, line := range c.Meta {
		b.WriteString(st.muted.Render(line))
		b.WriteString("\n")
	}
	if len(c.Meta) > 0 {
		b.WriteString("\n")
	}

	overview := c.Overview
	if c.HasOverview {
		overview = strings.TrimSpace(m.plain.Sanitize(overview))
	}
	b.WriteString(overview)
	b.WriteString("\n\n")

	for _, d := range c.Details {
		b.WriteString(st.detailKey.Render(d.Key))
		b.WriteString(d.Value)
		b.WriteString("\n")
	}

	if len(c.Tags) > 0 {
		tags := make([]string, 0, len(c.Tags))
		for _, t := range c.Tags {
			tags = append(tags, st.tag.Render("#"+t))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n")
	}

	if c.HasDownload() {
		b.WriteString("\nDownload: ")
		b.WriteString(c.DownloadURL)
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

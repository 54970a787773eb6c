package components

import (
	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/render"
)

// CardEntry is one catalog item prepared for terminal display.
type CardEntry struct {
	ID          string
	Title       string
	Description string
	Badges      []string
}

// CardList holds the visible cards in catalog order.
type CardList struct {
	entries []CardEntry
}

// NewCardList prepares items for display. Descriptions are padded to the
// card clamp and only the first render.MaxBadges integrations are kept.
func NewCardList(items []catalog.Item) CardList {
	entries := make([]CardEntry, 0, len(items))
	for _, item := range items {
		badges := item.Integrations
		if len(badges) > render.MaxBadges {
			badges = badges[:render.MaxBadges]
		}
		entries = append(entries, CardEntry{
			ID:          item.ID.String(),
			Title:       item.Title,
			Description: render.PadDescription(item.Description),
			Badges:      append([]string(nil), badges...),
		})
	}
	return CardList{entries: entries}
}

// Entries returns the ordered card entries.
func (c CardList) Entries() []CardEntry {
	clone := make([]CardEntry, len(c.entries))
	copy(clone, c.entries)
	return clone
}

// Len returns the number of cards.
func (c CardList) Len() int {
	return len(c.entries)
}

// Titles returns the card titles, in order.
func (c CardList) Titles() []string {
	titles := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		titles = append(titles, e.Title)
	}
	return titles
}

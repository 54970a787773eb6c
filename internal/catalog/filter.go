package catalog

import (
	"strconv"
	"strings"
)

// FilterState holds the four independent filter dimensions. The zero value
// filters nothing.
type FilterState struct {
	Search      string
	UseCase     string
	Integration string
	Difficulty  string
}

// IsZero reports whether no dimension is set.
func (s FilterState) IsZero() bool {
	return s == FilterState{}
}

// Matches reports whether item satisfies every clause of state.
func Matches(item Item, state FilterState) bool {
	q := strings.ToLower(strings.TrimSpace(state.Search))
	if q != "" && !strings.Contains(item.SearchText(), q) {
		return false
	}
	if state.UseCase != "" && !item.HasUseCase(state.UseCase) {
		return false
	}
	if state.Integration != "" && !item.HasIntegration(state.Integration) {
		return false
	}
	if state.Difficulty != "" && item.Difficulty != state.Difficulty {
		return false
	}
	return true
}

// Filter returns the items matching state, preserving their relative order.
// The input slice is never modified.
func Filter(items []Item, state FilterState) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(item, state) {
			out = append(out, item)
		}
	}
	return out
}

// ResultLabel renders the pluralised result count.
func ResultLabel(n int) string {
	if n == 1 {
		return "1 result"
	}
	return strconv.Itoa(n) + " results"
}

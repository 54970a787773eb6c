package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
)

// SummaryData aggregates what the filter summary shows.
type SummaryData struct {
	State      catalog.FilterState
	Visible    int
	LoadFailed bool
}

// Summary renders the result label and the active filters.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.LoadFailed {
		return catalog.EmptyMessage
	}

	lines := []string{catalog.ResultLabel(s.data.Visible)}

	var active []string
	if q := strings.TrimSpace(s.data.State.Search); q != "" {
		active = append(active, fmt.Sprintf("search %q", q))
	}
	if s.data.State.UseCase != "" {
		active = append(active, "use case: "+s.data.State.UseCase)
	}
	if s.data.State.Integration != "" {
		active = append(active, "integration: "+s.data.State.Integration)
	}
	if s.data.State.Difficulty != "" {
		active = append(active, "difficulty: "+s.data.State.Difficulty)
	}
	if len(active) > 0 {
		lines = append(lines, "Filters: "+strings.Join(active, " · "))
	}

	return strings.Join(lines, "\n")
}

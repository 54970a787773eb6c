package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ResultsBar shows how much of the catalog the current filters let through.
type ResultsBar struct {
	bar   progress.Model
	total int
}

// NewResultsBar creates a bar for a catalog of total items.
func NewResultsBar(total int) ResultsBar {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return ResultsBar{bar: bar, total: total}
}

// View renders the bar for the visible item count.
func (r ResultsBar) View(visible int) string {
	ratio := 0.0
	if r.total > 0 {
		ratio = math.Min(1.0, float64(visible)/float64(r.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", visible, r.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", r.bar.ViewAs(ratio))
}

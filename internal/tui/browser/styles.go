package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/workflowdeck/internal/prefs"
)

// palette is the colour set of one theme.
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	surface lipgloss.Color
	error   lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("27"),  // Blue
		accent:  lipgloss.Color("162"), // Magenta
		text:    lipgloss.Color("235"), // Near black
		muted:   lipgloss.Color("243"), // Gray
		surface: lipgloss.Color("255"), // White
		error:   lipgloss.Color("160"), // Red
	}

	darkPalette = palette{
		primary: lipgloss.Color("99"),  // Purple
		accent:  lipgloss.Color("212"), // Pink
		text:    lipgloss.Color("252"), // Light gray
		muted:   lipgloss.Color("245"), // Gray
		surface: lipgloss.Color("235"), // Dark gray
		error:   lipgloss.Color("196"), // Red
	}

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(darkPalette.primary)
)

// styles is every lipgloss style the browser renders with.
type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	slide        lipgloss.Style
	slideTitle   lipgloss.Style
	dotActive    lipgloss.Style
	dot          lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	cardTitle    lipgloss.Style
	badge        lipgloss.Style
	muted        lipgloss.Style
	empty        lipgloss.Style
	modal        lipgloss.Style
	modalTitle   lipgloss.Style
	detailKey    lipgloss.Style
	tag          lipgloss.Style
	toast        lipgloss.Style
	toastAvatar  lipgloss.Style
	errorBanner  lipgloss.Style
	footer       lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(2).
			PaddingRight(2),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.muted).
			MarginBottom(1),
		slide: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 2),
		slideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		dotActive: lipgloss.NewStyle().
			Foreground(p.primary),
		dot: lipgloss.NewStyle().
			Foreground(p.muted),
		card: lipgloss.NewStyle().
			Foreground(p.text).
			PaddingLeft(2).
			PaddingRight(2),
		selectedCard: lipgloss.NewStyle().
			Foreground(p.accent).
			PaddingLeft(1).
			PaddingRight(2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.primary),
		cardTitle: lipgloss.NewStyle().
			Bold(true),
		badge: lipgloss.NewStyle().
			Foreground(p.surface).
			Background(p.primary).
			Padding(0, 1),
		muted: lipgloss.NewStyle().
			Foreground(p.muted),
		empty: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2),
		modal: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),
		modalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		detailKey: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true).
			Width(10),
		tag: lipgloss.NewStyle().
			Foreground(p.accent),
		toast: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		toastAvatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.surface).
			Background(p.accent).
			Padding(0, 1),
		errorBanner: lipgloss.NewStyle().
			Foreground(p.error).
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.error),
		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.muted).
			MarginTop(1),
	}
}

var (
	lightStyles = newStyles(lightPalette)
	darkStyles  = newStyles(darkPalette)
)

// stylesFor returns the style set of theme, defaulting to light.
func stylesFor(theme string) styles {
	if theme == prefs.ThemeDark {
		return darkStyles
	}
	return lightStyles
}

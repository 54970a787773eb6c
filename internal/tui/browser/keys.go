package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Close       key.Binding
	Search      key.Binding
	UseCase     key.Binding
	Integration key.Binding
	Difficulty  key.Binding
	Clear       key.Binding
	PrevSlide   key.Binding
	NextSlide   key.Binding
	Dismiss     key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		UseCase:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "use case")),
		Integration: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "integration")),
		Difficulty:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		PrevSlide:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev slide")),
		NextSlide:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next slide")),
		Dismiss:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss popup")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.UseCase, k.Integration, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Close},
		{k.Search, k.UseCase, k.Integration, k.Difficulty, k.Clear},
		{k.PrevSlide, k.NextSlide, k.Dismiss, k.Theme},
		{k.Help, k.Quit},
	}
}

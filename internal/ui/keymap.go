package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the question list bindings. It implements help.KeyMap.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Focus       key.Binding
	Select      key.Binding
	AllCategory key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Search      key.Binding
	Delete      key.Binding
	Add         key.Binding
	Play        key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Focus:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Select:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/answer")),
		AllCategory: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "all categories")),
		PrevPage:    key.NewBinding(key.WithKeys("[", "left", "h"), key.WithHelp("[", "prev page")),
		NextPage:    key.NewBinding(key.WithKeys("]", "right", "l"), key.WithHelp("]", "next page")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Play:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Select, k.PrevPage, k.NextPage, k.Search, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Select},
		{k.AllCategory, k.PrevPage, k.NextPage},
		{k.Search, k.Add, k.Delete, k.Reload},
		{k.Play},
		{k.Help, k.Quit},
	}
}

// newHelpModel returns a help model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = h.Styles.ShortDesc
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortDesc
	return h
}

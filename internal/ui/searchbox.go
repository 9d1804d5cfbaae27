package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchBox is a modal for entering a search term.
type SearchBox struct {
	input textinput.Model
}

// Ensure SearchBox implements View.
var _ View = (*SearchBox)(nil)

// NewSearchBox creates a focused search box.
func NewSearchBox() *SearchBox {
	ti := textinput.New()
	ti.Placeholder = "search questions"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.CharLimit = 200
	ti.Focus()
	return &SearchBox{input: ti}
}

// Init implements View.
func (m *SearchBox) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *SearchBox) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{From: m} }
		case "enter":
			// The backend rejects empty terms with a 422; don't send them.
			term := strings.TrimSpace(m.input.Value())
			if term == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SubmitSearchMsg{From: m, Term: term} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the current input.
func (m *SearchBox) Value() string {
	return m.input.Value()
}

// View implements View.
func (m *SearchBox) View() string {
	content := Styles.Title.Render("Search") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: search  Esc: cancel")
	return Styles.Box.Render(content)
}

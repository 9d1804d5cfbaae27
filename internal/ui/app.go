package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// AppModel is the root model. It hosts the question list and handles
// quitting; everything else is the list's business.
type AppModel struct {
	List *QuestionListView
	keys KeyMap
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model around backend b.
func NewAppModel(b Backend, log logrus.FieldLogger) *AppModel {
	return &AppModel{
		List: NewQuestionListView(b, log),
		keys: DefaultKeyMap(),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.List.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// ctrl+c always quits; q only when no modal is taking text input.
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.List.Overlays.Len() == 0 && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
	}
	v, cmd := a.List.Update(msg)
	if l, ok := v.(*QuestionListView); ok {
		a.List = l
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.List.View()
}

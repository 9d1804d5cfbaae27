package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"triviatui/internal/api"
)

// AlertModal reports a failed request. Enter or Esc dismisses it.
type AlertModal struct {
	Title   string
	Message string
	Detail  string
}

// Ensure AlertModal implements View.
var _ View = (*AlertModal)(nil)

// NewAlertModal picks the alert text for err by its api.Kind. action names
// what failed, e.g. "load questions".
func NewAlertModal(action string, err error) *AlertModal {
	m := &AlertModal{
		Title:   fmt.Sprintf("Unable to %s", action),
		Message: "Please try your request again.",
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		if err != nil {
			m.Detail = err.Error()
		}
		return m
	}
	switch apiErr.Kind {
	case api.KindNetwork:
		m.Message = "The trivia server could not be reached. Please try your request again."
		m.Detail = apiErr.Error()
	case api.KindDecode:
		m.Message = "The trivia server sent a response that could not be read."
		m.Detail = apiErr.Error()
	case api.KindStatus:
		switch {
		case errors.Is(apiErr, api.ErrNotFound):
			m.Message = "The server found nothing matching the request."
		case errors.Is(apiErr, api.ErrUnprocessable):
			m.Message = "The server rejected the request."
		}
		m.Detail = apiErr.Error()
	}
	return m
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, func() tea.Msg { return DismissModalMsg{From: m} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AlertModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Message)
	if m.Detail != "" {
		content += "\n" + Styles.Details.Render(m.Detail)
	}
	content += "\n\n" + Styles.Hint.Render("Enter/Esc: dismiss")
	return Styles.BoxDanger.Render(content)
}

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"triviatui/internal/trivia"
	"triviatui/internal/ui/textutil"
)

// ConfirmModal asks a yes/no question. Enter or y confirms once; Esc or n
// cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // Optional warning details
	OnConfirm func() tea.Msg

	confirmed bool
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteQuestionConfirmModal asks whether to delete q.
func NewDeleteQuestionConfirmModal(q trivia.Question) *ConfirmModal {
	id := q.ID
	m := NewConfirmModal(
		"Are you sure you want to delete the question?",
		fmt.Sprintf("#%d %s", q.ID, textutil.Truncate(q.Question, 60)),
		nil,
	).WithDetails("This cannot be undone.")
	m.OnConfirm = func() tea.Msg { return ConfirmDeleteMsg{From: m, ID: id} }
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{From: m} }
		case "enter", "y":
			// Only the first confirm counts; repeats before the modal closes
			// are dropped.
			if m.OnConfirm != nil && !m.confirmed {
				m.confirmed = true
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  n/Esc: cancel")
	return Styles.BoxDanger.Render(content)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"triviatui/internal/trivia"
)

const (
	fieldQuestion = iota
	fieldAnswer
	fieldCategory
	fieldDifficulty
	fieldCount
)

// AddQuestionModal collects a new question. Tab moves between fields,
// left/right changes category and difficulty, Enter submits.
type AddQuestionModal struct {
	question   textinput.Model
	answer     textinput.Model
	categories []trivia.CategoryID
	names      trivia.Categories
	catIdx     int
	difficulty int
	focus      int
	err        string
}

// Ensure AddQuestionModal implements View.
var _ View = (*AddQuestionModal)(nil)

// NewAddQuestionModal creates the form. cats supplies the category choices.
func NewAddQuestionModal(cats trivia.Categories) *AddQuestionModal {
	q := textinput.New()
	q.Placeholder = "question"
	q.Width = 50
	q.CharLimit = 500
	q.Focus()

	a := textinput.New()
	a.Placeholder = "answer"
	a.Width = 50
	a.CharLimit = 500

	return &AddQuestionModal{
		question:   q,
		answer:     a,
		categories: cats.IDs(),
		names:      cats,
		difficulty: 1,
	}
}

// Init implements View.
func (m *AddQuestionModal) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the question as currently entered.
func (m *AddQuestionModal) Value() trivia.NewQuestion {
	nq := trivia.NewQuestion{
		Question:   strings.TrimSpace(m.question.Value()),
		Answer:     strings.TrimSpace(m.answer.Value()),
		Difficulty: m.difficulty,
	}
	if len(m.categories) > 0 {
		nq.Category = m.categories[m.catIdx]
	}
	return nq
}

// Update implements View.
func (m *AddQuestionModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{From: m} }
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			nq := m.Value()
			if err := nq.Validate(); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return SubmitQuestionMsg{From: m, Question: nq} }
		case "left", "right":
			if m.focus == fieldCategory || m.focus == fieldDifficulty {
				m.step(msg.String() == "right")
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldQuestion:
		m.question, cmd = m.question.Update(msg)
	case fieldAnswer:
		m.answer, cmd = m.answer.Update(msg)
	}
	return m, cmd
}

func (m *AddQuestionModal) setFocus(f int) tea.Cmd {
	m.focus = f
	m.question.Blur()
	m.answer.Blur()
	switch f {
	case fieldQuestion:
		return m.question.Focus()
	case fieldAnswer:
		return m.answer.Focus()
	}
	return nil
}

func (m *AddQuestionModal) step(forward bool) {
	delta := -1
	if forward {
		delta = 1
	}
	switch m.focus {
	case fieldCategory:
		if n := len(m.categories); n > 0 {
			m.catIdx = (m.catIdx + delta + n) % n
		}
	case fieldDifficulty:
		m.difficulty = min(max(m.difficulty+delta, 1), 5)
	}
}

// View implements View.
func (m *AddQuestionModal) View() string {
	label := func(field int, name string) string {
		if m.focus == field {
			return Styles.Selected.Render(name)
		}
		return Styles.Muted.Render(name)
	}
	category := "(no categories loaded)"
	if len(m.categories) > 0 {
		id := m.categories[m.catIdx]
		category = fmt.Sprintf("‹ %s ›", m.names.Name(id))
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Add question") + "\n\n")
	b.WriteString(label(fieldQuestion, "Question") + "\n" + m.question.View() + "\n\n")
	b.WriteString(label(fieldAnswer, "Answer") + "\n" + m.answer.View() + "\n\n")
	b.WriteString(label(fieldCategory, "Category") + "  " + category + "\n")
	b.WriteString(label(fieldDifficulty, "Difficulty") + "  " + difficultyStars(m.difficulty))
	if m.err != "" {
		b.WriteString("\n\n" + Styles.Error.Render(m.err))
	}
	b.WriteString("\n\n" + Styles.Hint.Render("Tab: next field  ←/→: change  Enter: save  Esc: cancel"))
	return Styles.Box.Render(b.String())
}

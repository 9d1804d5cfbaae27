package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"triviatui/internal/trivia"
)

type quizPhase int

const (
	quizChoosing quizPhase = iota
	quizLoading
	quizAsking
	quizAnswered
	quizFinished
)

// QuizModal plays a round of up to trivia.QuestionsPerPlay questions drawn
// at random from one category or all of them. The list view fetches each
// question on its behalf and hands it back through SetQuestion.
type QuizModal struct {
	categories []trivia.CategoryID
	names      trivia.Categories
	cursor     int // 0 is all categories

	category *trivia.CategoryID
	phase    quizPhase
	previous []int
	current  *trivia.Question
	guess    textinput.Model
	correct  bool
	score    int
}

// Ensure QuizModal implements View.
var _ View = (*QuizModal)(nil)

// NewQuizModal starts at category selection.
func NewQuizModal(cats trivia.Categories) *QuizModal {
	g := textinput.New()
	g.Placeholder = "your answer"
	g.Width = 40
	g.CharLimit = 200
	return &QuizModal{
		categories: cats.IDs(),
		names:      cats,
		guess:      g,
	}
}

// Init implements View.
func (m *QuizModal) Init() tea.Cmd {
	return nil
}

// Score returns correct answers and questions played so far.
func (m *QuizModal) Score() (correct, played int) {
	return m.score, len(m.previous)
}

// Finished reports whether the round is over.
func (m *QuizModal) Finished() bool {
	return m.phase == quizFinished
}

// Current returns the question being asked, if any.
func (m *QuizModal) Current() (trivia.Question, bool) {
	if m.current == nil || (m.phase != quizAsking && m.phase != quizAnswered) {
		return trivia.Question{}, false
	}
	return *m.current, true
}

// SetQuestion shows q. A nil q ends the round.
func (m *QuizModal) SetQuestion(q *trivia.Question) tea.Cmd {
	if q == nil {
		m.phase = quizFinished
		m.current = nil
		return nil
	}
	m.current = q
	m.previous = append(m.previous, q.ID)
	m.phase = quizAsking
	m.guess.Reset()
	m.guess.Focus()
	return textinput.Blink
}

// fetchFailed returns to a state the user can retry from.
func (m *QuizModal) fetchFailed() {
	if m.phase != quizLoading {
		return
	}
	if m.current == nil {
		m.phase = quizChoosing
		return
	}
	m.phase = quizAnswered
}

func (m *QuizModal) next() tea.Cmd {
	m.phase = quizLoading
	m.guess.Blur()
	prev := append([]int{}, m.previous...)
	cat := copyCategory(m.category)
	return func() tea.Msg {
		return RequestQuizQuestionMsg{From: m, Previous: prev, Category: cat}
	}
}

func (m *QuizModal) restart() {
	m.phase = quizChoosing
	m.previous = nil
	m.current = nil
	m.score = 0
	m.correct = false
}

// Update implements View.
func (m *QuizModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.phase == quizAsking {
			var cmd tea.Cmd
			m.guess, cmd = m.guess.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if km.String() == "esc" {
		return m, func() tea.Msg { return DismissModalMsg{From: m} }
	}

	switch m.phase {
	case quizChoosing:
		switch km.String() {
		case "up", "k":
			m.cursor = max(m.cursor-1, 0)
		case "down", "j":
			m.cursor = min(m.cursor+1, len(m.categories))
		case "enter":
			m.category = nil
			if m.cursor > 0 {
				id := m.categories[m.cursor-1]
				m.category = &id
			}
			return m, m.next()
		}
	case quizAsking:
		if km.String() == "enter" {
			m.correct = trivia.CheckAnswer(m.guess.Value(), m.current.Answer)
			if m.correct {
				m.score++
			}
			m.phase = quizAnswered
			m.guess.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.guess, cmd = m.guess.Update(km)
		return m, cmd
	case quizAnswered:
		if km.String() == "enter" {
			if len(m.previous) >= trivia.QuestionsPerPlay {
				m.phase = quizFinished
				return m, nil
			}
			return m, m.next()
		}
	case quizFinished:
		if km.String() == "enter" {
			m.restart()
		}
	}
	return m, nil
}

// View implements View.
func (m *QuizModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Play") + "\n\n")

	switch m.phase {
	case quizChoosing:
		b.WriteString(Styles.Label.Render("Choose a category") + "\n")
		for row := 0; row <= len(m.categories); row++ {
			name := allCategoriesLabel
			if row > 0 {
				name = m.names.Name(m.categories[row-1])
			}
			if row == m.cursor {
				b.WriteString(Styles.Selected.Render("> "+name) + "\n")
			} else {
				b.WriteString(Styles.Normal.Render("  "+name) + "\n")
			}
		}
		b.WriteString("\n" + Styles.Hint.Render("j/k: move  Enter: start  Esc: close"))
	case quizLoading:
		b.WriteString(Styles.Muted.Render("Loading question..."))
	case quizAsking, quizAnswered:
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("Question %d of %d", len(m.previous), trivia.QuestionsPerPlay)) + "\n")
		b.WriteString(Styles.Label.Render(m.current.Question) + "\n\n")
		if m.phase == quizAsking {
			b.WriteString(m.guess.View() + "\n\n")
			b.WriteString(Styles.Hint.Render("Enter: submit  Esc: quit"))
			break
		}
		if m.correct {
			b.WriteString(Styles.Status.Render("Correct!") + "\n")
		} else {
			b.WriteString(Styles.Error.Render("Incorrect.") + "\n")
		}
		b.WriteString(Styles.Answer.Render("Answer: "+m.current.Answer) + "\n\n")
		b.WriteString(Styles.Hint.Render("Enter: next  Esc: quit"))
	case quizFinished:
		b.WriteString(Styles.Label.Render(fmt.Sprintf("Your score: %d / %d", m.score, len(m.previous))) + "\n\n")
		b.WriteString(Styles.Hint.Render("Enter: play again  Esc: close"))
	}
	return Styles.Box.Render(b.String())
}

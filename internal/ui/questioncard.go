package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"triviatui/internal/trivia"
	"triviatui/internal/ui/textutil"
)

// Action is a request a QuestionCard emits for its question.
type Action string

const (
	ActionDelete       Action = "DELETE"
	ActionToggleAnswer Action = "TOGGLE_ANSWER"
)

// QuestionCard renders one question and turns keys into actions.
type QuestionCard struct {
	Question     trivia.Question
	CategoryName string
	Revealed     bool
	Selected     bool
}

// HandleKey returns a command emitting a QuestionActionMsg when msg is one
// of the card's bindings, or nil.
func (c QuestionCard) HandleKey(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	var action Action
	switch {
	case key.Matches(msg, keys.Delete):
		action = ActionDelete
	case key.Matches(msg, keys.Select):
		action = ActionToggleAnswer
	default:
		return nil
	}
	id := c.Question.ID
	return func() tea.Msg { return QuestionActionMsg{ID: id, Action: action} }
}

// View renders the card within width columns.
func (c QuestionCard) View(width int) string {
	marker := "  "
	textStyle := Styles.Normal
	if c.Selected {
		marker = Styles.Selected.Render("> ")
		textStyle = Styles.Selected
	}
	inner := width - 2
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(marker + textStyle.Render(textutil.Truncate(c.Question.Question, inner)) + "\n")

	category := c.CategoryName
	if category == "" {
		category = fmt.Sprintf("category %d", c.Question.Category)
	}
	meta := fmt.Sprintf("%s · %s", category, difficultyStars(c.Question.Difficulty))
	b.WriteString("  " + Styles.Muted.Render(textutil.Truncate(meta, inner)))

	if c.Revealed {
		b.WriteString("\n  " + Styles.Answer.Render(textutil.Truncate("Answer: "+c.Question.Answer, inner)))
	}
	return b.String()
}

// difficultyStars renders difficulty 1-5 as filled stars.
func difficultyStars(d int) string {
	if d < 0 {
		d = 0
	}
	if d > 5 {
		d = 5
	}
	return strings.Repeat("★", d) + strings.Repeat("☆", 5-d)
}

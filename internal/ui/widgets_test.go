package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triviatui/internal/trivia"
)

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)
	_, ok = s.Pop()
	assert.False(t, ok)

	first := NewSearchBox()
	second := NewAlertModal("load questions", nil)
	s.Push(Overlay{View: first})
	s.Push(Overlay{View: second})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, second, top.View)

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Same(t, second, popped.View)
	top, _ = s.Peek()
	assert.Same(t, first, top.View)
	assert.Equal(t, 1, s.Len())
}

func TestOverlayStack_UpdateTop(t *testing.T) {
	var s OverlayStack
	cmd, ok := s.UpdateTop(keyMsg("enter"))
	assert.False(t, ok)
	assert.Nil(t, cmd)

	alert := NewAlertModal("load questions", nil)
	s.Push(Overlay{View: alert})
	cmd, ok = s.UpdateTop(keyMsg("enter"))
	assert.True(t, ok)
	assert.Equal(t, DismissModalMsg{From: alert}, runCmd(t, cmd))
}

func TestOverlayStack_Remove(t *testing.T) {
	var s OverlayStack
	box := NewSearchBox()
	alert := NewAlertModal("load categories", nil)
	s.Push(Overlay{View: box})
	s.Push(Overlay{View: alert})

	assert.True(t, s.Contains(box))
	assert.True(t, s.Remove(box), "removes from below the top")
	assert.False(t, s.Contains(box))
	assert.False(t, s.Remove(box))

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, alert, top.View)
	assert.False(t, s.Remove(nil))
	assert.Equal(t, 1, s.Len())
}

func TestFocusManager(t *testing.T) {
	f := NewFocusManager(PaneQuestions, PaneCategories)
	assert.True(t, f.Is(PaneQuestions))
	assert.Equal(t, PaneCategories, f.Next())
	assert.Equal(t, PaneQuestions, f.Next())
	assert.Equal(t, "questions", f.Current.String())

	empty := NewFocusManager()
	assert.Equal(t, PaneQuestions, empty.Next())
}

func TestQuestionCard_HandleKey(t *testing.T) {
	keys := DefaultKeyMap()
	card := QuestionCard{Question: trivia.Question{ID: 4}}

	assert.Equal(t, QuestionActionMsg{ID: 4, Action: ActionDelete}, runCmd(t, card.HandleKey(keyMsg("d"), keys)))
	assert.Equal(t, QuestionActionMsg{ID: 4, Action: ActionToggleAnswer}, runCmd(t, card.HandleKey(keyMsg("enter"), keys)))
	assert.Equal(t, QuestionActionMsg{ID: 4, Action: ActionToggleAnswer}, runCmd(t, card.HandleKey(keyMsg(" "), keys)))
	assert.Nil(t, card.HandleKey(keyMsg("x"), keys))
}

func TestQuestionCard_View(t *testing.T) {
	card := QuestionCard{
		Question: trivia.Question{
			ID:         4,
			Question:   "Which planet is largest?",
			Answer:     "Jupiter",
			Category:   1,
			Difficulty: 2,
		},
		CategoryName: "Science",
	}
	out := card.View(60)
	assert.Contains(t, out, "Which planet is largest?")
	assert.Contains(t, out, "Science")
	assert.Contains(t, out, "★★☆☆☆")
	assert.NotContains(t, out, "Jupiter")

	card.Revealed = true
	assert.Contains(t, card.View(60), "Answer: Jupiter")

	card.CategoryName = ""
	assert.Contains(t, card.View(60), "category 1")
}

func TestDifficultyStars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", difficultyStars(0))
	assert.Equal(t, "★★★☆☆", difficultyStars(3))
	assert.Equal(t, "★★★★★", difficultyStars(9))
}

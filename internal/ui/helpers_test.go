package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"triviatui/internal/api"
	"triviatui/internal/trivia"
	"triviatui/internal/triviatest"
)

// keyMsg builds the tea.KeyMsg Bubble Tea would deliver for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText sends s one rune at a time. Returned commands (cursor blinks) are
// dropped.
func typeText(v View, s string) {
	for _, r := range s {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// drain runs cmd and returns the messages it produces, flattening batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// relevant filters out spinner ticks and cursor blinks, which would
// otherwise keep rescheduling themselves.
func relevant(msg tea.Msg) bool {
	switch msg.(type) {
	case CategoriesLoadedMsg, QuestionsLoadedMsg, SearchResultMsg,
		QuestionDeletedMsg, QuestionCreatedMsg, QuestionActionMsg,
		SubmitSearchMsg, ConfirmDeleteMsg, SubmitQuestionMsg, DismissModalMsg,
		RequestQuizQuestionMsg, QuizQuestionMsg:
		return true
	}
	return false
}

// settle runs cmd and feeds its messages back into v until nothing
// relevant is left, the way the Bubble Tea runtime would.
func settle(t *testing.T, v *QuestionListView, cmd tea.Cmd) {
	t.Helper()
	queue := drain(cmd)
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "message loop did not settle")
		msg := queue[0]
		queue = queue[1:]
		if !relevant(msg) {
			continue
		}
		_, next := v.Update(msg)
		queue = append(queue, drain(next)...)
	}
}

// press sends key k to v and settles the result.
func press(t *testing.T, v *QuestionListView, k string) {
	t.Helper()
	_, cmd := v.Update(keyMsg(k))
	settle(t, v, cmd)
}

// newTestView starts a fake backend with n questions and returns a loaded view.
func newTestView(t *testing.T, n int) (*QuestionListView, *triviatest.Backend) {
	t.Helper()
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(n))
	t.Cleanup(b.Close)
	logger, _ := logtest.NewNullLogger()
	client, err := api.New(b.URL, api.WithLogger(logger))
	require.NoError(t, err)
	v := NewQuestionListView(client, logger)
	settle(t, v, v.Init())
	return v, b
}

func categoryPtr(id int) *trivia.CategoryID {
	c := trivia.CategoryID(id)
	return &c
}

func topOverlay(t *testing.T, v *QuestionListView) View {
	t.Helper()
	top, ok := v.Overlays.Peek()
	require.True(t, ok, "expected an overlay")
	return top.View
}

package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"triviatui/internal/trivia"
)

// Requests are fire-and-forget: there is no cancellation, and results are
// applied in whatever order they arrive.

// fetchCategoriesCmd loads the category map.
func fetchCategoriesCmd(b Backend) tea.Cmd {
	return func() tea.Msg {
		cats, err := b.Categories(context.Background())
		return CategoriesLoadedMsg{Categories: cats, Err: err}
	}
}

// fetchQuestionsCmd loads one page of questions. page and category are
// captured when the command is created, not when it runs.
func fetchQuestionsCmd(b Backend, page int, category *trivia.CategoryID) tea.Cmd {
	return func() tea.Msg {
		res, err := b.Questions(context.Background(), page, category)
		return QuestionsLoadedMsg{Page: page, Category: category, Result: res, Err: err}
	}
}

// searchCmd submits a search term.
func searchCmd(b Backend, term string) tea.Cmd {
	return func() tea.Msg {
		res, err := b.Search(context.Background(), term)
		return SearchResultMsg{Term: term, Result: res, Err: err}
	}
}

// deleteQuestionCmd deletes one question by id.
func deleteQuestionCmd(b Backend, id int) tea.Cmd {
	return func() tea.Msg {
		return QuestionDeletedMsg{ID: id, Err: b.DeleteQuestion(context.Background(), id)}
	}
}

// createQuestionCmd posts a new question.
func createQuestionCmd(b Backend, q trivia.NewQuestion) tea.Cmd {
	return func() tea.Msg {
		id, err := b.CreateQuestion(context.Background(), q)
		return QuestionCreatedMsg{ID: id, Err: err}
	}
}

// quizQuestionCmd fetches the next quiz question for quiz.
func quizQuestionCmd(b Backend, quiz *QuizModal, previous []int, category *trivia.CategoryID) tea.Cmd {
	return func() tea.Msg {
		q, err := b.NextQuizQuestion(context.Background(), previous, category)
		return QuizQuestionMsg{Quiz: quiz, Question: q, Err: err}
	}
}

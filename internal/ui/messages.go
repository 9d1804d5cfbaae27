package ui

import (
	"triviatui/internal/api"
	"triviatui/internal/trivia"
)

// CategoriesLoadedMsg carries the result of GET /categories.
type CategoriesLoadedMsg struct {
	Categories trivia.Categories
	Err        error
}

// QuestionsLoadedMsg carries the result of GET /questions.
// Page and Category record what was requested.
type QuestionsLoadedMsg struct {
	Page     int
	Category *trivia.CategoryID
	Result   api.QuestionPage
	Err      error
}

// SearchResultMsg carries the result of POST /questions/search.
type SearchResultMsg struct {
	Term   string
	Result api.SearchResult
	Err    error
}

// QuestionDeletedMsg is sent when DELETE /questions/{id} completes.
type QuestionDeletedMsg struct {
	ID  int
	Err error
}

// QuestionCreatedMsg is sent when POST /questions completes.
type QuestionCreatedMsg struct {
	ID  int
	Err error
}

// QuestionActionMsg is emitted by a QuestionCard.
type QuestionActionMsg struct {
	ID     int
	Action Action
}

// Messages sent by a modal carry the modal as From. The list view acts on
// them only while that modal is still open, so a late message cannot close
// an alert pushed in the meantime.

// SubmitSearchMsg is sent by the SearchBox on Enter.
type SubmitSearchMsg struct {
	From View
	Term string
}

// ConfirmDeleteMsg is sent when the user confirms deleting a question.
type ConfirmDeleteMsg struct {
	From View
	ID   int
}

// SubmitQuestionMsg is sent by the AddQuestionModal on a valid submit.
type SubmitQuestionMsg struct {
	From     View
	Question trivia.NewQuestion
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct {
	From View
}

// RequestQuizQuestionMsg asks for the next quiz question, excluding the ids
// already played.
type RequestQuizQuestionMsg struct {
	From     *QuizModal
	Previous []int
	Category *trivia.CategoryID
}

// QuizQuestionMsg carries the result of POST /quizzes. A nil Question means
// no unplayed question is left.
type QuizQuestionMsg struct {
	Quiz     *QuizModal
	Question *trivia.Question
	Err      error
}

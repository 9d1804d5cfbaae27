package ui

import (
	"context"

	"triviatui/internal/api"
	"triviatui/internal/trivia"
)

// Backend is the subset of the REST client the question list needs.
// *api.Client satisfies it.
type Backend interface {
	Categories(ctx context.Context) (trivia.Categories, error)
	Questions(ctx context.Context, page int, category *trivia.CategoryID) (api.QuestionPage, error)
	Search(ctx context.Context, term string) (api.SearchResult, error)
	DeleteQuestion(ctx context.Context, id int) error
	CreateQuestion(ctx context.Context, q trivia.NewQuestion) (int, error)
	NextQuizQuestion(ctx context.Context, previous []int, category *trivia.CategoryID) (*trivia.Question, error)
}

var _ Backend = (*api.Client)(nil)

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"triviatui/internal/trivia"
	"triviatui/internal/triviatest"
)

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	c, err := New(baseURL, append([]Option{WithLogger(logger)}, opts...)...)
	require.NoError(t, err)
	return c
}

func categoryID(id int) *trivia.CategoryID {
	c := trivia.CategoryID(id)
	return &c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "ftp://host", "http://", "://bad"} {
		_, err := New(raw)
		assert.Error(t, err, "base url %q", raw)
	}
}

func TestClient_Categories(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), nil)
	defer b.Close()
	c := newTestClient(t, b.URL)

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, triviatest.Categories(), cats)
}

func TestClient_Questions_AllCategories(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(23))
	defer b.Close()
	c := newTestClient(t, b.URL)

	page, err := c.Questions(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 23, page.Total)
	require.Len(t, page.Questions, 3)
	assert.Equal(t, 21, page.Questions[0].ID)

	reqs := b.RequestsTo(http.MethodGet, "/questions")
	require.Len(t, reqs, 1)
	assert.Equal(t, "category=null&page=3", reqs[0].Query)
}

func TestClient_Questions_Category(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(23))
	defer b.Close()
	c := newTestClient(t, b.URL)

	cat := trivia.CategoryID(2)
	page, err := c.Questions(context.Background(), 1, &cat)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	for _, q := range page.Questions {
		assert.Equal(t, cat, q.Category)
	}
	assert.Equal(t, "category=2&page=1", b.RequestsTo(http.MethodGet, "/questions")[0].Query)
}

func TestClient_Search(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(15))
	defer b.Close()
	cat := trivia.CategoryID(2)
	b.SetSearchCategory(&cat)
	c := newTestClient(t, b.URL)

	res, err := c.Search(context.Background(), "title")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Len(t, res.Questions, 5)
	require.NotNil(t, res.CurrentCategory)
	assert.Equal(t, cat, *res.CurrentCategory)

	reqs := b.RequestsTo(http.MethodPost, "/questions/search")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"search":"title"}`, reqs[0].Body)
}

func TestClient_Search_NullCategory(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(3))
	defer b.Close()
	c := newTestClient(t, b.URL)

	res, err := c.Search(context.Background(), "nothing matches this")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Questions)
	assert.Nil(t, res.CurrentCategory)
}

func TestClient_DeleteQuestion(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(3))
	defer b.Close()
	c := newTestClient(t, b.URL)

	require.NoError(t, c.DeleteQuestion(context.Background(), 2))
	assert.Len(t, b.Questions(), 2)

	err := c.DeleteQuestion(context.Background(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindStatus, KindOf(err))
}

func TestClient_CreateQuestion(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(3))
	defer b.Close()
	c := newTestClient(t, b.URL)

	id, err := c.CreateQuestion(context.Background(), trivia.NewQuestion{
		Question: "Who painted the Mona Lisa?", Answer: "Leonardo", Category: 2, Difficulty: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = c.CreateQuestion(context.Background(), trivia.NewQuestion{Question: "incomplete"})
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestClient_StatusErrorCarriesMessage(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), nil)
	defer b.Close()
	b.Fail(http.MethodGet, "/categories", http.StatusUnprocessableEntity)
	c := newTestClient(t, b.URL)

	_, err := c.Categories(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "unprocessable", apiErr.Message)
	assert.Equal(t, "GET /categories", apiErr.Op)
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"questions": "not a list"`))
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.Questions(context.Background(), 1, nil)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestClient_DecodeError_BadCategoryKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories": {"one": "Science"}}`))
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.Categories(context.Background())
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := newTestClient(t, url)

	_, err := c.Categories(context.Background())
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_HeadersAndSpans(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(3))
	defer b.Close()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	c := newTestClient(t, b.URL, WithTracerProvider(tp))
	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.DeleteQuestion(context.Background(), 1))

	reqs := b.Requests()
	require.Len(t, reqs, 2)
	assert.NotEmpty(t, reqs[0].RequestID)
	assert.NotEqual(t, reqs[0].RequestID, reqs[1].RequestID)
	assert.NotEmpty(t, reqs[0].TraceParent)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "GET /categories", spans[0].Name())
	assert.Equal(t, "DELETE /questions/{id}", spans[1].Name())
	assert.Contains(t, spans[0].Attributes(), semconv.HTTPRequestMethodKey.String(http.MethodGet))
	assert.Contains(t, spans[0].Attributes(), semconv.URLPath("/categories"))
	assert.Contains(t, spans[0].Attributes(), semconv.HTTPResponseStatusCode(http.StatusOK))
}

func TestClient_NextQuizQuestion_ExcludesPrevious(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(12))
	defer b.Close()
	c := newTestClient(t, b.URL)

	// Category 2 holds ids 2 and 8.
	q, err := c.NextQuizQuestion(context.Background(), []int{2}, categoryID(2))
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 8, q.ID)

	q, err = c.NextQuizQuestion(context.Background(), []int{2, 8}, categoryID(2))
	require.NoError(t, err)
	assert.Nil(t, q, "pool exhausted")

	reqs := b.RequestsTo(http.MethodPost, "/quizzes")
	require.Len(t, reqs, 2)
	assert.JSONEq(t, `{"previous_questions":[2],"quiz_category":{"type":"category","id":2}}`, reqs[0].Body)
}

func TestClient_NextQuizQuestion_AllCategories(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), triviatest.Questions(3))
	defer b.Close()
	c := newTestClient(t, b.URL)

	q, err := c.NextQuizQuestion(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Contains(t, []int{1, 2, 3}, q.ID)

	reqs := b.RequestsTo(http.MethodPost, "/quizzes")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"previous_questions":[],"quiz_category":{"type":"all","id":0}}`, reqs[0].Body)
}

func TestClient_LogsFailures(t *testing.T) {
	b := triviatest.NewBackend(triviatest.Categories(), nil)
	defer b.Close()
	b.Fail(http.MethodGet, "/categories", http.StatusInternalServerError)

	logger, hook := logtest.NewNullLogger()
	c, err := New(b.URL, WithLogger(logger))
	require.NoError(t, err)

	_, err = c.Categories(context.Background())
	require.Error(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "status", entry.Data["kind"])
	assert.Equal(t, "GET /categories", entry.Data["op"])
}

package triviatest

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestBackend_EmptyPageIsNotFound(t *testing.T) {
	b := NewBackend(Categories(), Questions(5))
	defer b.Close()

	status, body := get(t, b.URL+"/questions?page=2&category=null")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"success":false,"error":404,"message":"resource not found"}`, body)
}

func TestBackend_FailInjection(t *testing.T) {
	b := NewBackend(Categories(), nil)
	defer b.Close()

	b.Fail(http.MethodGet, "/categories", http.StatusInternalServerError)
	status, _ := get(t, b.URL+"/categories")
	assert.Equal(t, http.StatusInternalServerError, status)

	b.Fail(http.MethodGet, "/categories", 0)
	status, body := get(t, b.URL+"/categories")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(body, "Science"))
	assert.Len(t, b.RequestsTo(http.MethodGet, "/categories"), 2)
}

func TestBackend_QuizRequiresCategory(t *testing.T) {
	b := NewBackend(Categories(), Questions(3))
	defer b.Close()

	resp, err := http.Post(b.URL+"/quizzes", "application/json", strings.NewReader(`{"previous_questions":[]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

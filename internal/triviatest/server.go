// Package triviatest provides an in-process trivia backend for tests. It
// follows the REST contract the client targets, including the backend's
// error envelope and its 404-on-empty-page behavior.
package triviatest

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"triviatui/internal/trivia"
)

// Request is a recorded inbound request.
type Request struct {
	Method      string
	Path        string
	Query       string
	Body        string
	RequestID   string
	TraceParent string
}

// Backend is a fake trivia backend backed by an in-memory question set.
type Backend struct {
	*httptest.Server

	mu             sync.Mutex
	categories     trivia.Categories
	questions      []trivia.Question
	nextID         int
	requests       []Request
	failures       map[string]int // "METHOD path" -> status
	searchCategory *trivia.CategoryID
}

// NewBackend starts a backend seeded with categories and questions.
// Callers must Close it.
func NewBackend(categories trivia.Categories, questions []trivia.Question) *Backend {
	gin.SetMode(gin.TestMode)
	b := &Backend{
		categories: trivia.Categories{},
		failures:   map[string]int{},
	}
	for id, name := range categories {
		b.categories[id] = name
	}
	for _, q := range questions {
		b.questions = append(b.questions, q)
		if q.ID >= b.nextID {
			b.nextID = q.ID + 1
		}
	}
	if b.nextID == 0 {
		b.nextID = 1
	}

	r := gin.New()
	r.Use(b.record, b.injectFailures)
	r.GET("/categories", b.getCategories)
	r.GET("/questions", b.getQuestions)
	r.POST("/questions", b.createQuestion)
	r.POST("/questions/search", b.searchQuestions)
	r.DELETE("/questions/:id", b.deleteQuestion)
	r.POST("/quizzes", b.quizQuestion)
	r.NoRoute(func(c *gin.Context) { abort(c, http.StatusNotFound) })
	r.NoMethod(func(c *gin.Context) { abort(c, http.StatusMethodNotAllowed) })
	r.HandleMethodNotAllowed = true

	b.Server = httptest.NewServer(r)
	return b
}

// Fail makes every request to "METHOD /path" answer with status until
// cleared with Fail(method, path, 0).
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := method + " " + path
	if status == 0 {
		delete(b.failures, key)
		return
	}
	b.failures[key] = status
}

// SetSearchCategory sets the current_category reported by search responses.
func (b *Backend) SetSearchCategory(id *trivia.CategoryID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.searchCategory = id
}

// Requests returns a copy of all requests received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// RequestsTo returns the recorded requests matching method and path.
func (b *Backend) RequestsTo(method, path string) []Request {
	var out []Request
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Questions returns a copy of the stored questions.
func (b *Backend) Questions() []trivia.Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]trivia.Question(nil), b.questions...)
}

func (b *Backend) record(c *gin.Context) {
	body, _ := c.GetRawData()
	c.Request.Body = http.NoBody
	c.Set("body", body)
	b.mu.Lock()
	b.requests = append(b.requests, Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Query:       c.Request.URL.RawQuery,
		Body:        string(body),
		RequestID:   c.GetHeader("X-Request-ID"),
		TraceParent: c.GetHeader("traceparent"),
	})
	b.mu.Unlock()
	c.Next()
}

func (b *Backend) injectFailures(c *gin.Context) {
	b.mu.Lock()
	status, ok := b.failures[c.Request.Method+" "+c.Request.URL.Path]
	b.mu.Unlock()
	if ok {
		abort(c, status)
		return
	}
	c.Next()
}

func (b *Backend) getCategories(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]string, len(b.categories))
	for id, name := range b.categories {
		out[id.String()] = name
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": out})
}

func (b *Backend) getQuestions(c *gin.Context) {
	page := queryInt(c, "page", 1)
	category, hasCategory := c.GetQuery("category")
	catID, err := trivia.ParseCategoryID(category)
	filter := hasCategory && err == nil

	b.mu.Lock()
	defer b.mu.Unlock()
	var selection []trivia.Question
	for _, q := range b.questions {
		if filter && q.Category != catID {
			continue
		}
		selection = append(selection, q)
	}
	questions := paginate(selection, page)
	if len(questions) == 0 {
		abort(c, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       questions,
		"total_questions": len(selection),
	})
}

func (b *Backend) searchQuestions(c *gin.Context) {
	var body struct {
		Search string `json:"search"`
	}
	if err := bindBody(c, &body); err != nil || body.Search == "" {
		abort(c, http.StatusUnprocessableEntity)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	term := strings.ToLower(body.Search)
	var selection []trivia.Question
	for _, q := range b.questions {
		if strings.Contains(strings.ToLower(q.Question), term) {
			selection = append(selection, q)
		}
	}
	var current interface{}
	if b.searchCategory != nil {
		current = int(*b.searchCategory)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        nonNil(paginate(selection, queryInt(c, "page", 1))),
		"total_questions":  len(selection),
		"current_category": current,
	})
}

func (b *Backend) deleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abort(c, http.StatusNotFound)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, q := range b.questions {
		if q.ID == id {
			b.questions = append(b.questions[:i], b.questions[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"success": true, "deleted": id})
			return
		}
	}
	abort(c, http.StatusNotFound)
}

func (b *Backend) quizQuestion(c *gin.Context) {
	var body struct {
		Previous []int `json:"previous_questions"`
		Category *struct {
			ID trivia.CategoryID `json:"id"`
		} `json:"quiz_category"`
	}
	if err := bindBody(c, &body); err != nil || body.Category == nil {
		abort(c, http.StatusUnprocessableEntity)
		return
	}
	seen := make(map[int]bool, len(body.Previous))
	for _, id := range body.Previous {
		seen[id] = true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	var pool []trivia.Question
	for _, q := range b.questions {
		if seen[q.ID] || (body.Category.ID != 0 && q.Category != body.Category.ID) {
			continue
		}
		pool = append(pool, q)
	}
	var question interface{}
	if len(pool) > 0 {
		question = pool[rand.IntN(len(pool))]
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "question": question})
}

func (b *Backend) createQuestion(c *gin.Context) {
	var nq trivia.NewQuestion
	if err := bindBody(c, &nq); err != nil || nq.Validate() != nil {
		abort(c, http.StatusUnprocessableEntity)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	q := trivia.Question{
		ID:         b.nextID,
		Question:   nq.Question,
		Answer:     nq.Answer,
		Category:   nq.Category,
		Difficulty: nq.Difficulty,
	}
	b.nextID++
	b.questions = append(b.questions, q)
	sort.SliceStable(b.questions, func(i, j int) bool { return b.questions[i].ID < b.questions[j].ID })
	c.JSON(http.StatusOK, gin.H{"success": true, "created": q.ID})
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

func abort(c *gin.Context, status int) {
	msg, ok := errorMessages[status]
	if !ok {
		msg = strings.ToLower(http.StatusText(status))
	}
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": status, "message": msg})
}

func bindBody(c *gin.Context, v interface{}) error {
	raw, _ := c.Get("body")
	data, _ := raw.([]byte)
	return binding.JSON.BindBody(data, v)
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

func paginate(selection []trivia.Question, page int) []trivia.Question {
	start := (page - 1) * trivia.PageSize
	if start < 0 || start >= len(selection) {
		return nil
	}
	end := start + trivia.PageSize
	if end > len(selection) {
		end = len(selection)
	}
	return selection[start:end]
}

func nonNil(qs []trivia.Question) []trivia.Question {
	if qs == nil {
		return []trivia.Question{}
	}
	return qs
}

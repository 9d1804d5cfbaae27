// Package api is a typed client for the trivia backend's REST contract.
//
// Every method returns an *Error on failure so callers can tell transport,
// HTTP status and payload problems apart.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"triviatui/internal/jsonutil"
	"triviatui/internal/trivia"
)

// RequestIDHeader carries a per-request id the backend can log.
const RequestIDHeader = "X-Request-ID"

// TracerName is the instrumentation scope used for client spans.
const TracerName = "triviatui/api"

// QuestionPage is one page of the question listing.
type QuestionPage struct {
	Questions []trivia.Question
	Total     int
}

// SearchResult is the response to a search. CurrentCategory is nil when the
// backend reports no category.
type SearchResult struct {
	Questions       []trivia.Question
	Total           int
	CurrentCategory *trivia.CategoryID
}

// Client talks to the trivia backend.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	tracer     oteltrace.Tracer
	propagator propagation.TextMapPropagator
	log        logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithTracerProvider sets the provider client spans are created from.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(TracerName) }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client rooted at baseURL (e.g. "http://127.0.0.1:5000").
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}
	c := &Client{
		baseURL:    u,
		http:       &http.Client{},
		tracer:     otel.Tracer(TracerName),
		propagator: propagation.TraceContext{},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Categories fetches GET /categories.
func (c *Client) Categories(ctx context.Context) (trivia.Categories, error) {
	const op = "GET /categories"
	var resp struct {
		Categories map[string]string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, op, "/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	cats := make(trivia.Categories, len(resp.Categories))
	for k, name := range resp.Categories {
		id, err := trivia.ParseCategoryID(k)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Op: op, Err: err}
		}
		cats[id] = name
	}
	return cats, nil
}

// Questions fetches GET /questions for page, filtered by category when
// category is non-nil.
func (c *Client) Questions(ctx context.Context, page int, category *trivia.CategoryID) (QuestionPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if category != nil {
		q.Set("category", category.String())
	} else {
		q.Set("category", "null")
	}
	var resp struct {
		Questions []trivia.Question `json:"questions"`
		Total     int               `json:"total_questions"`
	}
	if err := c.do(ctx, http.MethodGet, "GET /questions", "/questions", q, nil, &resp); err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{Questions: nonNil(resp.Questions), Total: resp.Total}, nil
}

// Search posts term to POST /questions/search.
func (c *Client) Search(ctx context.Context, term string) (SearchResult, error) {
	body := map[string]string{"search": term}
	var resp struct {
		Questions       []trivia.Question  `json:"questions"`
		Total           int                `json:"total_questions"`
		CurrentCategory *trivia.CategoryID `json:"current_category"`
	}
	if err := c.do(ctx, http.MethodPost, "POST /questions/search", "/questions/search", nil, body, &resp); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		Questions:       nonNil(resp.Questions),
		Total:           resp.Total,
		CurrentCategory: resp.CurrentCategory,
	}, nil
}

// DeleteQuestion issues DELETE /questions/{id}. The response body is ignored.
func (c *Client) DeleteQuestion(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "DELETE /questions/{id}", "/questions/"+strconv.Itoa(id), nil, nil, nil)
}

// CreateQuestion posts q to POST /questions and returns the new id.
func (c *Client) CreateQuestion(ctx context.Context, q trivia.NewQuestion) (int, error) {
	var resp struct {
		Created int `json:"created"`
	}
	if err := c.do(ctx, http.MethodPost, "POST /questions", "/questions", nil, q, &resp); err != nil {
		return 0, err
	}
	return resp.Created, nil
}

// QuizCategory is the quiz_category object of POST /quizzes. ID 0 plays
// across all categories.
type QuizCategory struct {
	Type string            `json:"type"`
	ID   trivia.CategoryID `json:"id"`
}

// NextQuizQuestion posts to POST /quizzes and returns a random question not
// in previous, limited to category when it is non-nil. A nil question means
// the pool is exhausted.
func (c *Client) NextQuizQuestion(ctx context.Context, previous []int, category *trivia.CategoryID) (*trivia.Question, error) {
	qc := QuizCategory{Type: "all"}
	if category != nil {
		qc = QuizCategory{Type: "category", ID: *category}
	}
	if previous == nil {
		previous = []int{}
	}
	body := struct {
		Previous []int        `json:"previous_questions"`
		Category QuizCategory `json:"quiz_category"`
	}{previous, qc}
	var resp struct {
		Question *trivia.Question `json:"question"`
	}
	if err := c.do(ctx, http.MethodPost, "POST /quizzes", "/quizzes", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Question, nil
}

// do performs one request. op names the route for spans, logs and errors;
// path is the concrete path appended to the base URL.
func (c *Client) do(ctx context.Context, method, op, path string, query url.Values, in, out interface{}) error {
	reqID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, op,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(method),
			semconv.URLPath(path),
			attribute.String("triviatui.request_id", reqID),
		),
	)
	defer span.End()

	log := c.log.WithFields(logrus.Fields{
		"op":         op,
		"path":       path,
		"request_id": reqID,
	})
	start := time.Now()

	fail := func(e *Error) error {
		span.RecordError(e)
		span.SetStatus(codes.Error, e.Kind.String())
		log.WithError(e).WithField("kind", e.Kind.String()).Warn("request failed")
		return e
	}

	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := jsonutil.Marshal(in)
		if err != nil {
			return fail(&Error{Kind: KindDecode, Op: op, Err: fmt.Errorf("encode request: %w", err)})
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fail(&Error{Kind: KindNetwork, Op: op, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, reqID)
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(&Error{Kind: KindNetwork, Op: op, Err: err})
	}
	defer resp.Body.Close()
	span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(&Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("read body: %w", err)})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(&Error{
			Kind:       KindStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    envelopeMessage(data),
		})
	}

	if out != nil {
		if err := jsonutil.UnmarshalWithContext(data, out, "decode response"); err != nil {
			return fail(&Error{Kind: KindDecode, Op: op, Err: err})
		}
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("request ok")
	return nil
}

// envelopeMessage extracts "message" from the backend's
// {"success":false,"error":404,"message":"..."} error body.
func envelopeMessage(data []byte) string {
	m, ok := jsonutil.UnmarshalMap(data)
	if !ok {
		return ""
	}
	return jsonutil.GetString(m, "message")
}

func nonNil(qs []trivia.Question) []trivia.Question {
	if qs == nil {
		return []trivia.Question{}
	}
	return qs
}

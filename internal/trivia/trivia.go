// Package trivia holds the domain types shared by the REST client and the UI:
// questions, categories and the pagination arithmetic used by the list view.
package trivia

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PageSize is the fixed number of questions the backend returns per page.
const PageSize = 10

// CategoryID identifies a category. The backend is loose about its JSON type
// (number in question records, string in the categories map), so decoding
// accepts both.
type CategoryID int

// ParseCategoryID converts a decimal string (as used for map keys and query
// parameters) into a CategoryID.
func ParseCategoryID(s string) (CategoryID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse category id %q: %w", s, err)
	}
	return CategoryID(n), nil
}

// String returns the decimal form used on the wire.
func (id CategoryID) String() string {
	return strconv.Itoa(int(id))
}

// UnmarshalJSON accepts 3 and "3". null leaves id untouched.
func (id *CategoryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 1 && data[0] == '"' {
		data = data[1 : len(data)-1]
	}
	parsed, err := ParseCategoryID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Question is a single trivia record. The UI never mutates it.
type Question struct {
	ID         int        `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Category   CategoryID `json:"category"`
	Difficulty int        `json:"difficulty"`
}

// NewQuestion is the payload for creating a question.
type NewQuestion struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Category   CategoryID `json:"category"`
	Difficulty int        `json:"difficulty"`
}

// Validate reports the first missing field. The backend rejects the same
// inputs with a 422.
func (q NewQuestion) Validate() error {
	switch {
	case strings.TrimSpace(q.Question) == "":
		return fmt.Errorf("question is required")
	case strings.TrimSpace(q.Answer) == "":
		return fmt.Errorf("answer is required")
	case q.Category == 0:
		return fmt.Errorf("category is required")
	case q.Difficulty < 1 || q.Difficulty > 5:
		return fmt.Errorf("difficulty must be between 1 and 5")
	}
	return nil
}

// Categories maps category ids to their display names.
type Categories map[CategoryID]string

// IDs returns the category ids in ascending order for stable display.
func (c Categories) IDs() []CategoryID {
	ids := make([]CategoryID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Name returns the display name for id, or "" when the category is unknown.
func (c Categories) Name(id CategoryID) string {
	return c[id]
}

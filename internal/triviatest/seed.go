package triviatest

import (
	"fmt"

	"triviatui/internal/trivia"
)

// Categories returns the six categories the trivia database ships with.
func Categories() trivia.Categories {
	return trivia.Categories{
		1: "Science",
		2: "Art",
		3: "Geography",
		4: "History",
		5: "Entertainment",
		6: "Sports",
	}
}

// Questions returns n questions with ids 1..n spread round-robin across the
// six default categories. Every third question mentions "title".
func Questions(n int) []trivia.Question {
	qs := make([]trivia.Question, n)
	for i := range qs {
		id := i + 1
		text := fmt.Sprintf("Question %d?", id)
		if id%3 == 0 {
			text = fmt.Sprintf("What is the title of work %d?", id)
		}
		qs[i] = trivia.Question{
			ID:         id,
			Question:   text,
			Answer:     fmt.Sprintf("Answer %d", id),
			Category:   trivia.CategoryID(i%6 + 1),
			Difficulty: i%5 + 1,
		}
	}
	return qs
}

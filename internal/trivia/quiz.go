package trivia

import (
	"strings"
	"unicode"
)

// QuestionsPerPlay is how many questions one quiz round asks at most.
const QuestionsPerPlay = 5

// CheckAnswer reports whether guess contains every word of answer, ignoring
// case and punctuation in the guess.
func CheckAnswer(guess, answer string) bool {
	guess = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, guess)
	words := strings.Fields(strings.ToLower(answer))
	if len(words) == 0 || strings.TrimSpace(guess) == "" {
		return false
	}
	for _, w := range words {
		if !strings.Contains(guess, w) {
			return false
		}
	}
	return true
}

package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CountOccurrences returns how many tokens of raw equal word.
//
// The text is normalized like Normalize but keeps stop words, so a query for
// "the" still finds matches. The query itself is only lowercased; punctuation
// in the query is kept and therefore never matches a stripped token.
func CountOccurrences(word, raw string) int {
	if word == "" || raw == "" {
		return 0
	}
	query := cases.Lower(language.Und).String(word)
	count := 0
	for _, token := range Words(raw) {
		if token == query {
			count++
		}
	}
	return count
}

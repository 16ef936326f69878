package textutil

import (
	"slices"
	"strings"
)

// defaultStopWords lists the noise words excluded from similarity scoring.
var defaultStopWords = []string{
	"a", "an", "the", "is", "in", "of", "to", "and",
	"it", "that", "for", "on", "with", "as", "at", "by",
}

// StopWords is an immutable set of words excluded from scoring.
// The zero value is an empty set.
type StopWords struct {
	words map[string]struct{}
}

// DefaultStopWords returns the built-in stop-word set.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

// NewStopWords builds a set from the given words. Entries are lowercased and
// trimmed; blank entries are ignored.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return StopWords{words: set}
}

// Contains reports whether word is a stop word. The lookup is exact; callers
// pass already-normalized tokens.
func (s StopWords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stop words in the set.
func (s StopWords) Len() int {
	return len(s.words)
}

// Words returns the stop words in sorted order.
func (s StopWords) Words() []string {
	out := make([]string, 0, len(s.words))
	for word := range s.words {
		out = append(out, word)
	}
	slices.Sort(out)
	return out
}

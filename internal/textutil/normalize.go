package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// asciiPunctuation is the set of characters removed during normalization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationStripper = newPunctuationStripper()

func newPunctuationStripper() *strings.Replacer {
	pairs := make([]string, 0, len(asciiPunctuation)*2)
	for _, r := range asciiPunctuation {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}

// Normalizer turns raw text into meaningful tokens using a fixed stop-word set.
type Normalizer struct {
	stop StopWords
}

// NewNormalizer returns a Normalizer that filters the provided stop words.
func NewNormalizer(stop StopWords) *Normalizer {
	return &Normalizer{stop: stop}
}

// StopWords returns the stop-word set used by the normalizer.
func (n *Normalizer) StopWords() StopWords {
	if n == nil {
		return StopWords{}
	}
	return n.stop
}

// Normalize lowercases text, strips ASCII punctuation, splits on whitespace
// and drops stop words. Token order and duplicates are preserved.
func (n *Normalizer) Normalize(raw string) []string {
	words := Words(raw)
	if n == nil || n.stop.Len() == 0 {
		return words
	}
	tokens := words[:0]
	for _, word := range words {
		if n.stop.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Normalize applies the default stop-word set to raw.
func Normalize(raw string) []string {
	return defaultNormalizer.Normalize(raw)
}

var defaultNormalizer = NewNormalizer(DefaultStopWords())

// Words lowercases text, strips ASCII punctuation and splits on whitespace
// without any stop-word filtering.
func Words(raw string) []string {
	if raw == "" {
		return nil
	}
	lowered := cases.Lower(language.Und).String(raw)
	fields := strings.Fields(punctuationStripper.Replace(lowered))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

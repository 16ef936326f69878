// Package wordsearch drives the interactive word-occurrence lookup that follows
// a comparison.
//
// Queries arrive as a sequence produced from an input stream; the counting
// itself never touches the stream.
package wordsearch

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"

	"plagiarism/internal/essay"
	"plagiarism/internal/textutil"
)

// Hit is the occurrence count of a query in one essay.
type Hit struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Queries yields trimmed lines from r until the first blank line or the end
// of the stream. Lines have no length limit. A read error also ends the
// sequence. When prompt is non-nil it is called before every read.
func Queries(r io.Reader, prompt func()) iter.Seq[string] {
	return func(yield func(string) bool) {
		reader, ok := r.(*bufio.Reader)
		if !ok {
			reader = bufio.NewReader(r)
		}
		for {
			if prompt != nil {
				prompt()
			}
			line, err := reader.ReadString('\n')
			query := strings.TrimSpace(line)
			if query == "" {
				return
			}
			if !yield(query) || err != nil {
				return
			}
		}
	}
}

// Count returns the occurrences of query in each essay, in argument order.
func Count(query string, essays ...essay.Essay) []Hit {
	hits := make([]Hit, 0, len(essays))
	for _, e := range essays {
		hits = append(hits, Hit{Label: e.Label, Count: textutil.CountOccurrences(query, e.Text)})
	}
	return hits
}

// Format renders hits as "'query' occurrences -> essay1: N, essay2: M".
func Format(query string, hits []Hit) string {
	var b strings.Builder
	b.WriteString("'")
	b.WriteString(query)
	b.WriteString("' occurrences -> ")
	for i, hit := range hits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(hit.Label)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(hit.Count))
	}
	return b.String()
}

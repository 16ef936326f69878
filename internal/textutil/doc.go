// Package textutil provides the text normalization and similarity scoring used
// to compare two documents for lexical overlap.
//
// The primary use cases are:
//   - Normalizing raw text into lowercase, punctuation-free tokens with stop
//     words removed
//   - Scoring two token collections with Jaccard similarity over their sets
//   - Counting exact occurrences of a word in raw text
//
// Punctuation stripping covers the ASCII punctuation set only. Unicode
// punctuation such as curly quotes or em dashes survives normalization and
// stays attached to the surrounding word.
package textutil

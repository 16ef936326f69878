package textutil

import "testing"

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name string
		word string
		text string
		want int
	}{
		{"empty query", "", "cat cat cat", 0},
		{"empty text", "cat", "", 0},
		{"both empty", "", "", 0},
		{"case and punctuation", "Cat", "Cat cats CAT, cat!", 3},
		{"stop words are countable", "the", "The cat sat on the mat.", 2},
		{"no match", "dog", "The cat sat on the mat.", 0},
		{"punctuated query never matches", "cat!", "cat! cat", 0},
		{"contraction is stripped in text only", "dont", "Don't stop, don't.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountOccurrences(tt.word, tt.text); got != tt.want {
				t.Errorf("CountOccurrences(%q, %q) = %d, want %d", tt.word, tt.text, got, tt.want)
			}
		})
	}
}

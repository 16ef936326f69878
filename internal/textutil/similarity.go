package textutil

import "slices"

// Score is the outcome of comparing two token collections as sets.
type Score struct {
	UniqueA        int      `json:"unique_a"`
	UniqueB        int      `json:"unique_b"`
	Common         []string `json:"common"`
	Union          int      `json:"union"`
	JaccardPercent float64  `json:"jaccard_percent"`
}

// CommonCount returns the number of tokens shared by both collections.
func (s Score) CommonCount() int {
	return len(s.Common)
}

// ScoreTokens collapses both token sequences to sets and computes their
// Jaccard similarity as a percentage. Common tokens are returned sorted.
// Returns a zero percentage when both sets are empty.
func ScoreTokens(a, b []string) Score {
	setA := tokenSet(a)
	setB := tokenSet(b)

	common := make([]string, 0, min(len(setA), len(setB)))
	for token := range setA {
		if _, ok := setB[token]; ok {
			common = append(common, token)
		}
	}
	slices.Sort(common)

	union := len(setA) + len(setB) - len(common)
	score := Score{
		UniqueA: len(setA),
		UniqueB: len(setB),
		Common:  common,
		Union:   union,
	}
	if union == 0 {
		return score
	}
	score.JaccardPercent = float64(len(common)) / float64(union) * 100
	return score
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

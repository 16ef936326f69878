package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"plagiarism/internal/fileutil"
	"plagiarism/internal/textutil"
)

// DefaultThreshold is the Jaccard percentage at or above which similarity is
// flagged as likely.
const DefaultThreshold = 50.0

// Report is a similarity score annotated for presentation.
type Report struct {
	LabelA    string         `json:"label_a"`
	LabelB    string         `json:"label_b"`
	Score     textutil.Score `json:"score"`
	Threshold float64        `json:"threshold_percent"`
}

// New builds a report for the two labelled documents.
func New(labelA, labelB string, score textutil.Score, threshold float64) Report {
	return Report{
		LabelA:    labelA,
		LabelB:    labelB,
		Score:     score,
		Threshold: threshold,
	}
}

// Likely reports whether the score meets the similarity threshold.
func (r Report) Likely() bool {
	return r.Score.JaccardPercent >= r.Threshold
}

// Verdict returns the one-line conclusion printed under the summary.
func (r Report) Verdict() string {
	if r.Likely() {
		return fmt.Sprintf("!!! Similarity is likely (>= %s%%).", formatThreshold(r.Threshold))
	}
	return fmt.Sprintf("✓ Similarity is low (< %s%%).", formatThreshold(r.Threshold))
}

// Empty reports whether neither document has any meaningful words.
func (r Report) Empty() bool {
	return r.Score.UniqueA == 0 && r.Score.UniqueB == 0
}

// Sample returns the first n shared words in sorted order. A non-positive n
// returns all of them.
func (r Report) Sample(n int) []string {
	common := r.Score.Common
	if n <= 0 || n >= len(common) {
		return common
	}
	return common[:n]
}

// WriteText renders the full report layout to w.
func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Plagiarism Detector Report")
	fmt.Fprintln(bw, "==========================")
	fmt.Fprintf(bw, "Unique meaningful words in %s: %d\n", r.LabelA, r.Score.UniqueA)
	fmt.Fprintf(bw, "Unique meaningful words in %s: %d\n", r.LabelB, r.Score.UniqueB)
	fmt.Fprintf(bw, "Common meaningful words (count): %d\n", r.Score.CommonCount())
	fmt.Fprintf(bw, "Plagiarism (Jaccard) percentage: %.2f%%\n", r.Score.JaccardPercent)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Common words:")
	for _, word := range r.Score.Common {
		fmt.Fprintln(bw, word)
	}
	return bw.Flush()
}

// Save writes the report to path, creating the parent directory if needed.
func Save(path string, r Report) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create reports directory %q: %w", dir, err)
		}
	}
	err := fileutil.WithLock(path, func() error {
		return fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			return WriteText(w, r)
		})
	})
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func formatThreshold(value float64) string {
	return fmt.Sprintf("%g", value)
}

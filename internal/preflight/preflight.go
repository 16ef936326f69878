package preflight

import (
	"plagiarism/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckInputFile("essay1", cfg.Paths.Essay1),
		CheckInputFile("essay2", cfg.Paths.Essay2),
		CheckReportsDirectory("Reports directory", cfg.Paths.ReportsDir),
	}
}

// Failed returns the results that did not pass, in order.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

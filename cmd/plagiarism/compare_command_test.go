package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagiarism/internal/testsupport"
)

const (
	catEssay = "The cat sat on the mat."
	rugEssay = "A cat sat on a rug."
)

func TestCompareInteractiveSaveAndSearch(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	out, _, err := runCLI(t, []string{"compare"}, env.configPath, "y\nthe\nCat\n\nignored\n")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	requireContains(t, out, "====== Plagiarism Detector Report ======")
	requireContains(t, out, "Unique meaningful words in essay1")
	requireContains(t, out, "50.00%")
	requireContains(t, out, "!!! Similarity is likely (>= 50%).")
	requireContains(t, out, "Some common words (sample):\ncat, sat\n")
	requireContains(t, out, "Do you want to save a full report to "+env.reportPath+"? (y/n): ")
	requireContains(t, out, "Report saved to "+env.reportPath)
	requireContains(t, out, "'the' occurrences -> essay1: 2, essay2: 0")
	requireContains(t, out, "'Cat' occurrences -> essay1: 1, essay2: 1")
	requireNotContains(t, out, "ignored")
	requireContains(t, out, "Done. Thank you.")
	if got := strings.Count(out, "Enter a word to search"); got != 3 {
		t.Fatalf("expected 3 search prompts, got %d", got)
	}

	data, err := os.ReadFile(env.reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	want := "Plagiarism Detector Report\n" +
		"==========================\n" +
		"Unique meaningful words in essay1: 3\n" +
		"Unique meaningful words in essay2: 3\n" +
		"Common meaningful words (count): 2\n" +
		"Plagiarism (Jaccard) percentage: 50.00%\n" +
		"\n" +
		"Common words:\n" +
		"cat\n" +
		"sat\n"
	if string(data) != want {
		t.Fatalf("unexpected report contents:\n%s", data)
	}
}

func TestCompareDeclineSave(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, "Dogs bark loudly at night.")

	out, _, err := runCLI(t, []string{"compare"}, env.configPath, "n\n\n")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "0.00%")
	requireContains(t, out, "✓ Similarity is low (< 50%).")
	requireContains(t, out, "No common meaningful words found.")
	requireNotContains(t, out, "Report saved")
	requireContains(t, out, "Done. Thank you.")
	if _, err := os.Stat(env.reportPath); !os.IsNotExist(err) {
		t.Fatalf("expected no report file, stat err = %v", err)
	}
}

func TestCompareEOFEndsPrompts(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	out, _, err := runCLI(t, []string{"compare"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireNotContains(t, out, "Report saved")
	requireContains(t, out, "Done. Thank you.")
}

func TestCompareRootCommandRunsComparison(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	out, _, err := runCLI(t, []string{"--no-save", "--no-search"}, env.configPath, "")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "50.00%")
	requireNotContains(t, out, "Do you want to save")
	requireNotContains(t, out, "Enter a word to search")
}

func TestComparePositionalPathsAndSaveFlag(t *testing.T) {
	env := setupCLITestEnv(t, "unrelated words only", "nothing shared here")
	a := filepath.Join(env.baseDir, "other", "a.txt")
	b := filepath.Join(env.baseDir, "other", "b.txt")
	testsupport.WriteEssay(t, a, catEssay)
	testsupport.WriteEssay(t, b, catEssay)
	reportPath := filepath.Join(env.baseDir, "custom", "out.txt")

	out, _, err := runCLI(t, []string{"compare", a, b, "--save", "--report", reportPath, "--no-search"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "100.00%")
	requireNotContains(t, out, "Do you want to save")
	requireContains(t, out, "Report saved to "+reportPath)
	if _, err := os.Stat(reportPath); err != nil {
		t.Fatalf("expected report at %s: %v", reportPath, err)
	}
}

func TestCompareMissingEssayExitsCleanly(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)
	if err := os.Remove(env.essay2); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"compare", "--save"}, env.configPath, "")
	if err != nil {
		t.Fatalf("expected clean return for missing essay, got %v", err)
	}
	requireContains(t, out, "ERROR: Make sure")
	requireContains(t, out, "essay2: "+env.essay2+" (error: does not exist)")
	requireNotContains(t, out, "Plagiarism Detector Report")
	if _, err := os.Stat(env.reportPath); !os.IsNotExist(err) {
		t.Fatalf("expected no report file, stat err = %v", err)
	}
}

func TestCompareBothEssaysEmpty(t *testing.T) {
	env := setupCLITestEnv(t, "", "The a an.")

	out, _, err := runCLI(t, []string{"compare"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "Both essays have no meaningful words after cleaning. Nothing to compare.")
	requireNotContains(t, out, "Do you want to save")
}

func TestCompareJSON(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	out, _, err := runCLI(t, []string{"compare", "--json", "--threshold", "60"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	var payload compareJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v (%q)", err, out)
	}
	if payload.JaccardPercent != 50 || payload.CommonCount != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.UniqueEssay1 != 3 || payload.UniqueEssay2 != 3 {
		t.Fatalf("unexpected unique counts: %+v", payload)
	}
	if payload.Likely {
		t.Fatal("expected 50% to be below a 60% threshold")
	}
	if payload.ThresholdPercent != 60 {
		t.Fatalf("unexpected threshold: %v", payload.ThresholdPercent)
	}
	if payload.CorrelationID == "" {
		t.Fatal("expected correlation id")
	}
	if payload.ReportPath != "" {
		t.Fatalf("expected no report path, got %q", payload.ReportPath)
	}
	if payload.Essay1 != env.essay1 {
		t.Fatalf("unexpected essay1 path: %q", payload.Essay1)
	}
}

func TestCompareSampleFlagCapsWords(t *testing.T) {
	env := setupCLITestEnv(t, "alpha beta gamma delta", "delta gamma beta alpha")

	out, _, err := runCLI(t, []string{"compare", "--no-save", "--no-search", "--sample", "2"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "Some common words (sample):\nalpha, beta\n")
}

func TestCompareCustomStopWords(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay, testsupport.WithStopWords("cat", "sat"))

	out, _, err := runCLI(t, []string{"compare", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	var payload compareJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	// the, on, mat vs a, on, rug: only "on" is shared.
	if payload.CommonCount != 1 || payload.Common[0] != "on" {
		t.Fatalf("unexpected common words: %v", payload.Common)
	}
}

func TestCompareUsesConfiguredThreshold(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay, testsupport.WithThreshold(75))

	out, _, err := runCLI(t, []string{"compare", "--no-save", "--no-search"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "✓ Similarity is low (< 75%).")
}

func TestCompareRejectsSinglePath(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	_, _, err := runCLI(t, []string{"compare", env.essay1}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for a single essay path")
	}
}

func TestCompareRejectsNaNThreshold(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	_, _, err := runCLI(t, []string{"compare", "--json", "--threshold", "NaN"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for NaN threshold")
	}
	requireContains(t, err.Error(), "--threshold")
}

func TestCompareChecksDirectoryOfReportOverride(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)
	blocker := filepath.Join(env.baseDir, "blocker")
	testsupport.WriteEssay(t, blocker, "not a directory")
	reportPath := filepath.Join(blocker, "out.txt")

	out, errOut, err := runCLI(t, []string{"compare", "--no-save", "--no-search", "--report", reportPath}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "50.00%")
	requireContains(t, errOut, "preflight check failed")
	requireContains(t, errOut, blocker+" (error: is not a directory)")
}

func TestCompareRejectsConflictingSaveFlags(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	_, _, err := runCLI(t, []string{"compare", "--save", "--no-save"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for --save with --no-save")
	}
}

func TestCompareLogsToStderr(t *testing.T) {
	env := setupCLITestEnv(t, catEssay, rugEssay)

	out, errOut, err := runCLI(t, []string{"--log-level", "info", "compare", "--no-save", "--no-search"}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, errOut, "[compare] – comparison complete")
	requireContains(t, errOut, "correlation_id: ")
	requireNotContains(t, out, "comparison complete")
}

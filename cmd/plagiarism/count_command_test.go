package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"plagiarism/internal/testsupport"
)

func TestCountCommandTable(t *testing.T) {
	env := setupCLITestEnv(t, "Cat cats CAT, cat!", "The dog.")

	out, _, err := runCLI(t, []string{"count", "Cat", env.essay1, env.essay2}, env.configPath, "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "essay1.txt")
	requireContains(t, out, "essay2.txt")
	requireContains(t, out, `Occurrences of "Cat"`)
	requireContains(t, out, "3")
}

func TestCountCommandJSONCountsStopWords(t *testing.T) {
	env := setupCLITestEnv(t, "The cat sat on the mat.", "the THE the.")
	extra := filepath.Join(env.baseDir, "extra.txt")
	testsupport.WriteEssay(t, extra, "")

	out, _, err := runCLI(t, []string{"count", "--json", "the", env.essay1, env.essay2, extra}, env.configPath, "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	var payload countJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v (%q)", err, out)
	}
	if payload.Word != "the" {
		t.Fatalf("unexpected word: %q", payload.Word)
	}
	want := []int{2, 3, 0}
	if len(payload.Counts) != len(want) {
		t.Fatalf("expected %d counts, got %+v", len(want), payload.Counts)
	}
	for i, c := range payload.Counts {
		if c.Count != want[i] {
			t.Fatalf("count[%d] = %d, want %d", i, c.Count, want[i])
		}
	}
	if payload.Counts[2].Path != extra {
		t.Fatalf("unexpected path: %q", payload.Counts[2].Path)
	}
}

func TestCountCommandMissingFile(t *testing.T) {
	env := setupCLITestEnv(t, "cat", "cat")

	_, _, err := runCLI(t, []string{"count", "cat", filepath.Join(env.baseDir, "nope.txt")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCountCommandRequiresFile(t *testing.T) {
	env := setupCLITestEnv(t, "cat", "cat")

	if _, _, err := runCLI(t, []string{"count", "cat"}, env.configPath, ""); err == nil {
		t.Fatal("expected error without a file argument")
	}
}

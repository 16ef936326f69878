package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagiarism/internal/config"
	"plagiarism/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	essay1     string
	essay2     string
	reportPath string
}

// setupCLITestEnv isolates HOME and the working directory and writes both
// essays plus a config file pointing at them.
func setupCLITestEnv(t *testing.T, text1, text2 string, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("PLAGIARISM_ESSAY1", "")
	t.Setenv("PLAGIARISM_ESSAY2", "")
	t.Setenv("PLAGIARISM_LOG_LEVEL", "")

	opts = append([]testsupport.ConfigOption{testsupport.WithEssays(text1, text2)}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)

	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Chdir(base)

	return &cliTestEnv{
		baseDir:    base,
		configPath: testsupport.WriteConfig(t, cfg),
		essay1:     cfg.Paths.Essay1,
		essay2:     cfg.Paths.Essay2,
		reportPath: cfg.ReportPath(),
	}
}

func loadTestConfig(t *testing.T, path string) *config.Config {
	t.Helper()
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

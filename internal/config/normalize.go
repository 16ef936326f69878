package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDetection()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("PLAGIARISM_ESSAY1"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Essay1 = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("PLAGIARISM_ESSAY2"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Essay2 = strings.TrimSpace(value)
	}

	var err error
	if c.Paths.Essay1, err = expandPath(strings.TrimSpace(c.Paths.Essay1)); err != nil {
		return fmt.Errorf("paths.essay1: %w", err)
	}
	if c.Paths.Essay2, err = expandPath(strings.TrimSpace(c.Paths.Essay2)); err != nil {
		return fmt.Errorf("paths.essay2: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportsDir) == "" {
		c.Paths.ReportsDir = defaultReportsDir
	}
	if c.Paths.ReportsDir, err = expandPath(strings.TrimSpace(c.Paths.ReportsDir)); err != nil {
		return fmt.Errorf("paths.reports_dir: %w", err)
	}
	c.Paths.ReportFile = strings.TrimSpace(c.Paths.ReportFile)
	if c.Paths.ReportFile == "" {
		c.Paths.ReportFile = defaultReportFile
	}
	return nil
}

func (c *Config) normalizeDetection() {
	if len(c.Detection.StopWords) == 0 {
		return
	}
	words := make([]string, 0, len(c.Detection.StopWords))
	seen := make(map[string]struct{}, len(c.Detection.StopWords))
	for _, word := range c.Detection.StopWords {
		normalized := strings.ToLower(strings.TrimSpace(word))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		words = append(words, normalized)
	}
	c.Detection.StopWords = words
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("PLAGIARISM_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

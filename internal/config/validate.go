package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDetection(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Essay1) == "" {
		return errors.New("paths.essay1 must be set")
	}
	if strings.TrimSpace(c.Paths.Essay2) == "" {
		return errors.New("paths.essay2 must be set")
	}
	if strings.ContainsAny(c.Paths.ReportFile, `/\`) {
		return fmt.Errorf("paths.report_file must be a file name, got %q (use paths.reports_dir for the directory)", c.Paths.ReportFile)
	}
	return nil
}

func (c *Config) validateDetection() error {
	threshold := c.Detection.ThresholdPercent
	if math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return errors.New("detection.threshold_percent must be between 0 and 100")
	}
	if c.Detection.SampleSize < 0 {
		return errors.New("detection.sample_size must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

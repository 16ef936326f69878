// Package logging assembles structured slog loggers and formatting helpers used
// across the plagiarism CLI.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so a comparison run can tag every
// log line with its correlation ID. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Logs are diagnostics only: user-facing results are printed by the commands
// themselves, so loggers default to stderr.
package logging

// Package config loads, normalizes, and validates plagiarism configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// PLAGIARISM_ESSAY1. The Config type centralizes every knob the CLI needs:
// which essays to compare, where reports go, the similarity threshold, the
// stop-word list and log output.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config

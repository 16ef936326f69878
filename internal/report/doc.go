// Package report turns a similarity score into the plagiarism report shown on
// the console and optionally saved to disk.
//
// The saved report uses a fixed plain-text layout: a header, four summary
// lines, a blank line and every shared word on its own line in sorted order.
// Save writes through a temp file under an advisory lock so concurrent runs
// never interleave or leave a truncated report behind.
package report
